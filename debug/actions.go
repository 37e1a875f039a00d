// Copyright 2022 Marcos Oliveira <mvoliveira.nlp@gmail.com>
// Copyright 2022 Grupo de Processamento de Linguagem Natural,
//                Universidade Tecnológica Federal do Paraná
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package debug

import (
	"context"
	"fmt"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tupi/jobs"
)

// Actions contains debugging HTTP REST actions available when the
// service logs on the debug level
type Actions struct {
	finishSignals map[string]chan<- bool
	jobActions    *jobs.Actions
}

// CreateDummyJob creates a job waiting for an explicit finish
// signal. It allows testing the job subsystem without any corpus
// data involved.
func (a *Actions) CreateDummyJob(ctx *gin.Context) {
	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("failed to create dummy job"),
			http.StatusInternalServerError,
		)
		return
	}

	jobInfo := &jobs.DummyJobInfo{
		ID:       jobID.String(),
		Type:     jobs.JobTypeDummy,
		Start:    jobs.CurrentDatetime(),
		CorpusID: "dummy",
	}
	if ctx.Request.URL.Query().Get("error") == "1" {
		jobInfo.Error = fmt.Errorf("dummy error")
	}
	finishSignal := make(chan bool, 1)
	fn := func(jobCtx context.Context, upds chan<- jobs.GeneralJobInfo) {
		defer close(upds)
		select {
		case <-finishSignal:
			jobInfo.Result = &jobs.DummyJobResult{Payload: "Job Done!"}
			upds <- jobInfo.AsFinished()
		case <-jobCtx.Done():
			upds <- jobInfo.WithError(jobCtx.Err())
		}
	}
	a.jobActions.EnqueueJob(&fn, jobInfo)
	a.finishSignals[jobID.String()] = finishSignal
	uniresp.WriteJSONResponse(ctx.Writer, jobInfo)
}

// FinishDummyJob sends a finish signal to a waiting dummy job
func (a *Actions) FinishDummyJob(ctx *gin.Context) {
	finish, ok := a.finishSignals[ctx.Param("jobId")]
	if ok {
		delete(a.finishSignals, ctx.Param("jobId"))
		defer close(finish)
		finish <- true
		if storedJob, ok := a.jobActions.GetJob(ctx.Param("jobId")); ok {
			uniresp.WriteJSONResponse(ctx.Writer, storedJob.FullInfo())

		} else {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		}

	} else {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
	}
}

// NewActions is the default factory
func NewActions(jobActions *jobs.Actions) *Actions {
	return &Actions{
		finishSignals: make(map[string]chan<- bool),
		jobActions:    jobActions,
	}
}
