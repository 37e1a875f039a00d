// Copyright 2023 Marcos Oliveira <mvoliveira.nlp@gmail.com>
// Copyright 2023 Grupo de Processamento de Linguagem Natural,
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

package corpus

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/google/uuid"

	"tupi/jobs"
)

// Actions contains the corpora-related HTTP REST actions
type Actions struct {
	conf       *CorporaSetup
	ctx        context.Context
	jobActions *jobs.Actions
}

// CorporaList provides a list of all the configured corpora
func (a *Actions) CorporaList(ctx *gin.Context) {
	corpora := a.conf.GetAllCorpora()
	ans := make([]*Info, 0, len(corpora))
	for _, corp := range corpora {
		info, err := GetCorpusInfo(corp, a.conf)
		if err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
			return
		}
		ans = append(ans, info)
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// CorpusInfo provides information about a single configured corpus
// and its data file
func (a *Actions) CorpusInfo(ctx *gin.Context) {
	corp := a.conf.Get(ctx.Param("corpusId"))
	if corp.IsZero() {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("corpus not found: %s", ctx.Param("corpusId")),
			http.StatusNotFound,
		)
		return
	}
	info, err := GetCorpusInfo(corp, a.conf)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, info)
}

// DownloadCorpusData starts a job downloading corpus source data
// into the data directory. By default an already installed data file
// is kept, the `overwrite` argument forces a new download.
func (a *Actions) DownloadCorpusData(ctx *gin.Context) {
	corp := a.conf.Get(ctx.Param("corpusId"))
	if corp.IsZero() {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("corpus not found: %s", ctx.Param("corpusId")),
			http.StatusNotFound,
		)
		return
	}
	if corp.DownloadURL == "" {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("corpus %s has no download url configured", corp.ID),
			http.StatusUnprocessableEntity,
		)
		return
	}
	overwrite := ctx.Request.URL.Query().Get("overwrite") == "1"

	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("failed to start download job for '%s'", corp.ID),
			http.StatusInternalServerError,
		)
		return
	}

	if prevRunning, ok := a.jobActions.LastUnfinishedJobOfType(corp.ID, jobs.JobTypeCorpusDownload); ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError(
				"cannot run download - the previous job '%s' have not finished yet", prevRunning),
			http.StatusConflict,
		)
		return
	}

	jobRec := DownloadJobInfo{
		ID:       jobID.String(),
		Type:     jobs.JobTypeCorpusDownload,
		CorpusID: corp.ID,
		Start:    jobs.CurrentDatetime(),
	}
	fn := func(jobCtx context.Context, updateJobChan chan<- jobs.GeneralJobInfo) {
		defer close(updateJobChan)
		resp, err := downloadCorpusData(jobCtx, a.conf, corp, overwrite)
		if err != nil {
			jobRec.Error = err
		}
		jobRec.Result = &resp
		updateJobChan <- jobRec.AsFinished()
	}
	a.jobActions.EnqueueJob(&fn, jobRec)

	uniresp.WriteJSONResponse(ctx.Writer, jobRec.FullInfo())
}

// RestartJob re-runs a failed or interrupted download job
func (a *Actions) RestartJob(jinfo DownloadJobInfo) error {
	err := a.jobActions.TestAllowsJobRestart(jinfo)
	if err != nil {
		return err
	}
	corp := a.conf.Get(jinfo.CorpusID)
	if corp.IsZero() {
		return fmt.Errorf("cannot restart job %s: unknown corpus %s", jinfo.ID, jinfo.CorpusID)
	}
	jinfo.Start = jobs.CurrentDatetime()
	jinfo.NumRestarts++
	jinfo.Update = jobs.CurrentDatetime()
	jinfo.Finished = false
	jinfo.Error = nil

	fn := func(jobCtx context.Context, updateJobChan chan<- jobs.GeneralJobInfo) {
		defer close(updateJobChan)
		resp, err := downloadCorpusData(jobCtx, a.conf, corp, false)
		if err != nil {
			updateJobChan <- jinfo.WithError(err)

		} else {
			newJinfo := jinfo
			newJinfo.Result = &resp
			updateJobChan <- newJinfo.AsFinished()
		}
	}
	a.jobActions.EnqueueJob(&fn, jinfo)
	log.Info().Msgf("Restarted corpus download job %s", jinfo.ID)
	return nil
}

// NewActions is the default factory
func NewActions(
	conf *CorporaSetup,
	ctx context.Context,
	jobActions *jobs.Actions,
) *Actions {
	return &Actions{
		conf:       conf,
		ctx:        ctx,
		jobActions: jobActions,
	}
}
