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

package lemma

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/google/uuid"

	"tupi/common"
	"tupi/jobs"
)

// Actions contains the lemma dictionary HTTP REST actions
type Actions struct {
	conf       *Conf
	ctx        context.Context
	storage    *Storage
	jobActions *jobs.Actions
}

// DictInfo provides the configured dictionary file and the number
// of imported entries
func (a *Actions) DictInfo(ctx *gin.Context) {
	size, err := a.storage.Size(a.ctx)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		map[string]any{
			"dictFile":   a.conf.DictFile,
			"numEntries": size,
		},
	)
}

// ImportDict starts an async job replacing the database dictionary
// with the contents of the configured DELAF file
func (a *Actions) ImportDict(ctx *gin.Context) {
	if a.conf.DictFile == "" {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("no dictionary file configured"),
			http.StatusUnprocessableEntity,
		)
		return
	}
	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("failed to start dictionary import job"),
			http.StatusInternalServerError,
		)
		return
	}

	if prevRunning, ok := a.jobActions.LastUnfinishedJobOfType("", jobs.JobTypeLemmaImport); ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError(
				"cannot run import - the previous job '%s' have not finished yet", prevRunning),
			http.StatusConflict,
		)
		return
	}

	jobRec := ImportJobInfo{
		ID:    jobID.String(),
		Type:  jobs.JobTypeLemmaImport,
		Start: jobs.CurrentDatetime(),
	}
	fn := func(jobCtx context.Context, updateJobChan chan<- jobs.GeneralJobInfo) {
		defer close(updateJobChan)
		numEntries, err := a.storage.ImportDict(jobCtx, a.conf.DictFile)
		if err != nil {
			jobRec.Error = err

		} else {
			jobRec.Result = &ImportResult{File: a.conf.DictFile, NumEntries: numEntries}
		}
		updateJobChan <- jobRec.AsFinished()
	}
	a.jobActions.EnqueueJob(&fn, jobRec)

	uniresp.WriteJSONResponse(ctx.Writer, jobRec.FullInfo())
}

// Lookup provides all the dictionary records of a word form. The
// optional `pos` argument restricts the answer to a single
// universal PoS tag.
func (a *Actions) Lookup(ctx *gin.Context) {
	form := ctx.Param("form")
	upos := ctx.Request.URL.Query().Get("pos")
	if upos != "" {
		if err := common.UPosTag(upos).Validate(); err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
			return
		}
	}
	entries, err := a.storage.Lookup(a.ctx, form, upos)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		map[string]any{
			"form":    form,
			"entries": entries,
		},
	)
}

// NewActions is the default factory
func NewActions(
	conf *Conf,
	ctx context.Context,
	storage *Storage,
	jobActions *jobs.Actions,
) *Actions {
	return &Actions{
		conf:       conf,
		ctx:        ctx,
		storage:    storage,
		jobActions: jobActions,
	}
}
