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

package tagger

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/google/uuid"

	"tupi/corpus"
	"tupi/jobs"
)

// Actions contains the tagger-related HTTP REST actions
type Actions struct {
	conf       *Conf
	corpConf   *corpus.CorporaSetup
	ctx        context.Context
	registry   *Registry
	jobActions *jobs.Actions
}

// TrainModel starts an async job training a named tagger model on
// a configured corpus. Training parameters may be provided in the
// request body, missing values are filled from the configuration
// defaults.
func (a *Actions) TrainModel(ctx *gin.Context) {
	modelName := ctx.Param("modelId")
	if !modelNamePattern.MatchString(modelName) {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("invalid model name: %s", modelName),
			http.StatusUnprocessableEntity,
		)
		return
	}
	corp := a.corpConf.Get(ctx.Request.URL.Query().Get("corpus"))
	if corp.IsZero() {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("corpus not found: %s", ctx.Request.URL.Query().Get("corpus")),
			http.StatusNotFound,
		)
		return
	}
	trainingSetup := a.conf.Training
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&trainingSetup); err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
			return
		}
	}
	if err := trainingSetup.WithDefaults().Validate(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}

	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("failed to start training job for '%s'", modelName),
			http.StatusInternalServerError,
		)
		return
	}

	if prevRunning, ok := a.jobActions.LastUnfinishedJobOfType(corp.ID, jobs.JobTypeTaggerTrain); ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError(
				"cannot run training - the previous job '%s' have not finished yet", prevRunning),
			http.StatusConflict,
		)
		return
	}

	jobRec := TrainJobInfo{
		ID:        jobID.String(),
		Type:      jobs.JobTypeTaggerTrain,
		CorpusID:  corp.ID,
		ModelName: modelName,
		Start:     jobs.CurrentDatetime(),
	}
	fn := func(jobCtx context.Context, updateJobChan chan<- jobs.GeneralJobInfo) {
		defer close(updateJobChan)
		model, err := Train(jobCtx, a.corpConf, corp, modelName, trainingSetup)
		if err == nil {
			err = a.registry.Save(model)
		}
		if err != nil {
			jobRec.Error = err

		} else {
			jobRec.Result = &TrainResult{
				ModelName:         model.Name,
				Eval:              model.Eval,
				NumTrainSentences: model.NumTrainSentences,
				NumTestSentences:  model.NumTestSentences,
			}
		}
		updateJobChan <- jobRec.AsFinished()
	}
	a.jobActions.EnqueueJob(&fn, jobRec)

	uniresp.WriteJSONResponse(ctx.Writer, jobRec.FullInfo())
}

// ModelList provides all the stored tagger models
func (a *Actions) ModelList(ctx *gin.Context) {
	models, err := a.registry.List()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, models)
}

// ModelInfo provides a single stored tagger model including its
// evaluation report
func (a *Actions) ModelInfo(ctx *gin.Context) {
	tgr, err := a.registry.Get(ctx.Param("modelId"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrorModelNotFound) || errors.Is(err, ErrorInvalidModelID) {
			status = http.StatusNotFound
		}
		uniresp.RespondWithErrorJSON(ctx, err, status)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, tgr.Model())
}

type tagRequest struct {
	Sentence string   `json:"sentence"`
	Tokens   []string `json:"tokens"`
}

type tagResponse struct {
	ModelName string                `json:"modelName"`
	Tokens    corpus.TaggedSentence `json:"tokens"`
}

// TagSentence tags a single sentence using a stored model. The
// sentence may come either pre-tokenized in `tokens` or as a raw
// string in `sentence`.
func (a *Actions) TagSentence(ctx *gin.Context) {
	tgr, err := a.registry.Get(ctx.Param("modelId"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrorModelNotFound) || errors.Is(err, ErrorInvalidModelID) {
			status = http.StatusNotFound
		}
		uniresp.RespondWithErrorJSON(ctx, err, status)
		return
	}
	var req tagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	tokens := req.Tokens
	if len(tokens) == 0 {
		tokens = Tokenize(req.Sentence)
	}
	if len(tokens) == 0 {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("nothing to tag"),
			http.StatusUnprocessableEntity,
		)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		tagResponse{
			ModelName: tgr.Model().Name,
			Tokens:    tgr.TagSentence(tokens),
		},
	)
}

// NewActions is the default factory
func NewActions(
	conf *Conf,
	corpConf *corpus.CorporaSetup,
	ctx context.Context,
	registry *Registry,
	jobActions *jobs.Actions,
) *Actions {
	return &Actions{
		conf:       conf,
		corpConf:   corpConf,
		ctx:        ctx,
		registry:   registry,
		jobActions: jobActions,
	}
}
