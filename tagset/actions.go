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

package tagset

import (
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"tupi/common"
)

// Actions contains the tagset related HTTP REST actions
type Actions struct{}

// ListTagsets provides an overview of all the supported tagsets
func (a *Actions) ListTagsets(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, List())
}

// TagsetInfo provides a detail of a single tagset
func (a *Actions) TagsetInfo(ctx *gin.Context) {
	ts, err := Get(common.SupportedTagset(ctx.Param("tagsetId")))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ts)
}

// TagsetTable dumps the whole translation table of a tagset
func (a *Actions) TagsetTable(ctx *gin.Context) {
	ts, err := Get(common.SupportedTagset(ctx.Param("tagsetId")))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ts.ExportTable())
}

// TranslateTag translates a single native tag to the universal tagset.
// The tag is taken from the `tag` URL query argument so that values
// like "." or "/" do not clash with the path syntax.
func (a *Actions) TranslateTag(ctx *gin.Context) {
	ts, err := Get(common.SupportedTagset(ctx.Param("tagsetId")))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return
	}
	tag := ctx.Query("tag")
	if tag == "" && ts.ID != common.TagsetFloresta {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("missing `tag` argument"),
			http.StatusBadRequest,
		)
		return
	}
	upos, err := ts.Translate(tag)
	if err != nil {
		if errors.Is(err, ErrorTagNotKnown) {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)

		} else {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		}
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		TranslationResponse{
			Tagset:        ts.ID,
			Tag:           tag,
			NormalizedTag: ts.NormalizeTag(tag),
			UPos:          upos,
		},
	)
}

type TranslationResponse struct {
	Tagset        common.SupportedTagset `json:"tagset"`
	Tag           string                 `json:"tag"`
	NormalizedTag string                 `json:"normalizedTag"`
	UPos          common.UPosTag         `json:"upos"`
}

// NewActions is the default factory
func NewActions() *Actions {
	return &Actions{}
}
