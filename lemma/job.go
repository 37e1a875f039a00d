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
	"time"

	"tupi/jobs"
)

// ImportResult is a summary of a finished dictionary import
type ImportResult struct {
	File       string `json:"file"`
	NumEntries int    `json:"numEntries"`
}

// ImportJobInfo collects information about a dictionary import job
type ImportJobInfo struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Start       jobs.JSONTime `json:"start"`
	Update      jobs.JSONTime `json:"update"`
	Finished    bool          `json:"finished"`
	Error       error         `json:"error,omitempty"`
	Result      *ImportResult `json:"result"`
	NumRestarts int           `json:"numRestarts"`
}

func (j ImportJobInfo) GetID() string {
	return j.ID
}

func (j ImportJobInfo) GetType() string {
	return j.Type
}

func (j ImportJobInfo) GetStartDT() jobs.JSONTime {
	return j.Start
}

func (j ImportJobInfo) GetNumRestarts() int {
	return j.NumRestarts
}

// GetCorpus is part of the job info interface; a dictionary import
// is not bound to any corpus.
func (j ImportJobInfo) GetCorpus() string {
	return ""
}

func (j ImportJobInfo) IsFinished() bool {
	return j.Finished
}

func (j ImportJobInfo) AsFinished() jobs.GeneralJobInfo {
	j.Update = jobs.CurrentDatetime()
	j.Finished = true
	return j
}

func (j ImportJobInfo) CompactVersion() jobs.JobInfoCompact {
	item := jobs.JobInfoCompact{
		ID:       j.ID,
		Type:     j.Type,
		Start:    j.Start,
		Update:   j.Update,
		Finished: j.Finished,
		OK:       true,
	}
	if j.Error != nil {
		item.OK = false
	}
	return item
}

func (j ImportJobInfo) FullInfo() any {
	return struct {
		ID          string        `json:"id"`
		Type        string        `json:"type"`
		Start       jobs.JSONTime `json:"start"`
		Update      jobs.JSONTime `json:"update"`
		Finished    bool          `json:"finished"`
		Error       string        `json:"error,omitempty"`
		OK          bool          `json:"ok"`
		Result      *ImportResult `json:"result"`
		NumRestarts int           `json:"numRestarts"`
	}{
		ID:          j.ID,
		Type:        j.Type,
		Start:       j.Start,
		Update:      j.Update,
		Finished:    j.Finished,
		Error:       jobs.ErrorToString(j.Error),
		OK:          j.Error == nil,
		Result:      j.Result,
		NumRestarts: j.NumRestarts,
	}
}

func (j ImportJobInfo) GetError() error {
	return j.Error
}

func (j ImportJobInfo) WithError(err error) jobs.GeneralJobInfo {
	return ImportJobInfo{
		ID:          j.ID,
		Type:        j.Type,
		Start:       j.Start,
		Update:      jobs.JSONTime(time.Now()),
		Finished:    true,
		Error:       err,
		Result:      j.Result,
		NumRestarts: j.NumRestarts,
	}
}
