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
	"time"

	"tupi/jobs"
)

// TrainResult is a summary of a finished training job
type TrainResult struct {
	ModelName         string      `json:"modelName"`
	Eval              *Evaluation `json:"eval"`
	NumTrainSentences int         `json:"numTrainSentences"`
	NumTestSentences  int         `json:"numTestSentences"`
}

// TrainJobInfo collects information about a tagger training job
type TrainJobInfo struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	CorpusID    string        `json:"corpusId"`
	ModelName   string        `json:"modelName"`
	Start       jobs.JSONTime `json:"start"`
	Update      jobs.JSONTime `json:"update"`
	Finished    bool          `json:"finished"`
	Error       error         `json:"error,omitempty"`
	Result      *TrainResult  `json:"result"`
	NumRestarts int           `json:"numRestarts"`
}

func (j TrainJobInfo) GetID() string {
	return j.ID
}

func (j TrainJobInfo) GetType() string {
	return j.Type
}

func (j TrainJobInfo) GetStartDT() jobs.JSONTime {
	return j.Start
}

func (j TrainJobInfo) GetNumRestarts() int {
	return j.NumRestarts
}

func (j TrainJobInfo) GetCorpus() string {
	return j.CorpusID
}

func (j TrainJobInfo) IsFinished() bool {
	return j.Finished
}

func (j TrainJobInfo) AsFinished() jobs.GeneralJobInfo {
	j.Update = jobs.CurrentDatetime()
	j.Finished = true
	return j
}

func (j TrainJobInfo) CompactVersion() jobs.JobInfoCompact {
	item := jobs.JobInfoCompact{
		ID:       j.ID,
		Type:     j.Type,
		CorpusID: j.CorpusID,
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

func (j TrainJobInfo) FullInfo() any {
	return struct {
		ID          string        `json:"id"`
		Type        string        `json:"type"`
		CorpusID    string        `json:"corpusId"`
		ModelName   string        `json:"modelName"`
		Start       jobs.JSONTime `json:"start"`
		Update      jobs.JSONTime `json:"update"`
		Finished    bool          `json:"finished"`
		Error       string        `json:"error,omitempty"`
		OK          bool          `json:"ok"`
		Result      *TrainResult  `json:"result"`
		NumRestarts int           `json:"numRestarts"`
	}{
		ID:          j.ID,
		Type:        j.Type,
		CorpusID:    j.CorpusID,
		ModelName:   j.ModelName,
		Start:       j.Start,
		Update:      j.Update,
		Finished:    j.Finished,
		Error:       jobs.ErrorToString(j.Error),
		OK:          j.Error == nil,
		Result:      j.Result,
		NumRestarts: j.NumRestarts,
	}
}

func (j TrainJobInfo) GetError() error {
	return j.Error
}

func (j TrainJobInfo) WithError(err error) jobs.GeneralJobInfo {
	return TrainJobInfo{
		ID:          j.ID,
		Type:        j.Type,
		CorpusID:    j.CorpusID,
		ModelName:   j.ModelName,
		Start:       j.Start,
		Update:      jobs.JSONTime(time.Now()),
		Finished:    true,
		Error:       err,
		Result:      j.Result,
		NumRestarts: j.NumRestarts,
	}
}
