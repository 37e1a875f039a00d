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

package main

import (
	"fmt"

	"github.com/czcorpus/cnc-gokit/logging"

	"tupi/tagger"
)

type apiConf struct {
	BaseURL string `json:"baseUrl"`
}

// TaggertoolConfig configures a batch tagger training run driven
// through the HTTP API of a running service instance
type TaggertoolConfig struct {
	Logging logging.LoggingConf `json:"logging"`
	API     apiConf             `json:"api"`

	// Corpname is an identifier of a corpus configured on the server
	Corpname string `json:"corpname"`

	// ModelName is a name the trained model will be stored under
	ModelName string `json:"modelName"`

	// Training parameters are passed to the server as they are;
	// zero values mean server-side defaults
	Training tagger.TrainingSetup `json:"training"`
}

func (conf *TaggertoolConfig) Validate() error {
	if conf.API.BaseURL == "" {
		return fmt.Errorf("missing api.baseUrl")
	}
	if conf.Corpname == "" {
		return fmt.Errorf("missing corpname")
	}
	if conf.ModelName == "" {
		return fmt.Errorf("missing modelName")
	}
	return nil
}

type JobStatus struct {
	ID       string `json:"id"`
	Finished bool   `json:"finished"`
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
}
