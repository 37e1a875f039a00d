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

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/czcorpus/cnc-gokit/logging"
	vteDb "github.com/czcorpus/vert-tagextract/v3/db"
	"github.com/rs/zerolog/log"

	"tupi/corpus"
	"tupi/jobs"
	"tupi/lemma"
	"tupi/tagger"
)

const (
	dfltServerWriteTimeoutSecs = 10
	dfltLanguage               = "en"
	dfltMaxNumConcurrentJobs   = 4
	dfltJobsMaxAgeHours        = 48
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string               `json:"listenAddress"`
	ListenPort             int                  `json:"listenPort"`
	ServerReadTimeoutSecs  int                  `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                  `json:"serverWriteTimeoutSecs"`
	CorporaSetup           *corpus.CorporaSetup `json:"corporaSetup"`
	Logging                logging.LoggingConf  `json:"logging"`
	LemmaDB                *vteDb.Conf          `json:"lemmaDb"`
	Lemma                  *lemma.Conf          `json:"lemma"`
	Tagger                 *tagger.Conf         `json:"tagger"`
	Jobs                   *jobs.Conf           `json:"jobs"`
	Language               string               `json:"language"`
	srcPath                string
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ApplyDefaults(conf *Conf) {
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.Language == "" {
		conf.Language = dfltLanguage
		log.Warn().Msgf("language not specified, using default: %s", conf.Language)
	}
	if conf.Tagger == nil {
		conf.Tagger = &tagger.Conf{}
	}
	if conf.Tagger.ModelDir == "" {
		conf.Tagger.ModelDir = filepath.Join(os.TempDir(), "tupi-models")
		log.Warn().Msgf(
			"tagger.modelDir not specified, using default: %s", conf.Tagger.ModelDir)
	}
	if conf.Lemma == nil {
		conf.Lemma = &lemma.Conf{}
	}
	if conf.Jobs == nil {
		conf.Jobs = &jobs.Conf{}
	}
	if conf.Jobs.MaxNumConcurrentJobs == 0 {
		v := dfltMaxNumConcurrentJobs
		if v >= runtime.NumCPU() {
			v = runtime.NumCPU()
		}
		conf.Jobs.MaxNumConcurrentJobs = v
		log.Warn().Msgf("jobs.maxNumConcurrentJobs not specified, using default %d", v)
	}
	if conf.Jobs.MaxAgeHours == 0 {
		conf.Jobs.MaxAgeHours = dfltJobsMaxAgeHours
		log.Warn().Msgf(
			"jobs.maxAgeHours not specified, using default %d", dfltJobsMaxAgeHours)
	}
}
