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
	"fmt"
	"strings"

	"tupi/common"
	"tupi/jobs"
)

const (
	TaggerDefault TaggerKind = "default"
	TaggerAffix   TaggerKind = "affix"
	TaggerRegexp  TaggerKind = "regexp"
	TaggerUnigram TaggerKind = "unigram"
	TaggerBigram  TaggerKind = "bigram"
	TaggerTrigram TaggerKind = "trigram"

	dfltAffixLength   = 3
	dfltMinStemLength = 2
	dfltTrainRatio    = 0.9
)

// TaggerKind is a name of a single tagger in a backoff sequence
type TaggerKind string

// dfltSequence lists the taggers from the first one asked down to
// the last resort.
var dfltSequence = []TaggerKind{
	TaggerTrigram, TaggerBigram, TaggerRegexp, TaggerUnigram, TaggerAffix, TaggerDefault,
}

var dfltRegexps = []RegexpRule{
	{Pattern: `^-?\d+(\.\d+)?$`, Tag: string(common.UPosNum)},
}

// NormalizeTaggerKind translates a user-entered tagger name into
// a canonical TaggerKind. Names are matched case-insensitively and
// an optional "tagger" suffix is ignored ("UnigramTagger" means
// "unigram"). The "regex" spelling is accepted for "regexp".
func NormalizeTaggerKind(v string) (TaggerKind, error) {
	name := strings.ToLower(strings.ReplaceAll(v, " ", ""))
	name = strings.TrimSuffix(name, "tagger")
	if name == "regex" {
		name = "regexp"
	}
	kind := TaggerKind(name)
	switch kind {
	case TaggerDefault, TaggerAffix, TaggerRegexp, TaggerUnigram, TaggerBigram, TaggerTrigram:
		return kind, nil
	}
	return "", fmt.Errorf("invalid tagger name: %s", v)
}

// RegexpRule maps a regular expression to a PoS tag
type RegexpRule struct {
	Pattern string `json:"pattern"`
	Tag     string `json:"tag"`
}

// TrainingSetup configures a single tagger training run. Zero
// values are replaced by defaults matching the behavior of the
// reference NLTK pipelines.
type TrainingSetup struct {

	// Sequence lists tagger names from the first one asked to the
	// last resort (an empty value means the full default chain)
	Sequence []string `json:"sequence"`

	// DefaultTag is the answer of the terminal default tagger
	DefaultTag string `json:"defaultTag"`

	Regexps []RegexpRule `json:"regexps"`

	// AffixLength is a suffix size used by the affix tagger
	AffixLength int `json:"affixLength"`

	// MinStemLength is a minimum word length remainder required for
	// the affix tagger to consider a word at all
	MinStemLength int `json:"minStemLength"`

	// TrainRatio is a fraction of corpus sentences used for training,
	// the rest serves as a held-out evaluation set
	TrainRatio float64 `json:"trainRatio"`
}

func (ts TrainingSetup) WithDefaults() TrainingSetup {
	if len(ts.Sequence) == 0 {
		ts.Sequence = make([]string, len(dfltSequence))
		for i, kind := range dfltSequence {
			ts.Sequence[i] = string(kind)
		}
	}
	if ts.DefaultTag == "" {
		ts.DefaultTag = string(common.UPosX)
	}
	if len(ts.Regexps) == 0 {
		ts.Regexps = dfltRegexps
	}
	if ts.AffixLength == 0 {
		ts.AffixLength = dfltAffixLength
	}
	if ts.MinStemLength == 0 {
		ts.MinStemLength = dfltMinStemLength
	}
	if ts.TrainRatio == 0 {
		ts.TrainRatio = dfltTrainRatio
	}
	return ts
}

func (ts TrainingSetup) Validate() error {
	for _, name := range ts.Sequence {
		if _, err := NormalizeTaggerKind(name); err != nil {
			return err
		}
	}
	if common.UPosTag(ts.DefaultTag).Validate() != nil {
		return fmt.Errorf("invalid default tag: %s", ts.DefaultTag)
	}
	if ts.TrainRatio <= 0 || ts.TrainRatio > 1 {
		return fmt.Errorf("invalid train ratio: %01.2f", ts.TrainRatio)
	}
	return nil
}

// Model is a trained tagger in its persistent form. All the lookup
// tables live here so the whole model can be stored via gob and
// rebuilt into a Tagger after loading.
type Model struct {
	Name     string        `json:"name"`
	CorpusID string        `json:"corpusId"`
	Created  jobs.JSONTime `json:"created"`

	// Sequence lists the tagger kinds from the first one asked
	// to the last resort
	Sequence []TaggerKind `json:"sequence"`

	DefaultTag    string       `json:"defaultTag"`
	Regexps       []RegexpRule `json:"regexps"`
	AffixLength   int          `json:"affixLength"`
	MinStemLength int          `json:"minStemLength"`

	Affix   map[string]string `json:"-"`
	Unigram map[string]string `json:"-"`
	Bigram  map[string]string `json:"-"`
	Trigram map[string]string `json:"-"`

	Eval *Evaluation `json:"eval"`

	// NumTrainSentences and NumTestSentences describe the train/test
	// split the model was created with
	NumTrainSentences int `json:"numTrainSentences"`
	NumTestSentences  int `json:"numTestSentences"`
}
