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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaggerKind(t *testing.T) {
	for input, expected := range map[string]TaggerKind{
		"unigram":       TaggerUnigram,
		"UnigramTagger": TaggerUnigram,
		"TRIGRAM":       TaggerTrigram,
		"Regex":         TaggerRegexp,
		"RegexpTagger":  TaggerRegexp,
		"Default":       TaggerDefault,
		"affix tagger":  TaggerAffix,
	} {
		kind, err := NormalizeTaggerKind(input)
		assert.NoError(t, err)
		assert.Equal(t, expected, kind)
	}
}

func TestNormalizeTaggerKindInvalid(t *testing.T) {
	_, err := NormalizeTaggerKind("brill")
	assert.Error(t, err)
}

func TestTrainingSetupDefaults(t *testing.T) {
	setup := TrainingSetup{}.WithDefaults()
	assert.Equal(
		t,
		[]string{"trigram", "bigram", "regexp", "unigram", "affix", "default"},
		setup.Sequence,
	)
	assert.Equal(t, "X", setup.DefaultTag)
	assert.Equal(t, 3, setup.AffixLength)
	assert.Equal(t, 2, setup.MinStemLength)
	assert.InDelta(t, 0.9, setup.TrainRatio, 0.001)
	assert.NoError(t, setup.Validate())
}

func TestTrainingSetupValidate(t *testing.T) {
	setup := TrainingSetup{}.WithDefaults()
	setup.DefaultTag = "FOO"
	assert.Error(t, setup.Validate())

	setup = TrainingSetup{}.WithDefaults()
	setup.TrainRatio = 1.5
	assert.Error(t, setup.Validate())

	setup = TrainingSetup{}.WithDefaults()
	setup.Sequence = []string{"unigram", "hmm"}
	assert.Error(t, setup.Validate())
}

func TestDefaultStepAlwaysAnswers(t *testing.T) {
	model := &Model{
		Name:       "m1",
		Sequence:   []TaggerKind{TaggerDefault},
		DefaultTag: "X",
	}
	tgr, err := NewTagger(model)
	assert.NoError(t, err)
	tagged := tgr.TagSentence([]string{"isso", "mesmo"})
	assert.Equal(t, "X", tagged[0].Tag)
	assert.Equal(t, "X", tagged[1].Tag)
}

func TestRegexpStepMatchesNumbers(t *testing.T) {
	model := &Model{
		Name:       "m1",
		Sequence:   []TaggerKind{TaggerRegexp, TaggerDefault},
		DefaultTag: "X",
		Regexps:    dfltRegexps,
	}
	tgr, err := NewTagger(model)
	assert.NoError(t, err)
	tagged := tgr.TagSentence([]string{"-12", "3.14", "42", "3,14", "quarenta"})
	assert.Equal(t, "NUM", tagged[0].Tag)
	assert.Equal(t, "NUM", tagged[1].Tag)
	assert.Equal(t, "NUM", tagged[2].Tag)
	assert.Equal(t, "X", tagged[3].Tag)
	assert.Equal(t, "X", tagged[4].Tag)
}

func TestRegexpStepInvalidPattern(t *testing.T) {
	model := &Model{
		Name:       "m1",
		Sequence:   []TaggerKind{TaggerRegexp},
		DefaultTag: "X",
		Regexps:    []RegexpRule{{Pattern: "[", Tag: "NUM"}},
	}
	_, err := NewTagger(model)
	assert.Error(t, err)
}

func TestAffixStepSkipsShortWords(t *testing.T) {
	model := &Model{
		Name:          "m1",
		Sequence:      []TaggerKind{TaggerAffix, TaggerDefault},
		DefaultTag:    "X",
		AffixLength:   3,
		MinStemLength: 2,
		Affix:         map[string]string{"ndo": "VERB", "oso": "ADJ"},
	}
	tgr, err := NewTagger(model)
	assert.NoError(t, err)
	tagged := tgr.TagSentence([]string{"cantando", "gostoso", "indo", "de"})
	assert.Equal(t, "VERB", tagged[0].Tag)
	assert.Equal(t, "ADJ", tagged[1].Tag)
	// "indo" has a known suffix but is too short for the stem rule
	assert.Equal(t, "X", tagged[2].Tag)
	assert.Equal(t, "X", tagged[3].Tag)
}

func TestBackoffOrder(t *testing.T) {
	model := &Model{
		Name:       "m1",
		Sequence:   []TaggerKind{TaggerBigram, TaggerUnigram, TaggerDefault},
		DefaultTag: "X",
		Unigram:    map[string]string{"canto": "NOUN"},
		Bigram:     map[string]string{"PRON\tcanto": "VERB"},
	}
	tgr, err := NewTagger(model)
	assert.NoError(t, err)
	// without a pronoun context the bigram table has no answer
	// and the unigram result wins
	tagged := tgr.TagSentence([]string{"canto"})
	assert.Equal(t, "NOUN", tagged[0].Tag)

	model.Unigram["eu"] = "PRON"
	tgr, err = NewTagger(model)
	assert.NoError(t, err)
	tagged = tgr.TagSentence([]string{"eu", "canto"})
	assert.Equal(t, "PRON", tagged[0].Tag)
	assert.Equal(t, "VERB", tagged[1].Tag)
}

func TestNgramKeyShrinksAtSentenceStart(t *testing.T) {
	prev := []string{"DET", "NOUN"}
	assert.Equal(t, "dorme", ngramKey("dorme", 0, 3, nil))
	assert.Equal(t, "DET\tgato", ngramKey("gato", 1, 3, prev))
	assert.Equal(t, "DET\tNOUN\tdorme", ngramKey("dorme", 2, 3, prev))
	assert.Equal(t, "NOUN\tdorme", ngramKey("dorme", 2, 2, prev))
	assert.Equal(t, "dorme", ngramKey("dorme", 2, 1, prev))
}

func TestTokenize(t *testing.T) {
	assert.Equal(
		t,
		[]string{"O", "gato", "dorme", "."},
		Tokenize("O gato dorme."),
	)
	assert.Equal(
		t,
		[]string{"Saiu", ",", "voltou", "?"},
		Tokenize("Saiu, voltou?"),
	)
	assert.Equal(t, []string{"."}, Tokenize("."))
	assert.Empty(t, Tokenize("   "))
}
