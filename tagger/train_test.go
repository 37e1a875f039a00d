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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tupi/common"
	"tupi/corpus"
)

func prepareTrainingCorpus(t *testing.T, data string) (*corpus.CorporaSetup, corpus.CorpusSetup) {
	dataDir := t.TempDir()
	err := os.WriteFile(filepath.Join(dataDir, "corpus.txt"), []byte(data), 0644)
	assert.NoError(t, err)
	setup := &corpus.CorporaSetup{DataDir: dataDir}
	corp := corpus.CorpusSetup{
		ID:       "mac_morpho",
		Tagset:   common.TagsetMacMorpho,
		DataFile: "corpus.txt",
		Format:   corpus.FormatTagged,
	}
	return setup, corp
}

func TestTrain(t *testing.T) {
	// ART -> DET, N -> NOUN, V -> VERB, . -> .
	sent := "O_ART gato_N viu_V o_ART rato_N ._.\n"
	setup, corp := prepareTrainingCorpus(t, strings.Repeat(sent, 10))
	model, err := Train(context.Background(), setup, corp, "model1", TrainingSetup{})
	assert.NoError(t, err)
	assert.Equal(t, "model1", model.Name)
	assert.Equal(t, "mac_morpho", model.CorpusID)
	assert.Equal(t, 9, model.NumTrainSentences)
	assert.Equal(t, 1, model.NumTestSentences)
	assert.Equal(t, "NOUN", model.Unigram["gato"])
	assert.Equal(t, "DET", model.Unigram["O"])
	assert.Equal(t, "VERB", model.Bigram["NOUN\tviu"])

	tgr, err := NewTagger(model)
	assert.NoError(t, err)
	tagged := tgr.TagSentence([]string{"O", "gato", "viu", "o", "rato", "."})
	assert.Equal(t, "DET", tagged[0].Tag)
	assert.Equal(t, "NOUN", tagged[1].Tag)
	assert.Equal(t, "VERB", tagged[2].Tag)
	assert.Equal(t, ".", tagged[5].Tag)

	// the held-out sentence repeats the training data so the
	// evaluation must be perfect
	assert.NotNil(t, model.Eval)
	assert.InDelta(t, 1.0, model.Eval.Accuracy, 0.001)
	assert.Equal(t, 6, model.Eval.NumTokens)
}

func TestTrainUnknownWordsUseBackoff(t *testing.T) {
	sent := "O_ART gato_N viu_V o_ART rato_N ._.\n"
	setup, corp := prepareTrainingCorpus(t, strings.Repeat(sent, 10))
	model, err := Train(context.Background(), setup, corp, "model1", TrainingSetup{})
	assert.NoError(t, err)
	tgr, err := NewTagger(model)
	assert.NoError(t, err)
	tagged := tgr.TagSentence([]string{"42", "zzz"})
	assert.Equal(t, "NUM", tagged[0].Tag)
	assert.Equal(t, "X", tagged[1].Tag)
}

func TestTrainEmptyCorpus(t *testing.T) {
	setup, corp := prepareTrainingCorpus(t, "")
	_, err := Train(context.Background(), setup, corp, "model1", TrainingSetup{})
	assert.ErrorIs(t, err, ErrorEmptyTrainingData)
}

func TestTrainInvalidSetup(t *testing.T) {
	sent := "O_ART gato_N\n"
	setup, corp := prepareTrainingCorpus(t, sent)
	_, err := Train(
		context.Background(), setup, corp, "model1",
		TrainingSetup{Sequence: []string{"perceptron"}},
	)
	assert.Error(t, err)
}
