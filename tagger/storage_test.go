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

func testModel(name string) *Model {
	return &Model{
		Name:          name,
		CorpusID:      "mac_morpho",
		Sequence:      []TaggerKind{TaggerUnigram, TaggerDefault},
		DefaultTag:    "X",
		AffixLength:   3,
		MinStemLength: 2,
		Unigram:       map[string]string{"gato": "NOUN"},
	}
}

func TestRegistrySaveAndGet(t *testing.T) {
	reg := NewRegistry(&Conf{ModelDir: t.TempDir()})
	assert.NoError(t, reg.Save(testModel("model1")))

	tgr, err := reg.Get("model1")
	assert.NoError(t, err)
	tagged := tgr.TagSentence([]string{"gato", "zzz"})
	assert.Equal(t, "NOUN", tagged[0].Tag)
	assert.Equal(t, "X", tagged[1].Tag)
}

func TestRegistryLoadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(&Conf{ModelDir: dir})
	assert.NoError(t, reg.Save(testModel("model1")))

	// a fresh registry must find the model on the disk
	reg2 := NewRegistry(&Conf{ModelDir: dir})
	tgr, err := reg2.Get("model1")
	assert.NoError(t, err)
	assert.Equal(t, "mac_morpho", tgr.Model().CorpusID)
	assert.Equal(t, []TaggerKind{TaggerUnigram, TaggerDefault}, tgr.Model().Sequence)
	assert.Equal(t, "NOUN", tgr.Model().Unigram["gato"])
}

func TestRegistryGetUnknown(t *testing.T) {
	reg := NewRegistry(&Conf{ModelDir: t.TempDir()})
	_, err := reg.Get("nope")
	assert.ErrorIs(t, err, ErrorModelNotFound)
}

func TestRegistryRejectsBadName(t *testing.T) {
	reg := NewRegistry(&Conf{ModelDir: t.TempDir()})
	_, err := reg.Get("../../etc/passwd")
	assert.ErrorIs(t, err, ErrorInvalidModelID)
	assert.ErrorIs(t, reg.Save(testModel("a/b")), ErrorInvalidModelID)
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry(&Conf{ModelDir: t.TempDir()})
	assert.NoError(t, reg.Save(testModel("model2")))
	assert.NoError(t, reg.Save(testModel("model1")))

	models, err := reg.List()
	assert.NoError(t, err)
	assert.Equal(t, 2, len(models))
	assert.Equal(t, "model1", models[0].Name)
	assert.Equal(t, "model2", models[1].Name)
}

func TestRegistryListEmptyDir(t *testing.T) {
	reg := NewRegistry(&Conf{ModelDir: "/nonexistent/path/tupi-models"})
	models, err := reg.List()
	assert.NoError(t, err)
	assert.Empty(t, models)
}
