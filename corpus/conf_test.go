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

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"tupi/common"
)

func TestCorpusSetupValidate(t *testing.T) {
	cs := CorpusSetup{
		ID:     "mac_morpho",
		Tagset: common.TagsetMacMorpho,
		Format: FormatTagged,
	}
	assert.NoError(t, cs.Validate())
}

func TestCorpusSetupValidateMissingID(t *testing.T) {
	cs := CorpusSetup{Tagset: common.TagsetMacMorpho}
	assert.Error(t, cs.Validate())
}

func TestCorpusSetupValidateBadTagset(t *testing.T) {
	cs := CorpusSetup{ID: "x", Tagset: "penn"}
	assert.Error(t, cs.Validate())
}

func TestCorpusSetupValidateMissingTagset(t *testing.T) {
	cs := CorpusSetup{ID: "x"}
	assert.Error(t, cs.Validate())
}

func TestCorpusSetupValidateVerticalNeedsSection(t *testing.T) {
	cs := CorpusSetup{ID: "x", Tagset: common.TagsetFloresta, Format: FormatVertical}
	assert.Error(t, cs.Validate())
	cs.Vertical = &VerticalSetup{SentenceStruct: "s", TagColIdx: 1}
	assert.NoError(t, cs.Validate())
}

func TestCorpusFormatValidate(t *testing.T) {
	assert.NoError(t, FormatTagged.Validate())
	assert.NoError(t, FormatVertical.Validate())
	assert.NoError(t, CorpusFormat("").Validate())
	assert.Error(t, CorpusFormat("conllu").Validate())
}

func TestGetWordTagSeparatorDefault(t *testing.T) {
	assert.Equal(t, "_", CorpusSetup{}.GetWordTagSeparator())
	assert.Equal(t, "/", CorpusSetup{WordTagSeparator: "/"}.GetWordTagSeparator())
}

func TestCorporaSetupLoad(t *testing.T) {
	confDir := t.TempDir()
	valid := `{
		"id": "mac_morpho",
		"fullName": "Mac-Morpho",
		"tagset": "macmorpho",
		"dataFile": "macmorpho.txt",
		"format": "tagged",
		"encoding": "latin1"
	}`
	err := os.WriteFile(filepath.Join(confDir, "mac_morpho.json"), []byte(valid), 0644)
	assert.NoError(t, err)
	// an invalid entry must be skipped without failing the whole load
	err = os.WriteFile(filepath.Join(confDir, "broken.json"), []byte("{{{"), 0644)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(confDir, "notes.txt"), []byte("ignore me"), 0644)
	assert.NoError(t, err)

	cs := CorporaSetup{CorporaConfDir: confDir, DataDir: "/var/opt/tupi/data"}
	assert.NoError(t, cs.Load())
	assert.Equal(t, 1, len(cs.GetAllCorpora()))

	corp := cs.Get("mac_morpho")
	assert.False(t, corp.IsZero())
	assert.Equal(t, common.TagsetMacMorpho, corp.Tagset)
	assert.Equal(t, "/var/opt/tupi/data/macmorpho.txt", cs.DataPath(corp))

	assert.True(t, cs.Get("unknown").IsZero())
}
