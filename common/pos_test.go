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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUPosTagListIsComplete(t *testing.T) {
	tags := UPosTagList()
	assert.Equal(t, 12, len(tags))
	for _, tag := range tags {
		assert.NoError(t, tag.Validate())
	}
}

func TestUPosTagValidateRejectsUnknown(t *testing.T) {
	assert.Error(t, UPosTag("FOO").Validate())
	assert.Error(t, UPosTag("noun").Validate())
	assert.Error(t, UPosTag("").Validate())
}

func TestSupportedTagsetValidate(t *testing.T) {
	assert.NoError(t, TagsetMacMorpho.Validate())
	assert.NoError(t, TagsetFloresta.Validate())
	assert.NoError(t, TagsetLacioWeb.Validate())
	assert.NoError(t, SupportedTagset("").Validate())
	assert.Error(t, SupportedTagset("penn").Validate())
}

func TestGetFirstSupportedTagset(t *testing.T) {
	v := GetFirstSupportedTagset([]SupportedTagset{"", "unknown", TagsetFloresta})
	assert.Equal(t, TagsetFloresta, v)
	v = GetFirstSupportedTagset([]SupportedTagset{TagsetLacioWeb, TagsetFloresta})
	assert.Equal(t, TagsetLacioWeb, v)
}
