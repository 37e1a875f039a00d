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

package tagset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tupi/common"
)

// every table entry must translate to a valid universal tag and
// repeated lookups must give the same answer
func TestTablesAreClosedOverUniversalTagset(t *testing.T) {
	for _, ts := range List() {
		for tag, want := range ts.MappingTable() {
			v1, err := ts.Translate(tag)
			assert.NoError(t, err, "tagset %s, tag %s", ts.ID, tag)
			assert.NoError(t, v1.Validate(), "tagset %s, tag %s", ts.ID, tag)
			v2, err := ts.Translate(tag)
			assert.NoError(t, err)
			assert.Equal(t, v1, v2)
			assert.Equal(t, want, v1)
		}
	}
}

func TestTranslateUnknownTag(t *testing.T) {
	for _, ts := range List() {
		_, err := ts.Translate("certainly-no-such-tag")
		assert.ErrorIs(t, err, ErrorTagNotKnown)
		assert.Equal(t, common.UPosX, ts.TranslateOrDefault("certainly-no-such-tag"))
	}
}

func TestMacMorphoSamples(t *testing.T) {
	ts, err := Get(common.TagsetMacMorpho)
	assert.NoError(t, err)
	samples := map[string]common.UPosTag{
		"N":     common.UPosNoun,
		"NPRO":  common.UPosNoun,
		"V":     common.UPosVerb,
		"PCP":   common.UPosVerb,
		"ART":   common.UPosDet,
		"PDEN":  common.UPosPrt,
		"PREP|": common.UPosAdp,
		"$":     common.UPosPunct,
		"CUR":   common.UPosX,
	}
	for tag, want := range samples {
		ans, err := ts.Translate(tag)
		assert.NoError(t, err)
		assert.Equal(t, want, ans)
	}
}

func TestFlorestaStripsSyntacticPrefix(t *testing.T) {
	ts, err := Get(common.TagsetFloresta)
	assert.NoError(t, err)

	ans, err := ts.Translate("H+prp-")
	assert.NoError(t, err)
	assert.Equal(t, common.UPosAdp, ans)

	ans, err = ts.Translate("P+vp")
	assert.NoError(t, err)
	assert.Equal(t, common.UPosVerb, ans)

	ans, err = ts.Translate("SUBJ+pron-pers")
	assert.NoError(t, err)
	assert.Equal(t, common.UPosPron, ans)

	// no composite part - plain lookup
	ans, err = ts.Translate("conj-c")
	assert.NoError(t, err)
	assert.Equal(t, common.UPosConj, ans)
}

func TestLacioWebTypoTags(t *testing.T) {
	ts, err := Get(common.TagsetLacioWeb)
	assert.NoError(t, err)
	for _, tag := range []string{"AUX", "INT", "VTD!PPOA"} {
		ans, err := ts.Translate(tag)
		assert.NoError(t, err)
		assert.Equal(t, common.UPosVerb, ans)
	}
	ans, err := ts.Translate("IL")
	assert.NoError(t, err)
	assert.Equal(t, common.UPosX, ans)
}

func TestGetRejectsUnknownTagset(t *testing.T) {
	_, err := Get("penn")
	assert.Error(t, err)
}

func TestUniversalTagsSubset(t *testing.T) {
	for _, ts := range List() {
		used := ts.UniversalTags()
		assert.NotEmpty(t, used)
		for _, tag := range used {
			assert.NoError(t, tag.Validate())
		}
	}
}
