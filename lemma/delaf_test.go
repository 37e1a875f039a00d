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

package lemma

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tupi/common"
)

func TestParseEntry(t *testing.T) {
	entry, err := ParseEntry("gatas,gato.N:fp")
	assert.NoError(t, err)
	assert.Equal(t, "gatas", entry.Form)
	assert.Equal(t, "gato", entry.Lemma)
	assert.Equal(t, "N", entry.PoS)
	assert.Equal(t, common.UPosNoun, entry.UPos)
	assert.Equal(t, "fp", entry.Morph)
}

func TestParseEntryNoMorph(t *testing.T) {
	entry, err := ParseEntry("hoje,hoje.ADV")
	assert.NoError(t, err)
	assert.Equal(t, "hoje", entry.Form)
	assert.Equal(t, common.UPosAdv, entry.UPos)
	assert.Equal(t, "", entry.Morph)
}

func TestParseEntryEmptyLemma(t *testing.T) {
	entry, err := ParseEntry("ontem,.ADV")
	assert.NoError(t, err)
	assert.Equal(t, "ontem", entry.Lemma)
}

func TestParseEntryCompositePos(t *testing.T) {
	entry, err := ParseEntry("Brasil,Brasil.N+Pr:ms")
	assert.NoError(t, err)
	assert.Equal(t, "N+Pr", entry.PoS)
	assert.Equal(t, common.UPosNoun, entry.UPos)
}

func TestParseEntryUnknownPos(t *testing.T) {
	entry, err := ParseEntry("hum,hum.FOO")
	assert.NoError(t, err)
	assert.Equal(t, common.UPosX, entry.UPos)
}

func TestParseEntryInvalid(t *testing.T) {
	for _, line := range []string{"", "gato", "gato,gato", "gato.N"} {
		_, err := ParseEntry(line)
		assert.ErrorIs(t, err, ErrorInvalidEntry, "line: %s", line)
	}
}

func TestReadDict(t *testing.T) {
	src := "\ufeffgatas,gato.N:fp\ngata,gato.N:fs\n\nhoje,hoje.ADV\n"
	var entries []Entry
	err := readDict(context.Background(), strings.NewReader(src), func(entry Entry) error {
		entries = append(entries, entry)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, "gatas", entries[0].Form)
	assert.Equal(t, "hoje", entries[2].Form)
}

func TestReadDictSkipsBadLines(t *testing.T) {
	src := "gatas,gato.N:fp\nthis is not an entry\nhoje,hoje.ADV\n"
	numEntries := 0
	err := readDict(context.Background(), strings.NewReader(src), func(entry Entry) error {
		numEntries++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, numEntries)
}

func TestReadDictStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := readDict(ctx, strings.NewReader("gatas,gato.N:fp\n"), func(entry Entry) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrorImportStopped)
}

func TestTranslateUnitexPos(t *testing.T) {
	assert.Equal(t, common.UPosVerb, translateUnitexPos("V"))
	assert.Equal(t, common.UPosPron, translateUnitexPos("PRO"))
	assert.Equal(t, common.UPosAdp, translateUnitexPos("PREP"))
	assert.Equal(t, common.UPosNoun, translateUnitexPos("N+Pr"))
	assert.Equal(t, common.UPosX, translateUnitexPos("PFX"))
}
