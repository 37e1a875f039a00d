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
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tupi/common"
	"tupi/tagset"
)

func collectSentences(t *testing.T, src string, corp CorpusSetup) []TaggedSentence {
	var ans []TaggedSentence
	err := readTagged(
		context.Background(),
		strings.NewReader(src),
		corp,
		func(sent TaggedSentence) error {
			ans = append(ans, sent)
			return nil
		},
	)
	assert.NoError(t, err)
	return ans
}

func TestReadTagged(t *testing.T) {
	src := "O_ART gato_N dorme_V ._PU\nEla_PROPESS saiu_V ._PU\n"
	sents := collectSentences(t, src, CorpusSetup{ID: "mac_morpho"})
	assert.Equal(t, 2, len(sents))
	assert.Equal(t, TaggedToken{Word: "O", Tag: "ART"}, sents[0][0])
	assert.Equal(t, TaggedToken{Word: "gato", Tag: "N"}, sents[0][1])
	assert.Equal(t, TaggedToken{Word: ".", Tag: "PU"}, sents[0][3])
	assert.Equal(t, 3, len(sents[1]))
}

func TestReadTaggedSkipsEmptyLines(t *testing.T) {
	src := "\n\nO_ART gato_N\n\n"
	sents := collectSentences(t, src, CorpusSetup{ID: "mac_morpho"})
	assert.Equal(t, 1, len(sents))
}

func TestReadTaggedSkipsUntaggedTokens(t *testing.T) {
	src := "O_ART gato dorme_V\n"
	sents := collectSentences(t, src, CorpusSetup{ID: "mac_morpho"})
	assert.Equal(t, 2, len(sents[0]))
	assert.Equal(t, "dorme", sents[0][1].Word)
}

func TestReadTaggedSeparatorInsideWord(t *testing.T) {
	// the separator character may be part of a token so the tag
	// must start after its last occurrence
	src := "1_2_NUM\n"
	sents := collectSentences(t, src, CorpusSetup{ID: "lacio_web"})
	assert.Equal(t, TaggedToken{Word: "1_2", Tag: "NUM"}, sents[0][0])
}

func TestReadTaggedCustomSeparator(t *testing.T) {
	src := "O/ART gato/N\n"
	sents := collectSentences(t, src, CorpusSetup{ID: "x", WordTagSeparator: "/"})
	assert.Equal(t, TaggedToken{Word: "O", Tag: "ART"}, sents[0][0])
}

func TestReadTaggedLatin1(t *testing.T) {
	src := "caf\xe9_N\n"
	sents := collectSentences(t, src, CorpusSetup{ID: "mac_morpho", Encoding: EncodingLatin1})
	assert.Equal(t, "café", sents[0][0].Word)
}

func TestReadTaggedStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := readTagged(
		ctx,
		strings.NewReader("O_ART gato_N\n"),
		CorpusSetup{ID: "mac_morpho"},
		func(sent TaggedSentence) error { return nil },
	)
	assert.ErrorIs(t, err, ErrorReadingStopped)
}

func TestReadTaggedPropagatesProcError(t *testing.T) {
	customErr := assert.AnError
	err := readTagged(
		context.Background(),
		strings.NewReader("O_ART gato_N\n"),
		CorpusSetup{ID: "mac_morpho"},
		func(sent TaggedSentence) error { return customErr },
	)
	assert.ErrorIs(t, err, customErr)
}

func TestMapToUniversal(t *testing.T) {
	ts, err := tagset.Get(common.TagsetMacMorpho)
	assert.NoError(t, err)
	sent := TaggedSentence{
		{Word: "O", Tag: "ART"},
		{Word: "gato", Tag: "N"},
		{Word: "dorme", Tag: "V"},
		{Word: "???", Tag: "UNKNOWN-TAG"},
	}
	mapped := MapToUniversal(ts, sent)
	assert.Equal(t, "DET", mapped[0].Tag)
	assert.Equal(t, "NOUN", mapped[1].Tag)
	assert.Equal(t, "VERB", mapped[2].Tag)
	assert.Equal(t, "X", mapped[3].Tag)
	// words must stay untouched
	assert.Equal(t, "gato", mapped[1].Word)
}
