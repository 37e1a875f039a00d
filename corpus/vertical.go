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
	"errors"
	"fmt"

	"github.com/czcorpus/vert-tagextract/v3/proc"
	"github.com/czcorpus/vert-tagextract/v3/ptcount/modders"
	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v6"
)

var ErrorTooManyParsingErrors = errors.New("too many parsing errors")

const dfltVertMaxNumErrors = 100

// sentenceCollector is a vertigo.LineProcessor gathering tagged
// sentences from a vertical file.
type sentenceCollector struct {
	ctx          context.Context
	conf         *VerticalSetup
	tagMod       *modders.StringTransformerChain
	currSentence TaggedSentence
	onSentence   SentenceProc
	errorCounter int
	maxNumErrors int
}

func (sc *sentenceCollector) handleProcError(lineNum int, err error) error {
	log.Error().Err(err).Int("lineNumber", lineNum).Msg("parsing error")
	sc.errorCounter++
	if sc.errorCounter > sc.maxNumErrors {
		return ErrorTooManyParsingErrors
	}
	return nil
}

func (sc *sentenceCollector) flushSentence() error {
	if len(sc.currSentence) == 0 {
		return nil
	}
	sent := sc.currSentence
	sc.currSentence = make(TaggedSentence, 0, 20)
	return sc.onSentence(sent)
}

func (sc *sentenceCollector) ProcStruct(st *vertigo.Structure, line int, err error) error {
	select {
	case <-sc.ctx.Done():
		return fmt.Errorf("%w: %s", ErrorReadingStopped, sc.ctx.Err())
	default:
	}
	if err != nil { // error from the Vertigo parser
		return sc.handleProcError(line, err)
	}
	if st.Name == sc.conf.SentenceStruct {
		return sc.flushSentence()
	}
	return nil
}

func (sc *sentenceCollector) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if err != nil { // error from the Vertigo parser
		return sc.handleProcError(line, err)
	}
	if st.Name == sc.conf.SentenceStruct {
		return sc.flushSentence()
	}
	return nil
}

// ProcToken is a part of vertigo.LineProcessor implementation.
// It is called by Vertigo parser when a token line is encountered.
func (sc *sentenceCollector) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		return sc.handleProcError(line, err)
	}
	word := tk.PosAttrByIndex(sc.conf.WordColIdx)
	tag := sc.tagMod.Transform(tk.PosAttrByIndex(sc.conf.TagColIdx))
	sc.currSentence = append(sc.currSentence, TaggedToken{Word: word, Tag: tag})
	return nil
}

// ReadVertical reads a corpus in the vertical format. Sentence
// boundaries are taken from the configured structure; both
// <s>...</s> pairs and self-closing sentence marks are supported.
func ReadVertical(
	ctx context.Context,
	path string,
	corp CorpusSetup,
	onSentence SentenceProc,
) error {
	vconf := corp.Vertical
	maxErrs := vconf.MaxNumErrors
	if maxErrs == 0 {
		maxErrs = dfltVertMaxNumErrors
	}
	collector := &sentenceCollector{
		ctx:          ctx,
		conf:         vconf,
		tagMod:       modders.NewStringTransformerChain(vconf.TagModFn),
		currSentence: make(TaggedSentence, 0, 20),
		onSentence:   onSentence,
		maxNumErrors: maxErrs,
	}
	parserConf := &vertigo.ParserConf{
		StructAttrAccumulator: "nil",
		Encoding:              corp.Encoding,
		LogProgressEachNth:    1000000,
	}
	vertScanner, err := proc.NewMultiFileScanner(path)
	if err != nil {
		return fmt.Errorf("failed to read vertical corpus: %w", err)
	}
	defer vertScanner.Close()
	if err := vertigo.ParseVerticalFromScanner(ctx, vertScanner, parserConf, collector); err != nil {
		return fmt.Errorf("failed to read vertical corpus: %w", err)
	}
	// a trailing sentence in case the last sentence structure
	// is not closed
	return collector.flushSentence()
}
