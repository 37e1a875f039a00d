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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"tupi/tagset"
)

var (
	ErrorReadingStopped = errors.New("corpus reading stopped")
)

// TaggedToken is a single word form along with its PoS tag
// as found in corpus data.
type TaggedToken struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

// TaggedSentence is a single sentence of tagged tokens
type TaggedSentence []TaggedToken

// SentenceProc consumes tagged sentences as they are read from
// a corpus. Returning an error stops the reading.
type SentenceProc func(sent TaggedSentence) error

// ReadTagged reads a corpus in the "tagged" format - one sentence
// per line, tokens separated by whitespace, each token of the form
// word<sep>TAG. Tokens without the separator are skipped.
// The provided context is checked between sentences so a running
// job can be stopped.
func ReadTagged(
	ctx context.Context,
	path string,
	corp CorpusSetup,
	onSentence SentenceProc,
) error {
	fr, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read tagged corpus: %w", err)
	}
	defer fr.Close()
	return readTagged(ctx, fr, corp, onSentence)
}

func readTagged(
	ctx context.Context,
	src io.Reader,
	corp CorpusSetup,
	onSentence SentenceProc,
) error {
	if corp.Encoding == EncodingLatin1 {
		src = charmap.ISO8859_1.NewDecoder().Reader(src)
	}
	sep := corp.GetWordTagSeparator()
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s", ErrorReadingStopped, ctx.Err())
		default:
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sent := make(TaggedSentence, 0, 20)
		for _, item := range strings.Fields(line) {
			// the separator character may occur inside a word
			// (e.g. in LacioWeb numbers), the tag starts after
			// its last occurrence
			idx := strings.LastIndex(item, sep)
			if idx <= 0 || idx == len(item)-len(sep) {
				continue
			}
			sent = append(
				sent,
				TaggedToken{Word: item[:idx], Tag: item[idx+len(sep):]},
			)
		}
		if len(sent) == 0 {
			continue
		}
		if err := onSentence(sent); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read tagged corpus: %w", err)
	}
	return nil
}

// MapToUniversal translates all the tags of a sentence to the
// universal tagset. Unknown tags map to the residual class X,
// a single stray tag must not stop a corpus conversion.
func MapToUniversal(ts *tagset.Tagset, sent TaggedSentence) TaggedSentence {
	ans := make(TaggedSentence, len(sent))
	for i, tok := range sent {
		ans[i] = TaggedToken{
			Word: tok.Word,
			Tag:  string(ts.TranslateOrDefault(tok.Tag)),
		}
	}
	return ans
}

// ReadMapped reads a corpus of any supported format with all the
// tags translated to the universal tagset.
func ReadMapped(
	ctx context.Context,
	setup *CorporaSetup,
	corp CorpusSetup,
	onSentence SentenceProc,
) error {
	ts, err := tagset.Get(corp.Tagset)
	if err != nil {
		return err
	}
	mappedProc := func(sent TaggedSentence) error {
		return onSentence(MapToUniversal(ts, sent))
	}
	return Read(ctx, setup, corp, mappedProc)
}

// Read reads a corpus in its native tagset using a format-specific
// reader.
func Read(
	ctx context.Context,
	setup *CorporaSetup,
	corp CorpusSetup,
	onSentence SentenceProc,
) error {
	path := setup.DataPath(corp)
	switch corp.Format {
	case FormatVertical:
		return ReadVertical(ctx, path, corp, onSentence)
	case FormatTagged, "":
		return ReadTagged(ctx, path, corp, onSentence)
	}
	return fmt.Errorf("cannot read corpus %s: %w", corp.ID, corp.Format.Validate())
}
