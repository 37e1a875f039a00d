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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"tupi/common"
)

var (
	ErrorInvalidEntry   = errors.New("invalid dictionary entry")
	ErrorImportStopped  = errors.New("dictionary import stopped")
	ErrorTooManyBadRows = errors.New("too many invalid dictionary entries")

	// delafLinePattern matches DELAF entries (form,lemma.POS:morph);
	// the morphological part is optional and the PoS code may carry
	// extra markers joined with "+" (e.g. N+Pr)
	delafLinePattern = regexp.MustCompile(`^(.+),(.*)\.([a-zA-Z+]+)(?::(.+))?$`)
)

const maxNumBadRows = 100

// unitexPos maps Unitex-PB PoS codes to the universal tagset.
// Codes missing here fall back to the residual class X.
var unitexPos = map[string]common.UPosTag{
	"N":      common.UPosNoun,
	"A":      common.UPosAdj,
	"V":      common.UPosVerb,
	"ADV":    common.UPosAdv,
	"PREP":   common.UPosAdp,
	"DET":    common.UPosDet,
	"PRO":    common.UPosPron,
	"CONJ":   common.UPosConj,
	"SIGL":   common.UPosNoun,
	"ABREV":  common.UPosNoun,
	"INTERJ": common.UPosX,
}

// Entry is a single lemma dictionary record
type Entry struct {
	Form  string `json:"form"`
	Lemma string `json:"lemma"`

	// PoS is the original Unitex-PB PoS code (e.g. "N+Pr")
	PoS string `json:"pos"`

	// UPos is the universal tagset equivalent of PoS
	UPos common.UPosTag `json:"upos"`

	// Morph is a raw morphological specification (e.g. "fp")
	Morph string `json:"morph,omitempty"`
}

// translateUnitexPos maps a Unitex-PB PoS code to the universal
// tagset. Extra markers after "+" do not affect the word class so
// only the leading code is considered.
func translateUnitexPos(pos string) common.UPosTag {
	if idx := strings.Index(pos, "+"); idx > -1 {
		pos = pos[:idx]
	}
	if ans, ok := unitexPos[strings.ToUpper(pos)]; ok {
		return ans
	}
	return common.UPosX
}

// ParseEntry parses a single DELAF dictionary line. An empty lemma
// part means the lemma equals the form itself.
func ParseEntry(line string) (Entry, error) {
	srch := delafLinePattern.FindStringSubmatch(line)
	if srch == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrorInvalidEntry, line)
	}
	ans := Entry{
		Form:  srch[1],
		Lemma: srch[2],
		PoS:   srch[3],
		Morph: srch[4],
	}
	if ans.Lemma == "" {
		ans.Lemma = ans.Form
	}
	ans.UPos = translateUnitexPos(ans.PoS)
	return ans, nil
}

// ReadDict reads a DELAF dictionary file entry by entry. Occasional
// malformed lines are skipped with a warning, a file producing too
// many of them is refused as a whole.
func ReadDict(ctx context.Context, path string, onEntry func(Entry) error) error {
	fr, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}
	defer fr.Close()
	return readDict(ctx, fr, onEntry)
}

func readDict(ctx context.Context, src io.Reader, onEntry func(Entry) error) error {
	scanner := bufio.NewScanner(src)
	numBadRows := 0
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s", ErrorImportStopped, ctx.Err())
		default:
		}
		line := strings.TrimSpace(scanner.Text())
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" {
			continue
		}
		entry, err := ParseEntry(line)
		if err != nil {
			log.Warn().Err(err).Int("lineNumber", lineNum).Msg("skipping dictionary entry")
			numBadRows++
			if numBadRows > maxNumBadRows {
				return ErrorTooManyBadRows
			}
			continue
		}
		if err := onEntry(entry); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}
	return nil
}
