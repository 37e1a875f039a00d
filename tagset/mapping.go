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
	"encoding/json"
	"errors"
	"sort"

	"tupi/common"
)

var (
	ErrorTagNotKnown = errors.New("tag not known in tagset")
)

// Mapping translates native tags of a corpus tagset
// to the universal tagset. The tables are initialized
// once and must not be mutated afterwards.
type Mapping map[string]common.UPosTag

// Tagset represents a single supported corpus tagset along
// with its translation table to the universal tagset.
type Tagset struct {
	ID          common.SupportedTagset
	Name        string
	Description string
	DocURL      string
	mapping     Mapping

	// normalizeTag preprocesses a raw corpus tag before the table
	// lookup (e.g. Floresta tags carry syntactic prefixes).
	normalizeTag func(tag string) string
}

// NormalizeTag returns the form of a raw corpus tag the translation
// table is keyed by. For most tagsets this is an identity.
func (ts *Tagset) NormalizeTag(tag string) string {
	if ts.normalizeTag == nil {
		return tag
	}
	return ts.normalizeTag(tag)
}

// Translate returns the universal equivalent of a native tag.
// In case the tag is not part of the tagset, ErrorTagNotKnown
// is returned.
func (ts *Tagset) Translate(tag string) (common.UPosTag, error) {
	ans, ok := ts.mapping[ts.NormalizeTag(tag)]
	if !ok {
		return "", ErrorTagNotKnown
	}
	return ans, nil
}

// TranslateOrDefault behaves like Translate except that unknown
// tags fall back to the residual class X. This is the variant
// corpus mapping uses - a single stray tag must not stop
// a whole corpus conversion.
func (ts *Tagset) TranslateOrDefault(tag string) common.UPosTag {
	ans, err := ts.Translate(tag)
	if err != nil {
		return common.UPosX
	}
	return ans
}

// MappingTable returns a copy of the translation table.
func (ts *Tagset) MappingTable() Mapping {
	ans := make(Mapping, len(ts.mapping))
	for k, v := range ts.mapping {
		ans[k] = v
	}
	return ans
}

func (ts *Tagset) NumTags() int {
	return len(ts.mapping)
}

// UniversalTags lists the distinct universal tags the tagset
// actually maps to, in the canonical tag order.
func (ts *Tagset) UniversalTags() []common.UPosTag {
	used := make(map[common.UPosTag]bool)
	for _, v := range ts.mapping {
		used[v] = true
	}
	ans := make([]common.UPosTag, 0, len(used))
	for _, tag := range common.UPosTagList() {
		if used[tag] {
			ans = append(ans, tag)
		}
	}
	return ans
}

func (ts Tagset) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		ID            common.SupportedTagset `json:"id"`
		Name          string                 `json:"name"`
		Description   string                 `json:"description"`
		DocURL        string                 `json:"docUrl,omitempty"`
		NumTags       int                    `json:"numTags"`
		UniversalTags []common.UPosTag       `json:"universalTags"`
	}{
		ID:            ts.ID,
		Name:          ts.Name,
		Description:   ts.Description,
		DocURL:        ts.DocURL,
		NumTags:       ts.NumTags(),
		UniversalTags: ts.UniversalTags(),
	})
}

// ExportTable returns the translation table as a sorted list
// of pairs suitable for a stable JSON listing.
func (ts *Tagset) ExportTable() []TablePair {
	ans := make([]TablePair, 0, len(ts.mapping))
	for k, v := range ts.mapping {
		ans = append(ans, TablePair{Tag: k, UPos: v})
	}
	sort.Slice(ans, func(i, j int) bool {
		return ans[i].Tag < ans[j].Tag
	})
	return ans
}

type TablePair struct {
	Tag  string         `json:"tag"`
	UPos common.UPosTag `json:"upos"`
}
