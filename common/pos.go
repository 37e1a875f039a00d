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
	"errors"
	"fmt"
)

var (
	ErrorPosNotDefined = errors.New("PoS not defined")
)

// UPosTag is a single tag of the Universal PoS Tagset
// as proposed by Petrov, Das and McDonald
// (https://arxiv.org/abs/1104.2086). The tagset is closed,
// any value outside the 12 constants below is invalid.
type UPosTag string

const (
	UPosNoun  UPosTag = "NOUN"
	UPosVerb  UPosTag = "VERB"
	UPosAdj   UPosTag = "ADJ"
	UPosAdv   UPosTag = "ADV"
	UPosPron  UPosTag = "PRON"
	UPosDet   UPosTag = "DET"
	UPosAdp   UPosTag = "ADP"
	UPosNum   UPosTag = "NUM"
	UPosConj  UPosTag = "CONJ"
	UPosPrt   UPosTag = "PRT"
	UPosPunct UPosTag = "."
	UPosX     UPosTag = "X"
)

func (t UPosTag) Validate() error {
	switch t {
	case UPosNoun, UPosVerb, UPosAdj, UPosAdv, UPosPron, UPosDet,
		UPosAdp, UPosNum, UPosConj, UPosPrt, UPosPunct, UPosX:
		return nil
	}
	return fmt.Errorf("invalid universal PoS tag: %s", t)
}

func (t UPosTag) String() string {
	return string(t)
}

// UPosTagList returns all the 12 universal tags in a fixed order
// (open classes first, punctuation and the residual class last).
func UPosTagList() []UPosTag {
	return []UPosTag{
		UPosNoun, UPosVerb, UPosAdj, UPosAdv, UPosPron, UPosDet,
		UPosAdp, UPosNum, UPosConj, UPosPrt, UPosPunct, UPosX,
	}
}

// SupportedTagset is a name of a Portuguese corpus tagset
// TUPI is able to translate to the universal tagset.
type SupportedTagset string

// Validate tests whether the value is one of known types.
// Please note that the empty value is also considered OK
// (otherwise we wouldn't have a valid zero value)
func (st SupportedTagset) Validate() error {
	if st == TagsetMacMorpho ||
		st == TagsetFloresta ||
		st == TagsetLacioWeb ||
		st == "" {
		return nil
	}
	return fmt.Errorf(
		"invalid tagset type: %s (valid options: %s, %s, %s)",
		st, TagsetMacMorpho, TagsetFloresta, TagsetLacioWeb)
}

func (st SupportedTagset) String() string {
	return string(st)
}

const (
	TagsetMacMorpho SupportedTagset = "macmorpho"
	TagsetFloresta  SupportedTagset = "floresta"
	TagsetLacioWeb  SupportedTagset = "lacioweb"
)

func SupportedTagsetList() []SupportedTagset {
	return []SupportedTagset{TagsetMacMorpho, TagsetFloresta, TagsetLacioWeb}
}

func GetFirstSupportedTagset(values []SupportedTagset) SupportedTagset {
	for _, v := range values {
		if v != "" && v.Validate() == nil {
			return v
		}
	}
	return ""
}
