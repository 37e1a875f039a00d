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

import "tupi/common"

// The NILC tagset as used in the LacioWeb corpus. The table was
// extracted from the corpus data; it keeps a few annotation typos
// (AUX and INT for VAUX and VINT, IL for the residual class).
// Tagset documentation:
// http://www.nilc.icmc.usp.br/nilc/download/tagsetcompleto.doc
var lacioWebMapping = Mapping{
	// punctuation
	"!": common.UPosPunct, "\"": common.UPosPunct, "'": common.UPosPunct,
	"(": common.UPosPunct, ")": common.UPosPunct, ",": common.UPosPunct,
	"-": common.UPosPunct, ".": common.UPosPunct, "...": common.UPosPunct,
	":": common.UPosPunct, ";": common.UPosPunct, "?": common.UPosPunct,
	"[": common.UPosPunct, "]": common.UPosPunct,

	"ADJ": common.UPosAdj,

	// numerals (cardinal, ordinal, other)
	"NC":  common.UPosNum,
	"ORD": common.UPosNum,
	"NO":  common.UPosNum,

	// adverbs (incl. contractions and multiword adverbs)
	"ADV":      common.UPosAdv,
	"ADV+PPOA": common.UPosAdv,
	"ADV+PPR":  common.UPosAdv,
	"LADV":     common.UPosAdv,

	// conjunctions
	"CONJCOORD": common.UPosConj,
	"CONJSUB":   common.UPosConj,
	"LCONJ":     common.UPosConj,

	// determiners (articles)
	"ART": common.UPosDet,

	// nouns
	"N":  common.UPosNoun,
	"NP": common.UPosNoun,

	// pronouns
	"PAPASS":    common.UPosPron,
	"PD":        common.UPosPron,
	"PIND":      common.UPosPron,
	"PINT":      common.UPosPron,
	"PPOA":      common.UPosPron,
	"PPOA+PPOA": common.UPosPron,
	"PPOT":      common.UPosPron,
	"PPR":       common.UPosPron,
	"PPS":       common.UPosPron,
	"PR":        common.UPosPron,
	"PREAL":     common.UPosPron,
	"PTRA":      common.UPosPron,
	"LP":        common.UPosPron,

	// particles (denotative words)
	"PDEN": common.UPosPrt,
	"LDEN": common.UPosPrt,

	// adpositions (incl. contractions)
	"PREP":      common.UPosAdp,
	"PREP+ADJ":  common.UPosAdp,
	"PREP+ADV":  common.UPosAdp,
	"PREP+ART":  common.UPosAdp,
	"PREP+N":    common.UPosAdp,
	"PREP+PD":   common.UPosAdp,
	"PREP+PPOA": common.UPosAdp,
	"PREP+PPOT": common.UPosAdp,
	"PREP+PPR":  common.UPosAdp,
	"PREP+PREP": common.UPosAdp,
	"LPREP":     common.UPosAdp,
	"LPREP+ART": common.UPosAdp,

	// verbs; AUX is a typo for VAUX (sendo, continuar, deve,
	// foram_V), INT for VINT (ocorrido)
	"VAUX":        common.UPosVerb,
	"VAUX!PPOA":   common.UPosVerb,
	"VAUX+PPOA":   common.UPosVerb,
	"VBI":         common.UPosVerb,
	"VBI+PAPASS":  common.UPosVerb,
	"VBI+PPOA":    common.UPosVerb,
	"VBI+PPR":     common.UPosVerb,
	"VINT":        common.UPosVerb,
	"VINT+PAPASS": common.UPosVerb,
	"VINT+PPOA":   common.UPosVerb,
	"VINT+PREAL":  common.UPosVerb,
	"VLIG":        common.UPosVerb,
	"VLIG+PPOA":   common.UPosVerb,
	"VTD":         common.UPosVerb,
	"VTD!PPOA":    common.UPosVerb,
	"VTD+PAPASS":  common.UPosVerb,
	"VTD+PPOA":    common.UPosVerb,
	"VTD+PPR":     common.UPosVerb,
	"VTD+PREAL":   common.UPosVerb,
	"VTI":         common.UPosVerb,
	"VTI+PPOA":    common.UPosVerb,
	"VTI+PREAL":   common.UPosVerb,
	"AUX":         common.UPosVerb,
	"INT":         common.UPosVerb,

	// residual; IL occurs twice for chemical formulas (CL-, po4-)
	"I":   common.UPosX,
	"RES": common.UPosX,
	"IL":  common.UPosX,
}

func newLacioWebTagset() *Tagset {
	return &Tagset{
		ID:   common.TagsetLacioWeb,
		Name: "LacioWeb (NILC)",
		Description: "NILC tagset as used in the LacioWeb corpus " +
			"of written Brazilian Portuguese",
		DocURL:  "http://www.nilc.icmc.usp.br/nilc/download/tagsetcompleto.doc",
		mapping: lacioWebMapping,
	}
}
