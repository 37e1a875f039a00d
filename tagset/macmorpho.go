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

// The Mac-Morpho table below covers all the distinct tags occurring
// in the corpus data, including a few documented annotation typos
// (NPRO for NPROP, PREP| for PREP).
// Tagset manual: http://nilc.icmc.usp.br/macmorpho/macmorpho-manual.pdf
var macMorphoMapping = Mapping{
	// punctuation ($ included - it occurs as a punctuation token)
	"!": common.UPosPunct, "\"": common.UPosPunct, "$": common.UPosPunct,
	"'": common.UPosPunct, "(": common.UPosPunct, ")": common.UPosPunct,
	",": common.UPosPunct, "-": common.UPosPunct, ".": common.UPosPunct,
	"/": common.UPosPunct, ":": common.UPosPunct, ";": common.UPosPunct,
	"?": common.UPosPunct, "[": common.UPosPunct, "]": common.UPosPunct,

	// adjectives
	"ADJ":     common.UPosAdj,
	"ADJ|EST": common.UPosAdj,

	// numerals
	"NUM":     common.UPosNum,
	"NUM|TEL": common.UPosNum,

	// adverbs
	"ADV":        common.UPosAdv,
	"ADV-KS":     common.UPosAdv,
	"ADV-KS-REL": common.UPosAdv,
	"ADV|+":      common.UPosAdv,
	"ADV|EST":    common.UPosAdv,
	"ADV|[":      common.UPosAdv,
	"ADV|]":      common.UPosAdv,

	// conjunctions
	"KC":   common.UPosConj,
	"KC|[": common.UPosConj,
	"KC|]": common.UPosConj,
	"KS":   common.UPosConj,

	// determiners (articles)
	"ART":   common.UPosDet,
	"ART|+": common.UPosDet,

	// nouns; NPRO is a typo for NPROP (two occurrences for "Folha",
	// one for "Congresso")
	"N":       common.UPosNoun,
	"NPRO":    common.UPosNoun,
	"NPROP":   common.UPosNoun,
	"NPROP|+": common.UPosNoun,
	"N|AP":    common.UPosNoun,
	"N|DAT":   common.UPosNoun,
	"N|EST":   common.UPosNoun,
	"N|HOR":   common.UPosNoun,
	"N|TEL":   common.UPosNoun,

	// pronouns
	"PRO-KS":     common.UPosPron,
	"PRO-KS-REL": common.UPosPron,
	"PROADJ":     common.UPosPron,
	"PROPESS":    common.UPosPron,
	"PROSUB":     common.UPosPron,

	// particles (denotative words)
	"PDEN": common.UPosPrt,

	// adpositions; PREP| is a typo for PREP (two occurrences for "de")
	"PREP":   common.UPosAdp,
	"PREP|":  common.UPosAdp,
	"PREP|+": common.UPosAdp,
	"PREP|[": common.UPosAdp,
	"PREP|]": common.UPosAdp,

	// verbs (participles included)
	"V":      common.UPosVerb,
	"V|+":    common.UPosVerb,
	"VAUX":   common.UPosVerb,
	"VAUX|+": common.UPosVerb,
	"PCP":    common.UPosVerb,

	// residual (currency symbols, interjections)
	"CUR": common.UPosX,
	"IN":  common.UPosX,
}

func newMacMorphoTagset() *Tagset {
	return &Tagset{
		ID:   common.TagsetMacMorpho,
		Name: "Mac-Morpho",
		Description: "Tagset of the Mac-Morpho corpus of Brazilian " +
			"newspaper texts, annotated by NILC",
		DocURL:  "http://nilc.icmc.usp.br/macmorpho/macmorpho-manual.pdf",
		mapping: macMorphoMapping,
	}
}
