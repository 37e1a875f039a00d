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
	"strings"

	"tupi/common"
)

// Floresta Sintá(c)tica uses composite labels where the PoS tag
// is preceded by syntactic function markers joined with '+'
// (e.g. "H+prp-"). Only the last element takes part in the lookup.
// Symbol set: http://visl.sdu.dk/visl/pt/symbolset-floresta.html
var florestaMapping = Mapping{
	// punctuation
	"!": common.UPosPunct, "\"": common.UPosPunct, "'": common.UPosPunct,
	"*": common.UPosPunct, ",": common.UPosPunct, "-": common.UPosPunct,
	".": common.UPosPunct, "/": common.UPosPunct, ";": common.UPosPunct,
	"?": common.UPosPunct, "[": common.UPosPunct, "]": common.UPosPunct,
	"{": common.UPosPunct, "}": common.UPosPunct,
	"»": common.UPosPunct, "«": common.UPosPunct,

	"adj": common.UPosAdj,
	"num": common.UPosNum,
	"adv": common.UPosAdv,

	// conjunctions (coordinating, subordinating)
	"conj-c": common.UPosConj,
	"conj-s": common.UPosConj,

	// determiners (articles)
	"art": common.UPosDet,

	// nouns (prop = proper noun)
	"n":    common.UPosNoun,
	"prop": common.UPosNoun,

	// pronouns
	"pron-det":  common.UPosPron,
	"pron-indp": common.UPosPron,
	"pron-pers": common.UPosPron,

	// the tagset defines no particle tag; the empty entry keeps
	// the class represented in the table
	"": common.UPosPrt,

	// adpositions; "em" occurs a few times with the trailing-dash
	// variant "prp-"; pp (prepositional phrase) goes here too
	"prp":  common.UPosAdp,
	"prp-": common.UPosAdp,
	"pp":   common.UPosAdp,

	// verbs (finite, gerund, infinitive, participle, verb phrase)
	"v-fin": common.UPosVerb,
	"v-ger": common.UPosVerb,
	"v-inf": common.UPosVerb,
	"v-pcp": common.UPosVerb,
	"vp":    common.UPosVerb,

	// residual; ec covers prefix fragments (anti-, ex-, pós...),
	// the last entry is a one-off annotation artifact
	"ec":                common.UPosX,
	"in":                common.UPosX,
	"N<{'185/60_R_14'}": common.UPosX,
}

// florestaStripSyntax drops the syntactic part of a composite
// Floresta label, keeping the PoS tag only.
func florestaStripSyntax(tag string) string {
	idx := strings.LastIndex(tag, "+")
	if idx == -1 {
		return tag
	}
	return tag[idx+1:]
}

func newFlorestaTagset() *Tagset {
	return &Tagset{
		ID:   common.TagsetFloresta,
		Name: "Floresta Sintá(c)tica",
		Description: "Tagset of the Floresta Sintá(c)tica treebank " +
			"built by Linguateca and the VISL project",
		DocURL:       "https://www.linguateca.pt/Floresta/",
		mapping:      florestaMapping,
		normalizeTag: florestaStripSyntax,
	}
}
