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

package tagger

import (
	"golang.org/x/exp/maps"

	"tupi/common"
	"tupi/corpus"
)

// TagScore is a per-tag classification report entry
type TagScore struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`

	// Support is the number of gold standard occurrences of the tag
	Support int `json:"support"`
}

// Evaluation summarizes tagger performance on a held-out data set
type Evaluation struct {
	Accuracy  float64             `json:"accuracy"`
	MacroF1   float64             `json:"macroF1"`
	NumTokens int                 `json:"numTokens"`
	Tags      map[string]TagScore `json:"tags"`
}

// Evaluate runs the tagger on gold standard sentences and reports
// token accuracy along with per-tag precision, recall and F1.
func Evaluate(tgr *Tagger, testSet []corpus.TaggedSentence) *Evaluation {
	ans := &Evaluation{Tags: make(map[string]TagScore)}
	truePos := make(map[string]int)
	goldCount := make(map[string]int)
	predCount := make(map[string]int)
	numCorrect := 0
	for _, sent := range testSet {
		words := common.MapSlice(sent, func(tok corpus.TaggedToken, _ int) string {
			return tok.Word
		})
		predicted := tgr.TagSentence(words)
		for i, tok := range sent {
			ans.NumTokens++
			goldCount[tok.Tag]++
			predCount[predicted[i].Tag]++
			if predicted[i].Tag == tok.Tag {
				numCorrect++
				truePos[tok.Tag]++
			}
		}
	}
	if ans.NumTokens > 0 {
		ans.Accuracy = float64(numCorrect) / float64(ans.NumTokens)
	}
	for tag := range goldCount {
		score := TagScore{Support: goldCount[tag]}
		if predCount[tag] > 0 {
			score.Precision = float64(truePos[tag]) / float64(predCount[tag])
		}
		if goldCount[tag] > 0 {
			score.Recall = float64(truePos[tag]) / float64(goldCount[tag])
		}
		if score.Precision+score.Recall > 0 {
			score.F1 = 2 * score.Precision * score.Recall / (score.Precision + score.Recall)
		}
		ans.Tags[tag] = score
	}
	if len(ans.Tags) > 0 {
		ans.MacroF1 = common.SumOfMapped(
			maps.Values(ans.Tags),
			func(score TagScore) float64 { return score.F1 },
		) / float64(len(ans.Tags))
	}
	return ans
}
