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
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"tupi/corpus"
	"tupi/jobs"
)

var ErrorEmptyTrainingData = errors.New("no usable training data found in corpus")

// freqTable counts tag occurrences per lookup key during training
type freqTable map[string]map[string]int

func (ft freqTable) incr(key, tag string) {
	if _, ok := ft[key]; !ok {
		ft[key] = make(map[string]int)
	}
	ft[key][tag]++
}

// mostFrequent reduces a frequency table to a key->tag lookup.
// Ties are broken by tag name so repeated trainings of the same
// data produce the same model.
func (ft freqTable) mostFrequent() map[string]string {
	ans := make(map[string]string, len(ft))
	for key, counts := range ft {
		tags := make([]string, 0, len(counts))
		for tag := range counts {
			tags = append(tags, tag)
		}
		slices.Sort(tags)
		best := tags[0]
		for _, tag := range tags[1:] {
			if counts[tag] > counts[best] {
				best = tag
			}
		}
		ans[key] = best
	}
	return ans
}

// Train creates a tagger model out of a configured corpus. The
// corpus is read with its tags translated to the universal tagset,
// split into a training and a held-out part and the trained chain
// is evaluated on the latter.
func Train(
	ctx context.Context,
	setup *corpus.CorporaSetup,
	corp corpus.CorpusSetup,
	modelName string,
	trainingSetup TrainingSetup,
) (*Model, error) {
	trainingSetup = trainingSetup.WithDefaults()
	if err := trainingSetup.Validate(); err != nil {
		return nil, fmt.Errorf("failed to train tagger %s: %w", modelName, err)
	}
	var sentences []corpus.TaggedSentence
	err := corpus.ReadMapped(ctx, setup, corp, func(sent corpus.TaggedSentence) error {
		sentences = append(sentences, sent)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to train tagger %s: %w", modelName, err)
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("failed to train tagger %s: %w", modelName, ErrorEmptyTrainingData)
	}
	numTrain := int(float64(len(sentences)) * trainingSetup.TrainRatio)
	if numTrain == 0 {
		numTrain = len(sentences)
	}
	trainSet := sentences[:numTrain]
	testSet := sentences[numTrain:]
	log.Info().
		Str("modelName", modelName).
		Str("corpusId", corp.ID).
		Int("numTrainSentences", len(trainSet)).
		Int("numTestSentences", len(testSet)).
		Msg("training tagger")

	model := &Model{
		Name:              modelName,
		CorpusID:          corp.ID,
		Created:           jobs.CurrentDatetime(),
		DefaultTag:        trainingSetup.DefaultTag,
		Regexps:           trainingSetup.Regexps,
		AffixLength:       trainingSetup.AffixLength,
		MinStemLength:     trainingSetup.MinStemLength,
		NumTrainSentences: len(trainSet),
		NumTestSentences:  len(testSet),
	}
	model.Sequence = make([]TaggerKind, len(trainingSetup.Sequence))
	for i, name := range trainingSetup.Sequence {
		kind, err := NormalizeTaggerKind(name)
		if err != nil {
			return nil, fmt.Errorf("failed to train tagger %s: %w", modelName, err)
		}
		model.Sequence[i] = kind
	}

	affixFreq := make(freqTable)
	unigramFreq := make(freqTable)
	bigramFreq := make(freqTable)
	trigramFreq := make(freqTable)
	for _, sent := range trainSet {
		prevTags := make([]string, len(sent))
		for i, tok := range sent {
			prevTags[i] = tok.Tag
		}
		for i, tok := range sent {
			if affix, ok := affixOf(tok.Word, model.AffixLength, model.MinStemLength); ok {
				affixFreq.incr(affix, tok.Tag)
			}
			unigramFreq.incr(ngramKey(tok.Word, i, 1, prevTags), tok.Tag)
			bigramFreq.incr(ngramKey(tok.Word, i, 2, prevTags), tok.Tag)
			trigramFreq.incr(ngramKey(tok.Word, i, 3, prevTags), tok.Tag)
		}
	}
	model.Affix = affixFreq.mostFrequent()
	model.Unigram = unigramFreq.mostFrequent()
	model.Bigram = bigramFreq.mostFrequent()
	model.Trigram = trigramFreq.mostFrequent()

	tgr, err := NewTagger(model)
	if err != nil {
		return nil, fmt.Errorf("failed to train tagger %s: %w", modelName, err)
	}
	if len(testSet) > 0 {
		model.Eval = Evaluate(tgr, testSet)
		log.Info().
			Str("modelName", modelName).
			Float64("accuracy", model.Eval.Accuracy).
			Msg("evaluated tagger")
	}
	return model, nil
}
