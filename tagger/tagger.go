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
	"fmt"
	"regexp"
	"strings"

	"tupi/corpus"
)

// stepTagger is a single member of a backoff chain. It either
// assigns a tag to the token at position idx or gives up and lets
// the next chain member try.
type stepTagger interface {
	Kind() TaggerKind
	tagToken(words []string, idx int, prevTags []string) (string, bool)
}

// Tagger is a runtime form of a trained Model with its backoff
// chain assembled and regular expressions compiled. It is safe for
// concurrent use.
type Tagger struct {
	model *Model
	chain []stepTagger
}

func (t *Tagger) Model() *Model {
	return t.model
}

// TagToken finds a tag for the token at position idx. The chain
// guarantees an answer as long as it ends with the default tagger.
func (t *Tagger) TagToken(words []string, idx int, prevTags []string) string {
	for _, step := range t.chain {
		if tag, ok := step.tagToken(words, idx, prevTags); ok {
			return tag
		}
	}
	return t.model.DefaultTag
}

// TagSentence tags a tokenized sentence
func (t *Tagger) TagSentence(words []string) corpus.TaggedSentence {
	ans := make(corpus.TaggedSentence, len(words))
	prevTags := make([]string, 0, len(words))
	for i, word := range words {
		tag := t.TagToken(words, i, prevTags)
		prevTags = append(prevTags, tag)
		ans[i] = corpus.TaggedToken{Word: word, Tag: tag}
	}
	return ans
}

// Tokenize splits a raw sentence into tokens. Trailing sentence
// punctuation is separated from the last word so the input matches
// the tokenization of the training corpora.
func Tokenize(sent string) []string {
	ans := make([]string, 0, 20)
	for _, item := range strings.Fields(sent) {
		trimmed := strings.TrimRight(item, ".,;:!?")
		if trimmed == "" || trimmed == item {
			ans = append(ans, item)
			continue
		}
		ans = append(ans, trimmed)
		for _, punct := range item[len(trimmed):] {
			ans = append(ans, string(punct))
		}
	}
	return ans
}

// NewTagger builds a runtime tagger out of a trained model
func NewTagger(model *Model) (*Tagger, error) {
	ans := &Tagger{
		model: model,
		chain: make([]stepTagger, 0, len(model.Sequence)),
	}
	for _, kind := range model.Sequence {
		switch kind {
		case TaggerDefault:
			ans.chain = append(ans.chain, &defaultStep{tag: model.DefaultTag})
		case TaggerRegexp:
			step, err := newRegexpStep(model.Regexps)
			if err != nil {
				return nil, fmt.Errorf("failed to create tagger %s: %w", model.Name, err)
			}
			ans.chain = append(ans.chain, step)
		case TaggerAffix:
			ans.chain = append(ans.chain, &affixStep{
				affixLength:   model.AffixLength,
				minStemLength: model.MinStemLength,
				table:         model.Affix,
			})
		case TaggerUnigram:
			ans.chain = append(ans.chain, &ngramStep{n: 1, table: model.Unigram})
		case TaggerBigram:
			ans.chain = append(ans.chain, &ngramStep{n: 2, table: model.Bigram})
		case TaggerTrigram:
			ans.chain = append(ans.chain, &ngramStep{n: 3, table: model.Trigram})
		default:
			return nil, fmt.Errorf(
				"failed to create tagger %s: invalid tagger name: %s", model.Name, kind)
		}
	}
	return ans, nil
}

// ---------------------------------

// defaultStep answers with a constant tag, typically terminating
// a backoff chain.
type defaultStep struct {
	tag string
}

func (st *defaultStep) Kind() TaggerKind {
	return TaggerDefault
}

func (st *defaultStep) tagToken(words []string, idx int, prevTags []string) (string, bool) {
	return st.tag, true
}

// ---------------------------------

type compiledRule struct {
	pattern *regexp.Regexp
	tag     string
}

// regexpStep answers based on the first matching rule of an
// ordered rule list.
type regexpStep struct {
	rules []compiledRule
}

func newRegexpStep(rules []RegexpRule) (*regexpStep, error) {
	ans := &regexpStep{rules: make([]compiledRule, len(rules))}
	for i, rule := range rules {
		rx, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid tagging rule %s: %w", rule.Pattern, err)
		}
		ans.rules[i] = compiledRule{pattern: rx, tag: rule.Tag}
	}
	return ans, nil
}

func (st *regexpStep) Kind() TaggerKind {
	return TaggerRegexp
}

func (st *regexpStep) tagToken(words []string, idx int, prevTags []string) (string, bool) {
	for _, rule := range st.rules {
		if rule.pattern.MatchString(words[idx]) {
			return rule.tag, true
		}
	}
	return "", false
}

// ---------------------------------

// affixStep answers based on word suffixes seen in training data.
// Words too short to have both the suffix and a reasonable stem
// are passed over to the next chain member.
type affixStep struct {
	affixLength   int
	minStemLength int
	table         map[string]string
}

func affixOf(word string, affixLength, minStemLength int) (string, bool) {
	runes := []rune(word)
	if len(runes) < affixLength+minStemLength {
		return "", false
	}
	return string(runes[len(runes)-affixLength:]), true
}

func (st *affixStep) Kind() TaggerKind {
	return TaggerAffix
}

func (st *affixStep) tagToken(words []string, idx int, prevTags []string) (string, bool) {
	affix, ok := affixOf(words[idx], st.affixLength, st.minStemLength)
	if !ok {
		return "", false
	}
	tag, ok := st.table[affix]
	return tag, ok
}

// ---------------------------------

// ngramStep answers with the most frequent training tag of a word
// conditioned on up to n-1 preceding tags. Near the beginning of
// a sentence the context shrinks to the available tags, both here
// and during training.
type ngramStep struct {
	n     int
	table map[string]string
}

func ngramKey(word string, idx, n int, prevTags []string) string {
	ctxStart := idx - n + 1
	if ctxStart < 0 {
		ctxStart = 0
	}
	parts := make([]string, 0, n)
	parts = append(parts, prevTags[ctxStart:idx]...)
	parts = append(parts, word)
	return strings.Join(parts, "\t")
}

func (st *ngramStep) Kind() TaggerKind {
	switch st.n {
	case 2:
		return TaggerBigram
	case 3:
		return TaggerTrigram
	}
	return TaggerUnigram
}

func (st *ngramStep) tagToken(words []string, idx int, prevTags []string) (string, bool) {
	tag, ok := st.table[ngramKey(words[idx], idx, st.n, prevTags)]
	return tag, ok
}
