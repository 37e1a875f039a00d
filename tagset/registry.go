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
	"fmt"

	"tupi/common"
)

var (
	tagsetList []*Tagset = []*Tagset{
		newMacMorphoTagset(),
		newFlorestaTagset(),
		newLacioWebTagset(),
	}
)

// Get returns the tagset registered under the provided name.
func Get(name common.SupportedTagset) (*Tagset, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}
	for _, ts := range tagsetList {
		if ts.ID == name {
			return ts, nil
		}
	}
	return nil, fmt.Errorf("tagset not available: %s", name)
}

// List returns all the registered tagsets.
func List() []*Tagset {
	ans := make([]*Tagset, len(tagsetList))
	copy(ans, tagsetList)
	return ans
}

// Translate is a shortcut for Get + Tagset.Translate.
func Translate(name common.SupportedTagset, tag string) (common.UPosTag, error) {
	ts, err := Get(name)
	if err != nil {
		return "", err
	}
	return ts.Translate(tag)
}
