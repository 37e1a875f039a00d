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
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

var (
	ErrorModelNotFound  = errors.New("tagger model not found")
	ErrorInvalidModelID = errors.New("invalid tagger model name")

	modelNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

const modelFileSuffix = ".gob"

// Conf configures the tagger subsystem
type Conf struct {

	// ModelDir is a directory where trained models are stored
	ModelDir string `json:"modelDir"`

	// Training provides defaults for training runs which do not
	// specify their own parameters
	Training TrainingSetup `json:"training"`
}

// Registry keeps trained taggers addressable by name. Models are
// stored on the disk via gob and loaded lazily on first use.
type Registry struct {
	conf    *Conf
	taggers *collections.ConcurrentMap[string, *Tagger]
}

func (reg *Registry) modelPath(name string) string {
	return filepath.Join(reg.conf.ModelDir, name+modelFileSuffix)
}

// Save stores a model to the disk and makes it immediately
// available for tagging.
func (reg *Registry) Save(model *Model) error {
	if !modelNamePattern.MatchString(model.Name) {
		return fmt.Errorf("failed to save model %s: %w", model.Name, ErrorInvalidModelID)
	}
	tgr, err := NewTagger(model)
	if err != nil {
		return fmt.Errorf("failed to save model %s: %w", model.Name, err)
	}
	if err := os.MkdirAll(reg.conf.ModelDir, 0755); err != nil {
		return fmt.Errorf("failed to save model %s: %w", model.Name, err)
	}
	fw, err := os.Create(reg.modelPath(model.Name))
	if err != nil {
		return fmt.Errorf("failed to save model %s: %w", model.Name, err)
	}
	defer fw.Close()
	if err := gob.NewEncoder(fw).Encode(model); err != nil {
		return fmt.Errorf("failed to save model %s: %w", model.Name, err)
	}
	reg.taggers.Set(model.Name, tgr)
	log.Info().
		Str("modelName", model.Name).
		Str("file", reg.modelPath(model.Name)).
		Msg("stored tagger model")
	return nil
}

// Get provides a ready-to-use tagger of the given name
func (reg *Registry) Get(name string) (*Tagger, error) {
	if tgr, ok := reg.taggers.GetWithTest(name); ok {
		return tgr, nil
	}
	if !modelNamePattern.MatchString(name) {
		return nil, fmt.Errorf("failed to load model %s: %w", name, ErrorInvalidModelID)
	}
	isFile, err := fs.IsFile(reg.modelPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", name, err)
	}
	if !isFile {
		return nil, fmt.Errorf("failed to load model %s: %w", name, ErrorModelNotFound)
	}
	fr, err := os.Open(reg.modelPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", name, err)
	}
	defer fr.Close()
	var model Model
	if err := gob.NewDecoder(fr).Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", name, err)
	}
	tgr, err := NewTagger(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", name, err)
	}
	reg.taggers.Set(name, tgr)
	return tgr, nil
}

// List provides all the stored models sorted by name
func (reg *Registry) List() ([]*Model, error) {
	files, err := os.ReadDir(reg.conf.ModelDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Model{}, nil
		}
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	ans := make([]*Model, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), modelFileSuffix) {
			continue
		}
		name := strings.TrimSuffix(f.Name(), modelFileSuffix)
		tgr, err := reg.Get(name)
		if err != nil {
			log.Warn().Err(err).Str("file", f.Name()).Msg("skipping unreadable tagger model")
			continue
		}
		ans = append(ans, tgr.Model())
	}
	sort.Slice(ans, func(i, j int) bool { return ans[i].Name < ans[j].Name })
	return ans, nil
}

// NewRegistry is the default factory
func NewRegistry(conf *Conf) *Registry {
	return &Registry{
		conf:    conf,
		taggers: collections.NewConcurrentMap[string, *Tagger](),
	}
}
