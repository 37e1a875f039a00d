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

package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"tupi/common"
)

const (
	FormatTagged   CorpusFormat = "tagged"
	FormatVertical CorpusFormat = "vertical"

	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"

	dfltWordTagSeparator = "_"
)

// CorpusFormat defines a supported data layout of a corpus file
type CorpusFormat string

func (cf CorpusFormat) Validate() error {
	if cf == FormatTagged || cf == FormatVertical || cf == "" {
		return nil
	}
	return fmt.Errorf("invalid corpus format: %s", cf)
}

// VerticalSetup configures reading of a corpus in the vertical
// format (one token per line, tab-separated positional attributes).
type VerticalSetup struct {

	// SentenceStruct is a structure name delimiting sentences (e.g. "s")
	SentenceStruct string `json:"sentenceStruct"`

	// WordColIdx is a zero-based index of the word form column
	WordColIdx int `json:"wordColIdx"`

	// TagColIdx is a zero-based index of the PoS tag column
	TagColIdx int `json:"tagColIdx"`

	// TagModFn is an optional colon-separated specification of
	// string transformations applied to the tag column before
	// the tagset lookup (e.g. "toLower")
	TagModFn string `json:"tagModFn"`

	// MaxNumErrors specifies how many parsing errors are tolerated
	// before the reading is given up
	MaxNumErrors int `json:"maxNumErrors"`
}

// CorpusSetup describes a single configured corpus
type CorpusSetup struct {
	ID          string                 `json:"id"`
	FullName    string                 `json:"fullName"`
	Description string                 `json:"description"`
	Tagset      common.SupportedTagset `json:"tagset"`

	// DownloadURL is where the corpus data file can be fetched from.
	// An empty value means the data must be installed manually.
	DownloadURL string `json:"downloadUrl"`

	// DataFile is a corpus file path relative to CorporaSetup.DataDir
	DataFile string `json:"dataFile"`

	Format   CorpusFormat `json:"format"`
	Encoding string       `json:"encoding"`

	// WordTagSeparator separates a word from its tag in the "tagged"
	// format (the default is "_")
	WordTagSeparator string `json:"wordTagSeparator"`

	Vertical *VerticalSetup `json:"vertical,omitempty"`
}

func (cs CorpusSetup) IsZero() bool {
	return cs.ID == ""
}

func (cs CorpusSetup) GetWordTagSeparator() string {
	if cs.WordTagSeparator == "" {
		return dfltWordTagSeparator
	}
	return cs.WordTagSeparator
}

func (cs CorpusSetup) Validate() error {
	if cs.ID == "" {
		return fmt.Errorf("missing corpus id")
	}
	if err := cs.Tagset.Validate(); err != nil {
		return fmt.Errorf("corpus %s: %w", cs.ID, err)
	}
	if cs.Tagset == "" {
		return fmt.Errorf("corpus %s: missing tagset", cs.ID)
	}
	if err := cs.Format.Validate(); err != nil {
		return fmt.Errorf("corpus %s: %w", cs.ID, err)
	}
	if cs.Format == FormatVertical && cs.Vertical == nil {
		return fmt.Errorf("corpus %s: vertical format requires the `vertical` section", cs.ID)
	}
	return nil
}

// CorporaSetup defines TUPI configuration related to corpora
type CorporaSetup struct {

	// CorporaConfDir is a directory containing per-corpus JSON
	// configuration files
	CorporaConfDir string `json:"corporaConfDir"`

	// DataDir is a directory where corpus data files are stored
	// (and downloaded to)
	DataDir string `json:"dataDir"`

	corpora []CorpusSetup
}

// Load reads all the corpus configuration files. Invalid files
// are skipped with a warning, the rest of the service stays
// functional.
func (cs *CorporaSetup) Load() error {
	files, err := os.ReadDir(cs.CorporaConfDir)
	if err != nil {
		return fmt.Errorf("failed to load corpora configs: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		confPath := filepath.Join(cs.CorporaConfDir, f.Name())
		tmp, err := os.ReadFile(confPath)
		if err != nil {
			log.Warn().
				Err(err).
				Str("file", confPath).
				Msg("encountered invalid corpus configuration file, skipping")
			continue
		}
		var conf CorpusSetup
		err = sonic.Unmarshal(tmp, &conf)
		if err != nil {
			log.Warn().
				Err(err).
				Str("file", confPath).
				Msg("encountered invalid corpus configuration file, skipping")
			continue
		}
		if err := conf.Validate(); err != nil {
			log.Warn().
				Err(err).
				Str("file", confPath).
				Msg("encountered invalid corpus configuration, skipping")
			continue
		}
		cs.corpora = append(cs.corpora, conf)
		log.Info().Str("name", conf.ID).Msg("loaded corpus configuration file")
	}
	return nil
}

func (cs *CorporaSetup) Get(name string) CorpusSetup {
	for _, v := range cs.corpora {
		if v.ID == name {
			return v
		}
	}
	return CorpusSetup{}
}

func (cs *CorporaSetup) GetAllCorpora() []CorpusSetup {
	ans := make([]CorpusSetup, len(cs.corpora))
	copy(ans, cs.corpora)
	return ans
}

// DataPath returns an absolute path of the corpus data file
func (cs *CorporaSetup) DataPath(corp CorpusSetup) string {
	return filepath.Join(cs.DataDir, corp.DataFile)
}
