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

	"github.com/czcorpus/cnc-gokit/fs"

	"tupi/common"
)

// InfoError wraps errors produced while inspecting corpus data files
type InfoError struct {
	error
}

// FileMappedValue describes a configured file along with its actual
// state on the disk.
type FileMappedValue struct {
	Value        string  `json:"value"`
	Path         string  `json:"-"`
	FileExists   bool    `json:"exists"`
	LastModified *string `json:"lastModified"`
	Size         int64   `json:"size"`
}

// Info wraps information about a corpus installation
type Info struct {
	ID          string                 `json:"id"`
	FullName    string                 `json:"fullName"`
	Description string                 `json:"description"`
	Tagset      common.SupportedTagset `json:"tagset"`
	Format      CorpusFormat           `json:"format"`
	Encoding    string                 `json:"encoding"`
	Data        FileMappedValue        `json:"data"`
}

// bindValueToPath creates a FileMappedValue instance based on
// provided value and path to the file the value represents.
func bindValueToPath(value, path string) (FileMappedValue, error) {
	ans := FileMappedValue{Value: value, Path: path}
	isFile, err := fs.IsFile(path)
	if err != nil {
		return ans, fmt.Errorf("failed to map file %s: %w", path, err)
	}
	if isFile {
		mTime, err := fs.GetFileMtime(path)
		if err != nil {
			return ans, fmt.Errorf("failed to map file %s: %w", path, err)
		}
		mTimeString := mTime.Format("2006-01-02T15:04:05-0700")
		size, err := fs.FileSize(path)
		if err != nil {
			return ans, fmt.Errorf("failed to map file %s: %w", path, err)
		}
		ans.LastModified = &mTimeString
		ans.FileExists = true
		ans.Size = size
	}
	return ans, nil
}

// GetCorpusInfo provides miscellaneous information about a configured
// corpus, mostly related to its data file. It returns an error only
// in case the filesystem produces one (i.e. not in case a data file
// is just not installed yet).
func GetCorpusInfo(corp CorpusSetup, setup *CorporaSetup) (*Info, error) {
	ans := &Info{
		ID:          corp.ID,
		FullName:    corp.FullName,
		Description: corp.Description,
		Tagset:      corp.Tagset,
		Format:      corp.Format,
		Encoding:    corp.Encoding,
	}
	if ans.Format == "" {
		ans.Format = FormatTagged
	}
	dataPath := setup.DataPath(corp)
	value, err := bindValueToPath(corp.DataFile, dataPath)
	if err != nil {
		return nil, InfoError{err}
	}
	ans.Data = value
	return ans, nil
}
