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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

var (
	ErrorNoDownloadURL = errors.New("corpus has no download url configured")
)

const downloadReqTimeout = 30 * time.Minute

// DownloadResult describes an outcome of a corpus data download
type DownloadResult struct {
	File        string `json:"file"`
	Size        int64  `json:"size"`
	Downloaded  bool   `json:"downloaded"`
	AlreadyHere bool   `json:"alreadyHere"`
}

// downloadCorpusData fetches a corpus data file into the configured
// data directory. An already present data file is left untouched
// unless overwrite is set. The file is downloaded to a temporary
// path first so a failed transfer cannot produce a partial corpus.
func downloadCorpusData(
	ctx context.Context,
	setup *CorporaSetup,
	corp CorpusSetup,
	overwrite bool,
) (DownloadResult, error) {
	ans := DownloadResult{File: setup.DataPath(corp)}
	if corp.DownloadURL == "" {
		return ans, ErrorNoDownloadURL
	}
	isFile, err := fs.IsFile(ans.File)
	if err != nil {
		return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
	}
	if isFile && !overwrite {
		ans.AlreadyHere = true
		ans.Size, err = fs.FileSize(ans.File)
		if err != nil {
			return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
		}
		log.Info().
			Str("corpusId", corp.ID).
			Str("file", ans.File).
			Msg("corpus data already present, skipping download")
		return ans, nil
	}
	if err := os.MkdirAll(filepath.Dir(ans.File), 0755); err != nil {
		return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, downloadReqTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, corp.DownloadURL, nil)
	if err != nil {
		return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ans, fmt.Errorf(
			"failed to download corpus %s: unexpected status %s", corp.ID, resp.Status)
	}

	tmpPath := ans.File + ".download"
	fw, err := os.Create(tmpPath)
	if err != nil {
		return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
	}
	written, err := io.Copy(fw, resp.Body)
	if err != nil {
		fw.Close()
		os.Remove(tmpPath)
		return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
	}
	if err := fw.Close(); err != nil {
		os.Remove(tmpPath)
		return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
	}
	if err := os.Rename(tmpPath, ans.File); err != nil {
		os.Remove(tmpPath)
		return ans, fmt.Errorf("failed to download corpus %s: %w", corp.ID, err)
	}
	ans.Size = written
	ans.Downloaded = true
	log.Info().
		Str("corpusId", corp.ID).
		Str("file", ans.File).
		Int64("size", written).
		Msg("downloaded corpus data")
	return ans, nil
}
