// Copyright 2022 Marcos Oliveira <mvoliveira.nlp@gmail.com>
// Copyright 2022 Grupo de Processamento de Linguagem Natural,
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

package jobs

import (
	"sort"
)

// GeneralJobInfo is a general job information
// (i.e. any job type within TUPI should implement this)
type GeneralJobInfo interface {

	// GetID returns job's unique identifier
	GetID() string

	// GetType returns string identifier of the type (e.g. corpus-download)
	GetType() string

	// GetStartDT provides a datetime information when the job started
	GetStartDT() JSONTime

	// GetNumRestarts provides how many times the job was restarted
	// (typically after an app restart with unfinished jobs)
	GetNumRestarts() int

	// GetCorpus provides a corpus name the job is related to
	GetCorpus() string

	// IsFinished returns true if the job has finished,
	// no matter how (i.e. even a failed job is "finished")
	IsFinished() bool

	// AsFinished returns a copy of the value with
	// finished status set to true and update time
	// set to the current time
	AsFinished() GeneralJobInfo

	// CompactVersion produces a shortened version of the status
	// suitable for job listings
	CompactVersion() JobInfoCompact

	// FullInfo produces JSON-friendly value with all the status info
	FullInfo() any

	// GetError provides status error (if any)
	GetError() error

	// WithError returns a copy of the value with error set
	// and with finished status
	WithError(err error) GeneralJobInfo
}

// JobInfoCompact is a simplified and unified version of
// any specific job information
type JobInfoCompact struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	CorpusID string   `json:"corpusId"`
	Start    JSONTime `json:"start"`
	Update   JSONTime `json:"update"`
	Finished bool     `json:"finished"`
	OK       bool     `json:"ok"`
}

// JobInfoList is a sortable list of job information
type JobInfoList []GeneralJobInfo

func (jil JobInfoList) Len() int {
	return len(jil)
}

func (jil JobInfoList) Less(i, j int) bool {
	return jil[j].GetStartDT().Before(jil[i].GetStartDT())
}

func (jil JobInfoList) Swap(i, j int) {
	jil[i], jil[j] = jil[j], jil[i]
}

func (jil JobInfoList) Sorted() JobInfoList {
	sort.Sort(jil)
	return jil
}

// JobInfoListCompact is a sortable list of compact job information
type JobInfoListCompact []JobInfoCompact

func (cjil JobInfoListCompact) Len() int {
	return len(cjil)
}

func (cjil JobInfoListCompact) Less(i, j int) bool {
	return cjil[j].Start.Before(cjil[i].Start)
}

func (cjil JobInfoListCompact) Swap(i, j int) {
	cjil[i], cjil[j] = cjil[j], cjil[i]
}

func (cjil JobInfoListCompact) Sorted() JobInfoListCompact {
	sort.Sort(cjil)
	return cjil
}

func ErrorToString(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}

// ValidateJobType tests whether a provided string is one
// of the job types used by TUPI.
func ValidateJobType(v string) bool {
	return v == JobTypeCorpusDownload ||
		v == JobTypeTaggerTrain ||
		v == JobTypeLemmaImport ||
		v == JobTypeDummy
}

const (
	JobTypeCorpusDownload = "corpus-download"
	JobTypeTaggerTrain    = "tagger-train"
	JobTypeLemmaImport    = "lemma-import"
	JobTypeDummy          = "dummy-job"
)
