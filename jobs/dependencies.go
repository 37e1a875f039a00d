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
	"errors"
	"time"
)

var (
	ErrorNoSuchJobDependency   = errors.New("no such dependency")
	ErrorCircularJobDependency = errors.New("circular job dependency")
	ErrorDuplicateDependency   = errors.New("duplicate dependency")
)

type depInfo struct {
	createdAt time.Time
	finished  bool
	hasError  bool
}

// JobsDeps maps a job ID to the IDs of its parents, i.e. the jobs
// it has to wait for. The owner must synchronize the access.
type JobsDeps map[string]map[string]*depInfo

// Add registers a new parent for jobID. Duplicate and circular
// dependencies are refused.
func (jd JobsDeps) Add(jobID, parentID string) error {
	if _, ok := jd[jobID]; !ok {
		jd[jobID] = make(map[string]*depInfo)
	}
	if _, ok := jd[jobID][parentID]; ok {
		return ErrorDuplicateDependency
	}
	jd[jobID][parentID] = &depInfo{createdAt: time.Now()}
	if jd.findCircle(jobID) {
		delete(jd[jobID], parentID)
		if len(jd[jobID]) == 0 {
			delete(jd, jobID)
		}
		return ErrorCircularJobDependency
	}
	return nil
}

func (jd JobsDeps) findCircle(jobID string) bool {
	visited := make(map[string]bool)
	queue := []string{jobID}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if visited[curr] {
			return true
		}
		visited[curr] = true
		for parentID := range jd[curr] {
			queue = append(queue, parentID)
		}
	}
	return false
}

// SetParentFinished marks parentID as finished in all the jobs
// waiting for it.
func (jd JobsDeps) SetParentFinished(parentID string, hasError bool) {
	for _, parents := range jd {
		if parent, ok := parents[parentID]; ok {
			parent.finished = true
			parent.hasError = hasError
		}
	}
}

// MustWait tests whether jobID must wait because some of its
// parents are still running (and none of them has failed - a failed
// parent means there is no point in waiting any more).
// In case no dependency is defined for jobID, ErrorNoSuchJobDependency
// is returned.
func (jd JobsDeps) MustWait(jobID string) (bool, error) {
	parents, ok := jd[jobID]
	if !ok {
		return false, ErrorNoSuchJobDependency
	}
	var someFailed, someRunning bool
	for _, parent := range parents {
		if parent.hasError {
			someFailed = true
		}
		if !parent.finished {
			someRunning = true
		}
	}
	return someRunning && !someFailed, nil
}

// HasFailedParent tests whether at least one of jobID's parents
// has finished with an error.
func (jd JobsDeps) HasFailedParent(jobID string) (bool, error) {
	parents, ok := jd[jobID]
	if !ok {
		return false, ErrorNoSuchJobDependency
	}
	for _, parent := range parents {
		if parent.finished && parent.hasError {
			return true, nil
		}
	}
	return false, nil
}
