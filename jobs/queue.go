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
	"context"
	"errors"
)

var (
	ErrorEmptyQueue = errors.New("empty queue")
)

// QueuedFunc is a job body. It must write status updates to the
// provided channel and close the channel once done (a deferred
// close also covers panics). The context is canceled when a user
// requests a stop of the job.
type QueuedFunc = func(context.Context, chan<- GeneralJobInfo)

type jobEntry struct {
	job          *QueuedFunc
	initialState GeneralJobInfo
}

// JobQueue is a FIFO of jobs waiting for a free worker slot.
// It is not safe for concurrent use, the owner must synchronize
// the access.
type JobQueue struct {
	entries []jobEntry
}

func (jq *JobQueue) Size() int {
	return len(jq.entries)
}

func (jq *JobQueue) Enqueue(item *QueuedFunc, initialState GeneralJobInfo) {
	jq.entries = append(jq.entries, jobEntry{job: item, initialState: initialState})
}

// DelayNext moves the item to be dequeued next to the end of
// the queue. This is used for jobs whose dependencies are not
// finished yet. In case the queue is empty, ErrorEmptyQueue
// is returned.
func (jq *JobQueue) DelayNext() error {
	if len(jq.entries) == 0 {
		return ErrorEmptyQueue
	}
	if len(jq.entries) > 1 {
		first := jq.entries[0]
		jq.entries = append(jq.entries[1:], first)
	}
	return nil
}

func (jq *JobQueue) Dequeue() (*QueuedFunc, GeneralJobInfo, error) {
	if len(jq.entries) == 0 {
		return nil, nil, ErrorEmptyQueue
	}
	first := jq.entries[0]
	jq.entries = jq.entries[1:]
	return first.job, first.initialState, nil
}

// PeekID returns the ID of the item to be dequeued next.
func (jq *JobQueue) PeekID() (string, error) {
	if len(jq.entries) == 0 {
		return "", ErrorEmptyQueue
	}
	return jq.entries[0].initialState.GetID(), nil
}
