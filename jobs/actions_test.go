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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestActions(t *testing.T, stop chan string) *Actions {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	conf := &Conf{
		MaxNumConcurrentJobs: 1,
		MaxAgeHours:          1,
		StatusDataPath:       t.TempDir(),
	}
	return NewActions(conf, "en", ctx, stop)
}

func jobFinishedWithError(a *Actions, jobID string) func() bool {
	return func() bool {
		job, ok := a.GetJob(jobID)
		return ok && job.IsFinished() && job.GetError() != nil
	}
}

func TestRunJobRunsToCompletion(t *testing.T) {
	a := newTestActions(t, make(chan string))
	fn := QueuedFunc(func(ctx context.Context, updates chan<- GeneralJobInfo) {
		defer close(updates)
		updates <- DummyJobInfo{
			ID:     "j1",
			Type:   JobTypeDummy,
			Result: &DummyJobResult{Payload: "done"},
		}.AsFinished()
	})
	a.EnqueueJob(&fn, &DummyJobInfo{ID: "j1", Type: JobTypeDummy, Start: CurrentDatetime()})
	assert.Eventually(t, func() bool {
		job, ok := a.GetJob("j1")
		return ok && job.IsFinished() && job.GetError() == nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRunJobRecordsPanicAsFailure(t *testing.T) {
	a := newTestActions(t, make(chan string))
	fn := QueuedFunc(func(ctx context.Context, updates chan<- GeneralJobInfo) {
		defer close(updates)
		panic("something is wrong")
	})
	a.EnqueueJob(&fn, &DummyJobInfo{ID: "j1", Type: JobTypeDummy, Start: CurrentDatetime()})
	assert.Eventually(
		t, jobFinishedWithError(a, "j1"), 2*time.Second, 10*time.Millisecond)
	job, _ := a.GetJob("j1")
	assert.Contains(t, job.GetError().Error(), "something is wrong")
}

func TestRunJobPanicFreesWorkerSlot(t *testing.T) {
	a := newTestActions(t, make(chan string))
	fn1 := QueuedFunc(func(ctx context.Context, updates chan<- GeneralJobInfo) {
		defer close(updates)
		panic("boom")
	})
	a.EnqueueJob(&fn1, &DummyJobInfo{ID: "j1", Type: JobTypeDummy, Start: CurrentDatetime()})
	assert.Eventually(
		t, jobFinishedWithError(a, "j1"), 2*time.Second, 10*time.Millisecond)

	fn2 := QueuedFunc(func(ctx context.Context, updates chan<- GeneralJobInfo) {
		defer close(updates)
		updates <- DummyJobInfo{ID: "j2", Type: JobTypeDummy}.AsFinished()
	})
	a.EnqueueJob(&fn2, &DummyJobInfo{ID: "j2", Type: JobTypeDummy, Start: CurrentDatetime()})
	assert.Eventually(t, func() bool {
		job, ok := a.GetJob("j2")
		return ok && job.IsFinished()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStopRequestCancelsRunningJob(t *testing.T) {
	stop := make(chan string)
	a := newTestActions(t, stop)
	started := make(chan struct{})
	fn := QueuedFunc(func(ctx context.Context, updates chan<- GeneralJobInfo) {
		defer close(updates)
		close(started)
		<-ctx.Done()
		updates <- DummyJobInfo{ID: "j1", Type: JobTypeDummy}.WithError(ctx.Err())
	})
	a.EnqueueJob(&fn, &DummyJobInfo{ID: "j1", Type: JobTypeDummy, Start: CurrentDatetime()})
	<-started
	stop <- "j1"
	assert.Eventually(
		t, jobFinishedWithError(a, "j1"), 2*time.Second, 10*time.Millisecond)
}
