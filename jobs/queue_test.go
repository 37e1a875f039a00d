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

	"github.com/stretchr/testify/assert"
)

func TestEnqueueDequeueOrder(t *testing.T) {
	q := JobQueue{}
	f1 := func(context.Context, chan<- GeneralJobInfo) {}
	f2 := func(context.Context, chan<- GeneralJobInfo) {}
	f3 := func(context.Context, chan<- GeneralJobInfo) {}
	q.Enqueue(&f1, &DummyJobInfo{ID: "1"})
	q.Enqueue(&f2, &DummyJobInfo{ID: "2"})
	q.Enqueue(&f3, &DummyJobInfo{ID: "3"})
	assert.Equal(t, 3, q.Size())

	fn, st, err := q.Dequeue()
	assert.NoError(t, err)
	assert.Equal(t, &f1, fn)
	assert.Equal(t, "1", st.GetID())
	assert.Equal(t, 2, q.Size())

	_, st, err = q.Dequeue()
	assert.NoError(t, err)
	assert.Equal(t, "2", st.GetID())
	_, st, err = q.Dequeue()
	assert.NoError(t, err)
	assert.Equal(t, "3", st.GetID())
	assert.Equal(t, 0, q.Size())
}

func TestDequeueEmpty(t *testing.T) {
	q := JobQueue{}
	_, _, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrorEmptyQueue)
	_, err = q.PeekID()
	assert.ErrorIs(t, err, ErrorEmptyQueue)
}

func TestPeekID(t *testing.T) {
	q := JobQueue{}
	f1 := func(context.Context, chan<- GeneralJobInfo) {}
	q.Enqueue(&f1, &DummyJobInfo{ID: "abc"})
	id, err := q.PeekID()
	assert.NoError(t, err)
	assert.Equal(t, "abc", id)
	assert.Equal(t, 1, q.Size())
}

func TestDelayNext(t *testing.T) {
	q := JobQueue{}
	f1 := func(context.Context, chan<- GeneralJobInfo) {}
	f2 := func(context.Context, chan<- GeneralJobInfo) {}
	f3 := func(context.Context, chan<- GeneralJobInfo) {}
	q.Enqueue(&f1, &DummyJobInfo{ID: "1"})
	q.Enqueue(&f2, &DummyJobInfo{ID: "2"})
	q.Enqueue(&f3, &DummyJobInfo{ID: "3"})
	assert.NoError(t, q.DelayNext())
	id, err := q.PeekID()
	assert.NoError(t, err)
	assert.Equal(t, "2", id)

	// order must now be 2, 3, 1
	_, st, _ := q.Dequeue()
	assert.Equal(t, "2", st.GetID())
	_, st, _ = q.Dequeue()
	assert.Equal(t, "3", st.GetID())
	_, st, _ = q.Dequeue()
	assert.Equal(t, "1", st.GetID())
}

func TestDelayNextSingleItem(t *testing.T) {
	q := JobQueue{}
	f1 := func(context.Context, chan<- GeneralJobInfo) {}
	q.Enqueue(&f1, &DummyJobInfo{ID: "1"})
	assert.NoError(t, q.DelayNext())
	id, err := q.PeekID()
	assert.NoError(t, err)
	assert.Equal(t, "1", id)
}

func TestDelayNextEmpty(t *testing.T) {
	q := JobQueue{}
	assert.ErrorIs(t, q.DelayNext(), ErrorEmptyQueue)
}
