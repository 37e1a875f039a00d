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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDependency(t *testing.T) {
	deps := make(JobsDeps)
	assert.NoError(t, deps.Add("child1", "parent1"))
	mustWait, err := deps.MustWait("child1")
	assert.NoError(t, err)
	assert.True(t, mustWait)
}

func TestAddDuplicateDependency(t *testing.T) {
	deps := make(JobsDeps)
	assert.NoError(t, deps.Add("child1", "parent1"))
	assert.ErrorIs(t, deps.Add("child1", "parent1"), ErrorDuplicateDependency)
}

func TestFinishedParentUnblocking(t *testing.T) {
	deps := make(JobsDeps)
	assert.NoError(t, deps.Add("child1", "parentA"))
	assert.NoError(t, deps.Add("child1", "parentB"))
	assert.NoError(t, deps.Add("child2", "parentA"))
	deps.SetParentFinished("parentA", false)

	mustWait, err := deps.MustWait("child1")
	assert.NoError(t, err)
	assert.True(t, mustWait) // child1 still waits for parentB

	mustWait, err = deps.MustWait("child2")
	assert.NoError(t, err)
	assert.False(t, mustWait)
}

func TestFailedParent(t *testing.T) {
	deps := make(JobsDeps)
	assert.NoError(t, deps.Add("child1", "parentA"))
	assert.NoError(t, deps.Add("child1", "parentB"))
	deps.SetParentFinished("parentA", true)

	mustWait, err := deps.MustWait("child1")
	assert.NoError(t, err)
	assert.False(t, mustWait)

	failed, err := deps.HasFailedParent("child1")
	assert.NoError(t, err)
	assert.True(t, failed)
}

func TestUnknownJob(t *testing.T) {
	deps := make(JobsDeps)
	_, err := deps.MustWait("nope")
	assert.ErrorIs(t, err, ErrorNoSuchJobDependency)
	_, err = deps.HasFailedParent("nope")
	assert.ErrorIs(t, err, ErrorNoSuchJobDependency)
}

func TestCannotCreateCircle(t *testing.T) {
	deps := make(JobsDeps)
	assert.NoError(t, deps.Add("a", "b"))
	assert.NoError(t, deps.Add("b", "c"))
	assert.ErrorIs(t, deps.Add("c", "a"), ErrorCircularJobDependency)

	// the refused edge must not stay registered
	_, err := deps.MustWait("c")
	assert.ErrorIs(t, err, ErrorNoSuchJobDependency)
}

func TestCannotDependOnItself(t *testing.T) {
	deps := make(JobsDeps)
	assert.ErrorIs(t, deps.Add("a", "a"), ErrorCircularJobDependency)
}
