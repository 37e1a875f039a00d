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
	"encoding/gob"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"

	"tupi/mail"
)

const (
	detachedJobsFileName = "detached-jobs.gob"
	cleanupCheckInterval = 30 * time.Minute
	queueCheckInterval   = 5 * time.Second
)

// Actions provides the job subsystem - a job registry, a queue
// with a concurrency limit and related HTTP REST actions.
type Actions struct {
	conf       *Conf
	ctx        context.Context
	lang       string
	msgPrinter *message.Printer

	mu           sync.Mutex
	jobList      map[string]GeneralJobInfo
	jobQueue     JobQueue
	jobDeps      JobsDeps
	jobCancels   map[string]context.CancelFunc
	recipients   map[string][]string
	numRunning   int
	detachedJobs map[string]GeneralJobInfo

	jobStop chan string
	wake    chan struct{}
}

// EnqueueJob adds a job to the queue. The initial status is
// immediately visible in the job registry; the job function itself
// starts once a worker slot is free.
func (a *Actions) EnqueueJob(fn *QueuedFunc, initialState GeneralJobInfo) {
	a.mu.Lock()
	a.jobList[initialState.GetID()] = initialState
	a.jobQueue.Enqueue(fn, initialState)
	a.mu.Unlock()
	a.wakeUp()
}

// AddJobDependency makes jobID wait until parentID finishes.
func (a *Actions) AddJobDependency(jobID, parentID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.jobDeps.Add(jobID, parentID)
}

// GetJob returns a current status of a job specified by its ID
func (a *Actions) GetJob(jobID string) (GeneralJobInfo, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.jobList[jobID]
	return v, ok
}

// LastUnfinishedJobOfType searches for the most recent unfinished job
// of a specified type attached to a specified corpus.
func (a *Actions) LastUnfinishedJobOfType(corpusID, jobType string) (GeneralJobInfo, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var ans GeneralJobInfo
	for _, v := range a.jobList {
		if v.GetCorpus() == corpusID && v.GetType() == jobType && !v.IsFinished() &&
			(ans == nil || ans.GetStartDT().Before(v.GetStartDT())) {
			ans = v
		}
	}
	return ans, ans != nil
}

// TestAllowsJobRestart tests whether a detached job can be
// restarted (i.e. it is unfinished and it has not exceeded
// the configured restart limit).
func (a *Actions) TestAllowsJobRestart(job GeneralJobInfo) error {
	if job.IsFinished() {
		return fmt.Errorf("cannot restart job %s: already finished", job.GetID())
	}
	if job.GetNumRestarts() >= a.conf.MaxNumRestarts {
		return fmt.Errorf(
			"cannot restart job %s: max. number of restarts (%d) reached",
			job.GetID(), a.conf.MaxNumRestarts)
	}
	return nil
}

// GetDetachedJobs lists jobs stored during the previous shutdown.
func (a *Actions) GetDetachedJobs() []GeneralJobInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	ans := make([]GeneralJobInfo, 0, len(a.detachedJobs))
	for _, v := range a.detachedJobs {
		ans = append(ans, v)
	}
	return ans
}

// ClearDetachedJob removes a job from the detached jobs
// storage (typically after a successful restart).
func (a *Actions) ClearDetachedJob(jobID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.detachedJobs, jobID)
}

func (a *Actions) wakeUp() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *Actions) dispatchLoop() {
	ticker := time.NewTicker(queueCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-a.ctx.Done():
			a.onExit()
			return
		case <-a.wake:
		case <-ticker.C:
		}
		a.tryRunNext()
	}
}

func (a *Actions) tryRunNext() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for a.numRunning < a.conf.MaxNumConcurrentJobs && a.jobQueue.Size() > 0 {
		nextID, err := a.jobQueue.PeekID()
		if err != nil {
			break
		}
		failed, err := a.jobDeps.HasFailedParent(nextID)
		if err == nil && failed {
			_, state, _ := a.jobQueue.Dequeue()
			failedState := state.WithError(fmt.Errorf("parent job failed"))
			a.jobList[nextID] = failedState
			a.jobDeps.SetParentFinished(nextID, true)
			log.Error().Str("jobId", nextID).Msg("job not started due to a failed parent job")
			continue
		}
		mustWait, err := a.jobDeps.MustWait(nextID)
		if err == nil && mustWait {
			a.jobQueue.DelayNext()
			// other queued jobs may be blocked too - better wait
			// for the next tick than spin here
			break
		}
		fn, state, err := a.jobQueue.Dequeue()
		if err != nil {
			break
		}
		a.numRunning++
		go a.runJob(fn, state)
	}
}

func (a *Actions) runJob(fn *QueuedFunc, state GeneralJobInfo) {
	jobID := state.GetID()
	log.Info().
		Str("jobId", jobID).
		Str("type", state.GetType()).
		Str("corpusId", state.GetCorpus()).
		Msg("starting job")
	jobCtx, cancel := context.WithCancel(a.ctx)
	a.mu.Lock()
	a.jobCancels[jobID] = cancel
	a.mu.Unlock()
	updates := make(chan GeneralJobInfo, 10)
	bodyDone := make(chan struct{})
	go func() {
		defer close(bodyDone)
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("jobId", jobID).Msgf("recovered from a panicking job: %v", r)
				// the job's deferred close has already run during the
				// unwinding so the failed state must go directly
				// to the registry
				a.mu.Lock()
				a.jobList[jobID] = state.WithError(fmt.Errorf("job panicked: %v", r))
				a.mu.Unlock()
			}
		}()
		(*fn)(jobCtx, updates)
	}()
	for upd := range updates {
		a.mu.Lock()
		a.jobList[upd.GetID()] = upd
		a.mu.Unlock()
	}
	<-bodyDone
	cancel()
	a.mu.Lock()
	delete(a.jobCancels, jobID)
	final, ok := a.jobList[jobID]
	if ok && !final.IsFinished() {
		final = final.AsFinished()
		a.jobList[jobID] = final
	}
	a.jobDeps.SetParentFinished(jobID, final != nil && final.GetError() != nil)
	rcpts := a.recipients[jobID]
	a.numRunning--
	a.mu.Unlock()
	if final != nil {
		log.Info().
			Str("jobId", jobID).
			Err(final.GetError()).
			Msg("job finished")
		a.notifyFinished(final, rcpts)
	}
	a.wakeUp()
}

// listenJobStops cancels the context of a running job once its ID
// arrives at the stop channel (see Delete).
func (a *Actions) listenJobStops() {
	for {
		select {
		case <-a.ctx.Done():
			return
		case jobID := <-a.jobStop:
			a.mu.Lock()
			cancel, ok := a.jobCancels[jobID]
			a.mu.Unlock()
			if ok {
				log.Info().Str("jobId", jobID).Msg("stopping job on user request")
				cancel()

			} else {
				log.Warn().Str("jobId", jobID).Msg("stop requested for a job which is not running")
			}
		}
	}
}

func (a *Actions) notifyFinished(info GeneralJobInfo, recipients []string) {
	if len(recipients) == 0 {
		return
	}
	subject := a.msgPrinter.Sprintf("TUPI job notification")
	paragraphs := []string{
		extractJobDescription(a.msgPrinter, info),
		a.msgPrinter.Sprintf("Corpus: %s", info.GetCorpus()),
		a.msgPrinter.Sprintf("Job ID: %s", info.GetID()),
		localizedStatus(a.msgPrinter, info),
	}
	err := mail.Send(a.conf.Notifications, a.lang, subject, paragraphs, recipients)
	if err != nil {
		log.Error().Err(err).Str("jobId", info.GetID()).Msg("failed to send e-mail notification")
	}
}

// --------- detached jobs persistence

func (a *Actions) detachedJobsPath() string {
	return filepath.Join(a.conf.StatusDataPath, detachedJobsFileName)
}

func (a *Actions) onExit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	unfinished := make([]GeneralJobInfo, 0, len(a.jobList))
	for _, v := range a.jobList {
		if !v.IsFinished() {
			unfinished = append(unfinished, v)
		}
	}
	if len(unfinished) == 0 {
		return
	}
	fw, err := os.OpenFile(a.detachedJobsPath(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		log.Error().Err(err).Msg("failed to store detached jobs")
		return
	}
	defer fw.Close()
	enc := gob.NewEncoder(fw)
	if err := enc.Encode(unfinished); err != nil {
		log.Error().Err(err).Msg("failed to store detached jobs")
		return
	}
	log.Info().Int("numJobs", len(unfinished)).Msg("stored detached unfinished jobs")
}

func (a *Actions) loadDetachedJobs() {
	path := a.detachedJobsPath()
	fr, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Msg("failed to load detached jobs")
		}
		return
	}
	defer fr.Close()
	var stored []GeneralJobInfo
	dec := gob.NewDecoder(fr)
	if err := dec.Decode(&stored); err != nil {
		log.Error().Err(err).Msg("failed to decode detached jobs")
		return
	}
	for _, v := range stored {
		a.detachedJobs[v.GetID()] = v
	}
	if err := os.Remove(path); err != nil {
		log.Warn().Err(err).Msg("failed to remove detached jobs file")
	}
	log.Info().Int("numJobs", len(stored)).Msg("loaded detached unfinished jobs")
}

func (a *Actions) cleanupLoop() {
	ticker := time.NewTicker(cleanupCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.clearOldJobs()
		}
	}
}

func (a *Actions) clearOldJobs() {
	maxAge := time.Duration(a.conf.MaxAgeHours) * time.Hour
	a.mu.Lock()
	defer a.mu.Unlock()
	for id, v := range a.jobList {
		if v.IsFinished() && CurrentDatetime().Sub(v.GetStartDT()) > maxAge {
			delete(a.jobList, id)
			delete(a.recipients, id)
			log.Debug().Str("jobId", id).Msg("removed old finished job status")
		}
	}
}

// --------- HTTP REST actions

// JobList provides a list of all the registered jobs
// (both unfinished and recently finished ones)
func (a *Actions) JobList(ctx *gin.Context) {
	a.mu.Lock()
	full := make(JobInfoList, 0, len(a.jobList))
	for _, v := range a.jobList {
		full = append(full, v)
	}
	a.mu.Unlock()
	if ctx.Request.URL.Query().Get("compact") == "1" {
		ans := make(JobInfoListCompact, 0, len(full))
		for _, v := range full {
			ans = append(ans, v.CompactVersion())
		}
		uniresp.WriteJSONResponse(ctx.Writer, ans.Sorted())
		return
	}
	ans := make([]any, 0, len(full))
	for _, v := range full.Sorted() {
		ans = append(ans, v.FullInfo())
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Utilization provides an insight into the job queue saturation
func (a *Actions) Utilization(ctx *gin.Context) {
	a.mu.Lock()
	ans := struct {
		MaxNumConcurrentJobs int `json:"maxNumConcurrentJobs"`
		NumRunning           int `json:"numRunning"`
		QueueSize            int `json:"queueSize"`
	}{
		MaxNumConcurrentJobs: a.conf.MaxNumConcurrentJobs,
		NumRunning:           a.numRunning,
		QueueSize:            a.jobQueue.Size(),
	}
	a.mu.Unlock()
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// JobInfo provides a detailed status of a single job
func (a *Actions) JobInfo(ctx *gin.Context) {
	job, ok := a.GetJob(ctx.Param("jobId"))
	if !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, job.FullInfo())
}

// Delete removes a job status from the registry. In case the job
// is still running, a stop request is sent first.
func (a *Actions) Delete(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	job, ok := a.GetJob(jobID)
	if !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		return
	}
	if !job.IsFinished() {
		select {
		case a.jobStop <- jobID:
		default:
			log.Warn().Str("jobId", jobID).Msg("nobody listens for the job stop request")
		}
	}
	a.mu.Lock()
	delete(a.jobList, jobID)
	delete(a.recipients, jobID)
	a.mu.Unlock()
	uniresp.WriteJSONResponse(ctx.Writer, job.FullInfo())
}

// ClearIfFinished removes a job status in case the job has
// already finished. The answer reports whether the removal
// has been performed.
func (a *Actions) ClearIfFinished(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	job, ok := a.GetJob(jobID)
	if !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		return
	}
	removed := false
	if job.IsFinished() {
		a.mu.Lock()
		delete(a.jobList, jobID)
		delete(a.recipients, jobID)
		a.mu.Unlock()
		removed = true
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]bool{"removed": removed})
}

// GetNotifications lists e-mail addresses subscribed for
// a job finish notification
func (a *Actions) GetNotifications(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	if _, ok := a.GetJob(jobID); !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		return
	}
	a.mu.Lock()
	ans := make([]string, 0, len(a.recipients[jobID]))
	ans = append(ans, a.recipients[jobID]...)
	a.mu.Unlock()
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// CheckNotification tests whether an address is subscribed
// for a job finish notification
func (a *Actions) CheckNotification(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	address := ctx.Param("address")
	a.mu.Lock()
	registered := false
	for _, v := range a.recipients[jobID] {
		if v == address {
			registered = true
			break
		}
	}
	a.mu.Unlock()
	if !registered {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("notification not found"), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]bool{"registered": true})
}

// AddNotification subscribes an e-mail address for a notification
// about a finished job
func (a *Actions) AddNotification(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	address := ctx.Param("address")
	if !strings.Contains(address, "@") {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("invalid e-mail address"), http.StatusUnprocessableEntity)
		return
	}
	job, ok := a.GetJob(jobID)
	if !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		return
	}
	if job.IsFinished() {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("job already finished"), http.StatusConflict)
		return
	}
	a.mu.Lock()
	already := false
	for _, v := range a.recipients[jobID] {
		if v == address {
			already = true
			break
		}
	}
	if !already {
		a.recipients[jobID] = append(a.recipients[jobID], address)
	}
	a.mu.Unlock()
	uniresp.WriteJSONResponse(ctx.Writer, map[string]bool{"registered": true})
}

// RemoveNotification unsubscribes an e-mail address
func (a *Actions) RemoveNotification(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	address := ctx.Param("address")
	a.mu.Lock()
	found := false
	for i, v := range a.recipients[jobID] {
		if v == address {
			a.recipients[jobID] = append(a.recipients[jobID][:i], a.recipients[jobID][i+1:]...)
			found = true
			break
		}
	}
	a.mu.Unlock()
	if !found {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("notification not found"), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]bool{"registered": false})
}

// NewActions is the default factory. It also starts the dispatching
// and cleanup goroutines bound to the provided context.
func NewActions(
	conf *Conf,
	lang string,
	ctx context.Context,
	jobStopChannel chan string,
) *Actions {
	ans := &Actions{
		conf:         conf,
		ctx:          ctx,
		lang:         lang,
		msgPrinter:   message.NewPrinter(message.MatchLanguage(lang)),
		jobList:      make(map[string]GeneralJobInfo),
		jobDeps:      make(JobsDeps),
		jobCancels:   make(map[string]context.CancelFunc),
		recipients:   make(map[string][]string),
		detachedJobs: make(map[string]GeneralJobInfo),
		jobStop:      jobStopChannel,
		wake:         make(chan struct{}, 1),
	}
	ans.loadDetachedJobs()
	go ans.dispatchLoop()
	go ans.cleanupLoop()
	go ans.listenJobStops()
	return ans
}
