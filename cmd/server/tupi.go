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

package main

import (
	"context"
	"encoding/gob"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tupi/cnf"
	"tupi/corpus"
	"tupi/db/mysql"
	"tupi/debug"
	"tupi/general"
	"tupi/jobs"
	"tupi/lemma"
	"tupi/root"
	"tupi/tagger"
	"tupi/tagset"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func init() {
	gob.Register(corpus.DownloadJobInfo{})
	gob.Register(tagger.TrainJobInfo{})
	gob.Register(lemma.ImportJobInfo{})
	gob.Register(&jobs.DummyJobInfo{})
}

func main() {
	version := general.VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "TUPI - Tagsets Unified for Portuguese, Interoperable\n\nUsage:\n\t%s [options] start [config.json]\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("tupi %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return

	} else if action != "start" {
		log.Fatal().Msgf("Unknown action %s", action)
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.Logging)
	if conf.CorporaSetup == nil {
		log.Fatal().Msg("missing corporaSetup configuration section")
	}
	if err := conf.CorporaSetup.Load(); err != nil {
		log.Fatal().
			Err(err).
			Str("targetDirectory", conf.CorporaSetup.CorporaConfDir).
			Msg("failed to load corpora configs")
	}
	log.Info().Msg("Starting TUPI")
	cnf.ApplyDefaults(conf)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	var lemmaStorage *lemma.Storage
	if conf.LemmaDB != nil {
		if conf.LemmaDB.Type != "mysql" {
			log.Fatal().Msg("only mysql lemma storage backend is supported")
		}
		lemmaDB, err := mysql.OpenDB(*conf.LemmaDB)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		log.Info().Msgf("lemma SQL database: %s@%s", conf.LemmaDB.Name, conf.LemmaDB.Host)
		if err := lemmaDB.WaitForServer(ctx); err != nil {
			log.Fatal().Err(err).Send()
		}
		lemmaStorage = lemma.NewStorage(lemmaDB)
		if err := lemmaStorage.Init(ctx); err != nil {
			log.Fatal().Err(err).Send()
		}

	} else {
		log.Warn().Msg("lemma database not configured, lemma actions will not be available")
	}

	if !conf.Logging.Level.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	rootActions := root.Actions{Version: version, Conf: conf}

	jobStopChannel := make(chan string)
	jobActions := jobs.NewActions(conf.Jobs, conf.Language, ctx, jobStopChannel)

	tagsetActions := tagset.NewActions()
	corpusActions := corpus.NewActions(conf.CorporaSetup, ctx, jobActions)
	taggerRegistry := tagger.NewRegistry(conf.Tagger)
	taggerActions := tagger.NewActions(
		conf.Tagger, conf.CorporaSetup, ctx, taggerRegistry, jobActions)

	for _, dj := range jobActions.GetDetachedJobs() {
		if dj.IsFinished() {
			continue
		}
		switch tdj := dj.(type) {
		case corpus.DownloadJobInfo:
			if err := corpusActions.RestartJob(tdj); err != nil {
				log.Error().Err(err).Msgf("Failed to restart job %s. The job will be removed.", tdj.ID)
			}
			jobActions.ClearDetachedJob(tdj.ID)
		default:
			log.Error().
				Str("jobId", dj.GetID()).
				Str("type", dj.GetType()).
				Msg("unsupported detached job type, removing")
			jobActions.ClearDetachedJob(dj.GetID())
		}
	}

	engine.GET(
		"/", rootActions.RootAction)

	engine.GET(
		"/tagsets", tagsetActions.ListTagsets)
	engine.GET(
		"/tagsets/:tagsetId", tagsetActions.TagsetInfo)
	engine.GET(
		"/tagsets/:tagsetId/table", tagsetActions.TagsetTable)
	engine.GET(
		"/tagsets/:tagsetId/translate", tagsetActions.TranslateTag)

	engine.GET(
		"/corpora", corpusActions.CorporaList)
	engine.GET(
		"/corpora/:corpusId", corpusActions.CorpusInfo)
	engine.POST(
		"/corpora/:corpusId/download", corpusActions.DownloadCorpusData)

	engine.GET(
		"/taggers", taggerActions.ModelList)
	engine.GET(
		"/taggers/:modelId", taggerActions.ModelInfo)
	engine.POST(
		"/taggers/:modelId/train", taggerActions.TrainModel)
	engine.POST(
		"/taggers/:modelId/tag", taggerActions.TagSentence)

	if lemmaStorage != nil {
		lemmaActions := lemma.NewActions(conf.Lemma, ctx, lemmaStorage, jobActions)
		engine.GET(
			"/dictionary", lemmaActions.DictInfo)
		engine.POST(
			"/dictionary/import", lemmaActions.ImportDict)
		engine.GET(
			"/dictionary/search/:form", lemmaActions.Lookup)
	}

	engine.GET(
		"/jobs", jobActions.JobList)
	engine.GET(
		"/jobs/utilization", jobActions.Utilization)
	engine.GET(
		"/jobs/:jobId", jobActions.JobInfo)
	engine.DELETE(
		"/jobs/:jobId", jobActions.Delete)
	engine.GET(
		"/jobs/:jobId/clearIfFinished", jobActions.ClearIfFinished)
	engine.GET(
		"/jobs/:jobId/emailNotification", jobActions.GetNotifications)
	engine.GET(
		"/jobs/:jobId/emailNotification/:address",
		jobActions.CheckNotification)
	engine.PUT(
		"/jobs/:jobId/emailNotification/:address",
		jobActions.AddNotification)
	engine.DELETE(
		"/jobs/:jobId/emailNotification/:address",
		jobActions.RemoveNotification)

	if conf.Logging.Level.IsDebugMode() {
		debugActions := debug.NewActions(jobActions)
		engine.POST("/debug/createJob", debugActions.CreateDummyJob)
		engine.POST("/debug/finishJob/:jobId", debugActions.FinishDummyJob)
	}

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil {
			log.Error().Err(err).Send()
		}
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
}
