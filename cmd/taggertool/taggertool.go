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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"tupi/cnf"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func main() {
	trainCmd := flag.NewFlagSet("run a tagger training job", flag.ExitOnError)
	confgenCmd := flag.NewFlagSet("generate a config template using a server conf.", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("show version", flag.ExitOnError)

	trainCmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "taggertool\n\nUsage:\n\t%s [options] train [config.json]\n\n", filepath.Base(os.Args[0]))
		trainCmd.PrintDefaults()
	}
	confgenCmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n\t%s [options] confgen [server config.json] [corpname]\n\n", filepath.Base(os.Args[0]))
		confgenCmd.PrintDefaults()
	}
	versionCmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n\t%s version\n", filepath.Base(os.Args[0]))
		versionCmd.PrintDefaults()
	}

	generalUsage := func() {
		fmt.Fprintf(os.Stderr, "taggertool - train PoS tagger models through a running service\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\t%s [options] train [config.json]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\t%s [options] confgen [server config.json] [corpname]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\t%s help [command]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\t%s version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	var action string
	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	switch action {
	case "train":
		trainCmd.Parse(os.Args[2:])
		train(trainCmd.Arg(0))
	case "confgen":
		confgenCmd.Parse(os.Args[2:])
		generateConf(confgenCmd.Arg(0), confgenCmd.Arg(1))
	case "version":
		fmt.Printf("taggertool %s\nbuild date: %s\nlast commit: %s\n", version, buildDate, gitCommit)
	case "help":
		if len(os.Args) > 2 {
			helpCmd := os.Args[2]
			switch helpCmd {
			case "train":
				trainCmd.Usage()
			case "confgen":
				confgenCmd.Usage()
			case "version":
				versionCmd.Usage()
			default:
				fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", helpCmd)
				generalUsage()
			}
		} else {
			generalUsage()
		}
	default:
		generalUsage()
	}
}

func train(configFilePath string) {
	configRaw, err := os.Open(configFilePath)
	if err != nil {
		fmt.Println("Error opening configuration file:", err)
		return
	}
	defer configRaw.Close()

	var config TaggertoolConfig
	if err := json.NewDecoder(configRaw).Decode(&config); err != nil {
		fmt.Println("Error decoding configuration file:", err)
		return
	}
	logging.SetupLogging(config.Logging)

	if err := config.Validate(); err != nil {
		log.Error().Err(err).Msg("failed to validate config")
		return
	}

	trainPath := fmt.Sprintf("taggers/%s/train", config.ModelName)
	trainParams := url.Values{"corpus": []string{config.Corpname}}
	log.Info().
		Str("corpname", config.Corpname).
		Str("modelName", config.ModelName).
		Msg("Running tagger training job")
	if err := doJob(config.API.BaseURL, trainPath, trainParams.Encode(), config.Training); err != nil {
		log.Error().Err(err).Msg("Error running tagger training job")
		return
	}
	log.Info().Msg("Job done!")
}

func generateConf(serverConfPath string, corpname string) {
	conf := cnf.LoadConfig(serverConfPath)
	var toolConf TaggertoolConfig
	toolConf.Logging = conf.Logging
	toolConf.API = apiConf{fmt.Sprintf("http://%s:%d", conf.ListenAddress, conf.ListenPort)}
	if corpname == "" {
		corpname = "mac_morpho"
	}
	toolConf.Corpname = corpname
	toolConf.ModelName = corpname + "-backoff"
	jsonData, err := json.Marshal(toolConf)
	if err != nil {
		log.Error().Err(err).Msg("failed to store template json")
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}
