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
	"golang.org/x/text/message"
)

func extractJobDescription(printer *message.Printer, info GeneralJobInfo) string {
	desc := "??"
	switch info.GetType() {
	case JobTypeCorpusDownload:
		desc = printer.Sprintf("Corpus data download")
	case JobTypeTaggerTrain:
		desc = printer.Sprintf("PoS tagger training and evaluation")
	case JobTypeLemmaImport:
		desc = printer.Sprintf("Lemma dictionary import")
	case JobTypeDummy:
		desc = printer.Sprintf("Testing and debugging empty job")
	default:
		desc = printer.Sprintf("Unknown job")
	}
	return desc
}

func localizedStatus(printer *message.Printer, info GeneralJobInfo) string {
	if info.GetError() == nil {
		return printer.Sprintf("Job finished without errors")
	}
	return printer.Sprintf("Job finished with error: %s", info.GetError())
}
