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
	"tupi/mail"
)

// Conf configures the async job subsystem
type Conf struct {

	// StatusDataPath is a directory where unfinished job statuses
	// are stored during a server shutdown
	StatusDataPath string `json:"statusDataPath"`

	// MaxNumConcurrentJobs limits the number of job goroutines
	// running at the same time; other jobs wait in a queue
	MaxNumConcurrentJobs int `json:"maxNumConcurrentJobs"`

	// MaxNumRestarts limits how many times a detached job may be
	// restarted after server restarts
	MaxNumRestarts int `json:"maxNumRestarts"`

	// MaxAgeHours specifies how long a finished job status is kept
	// in the registry
	MaxAgeHours int `json:"maxAgeHours"`

	// Notifications configures e-mail notifications about
	// finished jobs
	Notifications mail.EmailNotification `json:"notifications"`
}
