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

package mail

import (
	"testing"

	cncmail "github.com/czcorpus/cnc-gokit/mail"
	"github.com/stretchr/testify/assert"
)

func TestJobRecipientsOverrideConfiguredOnes(t *testing.T) {
	conf := EmailNotification{
		NotificationConf: cncmail.NotificationConf{
			Sender:     "tupi@localhost",
			Recipients: []string{"admin@localhost"},
			SMTPServer: "localhost:25",
		},
	}
	sendConf := conf.WithRecipients("user1@localhost", "user2@localhost")
	assert.Equal(t, []string{"user1@localhost", "user2@localhost"}, sendConf.Recipients)
	// the rest of the configuration must survive the copy
	assert.Equal(t, "tupi@localhost", sendConf.Sender)
	assert.Equal(t, "localhost:25", sendConf.SMTPServer)
}

func TestBuildNotificationAppendsSignature(t *testing.T) {
	conf := EmailNotification{
		NotificationConf: cncmail.NotificationConf{
			Signature: map[string]string{"pt": "Equipe TUPI"},
		},
	}
	msg := buildNotification(conf, "pt", "subj", []string{"par1", "par2"})
	assert.Equal(t, "subj", msg.Subject)
	assert.Equal(t, []string{"par1", "par2", "Equipe TUPI"}, msg.Paragraphs)
}

func TestBuildNotificationDefaultSignature(t *testing.T) {
	msg := buildNotification(EmailNotification{}, "en", "subj", []string{"par1"})
	assert.Equal(t, []string{"par1", "Yours TUPI"}, msg.Paragraphs)
}

func TestLocalizedSignatureFallsBackToTwoCharCode(t *testing.T) {
	conf := EmailNotification{
		NotificationConf: cncmail.NotificationConf{
			Signature: map[string]string{"pt-BR": "Equipe TUPI"},
		},
	}
	msg, err := conf.LocalizedSignature("pt-PT")
	assert.NoError(t, err)
	assert.Equal(t, "Equipe TUPI", msg)

	_, err = conf.LocalizedSignature("cs")
	assert.Error(t, err)
}
