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

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	db "github.com/czcorpus/vert-tagextract/v3/db"
	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

const (
	dfltPingInitialInterval = 500 * time.Millisecond
	dfltPingMaxElapsedTime  = 30 * time.Second
)

// Adapter wraps a MySQL connection along with its configuration
type Adapter struct {
	db      *sql.DB
	conf    db.Conf
	dbName  string
	isAdHoc bool
}

func (a *Adapter) DB() *sql.DB {
	return a.db
}

func (a *Adapter) DBName() string {
	return a.dbName
}

func (a *Adapter) Conf() db.Conf {
	return a.conf
}

// Close closes the wrapped database connection. Only ad-hoc
// connections (e.g. the import-tuned one living just for the time
// of a dictionary import) can be closed this way, for the shared
// service connection the method panics.
func (a *Adapter) Close() error {
	if !a.isAdHoc {
		panic("trying to close non-adhoc database Adapter")
	}
	return a.db.Close()
}

// WaitForServer pings the server with an exponential backoff so
// the service can start before its database is ready.
func (a *Adapter) WaitForServer(ctx context.Context) error {
	operation := func() (bool, error) {
		err := a.db.PingContext(ctx)
		if err != nil {
			log.Warn().Err(err).Str("db", a.dbName).Msg("database not ready yet")
		}
		return err == nil, err
	}
	bkoff := backoff.NewExponentialBackOff()
	bkoff.InitialInterval = dfltPingInitialInterval
	bkoff.MaxElapsedTime = dfltPingMaxElapsedTime
	_, err := backoff.RetryWithData(operation, backoff.WithContext(bkoff, ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", a.dbName, err)
	}
	return nil
}

func OpenDB(conf db.Conf) (*Adapter, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	mconf.Params = map[string]string{"autocommit": "true"}
	conn, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, err
	}
	return &Adapter{db: conn, dbName: mconf.DBName, conf: conf}, nil
}

// OpenImportTunedDB creates an Adapter instance with the underlying
// connection session having parameters suitable for faster data
// import (unique checks disabled, foreign checks disabled).
func OpenImportTunedDB(conf db.Conf) (*Adapter, error) {
	a, err := OpenDB(conf)
	if err != nil {
		return nil, err
	}
	a.isAdHoc = true
	for _, q := range []string{
		"SET SESSION unique_checks = 0",
		"SET SESSION foreign_key_checks = 0",
	} {
		if _, err = a.db.Exec(q); err != nil {
			return nil, err
		}
	}
	return a, nil
}
