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

package lemma

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tupi/db/mysql"
)

const importBatchSize = 500

// Conf configures the lemma dictionary subsystem
type Conf struct {

	// DictFile is a path to a DELAF-style dictionary file to be
	// imported into the database
	DictFile string `json:"dictFile"`
}

// Storage provides database access to the imported lemma dictionary
type Storage struct {
	db *mysql.Adapter
}

// Init makes sure the dictionary table exists
func (s *Storage) Init(ctx context.Context) error {
	_, err := s.db.DB().ExecContext(
		ctx,
		`CREATE TABLE IF NOT EXISTS lemma_entry (
			form VARCHAR(100) NOT NULL,
			lemma VARCHAR(100) NOT NULL,
			pos VARCHAR(30) NOT NULL,
			upos VARCHAR(10) NOT NULL,
			morph VARCHAR(60) NOT NULL DEFAULT '',
			KEY lemma_entry_form_idx (form)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize lemma storage: %w", err)
	}
	return nil
}

// ImportDict (re)loads the whole dictionary file into the database.
// The import runs on a dedicated import-tuned connection and the
// previous dictionary contents are replaced atomically from the
// reader's point of view (single transaction).
func (s *Storage) ImportDict(ctx context.Context, path string) (int, error) {
	conn, err := mysql.OpenImportTunedDB(s.db.Conf())
	if err != nil {
		return 0, fmt.Errorf("failed to import dictionary: %w", err)
	}
	defer conn.Close()
	tx, err := conn.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to import dictionary: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM lemma_entry"); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to import dictionary: %w", err)
	}
	stmt, err := tx.PrepareContext(
		ctx,
		"INSERT INTO lemma_entry (form, lemma, pos, upos, morph) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to import dictionary: %w", err)
	}
	numEntries := 0
	err = ReadDict(ctx, path, func(entry Entry) error {
		_, err := stmt.ExecContext(
			ctx, entry.Form, entry.Lemma, entry.PoS, string(entry.UPos), entry.Morph)
		if err != nil {
			return err
		}
		numEntries++
		if numEntries%(importBatchSize*1000) == 0 {
			log.Info().Int("numEntries", numEntries).Msg("dictionary import in progress")
		}
		return nil
	})
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to import dictionary: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to import dictionary: %w", err)
	}
	log.Info().Int("numEntries", numEntries).Str("file", path).Msg("imported lemma dictionary")
	return numEntries, nil
}

// Lookup finds all the dictionary records of a word form, optionally
// restricted to a single universal PoS tag.
func (s *Storage) Lookup(ctx context.Context, form, upos string) ([]Entry, error) {
	q := "SELECT form, lemma, pos, upos, morph FROM lemma_entry WHERE form = ?"
	args := []any{form}
	if upos != "" {
		q += " AND upos = ?"
		args = append(args, upos)
	}
	q += " ORDER BY lemma, pos, morph"
	rows, err := s.db.DB().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search lemmas: %w", err)
	}
	defer rows.Close()
	ans := make([]Entry, 0, 5)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.Form, &entry.Lemma, &entry.PoS, &entry.UPos, &entry.Morph,
		); err != nil {
			return nil, fmt.Errorf("failed to search lemmas: %w", err)
		}
		ans = append(ans, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to search lemmas: %w", err)
	}
	return ans, nil
}

// Size provides the number of stored dictionary entries
func (s *Storage) Size(ctx context.Context) (int, error) {
	var ans int
	err := s.db.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM lemma_entry").Scan(&ans)
	if err != nil {
		return 0, fmt.Errorf("failed to count lemmas: %w", err)
	}
	return ans, nil
}

// NewStorage is the default factory
func NewStorage(db *mysql.Adapter) *Storage {
	return &Storage{db: db}
}
