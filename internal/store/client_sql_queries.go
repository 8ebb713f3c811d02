// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-run-watch/models"
)

const credentialsTable = "credentials"

// sqlite uses '?' placeholders, the squirrel default.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertCredentialQuery(credential models.Credential) (string, []any, error) {
	return sqlite.
		Insert(credentialsTable).
		Columns("name", "token", "updated_at").
		Values(credential.Name, credential.Token, credential.UpdatedAt).
		Suffix("ON CONFLICT(name) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectCredentialQuery(name string) (string, []any, error) {
	return sqlite.
		Select("name", "token", "updated_at").
		From(credentialsTable).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
}

func buildDeleteCredentialQuery(name string) (string, []any, error) {
	return sqlite.
		Delete(credentialsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
