package serrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeDatabase           = "DATABASE"
	CodeDatabaseConstraint = "DATABASE_CONSTRAINT"
)

// ErrDatabase is the generic storage failure sentinel. It never carries raw
// database text; compare with errors.Is.
var ErrDatabase = NewError(CodeDatabase, "database error")

// ErrDatabaseConstraint matches any translated constraint violation,
// regardless of the per-constraint message.
var ErrDatabaseConstraint = NewError(CodeDatabaseConstraint, "constraint violation")

// constraintMessages maps database constraint names to user-facing sentences.
//
// To list the unique and check constraints present in the schema:
//
//	SELECT conname
//	FROM pg_catalog.pg_constraint con
//	JOIN pg_catalog.pg_class rel ON rel.oid = con.conrelid
//	JOIN pg_catalog.pg_namespace nsp ON nsp.oid = connamespace
//	WHERE nsp.nspname = 'public' AND contype IN ('u', 'c');
var constraintMessages = map[string]string{
	"contribution_contribution_ordinal_work_id_uniq":              "A contribution with this ordinal number already exists.",
	"contribution_work_id_contributor_id_contribution_type_uniq":  "A contribution of this type already exists for this contributor.",
	"issue_series_id_work_id_uniq":                                "An issue on the selected series already exists for this work.",
	"issue_issue_ordinal_series_id_uniq":                          "An issue with this ordinal number already exists in the selected series.",
	"publication_publication_type_work_id_uniq":                   "A publication with the selected type already exists.",
	"location_uniq_canonical_true_idx":                            "A canonical location already exists for this publication.",
	"location_url_check":                                          "A location must have a landing page or a full text URL.",
	"subject_subject_type_subject_code_subject_ordinal_work_uniq": "A subject with this ordinal number already exists.",
}

func NewDatabaseConstraintError(message string) *BaseError {
	return NewError(CodeDatabaseConstraint, message)
}

// FromDatabase translates a storage-layer error into one of the core's error
// kinds. Named constraint violations become their mapped sentence; anything
// else from the database collapses into the generic ErrDatabase so raw
// database text never reaches callers. pgx.ErrNoRows becomes
// ErrEntityNotFound. Non-database errors pass through untouched.
func FromDatabase(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEntityNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := constraintMessages[pgErr.ConstraintName]; ok {
			return NewDatabaseConstraintError(msg)
		}
		return ErrDatabase
	}
	return err
}
