package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/pkg/composables"
	"github.com/colophon-press/colophon/pkg/repo"
	"github.com/colophon-press/colophon/pkg/serrors"
)

// InsertHistory records the pre-update image of an entity together with the
// account responsible. Callers invoke it inside the same transaction as the
// update itself so the ledger can never drift from the data.
func (r *CrudRepository[T, K, F]) InsertHistory(ctx context.Context, previous T, account uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(previous)
	if err != nil {
		return errors.Wrap(err, "failed to serialise "+r.b.Table+" history entry")
	}

	cols := append([]string{r.b.HistoryPK}, r.b.HistoryKeyCols...)
	cols = append(cols, "account_id", "data", "timestamp")

	args := append([]any{uuid.New()}, r.b.HistoryKeyValues(previous)...)
	args = append(args, account, data, time.Now())

	query := repo.Insert(r.b.HistoryTable, cols)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return serrors.FromDatabase(err)
	}
	return nil
}
