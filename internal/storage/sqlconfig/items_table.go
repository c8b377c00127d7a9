package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IItemsTable = (*ItemsTable)(nil)

type ItemsTable struct {
	exec bob.Executor
}

func NewItemsTable(db *sql.DB) ItemsTable {
	return ItemsTable{exec: bob.NewDB(db)}
}

// Get retrieves an item by primary key. A missing key is not an error.
func (t *ItemsTable) Get(ctx context.Context, key string) (*Item, error) {
	query := psql.Select(
		sm.Columns("key", "value", "updated_at"),
		sm.From("secure_items"),
		sm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)

	item, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Item]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Put upserts value under key. The whole value is always replaced.
func (t *ItemsTable) Put(ctx context.Context, key string, value []byte) error {
	query := psql.Insert(
		im.Into("secure_items", "key", "value", "updated_at"),
		im.Values(psql.Arg(key, value, time.Now())),
		im.OnConflict("key").DoUpdate(
			im.SetExcluded("value", "updated_at"),
		),
	)

	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
