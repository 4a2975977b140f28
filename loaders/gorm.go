package loaders

import (
	"context"
	"database/sql/driver"

	"github.com/pkg/errors"
	q "github.com/teamkeel/graphgate/query"
	"github.com/teamkeel/graphgate/runtime/common"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Gorm pages over a table with LIMIT/OFFSET. The total is only counted when
// the request asks for it.
type Gorm[T any] struct {
	DB *gorm.DB

	// Scope narrows the query, e.g. with a where clause or an ordering.
	// Without an ordering the pages are not stable.
	Scope func(tx *gorm.DB) *gorm.DB

	// ByOffset pages by the exact cursor offset instead of by page number.
	ByOffset bool
}

// OpenPostgres opens a gorm connection using the pgx backed postgres driver.
func OpenPostgres(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, errors.Wrap(common.ErrUnavailable, err.Error())
	}
	return db, nil
}

// Fetch implements q.FetchFunc.
func (g *Gorm[T]) Fetch(ctx context.Context, req q.PageRequest) (q.FetchResult[T], error) {
	tx := g.DB.WithContext(ctx).Model(new(T))
	if g.Scope != nil {
		tx = g.Scope(tx)
	}

	result := q.FetchResult[T]{}

	if req.WantTotalCount {
		var total int64
		err := tx.Session(&gorm.Session{}).Count(&total).Error
		if err != nil {
			return q.FetchResult[T]{}, databaseError(err, "counting rows")
		}
		result.TotalCount = q.KnownTotal(int(total))
	}

	start := req.PageStart()
	if g.ByOffset {
		start = req.Offset
		result.Offset = &start
	}

	var items []T
	err := tx.Session(&gorm.Session{}).
		Offset(start).
		Limit(req.Size).
		Find(&items).Error
	if err != nil {
		return q.FetchResult[T]{}, databaseError(err, "fetching page")
	}
	if items == nil {
		items = []T{}
	}
	result.Items = items

	return result, nil
}

func databaseError(err error, action string) error {
	if errors.Is(err, driver.ErrBadConn) {
		return errors.Wrap(common.ErrUnavailable, action+": "+err.Error())
	}
	return errors.Wrap(err, action)
}
