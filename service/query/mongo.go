// Package query is the thin mongo layer shared by every repository. Each call
// is timed, slow calls are logged and, with checkIndex on, queries that would
// scan a whole collection are refused.
package query

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrCollScan is returned for queries no index can serve
	ErrCollScan = errors.New("COLLSCAN is not allowed")
)

type Mongo interface {
	// FindOne returns ErrNotFound when nothing matches
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the whole document matched by selector, inserting it when absent
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search applies sortFields in order, "-field" for descending. A limit of 0 means no limit.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error

	// EnsureIndexes creates missing indexes, existing ones are left untouched
	EnsureIndexes(context ctx.Ctx, table domain.Table, models []mongo.IndexModel) error

	Ping(context ctx.Ctx) error
}
