package repositories

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/villastay/villa-api/internal/logger"
)

const (
	// DefaultPageSize is applied when callers do not specify one.
	DefaultPageSize = 2
	// MaxPageSize caps the effective page size of any read.
	MaxPageSize = 100
)

// Filter is a predicate evaluated against a single record. It is applied
// before pagination; only one predicate per query is supported.
type Filter[T any] func(T) bool

// RelationLoader attaches a named related record to every element of a page.
type RelationLoader[T any] func(ctx context.Context, recs []T) error

// Config binds a record type to its table and named statements.
type Config[T any] struct {
	Table  string
	Insert string // named insert; ends with RETURNING <key> when SetKey is set
	Update string // named full-record replace by key
	Delete string // named delete by key

	// SetKey stores a server-assigned key back on the record after insert.
	// Leave nil when the key is supplied by the client.
	SetKey func(rec *T, key int64)

	// Relations is the closed set of relation names this record type can
	// eager-load. Unknown names requested by a caller are an error.
	Relations map[string]RelationLoader[T]
}

type opKind int

const (
	opInsert opKind = iota
	opUpdate
	opDelete
)

type pendingOp[T any] struct {
	kind opKind
	rec  *T
}

type trackedRecord[T any] struct {
	rec      *T
	snapshot T
}

// Repository is a generic gateway over a single table. It holds no mutable
// state of its own; pending writes and tracked reads live on a Session, one
// per request or unit of work. The convenience methods on Repository each
// run in their own single-use session.
type Repository[T any] struct {
	db  *sqlx.DB
	cfg Config[T]
}

// New creates a gateway for one record type.
func New[T any](db *sqlx.DB, cfg Config[T]) *Repository[T] {
	return &Repository[T]{db: db, cfg: cfg}
}

// Session is one unit of work against a gateway: it owns the queued writes
// and the tracked reads, and Save flushes exactly this session's changes.
// A Session belongs to a single caller and is not safe for concurrent use.
type Session[T any] struct {
	repo    *Repository[T]
	pending []pendingOp[T]
	tracked []trackedRecord[T]
}

// NewSession opens an empty change set against this gateway.
func (r *Repository[T]) NewSession() *Session[T] {
	return &Session[T]{repo: r}
}

// GetAll returns the records matching filter, paginated, with the requested
// relations eager-loaded. include is a comma-separated list of relation
// names; empty and whitespace entries are ignored. pageSize is clamped to
// MaxPageSize; a pageSize <= 0 disables pagination. Ordering is whatever the
// store returns.
func (r *Repository[T]) GetAll(ctx context.Context, filter Filter[T], pageSize, pageNumber int, include string) ([]T, error) {
	query := `SELECT * FROM ` + r.cfg.Table

	var recs []T
	err := r.db.SelectContext(ctx, &recs, query)

	logger.Log.Infow("get all",
		"query", query,
		"rows", len(recs),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	if filter != nil {
		matched := make([]T, 0, len(recs))
		for _, rec := range recs {
			if filter(rec) {
				matched = append(matched, rec)
			}
		}
		recs = matched
	}

	if pageSize > 0 {
		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}
		if pageNumber < 1 {
			pageNumber = 1
		}
		skip := pageSize * (pageNumber - 1)
		if skip >= len(recs) {
			recs = []T{}
		} else {
			end := skip + pageSize
			if end > len(recs) {
				end = len(recs)
			}
			recs = recs[skip:end]
		}
	}

	for _, name := range strings.Split(include, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		loader, ok := r.cfg.Relations[name]
		if !ok {
			return nil, fmt.Errorf("unknown relation %q for table %s", name, r.cfg.Table)
		}
		if err := loader(ctx, recs); err != nil {
			return nil, err
		}
	}

	return recs, nil
}

// Get returns the first record matching filter, or (nil, nil) when nothing
// matches. Each call runs in its own single-use session, so tracked=true is
// only useful through a Session the caller holds on to; pass tracked=false
// for plain reads.
func (r *Repository[T]) Get(ctx context.Context, filter Filter[T], tracked bool) (*T, error) {
	return r.NewSession().Get(ctx, filter, tracked)
}

// Create inserts the record in its own session and immediately commits.
// A server-assigned key is stored back on the record.
func (r *Repository[T]) Create(ctx context.Context, rec *T) error {
	return r.NewSession().Create(ctx, rec)
}

// Remove deletes the record in its own session and immediately commits.
func (r *Repository[T]) Remove(ctx context.Context, rec *T) error {
	return r.NewSession().Remove(ctx, rec)
}

// first scans the table and returns the first record matching filter.
func (r *Repository[T]) first(ctx context.Context, filter Filter[T]) (*T, error) {
	query := `SELECT * FROM ` + r.cfg.Table

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		logger.Log.Errorw("get failed", "query", query, "error", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec T
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		if filter != nil && !filter(rec) {
			continue
		}
		return &rec, nil
	}
	return nil, rows.Err()
}

// Get returns the first record matching filter, or (nil, nil) when nothing
// matches. With tracked=true the record joins this session's change set and
// is written back on the next Save if modified; pass tracked=false for a
// read-only fetch, e.g. before an explicit Update.
func (s *Session[T]) Get(ctx context.Context, filter Filter[T], tracked bool) (*T, error) {
	rec, err := s.repo.first(ctx, filter)
	if err != nil || rec == nil {
		return rec, err
	}
	if tracked {
		s.tracked = append(s.tracked, trackedRecord[T]{rec: rec, snapshot: *rec})
	}
	return rec, nil
}

// Create inserts the record and immediately commits. A server-assigned key
// is stored back on the record.
func (s *Session[T]) Create(ctx context.Context, rec *T) error {
	s.pending = append(s.pending, pendingOp[T]{kind: opInsert, rec: rec})
	return s.Save(ctx)
}

// Remove deletes the record and immediately commits.
func (s *Session[T]) Remove(ctx context.Context, rec *T) error {
	s.pending = append(s.pending, pendingOp[T]{kind: opDelete, rec: rec})
	return s.Save(ctx)
}

// Update queues a full replace of the record and immediately commits.
func (s *Session[T]) Update(ctx context.Context, rec *T) error {
	s.pending = append(s.pending, pendingOp[T]{kind: opUpdate, rec: rec})
	return s.Save(ctx)
}

// Save commits every change queued on this session since the last commit,
// plus a full replace for every tracked record modified since its read.
// Store failures are returned to the caller as-is; the session never holds
// on to failed operations for a later retry.
func (s *Session[T]) Save(ctx context.Context) error {
	ops := s.pending
	s.pending = nil
	for i := range s.tracked {
		tr := &s.tracked[i]
		if !reflect.DeepEqual(*tr.rec, tr.snapshot) {
			ops = append(ops, pendingOp[T]{kind: opUpdate, rec: tr.rec})
			tr.snapshot = *tr.rec
		}
	}
	return s.repo.flush(ctx, ops)
}

func (r *Repository[T]) flush(ctx context.Context, ops []pendingOp[T]) error {
	if len(ops) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	for _, op := range ops {
		if err := r.apply(ctx, tx, op); err != nil {
			tx.Rollback()
			logger.Log.Errorw("save failed", "table", r.cfg.Table, "error", err)
			return err
		}
	}

	err = tx.Commit()
	logger.Log.Infow("save",
		"table", r.cfg.Table,
		"ops", len(ops),
		"error", err,
	)
	return err
}

func (r *Repository[T]) apply(ctx context.Context, tx *sqlx.Tx, op pendingOp[T]) error {
	switch op.kind {
	case opInsert:
		if r.cfg.SetKey == nil {
			_, err := tx.NamedExecContext(ctx, r.cfg.Insert, op.rec)
			return err
		}
		rows, err := sqlx.NamedQueryContext(ctx, tx, r.cfg.Insert, op.rec)
		if err != nil {
			return err
		}
		defer rows.Close()
		if rows.Next() {
			var key int64
			if err := rows.Scan(&key); err != nil {
				return err
			}
			r.cfg.SetKey(op.rec, key)
		}
		return rows.Err()
	case opUpdate:
		_, err := tx.NamedExecContext(ctx, r.cfg.Update, op.rec)
		return err
	default:
		_, err := tx.NamedExecContext(ctx, r.cfg.Delete, op.rec)
		return err
	}
}
