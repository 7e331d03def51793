package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// HashFunc hashes a pending credential before it is written. Injected so the
// gateway stays free of any particular hashing scheme.
type HashFunc func(plain string) (string, error)

// Gateway executes synthesized statements against an injected connection
// pool. It is generic over entity types: every operation is driven by a
// Descriptor or a Record, never by hand-written per-entity SQL.
type Gateway struct {
	db   *sqlx.DB
	hash HashFunc
}

func NewGateway(db *sqlx.DB, hash HashFunc) *Gateway {
	return &Gateway{db: db, hash: hash}
}

// Create inserts an explicit field-set and returns the storage-assigned
// identity. A zero identity with a nil error means the insert reported no
// new row; callers must treat it as a creation failure.
func (g *Gateway) Create(ctx context.Context, desc *Descriptor, fields Row) (int64, error) {
	query, args := insertStatement(desc, fields)

	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", desc.Table, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assigned id for %s: %w", desc.Table, err)
	}

	return id, nil
}

// FindBy selects at most one row matching an equality predicate. An empty
// Row (not an error) is returned when nothing matches; hydration is the
// caller's job.
func (g *Gateway) FindBy(ctx context.Context, desc *Descriptor, column string, value any) (Row, error) {
	query := selectStatement(desc, column)

	rows, err := g.db.QueryxContext(ctx, query, bindValue(value))
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", desc.Table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to fetch %s row: %w", desc.Table, err)
		}
		return Row{}, nil
	}

	return scanRow(rows, desc)
}

// FindAllBy selects every row matching an equality predicate, in storage
// order.
func (g *Gateway) FindAllBy(ctx context.Context, desc *Descriptor, column string, value any) ([]Row, error) {
	query := selectStatement(desc, column)

	rows, err := g.db.QueryxContext(ctx, query, bindValue(value))
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", desc.Table, err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		row, err := scanRow(rows, desc)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch %s rows: %w", desc.Table, err)
	}

	return result, nil
}

// FindAll selects every row of the entity's table, in storage order.
func (g *Gateway) FindAll(ctx context.Context, desc *Descriptor) ([]Row, error) {
	query := selectAllStatement(desc)

	rows, err := g.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", desc.Table, err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		row, err := scanRow(rows, desc)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch %s rows: %w", desc.Table, err)
	}

	return result, nil
}

// Save executes a diff update for the record and reports whether any row was
// affected. A record whose identity no longer matches a row naturally
// affects zero rows; surfacing that as not-found is the caller's job.
func (g *Gateway) Save(ctx context.Context, rec Record) (bool, error) {
	desc := rec.Descriptor()

	query, args, err := updateStatement(rec, time.Now(), g.hash)
	if err != nil {
		return false, fmt.Errorf("failed to build update for %s: %w", desc.Table, err)
	}

	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update %s: %w", desc.Table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows for %s: %w", desc.Table, err)
	}

	return affected > 0, nil
}

// Remove soft-deletes rows matching an equality predicate by stamping
// deleted_at. The row remains findable afterwards.
func (g *Gateway) Remove(ctx context.Context, desc *Descriptor, column string, value any) (bool, error) {
	query := removeStatement(desc, column)

	res, err := g.db.ExecContext(ctx, query, time.Now().UTC().Format(TimeFormat), bindValue(value))
	if err != nil {
		return false, fmt.Errorf("failed to soft-delete from %s: %w", desc.Table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows for %s: %w", desc.Table, err)
	}

	return affected > 0, nil
}

// scanRow reads the current row into a field-set keyed by column name,
// normalizing driver byte slices to strings.
func scanRow(rows *sqlx.Rows, desc *Descriptor) (Row, error) {
	raw := map[string]any{}
	if err := rows.MapScan(raw); err != nil {
		return nil, fmt.Errorf("failed to scan %s row: %w", desc.Table, err)
	}

	row := Row{}
	for k, v := range raw {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
			continue
		}
		row[k] = v
	}

	return row, nil
}
