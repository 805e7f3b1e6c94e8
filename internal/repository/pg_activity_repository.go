package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/ahpc/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgActivityRepository struct {
	pool *pgxpool.Pool
}

// NewPgActivityRepository returns a PostgreSQL-backed ActivityRepository.
func NewPgActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &pgActivityRepository{pool: pool}
}

const activitySelectQuery = `
	SELECT id, title, to_char(date, 'YYYY-MM-DD'), category, short_description,
	       full_description, image_url, created_at, published
	FROM activities`

func (r *pgActivityRepository) List(ctx context.Context, opts model.ActivityListOptions) ([]*model.Activity, error) {
	var args []any
	query := activitySelectQuery

	if c := categoryFilter(opts.Category); c != "" {
		args = append(args, c)
		query += ` WHERE category = $1`
	}
	query += ` ORDER BY date DESC, created_at DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *pgActivityRepository) Get(ctx context.Context, id string) (*model.Activity, error) {
	a := &model.Activity{}
	err := r.pool.QueryRow(ctx, activitySelectQuery+` WHERE id = $1`, id).Scan(
		&a.ID, &a.Title, &a.Date, &a.Category, &a.ShortDescription,
		&a.FullDescription, &a.ImageURL, &a.CreatedAt, &a.Published,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *pgActivityRepository) Insert(ctx context.Context, a *model.Activity) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO activities (id, title, date, category, short_description,
		                         full_description, image_url, created_at, published)
		 VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9)`,
		id, a.Title, a.Date, a.Category, a.ShortDescription,
		a.FullDescription, a.ImageURL, a.CreatedAt, a.Published,
	)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *pgActivityRepository) Update(ctx context.Context, id string, patch model.ActivityPatch) error {
	if patch.IsEmpty() {
		return r.exists(ctx, id)
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Date != nil {
		args = append(args, *patch.Date)
		sets = append(sets, "date = $"+strconv.Itoa(len(args))+"::date")
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.ShortDescription != nil {
		set("short_description", *patch.ShortDescription)
	}
	if patch.FullDescription != nil {
		set("full_description", *patch.FullDescription)
	}
	if patch.ImageURL != nil {
		set("image_url", *patch.ImageURL)
	}
	if patch.Published != nil {
		set("published", *patch.Published)
	}

	args = append(args, id)
	tag, err := r.pool.Exec(ctx,
		`UPDATE activities SET `+strings.Join(sets, ", ")+` WHERE id = $`+strconv.Itoa(len(args)),
		args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// exists returns ErrNotFound when no activity has id.
func (r *pgActivityRepository) exists(ctx context.Context, id string) error {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM activities WHERE id = $1)`, id).Scan(&found)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Delete removes the activity. Deleting a missing id is not an error.
func (r *pgActivityRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	return err
}

type scannable interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanActivities(rows scannable) ([]*model.Activity, error) {
	var items []*model.Activity
	for rows.Next() {
		a := &model.Activity{}
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Date, &a.Category, &a.ShortDescription,
			&a.FullDescription, &a.ImageURL, &a.CreatedAt, &a.Published,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
