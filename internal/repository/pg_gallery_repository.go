package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/ahpc/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgGalleryRepository is the PostgreSQL implementation of GalleryRepository.
type PgGalleryRepository struct {
	pool *pgxpool.Pool
}

// NewPgGalleryRepository creates a PgGalleryRepository backed by the given pool.
func NewPgGalleryRepository(pool *pgxpool.Pool) *PgGalleryRepository {
	return &PgGalleryRepository{pool: pool}
}

var _ GalleryRepository = (*PgGalleryRepository)(nil)

func (r *PgGalleryRepository) List(ctx context.Context, opts model.GalleryListOptions) ([]*model.GalleryImage, error) {
	var args []any
	query := `SELECT id, url, caption, category, created_at FROM gallery`

	if c := categoryFilter(opts.Category); c != "" {
		args = append(args, c)
		query += ` WHERE category = $1`
	}
	query += ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*model.GalleryImage
	for rows.Next() {
		var img model.GalleryImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Caption, &img.Category, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, &img)
	}
	return images, rows.Err()
}

func (r *PgGalleryRepository) Get(ctx context.Context, id string) (*model.GalleryImage, error) {
	var img model.GalleryImage
	err := r.pool.QueryRow(ctx,
		`SELECT id, url, caption, category, created_at FROM gallery WHERE id = $1`, id,
	).Scan(&img.ID, &img.URL, &img.Caption, &img.Category, &img.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *PgGalleryRepository) Insert(ctx context.Context, img *model.GalleryImage) error {
	id := uuid.NewString()
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO gallery (id, url, caption, category, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, img.URL, img.Caption, img.Category, img.CreatedAt,
	); err != nil {
		return err
	}
	img.ID = id
	return nil
}

// Delete removes the image record. Deleting a missing id is not an error.
func (r *PgGalleryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	return err
}
