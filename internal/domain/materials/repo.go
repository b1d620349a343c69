package materials

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("материал не найден")

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func scanMaterial(row pgx.Row) (*Material, error) {
	var (
		m       Material
		l, w, h *float64
	)
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Categories,
		&m.Price,
		&m.Quantity,
		&m.Unit,
		&l,
		&w,
		&h,
		&m.Color,
		&m.IsHidden,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	if l != nil && w != nil {
		d := Dimensions{Length: *l, Width: *w}
		if h != nil {
			d.Height = *h
		}
		m.Dims = &d
	}
	return &m, nil
}

func dimCols(m *Material) (l, w, h *float64) {
	if m.Dims == nil {
		return nil, nil, nil
	}
	l, w = &m.Dims.Length, &m.Dims.Width
	if m.Dims.Height > 0 {
		h = &m.Dims.Height
	}
	return l, w, h
}

const materialCols = `id, name, categories, price, quantity, unit, length_mm, width_mm, height_mm, color, is_hidden, created_at`

func (r *Repo) Create(ctx context.Context, m *Material) (*Material, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	l, w, h := dimCols(m)
	row := r.pool.QueryRow(ctx, `
		INSERT INTO materials (id, name, categories, price, quantity, unit, length_mm, width_mm, height_mm, color, is_hidden)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+materialCols+`
	`, m.ID, m.Name, m.Categories, m.Price, m.Quantity, m.Unit, l, w, h, m.Color, m.IsHidden)
	return scanMaterial(row)
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Material, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+materialCols+`
		FROM materials WHERE id = $1
	`, id)
	m, err := scanMaterial(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *Repo) Update(ctx context.Context, m *Material) (*Material, error) {
	l, w, h := dimCols(m)
	row := r.pool.QueryRow(ctx, `
		UPDATE materials
		SET name=$2, categories=$3, price=$4, quantity=$5, unit=$6,
		    length_mm=$7, width_mm=$8, height_mm=$9, color=$10, is_hidden=$11
		WHERE id=$1
		RETURNING `+materialCols+`
	`, m.ID, m.Name, m.Categories, m.Price, m.Quantity, m.Unit, l, w, h, m.Color, m.IsHidden)
	out, err := scanMaterial(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return out, err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM materials WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByCategory постраничная выборка материалов с данным тегом.
// Страницы нумеруются с 1. Возвращает страницу и общее число записей.
func (r *Repo) ListByCategory(ctx context.Context, tag string, page, pageSize int) ([]Material, int, error) {
	if page <= 0 {
		page = 1
	}
	var total int
	if err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM materials WHERE $1 = ANY(categories)
	`, tag).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+materialCols+`
		FROM materials
		WHERE $1 = ANY(categories)
		ORDER BY name, id
		LIMIT $2 OFFSET $3
	`, tag, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *m)
	}
	return out, total, rows.Err()
}
