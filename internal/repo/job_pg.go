package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"huffzip_go/internal/model"
)

type jobRepoPostgres struct {
	pool *pgxpool.Pool
}

func NewJobRepoPostgres(pool *pgxpool.Pool) JobRepo {
	return &jobRepoPostgres{pool: pool}
}

func (r *jobRepoPostgres) Save(j *model.Job) error {
	_, err := r.pool.Exec(context.Background(), `
INSERT INTO jobs (id, direction, input_size, output_size, ratio, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
		j.ID, j.Direction, j.InputSize, j.OutputSize, j.Ratio, j.CreatedAt)
	return err
}

func (r *jobRepoPostgres) FindByID(id string) (*model.Job, error) {
	var j model.Job
	err := r.pool.QueryRow(context.Background(), `
SELECT id, direction, input_size, output_size, ratio, created_at
FROM jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Direction, &j.InputSize, &j.OutputSize, &j.Ratio, &j.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepoPostgres) List() ([]*model.Job, error) {
	rows, err := r.pool.Query(context.Background(), `
SELECT id, direction, input_size, output_size, ratio, created_at
FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Job, 0)
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.ID, &j.Direction, &j.InputSize, &j.OutputSize, &j.Ratio, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &j)
	}
	return out, rows.Err()
}
