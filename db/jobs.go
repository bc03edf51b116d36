package db

import (
	"context"

	"sitesense/models"
)

const jobColumns = `id, user_id, name, client_name, address, status, created_at, updated_at`

func (q queries) CreateJob(ctx context.Context, j *models.Job) error {
	_, err := q.exec(ctx, `
        INSERT INTO jobs (id, user_id, name, client_name, address, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.UserID, j.Name, j.ClientName, j.Address, j.Status, j.CreatedAt, j.UpdatedAt)
	return err
}

func (q queries) GetJob(ctx context.Context, id string) (*models.Job, error) {
	j := &models.Job{}
	if err := q.get(ctx, j, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return j, nil
}

func (q queries) ListJobs(ctx context.Context, userID string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := q.selectAll(ctx, &jobs, `
        SELECT `+jobColumns+`
        FROM jobs
        WHERE user_id = ?
        ORDER BY created_at DESC`, userID)
	return jobs, err
}
