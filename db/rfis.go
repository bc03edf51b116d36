package db

import (
	"context"

	"sitesense/models"
)

func (q queries) CreateRFI(ctx context.Context, r *models.RFI) error {
	_, err := q.exec(ctx, `
        INSERT INTO bid_package_rfis (id, bid_package_id, subcontractor_id, question, answer, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.BidPackageID, r.SubcontractorID, r.Question, r.Answer, r.Status, r.CreatedAt)
	return err
}

func (q queries) ListRFIs(ctx context.Context, bidPackageID string) ([]models.RFI, error) {
	rfis := []models.RFI{}
	err := q.selectAll(ctx, &rfis, `
        SELECT id, bid_package_id, subcontractor_id, question, answer, status, created_at
        FROM bid_package_rfis
        WHERE bid_package_id = ?
        ORDER BY created_at ASC`, bidPackageID)
	return rfis, err
}

func (q queries) DeleteRFIsForPackage(ctx context.Context, bidPackageID string) (int64, error) {
	return q.exec(ctx, `DELETE FROM bid_package_rfis WHERE bid_package_id = ?`, bidPackageID)
}
