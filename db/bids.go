package db

import (
	"context"
	"time"

	"sitesense/models"
)

const bidColumns = `b.id, b.bid_package_id, b.subcontractor_id, b.base_bid, b.labor_cost, b.material_cost,
        b.equipment_cost, b.overhead_cost, b.alternates, b.assumptions, b.clarifications, b.exclusions,
        b.proposed_start_date, b.proposed_duration_days, b.attachments, b.status, b.compliance_verified,
        b.score, b.evaluator_notes, b.submitted_at, b.updated_at`

func (q queries) CreateBid(ctx context.Context, b *models.Bid) error {
	_, err := q.exec(ctx, `
        INSERT INTO subcontractor_bids
            (id, bid_package_id, subcontractor_id, base_bid, labor_cost, material_cost, equipment_cost,
             overhead_cost, alternates, assumptions, clarifications, exclusions, proposed_start_date,
             proposed_duration_days, attachments, status, compliance_verified, evaluator_notes,
             submitted_at, updated_at)
        VALUES
            (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.BidPackageID, b.SubcontractorID, b.BaseBid, b.LaborCost, b.MaterialCost, b.EquipmentCost,
		b.OverheadCost, b.Alternates, b.Assumptions, b.Clarifications, b.Exclusions, b.ProposedStartDate,
		b.ProposedDurationDays, b.Attachments, b.Status, b.ComplianceVerified, b.EvaluatorNotes,
		b.SubmittedAt, b.UpdatedAt)
	return err
}

func (q queries) GetBid(ctx context.Context, id string) (*models.Bid, error) {
	b := &models.Bid{}
	if err := q.get(ctx, b, `SELECT `+bidColumns+` FROM subcontractor_bids b WHERE b.id = ?`, id); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBidDetails returns the package's bids, cheapest first, with the bidder's live credentials.
func (q queries) ListBidDetails(ctx context.Context, bidPackageID string) ([]models.BidDetail, error) {
	bids := []models.BidDetail{}
	err := q.selectAll(ctx, &bids, `
        SELECT `+bidColumns+`,
            s.company_name, s.rating,
            COALESCE(s.license_verified, FALSE) AS license_verified,
            COALESCE(s.coi_on_file, FALSE) AS coi_on_file,
            COALESCE(s.w9_on_file, FALSE) AS w9_on_file,
            s.insurance_expiry, s.license_expiry, s.workers_comp_expiry
        FROM subcontractor_bids b
        LEFT JOIN subcontractors s ON s.id = b.subcontractor_id
        WHERE b.bid_package_id = ?
        ORDER BY b.base_bid ASC`, bidPackageID)
	return bids, err
}

// UpdateBidEvaluation writes status, score and evaluator notes where set.
func (q queries) UpdateBidEvaluation(ctx context.Context, u models.BidUpdate, now time.Time) (int64, error) {
	var b setBuilder
	if u.Status != nil {
		b.add("status", *u.Status)
	}
	if u.Score != nil {
		b.add("score", *u.Score)
	}
	if u.EvaluatorNotes != nil {
		b.add("evaluator_notes", *u.EvaluatorNotes)
	}
	b.add("updated_at", now)

	return q.exec(ctx, `UPDATE subcontractor_bids SET `+b.clause()+` WHERE id = ?`, append(b.args, u.BidID)...)
}

// RejectOtherBids rejects every bid on the package except keepID.
func (q queries) RejectOtherBids(ctx context.Context, bidPackageID, keepID string, now time.Time) (int64, error) {
	return q.exec(ctx, `
        UPDATE subcontractor_bids SET status = ?, updated_at = ?
        WHERE bid_package_id = ? AND id <> ?`,
		models.BidRejected, now, bidPackageID, keepID)
}

func (q queries) DeleteBidsForPackage(ctx context.Context, bidPackageID string) (int64, error) {
	return q.exec(ctx, `DELETE FROM subcontractor_bids WHERE bid_package_id = ?`, bidPackageID)
}
