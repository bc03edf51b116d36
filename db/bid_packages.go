package db

import (
	"context"
	"time"

	"sitesense/models"
)

const bidPackageColumns = `bp.id, bp.user_id, bp.job_id, bp.package_number, bp.name, bp.description,
        bp.scope_of_work, bp.inclusions, bp.exclusions, bp.due_date, bp.start_date, bp.end_date,
        bp.budget_estimate, bp.status, bp.awarded_to, bp.awarded_amount, bp.awarded_at,
        bp.created_at, bp.updated_at`

func (q queries) CreateBidPackage(ctx context.Context, p *models.BidPackage) error {
	_, err := q.exec(ctx, `
        INSERT INTO bid_packages
            (id, user_id, job_id, package_number, name, description, scope_of_work, inclusions,
             exclusions, due_date, start_date, end_date, budget_estimate, status, created_at, updated_at)
        VALUES
            (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.JobID, p.PackageNumber, p.Name, p.Description, p.ScopeOfWork, p.Inclusions,
		p.Exclusions, p.DueDate, p.StartDate, p.EndDate, p.BudgetEstimate, p.Status, p.CreatedAt, p.UpdatedAt)
	return err
}

func (q queries) GetBidPackage(ctx context.Context, id string) (*models.BidPackage, error) {
	p := &models.BidPackage{}
	if err := q.get(ctx, p, `SELECT `+bidPackageColumns+` FROM bid_packages bp WHERE bp.id = ?`, id); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPackageNumbersForJob returns the job's generated-style package numbers (BP-...).
func (q queries) ListPackageNumbersForJob(ctx context.Context, jobID string) ([]string, error) {
	numbers := []string{}
	err := q.selectAll(ctx, &numbers, `
        SELECT package_number FROM bid_packages
        WHERE job_id = ? AND package_number LIKE 'BP-%'`, jobID)
	return numbers, err
}

func (q queries) ListBidPackages(ctx context.Context, f models.BidPackageFilter) ([]models.BidPackageSummary, error) {
	query := `
        SELECT ` + bidPackageColumns + `,
            j.name AS job_name,
            s.company_name AS awarded_to_name,
            (SELECT COUNT(1) FROM bid_package_invites i WHERE i.bid_package_id = bp.id) AS invite_count,
            (SELECT COUNT(1) FROM subcontractor_bids b WHERE b.bid_package_id = bp.id) AS bid_count
        FROM bid_packages bp
        LEFT JOIN jobs j ON j.id = bp.job_id
        LEFT JOIN subcontractors s ON s.id = bp.awarded_to
        WHERE bp.user_id = ?`
	args := []interface{}{f.UserID}
	if f.JobID != "" {
		query += " AND bp.job_id = ?"
		args = append(args, f.JobID)
	}
	if f.Status != "" {
		query += " AND bp.status = ?"
		args = append(args, f.Status)
	}
	query += " ORDER BY bp.created_at DESC"

	packages := []models.BidPackageSummary{}
	err := q.selectAll(ctx, &packages, query, args...)
	return packages, err
}

// UpdateBidPackage applies the non-nil fields of u and always bumps updated_at.
func (q queries) UpdateBidPackage(ctx context.Context, u models.BidPackageUpdate, now time.Time) (int64, error) {
	var b setBuilder
	if u.Name != nil {
		b.add("name", *u.Name)
	}
	if u.PackageNumber != nil {
		b.add("package_number", *u.PackageNumber)
	}
	if u.Description != nil {
		b.add("description", *u.Description)
	}
	if u.ScopeOfWork != nil {
		b.add("scope_of_work", *u.ScopeOfWork)
	}
	if u.Inclusions != nil {
		b.add("inclusions", *u.Inclusions)
	}
	if u.Exclusions != nil {
		b.add("exclusions", *u.Exclusions)
	}
	if u.DueDate != nil {
		b.add("due_date", *u.DueDate)
	}
	if u.StartDate != nil {
		b.add("start_date", *u.StartDate)
	}
	if u.EndDate != nil {
		b.add("end_date", *u.EndDate)
	}
	if u.BudgetEstimate != nil {
		b.add("budget_estimate", *u.BudgetEstimate)
	}
	if u.Status != nil {
		b.add("status", *u.Status)
	}
	b.add("updated_at", now)

	return q.exec(ctx, `UPDATE bid_packages SET `+b.clause()+` WHERE id = ?`, append(b.args, u.ID)...)
}

func (q queries) SetBidPackageStatus(ctx context.Context, id string, status models.PackageStatus, now time.Time) error {
	_, err := q.exec(ctx, `UPDATE bid_packages SET status = ?, updated_at = ? WHERE id = ?`, status, now, id)
	return err
}

// AwardBidPackage stamps the winner; status and the three award fields move together.
func (q queries) AwardBidPackage(ctx context.Context, id, subcontractorID string, amount float64, at time.Time) error {
	_, err := q.exec(ctx, `
        UPDATE bid_packages
        SET status = ?, awarded_to = ?, awarded_amount = ?, awarded_at = ?, updated_at = ?
        WHERE id = ?`,
		models.PackageAwarded, subcontractorID, amount, at, at, id)
	return err
}

func (q queries) DeleteBidPackage(ctx context.Context, id string) (int64, error) {
	return q.exec(ctx, `DELETE FROM bid_packages WHERE id = ?`, id)
}
