package db

import (
	"context"
	"time"

	"sitesense/models"
)

const subcontractorColumns = `id, user_id, company_name, contact_name, email, phone, trade,
        license_verified, coi_on_file, w9_on_file, insurance_expiry, license_expiry, workers_comp_expiry,
        rating, projects_completed, created_at, updated_at`

func (q queries) CreateSubcontractor(ctx context.Context, s *models.Subcontractor) error {
	_, err := q.exec(ctx, `
        INSERT INTO subcontractors
            (id, user_id, company_name, contact_name, email, phone, trade, license_verified, coi_on_file,
             w9_on_file, insurance_expiry, license_expiry, workers_comp_expiry, rating, projects_completed,
             created_at, updated_at)
        VALUES
            (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.CompanyName, s.ContactName, s.Email, s.Phone, s.Trade, s.LicenseVerified, s.COIOnFile,
		s.W9OnFile, s.InsuranceExpiry, s.LicenseExpiry, s.WorkersCompExpiry, s.Rating, s.ProjectsCompleted,
		s.CreatedAt, s.UpdatedAt)
	return err
}

func (q queries) GetSubcontractor(ctx context.Context, id string) (*models.Subcontractor, error) {
	s := &models.Subcontractor{}
	if err := q.get(ctx, s, `SELECT `+subcontractorColumns+` FROM subcontractors WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return s, nil
}

func (q queries) ListSubcontractors(ctx context.Context, userID, trade string) ([]models.Subcontractor, error) {
	query := `SELECT ` + subcontractorColumns + ` FROM subcontractors WHERE user_id = ?`
	args := []interface{}{userID}
	if trade != "" {
		query += " AND trade = ?"
		args = append(args, trade)
	}
	query += " ORDER BY company_name ASC"

	subs := []models.Subcontractor{}
	err := q.selectAll(ctx, &subs, query, args...)
	return subs, err
}

func (q queries) UpdateSubcontractor(ctx context.Context, u models.SubcontractorUpdate, now time.Time) (int64, error) {
	var b setBuilder
	if u.CompanyName != nil {
		b.add("company_name", *u.CompanyName)
	}
	if u.ContactName != nil {
		b.add("contact_name", *u.ContactName)
	}
	if u.Email != nil {
		b.add("email", *u.Email)
	}
	if u.Phone != nil {
		b.add("phone", *u.Phone)
	}
	if u.Trade != nil {
		b.add("trade", *u.Trade)
	}
	if u.LicenseVerified != nil {
		b.add("license_verified", *u.LicenseVerified)
	}
	if u.COIOnFile != nil {
		b.add("coi_on_file", *u.COIOnFile)
	}
	if u.W9OnFile != nil {
		b.add("w9_on_file", *u.W9OnFile)
	}
	if u.InsuranceExpiry != nil {
		b.add("insurance_expiry", u.InsuranceExpiry.UTC())
	}
	if u.LicenseExpiry != nil {
		b.add("license_expiry", u.LicenseExpiry.UTC())
	}
	if u.WorkersCompExpiry != nil {
		b.add("workers_comp_expiry", u.WorkersCompExpiry.UTC())
	}
	if u.Rating != nil {
		b.add("rating", *u.Rating)
	}
	if u.ProjectsCompleted != nil {
		b.add("projects_completed", *u.ProjectsCompleted)
	}
	b.add("updated_at", now)

	return q.exec(ctx, `UPDATE subcontractors SET `+b.clause()+` WHERE id = ?`, append(b.args, u.ID)...)
}
