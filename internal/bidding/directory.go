package bidding

import (
	"context"
	"fmt"
	"time"

	"sitesense/internal/compliance"
	"sitesense/models"
)

const defaultJobStatus = "active"

func (s *Service) CreateJob(ctx context.Context, req models.CreateJobRequest) (*models.Job, error) {
	now := s.timestamp()
	job := &models.Job{
		ID:         s.newID(),
		UserID:     req.UserID,
		Name:       req.Name,
		ClientName: req.ClientName,
		Address:    req.Address,
		Status:     req.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if job.Status == "" {
		job.Status = defaultJobStatus
	}
	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

func (s *Service) ListJobs(ctx context.Context, userID string) ([]models.Job, error) {
	return s.store.ListJobs(ctx, userID)
}

func (s *Service) CreateSubcontractor(ctx context.Context, req models.CreateSubcontractorRequest) (*models.Subcontractor, error) {
	now := s.timestamp()
	sub := &models.Subcontractor{
		ID:          s.newID(),
		UserID:      req.UserID,
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Trade:       req.Trade,
		Credentials: models.Credentials{
			LicenseVerified:   req.LicenseVerified,
			COIOnFile:         req.COIOnFile,
			W9OnFile:          req.W9OnFile,
			InsuranceExpiry:   utc(req.InsuranceExpiry),
			LicenseExpiry:     utc(req.LicenseExpiry),
			WorkersCompExpiry: utc(req.WorkersCompExpiry),
		},
		Rating:            req.Rating,
		ProjectsCompleted: req.ProjectsCompleted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.store.CreateSubcontractor(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subcontractor: %w", err)
	}
	return sub, nil
}

func (s *Service) GetSubcontractor(ctx context.Context, id string) (*models.Subcontractor, error) {
	sub, err := s.store.GetSubcontractor(ctx, id)
	if err != nil {
		return nil, notFound(err, "subcontractor")
	}
	return sub, nil
}

func (s *Service) ListSubcontractors(ctx context.Context, userID, trade string) ([]models.Subcontractor, error) {
	return s.store.ListSubcontractors(ctx, userID, trade)
}

// UpdateSubcontractor changes profile and credential fields. Bids already submitted keep
// their compliance snapshot. An unknown id is a no-op and returns nil.
func (s *Service) UpdateSubcontractor(ctx context.Context, u models.SubcontractorUpdate) (*models.Subcontractor, error) {
	n, err := s.store.UpdateSubcontractor(ctx, u, s.timestamp())
	if err != nil {
		return nil, fmt.Errorf("update subcontractor: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return s.GetSubcontractor(ctx, u.ID)
}

// ComplianceReport evaluates every subcontractor of the user against the current time.
func (s *Service) ComplianceReport(ctx context.Context, userID string) ([]models.SubcontractorCompliance, error) {
	subs, err := s.store.ListSubcontractors(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	now := s.now()
	report := make([]models.SubcontractorCompliance, 0, len(subs))
	for _, sub := range subs {
		report = append(report, models.SubcontractorCompliance{
			SubcontractorID:  sub.ID,
			CompanyName:      sub.CompanyName,
			ComplianceReport: compliance.Evaluate(sub.Credentials, now),
		})
	}
	return report, nil
}

func (s *Service) CreateRFI(ctx context.Context, bidPackageID string, req models.CreateRFIRequest) (*models.RFI, error) {
	if _, err := s.GetBidPackage(ctx, bidPackageID); err != nil {
		return nil, err
	}
	rfi := &models.RFI{
		ID:              s.newID(),
		BidPackageID:    bidPackageID,
		SubcontractorID: req.SubcontractorID,
		Question:        req.Question,
		Status:          "open",
		CreatedAt:       s.timestamp(),
	}
	if err := s.store.CreateRFI(ctx, rfi); err != nil {
		return nil, fmt.Errorf("create rfi: %w", err)
	}
	return rfi, nil
}

func (s *Service) ListRFIs(ctx context.Context, bidPackageID string) ([]models.RFI, error) {
	return s.store.ListRFIs(ctx, bidPackageID)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
