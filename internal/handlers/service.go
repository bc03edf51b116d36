package handlers

import (
	"context"

	"sitesense/models"
)

// Service is the bidding workflow the handlers drive.
type Service interface {
	CreateJob(ctx context.Context, req models.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, userID string) ([]models.Job, error)

	CreateSubcontractor(ctx context.Context, req models.CreateSubcontractorRequest) (*models.Subcontractor, error)
	GetSubcontractor(ctx context.Context, id string) (*models.Subcontractor, error)
	ListSubcontractors(ctx context.Context, userID, trade string) ([]models.Subcontractor, error)
	UpdateSubcontractor(ctx context.Context, u models.SubcontractorUpdate) (*models.Subcontractor, error)
	ComplianceReport(ctx context.Context, userID string) ([]models.SubcontractorCompliance, error)

	CreateBidPackage(ctx context.Context, req models.CreateBidPackageRequest) (*models.BidPackage, error)
	GetBidPackage(ctx context.Context, id string) (*models.BidPackage, error)
	ListBidPackages(ctx context.Context, f models.BidPackageFilter) ([]models.BidPackageSummary, error)
	UpdateBidPackage(ctx context.Context, u models.BidPackageUpdate) (*models.BidPackage, error)
	DeleteBidPackage(ctx context.Context, id string) error

	InviteSubcontractors(ctx context.Context, bidPackageID string, req models.InviteRequest) (int, error)
	ListInvites(ctx context.Context, bidPackageID string) ([]models.InviteDetail, error)
	DeleteInvite(ctx context.Context, bidPackageID, inviteID string) error

	SubmitBid(ctx context.Context, bidPackageID string, req models.SubmitBidRequest) (*models.Bid, error)
	UpdateBid(ctx context.Context, bidPackageID string, u models.BidUpdate) (*models.Bid, error)
	ListBids(ctx context.Context, bidPackageID string) ([]models.BidDetail, error)

	CreateRFI(ctx context.Context, bidPackageID string, req models.CreateRFIRequest) (*models.RFI, error)
	ListRFIs(ctx context.Context, bidPackageID string) ([]models.RFI, error)
}
