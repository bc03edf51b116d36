package bidding

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sitesense/db"
	"sitesense/internal/compliance"
	"sitesense/models"
)

// SubmitBid records a bid with the bidder's compliance snapshot, marks the matching invite
// submitted and moves an open package to reviewing.
func (s *Service) SubmitBid(ctx context.Context, bidPackageID string, req models.SubmitBidRequest) (*models.Bid, error) {
	if req.SubcontractorID == "" || req.BaseBid == nil {
		return nil, models.BadRequest("subcontractor_id and base_bid are required")
	}

	now := s.timestamp()
	bid := &models.Bid{
		ID:                   s.newID(),
		BidPackageID:         bidPackageID,
		SubcontractorID:      req.SubcontractorID,
		BaseBid:              *req.BaseBid,
		LaborCost:            req.LaborCost,
		MaterialCost:         req.MaterialCost,
		EquipmentCost:        req.EquipmentCost,
		OverheadCost:         req.OverheadCost,
		Alternates:           req.Alternates,
		Assumptions:          req.Assumptions,
		Clarifications:       req.Clarifications,
		Exclusions:           req.Exclusions,
		ProposedStartDate:    req.ProposedStartDate,
		ProposedDurationDays: req.ProposedDurationDays,
		Attachments:          req.Attachments,
		Status:               models.BidSubmitted,
		SubmittedAt:          now,
		UpdatedAt:            now,
	}
	if bid.Alternates == nil {
		bid.Alternates = models.Alternates{}
	}
	if bid.Attachments == nil {
		bid.Attachments = models.StringList{}
	}

	err := s.store.InTx(ctx, func(tx *db.Tx) error {
		pkg, err := tx.GetBidPackage(ctx, bidPackageID)
		if err != nil {
			return notFound(err, "bid package")
		}
		sub, err := tx.GetSubcontractor(ctx, req.SubcontractorID)
		if err != nil {
			return notFound(err, "subcontractor")
		}
		bid.ComplianceVerified = compliance.SnapshotVerified(sub.Credentials)

		if err := tx.CreateBid(ctx, bid); err != nil {
			return fmt.Errorf("create bid: %w", err)
		}
		if _, err := tx.MarkInviteSubmitted(ctx, bidPackageID, req.SubcontractorID); err != nil {
			return fmt.Errorf("mark invite submitted: %w", err)
		}
		return s.transition(ctx, tx, pkg, EventBidSubmitted)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.BidsSubmitted.Inc()
	return bid, nil
}

// UpdateBid changes a bid's evaluation. Selecting a bid awards its package to the bidder
// and rejects every other bid on the package. An unknown bid is a no-op and returns nil.
func (s *Service) UpdateBid(ctx context.Context, bidPackageID string, u models.BidUpdate) (*models.Bid, error) {
	if u.BidID == "" {
		return nil, models.BadRequest("bid_id is required")
	}
	if u.Status != nil && !models.ValidBidStatus(*u.Status) {
		return nil, models.BadRequest(fmt.Sprintf("invalid status %q", *u.Status))
	}
	if u.Score != nil && (*u.Score < 0 || *u.Score > 100) {
		return nil, models.BadRequest("score must be between 0 and 100")
	}

	var updated *models.Bid
	awarded := false
	err := s.store.InTx(ctx, func(tx *db.Tx) error {
		bid, err := tx.GetBid(ctx, u.BidID)
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load bid: %w", err)
		}
		if bid.BidPackageID != bidPackageID {
			return nil
		}

		now := s.timestamp()
		if _, err := tx.UpdateBidEvaluation(ctx, u, now); err != nil {
			return fmt.Errorf("update bid: %w", err)
		}

		if u.Status != nil && *u.Status == models.BidSelected {
			if err := s.award(ctx, tx, bid); err != nil {
				return err
			}
			awarded = true
		}

		updated, err = tx.GetBid(ctx, u.BidID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if awarded {
		s.metrics.PackagesAwarded.Inc()
	}
	return updated, nil
}

// award stamps the winner on the package and rejects the sibling bids.
func (s *Service) award(ctx context.Context, tx *db.Tx, bid *models.Bid) error {
	pkg, err := tx.GetBidPackage(ctx, bid.BidPackageID)
	if err != nil {
		return notFound(err, "bid package")
	}
	if _, ok := Next(pkg.Status, EventBidSelected); !ok {
		return nil
	}

	now := s.timestamp()
	if err := tx.AwardBidPackage(ctx, pkg.ID, bid.SubcontractorID, bid.BaseBid, now); err != nil {
		return fmt.Errorf("award bid package: %w", err)
	}
	rejected, err := tx.RejectOtherBids(ctx, pkg.ID, bid.ID, now)
	if err != nil {
		return fmt.Errorf("reject other bids: %w", err)
	}

	s.log.Info("bid package awarded",
		zap.String("bid_package_id", pkg.ID),
		zap.String("from", string(pkg.Status)),
		zap.String("bid_id", bid.ID),
		zap.String("subcontractor_id", bid.SubcontractorID),
		zap.Float64("amount", bid.BaseBid),
		zap.Int64("rejected", rejected))
	return nil
}

// ListBids returns the package's bids cheapest first. Each carries its frozen
// compliance_verified flag and a live compliance report for the bidder.
func (s *Service) ListBids(ctx context.Context, bidPackageID string) ([]models.BidDetail, error) {
	bids, err := s.store.ListBidDetails(ctx, bidPackageID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range bids {
		report := compliance.Evaluate(bids[i].Credentials, now)
		bids[i].Compliance = &report
	}
	return bids, nil
}
