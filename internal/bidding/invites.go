package bidding

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sitesense/db"
	"sitesense/models"
)

const defaultInviteChannel = "email"

// InviteSubcontractors invites each listed subcontractor that is not already invited and
// returns how many invites were created. A draft package opens once any invite is created.
func (s *Service) InviteSubcontractors(ctx context.Context, bidPackageID string, req models.InviteRequest) (int, error) {
	via := req.InvitedVia
	if via == "" {
		via = defaultInviteChannel
	}

	created := 0
	err := s.store.InTx(ctx, func(tx *db.Tx) error {
		pkg, err := tx.GetBidPackage(ctx, bidPackageID)
		if err != nil {
			return notFound(err, "bid package")
		}

		invited, err := tx.InvitedSubcontractors(ctx, bidPackageID, req.SubcontractorIDs)
		if err != nil {
			return fmt.Errorf("load invites: %w", err)
		}

		now := s.timestamp()
		for _, subID := range req.SubcontractorIDs {
			if invited[subID] {
				continue
			}
			if _, err := tx.GetSubcontractor(ctx, subID); err != nil {
				return notFound(err, "subcontractor "+subID)
			}
			err := tx.CreateInvite(ctx, &models.Invite{
				ID:              s.newID(),
				BidPackageID:    bidPackageID,
				SubcontractorID: subID,
				Status:          models.InvitePending,
				InvitedVia:      via,
				InvitedAt:       now,
			})
			if err != nil {
				return fmt.Errorf("create invite: %w", err)
			}
			invited[subID] = true
			created++
		}

		if created == 0 {
			return nil
		}
		return s.transition(ctx, tx, pkg, EventInvitesCreated)
	})
	if err != nil {
		return 0, err
	}

	s.metrics.InvitesCreated.Add(float64(created))
	s.log.Info("subcontractors invited",
		zap.String("bid_package_id", bidPackageID),
		zap.Int("requested", len(req.SubcontractorIDs)),
		zap.Int("created", created))
	return created, nil
}

func (s *Service) ListInvites(ctx context.Context, bidPackageID string) ([]models.InviteDetail, error) {
	return s.store.ListInviteDetails(ctx, bidPackageID)
}

// DeleteInvite removes one invite. Bids already submitted under it are left alone.
func (s *Service) DeleteInvite(ctx context.Context, bidPackageID, inviteID string) error {
	if _, err := s.store.DeleteInvite(ctx, bidPackageID, inviteID); err != nil {
		return fmt.Errorf("delete invite: %w", err)
	}
	return nil
}
