package bidding

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"sitesense/db"
	"sitesense/models"
)

const packageNumberPrefix = "BP-"

// CreateBidPackage stores a new draft package, numbering it BP-nnn within its job when
// no package number is given.
func (s *Service) CreateBidPackage(ctx context.Context, req models.CreateBidPackageRequest) (*models.BidPackage, error) {
	now := s.timestamp()
	pkg := &models.BidPackage{
		ID:             s.newID(),
		UserID:         req.UserID,
		JobID:          req.JobID,
		PackageNumber:  req.PackageNumber,
		Name:           req.Name,
		Description:    req.Description,
		ScopeOfWork:    req.ScopeOfWork,
		Inclusions:     req.Inclusions,
		Exclusions:     req.Exclusions,
		DueDate:        req.DueDate,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		BudgetEstimate: req.BudgetEstimate,
		Status:         models.PackageDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.store.InTx(ctx, func(tx *db.Tx) error {
		if _, err := tx.GetJob(ctx, req.JobID); err != nil {
			return notFound(err, "job")
		}
		if pkg.PackageNumber == "" {
			numbers, err := tx.ListPackageNumbersForJob(ctx, req.JobID)
			if err != nil {
				return fmt.Errorf("list package numbers: %w", err)
			}
			pkg.PackageNumber = nextPackageNumber(numbers)
		}
		return tx.CreateBidPackage(ctx, pkg)
	})
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *Service) GetBidPackage(ctx context.Context, id string) (*models.BidPackage, error) {
	pkg, err := s.store.GetBidPackage(ctx, id)
	if err != nil {
		return nil, notFound(err, "bid package")
	}
	return pkg, nil
}

func (s *Service) ListBidPackages(ctx context.Context, f models.BidPackageFilter) ([]models.BidPackageSummary, error) {
	if f.Status != "" && !models.ValidPackageStatus(f.Status) {
		return nil, models.BadRequest(fmt.Sprintf("invalid status %q", f.Status))
	}
	return s.store.ListBidPackages(ctx, f)
}

// UpdateBidPackage applies a partial update. An unknown id is a no-op and returns nil.
// Status edits are limited to what ManualStatusChange allows.
func (s *Service) UpdateBidPackage(ctx context.Context, u models.BidPackageUpdate) (*models.BidPackage, error) {
	if u.Status != nil && !models.ValidPackageStatus(*u.Status) {
		return nil, models.BadRequest(fmt.Sprintf("invalid status %q", *u.Status))
	}

	var n int64
	err := s.store.InTx(ctx, func(tx *db.Tx) error {
		if u.Status != nil {
			current, err := tx.GetBidPackage(ctx, u.ID)
			if errors.Is(err, db.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("load bid package: %w", err)
			}
			if !ManualStatusChange(current.Status, *u.Status) {
				return models.BadRequest(fmt.Sprintf("cannot change status from %s to %s", current.Status, *u.Status))
			}
		}

		var err error
		n, err = tx.UpdateBidPackage(ctx, u, s.timestamp())
		if err != nil {
			return fmt.Errorf("update bid package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return s.GetBidPackage(ctx, u.ID)
}

// nextPackageNumber continues after the highest BP-nnn number in use.
func nextPackageNumber(numbers []string) string {
	highest := 0
	for _, num := range numbers {
		seq, err := strconv.Atoi(strings.TrimPrefix(num, packageNumberPrefix))
		if err != nil {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return fmt.Sprintf("%s%03d", packageNumberPrefix, highest+1)
}

// DeleteBidPackage removes the package with its RFIs, bids and invites.
func (s *Service) DeleteBidPackage(ctx context.Context, id string) error {
	return s.store.InTx(ctx, func(tx *db.Tx) error {
		if _, err := tx.DeleteRFIsForPackage(ctx, id); err != nil {
			return fmt.Errorf("delete rfis: %w", err)
		}
		if _, err := tx.DeleteBidsForPackage(ctx, id); err != nil {
			return fmt.Errorf("delete bids: %w", err)
		}
		if _, err := tx.DeleteInvitesForPackage(ctx, id); err != nil {
			return fmt.Errorf("delete invites: %w", err)
		}
		n, err := tx.DeleteBidPackage(ctx, id)
		if err != nil {
			return fmt.Errorf("delete bid package: %w", err)
		}
		if n > 0 {
			s.log.Info("bid package deleted", zap.String("bid_package_id", id))
		}
		return nil
	})
}

// transition applies ev to pkg and persists the new status when it changes.
func (s *Service) transition(ctx context.Context, tx *db.Tx, pkg *models.BidPackage, ev Event) error {
	next, ok := Next(pkg.Status, ev)
	if !ok || next == pkg.Status {
		return nil
	}
	if err := tx.SetBidPackageStatus(ctx, pkg.ID, next, s.timestamp()); err != nil {
		return fmt.Errorf("set bid package status: %w", err)
	}
	s.log.Info("bid package status changed",
		zap.String("bid_package_id", pkg.ID),
		zap.String("from", string(pkg.Status)),
		zap.String("to", string(next)),
		zap.String("event", string(ev)))
	pkg.Status = next
	return nil
}
