package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesense/db"
	"sitesense/db/dbtest"
	"sitesense/models"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func seed(t *testing.T, s *db.Storage) (job *models.Job, subs []*models.Subcontractor, pkg *models.BidPackage) {
	t.Helper()
	ctx := context.Background()

	job = &models.Job{ID: "job-1", UserID: "u1", Name: "Harbor Lofts", Status: "active", CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, s.CreateJob(ctx, job))

	for _, id := range []string{"sub-a", "sub-b", "sub-c"} {
		sub := &models.Subcontractor{ID: id, UserID: "u1", CompanyName: "Co " + id, Trade: "electrical",
			CreatedAt: t0, UpdatedAt: t0}
		require.NoError(t, s.CreateSubcontractor(ctx, sub))
		subs = append(subs, sub)
	}

	pkg = &models.BidPackage{ID: "bp-1", UserID: "u1", JobID: job.ID, PackageNumber: "BP-001", Name: "Electrical",
		Status: models.PackageDraft, CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, s.CreateBidPackage(ctx, pkg))
	return job, subs, pkg
}

func TestGetMissingRowsReturnErrNotFound(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()

	_, err := s.GetBidPackage(ctx, "nope")
	assert.True(t, errors.Is(err, db.ErrNotFound))
	_, err = s.GetBid(ctx, "nope")
	assert.True(t, errors.Is(err, db.ErrNotFound))
	_, err = s.GetSubcontractor(ctx, "nope")
	assert.True(t, errors.Is(err, db.ErrNotFound))
	_, err = s.GetJob(ctx, "nope")
	assert.True(t, errors.Is(err, db.ErrNotFound))
}

func TestListBidPackagesDenormalizesAndFilters(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	job, subs, pkg := seed(t, s)

	later := &models.BidPackage{ID: "bp-2", UserID: "u1", JobID: job.ID, PackageNumber: "BP-002", Name: "Plumbing",
		Status: models.PackageOpen, CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(time.Hour)}
	require.NoError(t, s.CreateBidPackage(ctx, later))

	require.NoError(t, s.CreateInvite(ctx, &models.Invite{ID: "inv-1", BidPackageID: pkg.ID, SubcontractorID: subs[0].ID,
		Status: models.InvitePending, InvitedVia: "email", InvitedAt: t0}))
	require.NoError(t, s.AwardBidPackage(ctx, pkg.ID, subs[0].ID, 1200, t0))

	list, err := s.ListBidPackages(ctx, models.BidPackageFilter{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bp-2", list[0].ID, "newest first")
	assert.Equal(t, "bp-1", list[1].ID)
	require.NotNil(t, list[1].JobName)
	assert.Equal(t, "Harbor Lofts", *list[1].JobName)
	require.NotNil(t, list[1].AwardedToName)
	assert.Equal(t, "Co sub-a", *list[1].AwardedToName)
	assert.Equal(t, 1, list[1].InviteCount)
	assert.Equal(t, 0, list[1].BidCount)
	assert.Nil(t, list[0].AwardedToName)

	list, err = s.ListBidPackages(ctx, models.BidPackageFilter{UserID: "u1", Status: models.PackageOpen})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bp-2", list[0].ID)

	list, err = s.ListBidPackages(ctx, models.BidPackageFilter{UserID: "someone-else"})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateBidPackageTouchesOnlySetFields(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	_, _, pkg := seed(t, s)

	name := "Electrical rough-in"
	budget := 52000.0
	n, err := s.UpdateBidPackage(ctx, models.BidPackageUpdate{ID: pkg.ID, Name: &name, BudgetEstimate: &budget}, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := s.GetBidPackage(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	require.NotNil(t, got.BudgetEstimate)
	assert.Equal(t, budget, *got.BudgetEstimate)
	assert.Equal(t, "BP-001", got.PackageNumber)
	assert.Equal(t, models.PackageDraft, got.Status)
	assert.True(t, got.UpdatedAt.Equal(t0.Add(time.Minute)))

	n, err = s.UpdateBidPackage(ctx, models.BidPackageUpdate{ID: "missing"}, t0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInvitedSubcontractorsAndMarkSubmitted(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	_, subs, pkg := seed(t, s)

	require.NoError(t, s.CreateInvite(ctx, &models.Invite{ID: "inv-1", BidPackageID: pkg.ID, SubcontractorID: subs[1].ID,
		Status: models.InvitePending, InvitedVia: "email", InvitedAt: t0}))

	invited, err := s.InvitedSubcontractors(ctx, pkg.ID, []string{subs[0].ID, subs[1].ID})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{subs[1].ID: true}, invited)

	invited, err = s.InvitedSubcontractors(ctx, pkg.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, invited)

	n, err := s.MarkInviteSubmitted(ctx, pkg.ID, subs[0].ID)
	require.NoError(t, err)
	assert.Zero(t, n, "uninvited subcontractor is a no-op")

	n, err = s.MarkInviteSubmitted(ctx, pkg.ID, subs[1].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	details, err := s.ListInviteDetails(ctx, pkg.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, models.InviteSubmitted, details[0].Status)
	require.NotNil(t, details[0].CompanyName)
	assert.Equal(t, "Co sub-b", *details[0].CompanyName)
}

func TestDuplicateInvitePairIsRejectedByIndex(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	_, subs, pkg := seed(t, s)

	inv := &models.Invite{ID: "inv-1", BidPackageID: pkg.ID, SubcontractorID: subs[0].ID,
		Status: models.InvitePending, InvitedVia: "email", InvitedAt: t0}
	require.NoError(t, s.CreateInvite(ctx, inv))
	inv.ID = "inv-2"
	assert.Error(t, s.CreateInvite(ctx, inv))
}

func TestBidsRoundTripJSONColumnsAndOrderByBaseBid(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	_, subs, pkg := seed(t, s)

	expiry := t0.AddDate(1, 0, 0)
	_, err := s.UpdateSubcontractor(ctx, models.SubcontractorUpdate{ID: subs[0].ID, InsuranceExpiry: &expiry}, t0)
	require.NoError(t, err)

	labor := 4000.0
	days := 12
	bids := []*models.Bid{
		{
			ID:                   "bid-1",
			SubcontractorID:      subs[0].ID,
			BaseBid:              9000,
			LaborCost:            &labor,
			ProposedDurationDays: &days,
			Alternates:           models.Alternates{{Description: "LED upgrade", Type: "add", Amount: 650}},
			Attachments:          models.StringList{"quote.pdf"},
		},
		{ID: "bid-2", SubcontractorID: subs[1].ID, BaseBid: 7500},
	}
	for _, b := range bids {
		b.BidPackageID = pkg.ID
		b.Status = models.BidSubmitted
		b.SubmittedAt, b.UpdatedAt = t0, t0
		require.NoError(t, s.CreateBid(ctx, b))
	}

	got, err := s.GetBid(ctx, "bid-1")
	require.NoError(t, err)
	assert.Equal(t, bids[0].Alternates, got.Alternates)
	assert.Equal(t, models.StringList{"quote.pdf"}, got.Attachments)
	require.NotNil(t, got.LaborCost)
	assert.Equal(t, labor, *got.LaborCost)
	assert.Nil(t, got.MaterialCost)

	details, err := s.ListBidDetails(ctx, pkg.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "bid-2", details[0].ID)
	assert.Equal(t, "bid-1", details[1].ID)
	require.NotNil(t, details[1].InsuranceExpiry)
	assert.True(t, details[1].InsuranceExpiry.Equal(expiry))
	assert.Nil(t, details[0].InsuranceExpiry)
	assert.Empty(t, details[0].Alternates)
}

func TestRejectOtherBidsKeepsTheWinner(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	_, subs, pkg := seed(t, s)

	for i, sub := range subs {
		require.NoError(t, s.CreateBid(ctx, &models.Bid{ID: sub.ID + "-bid", BidPackageID: pkg.ID, SubcontractorID: sub.ID,
			BaseBid: float64(1000 * (i + 1)), Status: models.BidSubmitted, SubmittedAt: t0, UpdatedAt: t0}))
	}

	n, err := s.RejectOtherBids(ctx, pkg.ID, "sub-b-bid", t0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	for id, want := range map[string]models.BidStatus{
		"sub-a-bid": models.BidRejected,
		"sub-b-bid": models.BidSubmitted,
		"sub-c-bid": models.BidRejected,
	} {
		b, err := s.GetBid(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, b.Status, id)
	}
}

func TestInTxRollsBackOnError(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	_, _, pkg := seed(t, s)

	boom := errors.New("boom")
	err := s.InTx(ctx, func(tx *db.Tx) error {
		if err := tx.SetBidPackageStatus(ctx, pkg.ID, models.PackageOpen, t0); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.GetBidPackage(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PackageDraft, got.Status)
}

func TestSubcontractorsListByTrade(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	seed(t, s)

	require.NoError(t, s.CreateSubcontractor(ctx, &models.Subcontractor{ID: "sub-p", UserID: "u1", CompanyName: "Aqua",
		Trade: "plumbing", CreatedAt: t0, UpdatedAt: t0}))

	all, err := s.ListSubcontractors(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "Aqua", all[0].CompanyName)

	plumbing, err := s.ListSubcontractors(ctx, "u1", "plumbing")
	require.NoError(t, err)
	require.Len(t, plumbing, 1)
	assert.Equal(t, "sub-p", plumbing[0].ID)
}

func TestListPackageNumbersForJobSkipsCustomNumbers(t *testing.T) {
	s := dbtest.Open(t)
	ctx := context.Background()
	job, _, _ := seed(t, s)

	for id, num := range map[string]string{"bp-7": "BP-007", "bp-hv": "HV-9"} {
		require.NoError(t, s.CreateBidPackage(ctx, &models.BidPackage{ID: id, UserID: "u1", JobID: job.ID,
			PackageNumber: num, Name: "x", Status: models.PackageDraft, CreatedAt: t0, UpdatedAt: t0}))
	}

	numbers, err := s.ListPackageNumbersForJob(ctx, job.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"BP-001", "BP-007"}, numbers)

	numbers, err = s.ListPackageNumbersForJob(ctx, "other-job")
	require.NoError(t, err)
	assert.Empty(t, numbers)
}
