package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"sitesense/models"
)

func (q queries) ListInviteDetails(ctx context.Context, bidPackageID string) ([]models.InviteDetail, error) {
	invites := []models.InviteDetail{}
	err := q.selectAll(ctx, &invites, `
        SELECT i.id, i.bid_package_id, i.subcontractor_id, i.status, i.invited_via, i.invited_at,
            s.company_name, s.contact_name, s.email, s.phone, s.trade
        FROM bid_package_invites i
        LEFT JOIN subcontractors s ON s.id = i.subcontractor_id
        WHERE i.bid_package_id = ?
        ORDER BY i.invited_at DESC`, bidPackageID)
	return invites, err
}

// InvitedSubcontractors reports which of subcontractorIDs already hold an invite on the package.
func (q queries) InvitedSubcontractors(ctx context.Context, bidPackageID string, subcontractorIDs []string) (map[string]bool, error) {
	invited := make(map[string]bool)
	if len(subcontractorIDs) == 0 {
		return invited, nil
	}
	query, args, err := sqlx.In(`
        SELECT subcontractor_id FROM bid_package_invites
        WHERE bid_package_id = ? AND subcontractor_id IN (?)`, bidPackageID, subcontractorIDs)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := q.selectAll(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	for _, id := range ids {
		invited[id] = true
	}
	return invited, nil
}

func (q queries) CreateInvite(ctx context.Context, i *models.Invite) error {
	_, err := q.exec(ctx, `
        INSERT INTO bid_package_invites (id, bid_package_id, subcontractor_id, status, invited_via, invited_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		i.ID, i.BidPackageID, i.SubcontractorID, i.Status, i.InvitedVia, i.InvitedAt)
	return err
}

// MarkInviteSubmitted is a no-op when the subcontractor was never invited.
func (q queries) MarkInviteSubmitted(ctx context.Context, bidPackageID, subcontractorID string) (int64, error) {
	return q.exec(ctx, `
        UPDATE bid_package_invites SET status = ?
        WHERE bid_package_id = ? AND subcontractor_id = ?`,
		models.InviteSubmitted, bidPackageID, subcontractorID)
}

func (q queries) DeleteInvite(ctx context.Context, bidPackageID, inviteID string) (int64, error) {
	return q.exec(ctx, `DELETE FROM bid_package_invites WHERE id = ? AND bid_package_id = ?`, inviteID, bidPackageID)
}

func (q queries) DeleteInvitesForPackage(ctx context.Context, bidPackageID string) (int64, error) {
	return q.exec(ctx, `DELETE FROM bid_package_invites WHERE bid_package_id = ?`, bidPackageID)
}
