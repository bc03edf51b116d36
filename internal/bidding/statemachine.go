package bidding

import "sitesense/models"

// Event is something that happened to a bid package's children.
type Event string

const (
	EventInvitesCreated Event = "invites_created"
	EventBidSubmitted   Event = "bid_submitted"
	EventBidSelected    Event = "bid_selected"
)

// Next returns the status a package moves to when ev happens while it is in current.
// The second result is false when ev has no effect on the package status.
//
//	draft     --invites_created--> open
//	open      --bid_submitted-->   reviewing
//	any       --bid_selected-->    awarded
//
// Nothing leaves awarded.
func Next(current models.PackageStatus, ev Event) (models.PackageStatus, bool) {
	switch ev {
	case EventInvitesCreated:
		if current == models.PackageDraft {
			return models.PackageOpen, true
		}
	case EventBidSubmitted:
		if current == models.PackageOpen {
			return models.PackageReviewing, true
		}
	case EventBidSelected:
		return models.PackageAwarded, true
	}
	return current, false
}

// ManualStatusChange reports whether a package update may set status directly.
// Awarded is only entered through bid selection and is never left.
func ManualStatusChange(current, target models.PackageStatus) bool {
	if current == target {
		return true
	}
	return current != models.PackageAwarded && target != models.PackageAwarded
}
