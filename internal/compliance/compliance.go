// Package compliance scores a subcontractor's insurance, license and paperwork.
//
// Evaluate is the live, expiry-aware report. SnapshotVerified is the coarse flag frozen onto
// a bid at submission. They disagree for a subcontractor whose paperwork is on file but
// expired.
package compliance

import (
	"math"
	"time"

	"sitesense/models"
)

// ExpiringWindow is how far ahead of expiry a document counts as expiring.
const ExpiringWindow = 30 * 24 * time.Hour

const (
	documentFull     = 25.0
	documentExpiring = 15.0
	paperworkPoints  = 12.5
	nominalTotal     = 100.0
)

// DocumentStatus classifies one expiry date against now.
// A document expiring exactly at now is already expired.
func DocumentStatus(expiry *time.Time, now time.Time) models.DocumentStatus {
	switch {
	case expiry == nil:
		return models.DocumentMissing
	case !expiry.After(now):
		return models.DocumentExpired
	case expiry.Before(now.Add(ExpiringWindow)):
		return models.DocumentExpiring
	default:
		return models.DocumentValid
	}
}

func documentPoints(s models.DocumentStatus) float64 {
	switch s {
	case models.DocumentValid:
		return documentFull
	case models.DocumentExpiring:
		return documentExpiring
	default:
		return 0
	}
}

// Evaluate builds the live compliance report for c.
func Evaluate(c models.Credentials, now time.Time) models.ComplianceReport {
	r := models.ComplianceReport{
		Insurance:   DocumentStatus(c.InsuranceExpiry, now),
		License:     DocumentStatus(c.LicenseExpiry, now),
		WorkersComp: DocumentStatus(c.WorkersCompExpiry, now),
		COIOnFile:   c.COIOnFile,
		W9OnFile:    c.W9OnFile,
	}
	r.Score = Score(r)
	return r
}

// Score weights the report out of 100 and rounds to the nearest integer.
func Score(r models.ComplianceReport) int {
	earned := documentPoints(r.Insurance) + documentPoints(r.License) + documentPoints(r.WorkersComp)
	if r.COIOnFile {
		earned += paperworkPoints
	}
	if r.W9OnFile {
		earned += paperworkPoints
	}
	return int(math.Round(earned / nominalTotal * 100))
}

// SnapshotVerified is the flag stamped on a bid at submission. Expiry dates are ignored.
func SnapshotVerified(c models.Credentials) bool {
	return c.LicenseVerified && c.COIOnFile && c.W9OnFile
}
