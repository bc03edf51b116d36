package compliance_test

import (
	"testing"
	"time"

	"sitesense/internal/compliance"
	"sitesense/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestDocumentStatus(t *testing.T) {
	tests := []struct {
		name   string
		expiry *time.Time
		want   models.DocumentStatus
	}{
		{"missing", nil, models.DocumentMissing},
		{"long expired", at(-365 * 24 * time.Hour), models.DocumentExpired},
		{"just expired", at(-time.Nanosecond), models.DocumentExpired},
		{"exactly now", at(0), models.DocumentExpired},
		{"just after now", at(time.Nanosecond), models.DocumentExpiring},
		{"inside window", at(10 * 24 * time.Hour), models.DocumentExpiring},
		{"just inside window", at(compliance.ExpiringWindow - time.Nanosecond), models.DocumentExpiring},
		{"exactly window end", at(compliance.ExpiringWindow), models.DocumentValid},
		{"far future", at(400 * 24 * time.Hour), models.DocumentValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compliance.DocumentStatus(tt.expiry, now))
		})
	}
}

func TestEvaluateFullyCompliant(t *testing.T) {
	c := models.Credentials{
		LicenseVerified:   true,
		COIOnFile:         true,
		W9OnFile:          true,
		InsuranceExpiry:   at(90 * 24 * time.Hour),
		LicenseExpiry:     at(90 * 24 * time.Hour),
		WorkersCompExpiry: at(90 * 24 * time.Hour),
	}

	r := compliance.Evaluate(c, now)
	require.Equal(t, 100, r.Score)
	assert.Equal(t, models.DocumentValid, r.Insurance)
	assert.Equal(t, models.DocumentValid, r.License)
	assert.Equal(t, models.DocumentValid, r.WorkersComp)
}

func TestEvaluateWeights(t *testing.T) {
	valid := at(60 * 24 * time.Hour)
	soon := at(5 * 24 * time.Hour)
	past := at(-24 * time.Hour)

	tests := []struct {
		name string
		c    models.Credentials
		want int
	}{
		{"nothing", models.Credentials{}, 0},
		{"paperwork only", models.Credentials{COIOnFile: true, W9OnFile: true}, 25},
		{"one flag", models.Credentials{COIOnFile: true}, 13},
		{"documents only", models.Credentials{InsuranceExpiry: valid, LicenseExpiry: valid, WorkersCompExpiry: valid}, 75},
		{"all expiring", models.Credentials{COIOnFile: true, W9OnFile: true, InsuranceExpiry: soon, LicenseExpiry: soon, WorkersCompExpiry: soon}, 70},
		{"one expired", models.Credentials{COIOnFile: true, W9OnFile: true, InsuranceExpiry: past, LicenseExpiry: valid, WorkersCompExpiry: valid}, 75},
		{"one expiring", models.Credentials{COIOnFile: true, W9OnFile: true, InsuranceExpiry: soon, LicenseExpiry: valid, WorkersCompExpiry: valid}, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compliance.Evaluate(tt.c, now).Score)
		})
	}
}

// Every combination of document states and flags stays in range, and only the
// all-valid, all-flags combination reaches 100.
func TestScoreRangeAndMaximum(t *testing.T) {
	states := []models.DocumentStatus{
		models.DocumentMissing, models.DocumentExpired, models.DocumentExpiring, models.DocumentValid,
	}
	for _, ins := range states {
		for _, lic := range states {
			for _, wc := range states {
				for _, coi := range []bool{false, true} {
					for _, w9 := range []bool{false, true} {
						r := models.ComplianceReport{Insurance: ins, License: lic, WorkersComp: wc, COIOnFile: coi, W9OnFile: w9}
						score := compliance.Score(r)
						require.GreaterOrEqual(t, score, 0)
						require.LessOrEqual(t, score, 100)

						perfect := ins == models.DocumentValid && lic == models.DocumentValid &&
							wc == models.DocumentValid && coi && w9
						require.Equal(t, perfect, score == 100, "%+v", r)
					}
				}
			}
		}
	}
}

func TestSnapshotVerifiedIgnoresExpiry(t *testing.T) {
	expired := at(-48 * time.Hour)
	c := models.Credentials{
		LicenseVerified:   true,
		COIOnFile:         true,
		W9OnFile:          true,
		InsuranceExpiry:   expired,
		LicenseExpiry:     expired,
		WorkersCompExpiry: expired,
	}

	assert.True(t, compliance.SnapshotVerified(c))
	assert.Equal(t, 25, compliance.Evaluate(c, now).Score)

	c.W9OnFile = false
	assert.False(t, compliance.SnapshotVerified(c))
	c.W9OnFile = true
	c.LicenseVerified = false
	assert.False(t, compliance.SnapshotVerified(c))
}
