package models

import "time"

type (
	PackageStatus  string // Bid package lifecycle state
	InviteStatus   string // Invite lifecycle state
	BidStatus      string // Bid evaluation state
	DocumentStatus string // Compliance document state
)

const (
	PackageDraft     PackageStatus = "draft"
	PackageOpen      PackageStatus = "open"
	PackageReviewing PackageStatus = "reviewing"
	PackageAwarded   PackageStatus = "awarded"

	InvitePending   InviteStatus = "pending"
	InviteSubmitted InviteStatus = "submitted"

	BidSubmitted BidStatus = "submitted"
	BidSelected  BidStatus = "selected"
	BidRejected  BidStatus = "rejected"

	DocumentMissing  DocumentStatus = "missing"
	DocumentExpired  DocumentStatus = "expired"
	DocumentExpiring DocumentStatus = "expiring"
	DocumentValid    DocumentStatus = "valid"
)

func ValidPackageStatus(s PackageStatus) bool {
	switch s {
	case PackageDraft, PackageOpen, PackageReviewing, PackageAwarded:
		return true
	default:
		return false
	}
}

func ValidBidStatus(s BidStatus) bool {
	switch s {
	case BidSubmitted, BidSelected, BidRejected:
		return true
	default:
		return false
	}
}

// Job is the parent of bid packages.
type Job struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Name       string    `db:"name" json:"name"`
	ClientName string    `db:"client_name" json:"client_name"`
	Address    string    `db:"address" json:"address"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// BidPackage is a scope of work put out for pricing.
// AwardedTo, AwardedAmount and AwardedAt are set together by the award cascade.
type BidPackage struct {
	ID             string        `db:"id" json:"id"`
	UserID         string        `db:"user_id" json:"user_id"`
	JobID          string        `db:"job_id" json:"job_id"`
	PackageNumber  string        `db:"package_number" json:"package_number"`
	Name           string        `db:"name" json:"name"`
	Description    string        `db:"description" json:"description"`
	ScopeOfWork    string        `db:"scope_of_work" json:"scope_of_work"`
	Inclusions     string        `db:"inclusions" json:"inclusions"`
	Exclusions     string        `db:"exclusions" json:"exclusions"`
	DueDate        *string       `db:"due_date" json:"due_date"`
	StartDate      *string       `db:"start_date" json:"start_date"`
	EndDate        *string       `db:"end_date" json:"end_date"`
	BudgetEstimate *float64      `db:"budget_estimate" json:"budget_estimate"`
	Status         PackageStatus `db:"status" json:"status"`
	AwardedTo      *string       `db:"awarded_to" json:"awarded_to"`
	AwardedAmount  *float64      `db:"awarded_amount" json:"awarded_amount"`
	AwardedAt      *time.Time    `db:"awarded_at" json:"awarded_at"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

// BidPackageSummary is the list row with denormalized job, vendor and counts.
type BidPackageSummary struct {
	BidPackage
	JobName       *string `db:"job_name" json:"job_name"`
	AwardedToName *string `db:"awarded_to_name" json:"awarded_to_name"`
	InviteCount   int     `db:"invite_count" json:"invite_count"`
	BidCount      int     `db:"bid_count" json:"bid_count"`
}

type Invite struct {
	ID              string       `db:"id" json:"id"`
	BidPackageID    string       `db:"bid_package_id" json:"bid_package_id"`
	SubcontractorID string       `db:"subcontractor_id" json:"subcontractor_id"`
	Status          InviteStatus `db:"status" json:"status"`
	InvitedVia      string       `db:"invited_via" json:"invited_via"`
	InvitedAt       time.Time    `db:"invited_at" json:"invited_at"`
}

// InviteDetail joins the invite with the invited subcontractor's profile.
type InviteDetail struct {
	Invite
	CompanyName *string `db:"company_name" json:"company_name"`
	ContactName *string `db:"contact_name" json:"contact_name"`
	Email       *string `db:"email" json:"email"`
	Phone       *string `db:"phone" json:"phone"`
	Trade       *string `db:"trade" json:"trade"`
}

// Credentials are the live compliance fields of a subcontractor.
type Credentials struct {
	LicenseVerified   bool       `db:"license_verified" json:"license_verified"`
	COIOnFile         bool       `db:"coi_on_file" json:"coi_on_file"`
	W9OnFile          bool       `db:"w9_on_file" json:"w9_on_file"`
	InsuranceExpiry   *time.Time `db:"insurance_expiry" json:"insurance_expiry"`
	LicenseExpiry     *time.Time `db:"license_expiry" json:"license_expiry"`
	WorkersCompExpiry *time.Time `db:"workers_comp_expiry" json:"workers_comp_expiry"`
}

type Subcontractor struct {
	ID          string `db:"id" json:"id"`
	UserID      string `db:"user_id" json:"user_id"`
	CompanyName string `db:"company_name" json:"company_name"`
	ContactName string `db:"contact_name" json:"contact_name"`
	Email       string `db:"email" json:"email"`
	Phone       string `db:"phone" json:"phone"`
	Trade       string `db:"trade" json:"trade"`
	Credentials
	Rating            *float64  `db:"rating" json:"rating"`
	ProjectsCompleted int       `db:"projects_completed" json:"projects_completed"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Bid is a subcontractor's priced response to a package.
// ComplianceVerified is frozen at submission and never recomputed.
type Bid struct {
	ID                   string     `db:"id" json:"id"`
	BidPackageID         string     `db:"bid_package_id" json:"bid_package_id"`
	SubcontractorID      string     `db:"subcontractor_id" json:"subcontractor_id"`
	BaseBid              float64    `db:"base_bid" json:"base_bid"`
	LaborCost            *float64   `db:"labor_cost" json:"labor_cost"`
	MaterialCost         *float64   `db:"material_cost" json:"material_cost"`
	EquipmentCost        *float64   `db:"equipment_cost" json:"equipment_cost"`
	OverheadCost         *float64   `db:"overhead_cost" json:"overhead_cost"`
	Alternates           Alternates `db:"alternates" json:"alternates"`
	Assumptions          string     `db:"assumptions" json:"assumptions"`
	Clarifications       string     `db:"clarifications" json:"clarifications"`
	Exclusions           string     `db:"exclusions" json:"exclusions"`
	ProposedStartDate    *string    `db:"proposed_start_date" json:"proposed_start_date"`
	ProposedDurationDays *int       `db:"proposed_duration_days" json:"proposed_duration_days"`
	Attachments          StringList `db:"attachments" json:"attachments"`
	Status               BidStatus  `db:"status" json:"status"`
	ComplianceVerified   bool       `db:"compliance_verified" json:"compliance_verified"`
	Score                *int       `db:"score" json:"score"`
	EvaluatorNotes       string     `db:"evaluator_notes" json:"evaluator_notes"`
	SubmittedAt          time.Time  `db:"submitted_at" json:"submitted_at"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updated_at"`
}

// BidDetail joins the bid with the bidder's current compliance fields.
type BidDetail struct {
	Bid
	CompanyName *string  `db:"company_name" json:"company_name"`
	Rating      *float64 `db:"rating" json:"rating"`
	Credentials
	Compliance *ComplianceReport `db:"-" json:"compliance,omitempty"`
}

type RFI struct {
	ID              string    `db:"id" json:"id"`
	BidPackageID    string    `db:"bid_package_id" json:"bid_package_id"`
	SubcontractorID *string   `db:"subcontractor_id" json:"subcontractor_id"`
	Question        string    `db:"question" json:"question"`
	Answer          string    `db:"answer" json:"answer"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ComplianceReport is evaluated live and never stored.
type ComplianceReport struct {
	Insurance   DocumentStatus `json:"insurance"`
	License     DocumentStatus `json:"license"`
	WorkersComp DocumentStatus `json:"workers_comp"`
	COIOnFile   bool           `json:"coi_on_file"`
	W9OnFile    bool           `json:"w9_on_file"`
	Score       int            `json:"score"`
}

type SubcontractorCompliance struct {
	SubcontractorID string `json:"subcontractor_id"`
	CompanyName     string `json:"company_name"`
	ComplianceReport
}
