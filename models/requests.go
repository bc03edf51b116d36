package models

import "time"

type CreateJobRequest struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	ClientName string `json:"client_name"`
	Address    string `json:"address"`
	Status     string `json:"status"`
}

// CreateBidPackageRequest creates a package in draft.
// PackageNumber is generated per job when empty.
type CreateBidPackageRequest struct {
	UserID         string   `json:"user_id"`
	JobID          string   `json:"job_id"`
	Name           string   `json:"name"`
	PackageNumber  string   `json:"package_number"`
	Description    string   `json:"description"`
	ScopeOfWork    string   `json:"scope_of_work"`
	Inclusions     string   `json:"inclusions"`
	Exclusions     string   `json:"exclusions"`
	DueDate        *string  `json:"due_date"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	BudgetEstimate *float64 `json:"budget_estimate"`
}

// BidPackageUpdate lists every field a package update may touch. Nil means untouched.
type BidPackageUpdate struct {
	ID             string         `json:"id"`
	Name           *string        `json:"name"`
	PackageNumber  *string        `json:"package_number"`
	Description    *string        `json:"description"`
	ScopeOfWork    *string        `json:"scope_of_work"`
	Inclusions     *string        `json:"inclusions"`
	Exclusions     *string        `json:"exclusions"`
	DueDate        *string        `json:"due_date"`
	StartDate      *string        `json:"start_date"`
	EndDate        *string        `json:"end_date"`
	BudgetEstimate *float64       `json:"budget_estimate"`
	Status         *PackageStatus `json:"status"`
}

type BidPackageFilter struct {
	UserID string
	JobID  string
	Status PackageStatus
}

type InviteRequest struct {
	SubcontractorIDs []string `json:"subcontractor_ids"`
	InvitedVia       string   `json:"invited_via"`
}

type SubmitBidRequest struct {
	SubcontractorID      string     `json:"subcontractor_id"`
	BaseBid              *float64   `json:"base_bid"`
	LaborCost            *float64   `json:"labor_cost"`
	MaterialCost         *float64   `json:"material_cost"`
	EquipmentCost        *float64   `json:"equipment_cost"`
	OverheadCost         *float64   `json:"overhead_cost"`
	Alternates           Alternates `json:"alternates"`
	Assumptions          string     `json:"assumptions"`
	Clarifications       string     `json:"clarifications"`
	Exclusions           string     `json:"exclusions"`
	ProposedStartDate    *string    `json:"proposed_start_date"`
	ProposedDurationDays *int       `json:"proposed_duration_days"`
	Attachments          StringList `json:"attachments"`
}

// BidUpdate changes evaluation fields. Status "selected" awards the package.
type BidUpdate struct {
	BidID          string     `json:"bid_id"`
	Status         *BidStatus `json:"status"`
	Score          *int       `json:"score"`
	EvaluatorNotes *string    `json:"evaluator_notes"`
}

type CreateSubcontractorRequest struct {
	UserID            string     `json:"user_id"`
	CompanyName       string     `json:"company_name"`
	ContactName       string     `json:"contact_name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Trade             string     `json:"trade"`
	LicenseVerified   bool       `json:"license_verified"`
	COIOnFile         bool       `json:"coi_on_file"`
	W9OnFile          bool       `json:"w9_on_file"`
	InsuranceExpiry   *time.Time `json:"insurance_expiry"`
	LicenseExpiry     *time.Time `json:"license_expiry"`
	WorkersCompExpiry *time.Time `json:"workers_comp_expiry"`
	Rating            *float64   `json:"rating"`
	ProjectsCompleted int        `json:"projects_completed"`
}

type SubcontractorUpdate struct {
	ID                string     `json:"id"`
	CompanyName       *string    `json:"company_name"`
	ContactName       *string    `json:"contact_name"`
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	Trade             *string    `json:"trade"`
	LicenseVerified   *bool      `json:"license_verified"`
	COIOnFile         *bool      `json:"coi_on_file"`
	W9OnFile          *bool      `json:"w9_on_file"`
	InsuranceExpiry   *time.Time `json:"insurance_expiry"`
	LicenseExpiry     *time.Time `json:"license_expiry"`
	WorkersCompExpiry *time.Time `json:"workers_comp_expiry"`
	Rating            *float64   `json:"rating"`
	ProjectsCompleted *int       `json:"projects_completed"`
}

type CreateRFIRequest struct {
	SubcontractorID *string `json:"subcontractor_id"`
	Question        string  `json:"question"`
}
