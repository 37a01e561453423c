package wizard

import "lateral-intake/internal/application"

// Typed section patches. Each patch is a shallow merge: nil pointer fields
// are left alone, set fields overwrite. This preserves the partial-update
// semantics of the wizard forms while keeping every section strongly typed.

// ContactPatch updates the contact section.
type ContactPatch struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	CurrentFirm  *string `json:"current_firm,omitempty"`
	CurrentTitle *string `json:"current_title,omitempty"`
	PracticeArea *string `json:"practice_area,omitempty"`
	LinkedInURL  *string `json:"linkedin_url,omitempty"`
}

func (p ContactPatch) apply(c *application.ContactInfo) {
	setString(&c.FirstName, p.FirstName)
	setString(&c.LastName, p.LastName)
	setString(&c.Email, p.Email)
	setString(&c.Phone, p.Phone)
	setString(&c.AddressLine1, p.AddressLine1)
	setString(&c.AddressLine2, p.AddressLine2)
	setString(&c.City, p.City)
	setString(&c.State, p.State)
	setString(&c.PostalCode, p.PostalCode)
	setString(&c.CurrentFirm, p.CurrentFirm)
	setString(&c.CurrentTitle, p.CurrentTitle)
	setString(&c.PracticeArea, p.PracticeArea)
	setString(&c.LinkedInURL, p.LinkedInURL)
}

// WorkHistoryPatch updates the narrative portion of the work-history
// section. Positions are managed through the sub-entity operations.
type WorkHistoryPatch struct {
	Summary *string `json:"summary,omitempty"`
}

func (p WorkHistoryPatch) apply(w *application.WorkHistorySection) {
	setString(&w.Summary, p.Summary)
}

// FinancialsPatch updates the individual financials section. History, when
// present, replaces the whole per-year table (the form edits it as a grid).
type FinancialsPatch struct {
	History            []application.YearlyFigures `json:"history,omitempty"`
	CurrentBookValue   *float64                    `json:"current_book_value,omitempty"`
	ProjectedPortables *float64                    `json:"projected_portables,omitempty"`
	CompExpectation    *float64                    `json:"comp_expectation,omitempty"`
	Notes              *string                     `json:"notes,omitempty"`
}

func (p FinancialsPatch) apply(f *application.FinancialsSection) {
	if p.History != nil {
		f.History = p.History
	}
	setFloat(&f.CurrentBookValue, p.CurrentBookValue)
	setFloat(&f.ProjectedPortables, p.ProjectedPortables)
	setFloat(&f.CompExpectation, p.CompExpectation)
	setString(&f.Notes, p.Notes)
}

// ConflictsPatch updates the narrative portion of the conflicts section.
type ConflictsPatch struct {
	Narrative *string `json:"narrative,omitempty"`
}

func (p ConflictsPatch) apply(c *application.ConflictsSection) {
	setString(&c.Narrative, p.Narrative)
}

// DueDiligencePatch updates the disclosure questionnaire.
type DueDiligencePatch struct {
	DisciplinaryHistory      *bool   `json:"disciplinary_history,omitempty"`
	DisciplinaryExplanation  *string `json:"disciplinary_explanation,omitempty"`
	MalpracticeClaims        *bool   `json:"malpractice_claims,omitempty"`
	MalpracticeExplanation   *string `json:"malpractice_explanation,omitempty"`
	PendingGrievances        *bool   `json:"pending_grievances,omitempty"`
	GrievanceExplanation     *string `json:"grievance_explanation,omitempty"`
	CriminalHistory          *bool   `json:"criminal_history,omitempty"`
	CriminalExplanation      *string `json:"criminal_explanation,omitempty"`
	RestrictiveCovenants     *bool   `json:"restrictive_covenants,omitempty"`
	CovenantExplanation      *string `json:"covenant_explanation,omitempty"`
	FinancialObligationsOwed *bool   `json:"financial_obligations_owed,omitempty"`
	ObligationsExplanation   *string `json:"obligations_explanation,omitempty"`
}

func (p DueDiligencePatch) apply(d *application.DueDiligenceSection) {
	setBool(&d.DisciplinaryHistory, p.DisciplinaryHistory)
	setString(&d.DisciplinaryExplanation, p.DisciplinaryExplanation)
	setBool(&d.MalpracticeClaims, p.MalpracticeClaims)
	setString(&d.MalpracticeExplanation, p.MalpracticeExplanation)
	setBool(&d.PendingGrievances, p.PendingGrievances)
	setString(&d.GrievanceExplanation, p.GrievanceExplanation)
	setBool(&d.CriminalHistory, p.CriminalHistory)
	setString(&d.CriminalExplanation, p.CriminalExplanation)
	setBool(&d.RestrictiveCovenants, p.RestrictiveCovenants)
	setString(&d.CovenantExplanation, p.CovenantExplanation)
	setBool(&d.FinancialObligationsOwed, p.FinancialObligationsOwed)
	setString(&d.ObligationsExplanation, p.ObligationsExplanation)
}

// AcknowledgmentPatch updates the attestation section.
type AcknowledgmentPatch struct {
	Agreed    *bool   `json:"agreed,omitempty"`
	Signature *string `json:"signature,omitempty"`
	SignedAt  *string `json:"signed_at,omitempty"`
}

func (p AcknowledgmentPatch) apply(a *application.AcknowledgmentSection) {
	setBool(&a.Agreed, p.Agreed)
	setString(&a.Signature, p.Signature)
	setString(&a.SignedAt, p.SignedAt)
}

// GroupOverviewPatch updates the group-overview section (group track only).
type GroupOverviewPatch struct {
	GroupName       *string  `json:"group_name,omitempty"`
	PracticeGroup   *string  `json:"practice_group,omitempty"`
	CurrentFirm     *string  `json:"current_firm,omitempty"`
	PartnerCount    *int     `json:"partner_count,omitempty"`
	AssociateCount  *int     `json:"associate_count,omitempty"`
	StaffCount      *int     `json:"staff_count,omitempty"`
	CombinedBook    *float64 `json:"combined_book,omitempty"`
	RelocationNotes *string  `json:"relocation_notes,omitempty"`
}

func (p GroupOverviewPatch) apply(g *application.GroupOverviewSection) {
	setString(&g.GroupName, p.GroupName)
	setString(&g.PracticeGroup, p.PracticeGroup)
	setString(&g.CurrentFirm, p.CurrentFirm)
	setInt(&g.PartnerCount, p.PartnerCount)
	setInt(&g.AssociateCount, p.AssociateCount)
	setInt(&g.StaffCount, p.StaffCount)
	setFloat(&g.CombinedBook, p.CombinedBook)
	setString(&g.RelocationNotes, p.RelocationNotes)
}

// CombinedFinancialsPatch updates the group-wide financials section.
type CombinedFinancialsPatch struct {
	History          []application.YearlyFigures `json:"history,omitempty"`
	CombinedBook     *float64                    `json:"combined_book,omitempty"`
	ProjectedRevenue *float64                    `json:"projected_revenue,omitempty"`
	Notes            *string                     `json:"notes,omitempty"`
}

func (p CombinedFinancialsPatch) apply(f *application.CombinedFinancialsSection) {
	if p.History != nil {
		f.History = p.History
	}
	setFloat(&f.CombinedBook, p.CombinedBook)
	setFloat(&f.ProjectedRevenue, p.ProjectedRevenue)
	setString(&f.Notes, p.Notes)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
