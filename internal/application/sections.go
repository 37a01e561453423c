package application

// Section data for the intake wizard. Each logical wizard page owns one
// sub-record below. The schema is deliberately wide and flat: field-level
// validation belongs to the form layer, not here.

// ContactInfo is the candidate's identity and current-position section.
type ContactInfo struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CurrentFirm  string `json:"current_firm,omitempty"`
	CurrentTitle string `json:"current_title,omitempty"`
	PracticeArea string `json:"practice_area,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
}

// EducationEntry is one degree held by the candidate.
type EducationEntry struct {
	ID           string `json:"id"`
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartYear    int    `json:"start_year,omitempty"`
	EndYear      int    `json:"end_year,omitempty"`
	Honors       string `json:"honors,omitempty"`
}

// BarAdmission is one jurisdiction the candidate is admitted in.
type BarAdmission struct {
	ID            string `json:"id"`
	Jurisdiction  string `json:"jurisdiction,omitempty"`
	BarNumber     string `json:"bar_number,omitempty"`
	AdmissionYear int    `json:"admission_year,omitempty"`
	GoodStanding  bool   `json:"good_standing,omitempty"`
}

// ProfessionalOrg is a bar association or similar membership.
type ProfessionalOrg struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	SinceYear int    `json:"since_year,omitempty"`
}

// EducationSection groups degrees, admissions and memberships.
type EducationSection struct {
	Entries          []EducationEntry  `json:"entries,omitempty"`
	BarAdmissions    []BarAdmission    `json:"bar_admissions,omitempty"`
	ProfessionalOrgs []ProfessionalOrg `json:"professional_orgs,omitempty"`
}

// WorkPosition is one prior position in the candidate's work history.
type WorkPosition struct {
	ID               string   `json:"id"`
	Firm             string   `json:"firm,omitempty"`
	Title            string   `json:"title,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	PracticeAreas    []string `json:"practice_areas,omitempty"`
	ReasonForLeaving string   `json:"reason_for_leaving,omitempty"`
}

// WorkHistorySection lists prior positions plus a narrative summary.
type WorkHistorySection struct {
	Positions []WorkPosition `json:"positions,omitempty"`
	Summary   string         `json:"summary,omitempty"`
}

// YearlyFigures is one row of a per-year financial table. Year is the key
// the UI tables index by (e.g. "2025").
type YearlyFigures struct {
	Year         string  `json:"year"`
	Originations float64 `json:"originations,omitempty"`
	Collections  float64 `json:"collections,omitempty"`
	BillableHrs  float64 `json:"billable_hours,omitempty"`
	Compensation float64 `json:"compensation,omitempty"`
}

// FinancialsSection is the individual candidate's book and comp history.
type FinancialsSection struct {
	History            []YearlyFigures `json:"history,omitempty"`
	CurrentBookValue   float64         `json:"current_book_value,omitempty"`
	ProjectedPortables float64         `json:"projected_portables,omitempty"`
	CompExpectation    float64         `json:"comp_expectation,omitempty"`
	Notes              string          `json:"notes,omitempty"`
}

// ClientMatter is one matter nested under a portable client.
type ClientMatter struct {
	ID          string  `json:"id"`
	Description string  `json:"description,omitempty"`
	MatterType  string  `json:"matter_type,omitempty"`
	AnnualFees  float64 `json:"annual_fees,omitempty"`
}

// PortableClient is one client the candidate expects to bring over.
type PortableClient struct {
	ID              string         `json:"id"`
	Name            string         `json:"name,omitempty"`
	Industry        string         `json:"industry,omitempty"`
	YearsWithClient int            `json:"years_with_client,omitempty"`
	EstAnnualFees   float64        `json:"est_annual_fees,omitempty"`
	Likelihood      string         `json:"likelihood,omitempty"`
	Matters         []ClientMatter `json:"matters,omitempty"`
}

// ClientsSection lists portable clients.
type ClientsSection struct {
	Clients []PortableClient `json:"clients,omitempty"`
}

// AdverseMatter is a matter where the candidate was adverse to a firm client.
type AdverseMatter struct {
	ID            string `json:"id"`
	ClientName    string `json:"client_name,omitempty"`
	MatterName    string `json:"matter_name,omitempty"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status,omitempty"`
	YearConcluded int    `json:"year_concluded,omitempty"`
}

// ConflictClient is a prior or prospective client relevant to clearance.
type ConflictClient struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Details      string `json:"details,omitempty"`
}

// BoardMembership is an outside board seat held by the candidate.
type BoardMembership struct {
	ID           string `json:"id"`
	Organization string `json:"organization,omitempty"`
	Role         string `json:"role,omitempty"`
	SinceYear    int    `json:"since_year,omitempty"`
	Compensated  bool   `json:"compensated,omitempty"`
}

// ConflictsSection holds everything conflicts counsel reviews.
type ConflictsSection struct {
	AdverseMatters  []AdverseMatter   `json:"adverse_matters,omitempty"`
	ConflictClients []ConflictClient  `json:"conflict_clients,omitempty"`
	Boards          []BoardMembership `json:"boards,omitempty"`
	Narrative       string            `json:"narrative,omitempty"`
}

// DueDiligenceSection covers the disclosure questionnaire. Each boolean has
// a companion free-text explanation filled in only when the answer is yes.
type DueDiligenceSection struct {
	DisciplinaryHistory      bool   `json:"disciplinary_history,omitempty"`
	DisciplinaryExplanation  string `json:"disciplinary_explanation,omitempty"`
	MalpracticeClaims        bool   `json:"malpractice_claims,omitempty"`
	MalpracticeExplanation   string `json:"malpractice_explanation,omitempty"`
	PendingGrievances        bool   `json:"pending_grievances,omitempty"`
	GrievanceExplanation     string `json:"grievance_explanation,omitempty"`
	CriminalHistory          bool   `json:"criminal_history,omitempty"`
	CriminalExplanation      string `json:"criminal_explanation,omitempty"`
	RestrictiveCovenants     bool   `json:"restrictive_covenants,omitempty"`
	CovenantExplanation      string `json:"covenant_explanation,omitempty"`
	FinancialObligationsOwed bool   `json:"financial_obligations_owed,omitempty"`
	ObligationsExplanation   string `json:"obligations_explanation,omitempty"`
}

// Reference is one professional reference.
type Reference struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Firm         string `json:"firm,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// ReferencesSection lists professional references.
type ReferencesSection struct {
	References []Reference `json:"references,omitempty"`
}

// AcknowledgmentSection is the final attestation page.
type AcknowledgmentSection struct {
	Agreed    bool   `json:"agreed,omitempty"`
	Signature string `json:"signature,omitempty"`
	SignedAt  string `json:"signed_at,omitempty"`
}

// GroupOverviewSection describes the incoming group as a whole.
// Present only on the group track.
type GroupOverviewSection struct {
	GroupName       string  `json:"group_name,omitempty"`
	PracticeGroup   string  `json:"practice_group,omitempty"`
	CurrentFirm     string  `json:"current_firm,omitempty"`
	PartnerCount    int     `json:"partner_count,omitempty"`
	AssociateCount  int     `json:"associate_count,omitempty"`
	StaffCount      int     `json:"staff_count,omitempty"`
	CombinedBook    float64 `json:"combined_book,omitempty"`
	RelocationNotes string  `json:"relocation_notes,omitempty"`
}

// PartnerProfile is one additional partner in a group application.
type PartnerProfile struct {
	ID             string  `json:"id"`
	Name           string  `json:"name,omitempty"`
	Title          string  `json:"title,omitempty"`
	Email          string  `json:"email,omitempty"`
	YearsAtFirm    int     `json:"years_at_firm,omitempty"`
	BookOfBusiness float64 `json:"book_of_business,omitempty"`
}

// PartnersSection lists the additional partners beyond the lead applicant.
type PartnersSection struct {
	Partners []PartnerProfile `json:"partners,omitempty"`
}

// TeamMember is a non-partner member of the incoming group.
type TeamMember struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	Role            string `json:"role,omitempty"`
	YearsExperience int    `json:"years_experience,omitempty"`
	WillRelocate    bool   `json:"will_relocate,omitempty"`
}

// TeamMembersSection lists associates and staff coming with the group.
type TeamMembersSection struct {
	Members []TeamMember `json:"members,omitempty"`
}

// CombinedFinancialsSection is the group-wide analogue of FinancialsSection.
type CombinedFinancialsSection struct {
	History          []YearlyFigures `json:"history,omitempty"`
	CombinedBook     float64         `json:"combined_book,omitempty"`
	ProjectedRevenue float64         `json:"projected_revenue,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// SectionData is the full wizard state snapshot persisted inside an
// application record. Group-only sections stay zero-valued on the
// individual track.
type SectionData struct {
	Contact            ContactInfo               `json:"contact"`
	Education          EducationSection          `json:"education"`
	WorkHistory        WorkHistorySection        `json:"work_history"`
	Financials         FinancialsSection         `json:"financials"`
	Clients            ClientsSection            `json:"clients"`
	Conflicts          ConflictsSection          `json:"conflicts"`
	DueDiligence       DueDiligenceSection       `json:"due_diligence"`
	References         ReferencesSection         `json:"references"`
	Acknowledgment     AcknowledgmentSection     `json:"acknowledgment"`
	GroupOverview      GroupOverviewSection      `json:"group_overview"`
	Partners           PartnersSection           `json:"partners"`
	TeamMembers        TeamMembersSection        `json:"team_members"`
	CombinedFinancials CombinedFinancialsSection `json:"combined_financials"`
}

// ClearGroupSections zeroes the group-only sections. Called when an unlocked
// application switches from the group track back to individual so orphaned
// group data does not linger in the record.
func (d *SectionData) ClearGroupSections() {
	d.GroupOverview = GroupOverviewSection{}
	d.Partners = PartnersSection{}
	d.TeamMembers = TeamMembersSection{}
	d.CombinedFinancials = CombinedFinancialsSection{}
}
