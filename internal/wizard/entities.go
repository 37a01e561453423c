package wizard

import (
	"lateral-intake/internal/application"
	"lateral-intake/internal/identifier"
)

// Sub-entity operations. Every add assigns a server-side id and returns it;
// updates replace the entity carrying the same id (partial-merge callers
// decode over a copy of the stored entity first); removals accept a batch
// of ids and report how many were deleted. All mark the container dirty.

func (c *Container) AddEducationEntry(e application.EducationEntry) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.Education.Entries, id = application.Add(c.app.Data.Education.Entries, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) UpdateEducationEntry(e application.EducationEntry) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !application.ReplaceByID(c.app.Data.Education.Entries, e) {
		return OutcomeNotFound
	}
	c.markDirtyLocked()
	return OutcomeOK
}

func (c *Container) RemoveEducationEntries(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.Education.Entries, n = application.RemoveByIDs(c.app.Data.Education.Entries, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddBarAdmission(e application.BarAdmission) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.Education.BarAdmissions, id = application.Add(c.app.Data.Education.BarAdmissions, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) UpdateBarAdmission(e application.BarAdmission) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !application.ReplaceByID(c.app.Data.Education.BarAdmissions, e) {
		return OutcomeNotFound
	}
	c.markDirtyLocked()
	return OutcomeOK
}

func (c *Container) RemoveBarAdmissions(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.Education.BarAdmissions, n = application.RemoveByIDs(c.app.Data.Education.BarAdmissions, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddProfessionalOrg(e application.ProfessionalOrg) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.Education.ProfessionalOrgs, id = application.Add(c.app.Data.Education.ProfessionalOrgs, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) RemoveProfessionalOrgs(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.Education.ProfessionalOrgs, n = application.RemoveByIDs(c.app.Data.Education.ProfessionalOrgs, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddWorkPosition(e application.WorkPosition) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.WorkHistory.Positions, id = application.Add(c.app.Data.WorkHistory.Positions, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) UpdateWorkPosition(e application.WorkPosition) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !application.ReplaceByID(c.app.Data.WorkHistory.Positions, e) {
		return OutcomeNotFound
	}
	c.markDirtyLocked()
	return OutcomeOK
}

func (c *Container) RemoveWorkPositions(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.WorkHistory.Positions, n = application.RemoveByIDs(c.app.Data.WorkHistory.Positions, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddPortableClient(e application.PortableClient) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.Clients.Clients, id = application.Add(c.app.Data.Clients.Clients, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) UpdatePortableClient(e application.PortableClient) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !application.ReplaceByID(c.app.Data.Clients.Clients, e) {
		return OutcomeNotFound
	}
	c.markDirtyLocked()
	return OutcomeOK
}

func (c *Container) RemovePortableClients(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.Clients.Clients, n = application.RemoveByIDs(c.app.Data.Clients.Clients, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

// AddClientMatter nests a matter under the portable client with clientID.
func (c *Container) AddClientMatter(clientID string, m application.ClientMatter) (string, Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := application.FindByID(c.app.Data.Clients.Clients, clientID)
	if i < 0 {
		return "", OutcomeNotFound
	}
	var id string
	c.app.Data.Clients.Clients[i].Matters, id = application.Add(c.app.Data.Clients.Clients[i].Matters, m, identifier.NewEntityID)
	c.markDirtyLocked()
	return id, OutcomeOK
}

func (c *Container) RemoveClientMatters(clientID string, ids ...string) (int, Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := application.FindByID(c.app.Data.Clients.Clients, clientID)
	if i < 0 {
		return 0, OutcomeNotFound
	}
	var n int
	c.app.Data.Clients.Clients[i].Matters, n = application.RemoveByIDs(c.app.Data.Clients.Clients[i].Matters, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n, OutcomeOK
}

func (c *Container) AddAdverseMatter(e application.AdverseMatter) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.Conflicts.AdverseMatters, id = application.Add(c.app.Data.Conflicts.AdverseMatters, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) RemoveAdverseMatters(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.Conflicts.AdverseMatters, n = application.RemoveByIDs(c.app.Data.Conflicts.AdverseMatters, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddConflictClient(e application.ConflictClient) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.Conflicts.ConflictClients, id = application.Add(c.app.Data.Conflicts.ConflictClients, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) RemoveConflictClients(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.Conflicts.ConflictClients, n = application.RemoveByIDs(c.app.Data.Conflicts.ConflictClients, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddBoardMembership(e application.BoardMembership) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.Conflicts.Boards, id = application.Add(c.app.Data.Conflicts.Boards, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) RemoveBoardMemberships(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.Conflicts.Boards, n = application.RemoveByIDs(c.app.Data.Conflicts.Boards, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddReference(e application.Reference) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.References.References, id = application.Add(c.app.Data.References.References, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) UpdateReference(e application.Reference) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !application.ReplaceByID(c.app.Data.References.References, e) {
		return OutcomeNotFound
	}
	c.markDirtyLocked()
	return OutcomeOK
}

func (c *Container) RemoveReferences(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.References.References, n = application.RemoveByIDs(c.app.Data.References.References, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddPartner(e application.PartnerProfile) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.Partners.Partners, id = application.Add(c.app.Data.Partners.Partners, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) UpdatePartner(e application.PartnerProfile) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !application.ReplaceByID(c.app.Data.Partners.Partners, e) {
		return OutcomeNotFound
	}
	c.markDirtyLocked()
	return OutcomeOK
}

func (c *Container) RemovePartners(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.Partners.Partners, n = application.RemoveByIDs(c.app.Data.Partners.Partners, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}

func (c *Container) AddTeamMember(e application.TeamMember) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.app.Data.TeamMembers.Members, id = application.Add(c.app.Data.TeamMembers.Members, e, identifier.NewEntityID)
	c.markDirtyLocked()
	return id
}

func (c *Container) RemoveTeamMembers(ids ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	c.app.Data.TeamMembers.Members, n = application.RemoveByIDs(c.app.Data.TeamMembers.Members, ids)
	if n > 0 {
		c.markDirtyLocked()
	}
	return n
}
