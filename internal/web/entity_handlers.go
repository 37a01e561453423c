package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lateral-intake/internal/application"
	"lateral-intake/internal/wizard"
)

// Sub-entity kinds addressable under /applications/:id/entities/:kind.
// Each kind maps to one repeating collection in the section data.
const (
	kindEducation        = "education"
	kindBarAdmissions    = "bar-admissions"
	kindProfessionalOrgs = "professional-orgs"
	kindWorkPositions    = "work-positions"
	kindClients          = "clients"
	kindAdverseMatters   = "adverse-matters"
	kindConflictClients  = "conflict-clients"
	kindBoards           = "boards"
	kindReferences       = "references"
	kindPartners         = "partners"
	kindTeamMembers      = "team-members"
)

// handleAddEntity appends one sub-entity of the given kind. Server-side id
// assignment means a client-supplied id is ignored.
func (s *Server) handleAddEntity(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}

	var (
		newID   string
		bindErr error
	)
	switch c.Param("kind") {
	case kindEducation:
		var e application.EducationEntry
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddEducationEntry(e)
		}
	case kindBarAdmissions:
		var e application.BarAdmission
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddBarAdmission(e)
		}
	case kindProfessionalOrgs:
		var e application.ProfessionalOrg
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddProfessionalOrg(e)
		}
	case kindWorkPositions:
		var e application.WorkPosition
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddWorkPosition(e)
		}
	case kindClients:
		var e application.PortableClient
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddPortableClient(e)
		}
	case kindAdverseMatters:
		var e application.AdverseMatter
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddAdverseMatter(e)
		}
	case kindConflictClients:
		var e application.ConflictClient
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddConflictClient(e)
		}
	case kindBoards:
		var e application.BoardMembership
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddBoardMembership(e)
		}
	case kindReferences:
		var e application.Reference
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddReference(e)
		}
	case kindPartners:
		var e application.PartnerProfile
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddPartner(e)
		}
	case kindTeamMembers:
		var e application.TeamMember
		if bindErr = c.ShouldBindJSON(&e); bindErr == nil {
			newID = ct.AddTeamMember(e)
		}
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity kind"})
		return
	}
	if bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": newID})
}

// mergeEntity decodes the request body over a copy of the stored entity, so
// fields the request omits keep their stored values. Returns the merged
// entity with its id pinned.
func mergeEntity[T application.Entity, PT interface {
	*T
	SetEntityID(string)
}](c *gin.Context, list []T, id string) (T, wizard.Outcome, error) {
	var zero T
	i := application.FindByID(list, id)
	if i < 0 {
		return zero, wizard.OutcomeNotFound, nil
	}
	merged := list[i]
	if err := c.ShouldBindJSON(&merged); err != nil {
		return zero, wizard.OutcomeInvalid, err
	}
	PT(&merged).SetEntityID(id)
	return merged, wizard.OutcomeOK, nil
}

// handleUpdateEntity applies a partial update to one sub-entity, matched by
// id. Kinds whose forms only support add/remove have no update route.
func (s *Server) handleUpdateEntity(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	entityID := c.Param("entityID")
	data := ct.Snapshot().Data

	var (
		outcome wizard.Outcome
		bindErr error
	)
	switch c.Param("kind") {
	case kindEducation:
		var e application.EducationEntry
		if e, outcome, bindErr = mergeEntity(c, data.Education.Entries, entityID); outcome == wizard.OutcomeOK {
			outcome = ct.UpdateEducationEntry(e)
		}
	case kindBarAdmissions:
		var e application.BarAdmission
		if e, outcome, bindErr = mergeEntity(c, data.Education.BarAdmissions, entityID); outcome == wizard.OutcomeOK {
			outcome = ct.UpdateBarAdmission(e)
		}
	case kindWorkPositions:
		var e application.WorkPosition
		if e, outcome, bindErr = mergeEntity(c, data.WorkHistory.Positions, entityID); outcome == wizard.OutcomeOK {
			outcome = ct.UpdateWorkPosition(e)
		}
	case kindClients:
		var e application.PortableClient
		if e, outcome, bindErr = mergeEntity(c, data.Clients.Clients, entityID); outcome == wizard.OutcomeOK {
			outcome = ct.UpdatePortableClient(e)
		}
	case kindReferences:
		var e application.Reference
		if e, outcome, bindErr = mergeEntity(c, data.References.References, entityID); outcome == wizard.OutcomeOK {
			outcome = ct.UpdateReference(e)
		}
	case kindPartners:
		var e application.PartnerProfile
		if e, outcome, bindErr = mergeEntity(c, data.Partners.Partners, entityID); outcome == wizard.OutcomeOK {
			outcome = ct.UpdatePartner(e)
		}
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity kind"})
		return
	}
	if bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if outcome == wizard.OutcomeOK {
		if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
			return
		}
	}
	respondOutcome(c, outcome, gin.H{"id": entityID})
}

func (s *Server) handleRemoveEntity(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	entityID := c.Param("entityID")

	var removed int
	switch c.Param("kind") {
	case kindEducation:
		removed = ct.RemoveEducationEntries(entityID)
	case kindBarAdmissions:
		removed = ct.RemoveBarAdmissions(entityID)
	case kindProfessionalOrgs:
		removed = ct.RemoveProfessionalOrgs(entityID)
	case kindWorkPositions:
		removed = ct.RemoveWorkPositions(entityID)
	case kindClients:
		removed = ct.RemovePortableClients(entityID)
	case kindAdverseMatters:
		removed = ct.RemoveAdverseMatters(entityID)
	case kindConflictClients:
		removed = ct.RemoveConflictClients(entityID)
	case kindBoards:
		removed = ct.RemoveBoardMemberships(entityID)
	case kindReferences:
		removed = ct.RemoveReferences(entityID)
	case kindPartners:
		removed = ct.RemovePartners(entityID)
	case kindTeamMembers:
		removed = ct.RemoveTeamMembers(entityID)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity kind"})
		return
	}
	if removed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}
	if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
		return
	}
	c.Status(http.StatusNoContent)
}

// handleAddMatter appends a matter under one portable client.
func (s *Server) handleAddMatter(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	var m application.ClientMatter
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	newID, outcome := ct.AddClientMatter(c.Param("clientID"), m)
	if outcome != wizard.OutcomeOK {
		respondOutcome(c, outcome, nil)
		return
	}
	if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": newID})
}

func (s *Server) handleRemoveMatter(c *gin.Context) {
	ct, ok := s.containerFor(c, c.Param("id"))
	if !ok {
		return
	}
	removed, outcome := ct.RemoveClientMatters(c.Param("clientID"), c.Param("matterID"))
	if outcome != wizard.OutcomeOK {
		respondOutcome(c, outcome, nil)
		return
	}
	if removed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "matter not found"})
		return
	}
	if _, err := ct.PersistToStorage(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting application"})
		return
	}
	c.Status(http.StatusNoContent)
}
