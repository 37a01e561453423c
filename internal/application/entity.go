package application

// Entity is implemented by every sub-entity stored in a section array.
type Entity interface {
	EntityID() string
}

func (e EducationEntry) EntityID() string  { return e.ID }
func (e BarAdmission) EntityID() string    { return e.ID }
func (e ProfessionalOrg) EntityID() string { return e.ID }
func (e WorkPosition) EntityID() string    { return e.ID }
func (e ClientMatter) EntityID() string    { return e.ID }
func (e PortableClient) EntityID() string  { return e.ID }
func (e AdverseMatter) EntityID() string   { return e.ID }
func (e ConflictClient) EntityID() string  { return e.ID }
func (e BoardMembership) EntityID() string { return e.ID }
func (e Reference) EntityID() string       { return e.ID }
func (e PartnerProfile) EntityID() string  { return e.ID }
func (e TeamMember) EntityID() string      { return e.ID }

func (e *EducationEntry) SetEntityID(id string)  { e.ID = id }
func (e *BarAdmission) SetEntityID(id string)    { e.ID = id }
func (e *ProfessionalOrg) SetEntityID(id string) { e.ID = id }
func (e *WorkPosition) SetEntityID(id string)    { e.ID = id }
func (e *ClientMatter) SetEntityID(id string)    { e.ID = id }
func (e *PortableClient) SetEntityID(id string)  { e.ID = id }
func (e *AdverseMatter) SetEntityID(id string)   { e.ID = id }
func (e *ConflictClient) SetEntityID(id string)  { e.ID = id }
func (e *BoardMembership) SetEntityID(id string) { e.ID = id }
func (e *Reference) SetEntityID(id string)       { e.ID = id }
func (e *PartnerProfile) SetEntityID(id string)  { e.ID = id }
func (e *TeamMember) SetEntityID(id string)      { e.ID = id }

// Add assigns a freshly generated id to e and appends it to list. The id is
// regenerated in the (vanishingly unlikely) event it already exists in list,
// so an array never holds two entities with the same id.
func Add[T Entity, PT interface {
	*T
	SetEntityID(string)
}](list []T, e T, newID func() string) ([]T, string) {
	id := newID()
	for HasID(list, id) {
		id = newID()
	}
	PT(&e).SetEntityID(id)
	return append(list, e), id
}

// FindByID returns the index of the entity with the given id, or -1.
func FindByID[T Entity](list []T, id string) int {
	for i := range list {
		if list[i].EntityID() == id {
			return i
		}
	}
	return -1
}

// HasID reports whether any entity in list already carries id. Add paths use
// this to guarantee ids are never reused within one array.
func HasID[T Entity](list []T, id string) bool {
	return FindByID(list, id) >= 0
}

// ReplaceByID swaps the entity carrying the same id for updated, keeping its
// position. Returns false when no entity with that id exists.
func ReplaceByID[T Entity](list []T, updated T) bool {
	i := FindByID(list, updated.EntityID())
	if i < 0 {
		return false
	}
	list[i] = updated
	return true
}

// RemoveByIDs deletes every entity whose id is in ids and returns the new
// slice along with the number removed. Deletion is permanent, there is no
// tombstone; ids not present are skipped.
func RemoveByIDs[T Entity](list []T, ids []string) ([]T, int) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := list[:0]
	removed := 0
	for _, e := range list {
		if drop[e.EntityID()] {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	return kept, removed
}
