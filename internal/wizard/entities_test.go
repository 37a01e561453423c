package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lateral-intake/internal/application"
)

func TestAddEntitiesAssignsDistinctIDs(t *testing.T) {
	c, _ := newTestContainer(t)
	_, err := c.InitializeApplication(context.Background(), "user-1", application.TypeIndividual)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		id := c.AddEducationEntry(application.EducationEntry{Institution: "School"})
		require.NotEmpty(t, id)
		assert.False(t, ids[id], "duplicate entity id %s", id)
		ids[id] = true
	}
	assert.Len(t, c.Snapshot().Data.Education.Entries, 5)
}

func TestRemoveEntityLeavesOthersIntact(t *testing.T) {
	c, _ := newTestContainer(t)
	_, err := c.InitializeApplication(context.Background(), "user-1", application.TypeIndividual)
	require.NoError(t, err)

	a := c.AddReference(application.Reference{Name: "Alice"})
	b := c.AddReference(application.Reference{Name: "Bob"})
	d := c.AddReference(application.Reference{Name: "Carol"})

	n := c.RemoveReferences(b)
	assert.Equal(t, 1, n)

	refs := c.Snapshot().Data.References.References
	require.Len(t, refs, 2)
	assert.Equal(t, a, refs[0].ID)
	assert.Equal(t, "Alice", refs[0].Name)
	assert.Equal(t, d, refs[1].ID)
	assert.Equal(t, "Carol", refs[1].Name)
}

func TestUpdateEntityByID(t *testing.T) {
	c, _ := newTestContainer(t)
	_, err := c.InitializeApplication(context.Background(), "user-1", application.TypeIndividual)
	require.NoError(t, err)

	id := c.AddWorkPosition(application.WorkPosition{Firm: "Old Firm", Title: "Associate"})

	outcome := c.UpdateWorkPosition(application.WorkPosition{ID: id, Firm: "Old Firm", Title: "Partner"})
	require.Equal(t, OutcomeOK, outcome)
	assert.Equal(t, "Partner", c.Snapshot().Data.WorkHistory.Positions[0].Title)

	outcome = c.UpdateWorkPosition(application.WorkPosition{ID: "missing", Firm: "X"})
	assert.Equal(t, OutcomeNotFound, outcome)
}

func TestNestedClientMatters(t *testing.T) {
	c, _ := newTestContainer(t)
	_, err := c.InitializeApplication(context.Background(), "user-1", application.TypeIndividual)
	require.NoError(t, err)

	clientID := c.AddPortableClient(application.PortableClient{Name: "Meridian Holdings"})

	m1, outcome := c.AddClientMatter(clientID, application.ClientMatter{Description: "Series B financing"})
	require.Equal(t, OutcomeOK, outcome)
	m2, outcome := c.AddClientMatter(clientID, application.ClientMatter{Description: "IP licensing"})
	require.Equal(t, OutcomeOK, outcome)
	assert.NotEqual(t, m1, m2)

	_, outcome = c.AddClientMatter("no-such-client", application.ClientMatter{})
	assert.Equal(t, OutcomeNotFound, outcome)

	n, outcome := c.RemoveClientMatters(clientID, m1)
	require.Equal(t, OutcomeOK, outcome)
	assert.Equal(t, 1, n)

	clients := c.Snapshot().Data.Clients.Clients
	require.Len(t, clients[0].Matters, 1)
	assert.Equal(t, m2, clients[0].Matters[0].ID)
}

func TestBatchRemoval(t *testing.T) {
	c, _ := newTestContainer(t)
	_, err := c.InitializeApplication(context.Background(), "user-1", application.TypeGroup)
	require.NoError(t, err)

	a := c.AddTeamMember(application.TeamMember{Name: "A"})
	b := c.AddTeamMember(application.TeamMember{Name: "B"})
	c.AddTeamMember(application.TeamMember{Name: "C"})

	n := c.RemoveTeamMembers(a, b, "missing")
	assert.Equal(t, 2, n)
	assert.Len(t, c.Snapshot().Data.TeamMembers.Members, 1)
}
