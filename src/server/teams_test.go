package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mmfl-dev/admin-api/src/database"
	"github.com/mmfl-dev/admin-api/src/events"
	"github.com/mmfl-dev/admin-api/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCreateTeamAppliesNumericDefaults(t *testing.T) {
	fake := newFakeClient()
	srv := newTestServer(fake)

	w := doRequest(srv, http.MethodPost, "/api/v1/teams", `{"name":"Lions","won":3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, fake.teams, 1)
	team := fake.teams[0]
	assert.Equal(t, "Lions", team.Name)
	assert.Equal(t, models.Numeric(3), team.Won)
	assert.Equal(t, models.Numeric(0), team.Played)
	assert.Equal(t, models.Numeric(0), team.Draw)
	assert.Equal(t, models.Numeric(0), team.Lost)
	assert.Equal(t, models.Numeric(0), team.GF)
	assert.Equal(t, models.Numeric(0), team.GA)
	assert.Empty(t, team.NameMM)

	change := lastChange(t, srv)
	assert.Equal(t, database.TeamsCollection, change.Resource)
	assert.Equal(t, events.OpCreate, change.Op)
	assert.Equal(t, team.ID.Hex(), change.ID)
}

func TestCreateTeamThenListRoundTrip(t *testing.T) {
	fake := newFakeClient()
	srv := newTestServer(fake)

	w := doRequest(srv, http.MethodPost, "/api/v1/teams", `{"name":"Lions","won":3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(srv, http.MethodGet, "/api/v1/teams", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Lions", listed[0]["name"])
	assert.EqualValues(t, 3, listed[0]["won"])
	assert.EqualValues(t, 0, listed[0]["gf"])
	assert.NotEmpty(t, listed[0]["id"])
}

func TestCreateTeamRequiresName(t *testing.T) {
	fake := newFakeClient()
	srv := newTestServer(fake)

	w := doRequest(srv, http.MethodPost, "/api/v1/teams", `{"name_mm":"လိုင်းများ"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")
	assert.Empty(t, fake.teams)
}

func TestCreateTeamCoercesNumericStrings(t *testing.T) {
	fake := newFakeClient()
	srv := newTestServer(fake)

	w := doRequest(srv, http.MethodPost, "/api/v1/teams", `{"name":"Lions","played":"14"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, fake.teams, 1)
	assert.Equal(t, models.Numeric(14), fake.teams[0].Played)
}

func TestUpdateTeamWritesOnlySuppliedFields(t *testing.T) {
	fake := newFakeClient()
	srv := newTestServer(fake)

	w := doRequest(srv, http.MethodPatch, "/api/v1/teams/abc123", `{"won":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, fake.merges, 1)
	assert.Equal(t, database.TeamsCollection, fake.merges[0].collection)
	assert.Equal(t, "abc123", fake.merges[0].id)
	assert.Equal(t, bson.M{"won": models.Numeric(5)}, fake.merges[0].fields)
}

func TestUpdateTeamEmptyPayloadIsANoOpWrite(t *testing.T) {
	fake := newFakeClient()
	srv := newTestServer(fake)

	w := doRequest(srv, http.MethodPatch, "/api/v1/teams/abc123", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, fake.merges)
	assert.Zero(t, fake.storeCalls())
}

func TestDeleteTeamMissingIDStillSucceeds(t *testing.T) {
	fake := newFakeClient()
	srv := newTestServer(fake)

	w := doRequest(srv, http.MethodDelete, "/api/v1/teams/never-existed", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"never-existed"}, fake.deletes)
}
