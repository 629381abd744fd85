package validate

import (
	"testing"

	"github.com/mmfl-dev/admin-api/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTeamCreate(t *testing.T) {
	assert.NoError(t, TeamCreate(&models.TeamCreate{Name: "Lions"}))

	err := TeamCreate(&models.TeamCreate{NameMM: "only localized"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestPlayerCreate(t *testing.T) {
	valid := models.PlayerCreate{Name: "Aung", Team: "team1", Position: "GK"}
	assert.NoError(t, PlayerCreate(&valid))

	tests := []struct {
		name    string
		payload models.PlayerCreate
		want    string
	}{
		{"missing name", models.PlayerCreate{Team: "t", Position: "GK"}, "name is required"},
		{"missing team", models.PlayerCreate{Name: "a", Position: "GK"}, "team is required"},
		{"missing position", models.PlayerCreate{Name: "a", Team: "t"}, "position is required"},
		{"bad position", models.PlayerCreate{Name: "a", Team: "t", Position: "ST"}, "position must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PlayerCreate(&tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPlayerUpdate(t *testing.T) {
	assert.NoError(t, PlayerUpdate(&models.PlayerUpdate{}))
	assert.NoError(t, PlayerUpdate(&models.PlayerUpdate{Position: strPtr("FW")}))
	assert.Error(t, PlayerUpdate(&models.PlayerUpdate{Position: strPtr("coach")}))
}

func TestNewsCreate(t *testing.T) {
	assert.NoError(t, NewsCreate(&models.NewsCreate{Title: "t", Body: "b"}))
	assert.Error(t, NewsCreate(&models.NewsCreate{Body: "b"}))
	assert.Error(t, NewsCreate(&models.NewsCreate{Title: "t"}))
}

func TestMatchCreate(t *testing.T) {
	valid := models.MatchCreate{
		HomeTeam: "h", AwayTeam: "a", Date: "05-03-2024", Time: "18:30", Status: "upcoming",
	}
	assert.NoError(t, MatchCreate(&valid))

	tests := []struct {
		name   string
		mutate func(m *models.MatchCreate)
		want   string
	}{
		{"missing home", func(m *models.MatchCreate) { m.HomeTeam = "" }, "homeTeam is required"},
		{"missing away", func(m *models.MatchCreate) { m.AwayTeam = "" }, "awayTeam is required"},
		{"missing date", func(m *models.MatchCreate) { m.Date = "" }, "date is required"},
		{"missing time", func(m *models.MatchCreate) { m.Time = "" }, "time is required"},
		{"missing status", func(m *models.MatchCreate) { m.Status = "" }, "status is required"},
		{"bad status", func(m *models.MatchCreate) { m.Status = "postponed" }, "status must be one of"},
		{"bad date", func(m *models.MatchCreate) { m.Date = "2024-03-05" }, "date must match DD-MM-YYYY"},
		{"short date", func(m *models.MatchCreate) { m.Date = "5-3-2024" }, "date must match DD-MM-YYYY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)
			err := MatchCreate(&payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMatchCreateRequiredBeforeEnum(t *testing.T) {
	// Presence failures win over enum/format failures.
	payload := models.MatchCreate{AwayTeam: "a", Date: "bad", Status: "bad"}
	err := MatchCreate(&payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "homeTeam is required")
}

func TestMatchUpdate(t *testing.T) {
	assert.NoError(t, MatchUpdate(&models.MatchUpdate{}))
	assert.NoError(t, MatchUpdate(&models.MatchUpdate{Date: strPtr("31-12-2024"), Status: strPtr("finished")}))
	assert.Error(t, MatchUpdate(&models.MatchUpdate{Status: strPtr("cancelled")}))
	assert.Error(t, MatchUpdate(&models.MatchUpdate{Date: strPtr("31/12/2024")}))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("01-01-1999"))
	assert.False(t, ValidDate("01-01-99"))
	assert.False(t, ValidDate(" 01-01-1999"))
	assert.False(t, ValidDate("01-01-1999 "))
}
