package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmfl-dev/admin-api/src/database"
	"github.com/mmfl-dev/admin-api/src/events"
	"github.com/mmfl-dev/admin-api/src/models"
	"github.com/mmfl-dev/admin-api/src/validate"
)

func (s *Server) listTeams(ctx *gin.Context) {
	teams, err := s.dbClient.ListTeams(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if teams == nil {
		teams = []*database.Team{}
	}
	ctx.JSON(http.StatusOK, teams)
}

func (s *Server) createTeam(ctx *gin.Context) {
	var payload models.TeamCreate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.TeamCreate(&payload); err != nil {
		respondError(ctx, err)
		return
	}

	entry := database.Team{
		Name:   payload.Name,
		NameMM: payload.NameMM,
		Logo:   payload.Logo,
		Played: payload.Played,
		Won:    payload.Won,
		Draw:   payload.Draw,
		Lost:   payload.Lost,
		GF:     payload.GF,
		GA:     payload.GA,
	}

	id, err := s.dbClient.CreateTeam(ctx.Request.Context(), &entry)
	if err != nil {
		respondError(ctx, err)
		return
	}

	slog.Debug("Created team", "id", id)
	s.notifyChange(database.TeamsCollection, events.OpCreate, id)
	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updateTeam(ctx *gin.Context) {
	id := ctx.Param("id")

	var payload models.TeamUpdate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fields := payload.Fields(); len(fields) > 0 {
		if err := s.dbClient.MergeTeam(ctx.Request.Context(), id, fields); err != nil {
			respondError(ctx, err)
			return
		}
	}

	s.notifyChange(database.TeamsCollection, events.OpUpdate, id)
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) deleteTeam(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := s.dbClient.DeleteTeam(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	s.notifyChange(database.TeamsCollection, events.OpDelete, id)
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
