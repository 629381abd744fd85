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

func (s *Server) listPlayers(ctx *gin.Context) {
	players, err := s.dbClient.ListPlayers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if players == nil {
		players = []*database.Player{}
	}
	ctx.JSON(http.StatusOK, players)
}

func (s *Server) createPlayer(ctx *gin.Context) {
	var payload models.PlayerCreate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.PlayerCreate(&payload); err != nil {
		respondError(ctx, err)
		return
	}

	entry := database.Player{
		Name:     payload.Name,
		NameEN:   payload.NameEN,
		Image:    payload.Image,
		Number:   payload.Number,
		Position: payload.Position,
		Team:     payload.Team,
	}

	id, err := s.dbClient.CreatePlayer(ctx.Request.Context(), &entry)
	if err != nil {
		respondError(ctx, err)
		return
	}

	slog.Debug("Created player", "id", id)
	s.notifyChange(database.PlayersCollection, events.OpCreate, id)
	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updatePlayer(ctx *gin.Context) {
	id := ctx.Param("id")

	var payload models.PlayerUpdate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.PlayerUpdate(&payload); err != nil {
		respondError(ctx, err)
		return
	}

	if fields := payload.Fields(); len(fields) > 0 {
		if err := s.dbClient.MergePlayer(ctx.Request.Context(), id, fields); err != nil {
			respondError(ctx, err)
			return
		}
	}

	s.notifyChange(database.PlayersCollection, events.OpUpdate, id)
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) deletePlayer(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := s.dbClient.DeletePlayer(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	s.notifyChange(database.PlayersCollection, events.OpDelete, id)
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
