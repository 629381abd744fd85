package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmfl-dev/admin-api/src/apperr"
	"github.com/mmfl-dev/admin-api/src/database"
	"github.com/mmfl-dev/admin-api/src/events"
	"github.com/mmfl-dev/admin-api/src/models"
	"github.com/mmfl-dev/admin-api/src/validate"
)

func (s *Server) listMatches(ctx *gin.Context) {
	matches, err := s.dbClient.ListMatches(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if matches == nil {
		matches = []*database.Match{}
	}
	ctx.JSON(http.StatusOK, matches)
}

func (s *Server) createMatch(ctx *gin.Context) {
	var payload models.MatchCreate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.MatchCreate(&payload); err != nil {
		respondError(ctx, err)
		return
	}

	rc := ctx.Request.Context()

	id, release, err := s.allocator.Allocate(rc, database.MatchesCollection, payload.Date)
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer release()

	// Whatever the allocator computed must not already be a document key; a
	// concurrent create that committed first wins and this one conflicts.
	exists, err := s.dbClient.Exists(rc, database.MatchesCollection, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if exists {
		respondError(ctx, apperr.Conflict("match %s already exists", id))
		return
	}

	entry := database.Match{
		MatchID:   id,
		HomeTeam:  payload.HomeTeam,
		AwayTeam:  payload.AwayTeam,
		HomeScore: payload.HomeScore,
		AwayScore: payload.AwayScore,
		Date:      payload.Date,
		Time:      payload.Time,
		Status:    payload.Status,
	}
	entry.ID = id

	if err := s.dbClient.SetMatch(rc, &entry); err != nil {
		respondError(ctx, err)
		return
	}

	slog.Debug("Created match", "id", id)
	s.notifyChange(database.MatchesCollection, events.OpCreate, id)
	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updateMatch(ctx *gin.Context) {
	id := ctx.Param("id")

	var payload models.MatchUpdate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.MatchUpdate(&payload); err != nil {
		respondError(ctx, err)
		return
	}

	if fields := payload.Fields(); len(fields) > 0 {
		if err := s.dbClient.MergeMatch(ctx.Request.Context(), id, fields); err != nil {
			respondError(ctx, err)
			return
		}
	}

	s.notifyChange(database.MatchesCollection, events.OpUpdate, id)
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) deleteMatch(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := s.dbClient.DeleteMatch(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	s.notifyChange(database.MatchesCollection, events.OpDelete, id)
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
