package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmfl-dev/admin-api/src/apperr"
	"github.com/mmfl-dev/admin-api/src/database"
	"github.com/mmfl-dev/admin-api/src/events"
	"github.com/mmfl-dev/admin-api/src/models"
	"github.com/mmfl-dev/admin-api/src/validate"
)

// Allocator dates use the same literal layout stored on the documents.
const dateLayout = "02-01-2006"

func (s *Server) listNews(ctx *gin.Context) {
	news, err := s.dbClient.ListNews(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if news == nil {
		news = []*database.News{}
	}
	ctx.JSON(http.StatusOK, news)
}

func (s *Server) createNews(ctx *gin.Context) {
	var payload models.NewsCreate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.NewsCreate(&payload); err != nil {
		respondError(ctx, err)
		return
	}

	rc := ctx.Request.Context()
	now := time.Now()
	date := now.Format(dateLayout)

	id, release, err := s.allocator.Allocate(rc, database.NewsCollection, date)
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer release()

	// Historically news creation overwrites on an identifier collision; the
	// guard matches only run unconditionally. NEWS_ID_CONFLICT_CHECK closes
	// the asymmetry where wanted.
	if s.env.NewsIDConflictCheck {
		exists, err := s.dbClient.Exists(rc, database.NewsCollection, id)
		if err != nil {
			respondError(ctx, err)
			return
		}
		if exists {
			respondError(ctx, apperr.Conflict("news %s already exists", id))
			return
		}
	}

	entry := database.News{
		Title:     payload.Title,
		Body:      payload.Body,
		Date:      date,
		Timestamp: now,
		Images:    emptyIfNil(payload.Images),
		Tags:      emptyIfNil(payload.Tags),
	}
	entry.ID = id

	if err := s.dbClient.SetNews(rc, &entry); err != nil {
		respondError(ctx, err)
		return
	}

	slog.Debug("Created news", "id", id)
	s.notifyChange(database.NewsCollection, events.OpCreate, id)
	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updateNews(ctx *gin.Context) {
	id := ctx.Param("id")

	var payload models.NewsUpdate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fields := payload.Fields(); len(fields) > 0 {
		if err := s.dbClient.MergeNews(ctx.Request.Context(), id, fields); err != nil {
			respondError(ctx, err)
			return
		}
	}

	s.notifyChange(database.NewsCollection, events.OpUpdate, id)
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) deleteNews(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := s.dbClient.DeleteNews(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	s.notifyChange(database.NewsCollection, events.OpDelete, id)
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

// emptyIfNil keeps list fields present on every stored document.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
