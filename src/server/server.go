package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/gin-gonic/gin"
	"github.com/mmfl-dev/admin-api/src/apperr"
	"github.com/mmfl-dev/admin-api/src/auth"
	"github.com/mmfl-dev/admin-api/src/database"
	"github.com/mmfl-dev/admin-api/src/environment"
	"github.com/mmfl-dev/admin-api/src/events"
	"github.com/mmfl-dev/admin-api/src/router"
	"github.com/mmfl-dev/admin-api/src/sequence"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	ctx        context.Context
	env        *environment.Environment
	dbClient   database.Client
	allocator  *sequence.Allocator
	verifier   auth.Verifier
	workerpool *workerpool.WorkerPool
	publisher  *events.Publisher
	changes    chan events.Change
	router     *gin.Engine
	stop       chan struct{}
}

func NewServer(ctx context.Context, env *environment.Environment, publisher *events.Publisher, wp *workerpool.WorkerPool) (*Server, error) {
	db, err := database.NewClient(ctx, env)
	if err != nil {
		return nil, err
	}

	srv := Server{
		ctx:        ctx,
		env:        env,
		dbClient:   db,
		allocator:  sequence.NewAllocator(db),
		verifier:   auth.NewJWTVerifier(env.JWTSecret),
		workerpool: wp,
		publisher:  publisher,
		changes:    make(chan events.Change, 64),
		router:     router.DefaultRouter(),
		stop:       make(chan struct{}),
	}
	return &srv, nil
}

func (s *Server) Start() error {
	s.setupRouter()
	go func() {
		_ = s.router.Run(fmt.Sprintf(":%d", s.env.HTTPPort))
	}()

	for {
		select {
		case <-s.stop:
			slog.Info("Stopping processing, server stopped")
			return nil
		case change := <-s.changes:
			s.workerpool.Submit(func() {
				s.publishChange(change)
			})
		}
	}
}

func (s *Server) Stop() error {
	slog.Info("Stopping server")
	close(s.stop)
	return fmt.Errorf("server Stopped")
}

func (s *Server) setupRouter() {
	internal := s.router.Group("/api/internal")
	internal.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1Api := s.router.Group("/api/v1")
	v1Api.Use(auth.Middleware(s.verifier, s.env.RequireAdminClaim))

	v1Api.GET("/teams", s.listTeams)
	v1Api.POST("/teams", s.createTeam)
	v1Api.PATCH("/teams/:id", s.updateTeam)
	v1Api.DELETE("/teams/:id", s.deleteTeam)

	v1Api.GET("/players", s.listPlayers)
	v1Api.POST("/players", s.createPlayer)
	v1Api.PATCH("/players/:id", s.updatePlayer)
	v1Api.DELETE("/players/:id", s.deletePlayer)

	v1Api.GET("/news", s.listNews)
	v1Api.POST("/news", s.createNews)
	v1Api.PATCH("/news/:id", s.updateNews)
	v1Api.DELETE("/news/:id", s.deleteNews)

	v1Api.GET("/matches", s.listMatches)
	v1Api.POST("/matches", s.createMatch)
	v1Api.PATCH("/matches/:id", s.updateMatch)
	v1Api.DELETE("/matches/:id", s.deleteMatch)
}

// notifyChange queues a change event for the publisher loop. The buffer soaks
// up bursts; a full buffer drops the event rather than stall a write response.
func (s *Server) notifyChange(resource, op, id string) {
	select {
	case s.changes <- events.Change{Resource: resource, Op: op, ID: id, At: time.Now()}:
	default:
		slog.Warn("Change event dropped, buffer full", "resource", resource, "op", op, "id", id)
	}
}

func (s *Server) publishChange(change events.Change) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(change); err != nil {
		slog.Error("Error publishing change event", "error", err, "change", change)
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Validation and
// conflict messages go to the client verbatim; everything else is logged in
// full and surfaced as a generic server failure.
func respondError(ctx *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": ae.Message})
			return
		case apperr.KindConflict:
			ctx.JSON(http.StatusConflict, gin.H{"error": ae.Message})
			return
		}
	}

	slog.Error("Store operation failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
