// Package server exposes stored jobs and on-demand runs over HTTP.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go-jobsearch-automation/internal/models"
	"go-jobsearch-automation/internal/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Runner starts one job search.
type Runner interface {
	Run(ctx context.Context) (pipeline.Report, error)
}

// JobLister reads stored jobs.
type JobLister interface {
	Since(ctx context.Context, t time.Time) ([]models.ScoredJob, error)
}

// RunStatus is the state of the latest run started through the API.
type RunStatus struct {
	Running    bool      `json:"running"`
	StartedAt  time.Time `json:"started_at,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
	Found      int       `json:"found"`
	Duplicates int       `json:"duplicates"`
	Rejected   int       `json:"rejected"`
	Saved      int       `json:"saved"`
	Error      string    `json:"error,omitempty"`
}

type Server struct {
	runner Runner
	jobs   JobLister
	// base outlives requests; runs are cancelled with it.
	base context.Context
	now  func() time.Time

	mu     sync.Mutex
	status RunStatus
	wg     sync.WaitGroup
}

func New(base context.Context, runner Runner, jobs JobLister) *Server {
	return &Server{runner: runner, jobs: jobs, base: base, now: time.Now}
}

// Router wires the endpoints.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Job search API is running!",
			"status":  "healthy",
		})
	})
	r.GET("/jobs", s.listJobs)
	r.POST("/runs", s.startRun)
	r.GET("/runs/last", s.lastRun)
	return r
}

func (s *Server) listJobs(c *gin.Context) {
	since, err := pipeline.ParseSince(c.DefaultQuery("since", "24h"), s.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	jobs, err := s.jobs.Since(c.Request.Context(), since)
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to list jobs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load jobs"})
		return
	}
	if jobs == nil {
		jobs = []models.ScoredJob{}
	}
	c.JSON(http.StatusOK, gin.H{"since": since, "count": len(jobs), "jobs": jobs})
}

// startRun kicks off a run in the background; only one runs at a time.
func (s *Server) startRun(c *gin.Context) {
	s.mu.Lock()
	if s.status.Running {
		status := s.status
		s.mu.Unlock()
		c.JSON(http.StatusConflict, status)
		return
	}
	s.status = RunStatus{Running: true, StartedAt: s.now()}
	status := s.status
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run()
	c.JSON(http.StatusAccepted, status)
}

func (s *Server) run() {
	defer s.wg.Done()
	rep, err := s.runner.Run(s.base)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Running = false
	s.status.FinishedAt = s.now()
	s.status.Found = rep.Found
	s.status.Duplicates = rep.Duplicates
	s.status.Rejected = rep.Rejected
	s.status.Saved = len(rep.Saved)
	if err != nil {
		s.status.Error = err.Error()
		log.Error().Err(err).Msg("❌ Job search started over HTTP failed")
	}
}

func (s *Server) lastRun(c *gin.Context) {
	s.mu.Lock()
	status := s.status
	s.mu.Unlock()
	if status.StartedAt.IsZero() {
		c.JSON(http.StatusNotFound, gin.H{"error": "no run started yet"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// Wait blocks until a run started through the API has finished.
func (s *Server) Wait() {
	s.wg.Wait()
}
