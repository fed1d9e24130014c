package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sockem/internal/sim"
)

// RunnerInterface defines the simulation runner methods used by the
// API. The interface enables mocking for tests without spinning up the
// tick loop. Keep this minimal - only what the handlers actually call.
type RunnerInterface interface {
	// StartMatch begins a new match at the given difficulty
	StartMatch(difficulty sim.DifficultyProfile)
	// Pause hard-stops the running match
	Pause()
	// Resume continues a paused match
	Resume()
	// Rematch starts a fresh round after a knockout
	Rematch()
	// ResetMatch discards the bout and returns to the menu state
	ResetMatch()
	// SetInput replaces the held-input signal for the next tick
	SetInput(in sim.InputState)
	// Snapshot returns the latest immutable match snapshot
	Snapshot() *sim.MatchSnapshot
	// Result returns the current round's stat block
	Result() (sim.RoundResult, bool)
	// GetEventLogStats returns event log counters
	GetEventLogStats() map[string]interface{}
	// TickRate returns the configured ticks per second
	TickRate() int
}

// RouterConfig contains all dependencies needed to construct the HTTP
// router. Designed for dependency injection and testability:
//
//	cfg := api.RouterConfig{
//	    Runner: mockRunner,
//	    RateLimitConfig: &api.RateLimitConfig{
//	        RequestsPerSecond: 1000,
//	        Burst:             1000,
//	    },
//	}
//	ts := httptest.NewServer(api.NewRouter(cfg))
type RouterConfig struct {
	// Runner is the simulation runner (required)
	Runner RunnerInterface

	// RateLimiter is an optional pre-configured rate limiter.
	// If nil, a new one is created from RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is optional configuration for the rate limiter.
	// Only used if RateLimiter is nil.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins is an optional list of allowed CORS origins.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful
	// for benchmarks and quiet tests).
	DisableLogging bool
}

// routerHandlers holds the handler functions for the router.
type routerHandlers struct {
	runner RunnerInterface
}

// NewRouter constructs the HTTP router with all middleware and routes.
//
// This function is pure: no goroutines are started and no listeners
// are opened, so it is safe to use with httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	// Rate limiting before CORS to reject early and save CPU
	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{
			"http://localhost:*",
			"http://127.0.0.1:*",
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	h := &routerHandlers{runner: cfg.Runner}

	r.Route("/api", func(r chi.Router) {
		// Live state for rendering collaborators
		r.Get("/state", h.handleGetState)
		r.Get("/stats", h.handleGetStats)
		r.Get("/result", h.handleGetResult)
		r.Get("/difficulties", h.handleGetDifficulties)

		// Match lifecycle
		r.Post("/match/start", h.handleMatchStart)
		r.Post("/match/pause", h.handleMatchPause)
		r.Post("/match/resume", h.handleMatchResume)
		r.Post("/match/rematch", h.handleMatchRematch)
		r.Post("/match/reset", h.handleMatchReset)

		// Player input (held signals, polled by the sim each tick)
		r.Post("/input", h.handleInput)
	})

	return r
}
