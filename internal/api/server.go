package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Server is the HTTP API server with WebSocket support. It combines
// the router with the WebSocket hub streaming match snapshots.
type Server struct {
	runner      RunnerInterface
	router      *chi.Mux
	wsHub       *WebSocketHub
	rateLimiter *IPRateLimiter
}

// NewServer creates a new API server with default production
// configuration.
//
// Background workers do NOT start until Start() is called; the server
// can be constructed in tests without goroutines or listeners. For
// testing HTTP endpoints without WebSocket support, use NewRouter()
// directly.
func NewServer(runner RunnerInterface) *Server {
	s := &Server{
		runner: runner,
		wsHub:  NewWebSocketHub(),
	}

	s.rateLimiter = NewIPRateLimiter(DefaultRateLimitConfig)

	s.router = NewRouter(RouterConfig{
		Runner:      runner,
		RateLimiter: s.rateLimiter,
	})

	// WebSocket route needs the hub instance, so it can't be part of
	// the pure NewRouter factory.
	s.router.Get("/ws", s.handleWS)

	return s
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.wsHub.HandleWebSocket(s.runner, w, r)
}

// Start begins the HTTP server AND starts background workers. This is
// the only method that starts goroutines or opens listeners. Call it
// once; stop the server by signaling the process.
func (s *Server) Start(addr string) error {
	go s.wsHub.Run()
	s.wsHub.StartBroadcastLoop(s.runner)

	log.Printf("API server starting on %s", addr)

	return http.ListenAndServe(addr, s.router)
}

// Router returns the HTTP handler for use with httptest:
//
//	server := api.NewServer(runner)
//	ts := httptest.NewServer(server.Router())
//	defer ts.Close()
//	resp, _ := http.Get(ts.URL + "/api/state")
func (s *Server) Router() http.Handler {
	return s.router
}

// Stop performs graceful shutdown of background workers.
func (s *Server) Stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}
