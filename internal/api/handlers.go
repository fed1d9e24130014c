package api

import (
	"encoding/json"
	"net/http"

	"sockem/internal/sim"
)

// Handler methods for routerHandlers. Used by both the standalone
// router (for tests) and the full Server.

func (h *routerHandlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.runner.Snapshot())
}

func (h *routerHandlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	snapshot := h.runner.Snapshot()
	writeJSON(w, map[string]interface{}{
		"phase":       snapshot.Phase,
		"playerScore": snapshot.PlayerScore,
		"npcScore":    snapshot.NPCScore,
		"tickNumber":  snapshot.TickNumber,
		"tickRate":    h.runner.TickRate(),
		"eventLog":    h.runner.GetEventLogStats(),
	})
}

func (h *routerHandlers) handleGetResult(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runner.Result()
	if !ok {
		writeError(w, "No match in progress", http.StatusNotFound)
		return
	}
	writeJSON(w, result)
}

func (h *routerHandlers) handleGetDifficulties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, sim.DefaultDifficulties())
}

func (h *routerHandlers) handleMatchStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Difficulty string `json:"difficulty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	profile, ok := sim.DifficultyByName(req.Difficulty)
	if !ok {
		writeError(w, "Unknown difficulty", http.StatusBadRequest)
		return
	}

	h.runner.StartMatch(profile)
	writeJSON(w, h.runner.Snapshot())
}

func (h *routerHandlers) handleMatchPause(w http.ResponseWriter, r *http.Request) {
	h.runner.Pause()
	writeJSON(w, map[string]bool{"success": true})
}

func (h *routerHandlers) handleMatchResume(w http.ResponseWriter, r *http.Request) {
	h.runner.Resume()
	writeJSON(w, map[string]bool{"success": true})
}

func (h *routerHandlers) handleMatchRematch(w http.ResponseWriter, r *http.Request) {
	h.runner.Rematch()
	writeJSON(w, map[string]bool{"success": true})
}

func (h *routerHandlers) handleMatchReset(w http.ResponseWriter, r *http.Request) {
	h.runner.ResetMatch()
	writeJSON(w, map[string]bool{"success": true})
}

func (h *routerHandlers) handleInput(w http.ResponseWriter, r *http.Request) {
	var in sim.InputState
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	h.runner.SetInput(in)
	writeJSON(w, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
