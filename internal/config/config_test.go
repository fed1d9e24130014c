package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Sim.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.Sim.TickRate)
	}
	if cfg.Sim.Difficulty != "medium" {
		t.Errorf("Difficulty = %q, want medium", cfg.Sim.Difficulty)
	}
	if cfg.Sim.EventLogPath != "events.jsonl" {
		t.Errorf("EventLogPath = %q", cfg.Sim.EventLogPath)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Server.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SIM_TICK_RATE", "120")
	t.Setenv("SIM_SEED", "42")
	t.Setenv("SIM_DIFFICULTY", "hard")
	t.Setenv("PORT", "8080")

	cfg := Load()

	if cfg.Sim.TickRate != 120 {
		t.Errorf("TickRate = %d, want 120", cfg.Sim.TickRate)
	}
	if cfg.Sim.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Sim.Seed)
	}
	if cfg.Sim.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, want hard", cfg.Sim.Difficulty)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestEmptyEventLogPathDisables(t *testing.T) {
	t.Setenv("EVENT_LOG_PATH", "")

	cfg := SimFromEnv()
	if cfg.EventLogPath != "" {
		t.Errorf("EventLogPath = %q, want empty (persistence disabled)", cfg.EventLogPath)
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("SIM_TICK_RATE", "not-a-number")
	t.Setenv("PORT", "-1")

	cfg := Load()
	if cfg.Sim.TickRate != 60 {
		t.Errorf("TickRate = %d, want default 60", cfg.Sim.TickRate)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want default 3000", cfg.Server.Port)
	}
}
