package sim

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEventLogEmitBeforeStart(t *testing.T) {
	el := NewEventLog()
	if el.EmitSimple(EventTypePunch, 1, "player", nil) {
		t.Error("emit before Start should be dropped")
	}
	if el.GetTotalCount() != 0 {
		t.Errorf("total %d, want 0", el.GetTotalCount())
	}
}

func TestEventLogWritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")

	el := NewEventLog()
	if err := el.Start(path); err != nil {
		t.Fatalf("Start: %v", err)
	}

	el.EmitSimple(EventTypeRoundStart, 1, "", RoundStartPayload{Difficulty: "medium", RNGSeed: 42})
	el.EmitSimple(EventTypePunch, 2, "player", PunchOutcome{Attacker: "player", Damage: 17})
	el.EmitSimple(EventTypeKO, 3, "player", KOPayload{Winner: "player", RoundElapsedMs: 8000})

	el.Stop() // flushes the remainder

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("bad log line %q: %v", scanner.Text(), err)
		}
		events = append(events, ev)
	}

	if len(events) != 3 {
		t.Fatalf("%d events on disk, want 3", len(events))
	}
	if events[0].Type != EventTypeRoundStart || events[2].Type != EventTypeKO {
		t.Errorf("event order %v %v %v", events[0].Type, events[1].Type, events[2].Type)
	}
	if events[1].Sequence <= events[0].Sequence {
		t.Error("sequence not monotonic")
	}

	var punch PunchOutcome
	if err := json.Unmarshal(events[1].Payload, &punch); err != nil {
		t.Fatalf("punch payload: %v", err)
	}
	if punch.Damage != 17 {
		t.Errorf("payload damage %d, want 17", punch.Damage)
	}
}

func TestEventLogPerActorRateLimit(t *testing.T) {
	el := NewEventLog()
	if err := el.Start(""); err != nil { // in-memory only
		t.Fatalf("Start: %v", err)
	}
	defer el.Stop()

	// The per-actor bucket holds MaxEventsPerActor/10 tokens. A burst
	// of 100 overruns it while staying inside the global budget, so
	// lifecycle events still pass afterwards.
	for i := 0; i < 100; i++ {
		el.EmitSimple(EventTypePunch, uint64(i), "player", nil)
	}

	if el.GetDroppedCount() == 0 {
		t.Error("actor burst was never rate limited")
	}
	if !el.EmitSimple(EventTypePause, 1, "", nil) {
		t.Error("lifecycle event should not share the actor budget")
	}
}

func TestEventLogStatsPendingDrains(t *testing.T) {
	el := NewEventLog()
	if err := el.Start(""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer el.Stop()

	el.EmitSimple(EventTypeRoundStart, 1, "", nil)

	stats := el.GetStats()
	if stats["running"] != true {
		t.Error("stats should report running")
	}

	deadline := time.After(2 * time.Second)
	for {
		if el.GetStats()["pending"].(uint64) == 0 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("writer never drained the buffer")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
