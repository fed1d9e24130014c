package sim

import (
	"log"
	"sync"
	"time"
)

// RunnerConfig configures the tick loop.
type RunnerConfig struct {
	TickRate int   // Ticks per second; <= 0 falls back to 60
	Seed     int64 // RNG seed for new matches; 0 means time-based
}

// Runner drives a Match from a time.Ticker at a fixed cadence. It owns
// the pending InputState, serializes every mutation behind one mutex,
// and publishes an immutable snapshot after each tick so collaborators
// never touch live state.
type Runner struct {
	mu    sync.Mutex
	match *Match
	input InputState

	tickRate int
	running  bool
	ticker   *time.Ticker
	stopChan chan struct{}

	epoch     time.Time
	tickCount uint64
	seed      int64

	snapshots *SnapshotPool
	eventLog  *EventLog

	// Observer hooks, wired by main to metrics
	onTick      func(time.Duration)
	onPunch     func(PunchOutcome)
	onRoundOver func(RoundResult)
}

// NewRunner creates a runner with no active match. Background work does
// not start until Start() is called, which keeps construction safe for
// tests.
func NewRunner(cfg RunnerConfig) *Runner {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Runner{
		tickRate:  tickRate,
		epoch:     time.Now(),
		seed:      seed,
		snapshots: NewSnapshotPool(),
		eventLog:  NewEventLog(),
	}
}

// SetObservers wires optional metric hooks. Call before Start.
func (r *Runner) SetObservers(onTick func(time.Duration), onPunch func(PunchOutcome), onRoundOver func(RoundResult)) {
	r.onTick = onTick
	r.onPunch = onPunch
	r.onRoundOver = onRoundOver
}

// Start begins the tick loop. A stopped runner can be started again.
func (r *Runner) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stopChan = make(chan struct{})
	r.ticker = time.NewTicker(time.Second / time.Duration(r.tickRate))
	ticker, stop := r.ticker, r.stopChan
	r.mu.Unlock()

	go func() {
		for {
			select {
			case <-ticker.C:
				r.tick()
			case <-stop:
				return
			}
		}
	}()

	log.Printf("simulation loop started at %d TPS", r.tickRate)
}

// Stop halts the tick loop.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	r.running = false
	if r.ticker != nil {
		r.ticker.Stop()
	}
	close(r.stopChan)
	log.Println("simulation loop stopped")
}

// nowMs returns milliseconds since the runner epoch. time.Since uses
// the monotonic clock, so wall-clock adjustments cannot move it
// backwards.
func (r *Runner) nowMs() uint64 {
	return uint64(time.Since(r.epoch).Milliseconds())
}

// tick advances the match once. Ticks while no match exists, or while
// the match is not running, are cheap no-ops.
func (r *Runner) tick() {
	started := time.Now()

	r.mu.Lock()
	r.tickCount++
	if r.match != nil {
		r.match.Tick(r.input, r.nowMs())
		snap := r.snapshots.AcquireWrite()
		r.match.fillSnapshot(snap, r.tickCount)
		r.snapshots.PublishWrite()
	}
	r.mu.Unlock()

	if r.onTick != nil {
		r.onTick(time.Since(started))
	}
}

// StartMatch creates a fresh match at the given difficulty and starts
// the round. Any previous match is discarded.
func (r *Runner) StartMatch(difficulty DifficultyProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := NewMatch(difficulty, r.seed)
	r.seed++ // Next match gets a distinct, still reproducible, seed
	m.SetCallbacks(r.handlePunch, r.handleRoundOver)
	r.match = m
	r.input = InputState{}
	m.Start(r.nowMs())

	r.eventLog.EmitSimple(EventTypeRoundStart, r.tickCount, "", RoundStartPayload{
		Difficulty:  difficulty.Name,
		RNGSeed:     m.Seed(),
		PlayerScore: m.PlayerScore,
		NPCScore:    m.NPCScore,
	})
	log.Printf("match started: difficulty=%s seed=%d", difficulty.Name, m.Seed())
}

// Pause hard-stops the simulation until Resume.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.match == nil {
		return
	}
	r.match.Pause()
	r.eventLog.EmitSimple(EventTypePause, r.tickCount, "", nil)
}

// Resume continues a paused match without applying the paused interval.
func (r *Runner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.match == nil {
		return
	}
	r.match.Resume(r.nowMs())
	r.eventLog.EmitSimple(EventTypeResume, r.tickCount, "", nil)
}

// Rematch starts a fresh round with the same difficulty and score.
func (r *Runner) Rematch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.match == nil {
		return
	}
	r.match.Rematch(r.nowMs())
	if r.match.Phase == PhaseRunning {
		r.input = InputState{}
		r.eventLog.EmitSimple(EventTypeRoundStart, r.tickCount, "", RoundStartPayload{
			Difficulty:  r.match.Difficulty.Name,
			RNGSeed:     r.match.Seed(),
			PlayerScore: r.match.PlayerScore,
			NPCScore:    r.match.NPCScore,
		})
	}
}

// ResetMatch returns to the menu state, discarding the bout.
func (r *Runner) ResetMatch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.match == nil {
		return
	}
	r.match.Reset()
	r.input = InputState{}
	r.eventLog.EmitSimple(EventTypeReset, r.tickCount, "", nil)
}

// SetInput replaces the held-input signal consumed on the next tick.
func (r *Runner) SetInput(in InputState) {
	r.mu.Lock()
	r.input = in
	r.mu.Unlock()
}

// Snapshot returns the latest published snapshot. May be the zero
// snapshot before the first match tick.
func (r *Runner) Snapshot() *MatchSnapshot {
	return r.snapshots.AcquireRead()
}

// Result returns the current round's stat block, or false when no
// match exists.
func (r *Runner) Result() (RoundResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.match == nil {
		return RoundResult{}, false
	}
	return r.match.Result(), true
}

// handlePunch is installed as the match's punch callback. Runs under
// the runner mutex from within tick().
func (r *Runner) handlePunch(out PunchOutcome) {
	r.eventLog.Emit(NewEvent(EventTypePunch, r.tickCount, out.Attacker, out))
	if out.Stun {
		victim := "npc"
		if out.Attacker == "npc" {
			victim = "player"
		}
		r.eventLog.EmitSimple(EventTypeStun, r.tickCount, out.Attacker, StunPayload{
			Victim:     victim,
			DurationMs: StunDurationMs,
		})
	}
	if r.onPunch != nil {
		r.onPunch(out)
	}
}

// handleRoundOver is installed as the match's round-over callback.
func (r *Runner) handleRoundOver(res RoundResult) {
	r.eventLog.EmitSimple(EventTypeKO, r.tickCount, res.WinnerName, KOPayload{
		Winner:         res.WinnerName,
		RoundElapsedMs: res.RoundElapsedMs,
	})
	r.eventLog.EmitSimple(EventTypeRoundOver, r.tickCount, "", res)
	log.Printf("round over: winner=%s score=%d-%d maxCombo=%d",
		res.WinnerName, res.PlayerScore, res.NPCScore, res.MaxCombo)
	if r.onRoundOver != nil {
		r.onRoundOver(res)
	}
}

// StartEventLog begins persisting match events to filePath.
func (r *Runner) StartEventLog(filePath string) error {
	return r.eventLog.Start(filePath)
}

// StopEventLog flushes and closes the event log.
func (r *Runner) StopEventLog() {
	r.eventLog.Stop()
}

// GetEventLogStats returns event log counters for monitoring.
func (r *Runner) GetEventLogStats() map[string]interface{} {
	return r.eventLog.GetStats()
}

// TickRate returns the configured ticks per second.
func (r *Runner) TickRate() int {
	return r.tickRate
}
