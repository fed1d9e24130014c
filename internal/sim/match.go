package sim

import "math/rand"

// MatchPhase is the round lifecycle state machine.
//
//	NotStarted --Start--> Running
//	Running --Pause--> Paused --Resume--> Running
//	Running --(health 0)--> Over
//	Over --Rematch--> Running (fresh fighters, same difficulty)
//	any --Reset--> NotStarted
type MatchPhase int

const (
	PhaseNotStarted MatchPhase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p MatchPhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Winner identifies who took the round once the phase is Over.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerNPC
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerNPC:
		return "npc"
	default:
		return "none"
	}
}

// RoundResult is the final stat block pushed to collaborators when a
// round ends (results screen, event log).
type RoundResult struct {
	Winner         Winner  `json:"-"`
	WinnerName     string  `json:"winner"`
	MaxCombo       uint32  `json:"maxCombo"`
	PerfectHits    uint32  `json:"perfectHits"`
	BlockedAttacks uint32  `json:"blockedAttacks"`
	RoundElapsedMs float64 `json:"roundElapsedMs"`
	PlayerScore    uint32  `json:"playerScore"`
	NPCScore       uint32  `json:"npcScore"`
}

// Match owns all simulation state for one player-vs-NPC bout. It is
// single-threaded by contract: advanced exactly once per external tick,
// never re-entrantly. The Runner serializes access; collaborators read
// snapshots, never the Match itself.
type Match struct {
	Player     FighterState
	NPC        FighterState
	Difficulty DifficultyProfile
	Phase      MatchPhase
	Winner     Winner

	PlayerScore uint32
	NPCScore    uint32

	// Per-round stats, reset on Start/Rematch
	MaxComboThisRound uint32
	PerfectHits       uint32
	BlockedAttacks    uint32
	RoundElapsedMs    float64

	clock Clock
	rng   *rand.Rand
	seed  int64

	// Event callbacks, set by the owner before the first tick
	onPunch     func(PunchOutcome)
	onRoundOver func(RoundResult)
}

// NewMatch creates a match in NotStarted with both fighters at full
// health and stamina. The RNG is explicitly seeded so a run can be
// reproduced in tests.
func NewMatch(difficulty DifficultyProfile, seed int64) *Match {
	return &Match{
		Player:     NewFighter(),
		NPC:        NewFighter(),
		Difficulty: difficulty,
		Phase:      PhaseNotStarted,
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
	}
}

// SetCallbacks registers combat and lifecycle observers.
func (m *Match) SetCallbacks(onPunch func(PunchOutcome), onRoundOver func(RoundResult)) {
	m.onPunch = onPunch
	m.onRoundOver = onRoundOver
}

// Seed returns the RNG seed the match was created with.
func (m *Match) Seed() int64 { return m.seed }

// Start begins the round. Only valid from NotStarted; anything else is
// a no-op.
func (m *Match) Start(nowMs uint64) {
	if m.Phase != PhaseNotStarted {
		return
	}
	m.beginRound(nowMs)
}

// Rematch starts a fresh round with the same difficulty and running
// score. Only valid from Over.
func (m *Match) Rematch(nowMs uint64) {
	if m.Phase != PhaseOver {
		return
	}
	m.beginRound(nowMs)
}

func (m *Match) beginRound(nowMs uint64) {
	m.Player = NewFighter()
	m.NPC = NewFighter()
	m.Winner = WinnerNone
	m.MaxComboThisRound = 0
	m.PerfectHits = 0
	m.BlockedAttacks = 0
	m.RoundElapsedMs = 0
	m.clock.Reset(nowMs)
	// The NPC's first decision window opens reactionTimeMs after start.
	m.NPC.LastActionAt = nowMs
	m.Phase = PhaseRunning
}

// Pause hard-stops the simulation: no timers decay, no stamina flows.
func (m *Match) Pause() {
	if m.Phase != PhaseRunning {
		return
	}
	m.Phase = PhasePaused
}

// Resume re-primes the clock to nowMs so the paused interval is never
// applied as a delta (no free stamina regen after a long pause).
func (m *Match) Resume(nowMs uint64) {
	if m.Phase != PhasePaused {
		return
	}
	m.clock.Reset(nowMs)
	m.Phase = PhaseRunning
}

// Reset discards the bout and returns to the menu state. Always safe;
// in-flight intents are simply dropped with the rest of the state.
func (m *Match) Reset() {
	m.Player = NewFighter()
	m.NPC = NewFighter()
	m.Winner = WinnerNone
	m.PlayerScore = 0
	m.NPCScore = 0
	m.MaxComboThisRound = 0
	m.PerfectHits = 0
	m.BlockedAttacks = 0
	m.RoundElapsedMs = 0
	m.clock.Invalidate()
	m.Phase = PhaseNotStarted
}

// Tick advances the simulation by one step. Calling it in any phase
// other than Running is a no-op so the caller's frame loop stays
// unconditional.
func (m *Match) Tick(in InputState, nowMs uint64) {
	if m.Phase != PhaseRunning {
		return
	}

	delta := m.clock.Delta(nowMs)
	m.RoundElapsedMs += delta

	m.Player.decayTimers(delta, nowMs)
	m.NPC.decayTimers(delta, nowMs)

	playerIntent := resolvePlayerIntent(&m.Player, in, delta)
	npcIntent := aiDecide(&m.NPC, m.Difficulty, nowMs, m.rng)
	npcUpkeep(&m.NPC, delta)

	// The player's punch resolves first. Simultaneous lethal blows
	// therefore award the round to the player; ties cannot happen.
	if playerIntent == IntentPunch {
		m.emitPunch(m.resolvePunch(&m.Player, &m.NPC, true, nowMs))
	}
	if npcIntent == IntentPunch && m.NPC.Health > 0 && !m.NPC.Stunned {
		m.emitPunch(m.resolvePunch(&m.NPC, &m.Player, false, nowMs))
	}

	m.checkTerminal()
}

func (m *Match) emitPunch(out PunchOutcome) {
	if m.onPunch != nil {
		m.onPunch(out)
	}
}

// checkTerminal moves the match to Over when a fighter's health has hit
// zero. The player side is checked second only because their damage was
// already applied first; the ordering above is the real tie-break.
func (m *Match) checkTerminal() {
	switch {
	case m.NPC.Health == 0:
		m.finishRound(WinnerPlayer)
	case m.Player.Health == 0:
		m.finishRound(WinnerNPC)
	}
}

func (m *Match) finishRound(w Winner) {
	m.Phase = PhaseOver
	m.Winner = w

	if w == WinnerPlayer {
		m.PlayerScore++
		m.Player.IsBlocking = false
		m.Player.Action = ActionWinner
		m.NPC.IsBlocking = false
		m.NPC.Action = ActionDead
	} else {
		m.NPCScore++
		m.NPC.IsBlocking = false
		m.NPC.Action = ActionWinner
		m.Player.IsBlocking = false
		m.Player.Action = ActionDead
	}

	if m.onRoundOver != nil {
		m.onRoundOver(m.Result())
	}
}

// Result returns the current round's stat block. Meaningful once the
// phase is Over, but safe to call any time.
func (m *Match) Result() RoundResult {
	return RoundResult{
		Winner:         m.Winner,
		WinnerName:     m.Winner.String(),
		MaxCombo:       m.MaxComboThisRound,
		PerfectHits:    m.PerfectHits,
		BlockedAttacks: m.BlockedAttacks,
		RoundElapsedMs: m.RoundElapsedMs,
		PlayerScore:    m.PlayerScore,
		NPCScore:       m.NPCScore,
	}
}
