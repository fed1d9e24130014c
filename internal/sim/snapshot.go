package sim

import (
	"sync/atomic"
	"time"
)

// FighterSnapshot is an immutable copy of one fighter for rendering.
// Value types only; the render loop must never see live state.
type FighterSnapshot struct {
	Health          int     `json:"health"`
	MaxHealth       int     `json:"maxHealth"`
	Stamina         float64 `json:"stamina"`
	MaxStamina      float64 `json:"maxStamina"`
	Action          string  `json:"action"`
	IsBlocking      bool    `json:"isBlocking"`
	Stunned         bool    `json:"stunned"`
	StunRemainingMs float64 `json:"stunRemainingMs"`
	CooldownMs      float64 `json:"cooldownMs"`
	Combo           uint32  `json:"combo"`
}

// MatchSnapshot is a complete immutable view of the match, produced
// once per tick and consumed lock-free by the render/WS collaborators.
type MatchSnapshot struct {
	Sequence   uint64    `json:"sequence"`
	Timestamp  time.Time `json:"timestamp"`
	TickNumber uint64    `json:"tickNumber"`
	RNGSeed    int64     `json:"rngSeed"`

	Phase      string `json:"phase"`
	Winner     string `json:"winner"`
	Difficulty string `json:"difficulty"`

	Player FighterSnapshot `json:"player"`
	NPC    FighterSnapshot `json:"npc"`

	PlayerScore       uint32  `json:"playerScore"`
	NPCScore          uint32  `json:"npcScore"`
	MaxComboThisRound uint32  `json:"maxComboThisRound"`
	PerfectHits       uint32  `json:"perfectHits"`
	BlockedAttacks    uint32  `json:"blockedAttacks"`
	RoundElapsedMs    float64 `json:"roundElapsedMs"`
}

// SnapshotPool hands immutable snapshots from the single producer (the
// tick loop) to any number of consumers without a lock. Each tick fills
// a fresh snapshot and publishes it atomically; once published a
// snapshot is never written again, so a consumer may hold one for as
// long as it likes without contending with later ticks.
type SnapshotPool struct {
	current  atomic.Pointer[MatchSnapshot]
	pending  *MatchSnapshot // producer-owned between Acquire and Publish
	sequence uint64         // atomic - monotonic sequence
}

// NewSnapshotPool creates an empty pool.
func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{}
}

// AcquireWrite gets a fresh snapshot to fill. Producer only, one call
// per tick.
func (p *SnapshotPool) AcquireWrite() *MatchSnapshot {
	p.pending = &MatchSnapshot{
		Sequence:  atomic.AddUint64(&p.sequence, 1),
		Timestamp: time.Now(),
	}
	return p.pending
}

// PublishWrite makes the filled snapshot visible to readers. The
// snapshot must not be written after this point.
func (p *SnapshotPool) PublishWrite() {
	p.current.Store(p.pending)
}

// AcquireRead returns the latest published snapshot, or a zero
// snapshot before the first publish.
func (p *SnapshotPool) AcquireRead() *MatchSnapshot {
	if snap := p.current.Load(); snap != nil {
		return snap
	}
	return new(MatchSnapshot)
}

// fillSnapshot copies the live match state into snap.
func (m *Match) fillSnapshot(snap *MatchSnapshot, tickNumber uint64) {
	snap.TickNumber = tickNumber
	snap.RNGSeed = m.seed
	snap.Phase = m.Phase.String()
	snap.Winner = m.Winner.String()
	snap.Difficulty = m.Difficulty.Name
	snap.Player = snapshotFighter(&m.Player)
	snap.NPC = snapshotFighter(&m.NPC)
	snap.PlayerScore = m.PlayerScore
	snap.NPCScore = m.NPCScore
	snap.MaxComboThisRound = m.MaxComboThisRound
	snap.PerfectHits = m.PerfectHits
	snap.BlockedAttacks = m.BlockedAttacks
	snap.RoundElapsedMs = m.RoundElapsedMs
}

func snapshotFighter(f *FighterState) FighterSnapshot {
	return FighterSnapshot{
		Health:          f.Health,
		MaxHealth:       f.MaxHealth,
		Stamina:         f.Stamina,
		MaxStamina:      MaxStamina,
		Action:          f.Action.String(),
		IsBlocking:      f.IsBlocking,
		Stunned:         f.Stunned,
		StunRemainingMs: f.StunRemainingMs,
		CooldownMs:      f.CooldownMs,
		Combo:           f.Combo,
	}
}
