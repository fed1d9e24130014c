package sim

// ActionKind is the closed set of fighter animation states.
// Rendering collaborators switch on this; keep it exhaustive.
type ActionKind int

const (
	ActionStanding ActionKind = iota
	ActionPunching
	ActionHit
	ActionDead
	ActionWinner
	ActionBlocking
)

// String returns the wire/render name for an action.
func (a ActionKind) String() string {
	switch a {
	case ActionStanding:
		return "standing"
	case ActionPunching:
		return "punching"
	case ActionHit:
		return "hit"
	case ActionDead:
		return "dead"
	case ActionWinner:
		return "winner"
	case ActionBlocking:
		return "blocking"
	default:
		return "unknown"
	}
}

// Balance constants. These are the single canonical formula set for the
// engine; tune here, nowhere else.
const (
	MaxHealth          int     = 100
	MaxStamina         float64 = 100.0
	PunchStaminaCost   float64 = 20.0
	NPCBlockStaminaMin float64 = 10.0

	// Stamina flow, per millisecond
	StaminaRegenPerMs float64 = 0.010 // 10/s while idle
	BlockDrainPerMs   float64 = 0.018 // 18/s while holding block

	// Timing windows, in milliseconds
	PunchCooldownMs float64 = 300.0
	ActionResetMs   float64 = 220.0 // Punching/Hit revert to Standing
	StunDurationMs  float64 = 1200.0

	// Damage formula
	PlayerDamageBase   int     = 15 // + rng.Intn(11), i.e. 15-25
	PlayerDamageSpread int     = 11
	NPCDamageBase      int     = 12 // + rng.Intn(9), i.e. 12-20
	NPCDamageSpread    int     = 9
	ComboStep          float64 = 0.10 // multiplier = 1 + combo*0.10
	PerfectHitChance   float64 = 0.10
	PerfectHitFactor   float64 = 1.5
	BlockFactor        float64 = 0.25

	// Stun trigger: sustained combos occasionally stagger the defender
	StunComboThreshold uint32  = 5
	StunChance         float64 = 0.25
)

// FighterState is the per-combatant mutable state. One each for the
// player and the NPC, owned exclusively by the Match.
type FighterState struct {
	Health    int     `json:"health"`
	MaxHealth int     `json:"maxHealth"`
	Stamina   float64 `json:"stamina"`

	Action     ActionKind `json:"-"`
	IsBlocking bool       `json:"isBlocking"`

	CooldownMs   float64 `json:"-"`
	LastActionAt uint64  `json:"-"` // timestamp (ms) of last Punch/Hit transition

	// Combo is meaningful for the player only; the NPC's stays 0.
	Combo uint32 `json:"combo"`

	Stunned         bool    `json:"stunned"`
	StunRemainingMs float64 `json:"-"`
}

// NewFighter returns a fighter at full health and stamina, standing.
func NewFighter() FighterState {
	return FighterState{
		Health:    MaxHealth,
		MaxHealth: MaxHealth,
		Stamina:   MaxStamina,
		Action:    ActionStanding,
	}
}

// decayTimers advances cooldown, stun, and transient-action timers by
// deltaMs. Called once per tick per fighter before intents resolve.
func (f *FighterState) decayTimers(deltaMs float64, nowMs uint64) {
	if f.CooldownMs > 0 {
		f.CooldownMs -= deltaMs
		if f.CooldownMs < 0 {
			f.CooldownMs = 0
		}
	}

	if f.StunRemainingMs > 0 {
		f.StunRemainingMs -= deltaMs
		if f.StunRemainingMs <= 0 {
			f.StunRemainingMs = 0
			f.Stunned = false
		}
	}

	// Transient actions snap back to Standing after a short window.
	// A stale timestamp would wrap the subtraction; treat it as no
	// time elapsed.
	if f.Action == ActionPunching || f.Action == ActionHit {
		if nowMs > f.LastActionAt && float64(nowMs-f.LastActionAt) >= ActionResetMs {
			f.Action = ActionStanding
		}
	}
}

// regenStamina restores stamina while the fighter is neither punching
// nor blocking, capped at MaxStamina.
func (f *FighterState) regenStamina(deltaMs float64) {
	if f.IsBlocking || f.Action == ActionPunching {
		return
	}
	f.Stamina += StaminaRegenPerMs * deltaMs
	if f.Stamina > MaxStamina {
		f.Stamina = MaxStamina
	}
}

// drainBlock charges the per-tick cost of holding block. Returns false
// once stamina is exhausted, at which point the guard drops.
func (f *FighterState) drainBlock(deltaMs float64) bool {
	f.Stamina -= BlockDrainPerMs * deltaMs
	if f.Stamina <= 0 {
		f.Stamina = 0
		return false
	}
	return true
}

// canPunch gates an attack intent on stamina, cooldown, and stun.
// An intent failing this gate is silently dropped; it is a normal
// gameplay condition, not an error.
func (f *FighterState) canPunch() bool {
	return f.Stamina >= PunchStaminaCost && f.CooldownMs <= 0 && !f.Stunned
}

// applyDamage subtracts damage with a floor of zero.
func (f *FighterState) applyDamage(damage int) {
	f.Health -= damage
	if f.Health < 0 {
		f.Health = 0
	}
}

// stopBlocking lowers the guard and clears the blocking pose.
func (f *FighterState) stopBlocking() {
	f.IsBlocking = false
	if f.Action == ActionBlocking {
		f.Action = ActionStanding
	}
}

// stun staggers the fighter: guard drops and neither punch nor block is
// possible until the timer runs out.
func (f *FighterState) stun() {
	f.Stunned = true
	f.StunRemainingMs = StunDurationMs
	f.stopBlocking()
}
