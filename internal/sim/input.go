package sim

// InputState is the raw held-input signal polled once per tick. Owned
// by the input collaborator (keyboard, touch, HTTP endpoint); the
// resolver only reads it.
type InputState struct {
	PunchHeld bool `json:"punch"`
	BlockHeld bool `json:"block"`
}

// Intent is a proposed action for the current tick, already gated by
// stamina/cooldown/stun.
type Intent int

const (
	IntentNone Intent = iota
	IntentPunch
)

// resolvePlayerIntent translates held input into at most one Punch
// intent and applies the blocking/stamina side effects for this tick.
// Drain takes precedence over regen when the guard is up.
func resolvePlayerIntent(f *FighterState, in InputState, deltaMs float64) Intent {
	intent := IntentNone
	if in.PunchHeld && f.canPunch() {
		intent = IntentPunch
	}

	if in.BlockHeld && f.Stamina > 0 && !f.Stunned {
		f.IsBlocking = true
		f.Action = ActionBlocking
		if !f.drainBlock(deltaMs) {
			f.stopBlocking()
		}
	} else {
		f.stopBlocking()
	}

	f.regenStamina(deltaMs)
	return intent
}
