package sim

import "math/rand"

// aiDecide runs one NPC decision window. It fires only when the
// difficulty's reaction time has elapsed since the NPC last acted, the
// punch cooldown is clear, and the NPC is not stunned.
//
// Per window exactly one branch (attack or block) is evaluated: the
// attack draw wins ties. A drawn attack that fails its accuracy roll
// consumes the decision slot — cooldown resets, nothing lands — which
// reads as a missed swing. Both draws may fail, yielding no action.
// This keeps the NPC difficulty-tunable rather than patterned.
func aiDecide(f *FighterState, prof DifficultyProfile, nowMs uint64, rng *rand.Rand) Intent {
	if f.Stunned || f.CooldownMs > 0 {
		return IntentNone
	}
	// The first clause also rejects stale timestamps, which would
	// otherwise wrap the subtraction.
	if nowMs <= f.LastActionAt || nowMs-f.LastActionAt <= prof.ReactionTimeMs {
		return IntentNone
	}

	// The window is consumed regardless of what the rolls produce.
	f.LastActionAt = nowMs

	wantAttack := rng.Float64() < prof.AttackFrequency
	wantBlock := rng.Float64() < prof.BlockChance

	if wantAttack && f.Stamina >= PunchStaminaCost {
		f.stopBlocking()
		if rng.Float64() < prof.Accuracy {
			return IntentPunch
		}
		// Missed swing: pay the cooldown, land nothing.
		f.CooldownMs = PunchCooldownMs
		return IntentNone
	}

	if wantBlock && f.Stamina >= NPCBlockStaminaMin {
		f.IsBlocking = true
		f.Action = ActionBlocking
		return IntentNone
	}

	// Neither roll came up: return to neutral.
	f.stopBlocking()
	return IntentNone
}

// npcUpkeep applies the per-tick stamina flow for the NPC: block drain
// while the guard is up (guard drops at zero), regen otherwise.
func npcUpkeep(f *FighterState, deltaMs float64) {
	if f.IsBlocking {
		if !f.drainBlock(deltaMs) {
			f.stopBlocking()
		}
	}
	f.regenStamina(deltaMs)
}
