package sim

import "math"

// PunchOutcome describes one resolved punch for events and metrics.
type PunchOutcome struct {
	Attacker   string `json:"attacker"` // "player" or "npc"
	Damage     int    `json:"damage"`
	Perfect    bool   `json:"perfect"`
	Blocked    bool   `json:"blocked"`
	Stun       bool   `json:"stun"`
	DefenderHP int    `json:"defenderHp"`
}

// resolvePunch computes and applies one punch. The formula shape is
// fixed: base + combo + perfect + block + difficulty factors combined
// multiplicatively, floored once at the end.
//
//	damage = floor(base * comboMult * perfectFactor * blockFactor * difficultyFactor)
//
// Only player-origin attacks carry a combo multiplier; the NPC's combo
// stays 0 by design.
func (m *Match) resolvePunch(attacker, defender *FighterState, playerAttack bool, nowMs uint64) PunchOutcome {
	var base int
	if playerAttack {
		base = PlayerDamageBase + m.rng.Intn(PlayerDamageSpread)
	} else {
		base = NPCDamageBase + m.rng.Intn(NPCDamageSpread)
	}

	multiplier := 1.0
	if playerAttack {
		multiplier = 1.0 + float64(attacker.Combo)*ComboStep
	}

	perfect := m.rng.Float64() < PerfectHitChance
	perfectFactor := 1.0
	if perfect {
		perfectFactor = PerfectHitFactor
		m.PerfectHits++
	}

	blocked := defender.IsBlocking
	blockFactor := 1.0
	if blocked {
		blockFactor = BlockFactor
		m.BlockedAttacks++
	}

	damage := int(math.Floor(float64(base) * multiplier * perfectFactor * blockFactor * m.Difficulty.DamageMultiplier))

	defender.applyDamage(damage)

	attacker.Stamina -= PunchStaminaCost
	if attacker.Stamina < 0 {
		attacker.Stamina = 0
	}
	attacker.Action = ActionPunching
	attacker.CooldownMs = PunchCooldownMs
	attacker.LastActionAt = nowMs

	if damage > 0 && !blocked {
		defender.Action = ActionHit
		defender.LastActionAt = nowMs
		if playerAttack {
			attacker.Combo++
			if attacker.Combo > m.MaxComboThisRound {
				m.MaxComboThisRound = attacker.Combo
			}
		} else {
			// Only the player accumulates combo; being tagged resets it.
			defender.Combo = 0
		}
	}

	stun := false
	if attacker.Combo >= StunComboThreshold && m.rng.Float64() < StunChance {
		defender.stun()
		stun = true
	}

	return PunchOutcome{
		Attacker:   attackerLabel(playerAttack),
		Damage:     damage,
		Perfect:    perfect,
		Blocked:    blocked,
		Stun:       stun,
		DefenderHP: defender.Health,
	}
}

func attackerLabel(playerAttack bool) string {
	if playerAttack {
		return "player"
	}
	return "npc"
}
