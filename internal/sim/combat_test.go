package sim

import "testing"

func startedMatch(t *testing.T, prof DifficultyProfile, seed int64) *Match {
	t.Helper()
	m := NewMatch(prof, seed)
	m.Start(0)
	return m
}

// TestPlayerPunchDamageRangeEasy walks a spread of seeds and checks the
// closed damage range for a clean first hit on easy: base 15-25 scaled
// by 0.8 and floored, so 12-20. Perfect hits are skipped since they
// apply a further factor.
func TestPlayerPunchDamageRangeEasy(t *testing.T) {
	easy, ok := DifficultyByName("easy")
	if !ok {
		t.Fatal("easy profile missing")
	}

	for seed := int64(0); seed < 64; seed++ {
		m := startedMatch(t, easy, seed)
		out := m.resolvePunch(&m.Player, &m.NPC, true, 100)
		if out.Perfect {
			continue
		}
		if out.Damage < 12 || out.Damage > 20 {
			t.Errorf("seed %d: damage %d outside [12,20]", seed, out.Damage)
		}
		if m.NPC.Health != MaxHealth-out.Damage {
			t.Errorf("seed %d: NPC health %d after %d damage", seed, m.NPC.Health, out.Damage)
		}
		if m.Player.Combo != 1 {
			t.Errorf("seed %d: combo %d after first clean hit", seed, m.Player.Combo)
		}
	}
}

// TestNPCPunchDamageRangeMedium checks the NPC band 12-20 at the 1.0
// multiplier, and that being tagged resets the player's combo.
func TestNPCPunchDamageRangeMedium(t *testing.T) {
	medium := MediumDifficulty()

	for seed := int64(0); seed < 64; seed++ {
		m := startedMatch(t, medium, seed)
		m.Player.Combo = 3
		out := m.resolvePunch(&m.NPC, &m.Player, false, 100)
		if out.Perfect {
			continue
		}
		if out.Damage < 12 || out.Damage > 20 {
			t.Errorf("seed %d: damage %d outside [12,20]", seed, out.Damage)
		}
		if m.Player.Combo != 0 {
			t.Errorf("seed %d: player combo %d should reset when tagged", seed, m.Player.Combo)
		}
	}
}

// TestBlockingReducesDamage resolves the same seeded punch against a
// raised and a lowered guard and compares.
func TestBlockingReducesDamage(t *testing.T) {
	medium := MediumDifficulty()
	const seed = 7

	open := startedMatch(t, medium, seed)
	openOut := open.resolvePunch(&open.Player, &open.NPC, true, 100)

	guarded := startedMatch(t, medium, seed)
	guarded.NPC.IsBlocking = true
	guarded.NPC.Action = ActionBlocking
	guardedOut := guarded.resolvePunch(&guarded.Player, &guarded.NPC, true, 100)

	if !guardedOut.Blocked {
		t.Fatal("punch into a raised guard should report blocked")
	}
	if guardedOut.Damage >= openOut.Damage {
		t.Errorf("blocked damage %d not below open damage %d", guardedOut.Damage, openOut.Damage)
	}
	if guarded.BlockedAttacks != 1 {
		t.Errorf("BlockedAttacks = %d, want 1", guarded.BlockedAttacks)
	}
	// A blocked hit neither builds combo nor breaks the guard pose.
	if guarded.Player.Combo != 0 {
		t.Errorf("combo %d should not build through a block", guarded.Player.Combo)
	}
	if guarded.NPC.Action != ActionBlocking {
		t.Errorf("defender action %v, want blocking held", guarded.NPC.Action)
	}
}

// TestPunchCostsAndCooldown verifies the attacker pays stamina, enters
// the punching pose, and starts the cooldown window.
func TestPunchCostsAndCooldown(t *testing.T) {
	m := startedMatch(t, MediumDifficulty(), 1)
	m.Player.Stamina = 25

	m.resolvePunch(&m.Player, &m.NPC, true, 100)

	if m.Player.Stamina != 5 {
		t.Errorf("stamina %v, want 5", m.Player.Stamina)
	}
	if m.Player.Action != ActionPunching {
		t.Errorf("action %v, want punching", m.Player.Action)
	}
	if m.Player.CooldownMs != PunchCooldownMs {
		t.Errorf("cooldown %v, want %v", m.Player.CooldownMs, PunchCooldownMs)
	}
	if m.Player.LastActionAt != 100 {
		t.Errorf("lastActionAt %d, want 100", m.Player.LastActionAt)
	}
}

// TestPunchStaminaFloor verifies stamina clamps at zero rather than
// going negative when the cost exceeds the remainder.
func TestPunchStaminaFloor(t *testing.T) {
	m := startedMatch(t, MediumDifficulty(), 1)
	m.Player.Stamina = 12

	m.resolvePunch(&m.Player, &m.NPC, true, 100)
	if m.Player.Stamina != 0 {
		t.Errorf("stamina %v, want 0", m.Player.Stamina)
	}
}

// TestComboBuildsAndTracksMax lands repeated clean hits and checks the
// counter and the per-round max.
func TestComboBuildsAndTracksMax(t *testing.T) {
	m := startedMatch(t, MediumDifficulty(), 3)
	m.NPC.Health = 1000 // keep the round alive across several hits
	m.NPC.MaxHealth = 1000

	for i := 0; i < 3; i++ {
		m.Player.CooldownMs = 0
		m.resolvePunch(&m.Player, &m.NPC, true, uint64(100*(i+1)))
	}
	if m.Player.Combo != 3 {
		t.Errorf("combo %d after 3 clean hits", m.Player.Combo)
	}
	if m.MaxComboThisRound != 3 {
		t.Errorf("max combo %d, want 3", m.MaxComboThisRound)
	}
}

// TestStunAtComboThreshold checks a sustained combo can stagger the
// defender, and quantifies the guarantee: below the threshold a stun is
// impossible on that swing.
func TestStunAtComboThreshold(t *testing.T) {
	stunSeen := false
	for seed := int64(0); seed < 256; seed++ {
		m := startedMatch(t, MediumDifficulty(), seed)
		m.NPC.Health = 1000
		m.NPC.MaxHealth = 1000
		m.Player.Combo = StunComboThreshold

		out := m.resolvePunch(&m.Player, &m.NPC, true, 100)
		if out.Stun {
			stunSeen = true
			if !m.NPC.Stunned {
				t.Fatalf("seed %d: outcome reports stun but defender is not stunned", seed)
			}
			if m.NPC.StunRemainingMs != StunDurationMs {
				t.Fatalf("seed %d: stun timer %v, want %v", seed, m.NPC.StunRemainingMs, StunDurationMs)
			}
			break
		}
	}
	if !stunSeen {
		t.Error("no stun observed at threshold combo across 256 seeds")
	}

	// Combo 3 can reach at most 4 on this swing, below the threshold.
	for seed := int64(0); seed < 256; seed++ {
		m := startedMatch(t, MediumDifficulty(), seed)
		m.NPC.Health = 1000
		m.NPC.MaxHealth = 1000
		m.Player.Combo = StunComboThreshold - 2

		if out := m.resolvePunch(&m.Player, &m.NPC, true, 100); out.Stun {
			t.Fatalf("seed %d: stun below the combo threshold", seed)
		}
	}
}

// TestPerfectHitScalesDamage hunts for a perfect hit and verifies the
// counter and that the damage exceeds the clean-hit ceiling.
func TestPerfectHitScalesDamage(t *testing.T) {
	for seed := int64(0); seed < 512; seed++ {
		m := startedMatch(t, MediumDifficulty(), seed)
		out := m.resolvePunch(&m.Player, &m.NPC, true, 100)
		if !out.Perfect {
			continue
		}
		if m.PerfectHits != 1 {
			t.Errorf("seed %d: PerfectHits %d, want 1", seed, m.PerfectHits)
		}
		// floor(base * 1.5) with base 15-25 lands in 22-37.
		if out.Damage < 22 || out.Damage > 37 {
			t.Errorf("seed %d: perfect damage %d outside [22,37]", seed, out.Damage)
		}
		return
	}
	t.Error("no perfect hit observed across 512 seeds")
}
