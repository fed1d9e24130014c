package sim

import (
	"math/rand"
	"testing"
)

// aggressive returns a profile whose rolls are all certain, so tests
// can isolate the gate under scrutiny.
func aggressive() DifficultyProfile {
	return DifficultyProfile{
		Name:             "test-aggressive",
		ReactionTimeMs:   100,
		BlockChance:      0,
		AttackFrequency:  1,
		Accuracy:         1,
		DamageMultiplier: 1,
	}
}

// TestAIReactionWindow verifies the NPC acts only after its reaction
// time has elapsed since its last action.
func TestAIReactionWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prof := aggressive()

	f := NewFighter()
	f.LastActionAt = 1000

	if got := aiDecide(&f, prof, 1050, rng); got != IntentNone {
		t.Errorf("NPC acted inside the reaction window, got %v", got)
	}
	if got := aiDecide(&f, prof, 1200, rng); got != IntentPunch {
		t.Errorf("NPC should punch once the window elapsed, got %v", got)
	}
}

// TestAIWindowConsumedOnMiss verifies a failed accuracy roll consumes
// the decision slot: cooldown resets, nothing lands.
func TestAIWindowConsumedOnMiss(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prof := aggressive()
	prof.Accuracy = 0 // Every swing misses

	f := NewFighter()

	if got := aiDecide(&f, prof, 500, rng); got != IntentNone {
		t.Errorf("missed swing must not produce an intent, got %v", got)
	}
	if f.CooldownMs != PunchCooldownMs {
		t.Errorf("missed swing should still pay cooldown, got %v", f.CooldownMs)
	}
	if f.LastActionAt != 500 {
		t.Errorf("decision window not consumed, lastActionAt=%d", f.LastActionAt)
	}
}

// TestAIBlockBranch verifies the block branch raises the guard when
// the attack branch was not chosen.
func TestAIBlockBranch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prof := aggressive()
	prof.AttackFrequency = 0
	prof.BlockChance = 1

	f := NewFighter()

	if got := aiDecide(&f, prof, 500, rng); got != IntentNone {
		t.Errorf("block decision must not emit a punch intent, got %v", got)
	}
	if !f.IsBlocking {
		t.Error("NPC should be blocking")
	}
	if f.Action != ActionBlocking {
		t.Errorf("expected blocking action, got %v", f.Action)
	}
}

// TestAIBlockRequiresStamina verifies the block branch is skipped
// below the stamina floor.
func TestAIBlockRequiresStamina(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prof := aggressive()
	prof.AttackFrequency = 0
	prof.BlockChance = 1

	f := NewFighter()
	f.Stamina = NPCBlockStaminaMin - 1

	aiDecide(&f, prof, 500, rng)
	if f.IsBlocking {
		t.Error("NPC must not block below the stamina floor")
	}
}

// TestAIStunnedOrCoolingDown verifies stun and cooldown suppress the
// decision loop entirely.
func TestAIStunnedOrCoolingDown(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prof := aggressive()

	stunned := NewFighter()
	stunned.stun()
	if got := aiDecide(&stunned, prof, 5000, rng); got != IntentNone {
		t.Errorf("stunned NPC must not act, got %v", got)
	}

	cooling := NewFighter()
	cooling.CooldownMs = 50
	if got := aiDecide(&cooling, prof, 5000, rng); got != IntentNone {
		t.Errorf("cooling NPC must not act, got %v", got)
	}
}

// TestAIStaleTimestamp feeds a timestamp older than the NPC's last
// action; the wrapped subtraction must not open a decision window.
func TestAIStaleTimestamp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	f := NewFighter()
	f.LastActionAt = 1000

	if got := aiDecide(&f, aggressive(), 500, rng); got != IntentNone {
		t.Errorf("stale timestamp opened a decision window, got %v", got)
	}
	if f.LastActionAt != 1000 {
		t.Errorf("stale timestamp consumed the window, lastActionAt=%d", f.LastActionAt)
	}
}

// TestAIAttackPreferredOverBlock verifies the attack draw wins when
// both branches come up: exactly one branch is evaluated per window.
func TestAIAttackPreferredOverBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prof := aggressive()
	prof.BlockChance = 1

	f := NewFighter()
	f.IsBlocking = true
	f.Action = ActionBlocking

	if got := aiDecide(&f, prof, 500, rng); got != IntentPunch {
		t.Errorf("attack branch should win, got %v", got)
	}
	if f.IsBlocking {
		t.Error("attack decision must drop the guard")
	}
}

// TestNPCUpkeepDrainAndRegen verifies the per-tick stamina flow for
// the NPC mirrors the player's: drain while guarding, regen otherwise.
func TestNPCUpkeepDrainAndRegen(t *testing.T) {
	blocking := NewFighter()
	blocking.IsBlocking = true
	blocking.Action = ActionBlocking
	npcUpkeep(&blocking, 100)
	if blocking.Stamina >= MaxStamina {
		t.Error("guarding NPC should net-drain stamina")
	}

	idle := NewFighter()
	idle.Stamina = 40
	npcUpkeep(&idle, 100)
	if idle.Stamina != 40+StaminaRegenPerMs*100 {
		t.Errorf("idle NPC should regen, got %v", idle.Stamina)
	}
}
