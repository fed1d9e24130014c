package sim

import "strings"

// DifficultyProfile tunes the NPC brain and global damage scaling.
// Immutable for the lifetime of a match. The model supports arbitrary
// values; three canonical presets are provided below.
type DifficultyProfile struct {
	Name             string  `json:"name"`
	ReactionTimeMs   uint64  `json:"reactionTimeMs"`   // minimum gap between NPC decisions
	BlockChance      float64 `json:"blockChance"`      // [0,1] chance to attempt a block
	AttackFrequency  float64 `json:"attackFrequency"`  // [0,1] chance to attempt an attack
	Accuracy         float64 `json:"accuracy"`         // [0,1] chance an attempted attack connects
	DamageMultiplier float64 `json:"damageMultiplier"` // applied last to every hit
}

// Canonical presets. Balance lives here, not in callers.
func DefaultDifficulties() map[string]DifficultyProfile {
	return map[string]DifficultyProfile{
		"easy": {
			Name:             "easy",
			ReactionTimeMs:   900,
			BlockChance:      0.20,
			AttackFrequency:  0.45,
			Accuracy:         0.60,
			DamageMultiplier: 0.8,
		},
		"medium": {
			Name:             "medium",
			ReactionTimeMs:   600,
			BlockChance:      0.35,
			AttackFrequency:  0.60,
			Accuracy:         0.75,
			DamageMultiplier: 1.0,
		},
		"hard": {
			Name:             "hard",
			ReactionTimeMs:   350,
			BlockChance:      0.50,
			AttackFrequency:  0.75,
			Accuracy:         0.90,
			DamageMultiplier: 1.25,
		},
	}
}

// DifficultyByName looks up a preset case-insensitively.
func DifficultyByName(name string) (DifficultyProfile, bool) {
	prof, ok := DefaultDifficulties()[strings.ToLower(name)]
	return prof, ok
}

// MediumDifficulty is the default when nothing is configured.
func MediumDifficulty() DifficultyProfile {
	prof, _ := DifficultyByName("medium")
	return prof
}
