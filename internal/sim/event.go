package sim

import (
	"encoding/json"
	"time"
)

// EventType classifies match events for the append-only log.
type EventType uint8

const (
	EventTypeUnknown EventType = iota
	EventTypeRoundStart
	EventTypePunch
	EventTypeStun
	EventTypeKO
	EventTypeRoundOver
	EventTypePause
	EventTypeResume
	EventTypeReset
)

// EventVersion for backwards compatibility when re-reading old logs.
const EventVersion uint8 = 1

// Event is one entry in the match event log.
type Event struct {
	Version   uint8     `json:"version"`
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"` // Unix nano
	Sequence  uint64    `json:"sequence"`  // Monotonic sequence
	TickNum   uint64    `json:"tickNum"`   // Tick this occurred in
	Actor     string    `json:"actor"`     // "player", "npc", or "" for lifecycle
	Payload   []byte    `json:"payload"`   // JSON-encoded payload
}

// String returns the human-readable event type.
func (t EventType) String() string {
	switch t {
	case EventTypeRoundStart:
		return "round_start"
	case EventTypePunch:
		return "punch"
	case EventTypeStun:
		return "stun"
	case EventTypeKO:
		return "ko"
	case EventTypeRoundOver:
		return "round_over"
	case EventTypePause:
		return "pause"
	case EventTypeResume:
		return "resume"
	case EventTypeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// RoundStartPayload records the parameters a round began with.
type RoundStartPayload struct {
	Difficulty  string `json:"difficulty"`
	RNGSeed     int64  `json:"rngSeed"`
	PlayerScore uint32 `json:"playerScore"`
	NPCScore    uint32 `json:"npcScore"`
}

// StunPayload records a stagger triggered by a sustained combo.
type StunPayload struct {
	Victim     string  `json:"victim"`
	DurationMs float64 `json:"durationMs"`
}

// KOPayload records a knockout.
type KOPayload struct {
	Winner         string  `json:"winner"`
	RoundElapsedMs float64 `json:"roundElapsedMs"`
}

// EncodePayload marshals a payload to JSON bytes.
func EncodePayload(payload interface{}) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return data
}

// NewEvent creates an event stamped with the current wall-clock time.
func NewEvent(eventType EventType, tickNum uint64, actor string, payload interface{}) Event {
	return Event{
		Version:   EventVersion,
		Type:      eventType,
		Timestamp: time.Now().UnixNano(),
		TickNum:   tickNum,
		Actor:     actor,
		Payload:   EncodePayload(payload),
	}
}
