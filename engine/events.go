package engine

// EventType tags something that happened during a tick.
// Events are produced by GameState.Step and consumed once by the loop's
// collaborators (sound, logging); they carry no behaviour of their own.
type EventType int

const (
	EventNone EventType = iota
	EventWallBounce
	EventPaddleBounce
	EventPoint
	EventMatchWon
	EventRematch
	EventQuit
)

func (e EventType) String() string {
	switch e {
	case EventWallBounce:
		return "WallBounce"
	case EventPaddleBounce:
		return "PaddleBounce"
	case EventPoint:
		return "Point"
	case EventMatchWon:
		return "MatchWon"
	case EventRematch:
		return "Rematch"
	case EventQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GameEvent is one occurrence within a tick
type GameEvent struct {
	Type  EventType
	Side  Side // paddle hit, scorer or winner; SideNone otherwise
	Frame int64
}

// HasEvent reports whether events contains an event of type t
func HasEvent(events []GameEvent, t EventType) bool {
	for _, ev := range events {
		if ev.Type == t {
			return true
		}
	}
	return false
}
