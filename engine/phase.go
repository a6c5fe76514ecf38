package engine

// GamePhase is the match state owned by the frame loop
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseRoundEnded
	PhaseMatchWon
	PhaseAwaitingReplay
	PhaseTerminated
)

// String returns a human-readable phase name
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseRoundEnded:
		return "RoundEnded"
	case PhaseMatchWon:
		return "MatchWon"
	case PhaseAwaitingReplay:
		return "AwaitingReplay"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// validTransitions lists the phases reachable from each phase.
// Terminated is reachable from everywhere through the global quit.
var validTransitions = map[GamePhase][]GamePhase{
	PhasePlaying:        {PhaseRoundEnded, PhaseTerminated},
	PhaseRoundEnded:     {PhasePlaying, PhaseMatchWon, PhaseTerminated},
	PhaseMatchWon:       {PhaseAwaitingReplay, PhaseTerminated},
	PhaseAwaitingReplay: {PhasePlaying, PhaseTerminated},
}

// CanTransition reports whether from -> to is a legal phase change
func CanTransition(from, to GamePhase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Side identifies a player
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}
