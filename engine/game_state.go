package engine

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/physics"
)

// GameState owns every entity of a run and drives the round/match state machine.
// It is touched only by the frame loop goroutine.
type GameState struct {
	// MatchID identifies the current match in logs; a rematch gets a new one
	MatchID uuid.UUID

	Left  *components.PaddleComponent
	Right *components.PaddleComponent
	Ball  *components.BallComponent

	ScoreLeft  int
	ScoreRight int

	// Configuration (fixed for the run)
	WinTarget   int
	FieldWidth  float64
	FieldHeight float64

	phase       GamePhase
	lastScorer  Side
	winner      Side
	frameNumber int64
	events      []GameEvent

	logger *slog.Logger
}

// NewGameState builds fresh entities for a match and starts it in PhasePlaying.
// A nil logger falls back to slog.Default().
func NewGameState(logger *slog.Logger) *GameState {
	if logger == nil {
		logger = slog.Default()
	}

	gs := &GameState{
		MatchID:     uuid.New(),
		Left:        components.NewLeftPaddle(),
		Right:       components.NewRightPaddle(),
		Ball:        components.NewBall(),
		WinTarget:   constants.WinTarget,
		FieldWidth:  constants.FieldWidth,
		FieldHeight: constants.FieldHeight,
		phase:       PhasePlaying,
		events:      make([]GameEvent, 0, 8),
		logger:      logger,
	}

	gs.logger.Info("match started", "match_id", gs.MatchID, "win_target", gs.WinTarget)
	return gs
}

// Phase returns the current match phase
func (gs *GameState) Phase() GamePhase {
	return gs.phase
}

// Winner returns the side that won the match, SideNone while undecided
func (gs *GameState) Winner() Side {
	return gs.winner
}

// LastScorer returns the side that scored most recently, SideNone at match start
func (gs *GameState) LastScorer() Side {
	return gs.lastScorer
}

// FrameNumber returns the number of ticks stepped so far
func (gs *GameState) FrameNumber() int64 {
	return gs.frameNumber
}

// TransitionPhase moves to a new phase if the transition table allows it
func (gs *GameState) TransitionPhase(to GamePhase) bool {
	if !CanTransition(gs.phase, to) {
		gs.logger.Debug("phase transition refused", "from", gs.phase, "to", to)
		return false
	}
	gs.phase = to
	return true
}

// Step advances the match by one tick using the sampled input.
// The returned slice is reused and only valid until the next call.
func (gs *GameState) Step(in input.Snapshot) []GameEvent {
	gs.frameNumber++
	gs.events = gs.events[:0]

	if gs.phase == PhaseTerminated {
		return gs.events
	}

	if in.QuitRequested() {
		gs.terminate()
		return gs.events
	}

	switch gs.phase {
	case PhasePlaying:
		gs.stepPlaying(in)
	case PhaseMatchWon:
		// The win banner went out with the previous frame; from here only a decision counts
		gs.TransitionPhase(PhaseAwaitingReplay)
		gs.stepReplayDecision(in)
	case PhaseAwaitingReplay:
		gs.stepReplayDecision(in)
	}

	return gs.events
}

// stepPlaying runs input, motion, collision and scoring for one tick
func (gs *GameState) stepPlaying(in input.Snapshot) {
	input.ApplyPaddleIntents(in, gs.Left, gs.Right, gs.FieldHeight)
	gs.Ball.Move()

	contact := physics.Resolve(gs.Ball, gs.Left, gs.Right, gs.FieldHeight)
	if contact.Has(physics.ContactWall) {
		gs.emit(EventWallBounce, SideNone)
	}
	if contact.Has(physics.ContactLeftPaddle) {
		gs.emit(EventPaddleBounce, SideLeft)
	}
	if contact.Has(physics.ContactRightPaddle) {
		gs.emit(EventPaddleBounce, SideRight)
	}

	if gs.Ball.X < 0 {
		gs.scorePoint(SideRight)
	} else if gs.Ball.X > gs.FieldWidth {
		gs.scorePoint(SideLeft)
	}
}

// scorePoint ends the round in favour of side and decides whether the match is over
func (gs *GameState) scorePoint(side Side) {
	gs.TransitionPhase(PhaseRoundEnded)

	gs.resetEntities()

	var score int
	switch side {
	case SideLeft:
		gs.ScoreLeft++
		score = gs.ScoreLeft
	case SideRight:
		gs.ScoreRight++
		score = gs.ScoreRight
	}
	gs.lastScorer = side
	gs.emit(EventPoint, side)

	gs.logger.Info("point scored",
		"match_id", gs.MatchID,
		"side", side,
		"score_left", gs.ScoreLeft,
		"score_right", gs.ScoreRight,
	)

	if score >= gs.WinTarget {
		gs.winner = side
		gs.TransitionPhase(PhaseMatchWon)
		gs.emit(EventMatchWon, side)
		gs.logger.Info("match won", "match_id", gs.MatchID, "side", side)
		return
	}

	gs.TransitionPhase(PhasePlaying)
}

// stepReplayDecision consumes the first y/n key-down of the tick, if any
func (gs *GameState) stepReplayDecision(in input.Snapshot) {
	for _, k := range in.Pressed {
		switch k {
		case input.KeyConfirm:
			gs.Rematch()
			return
		case input.KeyDecline:
			gs.terminate()
			return
		}
	}
}

// Rematch zeroes the scores, resets the entities and starts a new match
func (gs *GameState) Rematch() {
	if !gs.TransitionPhase(PhasePlaying) {
		return
	}

	previous := gs.MatchID
	gs.ScoreLeft = 0
	gs.ScoreRight = 0
	gs.winner = SideNone
	gs.lastScorer = SideNone
	gs.resetEntities()
	gs.MatchID = uuid.New()
	gs.emit(EventRematch, SideNone)

	gs.logger.Info("rematch", "previous_match_id", previous, "match_id", gs.MatchID)
}

func (gs *GameState) terminate() {
	if gs.TransitionPhase(PhaseTerminated) {
		gs.emit(EventQuit, SideNone)
		gs.logger.Info("match terminated",
			"match_id", gs.MatchID,
			"score_left", gs.ScoreLeft,
			"score_right", gs.ScoreRight,
		)
	}
}

func (gs *GameState) resetEntities() {
	gs.Ball.Reset()
	gs.Left.Reset()
	gs.Right.Reset()
}

func (gs *GameState) emit(t EventType, side Side) {
	gs.events = append(gs.events, GameEvent{Type: t, Side: side, Frame: gs.frameNumber})
}

// Frame snapshots the state for the renderer
func (gs *GameState) Frame() Frame {
	f := Frame{
		Phase:       gs.phase,
		LeftPaddle:  gs.Left.Rect(),
		RightPaddle: gs.Right.Rect(),
		Ball:        gs.Ball.Circle(),
		ScoreLeft:   gs.ScoreLeft,
		ScoreRight:  gs.ScoreRight,
	}

	if gs.phase == PhaseMatchWon || gs.phase == PhaseAwaitingReplay {
		banner := constants.LeftWinsText
		if gs.winner == SideRight {
			banner = constants.RightWinsText
		}
		f.Overlay = []string{banner, constants.PlayAgainText}
	}

	return f
}
