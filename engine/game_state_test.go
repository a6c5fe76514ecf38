package engine

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/input"
)

func newTestState() *GameState {
	return NewGameState(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func pressed(keys ...input.Key) input.Snapshot {
	var s input.Snapshot
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

// sendBallOut places the ball one tick away from leaving the field on side
func sendBallOut(gs *GameState, past Side) {
	gs.Ball.Y = 50 // clear of both paddles
	switch past {
	case SideLeft:
		gs.Ball.X = 2
		gs.Ball.VX = -constants.BaseBallSpeed
	case SideRight:
		gs.Ball.X = gs.FieldWidth - 2
		gs.Ball.VX = constants.BaseBallSpeed
	}
	gs.Ball.VY = 0
}

func TestNewGameState(t *testing.T) {
	gs := newTestState()

	if gs.Phase() != PhasePlaying {
		t.Errorf("Expected PhasePlaying, got %v", gs.Phase())
	}
	if gs.ScoreLeft != 0 || gs.ScoreRight != 0 {
		t.Errorf("Expected 0:0, got %d:%d", gs.ScoreLeft, gs.ScoreRight)
	}
	if gs.WinTarget != 3 {
		t.Errorf("Expected win target 3, got %d", gs.WinTarget)
	}
	if gs.Ball.X != 200 || gs.Ball.Y != 200 || gs.Ball.VX != 5 || gs.Ball.VY != 0 {
		t.Errorf("Unexpected serve: %+v", *gs.Ball)
	}

	other := newTestState()
	if gs.Ball == other.Ball {
		t.Error("Each state must own its ball")
	}
	if gs.MatchID == other.MatchID {
		t.Error("Expected distinct match ids")
	}
}

func TestStepMovesBall(t *testing.T) {
	gs := newTestState()

	events := gs.Step(input.Snapshot{})

	if len(events) != 0 {
		t.Errorf("Expected no events, got %v", events)
	}
	if gs.Ball.X != 205 {
		t.Errorf("Expected ball X 205, got %v", gs.Ball.X)
	}
	if gs.FrameNumber() != 1 {
		t.Errorf("Expected frame 1, got %d", gs.FrameNumber())
	}
}

func TestScoringLeftMiss(t *testing.T) {
	gs := newTestState()
	gs.Left.Y = 300
	gs.Right.Y = 320
	sendBallOut(gs, SideLeft)

	events := gs.Step(input.Snapshot{})

	if gs.ScoreRight != 1 || gs.ScoreLeft != 0 {
		t.Fatalf("Expected 0:1, got %d:%d", gs.ScoreLeft, gs.ScoreRight)
	}
	if gs.LastScorer() != SideRight {
		t.Errorf("Expected last scorer right, got %v", gs.LastScorer())
	}
	if !HasEvent(events, EventPoint) {
		t.Error("Expected a point event")
	}
	if gs.Phase() != PhasePlaying {
		t.Errorf("Expected play to resume, got %v", gs.Phase())
	}

	// Entities reset; the serve goes toward the side that conceded
	if gs.Ball.X != 200 || gs.Ball.Y != 200 || gs.Ball.VY != 0 {
		t.Errorf("Ball not recentred: %+v", *gs.Ball)
	}
	if gs.Ball.VX != constants.BaseBallSpeed {
		t.Errorf("Expected VX %d after reset, got %v", constants.BaseBallSpeed, gs.Ball.VX)
	}
	if gs.Left.Y != constants.PaddleOriginY || gs.Right.Y != constants.PaddleOriginY {
		t.Errorf("Paddles not reset: left %v right %v", gs.Left.Y, gs.Right.Y)
	}
}

func TestScoringRightMiss(t *testing.T) {
	gs := newTestState()
	sendBallOut(gs, SideRight)

	gs.Step(input.Snapshot{})

	if gs.ScoreLeft != 1 || gs.ScoreRight != 0 {
		t.Fatalf("Expected 1:0, got %d:%d", gs.ScoreLeft, gs.ScoreRight)
	}
	if gs.Ball.VX != -constants.BaseBallSpeed {
		t.Errorf("Expected VX %d after reset, got %v", -constants.BaseBallSpeed, gs.Ball.VX)
	}
}

func winMatch(t *testing.T, gs *GameState, side Side) {
	t.Helper()
	past := SideRight
	if side == SideRight {
		past = SideLeft
	}
	for i := 0; i < gs.WinTarget; i++ {
		sendBallOut(gs, past)
		gs.Step(input.Snapshot{})
	}
	if gs.Phase() != PhaseMatchWon {
		t.Fatalf("Expected PhaseMatchWon, got %v", gs.Phase())
	}
}

func TestMatchWon(t *testing.T) {
	gs := newTestState()

	for i := 0; i < gs.WinTarget-1; i++ {
		sendBallOut(gs, SideRight)
		gs.Step(input.Snapshot{})
	}
	if gs.Phase() != PhasePlaying {
		t.Fatalf("Expected still playing at %d:%d, got %v", gs.ScoreLeft, gs.ScoreRight, gs.Phase())
	}

	sendBallOut(gs, SideRight)
	events := gs.Step(input.Snapshot{})

	if gs.Phase() != PhaseMatchWon {
		t.Fatalf("Expected PhaseMatchWon, got %v", gs.Phase())
	}
	if gs.Winner() != SideLeft {
		t.Errorf("Expected left winner, got %v", gs.Winner())
	}
	if !HasEvent(events, EventMatchWon) {
		t.Error("Expected a match won event")
	}

	f := gs.Frame()
	if len(f.Overlay) != 2 || f.Overlay[0] != constants.LeftWinsText || f.Overlay[1] != constants.PlayAgainText {
		t.Errorf("Unexpected overlay %q", f.Overlay)
	}
}

func TestPlayBlockedUntilDecision(t *testing.T) {
	gs := newTestState()
	winMatch(t, gs, SideRight)

	ballX := gs.Ball.X
	leftY := gs.Left.Y

	for i := 0; i < 30; i++ {
		gs.Step(input.NewSnapshot(input.KeyLeftUp))
	}

	if gs.Phase() != PhaseAwaitingReplay {
		t.Fatalf("Expected PhaseAwaitingReplay, got %v", gs.Phase())
	}
	if gs.Ball.X != ballX || gs.Left.Y != leftY {
		t.Error("Entities moved while awaiting the replay decision")
	}
	if gs.ScoreRight != gs.WinTarget {
		t.Errorf("Expected score kept at %d, got %d", gs.WinTarget, gs.ScoreRight)
	}

	f := gs.Frame()
	if len(f.Overlay) == 0 || f.Overlay[0] != constants.RightWinsText {
		t.Errorf("Expected right win banner, got %q", f.Overlay)
	}
}

func TestReplayConfirm(t *testing.T) {
	gs := newTestState()
	winMatch(t, gs, SideLeft)
	firstMatch := gs.MatchID

	// Confirm arriving on the first tick after the win is honoured
	events := gs.Step(pressed(input.KeyConfirm))

	if gs.Phase() != PhasePlaying {
		t.Fatalf("Expected PhasePlaying after confirm, got %v", gs.Phase())
	}
	if gs.ScoreLeft != 0 || gs.ScoreRight != 0 {
		t.Errorf("Expected 0:0 after confirm, got %d:%d", gs.ScoreLeft, gs.ScoreRight)
	}
	if gs.Winner() != SideNone {
		t.Errorf("Expected no winner, got %v", gs.Winner())
	}
	if gs.MatchID == firstMatch {
		t.Error("Expected a new match id")
	}
	if !HasEvent(events, EventRematch) {
		t.Error("Expected a rematch event")
	}
	if gs.Ball.X != 200 || gs.Ball.Y != 200 {
		t.Errorf("Ball not recentred: %+v", *gs.Ball)
	}
	if len(gs.Frame().Overlay) != 0 {
		t.Error("Overlay should be gone once play resumes")
	}
}

func TestReplayDecline(t *testing.T) {
	gs := newTestState()
	winMatch(t, gs, SideLeft)

	gs.Step(input.Snapshot{})
	if gs.Phase() != PhaseAwaitingReplay {
		t.Fatalf("Expected PhaseAwaitingReplay, got %v", gs.Phase())
	}

	events := gs.Step(pressed(input.KeyDecline))

	if gs.Phase() != PhaseTerminated {
		t.Fatalf("Expected PhaseTerminated, got %v", gs.Phase())
	}
	if !HasEvent(events, EventQuit) {
		t.Error("Expected a quit event")
	}
}

// Only the first decision key of a tick counts
func TestReplayFirstDecisionWins(t *testing.T) {
	gs := newTestState()
	winMatch(t, gs, SideLeft)

	gs.Step(pressed(input.KeyLeftUp, input.KeyDecline, input.KeyConfirm))

	if gs.Phase() != PhaseTerminated {
		t.Errorf("Expected decline to win, got %v", gs.Phase())
	}
}

func TestQuitInAnyPhase(t *testing.T) {
	setups := []struct {
		name  string
		setup func(t *testing.T, gs *GameState)
	}{
		{"Playing", func(t *testing.T, gs *GameState) {}},
		{"MatchWon", func(t *testing.T, gs *GameState) { winMatch(t, gs, SideLeft) }},
		{"AwaitingReplay", func(t *testing.T, gs *GameState) {
			winMatch(t, gs, SideLeft)
			gs.Step(input.Snapshot{})
		}},
	}

	quits := []struct {
		name string
		in   input.Snapshot
	}{
		{"Held", input.NewSnapshot(input.KeyQuit)},
		{"Pressed", pressed(input.KeyQuit)},
		{"Closed", input.Snapshot{Closed: true}},
	}

	for _, s := range setups {
		for _, q := range quits {
			t.Run(s.name+"/"+q.name, func(t *testing.T) {
				gs := newTestState()
				s.setup(t, gs)

				gs.Step(q.in)

				if gs.Phase() != PhaseTerminated {
					t.Errorf("Expected PhaseTerminated, got %v", gs.Phase())
				}
			})
		}
	}
}

func TestTerminatedIsFinal(t *testing.T) {
	gs := newTestState()
	gs.Step(input.NewSnapshot(input.KeyQuit))

	x := gs.Ball.X
	events := gs.Step(pressed(input.KeyConfirm))

	if gs.Phase() != PhaseTerminated {
		t.Errorf("Expected to stay terminated, got %v", gs.Phase())
	}
	if len(events) != 0 {
		t.Errorf("Expected no events after termination, got %v", events)
	}
	if gs.Ball.X != x {
		t.Error("Ball moved after termination")
	}
}

func TestRematchRefusedWhilePlaying(t *testing.T) {
	gs := newTestState()
	gs.ScoreLeft = 2

	gs.Rematch()

	if gs.ScoreLeft != 2 {
		t.Error("Rematch must not apply outside the replay decision")
	}
}

// |vx| stays at the base speed over a long rally with both paddles tracking the ball
func TestHorizontalSpeedConstant(t *testing.T) {
	gs := newTestState()
	gs.Ball.VY = 3

	for i := 0; i < 5000 && gs.Phase() == PhasePlaying; i++ {
		gs.Left.Y = gs.Ball.Y - gs.Left.Height/2
		gs.Right.Y = gs.Ball.Y - gs.Right.Height/2

		gs.Step(input.Snapshot{})

		if math.Abs(gs.Ball.VX) != constants.BaseBallSpeed {
			t.Fatalf("Tick %d: |vx| = %v", i, math.Abs(gs.Ball.VX))
		}
	}

	if gs.ScoreLeft != 0 || gs.ScoreRight != 0 {
		t.Errorf("Tracking paddles should never miss, got %d:%d", gs.ScoreLeft, gs.ScoreRight)
	}
}
