package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/session"
)

// Session is the single local study session shared by every screen. It is
// only touched from the Bubble Tea update loop.
type Session struct {
	ctrl  *navigation.Controller
	state session.State

	lastID  uint64
	pending uint64
}

// NewSession starts a fresh session.
func NewSession(ctrl *navigation.Controller) *Session {
	return &Session{ctrl: ctrl, state: session.New()}
}

// Do applies a non-blocking action immediately.
func (s *Session) Do(a navigation.Action) navigation.Outcome {
	next, out := s.ctrl.Dispatch(context.Background(), s.state, a)
	s.state = next
	return out
}

// QuestionReadyMsg carries a practice question prepared off the update
// loop.
type QuestionReadyMsg struct {
	ID       uint64
	Question navigation.PreparedQuestion
}

// RequestQuestion prepares a practice question without blocking the update
// loop. Only the latest request can be committed; Cancel or a newer request
// makes an outstanding one stale.
func (s *Session) RequestQuestion(ctx context.Context, useExternal bool) (uint64, tea.Cmd) {
	s.lastID++
	id := s.lastID
	s.pending = id
	snapshot := s.state
	return id, func() tea.Msg {
		return QuestionReadyMsg{ID: id, Question: s.ctrl.PrepareQuestion(ctx, snapshot, useExternal)}
	}
}

// Cancel drops request id if it is still outstanding.
func (s *Session) Cancel(id uint64) {
	if s.pending == id {
		s.pending = 0
	}
}

// CommitQuestion installs the question carried by msg onto the current
// state. It reports false and changes nothing when msg is stale.
func (s *Session) CommitQuestion(msg QuestionReadyMsg) (navigation.Outcome, bool) {
	if msg.ID == 0 || msg.ID != s.pending {
		return navigation.Outcome{}, false
	}
	s.pending = 0
	s.state = navigation.ApplyQuestion(s.state, msg.Question)
	return msg.Question.Outcome, true
}

// Pending reports whether a question request is outstanding.
func (s *Session) Pending() bool { return s.pending != 0 }

// View returns the render model for the current state.
func (s *Session) View() navigation.View { return s.ctrl.View(s.state) }

// State returns the current state.
func (s *Session) State() session.State { return s.state }

// Controller returns the underlying controller.
func (s *Session) Controller() *navigation.Controller { return s.ctrl }
