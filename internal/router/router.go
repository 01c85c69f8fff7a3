// Package router keeps the stack of screens the TUI moves through.
package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the previous screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen in place, e.g. a finished test
// for its results.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router holds the screens; the root is never removed.
type Router struct {
	screens []screen.Screen
}

// New starts a stack at root.
func New(root screen.Screen) *Router {
	return &Router{screens: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.screens) - 1 }

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.screens = append(r.screens, s)
	return s.Init()
}

// Pop drops the top screen unless it is the root.
func (r *Router) Pop() tea.Cmd {
	if r.top() > 0 {
		closeScreen(r.screens[r.top()])
		r.screens[r.top()] = nil
		r.screens = r.screens[:r.top()]
	}
	return nil
}

// Replace puts s where the top screen was and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	closeScreen(r.screens[r.top()])
	r.screens[r.top()] = s
	return s.Init()
}

func closeScreen(s screen.Screen) {
	if c, ok := s.(screen.Closer); ok {
		c.Close()
	}
}

// Active is the screen receiving input.
func (r *Router) Active() screen.Screen {
	return r.screens[r.top()]
}

// Depth counts open screens, root included.
func (r *Router) Depth() int {
	return len(r.screens)
}

// Trail joins the titles of the open screens below the root, e.g.
// "Practice Test › Results".
func (r *Router) Trail() string {
	titles := make([]string, 0, r.top())
	for _, s := range r.screens[1:] {
		titles = append(titles, s.Title())
	}
	return strings.Join(titles, " › ")
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case PushScreenMsg:
		return r.Push(m.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(m.Screen)
	}
	next, cmd := r.Active().Update(msg)
	r.screens[r.top()] = next
	return cmd
}

// View draws the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
