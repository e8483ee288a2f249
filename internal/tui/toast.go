package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastMsg carries one notification into the program.
type toastMsg struct {
	text string
	ok   bool
}

type toastExpiredMsg struct {
	id int
}

type toast struct {
	id   int
	text string
	ok   bool
}

// Notifier feeds notifications into the running bubbletea program from
// any goroutine. It drops messages silently until a program is attached,
// so a notification can never block or fail its caller.
type Notifier struct {
	program atomic.Pointer[tea.Program]
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Attach binds the running program. Called once from main after the
// program is constructed.
func (n *Notifier) Attach(p *tea.Program) {
	n.program.Store(p)
}

func (n *Notifier) Notify(message string, ok bool) {
	if p := n.program.Load(); p != nil {
		p.Send(toastMsg{text: message, ok: ok})
	}
}

// toastStack is the process-wide toast host: created once with the model
// and reused for every notification for the life of the program.
type toastStack struct {
	toasts  []toast
	nextID  int
	dismiss time.Duration
}

func newToastStack(dismiss time.Duration) *toastStack {
	return &toastStack{dismiss: dismiss}
}

// push adds a toast and returns the command that expires it after the
// fixed dismissal delay.
func (s *toastStack) push(msg toastMsg) tea.Cmd {
	s.nextID++
	id := s.nextID
	s.toasts = append(s.toasts, toast{id: id, text: msg.text, ok: msg.ok})

	return tea.Tick(s.dismiss, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (s *toastStack) expire(id int) {
	for i, t := range s.toasts {
		if t.id == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

func (s *toastStack) view(width int) string {
	if len(s.toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		style := successToastStyle
		if !t.ok {
			style = failureToastStyle
		}
		lines = append(lines, style.Render(t.text))
	}

	block := lipgloss.JoinVertical(lipgloss.Right, lines...)
	if width > 0 {
		block = lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	}
	return block
}
