package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 3 * time.Second

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toast struct {
	id   int
	text string
	kind toastKind
}

type toastExpiredMsg struct {
	id int
}

// showToast replaces the current toast and schedules its expiry. A newer
// toast survives the expiry of an older one because ids never repeat.
func (m *Model) showToast(text string, kind toastKind) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toast = toast{id: id, text: text, kind: kind}
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) expireToast(id int) {
	if m.toast.id == id {
		m.toast = toast{}
	}
}

func (m *Model) renderToast() string {
	if m.toast.text == "" {
		return ""
	}
	if m.toast.kind == toastError {
		return toastErrorStyle.Render("✗ " + m.toast.text)
	}
	return toastSuccessStyle.Render("✓ " + m.toast.text)
}
