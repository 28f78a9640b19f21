package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Ephemeral success/error banners pinned to the top-right corner. Each notice
// owns its dismissal timer; there is no shared queue and no rate limiting, so
// several can stack.

const (
	noticeVisibleFor = 3 * time.Second
	noticeExitFor    = 300 * time.Millisecond
)

type noticeKind int

const (
	noticeSuccess noticeKind = iota
	noticeError
)

type notice struct {
	seq     int
	kind    noticeKind
	text    string
	leaving bool // in the exit transition
}

type noticeExpireMsg struct{ seq int }
type noticeGoneMsg struct{ seq int }

// pushNotice appends a banner and schedules its expiry.
func (m *appModel) pushNotice(kind noticeKind, text string) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.notices = append(m.notices, notice{seq: seq, kind: kind, text: text})
	return tea.Tick(noticeVisibleFor, func(time.Time) tea.Msg { return noticeExpireMsg{seq: seq} })
}

// handleNoticeMsg advances a single notice through expire -> gone.
func (m *appModel) handleNoticeMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case noticeExpireMsg:
		for i := range m.notices {
			if m.notices[i].seq == msg.seq {
				m.notices[i].leaving = true
				seq := msg.seq
				return tea.Tick(noticeExitFor, func(time.Time) tea.Msg { return noticeGoneMsg{seq: seq} }), true
			}
		}
		return nil, true
	case noticeGoneMsg:
		kept := m.notices[:0]
		for _, n := range m.notices {
			if n.seq != msg.seq {
				kept = append(kept, n)
			}
		}
		m.notices = kept
		return nil, true
	}
	return nil, false
}

// renderNotices draws the banner stack right-aligned across the given width.
// Returns "" when nothing is showing.
func renderNotices(notices []notice, width int) string {
	if len(notices) == 0 || width < 16 {
		return ""
	}
	success := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorNoticeFg).
		Background(colorNoticeSuccessBg).
		Bold(true)
	errSt := success.Background(colorNoticeErrorBg)

	lines := make([]string, 0, len(notices))
	for _, n := range notices {
		st := success
		if n.kind == noticeError {
			st = errSt
		}
		if n.leaving {
			st = st.Bold(false).Faint(true)
		}
		banner := st.Render(truncateToWidth(n.text, width-4))
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, banner))
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}
