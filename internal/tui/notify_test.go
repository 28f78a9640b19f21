package tui

import (
	"strings"
	"testing"
)

func TestNotice_LifecycleExpireThenGone(t *testing.T) {
	m := newAppModel(nil, "alice")

	cmd := (&m).pushNotice(noticeSuccess, "Task created successfully!")
	if cmd == nil {
		t.Fatalf("pushNotice must schedule the expiry tick")
	}
	if len(m.notices) != 1 || m.notices[0].leaving {
		t.Fatalf("notice should be visible and not leaving: %+v", m.notices)
	}
	seq := m.notices[0].seq

	exitCmd, handled := (&m).handleNoticeMsg(noticeExpireMsg{seq: seq})
	if !handled || exitCmd == nil {
		t.Fatalf("expire must be handled and schedule the exit tick")
	}
	if !m.notices[0].leaving {
		t.Fatalf("expired notice should be in the leaving state")
	}

	_, handled = (&m).handleNoticeMsg(noticeGoneMsg{seq: seq})
	if !handled {
		t.Fatalf("gone must be handled")
	}
	if len(m.notices) != 0 {
		t.Fatalf("gone notice should be removed, have %d", len(m.notices))
	}
}

func TestNotice_EachBannerDismissesIndependently(t *testing.T) {
	m := newAppModel(nil, "alice")
	(&m).pushNotice(noticeSuccess, "first")
	(&m).pushNotice(noticeError, "second")

	if len(m.notices) != 2 {
		t.Fatalf("notices should stack, have %d", len(m.notices))
	}
	first := m.notices[0].seq

	(&m).handleNoticeMsg(noticeExpireMsg{seq: first})
	(&m).handleNoticeMsg(noticeGoneMsg{seq: first})

	if len(m.notices) != 1 || m.notices[0].text != "second" {
		t.Fatalf("removing the first banner must not touch the second: %+v", m.notices)
	}
}

func TestNotice_StaleExpiryIsIgnored(t *testing.T) {
	m := newAppModel(nil, "alice")
	(&m).pushNotice(noticeSuccess, "only")
	seq := m.notices[0].seq

	(&m).handleNoticeMsg(noticeExpireMsg{seq: seq})
	(&m).handleNoticeMsg(noticeGoneMsg{seq: seq})

	// A timer firing after its banner is gone must not panic or resurrect it.
	cmd, handled := (&m).handleNoticeMsg(noticeExpireMsg{seq: seq})
	if !handled || cmd != nil {
		t.Fatalf("stale expire should be swallowed, handled=%v cmd=%v", handled, cmd)
	}
	if len(m.notices) != 0 {
		t.Fatalf("stale expire resurrected a notice: %+v", m.notices)
	}
}

func TestRenderNotices_EmptyAndNarrow(t *testing.T) {
	if out := renderNotices(nil, 80); out != "" {
		t.Fatalf("no notices should render nothing, got %q", out)
	}
	if out := renderNotices([]notice{{seq: 1, text: "hi"}}, 10); out != "" {
		t.Fatalf("too-narrow terminal should render nothing, got %q", out)
	}
}

func TestRenderNotices_ShowsText(t *testing.T) {
	out := renderNotices([]notice{
		{seq: 1, kind: noticeSuccess, text: "Task deleted successfully!"},
		{seq: 2, kind: noticeError, text: "Failed to load tasks"},
	}, 80)
	if !strings.Contains(out, "Task deleted successfully!") || !strings.Contains(out, "Failed to load tasks") {
		t.Fatalf("banner text missing from render:\n%s", out)
	}
}
