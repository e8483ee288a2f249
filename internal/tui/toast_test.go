package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastStackPushAndExpire(t *testing.T) {
	s := newToastStack(time.Second)

	cmd := s.push(toastMsg{text: "saved", ok: true})
	require.NotNil(t, cmd, "push schedules the expiry tick")
	s.push(toastMsg{text: "failed", ok: false})

	view := s.view(80)
	assert.Contains(t, view, "saved")
	assert.Contains(t, view, "failed")

	s.expire(1)
	view = s.view(80)
	assert.NotContains(t, view, "saved")
	assert.Contains(t, view, "failed")

	s.expire(2)
	assert.Empty(t, s.view(80))
}

func TestToastExpireUnknownID(t *testing.T) {
	s := newToastStack(time.Second)
	s.push(toastMsg{text: "keep", ok: true})
	s.expire(99)
	assert.Contains(t, s.view(80), "keep")
}

func TestNotifierDropsWhenUnattached(t *testing.T) {
	n := NewNotifier()
	assert.NotPanics(t, func() { n.Notify("early", true) })
}
