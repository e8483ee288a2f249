package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suyatrade/console/internal/config"
	"github.com/suyatrade/console/internal/console"
	"github.com/suyatrade/console/internal/logger"
)

func newTestModel() Model {
	return NewModel(nil, nil, nil, nil, nil, &config.Config{}, logger.New("error", ""))
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestRefreshControlBusyLabel(t *testing.T) {
	m := newTestModel()
	assert.Contains(t, m.View(), refreshLabel)

	m = update(t, m, keyMsg("r"))
	assert.True(t, m.refreshBusy)
	view := m.View()
	assert.Contains(t, view, refreshBusyLabel, "control shows the busy label while a refresh is outstanding")
	assert.NotContains(t, view, refreshLabel)

	// A failed refresh carries no view; the label is still restored.
	m = update(t, m, accountRefreshedMsg{view: nil})
	assert.False(t, m.refreshBusy)
	view = m.View()
	assert.Contains(t, view, refreshLabel, "original label restored on the error path")
	assert.NotContains(t, view, refreshBusyLabel)
}

func TestRefreshControlRestoredOnSuccess(t *testing.T) {
	m := newTestModel()
	m = update(t, m, keyMsg("r"))
	assert.True(t, m.refreshBusy)

	m = update(t, m, accountRefreshedMsg{view: &console.AccountView{Deposit: "1,000,000 KRW"}})
	assert.False(t, m.refreshBusy)

	view := m.View()
	assert.Contains(t, view, refreshLabel)
	assert.NotContains(t, view, refreshBusyLabel)
	assert.Contains(t, view, "1,000,000 KRW", "fetched values are rendered alongside the restored label")
}

func TestRefreshFailureKeepsPreviousValues(t *testing.T) {
	m := newTestModel()
	m = update(t, m, accountRefreshedMsg{view: &console.AccountView{Deposit: "500 KRW"}})
	require.Contains(t, m.View(), "500 KRW")

	m = update(t, m, keyMsg("r"))
	m = update(t, m, accountRefreshedMsg{view: nil})
	assert.Contains(t, m.View(), "500 KRW", "a nil view leaves the last snapshot on screen")
}
