package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/suyatrade/console/internal/config"
	"github.com/suyatrade/console/internal/console"
	"github.com/suyatrade/console/internal/logger"
)

type tabID int

const (
	tabAccount tabID = iota
	tabStrategy
	tabTelegram
	tabOrders
	tabDiagnostics
)

var tabTitles = []string{"Account", "Strategy", "Telegram", "Orders", "Diagnostics"}

const refreshLabel = "Refresh balance"
const refreshBusyLabel = "Fetching…"

type accountRefreshedMsg struct {
	view *console.AccountView
}

type generalLoadedMsg struct {
	form *console.GeneralForm
}

type telegramLoadedMsg struct {
	form *console.TelegramForm
}

type statusLabelMsg struct {
	label string
}

// Model is the root bubbletea model: tab state, per-tab forms, the
// account display values, and the toast host. Every operator action runs
// as one tea.Cmd; the only mutable state shared with those commands is
// the refresher's own in-flight flag.
type Model struct {
	account   *console.AccountSync
	general   *console.GeneralSync
	telegram  *console.TelegramSync
	orders    *console.OrderSubmitter
	probe     *console.Probe
	logger    *logger.Logger

	tab    tabID
	width  int
	height int

	accountView console.AccountView
	refreshBusy bool

	strategyForm *form
	telegramForm *form
	orderForm    *form
	diagForm     *form

	healthLabel string
	toasts      *toastStack
}

func NewModel(
	account *console.AccountSync,
	general *console.GeneralSync,
	telegram *console.TelegramSync,
	orders *console.OrderSubmitter,
	probe *console.Probe,
	cfg *config.Config,
	log *logger.Logger,
) Model {
	return Model{
		account:      account,
		general:      general,
		telegram:     telegram,
		orders:       orders,
		probe:        probe,
		logger:       log,
		strategyForm: newStrategyForm(),
		telegramForm: newTelegramForm(),
		orderForm:    newOrderForm(),
		diagForm:     newDiagForm(),
		healthLabel:  "unknown",
		toasts:       newToastStack(cfg.ToastDuration()),
	}
}

// Init probes the backend and hydrates both settings forms.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pingCmd(), m.loadGeneralCmd(), m.loadTelegramCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastMsg:
		return m, m.toasts.push(msg)

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil

	case accountRefreshedMsg:
		m.refreshBusy = false
		if msg.view != nil {
			m.accountView = *msg.view
		}
		return m, nil

	case generalLoadedMsg:
		if msg.form != nil {
			applyGeneralForm(m.strategyForm, msg.form)
		}
		return m, nil

	case telegramLoadedMsg:
		if msg.form != nil {
			applyTelegramForm(m.telegramForm, msg.form)
		}
		return m, nil

	case statusLabelMsg:
		if msg.label != "" {
			m.healthLabel = msg.label
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "shift+right":
		m.tab = (m.tab + 1) % tabID(len(tabTitles))
		return m, nil
	case "shift+left":
		m.tab = (m.tab + tabID(len(tabTitles)) - 1) % tabID(len(tabTitles))
		return m, nil
	}

	switch m.tab {
	case tabAccount:
		switch msg.String() {
		case "r", "enter", " ":
			return m, m.triggerRefresh()
		}
		return m, nil
	case tabStrategy:
		cmd, action := m.strategyForm.update(msg)
		if action == actionSaveGeneral {
			return m, m.saveGeneralCmd()
		}
		return m, cmd
	case tabTelegram:
		cmd, action := m.telegramForm.update(msg)
		if action == actionSaveTelegram {
			return m, m.saveTelegramCmd()
		}
		return m, cmd
	case tabOrders:
		cmd, action := m.orderForm.update(msg)
		switch action {
		case actionSubmitBuy:
			return m, m.submitOrderCmd(console.SideBuy)
		case actionSubmitSell:
			return m, m.submitOrderCmd(console.SideSell)
		}
		return m, cmd
	default:
		cmd, action := m.diagForm.update(msg)
		switch action {
		case actionPing:
			return m, m.pingCmd()
		case actionCheckToken:
			return m, m.checkTokenCmd()
		case actionIssueToken:
			return m, m.issueTokenCmd()
		}
		return m, cmd
	}
}

// triggerRefresh disables the refresh control for the duration of the
// fetch. The synchronizer's own single-flight guard makes a duplicate
// trigger a no-op, so the busy state can only be cleared by the one
// outstanding refresh completing.
func (m *Model) triggerRefresh() tea.Cmd {
	if !m.refreshBusy {
		m.refreshBusy = true
	}
	return func() tea.Msg {
		view, err := m.account.Refresh(context.Background())
		if errors.Is(err, console.ErrRefreshInFlight) {
			return nil
		}
		return accountRefreshedMsg{view: view}
	}
}

func (m Model) pingCmd() tea.Cmd {
	return func() tea.Msg {
		return statusLabelMsg{label: m.probe.Ping(context.Background())}
	}
}

func (m Model) checkTokenCmd() tea.Cmd {
	return func() tea.Msg {
		return statusLabelMsg{label: m.probe.CheckToken(context.Background())}
	}
}

func (m Model) issueTokenCmd() tea.Cmd {
	return func() tea.Msg {
		return statusLabelMsg{label: m.probe.IssueToken(context.Background())}
	}
}

func (m Model) loadGeneralCmd() tea.Cmd {
	return func() tea.Msg {
		form, err := m.general.Load(context.Background())
		if err != nil {
			return nil
		}
		return generalLoadedMsg{form: form}
	}
}

func (m Model) loadTelegramCmd() tea.Cmd {
	return func() tea.Msg {
		form, err := m.telegram.Load(context.Background())
		if err != nil || form == nil {
			return nil
		}
		return telegramLoadedMsg{form: form}
	}
}

func (m Model) saveGeneralCmd() tea.Cmd {
	form := toGeneralForm(m.strategyForm)
	return func() tea.Msg {
		_ = m.general.Save(context.Background(), form)
		return nil
	}
}

func (m Model) saveTelegramCmd() tea.Cmd {
	form := toTelegramForm(m.telegramForm)
	return func() tea.Msg {
		_ = m.telegram.Save(context.Background(), form)
		return nil
	}
}

func (m Model) submitOrderCmd(side console.Side) tea.Cmd {
	form := toOrderForm(m.orderForm, side)
	return func() tea.Msg {
		_ = m.orders.Submit(context.Background(), side, form)
		return nil
	}
}
