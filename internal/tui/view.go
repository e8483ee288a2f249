package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.renderTab()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("shift+←/→ switch tab · tab/↑/↓ move · space/enter activate · ctrl+c quit"))

	if overlay := m.toasts.view(m.width); overlay != "" {
		b.WriteString("\n")
		b.WriteString(overlay)
	}

	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(tabTitles)+1)
	for i, title := range tabTitles {
		if tabID(i) == m.tab {
			parts = append(parts, activeTabStyle.Render(title))
		} else {
			parts = append(parts, tabStyle.Render(title))
		}
	}
	parts = append(parts, helpStyle.Render("backend: "+m.healthLabel))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}

func (m Model) renderTab() string {
	switch m.tab {
	case tabAccount:
		return m.renderAccount()
	case tabStrategy:
		return titleStyle.Render("Strategy settings") + "\n" + m.strategyForm.view()
	case tabTelegram:
		return titleStyle.Render("Telegram notifications") + "\n" + m.telegramForm.view()
	case tabOrders:
		return titleStyle.Render("Manual orders") + "\n" + m.orderForm.view()
	default:
		return titleStyle.Render("Diagnostics") + "\n" + m.diagForm.view()
	}
}

func (m Model) renderAccount() string {
	rows := []string{titleStyle.Render("Account summary")}

	display := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return "  " + labelStyle.Render(label) + valueStyle.Render(value)
	}

	rows = append(rows,
		display("Deposit", m.accountView.Deposit),
		display("Orderable cash", m.accountView.Orderable),
		display("Today realized P/L", m.accountView.TodayRealized),
		display("Total purchase", m.accountView.TotalPurchase),
		display("Total evaluation", m.accountView.TotalEval),
		display("Total P/L", m.accountView.TotalPL),
		display("Total return", m.accountView.TotalReturn),
	)

	if m.accountView.Partial {
		rows = append(rows, failureToastStyle.Render("partial data"))
	}

	label := refreshLabel
	if m.refreshBusy {
		label = refreshBusyLabel
	}
	rows = append(rows, "", focusStyle.Render("[ "+label+" ]")+helpStyle.Render("  (r / enter)"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
