package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
)

type dashboardState int

const (
	dashboardStateView dashboardState = iota
	dashboardStatePeriod
)

// DashboardModel shows the summary stats, the casting funnel and the top
// agencies for the selected window.
type DashboardModel struct {
	CommonModel
	svc *tracker.Service

	state  dashboardState
	picker PeriodPicker
	sel    report.Selection

	summary  report.Summary
	funnel   report.Funnel
	partners []report.PartnerStat
}

func NewDashboardModel(svc *tracker.Service) DashboardModel {
	m := DashboardModel{
		svc:    svc,
		picker: NewPeriodPicker(),
		sel:    report.Selection{Year: report.AllYears, Period: dateutil.PeriodYear},
	}
	m.refresh()

	return m
}

func (m DashboardModel) Title() string { return "Painel" }

func (m DashboardModel) ShortHelp() string {
	if m.state == dashboardStatePeriod {
		return "Enter: confirmar | Esc: voltar"
	}

	return "Esc: voltar | f: período | r: atualizar"
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m *DashboardModel) refresh() {
	txs := report.FilterTransactions(m.svc.Transactions(), m.sel)
	cs := report.FilterCastings(m.svc.Castings(), m.sel)

	m.summary = report.Summarize(txs, dateutil.Today())
	m.funnel = report.FunnelOf(cs)
	m.partners = report.TopPartners(cs, 5)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sel, ok := msg.(PeriodSelectedMsg); ok {
		m.sel = sel.Selection
		m.state = dashboardStateView
		m.refresh()

		return m, nil
	}

	if m.state == dashboardStatePeriod {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.state = dashboardStateView
			return m, nil
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "f":
			m.state = dashboardStatePeriod
			m.picker.Reset()

			return m, nil
		case "r":
			m.refresh()
			return m, nil
		}
	}

	return m, nil
}

var (
	statBoxStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(24)

	statTitleStyle = lipgloss.NewStyle().Faint(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

func statBox(title, value string) string {
	return statBoxStyle.Render(statTitleStyle.Render(title) + "\n" + value)
}

func (m DashboardModel) View() string {
	if m.state == dashboardStatePeriod {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statBox("Recebido", FormatAmount(m.summary.TotalIncome)),
		statBox("A Receber", FormatAmount(m.summary.PendingIncome)),
		statBox("Atrasado", FormatAmount(m.summary.OverdueIncome)),
	)

	stats2 := lipgloss.JoinHorizontal(lipgloss.Top,
		statBox("Despesas", FormatAmount(m.summary.TotalExpense)),
		statBox("Saldo", FormatAmount(m.summary.Balance)),
	)

	funnel := fmt.Sprintf(
		"Funil de Castings\n  Total: %d | Callback: %d | Aprovados: %d | Não aprovados: %d\n  Taxa de aprovação: %s",
		m.funnel.Total, m.funnel.Edited, m.funnel.Approved, m.funnel.NotApproved,
		FormatPercent(m.funnel.ApprovalRate),
	)

	var partners strings.Builder
	partners.WriteString("Principais Agências\n")

	if len(m.partners) == 0 {
		partners.WriteString("  (sem dados no período)")
	}

	for i, p := range m.partners {
		partners.WriteString(fmt.Sprintf("  %d. %s: %s em jobs, %d castings, %s aprovação\n",
			i+1, p.Name, FormatAmount(p.TotalValue), p.Count, FormatPercent(p.ApprovalRate)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Painel · "+SelectionLabel(m.sel)),
		"",
		stats,
		stats2,
		"",
		funnel,
		"",
		partners.String(),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}
