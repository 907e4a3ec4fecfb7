package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
)

type monthsMode int

const (
	monthsModeConsolidated monthsMode = iota
	monthsModeSeasonality
)

type monthsState int

const (
	monthsStateView monthsState = iota
	monthsStatePeriod
)

// MonthsModel renders the consolidated monthly table and the seasonality
// series. The seasonality mode ignores the year filter: it answers which
// months historically perform best across all years.
type MonthsModel struct {
	CommonModel
	svc *tracker.Service

	mode   monthsMode
	state  monthsState
	table  table.Model
	picker PeriodPicker
	sel    report.Selection
}

func NewMonthsModel(svc *tracker.Service) MonthsModel {
	m := MonthsModel{
		svc:    svc,
		picker: NewPeriodPicker(),
		sel:    report.Selection{Year: report.AllYears, Period: dateutil.PeriodYear},
	}
	m.rebuildTable()

	return m
}

func (m MonthsModel) Title() string { return "Consolidado Mensal" }

func (m MonthsModel) ShortHelp() string {
	if m.state == monthsStatePeriod {
		return "Enter: confirmar | Esc: voltar"
	}

	return "Esc: voltar | s: alternar sazonalidade | f: período"
}

func (m MonthsModel) Init() tea.Cmd {
	return nil
}

func newMonthsTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *MonthsModel) rebuildTable() {
	if m.mode == monthsModeSeasonality {
		series := report.Seasonality(m.svc.Transactions(), m.sel.Period)

		rows := make([]table.Row, 0, len(series))
		for _, e := range series {
			rows = append(rows, table.Row{e.Label, FormatAmount(e.Income)})
		}

		m.table = newMonthsTable([]table.Column{
			{Title: "Mês", Width: 14},
			{Title: "Receita histórica", Width: 20},
		}, len(rows)+1)
		m.table.SetRows(rows)

		return
	}

	txs := report.FilterTransactions(m.svc.Transactions(), m.sel)
	monthly, total := report.Consolidate(txs)

	rows := make([]table.Row, 0, len(monthly)+1)
	for _, r := range monthly {
		rows = append(rows, table.Row{
			r.Label,
			FormatAmount(r.IncomePaid),
			FormatAmount(r.IncomePending),
			FormatAmount(r.Expense),
			FormatAmount(r.Balance),
		})
	}

	rows = append(rows, table.Row{
		total.Label,
		FormatAmount(total.IncomePaid),
		FormatAmount(total.IncomePending),
		FormatAmount(total.Expense),
		FormatAmount(total.Balance),
	})

	m.table = newMonthsTable([]table.Column{
		{Title: "Mês", Width: 12},
		{Title: "Recebido", Width: 14},
		{Title: "A receber", Width: 14},
		{Title: "Despesas", Width: 14},
		{Title: "Saldo", Width: 14},
	}, 14)
	m.table.SetRows(rows)
}

func (m MonthsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sel, ok := msg.(PeriodSelectedMsg); ok {
		m.sel = sel.Selection
		m.state = monthsStateView
		m.rebuildTable()

		return m, nil
	}

	if m.state == monthsStatePeriod {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.state = monthsStateView
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
		case "s":
			if m.mode == monthsModeConsolidated {
				m.mode = monthsModeSeasonality
			} else {
				m.mode = monthsModeConsolidated
			}

			m.rebuildTable()

			return m, nil
		case "f":
			m.state = monthsStatePeriod
			m.picker.Reset()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m MonthsModel) View() string {
	if m.state == monthsStatePeriod {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	title := "Consolidado Mensal · " + SelectionLabel(m.sel)
	if m.mode == monthsModeSeasonality {
		title = fmt.Sprintf("Sazonalidade (todos os anos) · %s", PeriodLabel(m.sel.Period))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(headerStyle.Render(title)),
		tableView,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}
