package view

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
)

type agendaState int

const (
	agendaStateView agendaState = iota
	agendaStatePeriod
)

var eventKindLabels = map[report.EventKind]string{
	report.EventFitting:     "Prova",
	report.EventPPM:         "PPM",
	report.EventShooting:    "Gravação",
	report.EventPaymentJob:  "Pagamento job",
	report.EventPaymentTest: "Pagamento teste",
}

// AgendaModel lists the calendar events extracted from the castings:
// fittings, PPMs, shoot days and expected payment dates.
type AgendaModel struct {
	CommonModel
	svc *tracker.Service

	state  agendaState
	table  table.Model
	picker PeriodPicker
	sel    report.Selection
}

func NewAgendaModel(svc *tracker.Service) AgendaModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Data", Width: 12},
			{Title: "Evento", Width: 36},
			{Title: "Tipo", Width: 16},
			{Title: "Valor", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
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

	m := AgendaModel{
		svc:    svc,
		table:  t,
		picker: NewPeriodPicker(),
		sel:    report.Selection{Year: report.AllYears, Period: dateutil.PeriodYear},
	}
	m.refreshTable()

	return m
}

func (m AgendaModel) Title() string { return "Agenda" }

func (m AgendaModel) ShortHelp() string {
	if m.state == agendaStatePeriod {
		return "Enter: confirmar | Esc: voltar"
	}

	return "Esc: voltar | f: período | r: atualizar"
}

func (m AgendaModel) Init() tea.Cmd {
	return nil
}

func (m *AgendaModel) refreshTable() {
	events := report.FilterEvents(report.Agenda(m.svc.Castings()), m.sel)

	rows := make([]table.Row, 0, len(events))
	for _, e := range events {
		amount := ""
		if e.Amount > 0 {
			amount = FormatAmount(e.Amount)
		}

		rows = append(rows, table.Row{e.Date, e.Title, eventKindLabels[e.Kind], amount})
	}

	m.table.SetRows(rows)
}

func (m AgendaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sel, ok := msg.(PeriodSelectedMsg); ok {
		m.sel = sel.Selection
		m.state = agendaStateView
		m.refreshTable()

		return m, nil
	}

	if m.state == agendaStatePeriod {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.state = agendaStateView
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
			m.state = agendaStatePeriod
			m.picker.Reset()

			return m, nil
		case "r":
			m.refreshTable()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AgendaModel) View() string {
	if m.state == agendaStatePeriod {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	header := lipgloss.NewStyle().PaddingBottom(1).Render(headerStyle.Render("Agenda · " + SelectionLabel(m.sel)))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, header, tableView))
}
