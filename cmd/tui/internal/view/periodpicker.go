package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/report"
)

var periodChoices = []struct {
	period dateutil.Period
	label  string
}{
	{dateutil.PeriodYear, "Ano Completo"},
	{dateutil.PeriodSemester1, "1º Semestre"},
	{dateutil.PeriodSemester2, "2º Semestre"},
	{dateutil.PeriodQuarter1, "1º Trimestre"},
	{dateutil.PeriodQuarter2, "2º Trimestre"},
	{dateutil.PeriodQuarter3, "3º Trimestre"},
	{dateutil.PeriodQuarter4, "4º Trimestre"},
}

// PeriodLabel returns the pt-BR label for a period selector.
func PeriodLabel(p dateutil.Period) string {
	for _, c := range periodChoices {
		if c.period == p {
			return c.label
		}
	}

	return "Ano Completo"
}

// SelectionLabel renders a full selection ("2024 · 1º Semestre").
func SelectionLabel(sel report.Selection) string {
	year := "Todos os anos"
	if sel.Year != report.AllYears {
		year = strconv.Itoa(sel.Year)
	}

	return fmt.Sprintf("%s · %s", year, PeriodLabel(sel.Period))
}

// PeriodSelectedMsg is emitted when the user confirms a selection.
type PeriodSelectedMsg struct {
	Selection report.Selection
}

type periodPickerState int

const (
	periodPickerStatePeriod periodPickerState = iota
	periodPickerStateYear
)

// PeriodPicker is a reusable component for choosing the report window:
// a year (or all years) plus a sub-period.
type PeriodPicker struct {
	state     periodPickerState
	cursor    int
	yearInput textinput.Model

	err error
}

func NewPeriodPicker() PeriodPicker {
	yi := textinput.New()
	yi.Placeholder = "2024 (vazio = todos)"
	yi.CharLimit = 4
	yi.Width = 20
	yi.Prompt = "Ano: "

	return PeriodPicker{yearInput: yi}
}

func (m PeriodPicker) Init() tea.Cmd {
	return nil
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == periodPickerStateYear {
			var cmd tea.Cmd
			m.yearInput, cmd = m.yearInput.Update(msg)

			return m, cmd
		}

		return m, nil
	}

	switch m.state {
	case periodPickerStatePeriod:
		return m.updatePeriod(keyMsg)
	case periodPickerStateYear:
		return m.updateYear(keyMsg)
	}

	return m, nil
}

func (m PeriodPicker) updatePeriod(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(periodChoices)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		m.state = periodPickerStateYear
		m.yearInput.Focus()

		return m, textinput.Blink
	}

	return m, nil
}

func (m PeriodPicker) updateYear(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.String() {
	case "enter":
		sel := report.Selection{
			Year:   report.AllYears,
			Period: periodChoices[m.cursor].period,
		}

		if v := m.yearInput.Value(); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1000 {
				m.err = fmt.Errorf("ano inválido (AAAA)")
				return m, nil
			}

			sel.Year = n
		}

		m.err = nil

		return m, func() tea.Msg {
			return PeriodSelectedMsg{Selection: sel}
		}

	case "esc":
		m.state = periodPickerStatePeriod
		m.err = nil
		m.yearInput.Blur()

		return m, nil
	}

	var cmd tea.Cmd
	m.yearInput, cmd = m.yearInput.Update(msg)

	return m, cmd
}

func (m PeriodPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("\n\nErro: %v", m.err))
	}

	if m.state == periodPickerStateYear {
		return fmt.Sprintf(
			"Período: %s\n\n%s\n\n(Enter confirma, Esc volta)%s",
			periodChoices[m.cursor].label,
			m.yearInput.View(),
			errStr,
		)
	}

	s := "Selecione o período:\n\n"
	for i, c := range periodChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, c.label)
	}

	s += "\n(Enter seleciona, Esc volta)"

	return s + errStr
}

// Reset returns the picker to its initial state.
func (m *PeriodPicker) Reset() {
	m.state = periodPickerStatePeriod
	m.cursor = 0
	m.err = nil
	m.yearInput.SetValue("")
	m.yearInput.Blur()
}
