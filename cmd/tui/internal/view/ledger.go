package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
	"github.com/mcastelo/palco/internal/transaction"
)

type ledgerState int

const (
	ledgerStateBrowse ledgerState = iota
	ledgerStateExpense
	ledgerStatePeriod
)

// LedgerModel lists the filtered transactions, marks pending entries as
// paid and hosts the quick expense form.
type LedgerModel struct {
	CommonModel
	svc *tracker.Service

	state  ledgerState
	table  table.Model
	picker PeriodPicker
	sel    report.Selection
	txs    []transaction.Transaction
	form   *huh.Form

	status string

	// Expense form bindings
	formDate        string
	formDescription string
	formAmount      string
	formCategory    string
	formPartner     string
	formRecurrent   bool
}

func NewLedgerModel(svc *tracker.Service) LedgerModel {
	columns := []table.Column{
		{Title: "Data", Width: 12},
		{Title: "Descrição", Width: 34},
		{Title: "Categoria", Width: 18},
		{Title: "Valor", Width: 14},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
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

	m := LedgerModel{
		svc:    svc,
		table:  t,
		picker: NewPeriodPicker(),
		sel:    report.Selection{Year: report.AllYears, Period: dateutil.PeriodYear},
	}
	m.refreshTable()

	return m
}

func (m LedgerModel) Title() string { return "Lançamentos" }

func (m LedgerModel) ShortHelp() string {
	switch m.state {
	case ledgerStateExpense:
		return "Navegue pelo formulário | Esc: cancelar"
	case ledgerStatePeriod:
		return "Enter: confirmar | Esc: voltar"
	}

	return "Esc: voltar | d: nova despesa | p: marcar pago | f: período | r: atualizar"
}

func (m LedgerModel) Init() tea.Cmd {
	return nil
}

func (m *LedgerModel) refreshTable() {
	m.txs = report.FilterTransactions(m.svc.Transactions(), m.sel)
	today := dateutil.Today()

	rows := make([]table.Row, 0, len(m.txs))
	for _, t := range m.txs {
		amount := FormatAmount(t.Amount)
		if t.Type == transaction.TypeExpense {
			amount = "-" + amount
		}

		status := "pago"
		if t.Status == transaction.StatusPending {
			status = "pendente"
			if t.Overdue(today) {
				status = "atrasado"
			}
		}

		rows = append(rows, table.Row{t.Date, t.Description, t.Category, amount, status})
	}

	m.table.SetRows(rows)
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PeriodSelectedMsg:
		m.sel = msg.Selection
		m.state = ledgerStateBrowse
		m.table.Focus()
		m.refreshTable()

		return m, nil

	case ledgerSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = ledgerStateBrowse
		m.form = nil
		m.table.Focus()
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case ledgerStateBrowse:
		return m.updateBrowse(msg)
	case ledgerStateExpense:
		return m.updateExpense(msg)
	case ledgerStatePeriod:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.state = ledgerStateBrowse
			m.table.Focus()

			return m, nil
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m LedgerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.refreshTable()
			return m, nil
		case "f":
			m.state = ledgerStatePeriod
			m.picker.Reset()
			m.table.Blur()

			return m, nil
		case "d":
			return m.enterExpenseForm()
		case "p":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.txs) {
				return m, nil
			}

			tx := m.txs[idx]
			if tx.Status != transaction.StatusPending {
				m.status = "Lançamento já está pago."
				return m, nil
			}

			return m, m.markPaidCmd(tx.ID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LedgerModel) enterExpenseForm() (tea.Model, tea.Cmd) {
	m.formDate = dateutil.Today()
	m.formDescription = ""
	m.formAmount = ""
	m.formCategory = "Transporte"
	m.formPartner = ""
	m.formRecurrent = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data").
				Placeholder("AAAA-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if !dateutil.Valid(s) {
						return fmt.Errorf("data inválida (AAAA-MM-DD)")
					}

					return nil
				}),
			huh.NewInput().
				Title("Descrição").
				Value(&m.formDescription).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("descrição é obrigatória")
					}

					return nil
				}),
			huh.NewInput().
				Title("Valor (R$)").
				Placeholder("45,90").
				Value(&m.formAmount),
			huh.NewInput().Title("Categoria").Value(&m.formCategory),
			huh.NewInput().Title("Pago a").Placeholder("Outros").Value(&m.formPartner),
			huh.NewConfirm().Title("Despesa recorrente?").Value(&m.formRecurrent),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = ledgerStateExpense
	m.table.Blur()

	return m, m.form.Init()
}

func (m LedgerModel) updateExpense(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ledgerStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveExpenseCmd()
}

type ledgerSavedMsg struct {
	status string
	err    error
}

func (m LedgerModel) saveExpenseCmd() tea.Cmd {
	params := tracker.ExpenseParams{
		Date:        m.formDate,
		Description: m.formDescription,
		Amount:      casting.ParseFee(m.formAmount),
		Category:    m.formCategory,
		Partner:     m.formPartner,
		IsRecurrent: m.formRecurrent,
	}

	return func() tea.Msg {
		ctx, cancel := SaveCtx()
		defer cancel()

		if _, err := m.svc.AddExpense(ctx, params); err != nil {
			return ledgerSavedMsg{err: err}
		}

		return ledgerSavedMsg{status: "Despesa registrada."}
	}
}

func (m LedgerModel) markPaidCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SaveCtx()
		defer cancel()

		if err := m.svc.MarkPaid(ctx, id); err != nil {
			return ledgerSavedMsg{err: err}
		}

		return ledgerSavedMsg{status: "Lançamento marcado como pago."}
	}
}

func (m LedgerModel) View() string {
	if m.state == ledgerStatePeriod {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	if m.state == ledgerStateExpense && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render("Nova Despesa\n\n" + m.form.View())

		return lipgloss.NewStyle().Padding(1).Render(panel)
	}

	header := lipgloss.NewStyle().PaddingBottom(1).Render("Período: " + SelectionLabel(m.sel))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left, header, tableView)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
