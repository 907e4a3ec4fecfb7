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
	"github.com/mcastelo/palco/internal/tracker"
)

type castingsState int

const (
	castingsStateBrowse castingsState = iota
	castingsStateForm
)

var statusLabels = map[casting.Status]string{
	casting.StatusInProgress:  "Em andamento",
	casting.StatusApproved:    "Aprovado",
	casting.StatusNotApproved: "Não aprovado",
}

// CastingsModel lists castings and hosts the create/edit form. Saving a
// casting that just turned approved generates its pending income entries.
type CastingsModel struct {
	CommonModel
	svc *tracker.Service

	state    castingsState
	table    table.Model
	castings []casting.Casting
	form     *huh.Form
	editing  *casting.Casting

	status string

	// Form bindings
	formClient     string
	formProduction string
	formAgency     string
	formBooker     string
	formExclusive  string
	formUsage      string
	formNotes      string

	formDateCasting string
	formDateTest    string
	formShooting    string

	formFeeJob      string
	formJobPayment  string
	formHasTestFee  bool
	formFeeTest     string
	formTestPayment string

	formStatus   casting.Status
	formIsEdited bool
}

func NewCastingsModel(svc *tracker.Service) CastingsModel {
	columns := []table.Column{
		{Title: "Data", Width: 12},
		{Title: "Cliente", Width: 28},
		{Title: "Agência", Width: 20},
		{Title: "Status", Width: 14},
		{Title: "Cachê", Width: 14},
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

	m := CastingsModel{svc: svc, table: t}
	m.refreshTable()

	return m
}

func (m CastingsModel) Title() string { return "Castings" }

func (m CastingsModel) ShortHelp() string {
	if m.state == castingsStateForm {
		return "Navegue pelo formulário | Esc: cancelar"
	}

	return "Esc: voltar | n: novo | e: editar | r: atualizar"
}

func (m CastingsModel) Init() tea.Cmd {
	return nil
}

func (m *CastingsModel) refreshTable() {
	m.castings = m.svc.Castings()

	rows := make([]table.Row, 0, len(m.castings))
	for _, c := range m.castings {
		rows = append(rows, table.Row{
			c.DateCasting,
			c.Client,
			c.Agency,
			statusLabels[c.Status],
			FormatAmount(c.FeeJob),
		})
	}

	m.table.SetRows(rows)
}

func (m CastingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case castingSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao salvar: %v", msg.err)
		} else if msg.created > 0 {
			m.status = fmt.Sprintf("Casting salvo. %d lançamento(s) pendente(s) criado(s).", msg.created)
		} else {
			m.status = "Casting salvo."
		}

		m.state = castingsStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case castingsStateBrowse:
		return m.updateBrowse(msg)
	case castingsStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m CastingsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.refreshTable()
			return m, nil
		case "n":
			return m.enterForm(nil)
		case "e", "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.castings) {
				return m, nil
			}

			c := m.castings[idx]

			return m.enterForm(&c)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CastingsModel) enterForm(prev *casting.Casting) (tea.Model, tea.Cmd) {
	m.editing = prev

	if prev != nil {
		m.formClient = prev.Client
		m.formProduction = prev.ProductionCompany
		m.formAgency = prev.Agency
		m.formBooker = prev.Booker
		m.formExclusive = prev.Exclusivity
		m.formUsage = prev.UsagePeriod
		m.formNotes = prev.Notes
		m.formDateCasting = prev.DateCasting
		m.formDateTest = prev.DateTest
		m.formShooting = strings.Join(prev.DateShooting, ",")
		m.formFeeJob = fmt.Sprintf("%.2f", prev.FeeJob)
		m.formJobPayment = prev.DateJobPayment
		m.formHasTestFee = prev.HasTestFee
		m.formFeeTest = fmt.Sprintf("%.2f", prev.FeeTest)
		m.formTestPayment = prev.DateTestPayment
		m.formStatus = prev.Status
		m.formIsEdited = prev.IsEdited
	} else {
		m.formClient = ""
		m.formProduction = ""
		m.formAgency = ""
		m.formBooker = ""
		m.formExclusive = ""
		m.formUsage = ""
		m.formNotes = ""
		m.formDateCasting = dateutil.Today()
		m.formDateTest = ""
		m.formShooting = ""
		m.formFeeJob = ""
		m.formJobPayment = ""
		m.formHasTestFee = false
		m.formFeeTest = ""
		m.formTestPayment = ""
		m.formStatus = casting.StatusInProgress
		m.formIsEdited = false
	}

	requiredDate := func(s string) error {
		if !dateutil.Valid(s) {
			return fmt.Errorf("data inválida (AAAA-MM-DD)")
		}

		return nil
	}

	optionalDate := func(s string) error {
		if s == "" {
			return nil
		}

		return requiredDate(s)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cliente / Marca").
				Value(&m.formClient).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("cliente é obrigatório")
					}

					return nil
				}),
			huh.NewInput().
				Title("Agência").
				Value(&m.formAgency).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("agência é obrigatória")
					}

					return nil
				}),
			huh.NewInput().Title("Produtora").Value(&m.formProduction),
			huh.NewInput().Title("Booker").Value(&m.formBooker),
			huh.NewInput().Title("Exclusividade").Value(&m.formExclusive),
			huh.NewInput().Title("Período de uso").Value(&m.formUsage),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Data do casting").
				Placeholder("AAAA-MM-DD").
				Value(&m.formDateCasting).
				Validate(requiredDate),
			huh.NewInput().
				Title("Data do teste").
				Placeholder("AAAA-MM-DD").
				Value(&m.formDateTest).
				Validate(optionalDate),
			huh.NewInput().
				Title("Datas de filmagem").
				Description("separadas por vírgula, pelo menos uma").
				Placeholder("AAAA-MM-DD,AAAA-MM-DD").
				Value(&m.formShooting).
				Validate(func(s string) error {
					dates := splitDates(s)
					if len(dates) == 0 {
						return fmt.Errorf("pelo menos uma data de filmagem")
					}

					for _, d := range dates {
						if !dateutil.Valid(d) {
							return fmt.Errorf("data inválida: %s", d)
						}
					}

					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Cachê do job (R$)").
				Placeholder("5000 ou 5.000,00").
				Value(&m.formFeeJob),
			huh.NewInput().
				Title("Previsão de pagamento do job").
				Description("vazio = última filmagem + 30 dias").
				Value(&m.formJobPayment).
				Validate(optionalDate),
			huh.NewConfirm().
				Title("Tem cachê de teste?").
				Value(&m.formHasTestFee),
			huh.NewInput().
				Title("Cachê do teste (R$)").
				Value(&m.formFeeTest),
			huh.NewInput().
				Title("Previsão de pagamento do teste").
				Description("vazio = teste + 15 dias").
				Value(&m.formTestPayment).
				Validate(optionalDate),
		),
		huh.NewGroup(
			huh.NewSelect[casting.Status]().
				Title("Status").
				Options(
					huh.NewOption(statusLabels[casting.StatusInProgress], casting.StatusInProgress),
					huh.NewOption(statusLabels[casting.StatusApproved], casting.StatusApproved),
					huh.NewOption(statusLabels[casting.StatusNotApproved], casting.StatusNotApproved),
				).
				Value(&m.formStatus),
			huh.NewConfirm().
				Title("Callback / shortlist?").
				Value(&m.formIsEdited),
			huh.NewInput().Title("Observações").Value(&m.formNotes),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = castingsStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m CastingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = castingsStateBrowse
			m.form = nil
			m.editing = nil
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

	return m, m.saveCmd()
}

func splitDates(s string) []string {
	var dates []string

	for _, part := range strings.Split(s, ",") {
		if d := strings.TrimSpace(part); d != "" {
			dates = append(dates, d)
		}
	}

	return dates
}

// buildCasting assembles the entity from the form bindings. Empty payment
// dates are recomputed from their dependency dates so the prediction is
// stored with the casting.
func (m CastingsModel) buildCasting() casting.Casting {
	c := casting.Casting{
		Client:            m.formClient,
		ProductionCompany: m.formProduction,
		Agency:            m.formAgency,
		Booker:            m.formBooker,
		Exclusivity:       m.formExclusive,
		UsagePeriod:       m.formUsage,
		Notes:             m.formNotes,
		DateCasting:       m.formDateCasting,
		DateTest:          m.formDateTest,
		FeeJob:            casting.ParseFee(m.formFeeJob),
		DateJobPayment:    m.formJobPayment,
		HasTestFee:        m.formHasTestFee,
		FeeTest:           casting.ParseFee(m.formFeeTest),
		DateTestPayment:   m.formTestPayment,
		Status:            m.formStatus,
		IsEdited:          m.formIsEdited,
	}

	if m.editing != nil {
		c.ID = m.editing.ID
		c.DateCallback = m.editing.DateCallback
		c.DatePPM = m.editing.DatePPM
		c.DateFitting = m.editing.DateFitting
	}

	for _, d := range splitDates(m.formShooting) {
		c.AddShootingDate(d)
	}

	if c.DateJobPayment == "" {
		c.DateJobPayment = c.PredictJobPayment()
	}

	if c.HasTestFee && c.DateTestPayment == "" {
		c.DateTestPayment = c.PredictTestPayment()
	}

	return c
}

type castingSavedMsg struct {
	created int
	err     error
}

func (m CastingsModel) saveCmd() tea.Cmd {
	next := m.buildCasting()
	prev := m.editing

	return func() tea.Msg {
		ctx, cancel := SaveCtx()
		defer cancel()

		_, created, err := m.svc.SaveCasting(ctx, prev, next)

		return castingSavedMsg{created: created, err: err}
	}
}

func (m CastingsModel) View() string {
	if m.state == castingsStateForm && m.form != nil {
		title := "Novo Casting"
		if m.editing != nil {
			title = "Editar Casting"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		return lipgloss.NewStyle().Padding(1).Render(panel)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
