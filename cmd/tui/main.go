package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/mcastelo/palco/cmd/tui/internal/view"
	"github.com/mcastelo/palco/internal/blob/postgres"
	"github.com/mcastelo/palco/internal/config"
	"github.com/mcastelo/palco/internal/database"
	"github.com/mcastelo/palco/internal/insights"
	"github.com/mcastelo/palco/internal/tracker"
)

type model struct {
	trackerService *tracker.Service

	currentView View

	dashboardView view.DashboardModel
	castingsView  view.CastingsModel
	ledgerView    view.LedgerModel
	monthsView    view.MonthsModel
	agendaView    view.AgendaModel
	insightsView  view.InsightsModel

	analyzer view.Analyzer
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewCastings  View = 2
	ViewLedger    View = 3
	ViewMonths    View = 4
	ViewAgenda    View = 5
	ViewInsights  View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	trackerSvc := tracker.NewService(postgres.New(db))
	if err := trackerSvc.Load(context.Background()); err != nil {
		slog.Error("failed to load collections", "error", err)
		os.Exit(1)
	}

	analyzer := insights.NewClient(cfg.Insights.Endpoint, cfg.Insights.APIKey, cfg.Insights.Timeout)

	return model{
		trackerService: trackerSvc,
		currentView:    ViewMenu,
		dashboardView:  view.NewDashboardModel(trackerSvc),
		castingsView:   view.NewCastingsModel(trackerSvc),
		ledgerView:     view.NewLedgerModel(trackerSvc),
		monthsView:     view.NewMonthsModel(trackerSvc),
		agendaView:     view.NewAgendaModel(trackerSvc),
		insightsView:   view.NewInsightsModel(trackerSvc, analyzer),
		analyzer:       analyzer,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.trackerService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewCastings
				m.castingsView = view.NewCastingsModel(m.trackerService)

				return m, m.castingsView.Init()
			case "3":
				m.currentView = ViewLedger
				m.ledgerView = view.NewLedgerModel(m.trackerService)

				return m, m.ledgerView.Init()
			case "4":
				m.currentView = ViewMonths
				m.monthsView = view.NewMonthsModel(m.trackerService)

				return m, m.monthsView.Init()
			case "5":
				m.currentView = ViewAgenda
				m.agendaView = view.NewAgendaModel(m.trackerService)

				return m, m.agendaView.Init()
			case "6":
				m.currentView = ViewInsights
				m.insightsView = view.NewInsightsModel(m.trackerService, m.analyzer)

				return m, m.insightsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewCastings:
		var newModel tea.Model
		newModel, cmd = m.castingsView.Update(msg)
		m.castingsView = newModel.(view.CastingsModel)
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewMonths:
		var newModel tea.Model
		newModel, cmd = m.monthsView.Update(msg)
		m.monthsView = newModel.(view.MonthsModel)
	case ViewAgenda:
		var newModel tea.Model
		newModel, cmd = m.agendaView.Update(msg)
		m.agendaView = newModel.(view.AgendaModel)
	case ViewInsights:
		var newModel tea.Model
		newModel, cmd = m.insightsView.Update(msg)
		m.insightsView = newModel.(view.InsightsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Palco\n\n" +
				"1. Painel\n" +
				"2. Castings\n" +
				"3. Lançamentos\n" +
				"4. Consolidado Mensal\n" +
				"5. Agenda\n" +
				"6. Análise IA\n\n" +
				"q. Sair",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewCastings:
		return m.castingsView.View()
	case ViewLedger:
		return m.ledgerView.View()
	case ViewMonths:
		return m.monthsView.View()
	case ViewAgenda:
		return m.agendaView.View()
	case ViewInsights:
		return m.insightsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
