package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/insights"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
)

// Analyzer generates the career/finance analysis text.
type Analyzer interface {
	Analyze(ctx context.Context, p insights.Payload) string
}

// InsightsModel requests the AI analysis over the whole dataset and shows
// the result. The analyzer never fails; misconfiguration shows its
// fallback text.
type InsightsModel struct {
	CommonModel
	svc      *tracker.Service
	analyzer Analyzer

	loading bool
	text    string
}

func NewInsightsModel(svc *tracker.Service, analyzer Analyzer) InsightsModel {
	return InsightsModel{svc: svc, analyzer: analyzer, loading: true}
}

func (m InsightsModel) Title() string { return "Análise IA" }

func (m InsightsModel) ShortHelp() string {
	return "Esc: voltar | r: gerar novamente"
}

type insightsMsg struct {
	text string
}

func (m InsightsModel) analyzeCmd() tea.Cmd {
	txs := m.svc.Transactions()
	cs := m.svc.Castings()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		payload := insights.BuildPayload(
			cs,
			report.Summarize(txs, dateutil.Today()),
			report.TopPartners(cs, 5),
		)

		return insightsMsg{text: m.analyzer.Analyze(ctx, payload)}
	}
}

func (m InsightsModel) Init() tea.Cmd {
	return m.analyzeCmd()
}

func (m InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsMsg:
		m.loading = false
		m.text = msg.text

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.analyzeCmd()
		}
	}

	return m, nil
}

func (m InsightsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Gerando análise...")
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(80).
		Render(m.text)

	return lipgloss.NewStyle().Padding(1).Render(panel)
}
