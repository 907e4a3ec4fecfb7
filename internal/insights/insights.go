// Package insights calls an external text-generation service with a
// prepared snapshot of the tracker and returns a markdown analysis.
// The upstream is a black box: any failure degrades to a fixed
// fallback string so the rest of the app keeps working.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/report"
)

const (
	// Fallback is returned whenever the upstream call cannot complete.
	Fallback = "Não foi possível gerar a análise. Verifique se a chave da API está configurada."

	emptyInsights = "Sem insights no momento."

	maxPartners       = 5
	maxRecentCastings = 5
)

// CastingStats is the funnel slice of the payload.
type CastingStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Edited   int `json:"edited"`
}

// RecentCasting keeps only the fields the prompt needs. The client
// name is sent as "role", matching how a booker reads the list.
type RecentCasting struct {
	Role   string         `json:"role"`
	Status casting.Status `json:"status"`
	Agency string         `json:"agency"`
}

// Payload is the JSON snapshot embedded in the prompt.
type Payload struct {
	Summary        report.Summary       `json:"summary"`
	CastingStats   CastingStats         `json:"castingStats"`
	TopPartners    []report.PartnerStat `json:"topPartners"`
	RecentCastings []RecentCasting      `json:"recentCastings"`
}

// BuildPayload condenses the collections into the snapshot sent
// upstream. Castings are assumed most-recent-first.
func BuildPayload(cs []casting.Casting, summary report.Summary, partners []report.PartnerStat) Payload {
	stats := CastingStats{Total: len(cs)}
	for _, c := range cs {
		if c.Status == casting.StatusApproved {
			stats.Approved++
		}

		if c.IsEdited {
			stats.Edited++
		}
	}

	if len(partners) > maxPartners {
		partners = partners[:maxPartners]
	}

	recent := make([]RecentCasting, 0, maxRecentCastings)
	for _, c := range cs {
		if len(recent) == maxRecentCastings {
			break
		}

		recent = append(recent, RecentCasting{Role: c.Client, Status: c.Status, Agency: c.Agency})
	}

	return Payload{
		Summary:        summary,
		CastingStats:   stats,
		TopPartners:    partners,
		RecentCastings: recent,
	}
}

const promptTemplate = `Atue como um manager de carreira artística e consultor financeiro.
Analise os dados de um Ator/Atriz:

Dados: %s

Forneça uma análise curta em Markdown:
1. **Conversão de Testes**: Analise a taxa de aprovação (Aprovados/Total). Se estiver baixo, sugira foco em renovar material ou cursos. Se alto, sugira aumentar o cachê.
2. **Saúde Financeira**: Analise o fluxo de caixa e os recebíveis pendentes (Cachês a cair).
3. **Estratégia**: Baseado nos parceiros (Agências), onde focar energia?
4. **Dica**: Dica prática sobre gestão de carreira ou reserva financeira para entressafra.`

// Prompt renders the full prompt for a payload.
func Prompt(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}

	return fmt.Sprintf(promptTemplate, data), nil
}

// Client talks to the analysis endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Prompt string `json:"prompt"`
}

type analyzeResponse struct {
	Text string `json:"text"`
}

// Analyze sends the snapshot upstream and returns the generated
// analysis. It never returns an error: misconfiguration, network
// failures and bad responses all collapse to Fallback.
func (c *Client) Analyze(ctx context.Context, p Payload) string {
	if c.endpoint == "" {
		slog.Warn("insights endpoint not configured")
		return Fallback
	}

	prompt, err := Prompt(p)
	if err != nil {
		slog.Error("failed to build insights prompt", "error", err)
		return Fallback
	}

	body, err := json.Marshal(analyzeRequest{Prompt: prompt})
	if err != nil {
		slog.Error("failed to encode insights request", "error", err)
		return Fallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("failed to build insights request", "error", err)
		return Fallback
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("insights call failed", "error", err)
		return Fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("insights call returned non-success", "status", resp.StatusCode)
		return Fallback
	}

	var out analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		slog.Error("failed to decode insights response", "error", err)
		return Fallback
	}

	if out.Text == "" {
		return emptyInsights
	}

	return out.Text
}
