package insights_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/insights"
	"github.com/mcastelo/palco/internal/report"
)

func TestBuildPayload(t *testing.T) {
	cs := []casting.Casting{
		{Client: "Banco X", Agency: "Agência Models", Status: casting.StatusApproved},
		{Client: "Série", Agency: "Agência Models", Status: casting.StatusInProgress, IsEdited: true},
		{Client: "Cerveja", Agency: "Top Cast", Status: casting.StatusNotApproved},
	}

	partners := make([]report.PartnerStat, 7)
	for i := range partners {
		partners[i].Name = "A"
	}

	p := insights.BuildPayload(cs, report.Summary{TotalIncome: 100}, partners)

	assert.Equal(t, 3, p.CastingStats.Total)
	assert.Equal(t, 1, p.CastingStats.Approved)
	assert.Equal(t, 1, p.CastingStats.Edited)
	assert.Len(t, p.TopPartners, 5, "partners capped at five")
	require.Len(t, p.RecentCastings, 3)
	assert.Equal(t, "Banco X", p.RecentCastings[0].Role)
	assert.Equal(t, 100.0, p.Summary.TotalIncome)
}

func TestClient_Analyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, strings.Contains(req.Prompt, "manager de carreira"))
		assert.True(t, strings.Contains(req.Prompt, `"castingStats"`))

		_ = json.NewEncoder(w).Encode(map[string]string{"text": "## Análise\ntudo certo"})
	}))
	defer srv.Close()

	c := insights.NewClient(srv.URL, "secret", time.Second)
	got := c.Analyze(context.Background(), insights.Payload{})

	assert.Equal(t, "## Análise\ntudo certo", got)
}

func TestClient_Analyze_Failures(t *testing.T) {
	type testCase struct {
		name   string
		client func(t *testing.T) *insights.Client
	}

	tests := []testCase{
		{
			name: "endpoint not configured",
			client: func(t *testing.T) *insights.Client {
				return insights.NewClient("", "", time.Second)
			},
		},
		{
			name: "non-success status",
			client: func(t *testing.T) *insights.Client {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, "boom", http.StatusInternalServerError)
				}))
				t.Cleanup(srv.Close)

				return insights.NewClient(srv.URL, "", time.Second)
			},
		},
		{
			name: "unreachable endpoint",
			client: func(t *testing.T) *insights.Client {
				return insights.NewClient("http://127.0.0.1:1", "", 100*time.Millisecond)
			},
		},
		{
			name: "malformed response body",
			client: func(t *testing.T) *insights.Client {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("{not json"))
				}))
				t.Cleanup(srv.Close)

				return insights.NewClient(srv.URL, "", time.Second)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.client(t).Analyze(context.Background(), insights.Payload{})
			assert.Equal(t, insights.Fallback, got)
		})
	}
}

func TestClient_Analyze_EmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"text": ""})
	}))
	defer srv.Close()

	c := insights.NewClient(srv.URL, "", time.Second)
	assert.Equal(t, "Sem insights no momento.", c.Analyze(context.Background(), insights.Payload{}))
}
