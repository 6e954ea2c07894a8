package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ilovehiphop.ja/repositories/repositoriestest"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticService_NoStore(t *testing.T) {
	report := NewDiagnosticService(nil, false, "").Report(context.Background())

	assert.Equal(t, DiagnosticReport{
		Backend:          "✅ Running",
		Database:         "⚠️ Available but not initialized",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}, report)
}

func TestDiagnosticService_Connected(t *testing.T) {
	repo := repositoriestest.NewMemoryRepository()
	repo.Seed("event", map[string]any{"title": "x"})
	repo.Seed("coupon", map[string]any{"code": "x"})

	report := NewDiagnosticService(repo, true, "ilhh").Report(context.Background())
	assert.Equal(t, "✅ Connected & Working", report.Database)
	assert.Equal(t, "✅ Set", report.DatabaseURL)
	assert.Equal(t, "ilhh", report.DatabaseName)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Equal(t, []string{"coupon", "event"}, report.Collections)
}

func TestDiagnosticService_StoreError(t *testing.T) {
	repo := repositoriestest.NewMemoryRepository()
	repo.Err = errors.New(strings.Repeat("x", 200))

	report := NewDiagnosticService(repo, true, "").Report(context.Background())
	assert.True(t, strings.HasPrefix(report.Database, "⚠️ Connected but Error: "))
	assert.Len(t, []rune(strings.TrimPrefix(report.Database, "⚠️ Connected but Error: ")), 80)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", report.DatabaseName)
	assert.Equal(t, []string{}, report.Collections)
}

func TestDiagnosticService_PingFailure(t *testing.T) {
	repo := repositoriestest.NewMemoryRepository()
	repo.Seed("event", map[string]any{"title": "x"})
	repo.PingErr = errors.New("server selection timeout")

	report := NewDiagnosticService(repo, true, "ilhh").Report(context.Background())
	assert.Equal(t, "⚠️ Connected but Error: ping: server selection timeout", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Equal(t, []string{}, report.Collections)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "é", Truncate("éé", 1))
}
