package services

import (
	"context"

	"ilovehiphop.ja/repositories"
)

const (
	statusBackendRunning    = "✅ Running"
	statusDBNotAvailable    = "❌ Not Available"
	statusDBNotInitialized  = "⚠️ Available but not initialized"
	statusDBAvailable       = "✅ Available"
	statusDBWorking         = "✅ Connected & Working"
	statusDBErrorPrefix     = "⚠️ Connected but Error: "
	statusSet               = "✅ Set"
	statusNotSet            = "❌ Not Set"
	connectionNotConnected  = "Not Connected"
	connectionConnected     = "Connected"
	diagnosticMessageLength = 80
)

// DiagnosticReport is the body of the diagnostic endpoint. Field order is the
// order clients see.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type IDiagnosticService interface {
	Report(ctx context.Context) DiagnosticReport
}

// DiagnosticService reports store health. It never fails: problems become status strings.
type DiagnosticService struct {
	repo           repositories.IDocumentRepository
	databaseURLSet bool
	databaseName   string
}

func NewDiagnosticService(repo repositories.IDocumentRepository, databaseURLSet bool, databaseName string) *DiagnosticService {
	return &DiagnosticService{repo: repo, databaseURLSet: databaseURLSet, databaseName: databaseName}
}

func (s *DiagnosticService) Report(ctx context.Context) DiagnosticReport {
	report := DiagnosticReport{
		Backend:          statusBackendRunning,
		Database:         statusDBNotAvailable,
		DatabaseURL:      statusNotSet,
		DatabaseName:     statusNotSet,
		ConnectionStatus: connectionNotConnected,
		Collections:      []string{},
	}

	if s.repo == nil {
		report.Database = statusDBNotInitialized
		return report
	}

	report.Database = statusDBAvailable
	if s.databaseURLSet {
		report.DatabaseURL = statusSet
	}
	if s.databaseName != "" {
		report.DatabaseName = s.databaseName
	}

	if err := s.repo.Ping(ctx); err != nil {
		report.Database = statusDBErrorPrefix + Truncate(err.Error(), diagnosticMessageLength)
		return report
	}
	names, err := s.repo.ListCollections(ctx)
	if err != nil {
		report.Database = statusDBErrorPrefix + Truncate(err.Error(), diagnosticMessageLength)
		return report
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = statusDBWorking
	report.ConnectionStatus = connectionConnected
	return report
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

var _ IDiagnosticService = (*DiagnosticService)(nil)
