package ports

import "go.trai.ch/lode/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// ReportWriter persists a resolution report.
type ReportWriter interface {
	// Write stores the resolved module listing at the given path.
	Write(path string, entries []domain.ReportEntry) error
}
