// Package salary provides the deterministic salary lookup. Lookups never
// fail: when no catalog row matches, a keyword-bucketed estimated range is
// returned instead.
package salary

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Row is one salary catalog entry loaded from CSV
type Row struct {
	Role            string
	City            string
	SalaryMin       float64
	SalaryMax       float64
	Currency        string
	ExperienceLevel string
	LastUpdated     string
}

// Catalog holds the salary reference data, loaded once at startup and
// read-only thereafter
type Catalog struct {
	rows []Row
}

// NewCatalog creates a catalog from pre-built rows
func NewCatalog(rows []Row) *Catalog {
	return &Catalog{rows: rows}
}

// LoadCatalog reads the salary CSV at path. A missing or malformed file
// yields an empty catalog (every lookup falls back to estimated ranges)
// rather than an error; salary data must never block startup.
func LoadCatalog(path string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	rows, err := loadRows(path)
	if err != nil {
		logger.Warn("salary catalog unavailable, all lookups will be estimated",
			zap.String("path", path),
			zap.Error(err))
		return &Catalog{}
	}

	logger.Info("salary catalog loaded", zap.Int("rows", len(rows)))
	return &Catalog{rows: rows}
}

func loadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}

	var rows []Row
	for _, record := range records {
		fields := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				fields[header] = strings.TrimSpace(record[i])
			}
		}
		if fields["role"] == "" {
			continue
		}
		rows = append(rows, Row{
			Role:            fields["role"],
			City:            fields["city"],
			SalaryMin:       parseAmount(fields["salary_min"]),
			SalaryMax:       parseAmount(fields["salary_max"]),
			Currency:        fields["currency"],
			ExperienceLevel: fields["experience_level"],
			LastUpdated:     fields["last_updated"],
		})
	}
	return rows, nil
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
