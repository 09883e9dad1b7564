package salary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/career-navigator/internal/types"
)

func TestLoadCatalog_MissingFileYieldsEmptyCatalog(t *testing.T) {
	catalog := LoadCatalog("does-not-exist.csv", nil)
	require.NotNil(t, catalog)

	insight := catalog.Lookup("Backend Engineer", "Pune")
	assert.Equal(t, types.SalarySourceEstimated, insight.Source)
}

func TestLoadCatalog_ReadsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salary.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		`role,city,salary_min,salary_max,currency,experience_level,last_updated
Backend Engineer,Pune,10,18,₹,Mid-level,2024
,Bangalore,5,9,₹,Entry,2024
Data Analyst,Mumbai,not-a-number,16,₹,Mid-level,2024
`), 0o644))

	catalog := LoadCatalog(path, nil)

	insight := catalog.Lookup("Backend Engineer", "Pune")
	require.Equal(t, types.SalarySourceInternal, insight.Source)
	assert.Equal(t, "₹10-18", insight.SalaryRange)

	// Row without a role is dropped; malformed amounts parse to zero.
	insight = catalog.Lookup("Data Analyst", "Mumbai")
	require.Equal(t, types.SalarySourceInternal, insight.Source)
	assert.Equal(t, 0.0, insight.SalaryMin)
	assert.Equal(t, 16.0, insight.SalaryMax)
}
