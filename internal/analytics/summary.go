// Package analytics aggregates usage records into a summary for the
// analytics endpoint. Pure summation over a flat CSV record set.
package analytics

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Transition is one current→target role pair with its occurrence count
type Transition struct {
	Transition string `json:"transition"`
	Count      int    `json:"count"`
}

// Summary aggregates the analytics records
type Summary struct {
	TotalUsers       int          `json:"totalUsers"`
	AverageGapScore  string       `json:"averageGapScore"`
	TopTransitions   []Transition `json:"topTransitions"`
	AverageTimeSpent int          `json:"averageTimeSpent"`
	ConversionRate   string       `json:"conversionRate"`
}

// record is one analytics CSV row
type record struct {
	currentRole      string
	targetRole       string
	gapScore         float64
	timeSpentSeconds float64
	conversionStatus string
}

// Summarize loads the analytics CSV and computes the summary. A missing or
// malformed file yields a zero-valued summary rather than an error.
func Summarize(path string) Summary {
	records, err := loadRecords(path)
	if err != nil || len(records) == 0 {
		return Summary{
			AverageGapScore: "0.0",
			TopTransitions:  []Transition{},
			ConversionRate:  "0.0",
		}
	}

	total := len(records)
	var gapSum, timeSum float64
	completed := 0
	counts := make(map[string]int)

	for _, r := range records {
		gapSum += r.gapScore
		timeSum += r.timeSpentSeconds
		if r.conversionStatus == "completed" {
			completed++
		}
		key := fmt.Sprintf("%s → %s", r.currentRole, r.targetRole)
		counts[key]++
	}

	transitions := make([]Transition, 0, len(counts))
	for key, count := range counts {
		transitions = append(transitions, Transition{Transition: key, Count: count})
	}
	sort.Slice(transitions, func(a, b int) bool {
		if transitions[a].Count != transitions[b].Count {
			return transitions[a].Count > transitions[b].Count
		}
		return transitions[a].Transition < transitions[b].Transition
	})
	if len(transitions) > 5 {
		transitions = transitions[:5]
	}

	return Summary{
		TotalUsers:       total,
		AverageGapScore:  fmt.Sprintf("%.1f", gapSum/float64(total)),
		TopTransitions:   transitions,
		AverageTimeSpent: int(math.Round(timeSum / float64(total))),
		ConversionRate:   fmt.Sprintf("%.1f", float64(completed)/float64(total)*100),
	}
}

func loadRecords(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, err
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var records []record
	for _, row := range rows {
		fields := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				fields[header] = strings.TrimSpace(row[i])
			}
		}
		if fields["user_id"] == "" || fields["current_role"] == "" {
			continue
		}
		records = append(records, record{
			currentRole:      fields["current_role"],
			targetRole:       fields["target_role"],
			gapScore:         parseFloat(fields["gap_score"]),
			timeSpentSeconds: parseFloat(fields["time_spent_seconds"]),
			conversionStatus: fields["conversion_status"],
		})
	}
	return records, nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
