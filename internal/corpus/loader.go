package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// readCSVRecords reads a headered CSV file into one map per row
func readCSVRecords(path string) ([]map[string]string, error) {
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

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// orDefault returns value, or fallback when value is empty
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// loadJobDocuments reads job postings from CSV, one whole-record document
// per row. Rows without a role or required skills are filtered out.
func loadJobDocuments(path string) ([]Document, error) {
	records, err := readCSVRecords(path)
	if err != nil {
		return nil, err
	}

	var docs []Document
	for _, row := range records {
		if row["role"] == "" || row["skills_required"] == "" {
			continue
		}
		content := fmt.Sprintf("Role: %s\nCompany: %s\nSkills Required: %s\nExperience Level: %s\nDescription: %s",
			row["role"],
			orDefault(row["company"], "Various"),
			row["skills_required"],
			orDefault(row["experience_level"], "Mid-level"),
			row["description"])
		docs = append(docs, Document{
			Content: content,
			Metadata: map[string]string{
				"role":       row["role"],
				"company":    row["company"],
				"skills":     row["skills_required"],
				"experience": row["experience_level"],
			},
		})
	}
	return docs, nil
}

// loadCourseDocuments reads the course catalog from CSV, one whole-record
// document per row. Rows without a name or covered skills are filtered out.
func loadCourseDocuments(path string) ([]Document, error) {
	records, err := readCSVRecords(path)
	if err != nil {
		return nil, err
	}

	var docs []Document
	for _, row := range records {
		if row["course_name"] == "" || row["skills_covered"] == "" {
			continue
		}
		content := fmt.Sprintf("Course: %s\nPlatform: %s\nSkills: %s\nDifficulty: %s\nDuration: %s\nPrice: %s\nDescription: %s",
			row["course_name"],
			orDefault(row["platform"], "Online"),
			row["skills_covered"],
			orDefault(row["difficulty"], "Intermediate"),
			orDefault(row["duration"], "Self-paced"),
			orDefault(row["price"], "Paid"),
			row["description"])
		docs = append(docs, Document{
			Content: content,
			Metadata: map[string]string{
				"courseName": row["course_name"],
				"platform":   row["platform"],
				"url":        row["url"],
				"skills":     row["skills_covered"],
				"difficulty": row["difficulty"],
				"duration":   row["duration"],
				"price":      row["price"],
				"rating":     row["rating"],
			},
		})
	}
	return docs, nil
}

// loadStoryDocuments reads transition narratives from a plain text file and
// splits them into bounded overlapping chunks before embedding.
func loadStoryDocuments(path string, splitter Splitter) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	chunks := splitter.Split(string(data))
	docs := make([]Document, 0, len(chunks))
	for i, chunk := range chunks {
		docs = append(docs, Document{
			Content:  chunk,
			Metadata: map[string]string{"chunk": fmt.Sprintf("%d", i)},
		})
	}
	return docs, nil
}
