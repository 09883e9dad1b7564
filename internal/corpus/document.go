// Package corpus provides the three in-memory similarity indexes (job
// postings, course catalog, transition narratives) that ground pipeline
// stages in reference material. Indexes are built once at startup and are
// read-only for the life of the process.
package corpus

// Document is an immutable unit returned by a corpus query
type Document struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}
