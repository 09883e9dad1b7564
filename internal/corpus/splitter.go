package corpus

import "strings"

// Splitter breaks long free text into bounded-size overlapping chunks before
// embedding. Short structured rows (jobs, courses) are embedded whole and
// never pass through here.
type Splitter struct {
	ChunkSize    int
	ChunkOverlap int
}

// DefaultSplitter returns the chunking configuration used for narrative text
func DefaultSplitter() Splitter {
	return Splitter{ChunkSize: 1000, ChunkOverlap: 200}
}

// Split breaks text into chunks of at most ChunkSize characters, preferring
// paragraph then line boundaries, with ChunkOverlap characters carried
// between consecutive chunks.
func (s Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= s.ChunkSize {
		return []string{text}
	}

	pieces := s.pieces(text)

	var chunks []string
	var current strings.Builder
	for _, piece := range pieces {
		if current.Len() > 0 && current.Len()+len(piece)+1 > s.ChunkSize {
			chunk := strings.TrimSpace(current.String())
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			tail := overlapTail(chunk, s.ChunkOverlap)
			current.Reset()
			if tail != "" {
				current.WriteString(tail)
				current.WriteString("\n")
			}
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(piece)
	}
	if chunk := strings.TrimSpace(current.String()); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// pieces splits text into fragments no longer than ChunkSize, trying
// paragraphs first, then lines, then hard character windows.
func (s Splitter) pieces(text string) []string {
	var out []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len(para) <= s.ChunkSize {
			out = append(out, para)
			continue
		}
		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if len(line) <= s.ChunkSize {
				out = append(out, line)
				continue
			}
			out = append(out, s.hardWrap(line)...)
		}
	}
	return out
}

// hardWrap cuts a single over-long line into fixed windows with overlap
func (s Splitter) hardWrap(line string) []string {
	step := s.ChunkSize - s.ChunkOverlap
	if step <= 0 {
		step = s.ChunkSize
	}
	var out []string
	runes := []rune(line)
	for start := 0; start < len(runes); start += step {
		end := start + s.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return out
}

// overlapTail returns the last n characters of text, extended left to the
// nearest whitespace so chunks do not start mid-word.
func overlapTail(text string, n int) string {
	if n <= 0 || text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	tail := runes[len(runes)-n:]
	if idx := strings.IndexAny(string(tail), " \n\t"); idx >= 0 {
		return strings.TrimSpace(string(tail)[idx:])
	}
	return strings.TrimSpace(string(tail))
}
