package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"gapScore": 65}`,
			want:  `{"gapScore": 65}`,
		},
		{
			name:  "json fence stripped",
			input: "```json\n{\"gapScore\": 65}\n```",
			want:  `{"gapScore": 65}`,
		},
		{
			name:  "generic fence stripped",
			input: "```\n{\"gapScore\": 65}\n```",
			want:  `{"gapScore": 65}`,
		},
		{
			name:  "fence with language identifier",
			input: "```javascript\n{\"gapScore\": 65}\n```",
			want:  `{"gapScore": 65}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n```json\n[1, 2, 3]\n```  \n",
			want:  `[1, 2, 3]`,
		},
		{
			name:  "backticks inside strings preserved",
			input: "{\"tip\": \"use the `go` command\"}",
			want:  "{\"tip\": \"use the `go` command\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_FencedEqualsUnfenced(t *testing.T) {
	raw := `{"currentSkills": ["Go", "SQL"], "experienceLevel": "mid", "domain": "engineering"}`
	fenced := "```json\n" + raw + "\n```"

	assert.Equal(t, CleanJSONBlock(raw), CleanJSONBlock(fenced))
}
