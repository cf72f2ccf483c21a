package emaillist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single column with header",
			input: "email\nalice@example.com\nbob@example.com\n",
			want:  []string{"alice@example.com", "bob@example.com"},
		},
		{
			name:  "multi column",
			input: "alice@example.com,bob@example.com\ncarol@example.com\n",
			want:  []string{"alice@example.com", "bob@example.com", "carol@example.com"},
		},
		{
			name:  "newline separated plain list",
			input: "alice@example.com\nbob@example.com",
			want:  []string{"alice@example.com", "bob@example.com"},
		},
		{
			name:  "duplicates and case collapsed",
			input: "Alice@Example.com\nalice@example.com\n",
			want:  []string{"alice@example.com"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	p := NewCSVParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
