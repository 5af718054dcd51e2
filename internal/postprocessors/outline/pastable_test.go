package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPastable(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"single fence", "```bash\ngit status\ngit diff\n```", "git status\ngit diff"},
		{"bare fence", "```\nls -la\n```", "ls -la"},
		{"surrounding space", "\n```sh\necho hi\n```  \n", "echo hi"},
		{"empty block", "```\n```", ""},
		{"text before", "Run:\n```\nls\n```", "Run:\n```\nls\n```"},
		{"two blocks", "```\na\n```\n```\nb\n```", "```\na\n```\n```\nb\n```"},
		{"no closing", "```\nls", "```\nls"},
		{"plain", "just text", "just text"},
		{"one line", "```", "```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pastable(tt.body))
		})
	}
}
