package checks

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFiles(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{
		"README.md",
		"docs/setup.md",
		"docs/guides/ssh.md",
		"bin/sync",
		"bin/lib/helpers.sh",
		"scripts/install.sh",
		"scripts/notes.txt",
		".git/HEAD.md",
	} {
		writeFile(t, filepath.Join(root, f), "x")
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{name: "no patterns", patterns: nil, want: nil},
		{name: "root level only", patterns: []string{"*.md"}, want: []string{"README.md"}},
		{
			name:     "double star crosses directories",
			patterns: []string{"docs/**/*.md"},
			want:     []string{"docs/guides/ssh.md", "docs/setup.md"},
		},
		{
			name:     "directory contents",
			patterns: []string{"bin/*"},
			want:     []string{"bin/lib/helpers.sh", "bin/sync"},
		},
		{
			name:     "exclusion",
			patterns: []string{"scripts/*", "!scripts/*.txt"},
			want:     []string{"scripts/install.sh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchFiles(root, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
