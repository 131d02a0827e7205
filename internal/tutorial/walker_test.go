package tutorial

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files under root. Paths ending in "/" are created as
// empty directories; other paths are created as files.
func makeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("<<include etc/housekeeping.conf>>\n"), 0644))
	}
}

func candidateRels(result *WalkResult) []string {
	rels := make([]string, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		rels = append(rels, c.Rel)
	}
	return rels
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root,
		"4/6/circos.conf",
		"4/2/circos.conf",
		"1/1/circos.conf",
		"1/2/data/karyotype.txt", // no marker
		"2/",                     // empty section
		"3/1/circos.conf/",       // marker is a directory
		"README",                 // file at section level
		"5/notes.txt",            // file at subsection level
		"5/3/deep/circos.conf",   // marker too deep
	)

	result, err := Walk(root)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{"1/1", "4/2", "4/6"}, candidateRels(result))
	assert.Equal(t, filepath.Join(root, "1", "1"), result.Candidates[0].Dir)
}

func TestWalkFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	elsewhere := t.TempDir()
	makeTree(t, elsewhere, "circos.conf")
	makeTree(t, root, "7/")

	if err := os.Symlink(elsewhere, filepath.Join(root, "7", "3")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	result, err := Walk(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"7/3"}, candidateRels(result))
}

func TestWalkEmptyRoot(t *testing.T) {
	result, err := Walk(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
}

func TestWalkRootNotFound(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Walk(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRootNotFound))
	})

	t.Run("not a directory", func(t *testing.T) {
		root := t.TempDir()
		makeTree(t, root, "file.txt")
		_, err := Walk(filepath.Join(root, "file.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRootNotFound))
	})
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		section    int
		subsection int
		wantErr    bool
	}{
		{name: "plain", path: "4/6", section: 4, subsection: 6},
		{name: "leading zeros", path: "04/06", section: 4, subsection: 6},
		{name: "wide numbers", path: "123/45", section: 123, subsection: 45},
		{name: "inside a longer path", path: "/data/tutorials/8/11", section: 8, subsection: 11},
		{name: "first adjacent pair wins", path: "x/1/2/3", section: 1, subsection: 2},
		{name: "skips lone digits", path: "1/a/2/3", section: 2, subsection: 3},
		{name: "non-numeric subsection", path: "4/intro", wantErr: true},
		{name: "mixed component", path: "4a/6", wantErr: true},
		{name: "single component", path: "4", wantErr: true},
		{name: "empty", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, subsection, err := ParseNumbers(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnparseablePath))
				var pathErr *PathError
				require.True(t, errors.As(err, &pathErr))
				assert.Equal(t, tt.path, pathErr.Path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.section, section)
			assert.Equal(t, tt.subsection, subsection)
		})
	}
}
