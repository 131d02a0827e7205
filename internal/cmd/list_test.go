package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/tutorialbatch/internal/config"
	"github.com/harrison/tutorialbatch/internal/tutorial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListShowsOutcomes(t *testing.T) {
	root := t.TempDir()
	makeTutorials(t, root, "4/2", "4/3", "5/2")

	stdout, _, err := execute(t, "list", "--root", root, "--sections", "4", "--subsections-skip", "2")
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "SECTION"))
	assert.Contains(t, lines[1], "skip")
	assert.Contains(t, lines[1], "subsection 2 in subsections_skip")
	assert.Contains(t, lines[2], "include")
	assert.Contains(t, lines[2], "tutorial-04-03.png")
	assert.Contains(t, lines[3], "section 5 not in sections")
	assert.Contains(t, stdout, "3 found, 1 included, 2 skipped")
}

func TestListEmptyRoot(t *testing.T) {
	stdout, _, err := execute(t, "list", "--root", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "No tutorial directories found\n", stdout)
}

func TestListReportsAbort(t *testing.T) {
	root := t.TempDir()
	makeTutorials(t, root, "1/1", "x/1")

	stdout, _, err := execute(t, "list", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tutorial.ErrUnparseablePath))
	assert.Contains(t, stdout, "abort")
	assert.Contains(t, stdout, filepath.Join(root, "x", "1"))
}

func TestValidate(t *testing.T) {
	root := t.TempDir()
	makeTutorials(t, root, "1/1", "2/1")

	stdout, _, err := execute(t, "validate", "--root", root, "--sections-skip", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid")
	assert.Contains(t, stdout, "Tutorials found: 2")
	assert.Contains(t, stdout, "Included: 1")
	assert.Contains(t, stdout, "Skipped: 1")
}

func TestValidateWithOutputMissingRoot(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TutorialRoot = filepath.Join(t.TempDir(), "missing")

	var buf bytes.Buffer
	err := validateWithOutput(cfg, &buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tutorial.ErrRootNotFound))
	assert.Contains(t, buf.String(), "✗")
}

func TestConfigCommandDumpsResolvedConfig(t *testing.T) {
	stdout, _, err := execute(t, "config", "--root", "/data/tutorials", "--output-dir", "__$CONF{tutorial_root}__/img", "--png")
	require.NoError(t, err)

	assert.Contains(t, stdout, "tutorial_root: /data/tutorials\n")
	assert.Contains(t, stdout, "output_dir: /data/tutorials/img\n")
	assert.Contains(t, stdout, "output_png: true\n")
	assert.Contains(t, stdout, "bin: circos\n")
}

func TestConfigCommandWorksWithoutRoot(t *testing.T) {
	stdout, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tutorial_root: \"\"\n")
}

func TestOverridesFromFlagsOnlyChanged(t *testing.T) {
	cmd := NewGenerateCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--sections", "1-3", "--svg"}))

	o, err := overridesFromFlags(cmd.Flags())
	require.NoError(t, err)

	require.NotNil(t, o.Sections)
	assert.Equal(t, "1-3", *o.Sections)
	require.NotNil(t, o.OutputSVG)
	assert.True(t, *o.OutputSVG)
	assert.Nil(t, o.TutorialRoot)
	assert.Nil(t, o.OutputPNG)
}
