package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BurntSushi/torsmatch/matching"
	"github.com/BurntSushi/torsmatch/torsion"
)

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, matching.DefaultConfig(), opts.Matcher)
	assert.Equal(t, "main", opts.Angles)
	assert.Equal(t, 1, opts.Jobs)

	types, err := opts.AngleTypes(torsion.DefaultCatalog())
	require.NoError(t, err)
	assert.Len(t, types, 10)
}

func TestLoadOptionsPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mcq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"threshold: 25\nmin-length: 5\nangles: phi,psi\ntimeout: 2s\n"), 0644))

	t.Setenv("MCQ_MIN_LENGTH", "7")

	v := NewViper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	MatcherFlags(flags)
	require.NoError(t, flags.Parse([]string{"--gap-tolerance", "2"}))
	require.NoError(t, v.BindPFlags(flags))

	opts, err := LoadOptions(v, path)
	require.NoError(t, err)
	assert.Equal(t, 25.0, opts.Matcher.Threshold)
	assert.Equal(t, 7, opts.Matcher.MinLength)
	assert.Equal(t, 2, opts.Matcher.GapTolerance)
	assert.Equal(t, "phi,psi", opts.Angles)
	assert.Equal(t, 2*time.Second, opts.Timeout)
}

func TestLoadOptionsInvalid(t *testing.T) {
	v := NewViper()
	v.Set("threshold", -1)
	_, err := LoadOptions(v, "")
	assert.ErrorIs(t, err, matching.ErrInvalidConfig)

	v = NewViper()
	v.Set("jobs", 0)
	_, err = LoadOptions(v, "")
	assert.Error(t, err)

	_, err = LoadOptions(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger("debug", "json")
	assert.NoError(t, err)
	_, err = NewLogger("info", "")
	assert.NoError(t, err)
	_, err = NewLogger("loud", "console")
	assert.Error(t, err)
	_, err = NewLogger("info", "xml")
	assert.Error(t, err)
}

func TestAssertExits(t *testing.T) {
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	Assert(nil, "never")
	assert.Equal(t, -1, code)
	Assert(os.ErrNotExist, "Could not open '%s'", "x")
	assert.Equal(t, 1, code)
}

func TestWarnings(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	Log = zap.New(core)
	defer func() { Log = zap.NewNop() }()

	Warnf("%d residues skipped", 3)
	assert.False(t, Warning(nil, "never"))
	assert.True(t, Warning(os.ErrNotExist, "Could not match %s", "1ABC.A"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "3 residues skipped", entries[0].Message)
	assert.Equal(t, "Could not match 1ABC.A", entries[1].Message)
	assert.Equal(t, os.ErrNotExist.Error(), entries[1].ContextMap()["error"])
}

func TestCreateFile(t *testing.T) {
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	f := CreateFile(filepath.Join(t.TempDir(), "out.txt"))
	require.NotNil(t, f)
	assert.NoError(t, f.Close())
	assert.Equal(t, -1, code)

	CreateFile(filepath.Join(t.TempDir(), "missing", "out.txt"))
	assert.Equal(t, 1, code)
}

func TestReadSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1ABC.tors")
	require.NoError(t, os.WriteFile(path, []byte(
		"chain number icode name class phi\nA 1 - ALA protein 10\n"), 0644))

	sel, err := ReadSelection(path)
	require.NoError(t, err)
	assert.Equal(t, "1ABC", sel.Name)
	assert.Equal(t, 1, sel.Len())

	_, err = ReadSelection(filepath.Join(t.TempDir(), "nope.tors"))
	assert.Error(t, err)
}
