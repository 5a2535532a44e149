package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/puzzlebox/aoc"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const wordSearch = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

// setup points the globals at a fresh cache directory.
func setup(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()
	dir := t.TempDir()
	cfg = aoc.DefaultConfig()
	cfg.InputDir = filepath.Join(dir, "inputs")
	cfg.SessionFile = filepath.Join(dir, "session")
	cfg.BaseURL = "http://127.0.0.1:0"
	t.Cleanup(func() {
		cfg = aoc.Config{}
		sampleOnly, skipSample = false, false
	})
	return dir
}

func newCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunCached(t *testing.T) {
	setup(t)
	path := aoc.NewInputs(cfg, logger).Path(2024, 4)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(wordSearch), 0644))

	cmd, out := newCmd()
	require.NoError(t, runPuzzle(cmd, []string{"2024", "4"}))
	assert.Equal(t, "part one: 18\npart two: 9\n", out.String())
}

func TestRunSampleOnly(t *testing.T) {
	setup(t)
	sampleOnly = true

	// Nothing is cached and the base URL is unreachable, so reaching for
	// the real input would fail.
	cmd, out := newCmd()
	require.NoError(t, runPuzzle(cmd, []string{"2021", "11"}))
	assert.Empty(t, out.String())
}

func TestRunUnknownDay(t *testing.T) {
	setup(t)
	cmd, _ := newCmd()
	err := runPuzzle(cmd, []string{"2019", "25"})
	assert.ErrorIs(t, err, aoc.ErrNoSuchDay)
}

func TestYearDay(t *testing.T) {
	setup(t)

	year, day, err := yearDay([]string{"2020", "11"})
	require.NoError(t, err)
	assert.Equal(t, []int{2020, 11}, []int{year, day})

	year, day, err = yearDay([]string{"6"})
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 6}, []int{year, day}, "latest registered year")

	cfg.Year = 2019
	year, _, err = yearDay([]string{"2"})
	require.NoError(t, err)
	assert.Equal(t, 2019, year)

	_, _, err = yearDay([]string{"x"})
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	setup(t)
	cmd, out := newCmd()
	require.NoError(t, listPuzzles(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "2019/02\t2 parts\t1 samples", lines[0])
	assert.Equal(t, "2024/18\t2 parts\t2 samples", lines[len(lines)-1])
}

func TestFetch(t *testing.T) {
	dir := setup(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		if err != nil || c.Value != "s3cret" {
			http.Error(w, "no", http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/2024/day/18/input", r.URL.Path)
		w.Write([]byte("1,1\n"))
	}))
	defer srv.Close()
	cfg.BaseURL = srv.URL
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session"), []byte("s3cret\n"), 0600))

	cmd, out := newCmd()
	require.NoError(t, fetchInput(cmd, []string{"2024", "18"}))
	path := strings.TrimSpace(out.String())
	assert.Equal(t, filepath.Join(dir, "inputs", "2024", "18.input"), path)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,1\n", string(b))

	assert.Error(t, fetchInput(cmd, []string{"2024", "eighteen"}))
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))

	log, err = newLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}
