package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/countdown/internal/errors"
)

// =============================================================================
// Helpers
// =============================================================================

// testEnv points every run at the same on-disk database so that commands
// see each other's writes.
type testEnv struct {
	t      *testing.T
	dbDir  string
	cfgDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{t: t, dbDir: t.TempDir(), cfgDir: t.TempDir()}
	t.Setenv("COUNTDOWN_DATABASE", env.dbDir)
	return env
}

func resetFlags() {
	flagFormat = "cli"
	flagColor = "auto"
	flagDebug = false
	flagConfigDir = ""
	listFlagTable = false
	adminFlagUser = "admin"
	adminFlagPassword = ""
	addFlagTitle, addFlagType, addFlagDate = "", "", ""
	editFlagTitle, editFlagDate = "", ""
	deleteFlagYes = false
	exportFlagYAML = false
	exportFlagOutput = ""
}

// run executes the CLI and returns stdout, stderr and the error.
func (e *testEnv) run(stdin string, args ...string) (string, string, error) {
	e.t.Helper()
	resetFlags()
	flagConfigDir = e.cfgDir

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	}()

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, stderr, err := e.run("", args...)
	require.NoError(e.t, err, stderr)
	return out
}

type savedJSON struct {
	Status string `json:"status"`
	Timer  struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Type  string `json:"type"`
	} `json:"timer"`
}

type listJSON struct {
	Count  int `json:"count"`
	Timers []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Type      string `json:"type"`
		Completed bool   `json:"completed"`
	} `json:"timers"`
}

func (e *testEnv) list() listJSON {
	e.t.Helper()
	var resp listJSON
	require.NoError(e.t, json.Unmarshal([]byte(e.mustRun("list", "--format", "json")), &resp))
	return resp
}

// =============================================================================
// List / Show Tests
// =============================================================================

func TestListSeedsExampleTimers(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun()
	assert.Contains(t, out, "Новый Год")
	assert.Contains(t, out, "Старт проекта")
	assert.Contains(t, out, "Прошедшее время")

	resp := env.list()
	assert.Equal(t, 2, resp.Count)
}

func TestListTable(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("list", "--table")
	assert.Contains(t, out, "DD:HH:MM:SS")
	assert.Contains(t, out, "timer1")
}

func TestShow(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("show", "timer2")
	assert.Contains(t, out, "ID: timer2")
	assert.Contains(t, out, "Старт проекта")
}

func TestShowNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, stderr, err := env.run("", "show", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTimerNotFound)
	assert.Contains(t, stderr, "Error:")
	assert.Contains(t, stderr, "countdown list")
}

func TestInvalidFormatFlag(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("", "list", "--format", "xml")
	assert.Error(t, err)
}

// =============================================================================
// Admin Command Tests
// =============================================================================

func TestAddRequiresLogin(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("", "add", "--title", "X", "--date", "2030-01-01T00:00")
	require.Error(t, err)
	assert.True(t, errors.IsAuthError(err))
	assert.Equal(t, 2, env.list().Count)
}

func TestAddCreatesTimer(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("add", "--title", "Отпуск", "--date", "2030-07-01T09:00",
		"--password", "admin", "--format", "json")

	var saved savedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	assert.Equal(t, "created", saved.Status)
	assert.Equal(t, "Отпуск", saved.Timer.Title)
	assert.Equal(t, "countdown", saved.Timer.Type)
	assert.NotEmpty(t, saved.Timer.ID)

	assert.Equal(t, 3, env.list().Count)
}

func TestAddValidation(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("", "add", "--title", "X", "--date", "definitely-not-a-date", "--password", "admin")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)

	_, _, err = env.run("", "add", "--date", "2030-01-01T00:00", "--password", "admin")
	assert.ErrorIs(t, err, errors.ErrTitleRequired)

	_, _, err = env.run("", "add", "--title", "X", "--type", "weekly", "--date", "2030-01-01T00:00", "--password", "admin")
	assert.ErrorIs(t, err, errors.ErrInvalidTimerType)

	assert.Equal(t, 2, env.list().Count)
}

func TestEditKeepsType(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("edit", "timer2", "--title", "Новое имя", "--password", "admin", "--format", "json")

	var saved savedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	assert.Equal(t, "updated", saved.Status)
	assert.Equal(t, "timer2", saved.Timer.ID)
	assert.Equal(t, "Новое имя", saved.Timer.Title)
	assert.Equal(t, "elapsed", saved.Timer.Type)
}

func TestEditTitleOnlyKeepsDate(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("add", "--title", "Скоро", "--date", "+90s", "--password", "admin", "--format", "json")
	var saved savedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &saved))

	type shown struct {
		Date time.Time `json:"date"`
	}
	var before, after shown
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("show", saved.Timer.ID, "--format", "json")), &before))

	env.mustRun("edit", saved.Timer.ID, "--title", "Совсем скоро", "--password", "admin")

	require.NoError(t, json.Unmarshal([]byte(env.mustRun("show", saved.Timer.ID, "--format", "json")), &after))
	assert.True(t, before.Date.Equal(after.Date), "before=%s after=%s", before.Date, after.Date)
}

func TestDeleteConfirmation(t *testing.T) {
	env := newTestEnv(t)

	out, stderr, err := env.run("n\n", "delete", "timer2", "--password", "admin")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Удалить таймер «Старт проекта»?")
	assert.Contains(t, out, "Kept timer timer2")
	assert.Equal(t, 2, env.list().Count)

	out, _, err = env.run("y\n", "delete", "timer2", "--password", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted timer timer2")
	assert.Equal(t, 1, env.list().Count)
}

func TestDeleteYes(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("delete", "timer1", "--yes", "--password", "admin", "--format", "json")
	assert.Contains(t, out, `"deleted"`)

	_, _, err := env.run("", "show", "timer1")
	assert.ErrorIs(t, err, errors.ErrTimerNotFound)
}

// =============================================================================
// Theme / Export / Watch Tests
// =============================================================================

func TestTheme(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, "Theme: light\n", env.mustRun("theme"))
	assert.Equal(t, "Theme: dark\n", env.mustRun("theme", "toggle"))
	assert.Equal(t, "Theme: dark\n", env.mustRun("theme"))
	assert.Equal(t, "Theme: light\n", env.mustRun("theme", "light"))

	_, _, err := env.run("", "theme", "blue")
	assert.ErrorIs(t, err, errors.ErrInvalidTheme)
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("export")
	var doc struct {
		Timers []map[string]any `json:"timers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Timers, 2)

	out = env.mustRun("export", "--yaml")
	assert.Contains(t, out, "timers:")
	assert.Contains(t, out, "creationDate:")
}

func TestExportToFile(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "timers.json")

	out := env.mustRun("export", "-o", path)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Старт проекта")
}

func TestExportRejectsEmptyFileName(t *testing.T) {
	env := newTestEnv(t)

	_, stderr, err := env.run("", "export", "-o", "..")
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.Contains(t, stderr, "-o timers.json")
}

func TestWatchExitsWhenCountdownsComplete(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("add", "--title", "Прошло", "--date", "2020-01-01T00:00",
		"--password", "admin", "--format", "json")
	var saved savedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &saved))

	out = env.mustRun("watch", saved.Timer.ID)
	assert.Contains(t, out, "Прошло: Завершено!")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("version")
	assert.Contains(t, out, "countdown dev")
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"да\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var prompt bytes.Buffer
			got, err := promptConfirmer(strings.NewReader(tt.input), &prompt).Confirm("Sure?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Sure? [y/N]: ", prompt.String())
		})
	}
}

func TestPromptConfirmerReadError(t *testing.T) {
	_, err := promptConfirmer(errReader{}, io.Discard).Confirm("Sure?")
	assert.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, os.ErrClosed }

func TestExportPath(t *testing.T) {
	p, err := exportPath(filepath.Join("out", "a:b.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "a_b.json"), p)

	p, err = exportPath("timers.json")
	require.NoError(t, err)
	assert.Equal(t, "timers.json", p)

	_, err = exportPath("..")
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
}
