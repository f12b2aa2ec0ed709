package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logFile(dir string, cat Category) string {
	return filepath.Join(dir, time.Now().Format("2006-01-02")+"_"+string(cat)+".log")
}

func TestDebugModeDisabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Initialize(Options{DebugMode: false, Level: "debug", Dir: dir}))
	t.Cleanup(CloseAll)

	Get(CategoryCountdown).Info("should not be written")

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "logs dir must not be created when debug mode is off")
	assert.False(t, IsDebugMode())
}

func TestAllCategoriesLog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(Options{DebugMode: true, Level: "debug", Dir: dir}))

	cats := []Category{CategoryBoot, CategoryConfig, CategoryCountdown, CategoryClipboard, CategoryUI}
	for _, cat := range cats {
		Get(cat).Info("hello from %s", cat)
	}
	CloseAll()

	for _, cat := range cats {
		data, err := os.ReadFile(logFile(dir, cat))
		require.NoError(t, err, "category %s", cat)
		assert.Contains(t, string(data), "hello from "+string(cat))
		assert.Contains(t, string(data), `"cat":"`+string(cat)+`"`)
	}
}

func TestCategoryToggle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(Options{
		DebugMode:  true,
		Level:      "info",
		Dir:        dir,
		Categories: map[string]bool{"clipboard": false},
	}))

	assert.False(t, IsCategoryEnabled(CategoryClipboard))
	assert.True(t, IsCategoryEnabled(CategoryUI), "unspecified categories default to enabled")

	Get(CategoryClipboard).Error("suppressed")
	Get(CategoryUI).Info("kept")
	CloseAll()

	_, err := os.Stat(logFile(dir, CategoryClipboard))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(logFile(dir, CategoryUI))
	assert.NoError(t, err)
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(Options{DebugMode: true, Level: "warn", Dir: dir}))

	l := Get(CategoryCountdown)
	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.With("runner", "deadline").Error("error line")
	CloseAll()

	data, err := os.ReadFile(logFile(dir, CategoryCountdown))
	require.NoError(t, err)
	out := string(data)
	assert.False(t, strings.Contains(out, "debug line"))
	assert.False(t, strings.Contains(out, "info line"))
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, `"runner":"deadline"`)
}

func TestNoopLoggerIsSafe(t *testing.T) {
	var l Logger
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Same(t, &l, l.With("k", "v"))
}

func TestActivity(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(Options{DebugMode: true, Level: "info", Dir: dir}))

	Activity(ActivityReveal, "example", 2)
	Activity(ActivityShare, "copied", true)
	CloseAll()

	data, err := os.ReadFile(logFile(dir, CategoryActivity))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"event":"reveal"`)
	assert.Contains(t, lines[0], `"example":2`)
	assert.Contains(t, lines[1], `"copied":true`)
}

func TestActivityDisabledIsSilent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(Options{
		DebugMode:  true,
		Level:      "info",
		Dir:        dir,
		Categories: map[string]bool{"activity": false},
	}))
	t.Cleanup(CloseAll)

	Activity(ActivityDone)

	_, err := os.Stat(logFile(dir, CategoryActivity))
	assert.True(t, os.IsNotExist(err))
}
