package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		recordPath = ""
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestRoot(t *testing.T) {
	dir := tempDir(t)
	chdir(t, dir)

	out, _, err := execute(t, "cd /\necho $?\ncd /definitely/missing\necho $?\n")
	require.NoError(t, err)

	assert.Equal(t, dir+"> /> 0\n/> coin: cd: /definitely/missing - could not change directory (no such file or directory)\n/> 1\n/> ", out)
}

func TestRoot_ignoresArgs(t *testing.T) {
	dir := tempDir(t)
	chdir(t, dir)

	out, _, err := execute(t, "echo $?\n", "unexpected", "words")
	require.NoError(t, err)
	assert.Equal(t, dir+"> 0\n"+dir+"> ", out)
}

func TestTraceAndReport(t *testing.T) {
	dir := tempDir(t)
	chdir(t, dir)
	events := filepath.Join(dir, "events.jsonl")

	_, _, err := execute(t, "cd /definitely/missing\ndefinitely-not-a-program\n", "trace", events)
	require.NoError(t, err)

	data, err := os.ReadFile(events)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))

	out, _, err := execute(t, "", "events", "report", events)
	require.NoError(t, err)
	assert.Contains(t, out, "log_entries: 3")
	assert.Contains(t, out, "/definitely/missing: 1")
	assert.Contains(t, out, "definitely-not-a-program: 1")
	assert.Contains(t, out, "end_of_inputs: 1")
}

func TestEventsReport_missing(t *testing.T) {
	_, _, err := execute(t, "", "events", "report", filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestPlaygroundAndLogs(t *testing.T) {
	dir := tempDir(t)
	t.Setenv("TMPDIR", dir)
	cast := filepath.Join(dir, "session.cast")

	out, errOut, err := execute(t, "echo hi\ncd /tmp\nhostname\nexit\npwd\n", "playground", "--record", cast)
	require.NoError(t, err)
	assert.Equal(t, "/> hi\n/> /tmp> playground\n/tmp> ", out)
	assert.Contains(t, errOut, "[playground] Logging to: file://")

	out, _, err = execute(t, "", "logs", "cat", cast)
	require.NoError(t, err)
	assert.Equal(t, "/> hi\n/> /tmp> playground\n/tmp> ", out)

	logs, err := filepath.Glob(filepath.Join(dir, "coin-playground-*.jsonl"))
	require.NoError(t, err)
	require.Len(t, logs, 1)

	out, _, err = execute(t, "", "events", "report", logs[0])
	require.NoError(t, err)
	assert.Contains(t, out, "/bin/echo: 1")
	assert.Contains(t, out, "/bin/hostname: 1")
}

func TestLogsPlay(t *testing.T) {
	cast := filepath.Join(t.TempDir(), "session.cast")
	recording := "{\"version\": 2}\n[0, \"o\", \"/> \"]\n[0.001, \"i\", \"x\"]\n[0.002, \"o\", \"bye\\n\"]\n"
	require.NoError(t, os.WriteFile(cast, []byte(recording), 0644))

	out, _, err := execute(t, "", "logs", "play", "-i", "1ms", cast)
	require.NoError(t, err)
	assert.Equal(t, "/> bye\n", out)
}

func TestConfigShow(t *testing.T) {
	out, _, err := execute(t, "", "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "home: /root")
	assert.Contains(t, out, "line_max: 4096")
	assert.Contains(t, out, "- /usr/games")
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")

	show, _, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(good, []byte(show), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("color: sometimes\n"), 0644))

	out, _, err := execute(t, "", "config", "check", good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok\n", out)

	_, _, err = execute(t, "", "config", "check", bad)
	assert.Error(t, err)
}

func TestBuiltins(t *testing.T) {
	out, _, err := execute(t, "", "builtins")
	require.NoError(t, err)

	for _, expected := range []string{"shell:!!", "shell:cd", "shell:echo", "shell:exit", "/bin/echo", "/usr/bin/wc"} {
		assert.Contains(t, out, expected+"\n")
	}
}
