package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/coin/core/config"
	"github.com/josephlewis42/coin/core/logger"
)

func TestCd(t *testing.T) {
	cases := map[string]struct {
		input    string
		cwd      string
		oldcwd   string
		previous Command
	}{
		"absolute":      {"cd /tmp\n", "/tmp", "/", Command{"cd", "/tmp"}},
		"relative":      {"cd tmp\n", "/tmp", "/", Command{"cd", "tmp"}},
		"parent":        {"cd /tmp\ncd ..\n", "/", "/tmp", Command{"cd", ".."}},
		"home":          {"cd /tmp\ncd\n", "/root", "/tmp", Command{"cd", "/root"}},
		"tilde":         {"cd /tmp\ncd ~\n", "/root", "/tmp", Command{"cd", "/root"}},
		"swap":          {"cd /tmp\ncd -\n", "/", "/tmp", Command{"cd", "-"}},
		"swap back":     {"cd /tmp\ncd -\ncd -\n", "/tmp", "/", Command{"cd", "-"}},
		"extra args":    {"cd /tmp /root\n", "/tmp", "/", Command{"cd", "/tmp"}},
		"many slashes":  {"cd //tmp//\n", "/tmp", "/", Command{"cd", "//tmp//"}},
		"swap at start": {"cd -\n", "/", "/", Command{"cd", "-"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			ts := newTestSession(t, tc.input)

			ts.Run()
			assert.Equal(t, tc.cwd, ts.Cwd())
			assert.Equal(t, tc.oldcwd, ts.OldCwd())
			assert.Equal(t, tc.previous, ts.Previous())
			assert.Equal(t, 0, ts.Status())
		})
	}
}

func TestCd_homeThenSwap(t *testing.T) {
	for _, start := range []string{"/", "/tmp", "/root", "/bin"} {
		t.Run(start, func(t *testing.T) {
			ts := newTestSession(t, fmt.Sprintf("cd %s\ncd\ncd -\n", start))
			ts.RunOnce()
			require.Equal(t, start, ts.Cwd())

			ts.RunOnce()
			assert.Equal(t, ts.Config.Home, ts.Cwd())

			ts.RunOnce()
			assert.Equal(t, start, ts.Cwd())
		})
	}
}

func TestCd_failure(t *testing.T) {
	cases := map[string]struct {
		input  string
		output string
	}{
		"missing": {
			input:  "cd /missing\n",
			output: "/> coin: cd: /missing - could not change directory (no such file or directory)\n/> ",
		},
		"not a directory": {
			input:  "cd /tmp/notes.txt\n",
			output: "/> coin: cd: /tmp/notes.txt - could not change directory (not a directory)\n/> ",
		},
		"permission denied": {
			input:  "cd /locked\n",
			output: "/> coin: cd: /locked - could not change directory (permission denied)\n/> ",
		},
		"dash with args is literal": {
			input:  "cd - /root\n",
			output: "/> coin: cd: - - could not change directory (no such file or directory)\n/> ",
		},
		"tilde with args is literal": {
			input:  "cd ~ /tmp\n",
			output: "/> coin: cd: ~ - could not change directory (no such file or directory)\n/> ",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			ts := newTestSession(t, "true\n"+tc.input)
			ts.RunOnce()

			ts.Run()
			assert.Equal(t, "/> "+tc.output, ts.Out.String())
			assert.Equal(t, 1, ts.Status())
			assert.Equal(t, "/", ts.Cwd())
			assert.Equal(t, Command{"/bin/true"}, ts.Previous(), "failed cd isn't recalled")

			require.Len(t, ts.Events, 3)
			assert.Equal(t, logger.EventChdirFailure, ts.Events[1].Type)
			assert.Equal(t, 1, ts.Events[1].Status)
		})
	}
}

func TestCd_failureStillRecordsOldCwd(t *testing.T) {
	ts := newTestSession(t, "cd /tmp\ncd /missing\ncd -\n")

	ts.Run()
	assert.Equal(t, "/tmp", ts.Cwd())
	assert.Equal(t, "/tmp", ts.OldCwd())
}

func TestCd_color(t *testing.T) {
	ts := newTestSession(t, "cd /missing\n")
	ts.diag = diagnosticColor(config.ColorAlways, ts.Out)

	ts.Run()
	assert.Contains(t, ts.Out.String(), "\x1b[31mcoin: cd: /missing")
}

func TestDiagnosticColor_auto(t *testing.T) {
	ts := newTestSession(t, "cd /missing\n")
	ts.diag = diagnosticColor(config.ColorAuto, ts.Out)

	ts.Run()
	assert.NotContains(t, ts.Out.String(), "\x1b[")
}

func TestEcho_status(t *testing.T) {
	for _, code := range []int{0, 1, 2, 42, 127, 128, 255} {
		t.Run(fmt.Sprint(code), func(t *testing.T) {
			ts := newTestSession(t, fmt.Sprintf("status %d\necho $?\n", code))

			ts.Run()
			assert.Equal(t, fmt.Sprintf("/> /> %d\n/> ", code), ts.Out.String())
		})
	}
}

func TestEcho_statusIsEightBits(t *testing.T) {
	ts := newTestSession(t, "status 300\necho $?\n")

	ts.Run()
	assert.Equal(t, "/> /> 44\n/> ", ts.Out.String())
}

func TestEcho_resetsStatus(t *testing.T) {
	ts := newTestSession(t, "false\necho $?\necho $?\n")

	ts.Run()
	assert.Equal(t, "/> /> 1\n/> 0\n/> ", ts.Out.String())
	assert.Equal(t, Command{"echo", "$?"}, ts.Previous())
}

func TestEcho_otherFormsAreLaunched(t *testing.T) {
	for _, line := range []string{"echo", "echo hello", "echo $? x", "echo $HOME"} {
		t.Run(line, func(t *testing.T) {
			ts := newTestSession(t, line+"\n")

			ts.RunOnce()
			// There is no echo program installed.
			assert.Equal(t, "/> ", ts.Out.String())
			assert.Equal(t, 1, ts.Status())
			assert.Equal(t, "echo", ts.Previous()[0])
		})
	}
}

func TestBang_empty(t *testing.T) {
	ts := newTestSession(t, "!!\n!!\n")

	ts.Run()
	assert.Equal(t, "/> /> /> ", ts.Out.String())
	assert.Nil(t, ts.Previous())
	assert.Equal(t, "/", ts.Cwd())
	assert.Equal(t, 0, ts.Status())
}

func TestBang_cd(t *testing.T) {
	ts := newTestSession(t, "cd /tmp\n!!\n")

	ts.Run()
	assert.Equal(t, "/> /tmp> cd /tmp\n/tmp> ", ts.Out.String())
	assert.Equal(t, "/tmp", ts.Cwd())
	assert.Equal(t, "/tmp", ts.OldCwd())
	assert.Equal(t, Command{"cd", "/tmp"}, ts.Previous())
}

func TestBang_cdSwap(t *testing.T) {
	ts := newTestSession(t, "cd /tmp\ncd -\n!!\n")

	ts.Run()
	assert.Equal(t, "/> /tmp> /> cd -\n/tmp> ", ts.Out.String())
	assert.Equal(t, "/tmp", ts.Cwd())
}

func TestBang_home(t *testing.T) {
	ts := newTestSession(t, "cd\n!!\n")

	ts.Run()
	assert.Equal(t, "/> /root> cd /root\n/root> ", ts.Out.String())
}

func TestBang_echoStatus(t *testing.T) {
	ts := newTestSession(t, "false\necho $?\n!!\n")

	ts.Run()
	assert.Equal(t, "/> /> 1\n/> echo $?\n0\n/> ", ts.Out.String())
}

func TestBang_failedCdIsNotRecalled(t *testing.T) {
	ts := newTestSession(t, "cd /tmp\ncd /missing\n!!\n")

	ts.Run()
	assert.Contains(t, ts.Out.String(), "/tmp> cd /tmp\n/tmp> ")
	assert.Equal(t, 0, ts.Status())
}

// A recalled program is echoed but not run again, only cd and "echo $?" are
// replayed.
func TestBang_programsAreOnlyEchoed(t *testing.T) {
	ts := newTestSession(t, "false\nargs a b\n!!\necho $?\n")

	ts.Run()
	assert.Equal(t, "/> /> /bin/args|a|b\n/> /bin/args a b\n/> 0\n/> ", ts.Out.String())
	assert.Equal(t, Command{"echo", "$?"}, ts.Previous())
}

func TestBang_ignoresArguments(t *testing.T) {
	ts := newTestSession(t, "cd /tmp\n!! /root\n")

	ts.Run()
	assert.Equal(t, "/tmp", ts.Cwd())
}
