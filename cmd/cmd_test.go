package cmd_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mordilloSan/schlog/cmd"
	"gopkg.in/yaml.v3"
)

var homeDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "schlog-cmd-")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	homeDir = dir

	code := m.Run()
	if err := os.RemoveAll(dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

func newCommand(t *testing.T, opts ...cmd.Option) (c *cmd.Command) {
	t.Helper()

	c, err := cmd.NewCommand(append([]cmd.Option{cmd.WithHomeDir(homeDir)}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// run executes the command with a clean logging environment and returns
// what was written to the output and error streams.
func run(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	t.Setenv("LOG_LEVEL", "")
	var outBuf, errBuf bytes.Buffer
	err = newCommand(t,
		cmd.WithArgs(append([]string{"--env-file", "", "--timestamps=false"}, args...)...),
		cmd.WithInput(strings.NewReader(input)),
		cmd.WithOutput(&outBuf),
		cmd.WithErrorOutput(&errBuf),
	).Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestVersionCmd(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("version"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := cmd.Version + "\n"
	got := outputBuf.String()
	if got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestLogCmd(t *testing.T) {
	stdout, stderr, err := run(t, "", "log", "warn", "disk", "almost", "full")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "" {
		t.Errorf("got output %q, want none", stdout)
	}
	if want := "WARN disk almost full\n"; stderr != want {
		t.Errorf("got error output %q, want %q", stderr, want)
	}
}

func TestLogCmd_Priority(t *testing.T) {
	stdout, _, err := run(t, "", "log", "2", "ready")
	if err != nil {
		t.Fatal(err)
	}
	if want := "INFO ready\n"; stdout != want {
		t.Errorf("got output %q, want %q", stdout, want)
	}
}

func TestLogCmd_Filtered(t *testing.T) {
	stdout, stderr, err := run(t, "", "--level", "error", "log", "info", "hidden")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got %q %q", stdout, stderr)
	}
}

func TestLogCmd_DefaultThresholdHidesDebug(t *testing.T) {
	stdout, _, err := run(t, "", "log", "debug", "hidden")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "" {
		t.Errorf("expected no output, got %q", stdout)
	}
}

func TestLogCmd_LevelFromEnv(t *testing.T) {
	var outBuf bytes.Buffer
	t.Setenv("LOG_LEVEL", "debug")
	if err := newCommand(t,
		cmd.WithArgs("--env-file", "", "--timestamps=false", "log", "debug", "cache", "miss"),
		cmd.WithOutput(&outBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	if got, want := outBuf.String(), "DEBUG cache miss\n"; got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestLogCmd_UnknownLevel(t *testing.T) {
	for _, level := range []string{"fatal", "WARN", "7"} {
		_, _, err := run(t, "", "log", level, "message")
		if !errors.Is(err, cmd.ErrUnknownLevel) {
			t.Errorf("level %q: got error %v, want %v", level, err, cmd.ErrUnknownLevel)
		}
	}
}

func TestLogCmd_JSON(t *testing.T) {
	stdout, _, err := run(t, "", "--json", "log", "info", "hello")
	if err != nil {
		t.Fatal(err)
	}
	want := `{"level":{"name":"info","priority":2,"scope":"stdout"},"message":"hello"}` + "\n"
	if stdout != want {
		t.Errorf("got output %q, want %q", stdout, want)
	}
}

func TestLogCmd_Colors(t *testing.T) {
	stdout, _, err := run(t, "", "--color", "always", "log", "info", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if want := "\x1b[32m\x1b[1mINFO\x1b[22m\x1b[39m hello\n"; stdout != want {
		t.Errorf("got output %q, want %q", stdout, want)
	}

	if _, _, err := run(t, "", "--color", "sometimes", "log", "info", "hello"); err == nil {
		t.Error("expected error for invalid color mode")
	}
}

func TestLogCmd_ColorsAutoRedirected(t *testing.T) {
	_, stderr, err := run(t, "", "--color", "auto", "log", "error", "failed")
	if err != nil {
		t.Fatal(err)
	}
	if want := "ERROR failed\n"; stderr != want {
		t.Errorf("got error output %q, want %q", stderr, want)
	}
}

func TestLogCmd_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "schlog.yaml")
	if err := os.WriteFile(cfg, []byte("level: error\ncolor: never\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := run(t, "", "--config", cfg, "log", "warn", "hidden")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("warn should be filtered by config, got %q", stderr)
	}

	_, stderr, err = run(t, "", "--config", cfg, "log", "error", "shown")
	if err != nil {
		t.Fatal(err)
	}
	if want := "ERROR shown\n"; stderr != want {
		t.Errorf("got error output %q, want %q", stderr, want)
	}
}

func TestLogCmd_MissingConfigFile(t *testing.T) {
	_, _, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "log", "info", "x")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLogCmd_EnvFile(t *testing.T) {
	// Register cleanup for the variable, then unset it so the env file can set it.
	t.Setenv("SCHLOG_JSON", "")
	os.Unsetenv("SCHLOG_JSON")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("SCHLOG_JSON=true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var outBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("--env-file", envFile, "--timestamps=false", "log", "info", "hello"),
		cmd.WithOutput(&outBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := `{"level":{"name":"info","priority":2,"scope":"stdout"},"message":"hello"}` + "\n"
	if got := outBuf.String(); got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestPipeCmd(t *testing.T) {
	stdout, _, err := run(t, "first\nsecond\n", "--level", "debug", "pipe", "--as", "debug")
	if err != nil {
		t.Fatal(err)
	}
	if want := "DEBUG first\nDEBUG second\n"; stdout != want {
		t.Errorf("got output %q, want %q", stdout, want)
	}
}

func TestPipeCmd_UnknownLevel(t *testing.T) {
	_, _, err := run(t, "x\n", "pipe", "--as", "verbose")
	if !errors.Is(err, cmd.ErrUnknownLevel) {
		t.Errorf("got error %v, want %v", err, cmd.ErrUnknownLevel)
	}
}

type levelRow struct {
	Name     string `json:"name" yaml:"name"`
	Priority int    `json:"priority" yaml:"priority"`
	Scope    string `json:"scope" yaml:"scope"`
}

var wantLevels = []levelRow{
	{"error", 0, "stderr"},
	{"warn", 1, "stderr"},
	{"info", 2, "stdout"},
	{"debug", 3, "stdout"},
}

func TestLevelsCmd_Text(t *testing.T) {
	stdout, _, err := run(t, "", "levels")
	if err != nil {
		t.Fatal(err)
	}
	want := "NAME   PRIORITY  SCOPE\n" +
		"error  0         stderr\n" +
		"warn   1         stderr\n" +
		"info   2         stdout\n" +
		"debug  3         stdout\n"
	if stdout != want {
		t.Errorf("got output %q, want %q", stdout, want)
	}
}

func TestLevelsCmd_JSON(t *testing.T) {
	stdout, _, err := run(t, "", "levels", "--output", "json")
	if err != nil {
		t.Fatal(err)
	}
	var got []levelRow
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantLevels, got); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
}

func TestLevelsCmd_YAML(t *testing.T) {
	stdout, _, err := run(t, "", "levels", "-o", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "- name: error\n  priority: 0\n  scope: stderr\n") {
		t.Errorf("unexpected yaml output %q", stdout)
	}
	var got []levelRow
	if err := yaml.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantLevels, got); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
}

func TestLevelsCmd_UnsupportedOutput(t *testing.T) {
	if _, _, err := run(t, "", "levels", "-o", "xml"); err == nil {
		t.Fatal("expected error for unsupported output")
	}
}
