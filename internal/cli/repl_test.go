package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                 { return s.loggedIn }
func (s *stubExec) Login(context.Context) error      { return s.record("login") }
func (s *stubExec) Logout(context.Context) error     { return s.record("logout") }
func (s *stubExec) Users(context.Context) error      { return s.record("users") }
func (s *stubExec) UserAdd(context.Context) error    { return s.record("useradd") }
func (s *stubExec) UserUpdate(context.Context) error { return s.record("userupdate") }
func (s *stubExec) UserToggle(context.Context) error { return s.record("usertoggle") }
func (s *stubExec) UserDelete(context.Context) error { return s.record("userdel") }
func (s *stubExec) Tasks(context.Context) error      { return s.record("tasks") }
func (s *stubExec) TaskAdd(context.Context) error    { return s.record("taskadd") }
func (s *stubExec) TaskToggle(context.Context) error { return s.record("tasktoggle") }
func (s *stubExec) TaskDelete(context.Context) error { return s.record("taskdel") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "test" }, scanner)
	return *lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "login\nusers\ntaskadd\nexit\n")

	assert.Equal(t, []string{"login", "users", "taskadd"}, exec.calls)
}

func TestREPL_ShortAliases(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "u\nt\nquit\n")

	assert.Equal(t, []string{"users", "tasks"}, exec.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	exec := &stubExec{}
	out := runScript(t, exec, "frobnicate\nexit\n")

	assert.Empty(t, exec.calls)
	joined := strings.Join(out, "")
	assert.Contains(t, joined, "Unknown command: frobnicate")
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(out, ""), "login, exit")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(out, ""), "useradd")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "users\n") // no exit command, EOF ends the loop

	assert.Equal(t, []string{"users"}, exec.calls)
}
