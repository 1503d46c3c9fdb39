//go:build e2e && unix

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
)

// binPath is set by TestMain
var binPath string

const scrollback = 1 << 20

// Keys as a terminal sends them
const (
	KeyEnter = "\r"
	KeyCtrlC = "\x03"
	KeyEsc   = "\x1b"
	KeyUp    = "\x1b[A"
	KeyDown  = "\x1b[B"
	KeyHelp  = "\x07" // ctrl+g
	KeyQuit  = "q"    // closes the help pager
)

// Mouse buttons in SGR encoding
const (
	MouseLeft  = 0
	MouseRight = 2
)

// ansiRe matches CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// Session runs one searchlist process on a pty. The list draws on the pty
// through stderr; stdout is kept apart so tests can check the result.
type Session struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	stdout    bytes.Buffer

	mu     sync.Mutex
	screen []byte
	cond   *sync.Cond
}

func NewSession(t *testing.T) *Session {
	s := &Session{t: t}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// StartApp launches searchlist with args in the workspace
func (s *Session) StartApp(args ...string) error {
	s.cmd = exec.Command(binPath, args...)
	s.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+s.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(s.workspace, ".config"),
		"SEARCHLIST_E2E_TEST=1",
	)
	s.cmd.Dir = s.workspace

	ptmx, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	s.pty = ptmx
	s.tty = tty

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 40, Cols: 120}); err != nil {
		return fmt.Errorf("failed to size pty: %w", err)
	}

	s.cmd.Stdin = tty
	s.cmd.Stdout = &s.stdout
	s.cmd.Stderr = tty
	// The pty becomes /dev/tty for the process and the help pager
	s.cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start searchlist: %w", err)
	}
	go s.read()
	return nil
}

// read appends everything drawn on the pty, keeping the last scrollback bytes
func (s *Session) read() {
	buf := make([]byte, 8192)
	for {
		n, err := s.pty.Read(buf)
		s.mu.Lock()
		s.screen = append(s.screen, buf[:n]...)
		if len(s.screen) > scrollback {
			s.screen = s.screen[len(s.screen)-scrollback:]
		}
		s.cond.Broadcast()
		s.mu.Unlock()
		if err != nil {
			return
		}
	}
}

// SendKeys writes raw input to the pty
func (s *Session) SendKeys(keys string) error {
	_, err := s.pty.Write([]byte(keys))
	return err
}

func (s *Session) SendEnter() error {
	return s.SendKeys(KeyEnter)
}

func (s *Session) SendCtrlC() error {
	return s.SendKeys(KeyCtrlC)
}

func (s *Session) Up() error {
	return s.SendKeys(KeyUp)
}

func (s *Session) Down() error {
	return s.SendKeys(KeyDown)
}

// Type sends text one key at a time
func (s *Session) Type(text string) error {
	for _, r := range text {
		if err := s.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// Click sends an SGR mouse press and release at the zero-based cell x, y
func (s *Session) Click(button, x, y int) error {
	if err := s.SendKeys(fmt.Sprintf("\x1b[<%d;%d;%dM", button, x+1, y+1)); err != nil {
		return err
	}
	return s.SendKeys(fmt.Sprintf("\x1b[<%d;%d;%dm", button, x+1, y+1))
}

// Wait waits for the process to exit and returns its exit code
func (s *Session) Wait(timeout time.Duration) (int, error) {
	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case err := <-done:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		if err != nil {
			return -1, err
		}
		return 0, nil
	case <-time.After(timeout):
		return -1, fmt.Errorf("searchlist did not exit within %s", timeout)
	}
}

// Stdout returns what the process printed to stdout. Only valid after Wait.
func (s *Session) Stdout() string {
	return s.stdout.String()
}

// Ready waits for the first laid out frame
func (s *Session) Ready() bool {
	s.t.Helper()
	return s.waitFor(func(screen string) bool { return strings.Contains(screen, "__READY__") }, 5*time.Second)
}

// SeePlain waits for text to appear with escape sequences stripped
func (s *Session) SeePlain(text string) bool {
	s.t.Helper()
	return s.OutputContainsPlain(text, 3*time.Second)
}

func (s *Session) OutputContainsPlain(text string, timeout time.Duration) bool {
	s.t.Helper()
	return s.waitFor(func(screen string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(screen, ""), text)
	}, timeout)
}

func (s *Session) waitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(s.snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (s *Session) snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.screen)
}

// DumpTailOnFail logs where the last n bytes of plain output were saved
func (s *Session) DumpTailOnFail(t *testing.T, name string, n int) {
	plain := ansiRe.ReplaceAllString(s.snapshot(), "")
	if len(plain) > n {
		plain = plain[len(plain)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(plain), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the pty and kills the process if it is still running
func (s *Session) Cleanup() {
	if s.pty != nil {
		_ = s.pty.Close()
	}
	if s.tty != nil {
		_ = s.tty.Close()
	}
	if s.cmd != nil && s.cmd.Process != nil && s.cmd.ProcessState == nil {
		_ = s.cmd.Process.Kill()
		_, _ = s.cmd.Process.Wait()
	}
}
