package argio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeTerminal treats one file as a terminal.
type fakeTerminal struct{ tty *os.File }

func (f fakeTerminal) isTerminal(file *os.File) bool    { return file == f.tty }
func (fakeTerminal) termSize(*os.File) (int, int, bool) { return 0, 0, false }
func (fakeTerminal) enableVirtualTerminal() bool        { return true }
func (fakeTerminal) vtEnabled() bool                    { return true }

func TestColorOverrides(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	m := New().WithOut(&bytes.Buffer{})
	t.Setenv("NO_COLOR", "1")
	if m.SupportsColor() {
		t.Fatalf("NO_COLOR should disable")
	}
	t.Setenv("NO_COLOR", "")
	if m.SupportsColor() {
		t.Fatalf("a buffer is not a terminal")
	}
	if !m.ForceColor().SupportsColor() {
		t.Fatalf("ForceColor should enable")
	}
	if m.NoColor().SupportsColor() {
		t.Fatalf("NoColor should disable")
	}
	if m.ForceColor().ColorAuto().SupportsColor() {
		t.Fatalf("ColorAuto should fall back to detection")
	}
}

func TestColorLevels(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	m := New().ForceColor()
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if m.ColorLevel() != 2 {
		t.Fatalf("expected 2 for 256color, got %d", m.ColorLevel())
	}
	t.Setenv("COLORTERM", "truecolor")
	if m.ColorLevel() != 3 {
		t.Fatalf("expected truecolor level 3, got %d", m.ColorLevel())
	}
}

func TestStyles(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	m := New().ForceColor()
	t.Setenv("COLORTERM", "truecolor")
	out := NewStyle().Bold().Fg(BrightBlue).Sprint(m, "x")
	if out != "\x1b[1;94mx\x1b[0m" {
		t.Fatalf("unexpected styled output %q", out)
	}
	out = NewStyle().Fg(Truecolor(1, 2, 3)).Sprint(m, "x")
	if !strings.Contains(out, "38;2;1;2;3") {
		t.Fatalf("expected truecolor code, got %q", out)
	}
	t.Setenv("COLORTERM", "")
	if got := NewStyle().Faint().Fg(Truecolor(1, 2, 3)).Sprint(m, "x"); got != "\x1b[2mx\x1b[0m" {
		t.Fatalf("truecolor should drop below level 3, got %q", got)
	}
	if got := NewStyle().Bold().Sprint(m.NoColor(), "x"); got != "x" {
		t.Fatalf("expected plain text without color, got %q", got)
	}
}

func TestWidthFallback(t *testing.T) {
	t.Setenv("COLUMNS", "101")
	m := New().WithOut(&bytes.Buffer{})
	if m.Width() != 101 {
		t.Fatalf("want 101, got %d", m.Width())
	}
	t.Setenv("COLUMNS", "wide")
	if m.Width() != 80 {
		t.Fatalf("want default 80, got %d", m.Width())
	}
}

func TestLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut).NoColor()

	tests := []struct {
		name    string
		logger  *Logger
		log     func(l *Logger)
		wantOut string
		wantErr string
	}{
		{
			name:    "tagged error goes to stderr",
			logger:  NewLogger(m),
			log:     func(l *Logger) { l.Error("bad %s", "flag") },
			wantErr: "[error]: bad flag\n",
		},
		{
			name:    "tagged info goes to stdout",
			logger:  NewLogger(m),
			log:     func(l *Logger) { l.Info("ok") },
			wantOut: "[info]: ok\n",
		},
		{
			name:    "plain",
			logger:  NewLogger(m).WithFormat(LogFormatPlain),
			log:     func(l *Logger) { l.Warning("careful") },
			wantErr: "careful\n",
		},
		{
			name:    "custom template",
			logger:  NewLogger(m).WithTemplate("{{.Level}} | {{.Message}}"),
			log:     func(l *Logger) { l.Info("hi") },
			wantOut: "info | hi\n",
		},
		{
			name:   "below minimum level",
			logger: NewLogger(m).WithLevel(LevelInfo),
			log:    func(l *Logger) { l.Debug("hidden") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			errOut.Reset()
			tt.log(tt.logger)
			if out.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantOut)
			}
			if errOut.String() != tt.wantErr {
				t.Errorf("stderr = %q, want %q", errOut.String(), tt.wantErr)
			}
		})
	}
}

func TestLoggerColorFollowsDestination(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm")
	t.Setenv("ARGPARSE_GOOS", "linux")

	dir := t.TempDir()
	out, err := os.Create(filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	diag, err := os.Create(filepath.Join(dir, "err"))
	if err != nil {
		t.Fatal(err)
	}
	defer diag.Close()

	m := New().WithOut(out).WithErr(diag)
	m.p = fakeTerminal{tty: out}
	if m.ColorLevel() != 1 || m.ErrColorLevel() != 0 {
		t.Fatalf("levels = %d/%d, want 1/0", m.ColorLevel(), m.ErrColorLevel())
	}

	l := NewLogger(m)
	l.Info("ready")
	l.Error("bad flag")

	gotOut, _ := os.ReadFile(out.Name())
	if string(gotOut) != "\x1b[96m[info]: ready\x1b[0m\n" {
		t.Errorf("terminal output = %q", gotOut)
	}
	gotErr, _ := os.ReadFile(diag.Name())
	if string(gotErr) != "[error]: bad flag\n" {
		t.Errorf("redirected diagnostics = %q, want no escapes", gotErr)
	}
}

func TestLoggerTheme(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "")
	var out bytes.Buffer
	m := New().WithOut(&out).ForceColor()

	theme := DefaultTheme(m)
	theme.Info = BrightBlue
	NewLogger(m).WithTheme(theme).Info("x")
	NewLogger(m).Info("y")

	want := "\x1b[94m[info]: x\x1b[0m\n\x1b[96m[info]: y\x1b[0m\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}
