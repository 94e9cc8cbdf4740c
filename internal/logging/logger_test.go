package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, level LogLevel, logFile string) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	l, err := NewLoggerTo(level, logFile, &stdout, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l, &stdout, &stderr
}

func TestNewLogger(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		l, err := NewLogger(LogLevelInfo, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.level != LogLevelInfo {
			t.Errorf("level = %d, want %d", l.level, LogLevelInfo)
		}
		if l.file != nil {
			t.Error("file should be nil when no path given")
		}
	})

	t.Run("with file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		l, err := NewLogger(LogLevelDebug, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.file == nil || l.fileLog == nil {
			t.Error("file logger should be set")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := NewLogger(LogLevelInfo, "/nonexistent/dir/test.log")
		if err == nil {
			t.Error("expected error for invalid path")
		}
	})
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		level      LogLevel
		wantStdout []string
		wantStderr bool
	}{
		{LogLevelSilent, nil, false},
		{LogLevelError, nil, true},
		{LogLevelInfo, nil, true},
		{LogLevelVerbose, []string{"INFO: info", "VERBOSE: verbose"}, true},
		{LogLevelDebug, []string{"INFO: info", "VERBOSE: verbose", "DEBUG: debug"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			l, stdout, stderr := newTestLogger(t, tt.level, "")
			l.Error("error")
			l.Info("info")
			l.Verbose("verbose")
			l.Debug("debug")

			var got []string
			if out := strings.TrimSpace(stdout.String()); out != "" {
				got = strings.Split(out, "\n")
			}
			if len(got) != len(tt.wantStdout) {
				t.Fatalf("stdout = %q, want %q", got, tt.wantStdout)
			}
			for i := range got {
				if got[i] != tt.wantStdout[i] {
					t.Errorf("stdout[%d] = %q, want %q", i, got[i], tt.wantStdout[i])
				}
			}
			if hasErr := strings.Contains(stderr.String(), "ERROR: error"); hasErr != tt.wantStderr {
				t.Errorf("stderr = %q, want error line %v", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestLogFileReceivesInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, stdout, _ := newTestLogger(t, LogLevelInfo, path)

	l.LogDecode("Common", "OPERATION", []byte{0x04}, 5, nil)
	l.LogDecode("Common", "VOUT_COMMAND", []byte{0x63, 0x02}, 0, errors.New("no VOUT_MODE"))
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("info level should not write to stdout, got %q", stdout.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "FAILED Common VOUT_COMMAND [63 02]: no VOUT_MODE") {
		t.Errorf("log file missing failure line:\n%s", data)
	}
	if strings.Contains(string(data), "decoded Common OPERATION") {
		t.Errorf("verbose line written at info level:\n%s", data)
	}
}

func TestLogDecodeVerbose(t *testing.T) {
	l, stdout, _ := newTestLogger(t, LogLevelVerbose, "")
	l.LogDecode("ADM1272", "PMON_CONFIG", []byte{0x2f, 0xb8}, 9, nil)
	if !strings.Contains(stdout.String(), "VERBOSE: decoded ADM1272 PMON_CONFIG [2f b8]: 9 fields") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestLogHex(t *testing.T) {
	l, stdout, _ := newTestLogger(t, LogLevelDebug, "")
	l.LogHex("payload", []byte{0x02, 0x00, 0x63})
	if !strings.Contains(stdout.String(), "DEBUG: payload: 02 00 63") {
		t.Errorf("unexpected output %q", stdout.String())
	}

	l.SetLevel(LogLevelVerbose)
	stdout.Reset()
	l.LogHex("payload", []byte{0x01})
	if stdout.Len() != 0 {
		t.Errorf("hex logged below debug: %q", stdout.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"", LogLevelInfo, false},
		{"quiet", LogLevelSilent, false},
		{"ERROR", LogLevelError, false},
		{"verbose", LogLevelVerbose, false},
		{" debug ", LogLevelDebug, false},
		{"trace", LogLevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
