package logging

// Leveled logging for the pmbus tool

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelSilent:
		return "silent"
	case LogLevelError:
		return "error"
	case LogLevelInfo:
		return "info"
	case LogLevelVerbose:
		return "verbose"
	case LogLevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a level name from the config file or command line.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent", "quiet":
		return LogLevelSilent, nil
	case "error":
		return LogLevelError, nil
	case "", "info":
		return LogLevelInfo, nil
	case "verbose":
		return LogLevelVerbose, nil
	case "debug":
		return LogLevelDebug, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger writes errors to stderr and, at verbose or debug level, everything
// else to stdout. A log file, when given, receives every message at or
// below the level.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	fileLog *log.Logger
	stdout  *log.Logger
	stderr  *log.Logger
}

// NewLogger creates a logger on the process's stdout and stderr.
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	return NewLoggerTo(level, logFile, os.Stdout, os.Stderr)
}

// NewLoggerTo creates a logger on the given writers.
func NewLoggerTo(level LogLevel, logFile string, stdout, stderr io.Writer) (*Logger, error) {
	l := &Logger{
		level:  level,
		stdout: log.New(stdout, "", 0),
		stderr: log.New(stderr, "", 0),
	}

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.fileLog = nil
		return err
	}
	return nil
}

func (l *Logger) Error(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelError {
		l.write("ERROR: "+fmt.Sprintf(format, v...), true)
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelInfo {
		l.write("INFO: "+fmt.Sprintf(format, v...), false)
	}
}

func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelVerbose {
		l.write("VERBOSE: "+fmt.Sprintf(format, v...), false)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelDebug {
		l.write("DEBUG: "+fmt.Sprintf(format, v...), false)
	}
}

func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}

	if isError {
		l.stderr.Println(msg)
	} else if l.level >= LogLevelVerbose {
		l.stdout.Println(msg)
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogDecode records the outcome of decoding or rewriting a payload.
func (l *Logger) LogDecode(device, command string, payload []byte, fields int, err error) {
	if err != nil {
		l.Info("FAILED %s %s [%s]: %v", device, command, hexBytes(payload), err)
		return
	}
	l.Verbose("decoded %s %s [%s]: %d fields", device, command, hexBytes(payload), fields)
}

// LogStartup records the effective settings.
func (l *Logger) LogStartup(device, voutMode, configPath string) {
	l.Verbose("pmbus starting")
	l.Verbose("  Device: %s", device)
	l.Verbose("  VOUT_MODE: %s", voutMode)
	if configPath != "" {
		l.Verbose("  Config: %s", configPath)
	}
}

// LogHex logs bytes at debug level, space separated.
func (l *Logger) LogHex(label string, data []byte) {
	if l.GetLevel() >= LogLevelDebug {
		l.Debug("%s: %s", label, hexBytes(data))
	}
}

func hexBytes(data []byte) string {
	var b strings.Builder
	for i, c := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}
