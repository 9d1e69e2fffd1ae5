package utils

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// Log verbosity levels, as accepted by SetLogVerbosity.
const (
	VerbositySilent = iota
	VerbosityError
	VerbosityWarn
	VerbosityInfo
	VerbosityDebug
	VerbosityDetail
)

var (
	logMu        sync.Mutex
	logVerbosity = VerbosityInfo
	logWriters   = []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	zeroLogger   *zerolog.Logger
)

// Logger returns the process-wide logger, building it on first use.
func Logger() *zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	if zeroLogger == nil {
		rebuildLogger()
	}
	return zeroLogger
}

// SetLogVerbosity sets the verbosity of the process-wide logger:
// 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail.
func SetLogVerbosity(verbosity int) {
	logMu.Lock()
	defer logMu.Unlock()
	logVerbosity = verbosity
	rebuildLogger()
}

// SetLogOutput replaces every log destination with w.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	logWriters = []io.Writer{w}
	rebuildLogger()
}

// AddLogFile adds a rotating log file to the logger destinations. Rotation
// happens once the file reaches rotateMaxSize megabytes, keeping at most
// rotateMaxCount old files.
func AddLogFile(filename string, rotateMaxSize, rotateMaxCount int) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	logMu.Lock()
	defer logMu.Unlock()
	logWriters = append(logWriters, &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    rotateMaxSize,
		MaxBackups: rotateMaxCount,
		Compress:   true,
	})
	rebuildLogger()
	return nil
}

// caller holds logMu
func rebuildLogger() {
	var w io.Writer
	if len(logWriters) == 1 {
		w = logWriters[0]
	} else {
		w = zerolog.MultiLevelWriter(logWriters...)
	}
	logger := zerolog.New(w).Level(verbosityToLevel(logVerbosity)).With().Timestamp().Logger()
	if zeroLogger == nil {
		zeroLogger = &logger
	} else {
		*zeroLogger = logger
	}
}

func verbosityToLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity <= VerbositySilent:
		return zerolog.Disabled
	case verbosity == VerbosityError:
		return zerolog.ErrorLevel
	case verbosity == VerbosityWarn:
		return zerolog.WarnLevel
	case verbosity == VerbosityInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
