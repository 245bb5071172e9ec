package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
)

var (
	errorLogger *log.Logger
	debugLogger *log.Logger

	// pointer moves arrive every frame while dragging; keep the debug log readable
	traceLimiter = rate.NewLimiter(rate.Every(250*time.Millisecond), 4)
	// a broken settings file can fail evaluation every frame
	frameErrLimiter = rate.NewLimiter(rate.Every(5*time.Second), 1)
)

// logToConsole mirrors log output to consoleOut. The terminal editor owns
// stdout and turns it off.
var (
	logToConsole           = true
	consoleOut   io.Writer = os.Stdout
	errLogFile   io.Writer
)

func setupLogging(debug bool) {
	logDir := filepath.Join(baseDir, "logs", "errors")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Printf("could not create log directory: %v\n", err)
	}
	ts := time.Now().Format("20060102-150405")

	errPath := filepath.Join(logDir, fmt.Sprintf("error-%s.log", ts))
	errFile, err := os.Create(errPath)
	errLogFile = nil
	if err == nil {
		errLogFile = errFile
	}
	errorLogger = log.New(errorWriter(), "", log.LstdFlags)
	log.SetOutput(errorLogger.Writer())

	setDebugLogging(debug)
}

func logError(format string, v ...interface{}) {
	if errorLogger != nil {
		errorLogger.Printf(format, v...)
	}
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}

// logTrace is logDebug for per-frame events, dropped when they come too fast.
func logTrace(format string, v ...interface{}) {
	if debugLogger == nil || !traceLimiter.Allow() {
		return
	}
	debugLogger.Printf(format, v...)
}

// logFrameError reports a failed frame without flooding the log.
func logFrameError(err error) {
	if frameErrLimiter.Allow() {
		logError("frame: %v", err)
	}
}

func setDebugLogging(enabled bool) {
	if enabled {
		logDir := filepath.Join(baseDir, "logs", "errors")
		if err := os.MkdirAll(logDir, 0755); err != nil {
			fmt.Printf("could not create log directory: %v\n", err)
		}
		ts := time.Now().Format("20060102-150405")
		dbgPath := filepath.Join(logDir, fmt.Sprintf("debug-%s.log", ts))
		dbgFile, err := os.Create(dbgPath)
		dbgWriter := consoleWriter()
		if err == nil {
			dbgWriter = io.MultiWriter(dbgWriter, dbgFile)
		}
		debugLogger = log.New(dbgWriter, "", log.LstdFlags)
	} else {
		debugLogger = nil
	}
}

func consoleWriter() io.Writer {
	if logToConsole {
		return consoleOut
	}
	return io.Discard
}

func errorWriter() io.Writer {
	if errLogFile == nil {
		return consoleWriter()
	}
	return io.MultiWriter(consoleWriter(), errLogFile)
}

// enableConsoleLogging turns console output back on once the terminal
// editor has released the screen, so fatal errors reach the user.
func enableConsoleLogging() {
	logToConsole = true
	w := errorWriter()
	if errorLogger != nil {
		errorLogger.SetOutput(w)
	}
	log.SetOutput(w)
}
