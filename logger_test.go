package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnableConsoleLogging(t *testing.T) {
	savedDir, savedConsole, savedOut := baseDir, logToConsole, consoleOut
	savedErr, savedDbg, savedStd := errorLogger, debugLogger, log.Writer()
	t.Cleanup(func() {
		if c, ok := errLogFile.(io.Closer); ok {
			c.Close()
		}
		errLogFile = nil
		baseDir, logToConsole, consoleOut = savedDir, savedConsole, savedOut
		errorLogger, debugLogger = savedErr, savedDbg
		log.SetOutput(savedStd)
	})

	baseDir = t.TempDir()
	var console bytes.Buffer
	consoleOut = &console
	logToConsole = false
	setupLogging(false)

	log.Printf("while the screen is held")
	if console.Len() != 0 {
		t.Fatalf("console got %q with console logging off", console.String())
	}

	enableConsoleLogging()
	log.Printf("terminal: no tty")
	logError("after release")
	if got := console.String(); !strings.Contains(got, "terminal: no tty") || !strings.Contains(got, "after release") {
		t.Errorf("console output %q", got)
	}

	files, err := filepath.Glob(filepath.Join(baseDir, "logs", "errors", "error-*.log"))
	if err != nil || len(files) != 1 {
		t.Fatalf("log files %v, err %v", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"while the screen is held", "terminal: no tty"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q", want)
		}
	}
}
