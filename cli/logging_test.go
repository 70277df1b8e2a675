package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

// inTempDir runs the test from an empty directory so logs/ never lands in the module
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)

	if f := SetupLogging(false); f != nil {
		t.Error("expected nil log file when debug=false")
		f.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory created without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)

	f := SetupLogging(true)
	if f == nil {
		t.Fatal("expected log file when debug=true")
	}
	defer f.Close()

	logPath := filepath.Join(logDir, logFileName)
	log.Println("test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain content")
	}
	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("log output must not be stdout or stderr")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write large log: %v", err)
	}

	f := SetupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log size = %d, want fresh file", info.Size())
	}
}
