package log

import (
	"io"
	"testing"
)

func TestLoggersNeverNil(t *testing.T) {
	if WarningLog == nil || ErrorLog == nil || DebugLog == nil {
		t.Fatal("package loggers must be usable before Initialize")
	}
	// Writing through a discard logger must not panic.
	WarningLog.Printf("warn %d", 1)
	DebugLog.Println("debug")
}

func TestInitialize_DisabledWithoutEnv(t *testing.T) {
	t.Setenv(DebugEnv, "")
	Initialize()
	t.Cleanup(Close)

	if Enabled() {
		t.Error("expected logging disabled without env var")
	}
	if DebugLog.Writer() != io.Discard {
		t.Error("expected discard logger while disabled")
	}
}
