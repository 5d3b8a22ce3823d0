package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info", debug: false, wantDebug: false},
		{name: "debug", debug: true, wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trackside.log")
			l, closer, err := New(path, tt.debug)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			l.Debug("lane time recorded", "lane", 3)
			l.Info("dashboard opened", "event", "ev1")
			if err := closer.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			out := string(data)
			if !strings.Contains(out, `msg="dashboard opened" event=ev1`) {
				t.Fatalf("expected info record, got %q", out)
			}
			if got := strings.Contains(out, "lane=3"); got != tt.wantDebug {
				t.Fatalf("debug record present = %v, expected %v", got, tt.wantDebug)
			}
		})
	}
}

func TestNewWithoutPath(t *testing.T) {
	l, closer, err := New("", true)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Info("ignored")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewBadPath(t *testing.T) {
	if _, _, err := New(filepath.Join(t.TempDir(), "missing", "x.log"), false); err == nil {
		t.Fatal("expected error")
	}
}
