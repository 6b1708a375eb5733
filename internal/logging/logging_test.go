package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pet/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tuipet.log")

	logger, closer, err := New(config.LogConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("pet grew", "to", "baby")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "pet grew") || !strings.Contains(out, Prefix) {
		t.Errorf("log output = %q, expected the message and prefix", out)
	}
}

func TestNewAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuipet.log")
	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New(config.LogConfig{File: path})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		logger.Info(msg)
		closer.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log failed: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log output = %q, expected both runs", data)
	}
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"shouting", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, closer, err := New(config.LogConfig{Level: tc.level})
			if tc.wantErr {
				if err == nil {
					t.Error("New should reject an unknown level")
				}
				return
			}
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			defer closer.Close()
			if logger.GetLevel() != tc.want {
				t.Errorf("GetLevel() = %v, expected %v", logger.GetLevel(), tc.want)
			}
		})
	}
}
