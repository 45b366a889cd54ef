package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/thoreinstein/claudecfg/internal/backup"
)

func TestOutputBackupListTabular_EmptyState(t *testing.T) {
	var buf bytes.Buffer
	err := outputBackupListTabular(&buf, "/home/u/.config/claude/config.json", nil)
	if err != nil {
		t.Fatalf("outputBackupListTabular() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "(no backups available)") {
		t.Error("output should indicate no backups available")
	}
	if !strings.Contains(output, "claudecfg backup create") {
		t.Error("output should suggest creating a backup")
	}
}

func TestOutputBackupListTabular_WithRecords(t *testing.T) {
	records := []backup.Record{
		{
			Path:         "/backups/config_20260115_103000.123.json",
			OriginalPath: "/home/u/.config/claude/config.json",
			CreatedAt:    time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
			Size:         512,
		},
		{
			Path:         "/backups/config_20260114_090000.001.json",
			OriginalPath: "/home/u/.config/claude/config.json",
			CreatedAt:    time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC),
			Size:         498,
		},
	}

	var buf bytes.Buffer
	err := outputBackupListTabular(&buf, "/home/u/.config/claude/config.json", records)
	if err != nil {
		t.Fatalf("outputBackupListTabular() error = %v", err)
	}

	output := buf.String()

	for _, header := range []string{"NAME", "CREATED", "SIZE"} {
		if !strings.Contains(output, header) {
			t.Errorf("output should contain %s header", header)
		}
	}

	if !strings.Contains(output, "config_20260115_103000.123.json") {
		t.Error("output should contain the backup file name")
	}
	if !strings.Contains(output, "512") {
		t.Error("output should contain the backup size")
	}
}
