package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeExport(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("Failed to write export file: %v", err)
	}
	return path
}

func runSeedCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetContext(context.Background())
	cmd.SetArgs(append([]string{"seed"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestSeedCommand(t *testing.T) {
	pointConfigAtTempDirs(t)

	export := writeExport(t, `{
		"episodes": [{"id": "ep-1", "title": "Lunes", "shards": [
			{"id": "shard-1", "episodeId": "ep-1", "startTime": 0, "endTime": 3,
			 "analysis": {"transcript": "hola"}}
		]}]
	}`)

	output, err := runSeedCommand(t, export)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(output, `"episodesSeeded": 1`) {
		t.Errorf("Expected one seeded episode, got %q", output)
	}
	if !strings.Contains(output, `"shardsInserted": 1`) {
		t.Errorf("Expected one inserted shard, got %q", output)
	}

	// a second pass over the same export updates instead of inserting
	output, err = runSeedCommand(t, export)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(output, `"shardsInserted": 0`) {
		t.Errorf("Expected no new shards on re-import, got %q", output)
	}
	if !strings.Contains(output, `"shardsUpdated": 1`) {
		t.Errorf("Expected one updated shard on re-import, got %q", output)
	}
}

func TestSeedCommandRequiresFile(t *testing.T) {
	pointConfigAtTempDirs(t)

	if _, err := runSeedCommand(t); err == nil {
		t.Error("Expected an error when no export file is given")
	}

	if _, err := runSeedCommand(t, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing export file")
	}
}
