package db

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenPath(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestRecordAndList(t *testing.T) {
	t.Parallel()

	d := openTestDB(t)
	ctx := context.Background()

	events := []LaunchEvent{
		{Script: "app.py", EnvRoot: "/work/venv", Interpreter: "/work/venv/bin/python", ExitCode: 0, Timestamp: 100, Duration: 1200},
		{Script: "app.py", EnvRoot: "", Interpreter: "/usr/bin/python3", ExitCode: 3, Timestamp: 200, Duration: 50},
	}
	for _, e := range events {
		if err := d.RecordLaunch(ctx, e); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
	}

	got, err := d.ListLaunches(ctx, 10)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Timestamp != 200 || got[1].Timestamp != 100 {
		t.Fatalf("order mismatch: %+v", got)
	}
	if got[0].ExitCode != 3 || got[0].EnvRoot != "" {
		t.Fatalf("event mismatch: %+v", got[0])
	}
}

func TestListLimit(t *testing.T) {
	t.Parallel()

	d := openTestDB(t)
	ctx := context.Background()

	for i := range 5 {
		e := LaunchEvent{Script: "app.py", Interpreter: "python", Timestamp: int64(i)}
		if err := d.RecordLaunch(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := d.ListLaunches(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("limit ignored: got %d events", len(got))
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	d := openTestDB(t)
	ctx := context.Background()

	if err := d.RecordLaunch(ctx, LaunchEvent{Script: "app.py", Interpreter: "python", Timestamp: 1}); err != nil {
		t.Fatal(err)
	}
	if err := d.Clear(ctx); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}

	got, err := d.ListLaunches(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d events", len(got))
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.db")
	d, err := OpenPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopening runs migrations again; ErrNoChange must be tolerated.
	d2, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	_ = d2.Close()
}
