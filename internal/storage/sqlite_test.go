package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	t := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.RecordSwatch("#ff0000"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	swatches, err := store.RecentSwatches(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(swatches) != 1 || swatches[0].Hex != "#ff0000" {
		t.Errorf("swatches after reopen = %+v", swatches)
	}
}

func TestRecordSwatch(t *testing.T) {
	store := openTestStore(t)
	store.now = fixedClock()

	for _, hex := range []string{"#ff0000", "#00FF00", "#ff0000", "#0000ff", "#ff0000"} {
		if err := store.RecordSwatch(hex); err != nil {
			t.Fatalf("RecordSwatch(%s) failed: %v", hex, err)
		}
	}

	recent, err := store.RecentSwatches(10)
	if err != nil {
		t.Fatalf("RecentSwatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 swatches, got %d", len(recent))
	}
	// Newest first, hex normalized to lowercase
	expected := []string{"#ff0000", "#0000ff", "#00ff00"}
	for i, hex := range expected {
		if recent[i].Hex != hex {
			t.Errorf("recent[%d] = %s, expected %s", i, recent[i].Hex, hex)
		}
	}
	if recent[0].Uses != 3 {
		t.Errorf("#ff0000 uses = %d, expected 3", recent[0].Uses)
	}
	if !recent[0].LastUsed.After(recent[1].LastUsed) {
		t.Error("LastUsed not ordered")
	}
}

func TestTopSwatches(t *testing.T) {
	store := openTestStore(t)
	store.now = fixedClock()

	for i := 0; i < 3; i++ {
		store.RecordSwatch("#111111")
	}
	store.RecordSwatch("#222222")
	store.RecordSwatch("#222222")
	store.RecordSwatch("#333333")

	top, err := store.TopSwatches(2)
	if err != nil {
		t.Fatalf("TopSwatches() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 swatches with limit, got %d", len(top))
	}
	if top[0].Hex != "#111111" || top[1].Hex != "#222222" {
		t.Errorf("TopSwatches order = %+v", top)
	}
}

func TestClearSwatches(t *testing.T) {
	store := openTestStore(t)
	store.RecordSwatch("#abcdef")

	if err := store.ClearSwatches(); err != nil {
		t.Fatalf("ClearSwatches() failed: %v", err)
	}
	swatches, _ := store.RecentSwatches(10)
	if len(swatches) != 0 {
		t.Errorf("Expected 0 swatches after clear, got %d", len(swatches))
	}
}

func TestSaveAndRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		_, err := store.SaveSession(SessionStats{
			SessionID:    "s" + string(rune('0'+i)),
			User:         "alice",
			GridSize:     16,
			Strokes:      i * 10,
			Fills:        i,
			Picks:        1,
			CellsChanged: i * 100,
			Duration:     60,
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	// Same-second inserts fall back to insertion order
	if sessions[0].SessionID != "s5" || sessions[2].SessionID != "s3" {
		t.Errorf("sessions not newest first: %s .. %s", sessions[0].SessionID, sessions[2].SessionID)
	}
	if sessions[0].CellsChanged != 500 || sessions[0].User != "alice" || sessions[0].GridSize != 16 {
		t.Errorf("session fields = %+v", sessions[0])
	}
	if sessions[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSessionByID(t *testing.T) {
	store := openTestStore(t)

	got, err := store.SessionByID("missing")
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown session, got %+v", got)
	}

	store.SaveSession(SessionStats{SessionID: "abc", GridSize: 32, Fills: 7})
	got, err = store.SessionByID("abc")
	if err != nil || got == nil {
		t.Fatalf("SessionByID(abc) = %v, %v", got, err)
	}
	if got.GridSize != 32 || got.Fills != 7 {
		t.Errorf("SessionByID(abc) = %+v", got)
	}
}

func TestSessionTotals(t *testing.T) {
	store := openTestStore(t)

	totals, err := store.SessionTotals()
	if err != nil {
		t.Fatalf("SessionTotals() failed: %v", err)
	}
	if totals.Sessions != 0 || totals.CellsChanged != 0 || !totals.LastSession.IsZero() {
		t.Errorf("empty totals = %+v", totals)
	}

	store.SaveSession(SessionStats{SessionID: "a", GridSize: 16, Strokes: 3, Fills: 1, CellsChanged: 40})
	store.SaveSession(SessionStats{SessionID: "b", GridSize: 8, Strokes: 2, Picks: 4, CellsChanged: 60})

	totals, err = store.SessionTotals()
	if err != nil {
		t.Fatalf("SessionTotals() failed: %v", err)
	}
	if totals.Sessions != 2 || totals.CellsChanged != 100 || totals.Strokes != 5 || totals.Fills != 1 || totals.Picks != 4 {
		t.Errorf("totals = %+v", totals)
	}
	if totals.LastSession.IsZero() {
		t.Error("LastSession should be set")
	}
}
