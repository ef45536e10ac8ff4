package leaderboard

import (
	"os"
	"path/filepath"
	"testing"
)

func newBoard(t *testing.T) *Board {
	t.Helper()
	b := New(filepath.Join(t.TempDir(), "leaderboard.txt"))
	if err := b.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestLoadMissingFile(t *testing.T) {
	b := newBoard(t)
	if len(b.View()) != 0 {
		t.Errorf("View() = %v, want empty", b.View())
	}
}

func TestRecordSortsDescending(t *testing.T) {
	b := newBoard(t)
	for _, rec := range []struct {
		owner string
		score int
	}{
		{"alice", 70}, {"bob", 100}, {"carol", 90},
	} {
		if _, err := b.Record(rec.owner, rec.score, 60); err != nil {
			t.Fatalf("Record(%s): %v", rec.owner, err)
		}
	}

	view := b.View()
	want := []string{"bob", "carol", "alice"}
	for i, owner := range want {
		if view[i].Owner != owner {
			t.Errorf("rank %d = %s, want %s", i+1, view[i].Owner, owner)
		}
	}
}

func TestTiesPreserveInsertionOrder(t *testing.T) {
	b := newBoard(t)
	b.Record("first", 80, 10)
	b.Record("top", 90, 10)
	b.Record("second", 80, 10)
	b.Record("third", 80, 10)

	view := b.View()
	want := []string{"top", "first", "second", "third"}
	for i, owner := range want {
		if view[i].Owner != owner {
			t.Fatalf("rank %d = %s, want %s (view %v)", i+1, view[i].Owner, owner, view)
		}
	}
}

func TestTruncationEvictsLowest(t *testing.T) {
	b := newBoard(t)
	// Fill with 100, 90, ..., 10.
	for i := 0; i < 10; i++ {
		b.Record("u", 100-10*i, 30)
	}

	view, err := b.Record("newcomer", 95, 30)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if len(view) != MaxEntries {
		t.Fatalf("len(view) = %d, want %d", len(view), MaxEntries)
	}
	wantScores := []int{100, 95, 90, 80, 70, 60, 50, 40, 30, 20}
	for i, s := range wantScores {
		if view[i].Score != s {
			t.Errorf("rank %d score = %d, want %d", i+1, view[i].Score, s)
		}
	}
	if view[1].Owner != "newcomer" {
		t.Errorf("rank 2 = %s, want newcomer", view[1].Owner)
	}
}

func TestPersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.txt")
	b := New(path)
	if err := b.Load(); err != nil {
		t.Fatal(err)
	}
	b.Record("alice", 90, 45)
	b.Record("bob", 100, 80)

	reloaded := New(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	view := reloaded.View()
	if len(view) != 2 {
		t.Fatalf("len(view) = %d, want 2", len(view))
	}
	if view[0] != (Entry{Owner: "bob", Score: 100, Seconds: 80}) {
		t.Errorf("view[0] = %+v", view[0])
	}
	if view[1] != (Entry{Owner: "alice", Score: 90, Seconds: 45}) {
		t.Errorf("view[1] = %+v", view[1])
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.txt")
	content := "alice 90 45\n" +
		"\n" +
		"noscore\n" +
		"bob eighty\n" +
		"carol 70\n" + // legacy two-field schema
		"dave 60 extra fields here\n" +
		"erin 85 12\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b := New(path)
	if err := b.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	view := b.View()
	if len(view) != 3 {
		t.Fatalf("len(view) = %d, want 3 (view %v)", len(view), view)
	}
	if view[0].Owner != "alice" || view[1].Owner != "erin" || view[2].Owner != "carol" {
		t.Errorf("unexpected order: %v", view)
	}
	if view[2].Seconds != 0 {
		t.Errorf("legacy row seconds = %d, want 0", view[2].Seconds)
	}
}

func TestRecordPersistFailureKeepsRanking(t *testing.T) {
	// Point the board at a path whose parent directory doesn't exist so
	// the rewrite fails.
	b := New(filepath.Join(t.TempDir(), "missing", "leaderboard.txt"))
	view, err := b.Record("alice", 90, 10)
	if err == nil {
		t.Fatal("expected persist error")
	}
	if len(view) != 1 || view[0].Owner != "alice" {
		t.Errorf("in-memory ranking lost on persist failure: %v", view)
	}
}

func TestViewIsACopy(t *testing.T) {
	b := newBoard(t)
	b.Record("alice", 90, 10)
	view := b.View()
	view[0].Owner = "mallory"
	if b.View()[0].Owner != "alice" {
		t.Error("View() exposes internal state")
	}
}
