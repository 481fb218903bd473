package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsSolves(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveSolve("pipes", 1, 5, ""); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if moves, ok, err := store.BestMoves("pipes", 1); err != nil || !ok || moves != 5 {
		t.Errorf("expected persisted best of 5, got %d %v %v", moves, ok, err)
	}
}

func TestStoreTopSolves(t *testing.T) {
	store := openTestStore(t)

	solves := []struct {
		level, moves int
		player       string
	}{
		{1, 9, "alice"},
		{1, 4, "bob"},
		{1, 6, ""},
		{1, 4, "carol"},
		{2, 3, "alice"},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve("pipes", s.level, s.moves, s.player); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	top, err := store.TopSolves("pipes", 1, 3)
	if err != nil {
		t.Fatalf("TopSolves() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 solves with limit, got %d", len(top))
	}
	want := []struct {
		moves  int
		player string
	}{{4, "bob"}, {4, "carol"}, {6, LocalPlayer}}
	for i, w := range want {
		if top[i].Moves != w.moves || top[i].Player != w.player {
			t.Errorf("solve %d: expected %d by %s, got %d by %s", i, w.moves, w.player, top[i].Moves, top[i].Player)
		}
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at should be parsed")
	}
}

func TestStoreBestByLevel(t *testing.T) {
	store := openTestStore(t)

	for _, s := range [][2]int{{3, 10}, {1, 7}, {3, 8}, {1, 7}} {
		if _, err := store.SaveSolve("pipes", s[0], s[1], ""); err != nil {
			t.Fatal(err)
		}
	}
	store.SaveSolve("other", 1, 1, "")

	best, err := store.BestByLevel("pipes")
	if err != nil {
		t.Fatalf("BestByLevel() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(best))
	}
	if best[0].LevelID != 1 || best[0].BestMoves != 7 || best[0].Solves != 2 {
		t.Errorf("unexpected level 1 summary %+v", best[0])
	}
	if best[1].LevelID != 3 || best[1].BestMoves != 8 || best[1].Solves != 2 {
		t.Errorf("unexpected level 3 summary %+v", best[1])
	}

	solved, err := store.SolvedLevels("pipes")
	if err != nil {
		t.Fatal(err)
	}
	if !solved[1] || !solved[3] || solved[2] {
		t.Errorf("unexpected solved set %v", solved)
	}
}

func TestStoreBestMovesEmpty(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestMoves("pipes", 1)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if ok {
		t.Error("unsolved level should report no best")
	}
	if _, ok, err := store.LastSolve("pipes"); err != nil || ok {
		t.Errorf("expected no last solve, got %v %v", ok, err)
	}
}

func TestStoreLastAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve("pipes", 2, 12, "")
	store.SaveSolve("pipes", 4, 20, "dave")

	last, ok, err := store.LastSolve("pipes")
	if err != nil || !ok {
		t.Fatalf("LastSolve() = %v %v", ok, err)
	}
	if last.LevelID != 4 || last.Player != "dave" {
		t.Errorf("unexpected last solve %+v", last)
	}

	if err := store.ClearSolves("pipes"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}
	best, _ := store.BestByLevel("pipes")
	if len(best) != 0 {
		t.Errorf("expected no solves after clear, got %v", best)
	}
}
