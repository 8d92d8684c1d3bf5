package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRecentRounds(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound("red wins", 14, 95); err != nil {
		t.Fatalf("SaveRound: %v", err)
	}
	if _, err := store.SaveRound("draw", 42, 380); err != nil {
		t.Fatalf("SaveRound: %v", err)
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, expected 2", len(rounds))
	}

	// Newest first
	if rounds[0].Outcome != "draw" || rounds[0].Moves != 42 {
		t.Errorf("rounds[0] = %+v", rounds[0])
	}
	if rounds[1].Outcome != "red wins" || rounds[1].DurationSecs != 95 {
		t.Errorf("rounds[1] = %+v", rounds[1])
	}
}

func TestRecentRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRound("yellow wins", 10+i, 60); err != nil {
			t.Fatalf("SaveRound: %v", err)
		}
	}

	rounds, err := store.RecentRounds(3)
	if err != nil {
		t.Fatalf("RecentRounds: %v", err)
	}
	if len(rounds) != 3 {
		t.Errorf("got %d rounds, expected 3", len(rounds))
	}
	if rounds[0].Moves != 14 {
		t.Errorf("rounds[0].Moves = %d, expected the newest entry first", rounds[0].Moves)
	}
}

func TestOutcomeTally(t *testing.T) {
	store := openTestStore(t)

	outcomes := []string{"red wins", "red wins", "yellow wins", "draw", "red wins"}
	for _, o := range outcomes {
		if _, err := store.SaveRound(o, 20, 120); err != nil {
			t.Fatalf("SaveRound: %v", err)
		}
	}

	tally, err := store.OutcomeTally()
	if err != nil {
		t.Fatalf("OutcomeTally: %v", err)
	}
	if tally.RedWins != 3 || tally.YellowWins != 1 || tally.Draws != 1 {
		t.Errorf("tally = %+v", tally)
	}
	if tally.Total() != 5 {
		t.Errorf("Total() = %d, expected 5", tally.Total())
	}
}

func TestOutcomeTallyEmpty(t *testing.T) {
	store := openTestStore(t)

	tally, err := store.OutcomeTally()
	if err != nil {
		t.Fatalf("OutcomeTally: %v", err)
	}
	if tally.Total() != 0 {
		t.Errorf("Total() = %d on empty store", tally.Total())
	}
}

func TestClearRounds(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound("draw", 42, 10); err != nil {
		t.Fatalf("SaveRound: %v", err)
	}
	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds: %v", err)
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("got %d rounds after clear, expected 0", len(rounds))
	}
}
