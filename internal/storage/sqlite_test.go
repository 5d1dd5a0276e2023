package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordRunAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunSummary{
		{Score: 120, Level: 2, MaxLength: 8, FoodEaten: 11, Duration: 95, Seed: 1},
		{Score: 340, Level: 4, MaxLength: 14, FoodEaten: 28, Duration: 210, Seed: 2},
		{Score: 60, Level: 1, MaxLength: 6, FoodEaten: 5, Duration: 40, Seed: 3},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("failed to record run: %v", err)
		}
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("failed to query top runs: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(top))
	}
	if top[0].Score != 340 || top[1].Score != 120 {
		t.Errorf("wrong order: %d, %d", top[0].Score, top[1].Score)
	}
}

func TestRecordRunReportsNewBest(t *testing.T) {
	store := openTestStore(t)

	newBest, err := store.RecordRun(RunSummary{Score: 100})
	if err != nil {
		t.Fatalf("failed to record run: %v", err)
	}
	if !newBest {
		t.Error("first run should be a new best")
	}

	newBest, err = store.RecordRun(RunSummary{Score: 80})
	if err != nil {
		t.Fatalf("failed to record run: %v", err)
	}
	if newBest {
		t.Error("lower score should not be a new best")
	}

	newBest, err = store.RecordRun(RunSummary{Score: 150})
	if err != nil {
		t.Fatalf("failed to record run: %v", err)
	}
	if !newBest {
		t.Error("higher score should be a new best")
	}
}

func TestStatsAccumulate(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun(RunSummary{Score: 100, MaxLength: 10, FoodEaten: 8, PowerUps: 3, Duration: 60})
	store.RecordRun(RunSummary{Score: 50, MaxLength: 15, FoodEaten: 4, PowerUps: 1, Duration: 30})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("failed to read stats: %v", err)
	}
	if stats.BestScore != 100 {
		t.Errorf("expected best score 100, got %d", stats.BestScore)
	}
	if stats.LongestSnake != 15 {
		t.Errorf("expected longest snake 15, got %d", stats.LongestSnake)
	}
	if stats.TotalFood != 12 {
		t.Errorf("expected total food 12, got %d", stats.TotalFood)
	}
	if stats.TotalPowerUps != 4 {
		t.Errorf("expected 4 power-ups, got %d", stats.TotalPowerUps)
	}
	if stats.TotalRuns != 2 {
		t.Errorf("expected 2 runs, got %d", stats.TotalRuns)
	}
	if stats.TotalPlaySecs != 90 {
		t.Errorf("expected 90 play seconds, got %g", stats.TotalPlaySecs)
	}
	if avg := stats.AverageScore(); avg != 75 {
		t.Errorf("expected average score 75, got %g", avg)
	}
}

func TestSelectedThemePersists(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SelectedTheme()
	if err != nil {
		t.Fatalf("failed to read selected theme: %v", err)
	}
	if id != "classic" {
		t.Errorf("fresh profile should select classic, got %q", id)
	}

	if err := store.SetSelectedTheme("neon"); err != nil {
		t.Fatalf("failed to set theme: %v", err)
	}
	id, err = store.SelectedTheme()
	if err != nil {
		t.Fatalf("failed to re-read selected theme: %v", err)
	}
	if id != "neon" {
		t.Errorf("expected neon, got %q", id)
	}
}

func TestUnlocksFollowStats(t *testing.T) {
	store := openTestStore(t)

	ids, err := store.UnlockedThemes()
	if err != nil {
		t.Fatalf("failed to read unlocks: %v", err)
	}
	if len(ids) != 1 || ids[0] != "classic" {
		t.Fatalf("fresh store should hold only classic, got %v", ids)
	}

	// A 250-point run crosses the neon threshold.
	store.RecordRun(RunSummary{Score: 260, MaxLength: 10, FoodEaten: 20})
	fresh, err := store.UpdateUnlocks()
	if err != nil {
		t.Fatalf("failed to update unlocks: %v", err)
	}
	if len(fresh) != 1 || fresh[0] != "neon" {
		t.Fatalf("expected neon freshly unlocked, got %v", fresh)
	}

	// Running the check again must not re-report it.
	fresh, err = store.UpdateUnlocks()
	if err != nil {
		t.Fatalf("failed to update unlocks: %v", err)
	}
	if len(fresh) != 0 {
		t.Errorf("expected no new unlocks, got %v", fresh)
	}
}

func TestTopRunsEmptyStore(t *testing.T) {
	store := openTestStore(t)

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("failed to query empty store: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("expected no runs, got %d", len(top))
	}
}
