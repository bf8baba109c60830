package analytics

import (
	"context"
	"testing"
	"time"
)

func newTestTracker(t *testing.T, now time.Time) *Tracker {
	t.Helper()
	tr, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { tr.Close() })
	tr.now = func() time.Time { return now }
	return tr
}

func TestMigrateIdempotent(t *testing.T) {
	tr := newTestTracker(t, time.Now())
	if err := tr.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestHashIP(t *testing.T) {
	tr := newTestTracker(t, time.Now())

	a := tr.HashIP("203.0.113.7")
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %q", a)
	}
	if a != tr.HashIP("203.0.113.7") {
		t.Error("hash should be stable within a tracker")
	}
	if a == tr.HashIP("203.0.113.8") {
		t.Error("different addresses should hash differently")
	}

	other := newTestTracker(t, time.Now())
	if a == other.HashIP("203.0.113.7") {
		t.Error("hashes should be salted per tracker")
	}
}

func TestRecordNeverStoresRawIP(t *testing.T) {
	tr := newTestTracker(t, time.Now())
	ctx := context.Background()

	if err := tr.Record(ctx, Event{ClientIP: "198.51.100.23", Path: "/"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	var stored string
	if err := tr.db.QueryRow(`SELECT hashed_ip FROM events`).Scan(&stored); err != nil {
		t.Fatalf("query: %v", err)
	}
	if stored == "198.51.100.23" || stored != tr.HashIP("198.51.100.23") {
		t.Errorf("unexpected stored address %q", stored)
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)
	ctx := context.Background()

	events := []Event{
		{ClientIP: "a", Kind: KindView, Path: "/", At: now.Add(-time.Hour)},
		{ClientIP: "a", Kind: KindView, Path: "/", At: now.Add(-2 * time.Hour)},
		{ClientIP: "b", Kind: KindView, Path: "/", At: now.Add(-3 * 24 * time.Hour)},
		{ClientIP: "c", Kind: KindView, Path: "/", At: now.Add(-30 * 24 * time.Hour)},
		{ClientIP: "a", Kind: KindTab, Subject: "about", At: now},
		{ClientIP: "b", Kind: KindTab, Subject: "about", At: now},
		{ClientIP: "b", Kind: KindTab, Subject: "contact", At: now},
		{ClientIP: "a", Kind: KindProject, Subject: "3", At: now},
		{ClientIP: "b", Kind: KindProject, Subject: "3", At: now},
		{ClientIP: "c", Kind: KindProject, Subject: "1", At: now},
		{ClientIP: "c", Kind: KindProject, Subject: "6", At: now},
	}
	for _, e := range events {
		if err := tr.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	stats, err := tr.Stats(ctx, 2)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalViews != 4 {
		t.Errorf("total views: got %d, want 4", stats.TotalViews)
	}
	if stats.UniqueVisitors != 3 {
		t.Errorf("unique visitors: got %d, want 3", stats.UniqueVisitors)
	}
	if stats.ViewsToday != 2 {
		t.Errorf("views today: got %d, want 2", stats.ViewsToday)
	}
	if stats.ViewsThisWeek != 3 {
		t.Errorf("views this week: got %d, want 3", stats.ViewsThisWeek)
	}

	if len(stats.TabSelections) != 2 || stats.TabSelections[0] != (SubjectCount{"about", 2}) {
		t.Errorf("tab selections: %+v", stats.TabSelections)
	}
	if len(stats.TopProjects) != 2 {
		t.Fatalf("expected top 2 projects, got %+v", stats.TopProjects)
	}
	if stats.TopProjects[0] != (SubjectCount{"3", 2}) || stats.TopProjects[1] != (SubjectCount{"1", 1}) {
		t.Errorf("top projects: %+v", stats.TopProjects)
	}
}

func TestStatsEmpty(t *testing.T) {
	tr := newTestTracker(t, time.Now())
	stats, err := tr.Stats(context.Background(), 5)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalViews != 0 || stats.TopProjects == nil || len(stats.TopProjects) != 0 {
		t.Errorf("unexpected empty stats: %+v", stats)
	}
}

func TestCleanup(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)
	ctx := context.Background()

	for _, age := range []time.Duration{time.Hour, 400 * 24 * time.Hour, 500 * 24 * time.Hour} {
		if err := tr.Record(ctx, Event{ClientIP: "x", At: now.Add(-age)}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	n, err := tr.Cleanup(ctx, 365*24*time.Hour)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows removed, got %d", n)
	}

	stats, err := tr.Stats(ctx, 5)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalViews != 1 {
		t.Errorf("expected 1 remaining view, got %d", stats.TotalViews)
	}
}
