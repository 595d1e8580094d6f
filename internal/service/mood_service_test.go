package service

import (
	"ReflectAI/internal/model"
	"context"
	"testing"
)

func makeEntry(id, userID, mood, date string, timestamp int64) *model.JournalEntry {
	return &model.JournalEntry{
		ID:        id,
		UserID:    userID,
		Mood:      mood,
		Date:      date,
		Timestamp: timestamp,
	}
}

func TestComputeMoodCountsDedupByDate(t *testing.T) {
	entries := []*model.JournalEntry{
		makeEntry("e1", "u1", model.MoodHappy, "2026-03-01", 100),
		makeEntry("e2", "u1", model.MoodSad, "2026-03-01", 200),
		makeEntry("e3", "u1", model.MoodNeutral, "2026-03-02", 150),
	}

	counts := ComputeMoodCounts(entries)

	// 同一天两条，时间戳更新的 sad 胜出
	if counts.Happy != 0 || counts.Sad != 1 || counts.Neutral != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if counts.Total() != 2 {
		t.Fatalf("expected total 2, got %d", counts.Total())
	}
}

func TestComputeMoodCountsIgnoresUnknownMood(t *testing.T) {
	entries := []*model.JournalEntry{
		makeEntry("e1", "u1", "ecstatic", "2026-03-01", 100),
		makeEntry("e2", "u1", model.MoodHappy, "2026-03-02", 100),
	}

	counts := ComputeMoodCounts(entries)

	if counts.Total() != 1 || counts.Happy != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestComputeMoodCountsUnknownMoodStillOccupiesDate(t *testing.T) {
	// 非法心情值不计入计数器，但它仍是那一天的最新条目，
	// 同日更早的合法条目不会顶替它
	entries := []*model.JournalEntry{
		makeEntry("e1", "u1", model.MoodHappy, "2026-03-01", 100),
		makeEntry("e2", "u1", "ecstatic", "2026-03-01", 200),
	}

	counts := ComputeMoodCounts(entries)

	if counts.Total() != 0 {
		t.Fatalf("expected total 0, got %+v", counts)
	}
}

func TestComputeMoodCountsEmpty(t *testing.T) {
	counts := ComputeMoodCounts(nil)
	if counts.Total() != 0 {
		t.Fatalf("expected zero counts, got %+v", counts)
	}
}

func TestRecountUserIdempotent(t *testing.T) {
	ctx := context.Background()
	entryRepo := newFakeEntryRepo()
	userRepo := newFakeUserRepo()
	cache := newFakeCache()
	svc := NewMoodService(entryRepo, userRepo, cache)

	_ = entryRepo.Insert(ctx, makeEntry("e1", "u1", model.MoodHappy, "2026-03-01", 100))
	_ = entryRepo.Insert(ctx, makeEntry("e2", "u1", model.MoodSad, "2026-03-02", 100))
	_ = entryRepo.Insert(ctx, makeEntry("e3", "u2", model.MoodHappy, "2026-03-01", 100))

	for i := 0; i < 3; i++ {
		if err := svc.RecountUser(ctx, "u1"); err != nil {
			t.Fatalf("recount %d failed: %v", i, err)
		}
	}

	counts, err := svc.GetMoodCounts(ctx, "u1")
	if err != nil {
		t.Fatalf("get counts failed: %v", err)
	}
	if counts.Happy != 1 || counts.Sad != 1 || counts.Neutral != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestRecountUserScopedToUser(t *testing.T) {
	ctx := context.Background()
	entryRepo := newFakeEntryRepo()
	userRepo := newFakeUserRepo()
	cache := newFakeCache()
	svc := NewMoodService(entryRepo, userRepo, cache)

	_ = entryRepo.Insert(ctx, makeEntry("e1", "u1", model.MoodHappy, "2026-03-01", 100))
	_ = entryRepo.Insert(ctx, makeEntry("e2", "u2", model.MoodSad, "2026-03-01", 100))

	if err := svc.RecountUser(ctx, "u1"); err != nil {
		t.Fatalf("recount failed: %v", err)
	}

	counts, _ := svc.GetMoodCounts(ctx, "u1")
	if counts.Happy != 1 || counts.Sad != 0 {
		t.Fatalf("u2 entries leaked into u1 counts: %+v", counts)
	}
}

func TestGetMoodCountsCachesResult(t *testing.T) {
	ctx := context.Background()
	entryRepo := newFakeEntryRepo()
	userRepo := newFakeUserRepo()
	cache := newFakeCache()
	svc := NewMoodService(entryRepo, userRepo, cache)

	_ = userRepo.SetMoodCounts(ctx, "u1", &model.MoodCounts{Happy: 2})

	first, err := svc.GetMoodCounts(ctx, "u1")
	if err != nil {
		t.Fatalf("get counts failed: %v", err)
	}

	// 绕过服务直接改库，缓存命中时应返回旧值
	_ = userRepo.SetMoodCounts(ctx, "u1", &model.MoodCounts{Happy: 5})

	second, err := svc.GetMoodCounts(ctx, "u1")
	if err != nil {
		t.Fatalf("get counts failed: %v", err)
	}
	if second.Happy != first.Happy {
		t.Fatalf("expected cached counts %+v, got %+v", first, second)
	}
}
