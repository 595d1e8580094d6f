package service

import (
	"ReflectAI/internal/api/dto"
	"ReflectAI/internal/model"
	"ReflectAI/internal/pkg/consts"
	"context"
	"errors"
	"testing"
)

type entryFixture struct {
	entryRepo    *fakeEntryRepo
	analysisRepo *fakeAnalysisRepo
	userRepo     *fakeUserRepo
	cache        *fakeCache
	moodSvc      MoodService
	svc          EntryService
}

func newEntryFixture() *entryFixture {
	entryRepo := newFakeEntryRepo()
	analysisRepo := newFakeAnalysisRepo()
	userRepo := newFakeUserRepo()
	cache := newFakeCache()
	moodSvc := NewMoodService(entryRepo, userRepo, cache)
	return &entryFixture{
		entryRepo:    entryRepo,
		analysisRepo: analysisRepo,
		userRepo:     userRepo,
		cache:        cache,
		moodSvc:      moodSvc,
		svc:          NewEntryService(entryRepo, analysisRepo, moodSvc, cache),
	}
}

func upsertDTO(mood, date string) *dto.EntryUpsertDTO {
	return &dto.EntryUpsertDTO{
		Title:   "一天",
		Content: "今天过得不错",
		Mood:    mood,
		Date:    date,
	}
}

func TestCreateEntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	id, err := f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty id")
	}

	entry, err := f.svc.GetEntry(ctx, "u1", id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if entry == nil {
		t.Fatalf("expected entry, got nil")
	}
	if entry.Mood != model.MoodHappy || entry.Date != "2026-03-01" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.AIAnalysis != consts.AnalysisPlaceholder {
		t.Fatalf("expected analysis placeholder, got %q", entry.AIAnalysis)
	}
	if entry.Timestamp == 0 {
		t.Fatalf("expected timestamp to be assigned")
	}

	// 写入后心情计数同步更新
	counts, _ := f.moodSvc.GetMoodCounts(ctx, "u1")
	if counts.Happy != 1 || counts.Total() != 1 {
		t.Fatalf("unexpected counts after create: %+v", counts)
	}
}

func TestCreateEntryRequiresUser(t *testing.T) {
	f := newEntryFixture()
	_, err := f.svc.CreateEntry(context.Background(), "", upsertDTO(model.MoodHappy, "2026-03-01"))
	if !errors.Is(err, ErrNoCurrentUser) {
		t.Fatalf("expected ErrNoCurrentUser, got %v", err)
	}
}

func TestUpdateEntryRecountsMood(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	id, _ := f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))

	if err := f.svc.UpdateEntry(ctx, "u1", id, upsertDTO(model.MoodSad, "2026-03-01")); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	counts, _ := f.moodSvc.GetMoodCounts(ctx, "u1")
	if counts.Sad != 1 || counts.Happy != 0 {
		t.Fatalf("expected counts to follow updated mood, got %+v", counts)
	}
}

func TestUpdateEntryValidations(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	id, _ := f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))

	if err := f.svc.UpdateEntry(ctx, "u1", "", upsertDTO(model.MoodSad, "2026-03-01")); !errors.Is(err, ErrEntryIDEmpty) {
		t.Fatalf("expected ErrEntryIDEmpty, got %v", err)
	}
	if err := f.svc.UpdateEntry(ctx, "u1", "missing", upsertDTO(model.MoodSad, "2026-03-01")); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if err := f.svc.UpdateEntry(ctx, "u2", id, upsertDTO(model.MoodSad, "2026-03-01")); !errors.Is(err, ErrEntryNotOwned) {
		t.Fatalf("expected ErrEntryNotOwned, got %v", err)
	}
}

func TestDeleteEntryCascadesAnalysis(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	id, _ := f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))
	_ = f.analysisRepo.Save(ctx, &model.AIAnalysis{EntryID: id, Feedback: "ok"})

	if err := f.svc.DeleteEntry(ctx, "u1", id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	entry, _ := f.svc.GetEntry(ctx, "u1", id)
	if entry != nil {
		t.Fatalf("expected entry gone, got %+v", entry)
	}
	analysis, _ := f.analysisRepo.GetByEntryID(ctx, id)
	if analysis != nil {
		t.Fatalf("expected analysis cascade-deleted")
	}

	counts, _ := f.moodSvc.GetMoodCounts(ctx, "u1")
	if counts.Total() != 0 {
		t.Fatalf("expected zero counts after delete, got %+v", counts)
	}
}

func TestDeleteEntryToleratesAnalysisCascadeFailure(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	id, _ := f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))
	_ = f.analysisRepo.Save(ctx, &model.AIAnalysis{EntryID: id, Feedback: "ok"})
	f.analysisRepo.failDelete = true

	// 级联删除失败不回滚已生效的条目删除
	if err := f.svc.DeleteEntry(ctx, "u1", id); err != nil {
		t.Fatalf("delete should tolerate cascade failure, got %v", err)
	}

	entry, _ := f.svc.GetEntry(ctx, "u1", id)
	if entry != nil {
		t.Fatalf("expected entry gone, got %+v", entry)
	}

	// 重算仍然执行，计数不再包含已删除的条目
	counts, _ := f.moodSvc.GetMoodCounts(ctx, "u1")
	if counts.Total() != 0 {
		t.Fatalf("expected zero counts after delete, got %+v", counts)
	}

	// 残留的分析记录标脏等待补偿，变更广播照常发出
	if !f.cache.sets[consts.MoodDirtyKey]["u1"] {
		t.Fatalf("expected user marked dirty, got %v", f.cache.sets)
	}
	channel := consts.JournalFeedKey + "u1"
	if len(f.cache.published[channel]) != 2 {
		t.Fatalf("expected create+delete broadcasts, got %v", f.cache.published)
	}
}

func TestGetEntryForeignLooksMissing(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	id, _ := f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))

	entry, err := f.svc.GetEntry(ctx, "u2", id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry != nil {
		t.Fatalf("foreign entry should look missing, got %+v", entry)
	}
}

func TestGetEntryDatesForRangeInclusive(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	for _, date := range []string{"2026-02-28", "2026-03-01", "2026-03-15", "2026-03-31", "2026-04-01"} {
		if _, err := f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, date)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	dates := f.svc.GetEntryDatesForRange(ctx, "u1", "2026-03-01", "2026-03-31")
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %v", dates)
	}
	for _, want := range []string{"2026-03-01", "2026-03-15", "2026-03-31"} {
		if !dates[want] {
			t.Fatalf("expected %s in range, got %v", want, dates)
		}
	}
}

func TestReadsDegradeOnStorageFailure(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	_, _ = f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))
	f.entryRepo.failAll = true

	if entries := f.svc.ListEntries(ctx, "u1"); len(entries) != 0 {
		t.Fatalf("expected empty list on failure, got %v", entries)
	}
	if entries := f.svc.GetEntriesByDate(ctx, "u1", "2026-03-01"); len(entries) != 0 {
		t.Fatalf("expected empty list on failure, got %v", entries)
	}
	if f.svc.HasEntryForDate(ctx, "u1", "2026-03-01") {
		t.Fatalf("expected false on failure")
	}
	if dates := f.svc.GetEntryDatesForRange(ctx, "u1", "2026-01-01", "2026-12-31"); len(dates) != 0 {
		t.Fatalf("expected empty map on failure, got %v", dates)
	}
}

func TestListEntriesNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	_ = f.entryRepo.Insert(ctx, makeEntry("old", "u1", model.MoodHappy, "2026-03-01", 100))
	_ = f.entryRepo.Insert(ctx, makeEntry("new", "u1", model.MoodSad, "2026-03-02", 200))

	entries := f.svc.ListEntries(ctx, "u1")
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "new" || entries[1].ID != "old" {
		t.Fatalf("expected newest first, got %s then %s", entries[0].ID, entries[1].ID)
	}
}

func TestMutationPublishesFeedRefresh(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()

	_, _ = f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))

	channel := consts.JournalFeedKey + "u1"
	if len(f.cache.published[channel]) != 1 {
		t.Fatalf("expected one feed broadcast, got %v", f.cache.published)
	}
}

func TestRecountFailureMarksDirtyButKeepsWrite(t *testing.T) {
	ctx := context.Background()
	f := newEntryFixture()
	f.userRepo.failSetCounts = true

	// 计数写回失败不影响条目保存
	id, err := f.svc.CreateEntry(ctx, "u1", upsertDTO(model.MoodHappy, "2026-03-01"))
	if err != nil {
		t.Fatalf("create should tolerate recount failure, got %v", err)
	}

	entry, _ := f.svc.GetEntry(ctx, "u1", id)
	if entry == nil {
		t.Fatalf("expected entry persisted")
	}
	if !f.cache.sets[consts.MoodDirtyKey]["u1"] {
		t.Fatalf("expected user marked dirty, got %v", f.cache.sets)
	}
}
