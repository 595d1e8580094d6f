package service

import (
	"ReflectAI/internal/model"
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

var errStorageDown = errors.New("storage down")

type fakeEntryRepo struct {
	mu      sync.Mutex
	entries map[string]*model.JournalEntry
	failAll bool
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*model.JournalEntry)}
}

func (s *fakeEntryRepo) Insert(_ context.Context, entry *model.JournalEntry) error {
	if s.failAll {
		return errStorageDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *entry
	s.entries[entry.ID] = &clone
	return nil
}

func (s *fakeEntryRepo) Update(_ context.Context, entry *model.JournalEntry) error {
	if s.failAll {
		return errStorageDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *entry
	s.entries[entry.ID] = &clone
	return nil
}

func (s *fakeEntryRepo) Delete(_ context.Context, entryID string) error {
	if s.failAll {
		return errStorageDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, entryID)
	return nil
}

func (s *fakeEntryRepo) GetByID(_ context.Context, entryID string) (*model.JournalEntry, error) {
	if s.failAll {
		return nil, errStorageDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[entryID]
	if !ok {
		return nil, nil
	}
	clone := *entry
	return &clone, nil
}

func (s *fakeEntryRepo) GetByUser(_ context.Context, userID string) ([]*model.JournalEntry, error) {
	if s.failAll {
		return nil, errStorageDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*model.JournalEntry
	for _, entry := range s.entries {
		if entry.UserID == userID {
			clone := *entry
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp > result[j].Timestamp })
	return result, nil
}

func (s *fakeEntryRepo) GetByDate(ctx context.Context, userID string, date string) ([]*model.JournalEntry, error) {
	all, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var result []*model.JournalEntry
	for _, entry := range all {
		if entry.Date == date {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (s *fakeEntryRepo) ExistsForDate(ctx context.Context, userID string, date string) (bool, error) {
	entries, err := s.GetByDate(ctx, userID, date)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

type fakeUserRepo struct {
	mu            sync.Mutex
	users         map[string]*model.User
	counts        map[string]*model.MoodCounts
	failSetCounts bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*model.User),
		counts: make(map[string]*model.MoodCounts),
	}
}

func (s *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (s *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) UpdateProfile(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[user.ID]
	if !ok {
		return nil
	}
	existing.DisplayName = user.DisplayName
	existing.Email = user.Email
	return nil
}

func (s *fakeUserRepo) GetMoodCounts(_ context.Context, userID string) (*model.MoodCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts, ok := s.counts[userID]
	if !ok {
		return &model.MoodCounts{}, nil
	}
	clone := *counts
	return &clone, nil
}

func (s *fakeUserRepo) SetMoodCounts(_ context.Context, userID string, counts *model.MoodCounts) error {
	if s.failSetCounts {
		return errStorageDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *counts
	s.counts[userID] = &clone
	return nil
}

type fakeAnalysisRepo struct {
	mu         sync.Mutex
	analyses   map[string]*model.AIAnalysis
	failDelete bool
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{analyses: make(map[string]*model.AIAnalysis)}
}

func (s *fakeAnalysisRepo) Save(_ context.Context, analysis *model.AIAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *analysis
	s.analyses[analysis.EntryID] = &clone
	return nil
}

func (s *fakeAnalysisRepo) GetByEntryID(_ context.Context, entryID string) (*model.AIAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	analysis, ok := s.analyses[entryID]
	if !ok {
		return nil, nil
	}
	clone := *analysis
	return &clone, nil
}

func (s *fakeAnalysisRepo) Delete(_ context.Context, entryID string) error {
	if s.failDelete {
		return errStorageDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.analyses, entryID)
	return nil
}

type fakeCache struct {
	mu        sync.Mutex
	values    map[string]string
	sets      map[string]map[string]bool
	published map[string][]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		values:    make(map[string]string),
		sets:      make(map[string]map[string]bool),
		published: make(map[string][]string),
	}
}

func (s *fakeCache) GetValue(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *fakeCache) SetWithExpiration(_ context.Context, key string, value interface{}, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if str, ok := value.(string); ok {
		s.values[key] = str
	} else {
		s.values[key] = "1"
	}
	return nil
}

func (s *fakeCache) DeleteKey(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *fakeCache) TryLock(_ context.Context, key string, value interface{}, _ time.Duration, _ int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, held := s.values["lock:"+key]; held {
		return false, nil
	}
	s.values["lock:"+key] = "held"
	_ = value
	return true, nil
}

func (s *fakeCache) UnLock(_ context.Context, key string, _ interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, "lock:"+key)
}

func (s *fakeCache) AddToSet(_ context.Context, key string, members ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sets[key] == nil {
		s.sets[key] = make(map[string]bool)
	}
	for _, m := range members {
		s.sets[key][m] = true
	}
	return nil
}

func (s *fakeCache) Publish(_ context.Context, channel string, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published[channel] = append(s.published[channel], payload)
	return nil
}

type fakeCompleter struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
}

func (s *fakeCompleter) AnalyzeJournal(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}
