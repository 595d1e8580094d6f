package repository

import (
	"ReflectAI/internal/model"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EntryRepo interface {
	Insert(ctx context.Context, entry *model.JournalEntry) error
	Update(ctx context.Context, entry *model.JournalEntry) error
	Delete(ctx context.Context, entryID string) error
	GetByID(ctx context.Context, entryID string) (*model.JournalEntry, error)
	GetByUser(ctx context.Context, userID string) ([]*model.JournalEntry, error)
	GetByDate(ctx context.Context, userID string, date string) ([]*model.JournalEntry, error)
	ExistsForDate(ctx context.Context, userID string, date string) (bool, error)
}

type entryRepoImpl struct {
	col *mongo.Collection
}

func NewEntryRepo(db *mongo.Database) EntryRepo {
	return &entryRepoImpl{
		col: db.Collection("journal_entries"),
	}
}

// Insert 插入新条目
func (s *entryRepoImpl) Insert(ctx context.Context, entry *model.JournalEntry) error {
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

// Update 以同一 ID 整体覆盖写入
func (s *entryRepoImpl) Update(ctx context.Context, entry *model.JournalEntry) error {
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	return err
}

// Delete 按 ID 删除条目
func (s *entryRepoImpl) Delete(ctx context.Context, entryID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": entryID})
	return err
}

// GetByID 点查，条目全局以 ID 为主键，归属通过 user_id 字段校验，
// 从而避免逐用户扫描
func (s *entryRepoImpl) GetByID(ctx context.Context, entryID string) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := s.col.FindOne(ctx, bson.M{"_id": entryID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// GetByUser 拉取用户的全部条目，按时间戳倒序。
// 日期区间查询与心情重算都建立在这次全量拉取之上，复杂度 O(条目总数)，
// 这是已知的扩展上限而非缺陷
func (s *entryRepoImpl) GetByUser(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	filter := bson.M{"user_id": userID}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*model.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetByDate 日期字段等值过滤，同日多条时最新的排在最前，
// 调用方取"当日条目"时约定取第一条
func (s *entryRepoImpl) GetByDate(ctx context.Context, userID string, date string) ([]*model.JournalEntry, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    date,
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*model.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// ExistsForDate 存在性检查，limit 1 而非全量拉取
func (s *entryRepoImpl) ExistsForDate(ctx context.Context, userID string, date string) (bool, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    date,
	}

	count, err := s.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
