package repository

import (
	"ReflectAI/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) error
	GetMoodCounts(ctx context.Context, userID string) (*model.MoodCounts, error)
	SetMoodCounts(ctx context.Context, userID string, counts *model.MoodCounts) error
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection("users"),
	}
}

// Create 插入新用户
func (s *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	_, err := s.col.InsertOne(ctx, user)
	return err
}

// GetByID 点查，未找到返回 nil
func (s *userRepoImpl) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername 按用户名查找，未找到返回 nil
func (s *userRepoImpl) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile 更新资料字段，mood_counts 不在此路径写入
func (s *userRepoImpl) UpdateProfile(ctx context.Context, user *model.User) error {
	update := bson.M{
		"$set": bson.M{
			"display_name": user.DisplayName,
			"email":        user.Email,
		},
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	return err
}

// GetMoodCounts 读取心情计数，用户不存在时返回零值
func (s *userRepoImpl) GetMoodCounts(ctx context.Context, userID string) (*model.MoodCounts, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &model.MoodCounts{}, nil
	}
	counts := user.MoodCounts
	return &counts, nil
}

// SetMoodCounts 将三个计数器作为整体原子覆盖，重算任务独占此写路径
func (s *userRepoImpl) SetMoodCounts(ctx context.Context, userID string, counts *model.MoodCounts) error {
	update := bson.M{
		"$set": bson.M{"mood_counts": counts},
		"$setOnInsert": bson.M{
			"_id":        userID,
			"created_at": time.Now(),
		},
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true))
	return err
}
