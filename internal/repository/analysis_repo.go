package repository

import (
	"ReflectAI/internal/model"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnalysisRepo interface {
	Save(ctx context.Context, analysis *model.AIAnalysis) error
	GetByEntryID(ctx context.Context, entryID string) (*model.AIAnalysis, error)
	Delete(ctx context.Context, entryID string) error
}

type analysisRepoImpl struct {
	col *mongo.Collection
}

func NewAnalysisRepo(db *mongo.Database) AnalysisRepo {
	return &analysisRepoImpl{
		col: db.Collection("ai_analysis"),
	}
}

// Save 以条目 ID 为主键 upsert，重复分析直接覆盖
func (s *analysisRepoImpl) Save(ctx context.Context, analysis *model.AIAnalysis) error {
	_, err := s.col.ReplaceOne(ctx,
		bson.M{"_id": analysis.EntryID},
		analysis,
		options.Replace().SetUpsert(true),
	)
	return err
}

// GetByEntryID 点查，未找到返回 nil
func (s *analysisRepoImpl) GetByEntryID(ctx context.Context, entryID string) (*model.AIAnalysis, error) {
	var analysis model.AIAnalysis
	err := s.col.FindOne(ctx, bson.M{"_id": entryID}).Decode(&analysis)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

// Delete 删除条目对应的分析记录，条目删除时级联调用
func (s *analysisRepoImpl) Delete(ctx context.Context, entryID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": entryID})
	return err
}
