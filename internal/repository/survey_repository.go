package repository

import (
	"context"

	"gorm.io/gorm"

	"outlaw/internal/model"
)

// SurveyRepository persists generated surveys. Surveys are never updated.
type SurveyRepository interface {
	Create(ctx context.Context, survey *model.Survey) error
	List(ctx context.Context) ([]model.Survey, error)
}

type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a GORM-backed survey repository.
func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *surveyRepository) List(ctx context.Context) ([]model.Survey, error) {
	surveys := []model.Survey{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}
