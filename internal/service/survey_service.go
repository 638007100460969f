package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "outlaw/internal/errors"
	"outlaw/internal/logging"
	"outlaw/internal/model"
	"outlaw/internal/repository"
)

// SurveyQuestionCount is the number of questions every generated survey has.
const SurveyQuestionCount = 5

// QuestionGenerator turns a product idea into survey questions.
type QuestionGenerator interface {
	Generate(ctx context.Context, productIdea string) ([]string, error)
}

// TemplateGenerator fills a fixed question template with the first words of the idea.
type TemplateGenerator struct{}

func (TemplateGenerator) Generate(_ context.Context, productIdea string) ([]string, error) {
	words := strings.Fields(productIdea)
	if len(words) > 3 {
		words = words[:3]
	}
	return []string{
		fmt.Sprintf("What problem does %s solve for you?", strings.Join(words, " ")),
		"How would you rate the importance of this solution on a scale of 1-10?",
		"What features would you expect from this product?",
		"How much would you be willing to pay for this solution?",
		"Would you recommend this product to others if it existed today?",
	}, nil
}

// SurveyService generates and lists surveys.
type SurveyService interface {
	Generate(ctx context.Context, productIdea string) (*model.Survey, error)
	List(ctx context.Context) ([]model.Survey, error)
}

type surveyService struct {
	repo      repository.SurveyRepository
	generator QuestionGenerator
}

// NewSurveyService builds a SurveyService. A nil generator falls back to TemplateGenerator.
func NewSurveyService(repo repository.SurveyRepository, generator QuestionGenerator) SurveyService {
	if generator == nil {
		generator = TemplateGenerator{}
	}
	return &surveyService{repo: repo, generator: generator}
}

func (s *surveyService) Generate(ctx context.Context, productIdea string) (*model.Survey, error) {
	if strings.TrimSpace(productIdea) == "" {
		return nil, apperrors.Validation("Please provide a product idea")
	}

	questions, err := s.generator.Generate(ctx, productIdea)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	if len(questions) != SurveyQuestionCount {
		return nil, fmt.Errorf("generate questions: got %d, want %d", len(questions), SurveyQuestionCount)
	}

	survey := &model.Survey{ProductIdea: productIdea, Questions: questions}
	if err := s.repo.Create(ctx, survey); err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}
	logging.Ctx(ctx).Info().Str("survey_id", survey.ID).Msg("survey generated")
	return survey, nil
}

func (s *surveyService) List(ctx context.Context) ([]model.Survey, error) {
	return s.repo.List(ctx)
}
