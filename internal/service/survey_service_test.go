package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "outlaw/internal/errors"
	"outlaw/internal/model"
)

type fixedGenerator []string

func (g fixedGenerator) Generate(context.Context, string) ([]string, error) {
	return g, nil
}

func TestTemplateGenerator(t *testing.T) {
	questions, err := TemplateGenerator{}.Generate(context.Background(), "  smart   water bottle for hikers ")
	require.NoError(t, err)
	require.Len(t, questions, SurveyQuestionCount)
	assert.Equal(t, "What problem does smart water bottle solve for you?", questions[0])
	assert.Equal(t, "Would you recommend this product to others if it existed today?", questions[4])

	short, err := TemplateGenerator{}.Generate(context.Background(), "drones")
	require.NoError(t, err)
	assert.Equal(t, "What problem does drones solve for you?", short[0])
}

func TestSurveyService_Generate(t *testing.T) {
	tests := []struct {
		name      string
		idea      string
		generator QuestionGenerator
		setupMock func(*MockSurveyRepository)
		wantKind  error
		wantErr   bool
	}{
		{name: "empty idea", idea: "", wantKind: apperrors.ErrValidation},
		{name: "blank idea", idea: "   ", wantKind: apperrors.ErrValidation},
		{
			name: "persists five questions",
			idea: "smart water bottle",
			setupMock: func(m *MockSurveyRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Survey) bool {
					return s.ProductIdea == "smart water bottle" && len(s.Questions) == SurveyQuestionCount
				})).Return(nil)
			},
		},
		{
			name:      "generator returning the wrong count",
			idea:      "x",
			generator: fixedGenerator{"only one"},
			wantErr:   true,
		},
		{
			name: "repository failure",
			idea: "x",
			setupMock: func(m *MockSurveyRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSurveyRepository)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			svc := NewSurveyService(repo, tt.generator)

			survey, err := svc.Generate(context.Background(), tt.idea)

			switch {
			case tt.wantKind != nil:
				assert.ErrorIs(t, err, tt.wantKind)
			case tt.wantErr:
				assert.Error(t, err)
				assert.Nil(t, survey)
			default:
				require.NoError(t, err)
				assert.Len(t, survey.Questions, SurveyQuestionCount)
			}
			repo.AssertExpectations(t)
		})
	}
}
