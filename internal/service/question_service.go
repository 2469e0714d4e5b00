package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"fragenspiel/internal/model"
	"fragenspiel/internal/repository"
)

// QuestionService handles question catalog CRUD
type QuestionService struct {
	questionRepo repository.QuestionRepo
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repository.QuestionRepo) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// Create validates and stores a new question.
func (s *QuestionService) Create(ctx context.Context, question *model.Question) error {
	question.Text = strings.TrimSpace(question.Text)
	if question.Text == "" {
		return fmt.Errorf("%w: text is required", ErrValidation)
	}
	return s.questionRepo.Create(ctx, question)
}

// GetByID retrieves a question by id
func (s *QuestionService) GetByID(ctx context.Context, id int) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

// List retrieves all questions
func (s *QuestionService) List(ctx context.Context) ([]*model.Question, error) {
	return s.questionRepo.GetAll(ctx)
}

// Update validates and updates an existing question.
func (s *QuestionService) Update(ctx context.Context, question *model.Question) error {
	question.Text = strings.TrimSpace(question.Text)
	if question.Text == "" {
		return fmt.Errorf("%w: text is required", ErrValidation)
	}
	err := s.questionRepo.Update(ctx, question)
	if err == mongo.ErrNoDocuments {
		return ErrQuestionNotFound
	}
	return err
}

// Delete removes a question.
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	err := s.questionRepo.Delete(ctx, id)
	if err == mongo.ErrNoDocuments {
		return ErrQuestionNotFound
	}
	return err
}
