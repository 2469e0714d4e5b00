package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"fragenspiel/internal/catalog"
	"fragenspiel/internal/importer"
	"fragenspiel/internal/model"
	"fragenspiel/internal/repository"
)

// AdminStats are the database counters shown in the admin panel.
type AdminStats struct {
	QuestionsCount         int64 `json:"questionsCount"`
	CharactersCount        int64 `json:"charactersCount"`
	AnsweredQuestionsCount int64 `json:"answeredQuestionsCount"`
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// PreloadResult summarizes a sample-data preload.
type PreloadResult struct {
	InsertedCharacters int `json:"insertedCharacters"`
	InsertedQuestions  int `json:"insertedQuestions"`
}

// AdminService handles the maintenance surface: stats, clearing the
// database, preloading sample data and importing question batches.
type AdminService struct {
	db            *mongo.Database
	characterRepo repository.CharacterRepo
	questionRepo  repository.QuestionRepo
	answerRepo    repository.AnswerRepo
	importer      *importer.Client
}

// NewAdminService creates a new admin service
func NewAdminService(db *mongo.Database, characterRepo repository.CharacterRepo, questionRepo repository.QuestionRepo, answerRepo repository.AnswerRepo, imp *importer.Client) *AdminService {
	return &AdminService{
		db:            db,
		characterRepo: characterRepo,
		questionRepo:  questionRepo,
		answerRepo:    answerRepo,
		importer:      imp,
	}
}

// Stats counts questions, characters and answers.
func (s *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	questions, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	characters, err := s.characterRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count characters: %w", err)
	}
	answers, err := s.answerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}
	return &AdminStats{
		QuestionsCount:         questions,
		CharactersCount:        characters,
		AnsweredQuestionsCount: answers,
	}, nil
}

// ClearDatabase wipes all three collections and resets the id counters.
func (s *AdminService) ClearDatabase(ctx context.Context) error {
	if _, err := s.answerRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear answers: %w", err)
	}
	if err := s.questionRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}
	if err := s.characterRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear characters: %w", err)
	}
	return repository.ResetSequences(ctx, s.db, "questions", "characters", "answers")
}

// PreloadSampleData inserts the sample catalogs, skipping entries that
// already exist. Safe to call repeatedly.
func (s *AdminService) PreloadSampleData(ctx context.Context) (*PreloadResult, error) {
	result := &PreloadResult{}

	for _, c := range catalog.SampleCharacters() {
		character := model.Character{Name: c.Name, Description: c.Description}
		inserted, err := s.characterRepo.UpsertByName(ctx, &character)
		if err != nil {
			return nil, fmt.Errorf("failed to preload character %q: %w", c.Name, err)
		}
		if inserted {
			result.InsertedCharacters++
		}
	}

	for _, q := range catalog.SampleQuestions() {
		question := model.Question{Text: q.Text, Category: q.Category, Difficulty: q.Difficulty}
		inserted, err := s.questionRepo.UpsertByText(ctx, &question)
		if err != nil {
			return nil, fmt.Errorf("failed to preload question: %w", err)
		}
		if inserted {
			result.InsertedQuestions++
		}
	}

	return result, nil
}

// ImportQuestions fetches a batch from url and inserts the new ones.
// Category and difficulty act as defaults for entries that omit them.
func (s *AdminService) ImportQuestions(ctx context.Context, url, category string, difficulty int) (*ImportResult, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: import url is required", ErrValidation)
	}
	if difficulty == 0 {
		difficulty = 1
	}
	if category == "" {
		category = "Imported"
	}

	raw, err := s.importer.FetchQuestions(ctx, url)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, rq := range raw {
		question := model.Question{
			Text:       rq.Text,
			Category:   rq.Category,
			Difficulty: rq.Difficulty,
		}
		if question.Category == "" {
			question.Category = category
		}
		if question.Difficulty == 0 {
			question.Difficulty = difficulty
		}

		inserted, err := s.questionRepo.UpsertByText(ctx, &question)
		if err != nil {
			return nil, fmt.Errorf("failed to store imported question: %w", err)
		}
		if inserted {
			result.Imported++
		} else {
			result.Skipped++
		}
	}
	return result, nil
}
