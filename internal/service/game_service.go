package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"fragenspiel/internal/model"
	"fragenspiel/internal/repository"
)

// GameService runs the game against the persistent catalogs. Same
// semantics as the demo, but answers survive restarts and the
// (character, question) uniqueness is enforced by the database index.
type GameService struct {
	characterRepo repository.CharacterRepo
	questionRepo  repository.QuestionRepo
	answerRepo    repository.AnswerRepo
}

// NewGameService creates a new game service
func NewGameService(characterRepo repository.CharacterRepo, questionRepo repository.QuestionRepo, answerRepo repository.AnswerRepo) *GameService {
	return &GameService{
		characterRepo: characterRepo,
		questionRepo:  questionRepo,
		answerRepo:    answerRepo,
	}
}

// QuestionForCharacter picks one unanswered question for the character,
// honoring the optional season filter.
func (s *GameService) QuestionForCharacter(ctx context.Context, characterID int, season *int) (*model.GameQuestion, error) {
	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load character: %w", err)
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}

	var questions []*model.Question
	if season != nil {
		questions, err = s.questionRepo.GetByDifficulty(ctx, *season)
	} else {
		questions, err = s.questionRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	answeredIDs, err := s.answerRepo.AnsweredQuestionIDs(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answered questions: %w", err)
	}
	answered := make(map[int]bool, len(answeredIDs))
	for _, id := range answeredIDs {
		answered[id] = true
	}

	var candidates []*model.Question
	for _, q := range questions {
		if !answered[q.ID] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	return &model.GameQuestion{
		Character: *character,
		Question:  *candidates[rand.Intn(len(candidates))],
	}, nil
}

// RecordAnswer stores an answer. The unique index turns a double record
// into ErrAlreadyAnswered.
func (s *GameService) RecordAnswer(ctx context.Context, characterID, questionID int, text string) (*model.Answer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyAnswer
	}

	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load character: %w", err)
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}

	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	answer := &model.Answer{
		CharacterID: characterID,
		QuestionID:  questionID,
		AnswerText:  text,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		if errors.Is(err, repository.ErrDuplicateAnswer) {
			return nil, ErrAlreadyAnswered
		}
		return nil, fmt.Errorf("failed to store answer: %w", err)
	}

	answer.Question = question
	return answer, nil
}

// Status reports per-character progress against the full question catalog.
func (s *GameService) Status(ctx context.Context) ([]model.CharacterStatus, error) {
	characters, err := s.characterRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load characters: %w", err)
	}

	counts, err := s.answerRepo.CountByCharacter(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	total, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	statuses := make([]model.CharacterStatus, 0, len(characters))
	for _, c := range characters {
		statuses = append(statuses, model.CharacterStatus{
			ID:             c.ID,
			Name:           c.Name,
			Description:    c.Description,
			AnsweredCount:  counts[c.ID],
			TotalQuestions: int(total),
		})
	}
	return statuses, nil
}

// ResetCharacter deletes one character's answers and reports how many went.
func (s *GameService) ResetCharacter(ctx context.Context, characterID int) (int64, error) {
	return s.answerRepo.DeleteByCharacter(ctx, characterID)
}

// ResetAll deletes every answer.
func (s *GameService) ResetAll(ctx context.Context) (int64, error) {
	return s.answerRepo.DeleteAll(ctx)
}

// CharacterAnswers returns one character's ordered answer log with the
// question catalog entries joined in.
func (s *GameService) CharacterAnswers(ctx context.Context, characterID int) (*model.CharacterAnswers, error) {
	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load character: %w", err)
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}

	answers, err := s.answerRepo.GetByCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	questions, err := s.questionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	byID := make(map[int]*model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	result := &model.CharacterAnswers{
		Character: *character,
		Answers:   make([]model.Answer, 0, len(answers)),
	}
	for _, a := range answers {
		joined := *a
		joined.Question = byID[a.QuestionID]
		result.Answers = append(result.Answers, joined)
	}
	return result, nil
}
