package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"fragenspiel/internal/demo"
	"fragenspiel/internal/model"
)

// DemoService runs the game against ephemeral sessions. All state lives in
// the injected store; the service holds none of its own, so it can be
// constructed fresh per test.
type DemoService struct {
	store       demo.Store
	broadcaster Broadcaster
}

// NewDemoService creates a new demo service
func NewDemoService(store demo.Store) *DemoService {
	return &DemoService{store: store}
}

// SetBroadcaster sets the broadcaster for WebSocket status updates
func (s *DemoService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates a fresh session and returns its token.
func (s *DemoService) Start(ctx context.Context) (string, error) {
	return s.store.Create(ctx)
}

// Validate reports whether the token names a live session.
func (s *DemoService) Validate(ctx context.Context, token string) (bool, error) {
	return s.store.Validate(ctx, token)
}

// Characters returns the session's character snapshot.
func (s *DemoService) Characters(ctx context.Context, token string) ([]model.Character, error) {
	var characters []model.Character
	err := s.store.View(ctx, token, func(sess *model.DemoSession) error {
		characters = append([]model.Character(nil), sess.Characters...)
		return nil
	})
	return characters, err
}

// Questions returns the session's question snapshot.
func (s *DemoService) Questions(ctx context.Context, token string) ([]model.Question, error) {
	var questions []model.Question
	err := s.store.View(ctx, token, func(sess *model.DemoSession) error {
		questions = append([]model.Question(nil), sess.Questions...)
		return nil
	})
	return questions, err
}

// QuestionForCharacter picks one unanswered question for the character,
// uniformly at random among the candidates matching the optional season
// filter. Read-only: nothing is marked answered until RecordAnswer.
func (s *DemoService) QuestionForCharacter(ctx context.Context, token string, characterID int, season *int) (*model.GameQuestion, error) {
	var result *model.GameQuestion
	err := s.store.View(ctx, token, func(sess *model.DemoSession) error {
		character, ok := sess.CharacterByID(characterID)
		if !ok {
			return ErrCharacterNotFound
		}

		candidates := sess.UnansweredQuestions(characterID, season)
		if len(candidates) == 0 {
			return ErrNoQuestionsAvailable
		}

		result = &model.GameQuestion{
			Character: character,
			Question:  candidates[rand.Intn(len(candidates))],
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordAnswer appends an answer to the session. Text must be non-empty
// after trimming. Re-answering a question the character already answered
// is rejected, so the store stays consistent with what assignment promises.
func (s *DemoService) RecordAnswer(ctx context.Context, token string, characterID, questionID int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyAnswer
	}

	var statuses []model.CharacterStatus
	err := s.store.Update(ctx, token, func(sess *model.DemoSession) error {
		character, ok := sess.CharacterByID(characterID)
		if !ok {
			return ErrCharacterNotFound
		}
		if _, ok := sess.QuestionByID(questionID); !ok {
			return ErrQuestionNotFound
		}
		for _, a := range sess.CharacterAnswers[character.ID] {
			if a.QuestionID == questionID {
				return ErrAlreadyAnswered
			}
		}

		sess.RecordAnswer(characterID, questionID, text, time.Now())
		statuses = sess.Statuses()
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcastStatus(token, statuses)
	return nil
}

// Status reports per-character progress for the session.
func (s *DemoService) Status(ctx context.Context, token string) ([]model.CharacterStatus, error) {
	var statuses []model.CharacterStatus
	err := s.store.View(ctx, token, func(sess *model.DemoSession) error {
		statuses = sess.Statuses()
		return nil
	})
	return statuses, err
}

// ResetCharacter clears one character's answers.
func (s *DemoService) ResetCharacter(ctx context.Context, token string, characterID int) error {
	var statuses []model.CharacterStatus
	err := s.store.Update(ctx, token, func(sess *model.DemoSession) error {
		sess.ResetCharacter(characterID)
		statuses = sess.Statuses()
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcastStatus(token, statuses)
	return nil
}

// ResetAll clears every answer in the session.
func (s *DemoService) ResetAll(ctx context.Context, token string) error {
	var statuses []model.CharacterStatus
	err := s.store.Update(ctx, token, func(sess *model.DemoSession) error {
		sess.ResetAll()
		statuses = sess.Statuses()
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcastStatus(token, statuses)
	return nil
}

// CharacterAnswers returns one character's ordered answer log.
func (s *DemoService) CharacterAnswers(ctx context.Context, token string, characterID int) (*model.CharacterAnswers, error) {
	var result *model.CharacterAnswers
	err := s.store.View(ctx, token, func(sess *model.DemoSession) error {
		character, ok := sess.CharacterByID(characterID)
		if !ok {
			return ErrCharacterNotFound
		}
		result = &model.CharacterAnswers{
			Character: character,
			Answers:   append([]model.Answer(nil), sess.CharacterAnswers[characterID]...),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DemoService) broadcastStatus(token string, statuses []model.CharacterStatus) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(token, "status_update", statuses)
	}
}
