package service

import (
	"context"
	"errors"
	"testing"

	"fragenspiel/internal/catalog"
	"fragenspiel/internal/model"
)

func newGameService(t *testing.T) *GameService {
	t.Helper()
	ctx := context.Background()

	characterRepo := newFakeCharacterRepo()
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()

	for _, c := range catalog.SampleCharacters() {
		character := model.Character{Name: c.Name, Description: c.Description}
		if err := characterRepo.Create(ctx, &character); err != nil {
			t.Fatalf("seeding characters: %v", err)
		}
	}
	for _, q := range catalog.SampleQuestions() {
		question := model.Question{Text: q.Text, Category: q.Category, Difficulty: q.Difficulty}
		if err := questionRepo.Create(ctx, &question); err != nil {
			t.Fatalf("seeding questions: %v", err)
		}
	}

	return NewGameService(characterRepo, questionRepo, answerRepo)
}

func TestGameQuestionForCharacter(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	gq, err := svc.QuestionForCharacter(ctx, 1, nil)
	if err != nil {
		t.Fatalf("QuestionForCharacter() error = %v", err)
	}
	if gq.Character.ID != 1 {
		t.Errorf("character id = %d, want 1", gq.Character.ID)
	}
	if gq.Question.ID == 0 {
		t.Error("question id is zero")
	}

	if _, err := svc.QuestionForCharacter(ctx, 999, nil); !errors.Is(err, ErrCharacterNotFound) {
		t.Errorf("unknown character: error = %v, want ErrCharacterNotFound", err)
	}
}

func TestGameAssignmentExcludesAnswered(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	seen := make(map[int]bool)
	for {
		gq, err := svc.QuestionForCharacter(ctx, 1, nil)
		if errors.Is(err, ErrNoQuestionsAvailable) {
			break
		}
		if err != nil {
			t.Fatalf("QuestionForCharacter() error = %v", err)
		}
		if seen[gq.Question.ID] {
			t.Fatalf("question %d assigned twice", gq.Question.ID)
		}
		seen[gq.Question.ID] = true

		if _, err := svc.RecordAnswer(ctx, 1, gq.Question.ID, "answer"); err != nil {
			t.Fatalf("RecordAnswer() error = %v", err)
		}
	}

	if len(seen) != 20 {
		t.Errorf("answered %d distinct questions before exhaustion, want 20", len(seen))
	}
}

func TestGameSeasonFilter(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	season := 3
	gq, err := svc.QuestionForCharacter(ctx, 1, &season)
	if err != nil {
		t.Fatalf("QuestionForCharacter() error = %v", err)
	}
	if gq.Question.Difficulty != season {
		t.Errorf("difficulty = %d, want %d", gq.Question.Difficulty, season)
	}
}

func TestGameRecordAnswer(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	answer, err := svc.RecordAnswer(ctx, 2, 7, "  padded answer  ")
	if err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if answer.ID == 0 {
		t.Error("answer id was not assigned")
	}
	if answer.AnswerText != "padded answer" {
		t.Errorf("answer text = %q, want trimmed", answer.AnswerText)
	}
	if answer.Question == nil || answer.Question.ID != 7 {
		t.Error("answer is missing the joined question")
	}

	if _, err := svc.RecordAnswer(ctx, 2, 7, "again"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("double record: error = %v, want ErrAlreadyAnswered", err)
	}
	if _, err := svc.RecordAnswer(ctx, 2, 8, "   "); !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("blank text: error = %v, want ErrEmptyAnswer", err)
	}
	if _, err := svc.RecordAnswer(ctx, 999, 7, "text"); !errors.Is(err, ErrCharacterNotFound) {
		t.Errorf("unknown character: error = %v, want ErrCharacterNotFound", err)
	}
	if _, err := svc.RecordAnswer(ctx, 2, 999, "text"); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("unknown question: error = %v, want ErrQuestionNotFound", err)
	}
}

func TestGameStatus(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	svc.RecordAnswer(ctx, 1, 1, "a")
	svc.RecordAnswer(ctx, 1, 2, "b")
	svc.RecordAnswer(ctx, 3, 1, "c")

	statuses, err := svc.Status(ctx)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if len(statuses) != 5 {
		t.Fatalf("got %d statuses, want 5", len(statuses))
	}

	counts := make(map[int]int)
	for _, st := range statuses {
		counts[st.ID] = st.AnsweredCount
		if st.TotalQuestions != 20 {
			t.Errorf("character %d: total = %d, want 20", st.ID, st.TotalQuestions)
		}
	}
	if counts[1] != 2 || counts[3] != 1 || counts[2] != 0 {
		t.Errorf("answered counts = %v", counts)
	}
}

func TestGameResets(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	svc.RecordAnswer(ctx, 1, 1, "a")
	svc.RecordAnswer(ctx, 1, 2, "b")
	svc.RecordAnswer(ctx, 2, 1, "c")

	deleted, err := svc.ResetCharacter(ctx, 1)
	if err != nil {
		t.Fatalf("ResetCharacter() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("ResetCharacter() deleted = %d, want 2", deleted)
	}

	deleted, err = svc.ResetAll(ctx)
	if err != nil {
		t.Fatalf("ResetAll() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("ResetAll() deleted = %d, want 1", deleted)
	}
}

func TestGameCharacterAnswers(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	svc.RecordAnswer(ctx, 5, 10, "first")
	svc.RecordAnswer(ctx, 5, 11, "second")

	result, err := svc.CharacterAnswers(ctx, 5)
	if err != nil {
		t.Fatalf("CharacterAnswers() error = %v", err)
	}
	if result.Character.ID != 5 {
		t.Errorf("character id = %d, want 5", result.Character.ID)
	}
	if len(result.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(result.Answers))
	}
	for _, a := range result.Answers {
		if a.Question == nil || a.Question.ID != a.QuestionID {
			t.Errorf("answer %d is missing its joined question", a.ID)
		}
	}

	if _, err := svc.CharacterAnswers(ctx, 999); !errors.Is(err, ErrCharacterNotFound) {
		t.Errorf("unknown character: error = %v, want ErrCharacterNotFound", err)
	}
}
