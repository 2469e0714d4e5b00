package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fragenspiel/internal/importer"
)

func newAdminService(t *testing.T) (*AdminService, *fakeQuestionRepo) {
	t.Helper()
	questionRepo := newFakeQuestionRepo()
	svc := NewAdminService(nil, newFakeCharacterRepo(), questionRepo, newFakeAnswerRepo(), importer.NewClient())
	return svc, questionRepo
}

func TestPreloadSampleDataIsIdempotent(t *testing.T) {
	svc, _ := newAdminService(t)
	ctx := context.Background()

	first, err := svc.PreloadSampleData(ctx)
	if err != nil {
		t.Fatalf("PreloadSampleData() error = %v", err)
	}
	if first.InsertedCharacters != 5 || first.InsertedQuestions != 20 {
		t.Errorf("first preload = %+v, want 5 characters and 20 questions", first)
	}

	second, err := svc.PreloadSampleData(ctx)
	if err != nil {
		t.Fatalf("second PreloadSampleData() error = %v", err)
	}
	if second.InsertedCharacters != 0 || second.InsertedQuestions != 0 {
		t.Errorf("second preload = %+v, want nothing inserted", second)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.CharactersCount != 5 || stats.QuestionsCount != 20 || stats.AnsweredQuestionsCount != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestImportQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"questions":[
			{"text":"What drives you?","category":"Motivation","difficulty":2},
			{"text":"Where do you feel at home?"},
			{"text":"What drives you?","category":"Duplicate"}
		]}`))
	}))
	defer srv.Close()

	svc, questionRepo := newAdminService(t)
	ctx := context.Background()

	result, err := svc.ImportQuestions(ctx, srv.URL, "Season One", 3)
	if err != nil {
		t.Fatalf("ImportQuestions() error = %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}

	questions, _ := questionRepo.GetAll(ctx)
	byText := make(map[string]int)
	for _, q := range questions {
		byText[q.Text] = q.ID
		if q.Text == "Where do you feel at home?" {
			if q.Category != "Season One" {
				t.Errorf("default category not applied, got %q", q.Category)
			}
			if q.Difficulty != 3 {
				t.Errorf("default difficulty not applied, got %d", q.Difficulty)
			}
		}
		if q.Text == "What drives you?" && q.Category != "Motivation" {
			t.Errorf("explicit category overwritten, got %q", q.Category)
		}
	}
	if len(byText) != 2 {
		t.Errorf("stored %d distinct questions, want 2", len(byText))
	}

	// A second import of the same batch skips everything.
	again, err := svc.ImportQuestions(ctx, srv.URL, "Season One", 3)
	if err != nil {
		t.Fatalf("second ImportQuestions() error = %v", err)
	}
	if again.Imported != 0 || again.Skipped != 2 {
		t.Errorf("second import = %+v, want all skipped", again)
	}
}

func TestImportQuestionsRequiresURL(t *testing.T) {
	svc, _ := newAdminService(t)

	_, err := svc.ImportQuestions(context.Background(), "", "", 0)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ImportQuestions(\"\") error = %v, want ErrValidation", err)
	}
}

func TestImportQuestionsSurfacesSourceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	svc, _ := newAdminService(t)
	if _, err := svc.ImportQuestions(context.Background(), srv.URL, "", 0); err == nil {
		t.Fatal("ImportQuestions() on failing source returned nil error")
	}
}
