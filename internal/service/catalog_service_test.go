package service

import (
	"context"
	"errors"
	"testing"

	"fragenspiel/internal/model"
)

func TestCharacterServiceCRUD(t *testing.T) {
	svc := NewCharacterService(newFakeCharacterRepo())
	ctx := context.Background()

	character := &model.Character{Name: "  Frida  ", Description: "test subject"}
	if err := svc.Create(ctx, character); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if character.ID == 0 {
		t.Fatal("Create() did not assign an id")
	}
	if character.Name != "Frida" {
		t.Errorf("name = %q, want trimmed", character.Name)
	}

	got, err := svc.GetByID(ctx, character.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Frida" {
		t.Errorf("GetByID() name = %q", got.Name)
	}

	got.Description = "updated"
	if err := svc.Update(ctx, got); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := svc.Delete(ctx, character.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(ctx, character.ID); !errors.Is(err, ErrCharacterNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrCharacterNotFound", err)
	}
}

func TestCharacterServiceValidation(t *testing.T) {
	svc := NewCharacterService(newFakeCharacterRepo())
	ctx := context.Background()

	if err := svc.Create(ctx, &model.Character{Name: "   "}); !errors.Is(err, ErrValidation) {
		t.Errorf("Create() with blank name error = %v, want ErrValidation", err)
	}
	if err := svc.Update(ctx, &model.Character{ID: 1, Name: "Ghost"}); !errors.Is(err, ErrCharacterNotFound) {
		t.Errorf("Update() of missing character error = %v, want ErrCharacterNotFound", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrCharacterNotFound) {
		t.Errorf("Delete() of missing character error = %v, want ErrCharacterNotFound", err)
	}
}

func TestQuestionServiceCRUD(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	ctx := context.Background()

	question := &model.Question{Text: "What now?", Category: "Test"}
	if err := svc.Create(ctx, question); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if question.ID == 0 {
		t.Fatal("Create() did not assign an id")
	}
	if question.Difficulty != 1 {
		t.Errorf("default difficulty = %d, want 1", question.Difficulty)
	}

	if err := svc.Create(ctx, &model.Question{Text: "  "}); !errors.Is(err, ErrValidation) {
		t.Errorf("Create() with blank text error = %v, want ErrValidation", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() returned %d questions, want 1", len(list))
	}

	if _, err := svc.GetByID(ctx, 999); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("GetByID(999) error = %v, want ErrQuestionNotFound", err)
	}
}
