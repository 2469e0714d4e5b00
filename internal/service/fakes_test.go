package service

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"fragenspiel/internal/model"
	"fragenspiel/internal/repository"
)

// In-memory repository fakes. They mirror the Mongo-backed behavior the
// services rely on: nil-on-missing lookups, counter-assigned ids and the
// unique (character, question) constraint on answers.

type fakeCharacterRepo struct {
	characters map[int]*model.Character
	nextID     int
}

func newFakeCharacterRepo() *fakeCharacterRepo {
	return &fakeCharacterRepo{characters: make(map[int]*model.Character)}
}

func (r *fakeCharacterRepo) Create(ctx context.Context, character *model.Character) error {
	if character.ID == 0 {
		r.nextID++
		character.ID = r.nextID
	}
	if character.CreatedAt.IsZero() {
		character.CreatedAt = time.Now()
	}
	clone := *character
	r.characters[character.ID] = &clone
	return nil
}

func (r *fakeCharacterRepo) GetByID(ctx context.Context, id int) (*model.Character, error) {
	c, ok := r.characters[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCharacterRepo) GetAll(ctx context.Context) ([]*model.Character, error) {
	var all []*model.Character
	for _, c := range r.characters {
		clone := *c
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeCharacterRepo) Update(ctx context.Context, character *model.Character) error {
	existing, ok := r.characters[character.ID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	existing.Name = character.Name
	existing.Description = character.Description
	return nil
}

func (r *fakeCharacterRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.characters[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.characters, id)
	return nil
}

func (r *fakeCharacterRepo) UpsertByName(ctx context.Context, character *model.Character) (bool, error) {
	for _, c := range r.characters {
		if c.Name == character.Name {
			return false, nil
		}
	}
	return true, r.Create(ctx, character)
}

func (r *fakeCharacterRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.characters)), nil
}

func (r *fakeCharacterRepo) DeleteAll(ctx context.Context) error {
	r.characters = make(map[int]*model.Character)
	return nil
}

type fakeQuestionRepo struct {
	questions map[int]*model.Question
	nextID    int
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[int]*model.Question)}
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *model.Question) error {
	if question.ID == 0 {
		r.nextID++
		question.ID = r.nextID
	}
	if question.Difficulty == 0 {
		question.Difficulty = 1
	}
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}
	clone := *question
	r.questions[question.ID] = &clone
	return nil
}

func (r *fakeQuestionRepo) GetByID(ctx context.Context, id int) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	clone := *q
	return &clone, nil
}

func (r *fakeQuestionRepo) GetAll(ctx context.Context) ([]*model.Question, error) {
	var all []*model.Question
	for _, q := range r.questions {
		clone := *q
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeQuestionRepo) GetByDifficulty(ctx context.Context, difficulty int) ([]*model.Question, error) {
	all, _ := r.GetAll(ctx)
	var filtered []*model.Question
	for _, q := range all {
		if q.Difficulty == difficulty {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

func (r *fakeQuestionRepo) Update(ctx context.Context, question *model.Question) error {
	existing, ok := r.questions[question.ID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	existing.Text = question.Text
	existing.Category = question.Category
	existing.Difficulty = question.Difficulty
	return nil
}

func (r *fakeQuestionRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.questions[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.questions, id)
	return nil
}

func (r *fakeQuestionRepo) UpsertByText(ctx context.Context, question *model.Question) (bool, error) {
	for _, q := range r.questions {
		if q.Text == question.Text {
			return false, nil
		}
	}
	return true, r.Create(ctx, question)
}

func (r *fakeQuestionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.questions)), nil
}

func (r *fakeQuestionRepo) DeleteAll(ctx context.Context) error {
	r.questions = make(map[int]*model.Question)
	return nil
}

type fakeAnswerRepo struct {
	answers []*model.Answer
	nextID  int64
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{}
}

func (r *fakeAnswerRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeAnswerRepo) Create(ctx context.Context, answer *model.Answer) error {
	for _, a := range r.answers {
		if a.CharacterID == answer.CharacterID && a.QuestionID == answer.QuestionID {
			return repository.ErrDuplicateAnswer
		}
	}
	r.nextID++
	answer.ID = r.nextID
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}
	clone := *answer
	r.answers = append(r.answers, &clone)
	return nil
}

func (r *fakeAnswerRepo) GetByCharacter(ctx context.Context, characterID int) ([]*model.Answer, error) {
	var result []*model.Answer
	for _, a := range r.answers {
		if a.CharacterID == characterID {
			clone := *a
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeAnswerRepo) AnsweredQuestionIDs(ctx context.Context, characterID int) ([]int, error) {
	var ids []int
	for _, a := range r.answers {
		if a.CharacterID == characterID {
			ids = append(ids, a.QuestionID)
		}
	}
	return ids, nil
}

func (r *fakeAnswerRepo) CountByCharacter(ctx context.Context) (map[int]int, error) {
	counts := make(map[int]int)
	for _, a := range r.answers {
		counts[a.CharacterID]++
	}
	return counts, nil
}

func (r *fakeAnswerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.answers)), nil
}

func (r *fakeAnswerRepo) DeleteByCharacter(ctx context.Context, characterID int) (int64, error) {
	kept := r.answers[:0]
	var deleted int64
	for _, a := range r.answers {
		if a.CharacterID == characterID {
			deleted++
		} else {
			kept = append(kept, a)
		}
	}
	r.answers = kept
	return deleted, nil
}

func (r *fakeAnswerRepo) DeleteAll(ctx context.Context) (int64, error) {
	deleted := int64(len(r.answers))
	r.answers = nil
	return deleted, nil
}
