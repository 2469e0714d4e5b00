package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fragenspiel/internal/model"
)

type QuestionRepo interface {
	Create(ctx context.Context, question *model.Question) error
	GetByID(ctx context.Context, id int) (*model.Question, error)
	GetAll(ctx context.Context) ([]*model.Question, error)
	GetByDifficulty(ctx context.Context, difficulty int) ([]*model.Question, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id int) error

	// UpsertByText inserts the question unless one with identical text
	// already exists. Reports whether an insert happened. Used by preload
	// and the importer to stay idempotent.
	UpsertByText(ctx context.Context, question *model.Question) (bool, error)

	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type questionRepo struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		db:         db,
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) Create(ctx context.Context, question *model.Question) error {
	if question.ID == 0 {
		seq, err := nextSequence(ctx, r.db, "questions")
		if err != nil {
			return err
		}
		question.ID = int(seq)
	}
	if question.Difficulty == 0 {
		question.Difficulty = 1
	}
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, question)
	return err
}

func (r *questionRepo) GetByID(ctx context.Context, id int) (*model.Question, error) {
	var question model.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) GetAll(ctx context.Context) ([]*model.Question, error) {
	return r.find(ctx, bson.M{})
}

func (r *questionRepo) GetByDifficulty(ctx context.Context, difficulty int) ([]*model.Question, error) {
	return r.find(ctx, bson.M{"difficulty": difficulty})
}

func (r *questionRepo) find(ctx context.Context, filter bson.M) ([]*model.Question, error) {
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) Update(ctx context.Context, question *model.Question) error {
	update := bson.M{"$set": bson.M{
		"text":       question.Text,
		"category":   question.Category,
		"difficulty": question.Difficulty,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": question.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *questionRepo) Delete(ctx context.Context, id int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *questionRepo) UpsertByText(ctx context.Context, question *model.Question) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"text": question.Text})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := r.Create(ctx, question); err != nil {
		return false, err
	}
	return true, nil
}

func (r *questionRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *questionRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
