package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fragenspiel/internal/model"
)

// ErrDuplicateAnswer is returned when a (character, question) pair is
// answered a second time. Backed by the unique compound index.
var ErrDuplicateAnswer = errors.New("question already answered by this character")

type AnswerRepo interface {
	Create(ctx context.Context, answer *model.Answer) error
	GetByCharacter(ctx context.Context, characterID int) ([]*model.Answer, error)
	AnsweredQuestionIDs(ctx context.Context, characterID int) ([]int, error)
	CountByCharacter(ctx context.Context) (map[int]int, error)
	Count(ctx context.Context) (int64, error)
	DeleteByCharacter(ctx context.Context, characterID int) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)

	// EnsureIndexes creates the unique (characterId, questionId) index
	// that guards against double-recording. Called once at startup.
	EnsureIndexes(ctx context.Context) error
}

type answerRepo struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		db:         db,
		collection: db.Collection("answers"),
	}
}

func (r *answerRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "characterId", Value: 1},
			{Key: "questionId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *answerRepo) Create(ctx context.Context, answer *model.Answer) error {
	if answer.ID == 0 {
		seq, err := nextSequence(ctx, r.db, "answers")
		if err != nil {
			return err
		}
		answer.ID = seq
	}
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, answer)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateAnswer
	}
	return err
}

func (r *answerRepo) GetByCharacter(ctx context.Context, characterID int) ([]*model.Answer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"characterId": characterID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []*model.Answer
	if err = cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) AnsweredQuestionIDs(ctx context.Context, characterID int) ([]int, error) {
	values, err := r.collection.Distinct(ctx, "questionId", bson.M{"characterId": characterID})
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(values))
	for _, v := range values {
		switch id := v.(type) {
		case int32:
			ids = append(ids, int(id))
		case int64:
			ids = append(ids, int(id))
		case int:
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *answerRepo) CountByCharacter(ctx context.Context) (map[int]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$characterId",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		CharacterID int `bson:"_id"`
		Count       int `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.CharacterID] = row.Count
	}
	return counts, nil
}

func (r *answerRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *answerRepo) DeleteByCharacter(ctx context.Context, characterID int) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"characterId": characterID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *answerRepo) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
