package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fragenspiel/internal/model"
)

type CharacterRepo interface {
	Create(ctx context.Context, character *model.Character) error
	GetByID(ctx context.Context, id int) (*model.Character, error)
	GetAll(ctx context.Context) ([]*model.Character, error)
	Update(ctx context.Context, character *model.Character) error
	Delete(ctx context.Context, id int) error

	// UpsertByName inserts the character unless one with the same name
	// already exists. Reports whether an insert happened.
	UpsertByName(ctx context.Context, character *model.Character) (bool, error)

	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type characterRepo struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewCharacterRepo(db *mongo.Database) CharacterRepo {
	return &characterRepo{
		db:         db,
		collection: db.Collection("characters"),
	}
}

func (r *characterRepo) Create(ctx context.Context, character *model.Character) error {
	if character.ID == 0 {
		seq, err := nextSequence(ctx, r.db, "characters")
		if err != nil {
			return err
		}
		character.ID = int(seq)
	}
	if character.CreatedAt.IsZero() {
		character.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, character)
	return err
}

func (r *characterRepo) GetByID(ctx context.Context, id int) (*model.Character, error) {
	var character model.Character
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&character)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &character, nil
}

func (r *characterRepo) GetAll(ctx context.Context) ([]*model.Character, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var characters []*model.Character
	if err = cursor.All(ctx, &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepo) Update(ctx context.Context, character *model.Character) error {
	update := bson.M{"$set": bson.M{
		"name":        character.Name,
		"description": character.Description,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": character.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *characterRepo) Delete(ctx context.Context, id int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *characterRepo) UpsertByName(ctx context.Context, character *model.Character) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"name": character.Name})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := r.Create(ctx, character); err != nil {
		return false, err
	}
	return true, nil
}

func (r *characterRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *characterRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
