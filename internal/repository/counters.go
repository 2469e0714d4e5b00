package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextSequence allocates the next integer id for a collection from the
// shared counters collection. Upsert keeps it working on a fresh database.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	res := db.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// ResetSequences drops the id counters so a cleared database starts
// numbering from 1 again.
func ResetSequences(ctx context.Context, db *mongo.Database, names ...string) error {
	ids := make([]interface{}, len(names))
	for i, n := range names {
		ids[i] = n
	}
	_, err := db.Collection("counters").DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}
