package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type EmailRepository struct {
	Coll *mongo.Collection
}

func NewEmailRepository(db *mongo.Database) *EmailRepository {
	return &EmailRepository{Coll: db.Collection(StorageCollection)}
}

func (r *EmailRepository) FindByID(ctx context.Context, id string) (entity.Document, error) {
	filter, err := emailFilter(id)
	if err != nil {
		return nil, err
	}

	var doc entity.Document
	if err := r.Coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("find email %s: %w", id, err)
	}
	return doc, nil
}

func (r *EmailRepository) Update(ctx context.Context, id string, update entity.EmailUpdate) error {
	filter, err := emailFilter(id)
	if err != nil {
		return err
	}

	res, err := r.Coll.UpdateOne(ctx, filter, setDocument(update))
	if err != nil {
		return fmt.Errorf("update email %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *EmailRepository) Delete(ctx context.Context, id string) error {
	filter, err := emailFilter(id)
	if err != nil {
		return err
	}

	res, err := r.Coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete email %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *EmailRepository) BulkUpdate(ctx context.Context, ids []string, update entity.EmailUpdate) (entity.BulkUpdateResult, error) {
	filter, err := emailsFilter(ids)
	if err != nil {
		return entity.BulkUpdateResult{}, err
	}

	res, err := r.Coll.UpdateMany(ctx, filter, setDocument(update))
	if err != nil {
		return entity.BulkUpdateResult{}, fmt.Errorf("bulk update %d emails: %w", len(ids), err)
	}
	return entity.BulkUpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func emailFilter(id string) (bson.M, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("email id %q: %w", id, err)
	}
	return bson.M{"_id": oid, "type": entity.EmailType}, nil
}

func emailsFilter(ids []string) (bson.M, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("email id %q: %w", id, err)
		}
		oids = append(oids, oid)
	}
	return bson.M{"_id": bson.M{"$in": oids}, "type": entity.EmailType}, nil
}

// setDocument builds the $set operand. With no whitelisted field it rewrites
// the discriminator the filter already matched, so the update stays a no-op
// that still reports the match.
func setDocument(update entity.EmailUpdate) bson.M {
	if update.Empty() {
		return bson.M{"$set": bson.M{"type": entity.EmailType}}
	}
	set := bson.M{}
	for k, v := range update {
		set[k] = v
	}
	return bson.M{"$set": set}
}
