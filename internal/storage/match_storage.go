package storage

import (
	"context"
	"errors"
	"time"

	"GameServer_Backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MatchStore persists created matches.
type MatchStore interface {
	Create(ctx context.Context, match *models.Match) error
	Get(ctx context.Context, matchID string) (*models.Match, error)
	MarkCancelled(ctx context.Context, matchID string, at time.Time) error
}

type matchStoreMongo struct {
	coll *mongo.Collection
}

func NewMatchStore(db *mongo.Database) MatchStore {
	return &matchStoreMongo{coll: db.Collection("matches")}
}

func (m *matchStoreMongo) Create(ctx context.Context, match *models.Match) error {
	_, err := m.coll.InsertOne(ctx, match)
	return err
}

func (m *matchStoreMongo) Get(ctx context.Context, matchID string) (*models.Match, error) {
	match := &models.Match{}
	err := m.coll.FindOne(ctx, bson.M{"_id": matchID}).Decode(match)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return match, nil
}

func (m *matchStoreMongo) MarkCancelled(ctx context.Context, matchID string, at time.Time) error {
	_, err := m.coll.UpdateOne(ctx,
		bson.M{"_id": matchID},
		bson.M{"$set": bson.M{"status": models.MatchStatusCancelled, "cancelled_at": at}},
	)
	return err
}
