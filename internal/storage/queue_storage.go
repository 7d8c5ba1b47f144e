package storage

import (
	"context"
	"errors"
	"time"

	"GameServer_Backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// QueueStore persists matchmaking queue entries. Lookups that miss
// return (nil, nil) so callers can distinguish absence from failure.
type QueueStore interface {
	Upsert(ctx context.Context, entry *models.QueueEntry) error
	Remove(ctx context.Context, playerID string) (bool, error)
	Get(ctx context.Context, playerID string) (*models.QueueEntry, error)
	CountJoinedBefore(ctx context.Context, joinedAt time.Time) (int64, error)
	CountWaiting(ctx context.Context) (int64, error)
	FindOpponent(ctx context.Context, playerID string, minScore, maxScore int) (*models.QueueEntry, error)
	Stats(ctx context.Context) (*models.QueueStats, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type queueStoreMongo struct {
	coll *mongo.Collection
}

func NewQueueStore(db *mongo.Database) QueueStore {
	return &queueStoreMongo{coll: db.Collection("queue")}
}

// Upsert keeps one entry per player, refreshing score and join time on
// a repeated join.
func (q *queueStoreMongo) Upsert(ctx context.Context, entry *models.QueueEntry) error {
	_, err := q.coll.UpdateOne(ctx,
		bson.M{"player_id": entry.PlayerID},
		bson.M{"$set": entry},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (q *queueStoreMongo) Remove(ctx context.Context, playerID string) (bool, error) {
	res, err := q.coll.DeleteOne(ctx, bson.M{"player_id": playerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (q *queueStoreMongo) Get(ctx context.Context, playerID string) (*models.QueueEntry, error) {
	entry := &models.QueueEntry{}
	err := q.coll.FindOne(ctx, bson.M{"player_id": playerID}).Decode(entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func (q *queueStoreMongo) CountJoinedBefore(ctx context.Context, joinedAt time.Time) (int64, error) {
	return q.coll.CountDocuments(ctx, bson.M{"joined_at": bson.M{"$lt": joinedAt}})
}

func (q *queueStoreMongo) CountWaiting(ctx context.Context) (int64, error) {
	return q.coll.CountDocuments(ctx, bson.M{"status": models.QueueStatusWaiting})
}

// FindOpponent picks the longest-waiting player other than playerID
// whose score falls inside [minScore, maxScore].
func (q *queueStoreMongo) FindOpponent(ctx context.Context, playerID string, minScore, maxScore int) (*models.QueueEntry, error) {
	filter := bson.M{
		"player_id": bson.M{"$ne": playerID},
		"status":    models.QueueStatusWaiting,
		"score":     bson.M{"$gte": minScore, "$lte": maxScore},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "joined_at", Value: 1}})
	entry := &models.QueueEntry{}
	err := q.coll.FindOne(ctx, filter, opts).Decode(entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func (q *queueStoreMongo) Stats(ctx context.Context) (*models.QueueStats, error) {
	total, err := q.CountWaiting(ctx)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": models.QueueStatusWaiting}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": nil, "avg_score": bson.M{"$avg": "$score"}}}},
	}
	cursor, err := q.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		AvgScore float64 `bson:"avg_score"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	stats := &models.QueueStats{
		TotalPlayers: int(total),
		Timestamp:    time.Now().UTC(),
	}
	if len(results) > 0 {
		stats.AverageScore = results[0].AvgScore
	}
	return stats, nil
}

func (q *queueStoreMongo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.coll.DeleteMany(ctx, bson.M{"joined_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
