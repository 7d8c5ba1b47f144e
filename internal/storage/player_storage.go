package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GameServer_Backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrPlayerNotFound = errors.New("player not found")
)

// PlayerStore persists player accounts and their stats.
type PlayerStore interface {
	Create(ctx context.Context, player *models.Player) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.Player, error)
	UpdateStats(ctx context.Context, username string, score, combo int) (*models.Player, error)
}

type playerStoreMongo struct {
	coll *mongo.Collection
}

// NewPlayerStore wires the players collection and ensures the unique
// username index exists.
func NewPlayerStore(ctx context.Context, db *mongo.Database) (PlayerStore, error) {
	coll := db.Collection("players")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create username index: %w", err)
	}
	return &playerStoreMongo{coll: coll}, nil
}

func (p *playerStoreMongo) Create(ctx context.Context, player *models.Player) (string, error) {
	player.CreatedAt = time.Now().UTC()
	res, err := p.coll.InsertOne(ctx, player)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrUsernameExists
		}
		return "", err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (p *playerStoreMongo) GetByUsername(ctx context.Context, username string) (*models.Player, error) {
	player := &models.Player{}
	err := p.coll.FindOne(ctx, bson.M{"username": username}).Decode(player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// UpdateStats raises the stored maxima with $max so a lower submission
// can never regress a record, and returns the post-update document.
func (p *playerStoreMongo) UpdateStats(ctx context.Context, username string, score, combo int) (*models.Player, error) {
	update := bson.M{"$max": bson.M{
		"main_highest_score": score,
		"main_highest_combo": combo,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	player := &models.Player{}
	err := p.coll.FindOneAndUpdate(ctx, bson.M{"username": username}, update, opts).Decode(player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}
