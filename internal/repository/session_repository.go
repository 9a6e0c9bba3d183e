package repository

import (
	"context"

	"gauntlet-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("gauntlet_sessions")}
}

// FindByID returns nil without error when no session matches.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.GauntletSession, error) {
	var session models.GauntletSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.GauntletSession) error {
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

// Save persists the whole computed session state in one write, so a request
// either lands fully or not at all.
func (r *SessionRepository) Save(ctx context.Context, session *models.GauntletSession) error {
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	return err
}
