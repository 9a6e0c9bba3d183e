package repository

import (
	"context"
	"sort"

	"gauntlet-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// FindByID returns nil without error when no question matches.
func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// DistinctSubjects lists every subject in the bank, sorted.
func (r *QuestionRepository) DistinctSubjects(ctx context.Context) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "subject", bson.M{})
	if err != nil {
		return nil, err
	}
	subjects := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			subjects = append(subjects, s)
		}
	}
	sort.Strings(subjects)
	return subjects, nil
}

// Sample draws one random question matching subject and difficulty while
// excluding already-served ids. Returns nil when the pool is exhausted.
func (r *QuestionRepository) Sample(ctx context.Context, subject, subTopic string, difficulty models.Difficulty, excludeIDs []string) (*models.Question, error) {
	match := bson.M{
		"subject":    subject,
		"difficulty": difficulty,
	}
	if subTopic != "" {
		match["sub_topic"] = subTopic
	}
	if len(excludeIDs) > 0 {
		match["_id"] = bson.M{"$nin": excludeIDs}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sample", Value: bson.M{"size": 1}}},
	}

	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return nil, cur.Err()
	}
	var question models.Question
	if err := cur.Decode(&question); err != nil {
		return nil, err
	}
	return &question, nil
}

// FindForDrill fetches up to limit questions for a weakness drill, any
// difficulty.
func (r *QuestionRepository) FindForDrill(ctx context.Context, subject, subTopic string, limit int) ([]models.Question, error) {
	filter := bson.M{"subject": subject}
	if subTopic != "" {
		filter["sub_topic"] = subTopic
	}

	opts := options.Find().SetLimit(int64(limit))
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}
