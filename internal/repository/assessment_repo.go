package repository

import (
	"complymeter/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssessmentRepo handles MongoDB operations for assessments
type AssessmentRepo interface {
	Create(ctx context.Context, a *model.Assessment) (string, error)
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	ListByOrganization(ctx context.Context, org string) ([]*model.Assessment, error)
	Update(ctx context.Context, a *model.Assessment) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, a *model.Assessment) (string, error) {
	a.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var a model.Assessment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.ID = id
	return &a, nil
}

func (r *assessmentRepo) ListByOrganization(ctx context.Context, org string) ([]*model.Assessment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"organizationName": org})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) Update(ctx context.Context, a *model.Assessment) error {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return err
	}

	// _id must be omitted from the replacement document
	doc := *a
	doc.ID = ""
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, &doc)
	return err
}
