package repository

import (
	"complymeter/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuestionnaireRepo handles MongoDB operations for questionnaires
type QuestionnaireRepo interface {
	Create(ctx context.Context, q *model.Questionnaire) (string, error)
	GetByID(ctx context.Context, id string) (*model.Questionnaire, error)
	GetByRegulationIndustry(ctx context.Context, regulation, industry string) (*model.Questionnaire, error)
	List(ctx context.Context, regulation string) ([]*model.Questionnaire, error)
	Update(ctx context.Context, q *model.Questionnaire) error
	Delete(ctx context.Context, id string) error
}

type questionnaireRepo struct {
	collection *mongo.Collection
}

// NewQuestionnaireRepo creates a new questionnaire repository
func NewQuestionnaireRepo(db *mongo.Database) QuestionnaireRepo {
	return &questionnaireRepo{
		collection: db.Collection("questionnaires"),
	}
}

func (r *questionnaireRepo) Create(ctx context.Context, q *model.Questionnaire) (string, error) {
	q.CreatedAt = time.Now()
	q.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, q)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *questionnaireRepo) GetByID(ctx context.Context, id string) (*model.Questionnaire, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var q model.Questionnaire
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	q.ID = id
	return &q, nil
}

func (r *questionnaireRepo) GetByRegulationIndustry(ctx context.Context, regulation, industry string) (*model.Questionnaire, error) {
	var q model.Questionnaire
	err := r.collection.FindOne(ctx, bson.M{"regulation": regulation, "industry": industry}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionnaireRepo) List(ctx context.Context, regulation string) ([]*model.Questionnaire, error) {
	filter := bson.M{}
	if regulation != "" {
		filter["regulation"] = regulation
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questionnaires []*model.Questionnaire
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, err
	}
	return questionnaires, nil
}

func (r *questionnaireRepo) Update(ctx context.Context, q *model.Questionnaire) error {
	oid, err := primitive.ObjectIDFromHex(q.ID)
	if err != nil {
		return err
	}

	q.UpdatedAt = time.Now()

	// _id must be omitted from the replacement document
	doc := *q
	doc.ID = ""
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, &doc)
	return err
}

func (r *questionnaireRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
