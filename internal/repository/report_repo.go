package repository

import (
	"complymeter/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepo handles MongoDB operations for narrative reports
type ReportRepo interface {
	Save(ctx context.Context, report *model.NarrativeReport) error
	Get(ctx context.Context, assessmentID string) (*model.NarrativeReport, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		collection: db.Collection("narrative_reports"),
	}
}

func (r *reportRepo) Save(ctx context.Context, report *model.NarrativeReport) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"assessmentId": report.AssessmentID}, report, opts)
	return err
}

func (r *reportRepo) Get(ctx context.Context, assessmentID string) (*model.NarrativeReport, error) {
	var report model.NarrativeReport
	err := r.collection.FindOne(ctx, bson.M{"assessmentId": assessmentID}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
