package main

import (
	"complymeter/internal/model"
	"complymeter/internal/repository"
	"complymeter/internal/service"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	database := os.Getenv("MONGO_DATABASE")
	if database == "" {
		database = "complymeter"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewQuestionnaireRepo(client.Database(database))
	svc := service.NewQuestionnaireService(repo)

	questionnaire := model.Questionnaire{
		Regulation: "DPDP",
		Industry:   "banking and finance",
		Title:      "Digital Personal Data Protection Act - Banking and Finance",
		Sections: []model.Section{
			{
				Name:   "Consent Management",
				Weight: 0.25,
				Questions: []model.Question{
					{
						Text: "Does your organization obtain explicit consent before collecting personal data?",
						Options: []string{
							"Yes, with clear consent notices",
							"Partially, for some data categories",
							"No formal consent process",
							"Not applicable",
						},
						Recommendations: map[string]string{
							"Partially, for some data categories": "Extend consent collection to every category of personal data processed.",
							"No formal consent process":           "Implement a consent management process with clear, itemized notices before any personal data is collected.",
						},
					},
					{
						Text: "Can data principals withdraw consent as easily as they gave it?",
						Options: []string{
							"Yes, withdrawal is a single step",
							"Withdrawal requires contacting support",
							"No withdrawal mechanism exists",
							"Not applicable",
						},
						Recommendations: map[string]string{
							"Withdrawal requires contacting support": "Provide a self-service consent withdrawal mechanism as accessible as the original consent flow.",
							"No withdrawal mechanism exists":         "Build a consent withdrawal mechanism; the Act requires withdrawal to be as easy as giving consent.",
						},
					},
				},
			},
			{
				Name:   "Data Security",
				Weight: 0.30,
				Questions: []model.Question{
					{
						Text: "Is personal data encrypted at rest and in transit?",
						Options: []string{
							"Yes, full encryption everywhere",
							"Partially encrypted",
							"No encryption in place",
							"Not applicable",
						},
						Recommendations: map[string]string{
							"Partially encrypted":    "Extend encryption to cover all personal data at rest and in transit.",
							"No encryption in place": "Deploy encryption for personal data at rest and in transit as a baseline safeguard.",
						},
					},
					{
						Text: "Do you have a documented breach notification procedure?",
						Options: []string{
							"Yes, with defined timelines",
							"Basic procedure, needs improvement",
							"No documented procedure",
							"Not applicable",
						},
						Recommendations: map[string]string{
							"Basic procedure, needs improvement": "Formalize breach notification timelines and escalation paths, including notification to the Data Protection Board.",
							"No documented procedure":            "Create and test a breach notification procedure covering detection, containment, and regulator notification.",
						},
					},
				},
			},
			{
				Name:   "Data Principal Rights",
				Weight: 0.25,
				Questions: []model.Question{
					{
						Text: "Can data principals access and correct their personal data on request?",
						Options: []string{
							"Yes, through a self-service portal",
							"Yes, through manual processing",
							"Limited access only",
							"No access mechanism",
							"Not applicable",
						},
						Recommendations: map[string]string{
							"Limited access only": "Broaden access and correction rights to cover all personal data held about a data principal.",
							"No access mechanism": "Establish a process for data principals to access, correct, and erase their personal data.",
						},
					},
					{
						Text: "Are grievances from data principals resolved within defined timelines?",
						Options: []string{
							"Yes, tracked with SLAs",
							"Mostly, but timelines slip",
							"No grievance process",
							"Not applicable",
						},
						Recommendations: map[string]string{
							"Mostly, but timelines slip": "Tighten grievance handling SLAs and track resolution times.",
							"No grievance process":       "Appoint a grievance officer and publish a grievance redressal process with response timelines.",
						},
					},
				},
			},
			{
				Name:   "Governance and Accountability",
				Weight: 0.20,
				Questions: []model.Question{
					{
						Text: "Has your organization appointed a Data Protection Officer or equivalent?",
						Options: []string{
							"Yes, with a defined mandate",
							"Responsibility assigned informally",
							"No one is responsible",
							"Not applicable",
						},
						Recommendations: map[string]string{
							"Responsibility assigned informally": "Formalize the data protection role with a documented mandate and reporting line.",
							"No one is responsible":              "Appoint a Data Protection Officer accountable for compliance with the Act.",
						},
					},
					{
						Text: "Are data processing activities documented and reviewed periodically?",
						Options: []string{
							"Yes, comprehensive records maintained",
							"Partial records exist",
							"No records of processing",
							"Not applicable",
						},
						Recommendations: map[string]string{
							"Partial records exist":    "Complete the record of processing activities and schedule periodic reviews.",
							"No records of processing": "Build a record of processing activities covering purposes, categories, and retention periods.",
						},
					},
				},
			},
		},
	}

	// Same validation path as the admin API
	id, err := svc.Create(ctx, &questionnaire)
	if err != nil {
		log.Fatalf("Failed to seed questionnaire: %v", err)
	}

	fmt.Printf("Seeded questionnaire %s: '%s' (%s / %s, %d questions)\n",
		id, questionnaire.Title, questionnaire.Regulation, questionnaire.Industry,
		questionnaire.QuestionCount())
}
