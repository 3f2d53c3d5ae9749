// Package queue defines the background tasks exchanged between the API
// server and the worker over Redis.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Prajwalng2/Major-Project-temp/internal/logger"
	"github.com/Prajwalng2/Major-Project-temp/models"
)

const (
	TaskApplicationConfirm = "application:confirm"
)

type ApplicationConfirmPayload struct {
	ApplicationID string `json:"application_id"`
	SchemeID      string `json:"scheme_id"`
	SchemeTitle   string `json:"scheme_title"`
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
}

// Task creators
func NewApplicationConfirmTask(applicationID, schemeID, schemeTitle, applicantName, email string) (*asynq.Task, error) {
	payload, err := json.Marshal(ApplicationConfirmPayload{
		ApplicationID: applicationID,
		SchemeID:      schemeID,
		SchemeTitle:   schemeTitle,
		ApplicantName: applicantName,
		Email:         email,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskApplicationConfirm,
		payload,
		asynq.MaxRetry(5),
		asynq.Timeout(2*time.Minute),
		asynq.Queue("default"),
	), nil
}

// EmailSender delivers the confirmation mail. Satisfied by the SMTP
// sender in services; an interface here keeps the worker testable.
type EmailSender interface {
	SendApplicationConfirmation(ctx context.Context, to, applicantName, schemeTitle, applicationID string) error
}

// Task handlers
type TaskProcessor struct {
	db     *mongo.Database
	mailer EmailSender
}

func NewTaskProcessor(db *mongo.Database, mailer EmailSender) *TaskProcessor {
	return &TaskProcessor{
		db:     db,
		mailer: mailer,
	}
}

// ProcessApplicationConfirm sends the confirmation email and moves the
// application from submitted to acknowledged. The status update only
// happens after a successful send so a retried task re-sends the mail.
func (p *TaskProcessor) ProcessApplicationConfirm(ctx context.Context, t *asynq.Task) error {
	var payload ApplicationConfirmPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal failed: %w", asynq.SkipRetry)
	}

	logger.Info("Processing application confirmation",
		"application_id", payload.ApplicationID, "scheme_id", payload.SchemeID)

	if p.mailer != nil && payload.Email != "" {
		err := p.mailer.SendApplicationConfirmation(ctx, payload.Email, payload.ApplicantName, payload.SchemeTitle, payload.ApplicationID)
		if err != nil {
			return err // Will retry
		}
	}

	col := p.db.Collection("applications")
	_, err := col.UpdateOne(
		ctx,
		bson.M{"_id": payload.ApplicationID, "status": models.ApplicationStatusSubmitted},
		bson.M{
			"$set": bson.M{
				"status":     models.ApplicationStatusAcknowledged,
				"updated_at": time.Now(),
			},
		},
	)
	if err != nil {
		return err
	}

	logger.Info("Application acknowledged", "application_id", payload.ApplicationID)
	return nil
}
