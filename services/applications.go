package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Prajwalng2/Major-Project-temp/internal/logger"
	"github.com/Prajwalng2/Major-Project-temp/internal/queue"
	"github.com/Prajwalng2/Major-Project-temp/internal/telemetry"
	"github.com/Prajwalng2/Major-Project-temp/models"
)

// ApplicationService records citizen applications, stores supporting
// documents in GridFS and enqueues the confirmation task for the worker.
type ApplicationService struct {
	collection  *mongo.Collection
	bucket      *gridfs.Bucket
	asynqClient *asynq.Client
	metrics     *telemetry.Metrics
}

func NewApplicationService(db *mongo.Database, asynqClient *asynq.Client, metrics *telemetry.Metrics) (*ApplicationService, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("application_documents"))
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFS bucket: %w", err)
	}

	return &ApplicationService{
		collection:  db.Collection("applications"),
		bucket:      bucket,
		asynqClient: asynqClient,
		metrics:     metrics,
	}, nil
}

// Submit records a new application against a scheme and hands the
// confirmation off to the worker. The application is persisted even if
// the queue is down; the confirmation is then best-effort.
func (as *ApplicationService) Submit(ctx context.Context, req models.ApplicationRequest, scheme models.Scheme) (*models.Application, error) {
	now := time.Now()
	app := models.Application{
		ID:            "APP-" + uuid.NewString(),
		SchemeID:      scheme.ID,
		SchemeTitle:   scheme.Title,
		ApplicantName: req.ApplicantName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Status:        models.ApplicationStatusSubmitted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := as.collection.InsertOne(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to store application: %w", err)
	}

	if as.metrics != nil {
		as.metrics.RecordApplicationSubmitted(scheme.ID)
	}

	if as.asynqClient != nil {
		task, err := queue.NewApplicationConfirmTask(app.ID, app.SchemeID, app.SchemeTitle, app.ApplicantName, app.Email)
		if err == nil {
			_, err = as.asynqClient.EnqueueContext(ctx, task)
		}
		if err != nil {
			logger.Warn("Failed to enqueue confirmation task", "application_id", app.ID, "error", err)
		}
	}

	logger.Info("Application submitted", "application_id", app.ID, "scheme_id", app.SchemeID)
	return &app, nil
}

// GetByID fetches one application. Returns nil when absent.
func (as *ApplicationService) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := as.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UploadDocument streams one supporting document into GridFS, tagged
// with the owning application so documents can be listed per
// application later.
func (as *ApplicationService) UploadDocument(ctx context.Context, applicationID, documentType, fileName string, size int64, r io.Reader) (*models.UploadedDocument, error) {
	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{
		"application_id": applicationID,
		"document_type":  documentType,
		"uploaded_at":    time.Now(),
	})

	if _, err := as.bucket.UploadFromStream(fileName, r, uploadOpts); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &models.UploadedDocument{
		ApplicationID: applicationID,
		DocumentType:  documentType,
		FileName:      fileName,
		Size:          size,
		UploadedAt:    time.Now(),
	}

	logger.Info("Document uploaded", "application_id", applicationID, "file", fileName, "size", size)
	return doc, nil
}
