// models/application.go
package models

import "time"

// Application statuses move forward only:
// submitted -> acknowledged (confirmation sent by the worker).
const (
	ApplicationStatusSubmitted    = "submitted"
	ApplicationStatusAcknowledged = "acknowledged"
)

// Application is a citizen's (mocked) application for a scheme.
type Application struct {
	ID            string    `bson:"_id" json:"id"`
	SchemeID      string    `bson:"scheme_id" json:"schemeId"`
	SchemeTitle   string    `bson:"scheme_title,omitempty" json:"schemeTitle,omitempty"`
	ApplicantName string    `bson:"applicant_name" json:"applicantName"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       string    `bson:"address,omitempty" json:"address,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// ApplicationRequest is the submission payload.
type ApplicationRequest struct {
	SchemeID      string `json:"schemeId" binding:"required"`
	ApplicantName string `json:"applicantName" binding:"required,min=2,max=100"`
	Email         string `json:"email,omitempty" binding:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
}

// UploadedDocument describes one supporting document stored in GridFS for
// an application.
type UploadedDocument struct {
	ApplicationID string    `json:"applicationId"`
	DocumentType  string    `json:"documentType"`
	FileName      string    `json:"fileName"`
	Size          int64     `json:"size"`
	UploadedAt    time.Time `json:"uploadedAt"`
}
