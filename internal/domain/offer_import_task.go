package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	StatusQueued     ImportTaskStatus = "queued"
	StatusProcessing ImportTaskStatus = "processing"
	StatusCompleted  ImportTaskStatus = "completed"
	StatusFailed     ImportTaskStatus = "failed"
)

type OfferImportTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status        ImportTaskStatus   `bson:"status" json:"status"`
	SpreadsheetID string             `bson:"spreadsheet_id" json:"spreadsheet_id"`
	CookID        primitive.ObjectID `bson:"cook_id" json:"cook_id"`
	ImportedCount int                `bson:"imported_count" json:"imported_count"`
	RowErrors     []ImportRowError   `bson:"row_errors,omitempty" json:"row_errors,omitempty"`
	ErrorMessage  string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount    int                `bson:"retry_count" json:"retry_count"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// ImportRowError is a sheet row that was skipped. Row is 1-based as shown in the sheet.
type ImportRowError struct {
	Row     int    `bson:"row" json:"row"`
	Message string `bson:"message" json:"message"`
}
