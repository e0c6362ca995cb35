package entity

import (
	"time"

	"github.com/google/uuid"
)

// File points at an uploaded binary held in blob storage.
type File struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StoredObject describes a blob written by the upload endpoint.
type StoredObject struct {
	FieldName    string `json:"fieldname"`
	OriginalName string `json:"originalname"`
	MimeType     string `json:"mimetype"`
	FileName     string `json:"filename"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
}
