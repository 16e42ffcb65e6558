package models

import "time"

// Document describes an uploaded file. The bytes live in object storage
// under StorageKey; this record is the metadata kept in the database.
type Document struct {
	ID          string
	OwnerID     string
	FileName    string
	Title       string
	ContentType string
	Size        int64
	StorageKey  string
	// Version is bumped on every metadata update and used for optimistic
	// concurrency.
	Version   int64
	CreatedAt time.Time
}
