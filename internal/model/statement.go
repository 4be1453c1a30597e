package model

import "time"

// StatementExport records a rendered account statement stored in object storage.
type StatementExport struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
