package entity

import "time"

// Image is the metadata record for a product attachment kept in the
// object store under StorageKey. UserID is the uploading account.
type Image struct {
	ID          int64
	ProductID   int64
	UserID      int64
	FileName    string
	ContentType string
	FileSize    int64
	StorageKey  string
	DateCreated time.Time
}
