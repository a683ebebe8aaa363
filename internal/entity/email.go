package entity

import (
	"context"
	"errors"
)

// EmailType is the discriminator value of e-mail documents in the storage collection.
const EmailType = "email"

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("not found")

// Document is a schemaless record of the storage collection.
type Document map[string]any

// EmailUpdate holds the subset of e-mail fields a caller is allowed to change.
type EmailUpdate map[string]any

var emailMutableFields = []string{"read", "starred", "archived", "status"}

// NewEmailUpdate keeps only the whitelisted keys of raw. Keys are checked for
// presence, so false and "" values are kept.
func NewEmailUpdate(raw map[string]any) EmailUpdate {
	update := EmailUpdate{}
	for _, field := range emailMutableFields {
		if v, ok := raw[field]; ok {
			update[field] = v
		}
	}
	return update
}

func (u EmailUpdate) Empty() bool {
	return len(u) == 0
}

type BulkUpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type EmailRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (Document, error)
	Update(ctx context.Context, id string, update EmailUpdate) error
	Delete(ctx context.Context, id string) error
	BulkUpdate(ctx context.Context, ids []string, update EmailUpdate) (BulkUpdateResult, error)
}
