package dto

import (
	"time"

	"github.com/hisabapp/hisab/internal/store"
)

// CollectionResponse is the uniform read surface exposed per entity type:
// the entities plus the store's loading/error/freshness metadata.
type CollectionResponse[T any] struct {
	Entities    []T        `json:"entities"`
	IsLoading   bool       `json:"isLoading"`
	IsError     bool       `json:"isError"`
	LastFetched *time.Time `json:"lastFetched,omitempty"`
}

// NewCollectionResponse wraps entities with the store metadata.
func NewCollectionResponse[T any](entities []T, meta store.Meta) CollectionResponse[T] {
	resp := CollectionResponse[T]{
		Entities:  entities,
		IsLoading: meta.IsLoading,
		IsError:   meta.IsError,
	}
	if entities == nil {
		resp.Entities = []T{}
	}
	if !meta.LastFetched.IsZero() {
		t := meta.LastFetched
		resp.LastFetched = &t
	}
	return resp
}
