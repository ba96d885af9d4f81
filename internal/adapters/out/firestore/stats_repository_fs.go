// internal/adapters/out/firestore/stats_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
)

const (
	defaultStatsCollection = "stats"
	countersDocID          = "counters"
)

// StatsRepositoryFS holds site counters under stats/counters.
type StatsRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewStatsRepositoryFS(client *firestore.Client) *StatsRepositoryFS {
	return &StatsRepositoryFS{Client: client, Collection: defaultStatsCollection}
}

func (r *StatsRepositoryFS) doc() *firestore.DocumentRef {
	name := strings.TrimSpace(r.Collection)
	if name == "" {
		name = defaultStatsCollection
	}
	return r.Client.Collection(name).Doc(countersDocID)
}

// IncrementTotalVisitors applies one atomic +1 to total_visitors.
// MergeAll creates the counters doc on first use and leaves sibling counters
// untouched.
func (r *StatsRepositoryFS) IncrementTotalVisitors(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("stats_repository_fs: firestore client is nil")
	}

	_, err := r.doc().Set(ctx, map[string]any{
		"total_visitors": firestore.Increment(1),
	}, firestore.MergeAll)
	return err
}
