package primary

import "context"

// StampService renders the transient single-line status string for a clan.
// Stamps are recomputed on every request and never persisted.
type StampService interface {
	// GenerateStamp renders the stamp for a clan, or the fixed sentinel stamp
	// when the clan does not exist.
	GenerateStamp(ctx context.Context, projectID, clanID string) (string, error)
}
