package activity

import "context"

// Recorder appends to the activity trail on a best-effort basis. Record never
// returns an error: the trail is observability, and a broken log writer must
// not fail the business operation it annotates.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}
