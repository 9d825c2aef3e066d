package ports

import "context"

// GenerationTrigger starts the host's generation action
type GenerationTrigger interface {
	Trigger(ctx context.Context) error
}
