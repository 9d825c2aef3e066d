package application

import (
	"context"
	"errors"

	"promptbuilder/internal/domain"
	"promptbuilder/internal/ports"
)

// Channels publishes every snapshot to each of its channels in order
type Channels []ports.SnapshotChannel

// Publish delivers to every channel, joining the failures
func (c Channels) Publish(ctx context.Context, snapshot domain.Snapshot) error {
	var errs []error
	for _, ch := range c {
		if ch == nil {
			continue
		}
		if err := ch.Publish(ctx, snapshot.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
