package ports

import (
	"context"

	"promptbuilder/internal/domain"
)

// SnapshotChannel broadcasts state snapshots to mirrored widgets
type SnapshotChannel interface {
	// Publish sends the snapshot. Delivery is best effort.
	Publish(ctx context.Context, snapshot domain.Snapshot) error
}
