package out

import (
	"context"

	"tvp/internal/modules/plugin/domain"
)

// ManifestStore lists installed plugin manifests.
type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Host runs plugin binaries and speaks the plugin wire contract.
type Host interface {
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	ListCommands(ctx context.Context, manifest domain.Manifest) ([]domain.CommandDescriptor, error)
	Execute(ctx context.Context, manifest domain.Manifest, request domain.ExecuteRequest) (domain.ExecuteResult, error)
}
