package usecase

import (
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/registry"
)

// DefaultBrokerPort is used when a broker is registered without a port
const DefaultBrokerPort = 1883

type RegistryUC struct {
	registryRepo registry.RegistryRepo
	cfg          *models.Config
	clock        models.Clock
	newID        func() string
}

// NewRegistryUC creates a new registry usecase instance
func NewRegistryUC(
	registryRepo registry.RegistryRepo,
	cfg *models.Config,
) *RegistryUC {
	if cfg == nil {
		cfg = &models.Config{}
	}
	return &RegistryUC{
		registryRepo: registryRepo,
		cfg:          cfg,
		clock:        models.SystemClock{},
		newID:        newUUID,
	}
}
