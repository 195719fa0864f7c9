// Package hamdb provides callsign lookups against the HamDB service. The
// API client lives in the v1 package; this package builds DI-wired providers.
package hamdb

import (
	"context"

	"github.com/Station-Manager/config"
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/hamdb/v1"
	"github.com/Station-Manager/logging"
)

// APIVersion1 selects the HamDB v1 client.
const APIVersion1 = "v1"

// Provider defines the behavior a HamDB lookup provider must implement.
type Provider interface {
	Initialize() error
	Lookup(callsign string) (v1.CallsignLookup, error)
	LookupWithContext(ctx context.Context, callsign string) (v1.CallsignLookup, error)
}

var _ Provider = (*v1.Client)(nil)

// ServiceFactory creates lookup providers by API version.
type ServiceFactory struct {
	logger *logging.Service
	config *config.Service
}

// NewServiceFactory returns a factory whose HamDB clients share logger and
// read their "hamdb" lookup entry from cfg.
func NewServiceFactory(logger *logging.Service, cfg *config.Service) *ServiceFactory {
	return &ServiceFactory{logger: logger, config: cfg}
}

// NewProvider creates an uninitialized provider for the given API version.
// Callers must call Initialize before the first lookup.
func (f *ServiceFactory) NewProvider(version string) (Provider, error) {
	switch version {
	case APIVersion1:
		return &v1.Client{LoggerService: f.logger, ConfigService: f.config}, nil
	default:
		return nil, errors.New("hamdb.ServiceFactory.NewProvider").Msgf("unsupported HamDB API version %q", version)
	}
}

// MustProvider is NewProvider for API versions known at compile time; it
// panics on an unsupported version.
func (f *ServiceFactory) MustProvider(version string) Provider {
	p, err := f.NewProvider(version)
	if err != nil {
		panic(err)
	}
	return p
}
