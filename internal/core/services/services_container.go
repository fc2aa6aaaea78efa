package services

import (
	"github.com/tripvault/tripvault/internal/cache"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/events"
	"github.com/tripvault/tripvault/pkg/config"
)

// NewServiceContainer wires the repositories into the service facades.
// catalogCache and producer may be nil when Redis or Kafka is not configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, catalogCache *cache.CatalogCache, producer *events.Producer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(repos.UserRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Wallet = NewWalletService(repos.WalletRepo)
	container.Booking = NewBookingService(repos.BookingRepo, repos.UserRepo, producer)
	container.Catalog = NewCatalogService(repos.CatalogRepo, catalogCache)

	return container
}
