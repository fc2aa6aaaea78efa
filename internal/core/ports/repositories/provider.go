package repositories

// RepositoryProvider bundles the concrete repositories for injection into
// the service layer.
type RepositoryProvider struct {
	UserRepo    UserRepositoryFacade
	CompanyRepo CompanyRepositoryFacade
	WalletRepo  WalletRepositoryFacade
	BookingRepo BookingRepositoryFacade
	CatalogRepo CatalogRepository
}
