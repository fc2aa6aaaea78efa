package services

// ServiceContainer holds the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Auth    AuthSvcFacade
	User    UserSvcFacade
	Company CompanySvcFacade
	Wallet  WalletSvcFacade
	Booking BookingSvcFacade
	Catalog CatalogSvcFacade
}
