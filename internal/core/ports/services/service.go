package services

// ServiceContainer holds instances of all the application services.
// It is built once by the composition root and handed to the handlers.
type ServiceContainer struct {
	Currency  CurrencySvcFacade
	Ingestion IngestionSvc
	Chart     ChartSvc
}
