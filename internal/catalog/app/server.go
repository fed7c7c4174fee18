package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"golang.org/x/time/rate"

	"catalogsync_api/config"
	"catalogsync_api/internal/catalog/business/models"
	"catalogsync_api/internal/catalog/business/services/fetch"
	"catalogsync_api/internal/catalog/storage/repositories"
	"catalogsync_api/metrics"
	catalogmigrations "catalogsync_api/migrations/catalog"
	"catalogsync_api/migrations/infrastructure"
	"catalogsync_api/pkg/dbconnect"
	"catalogsync_api/pkg/dbconnect/migration"
	"catalogsync_api/pkg/logger"
)

const requestsPerSecond = 5

type ProductSource interface {
	FetchActiveProducts(ctx context.Context) ([]models.Product, error)
}

type PriceSource interface {
	FetchActivePrices(ctx context.Context) ([]models.Price, error)
}

type ProductStore interface {
	DeleteAll() error
	Insert(product models.Product) error
	Count() (int, error)
}

type PriceStore interface {
	DeleteAll() error
	Insert(price models.Price) error
	Count() (int, error)
}

// SyncServer runs one full catalog sync: wipe both destination tables and
// reload them from the provider's active products and prices.
type SyncServer struct {
	dbconnect.Database
	config.StripeConfig
	metrics *metrics.SyncMetrics
	log     logger.Logger
	writer  io.Writer
}

func NewSyncServer(connector dbconnect.Database, stripeConfig config.StripeConfig, writer io.Writer) *SyncServer {
	runID := uuid.NewString()[:8]
	_log := logger.NewLogger(writer, fmt.Sprintf("[CatalogSync %s]", runID))
	return &SyncServer{
		Database:     connector,
		StripeConfig: stripeConfig,
		metrics:      metrics.NewSyncMetrics(),
		log:          _log,
		writer:       writer,
	}
}

func (s *SyncServer) Run(ctx context.Context) error {
	if s.ApiKey == "" {
		return fmt.Errorf("stripe api key is not set (STRIPE_API_KEY)")
	}
	stripe.Key = s.ApiKey

	s.log.Log("starting catalog sync")

	db, err := s.Connect()
	if err != nil {
		return fmt.Errorf("connecting to destination store: %w", err)
	}
	defer db.Close()

	migrationApply := []migration.MigrationInterface{
		&infrastructure.MigrationsSchema{},
		&catalogmigrations.CreateCatalogSchema{},
		&catalogmigrations.CreateProductsTable{},
		&catalogmigrations.CreatePricesTable{},
	}
	for _, _migration := range migrationApply {
		if err := _migration.UpMigration(db); err != nil {
			return fmt.Errorf("applying catalog migrations: %w", err)
		}
	}

	limiter := rate.NewLimiter(requestsPerSecond, 1)
	productCount, priceCount, err := s.sync(ctx,
		fetch.NewProductFetcher(limiter, s.PageSize, s.writer),
		fetch.NewPriceFetcher(limiter, s.PageSize, s.writer),
		repositories.NewProductRepository(db),
		repositories.NewPriceRepository(db),
	)
	if err != nil {
		return err
	}

	s.log.Log("catalog sync finished: %d products, %d prices", productCount, priceCount)
	return nil
}

func (s *SyncServer) sync(
	ctx context.Context,
	productSource ProductSource,
	priceSource PriceSource,
	productStore ProductStore,
	priceStore PriceStore,
) (int, int, error) {
	var (
		products   []models.Product
		prices     []models.Price
		productErr error
		priceErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		products, productErr = productSource.FetchActiveProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		prices, priceErr = priceSource.FetchActivePrices(ctx)
	}()
	wg.Wait()

	if productErr != nil {
		return 0, 0, fmt.Errorf("fetching products: %w", productErr)
	}
	if priceErr != nil {
		return 0, 0, fmt.Errorf("fetching prices: %w", priceErr)
	}

	// prices are checked first: an all-empty catalog is reported as a
	// price failure
	if len(prices) == 0 {
		return 0, 0, fmt.Errorf("no active prices fetched, aborting sync")
	}
	if len(products) == 0 {
		return 0, 0, fmt.Errorf("no active products fetched, aborting sync")
	}

	if err := priceStore.DeleteAll(); err != nil {
		return 0, 0, fmt.Errorf("clearing prices: %w", err)
	}
	if err := productStore.DeleteAll(); err != nil {
		return 0, 0, fmt.Errorf("clearing products: %w", err)
	}

	// products go in before prices so every price references a product
	// from this run
	for _, product := range products {
		s.metrics.ProcessedProducts.Add(1)
		if err := productStore.Insert(product); err != nil {
			s.metrics.ErroredProducts.Add(1)
			s.log.Log("skipping product %s: %v", product.ID, err)
			continue
		}
		s.metrics.InsertedProducts.Add(1)
	}

	for _, price := range prices {
		s.metrics.ProcessedPrices.Add(1)
		if err := priceStore.Insert(price); err != nil {
			s.metrics.ErroredPrices.Add(1)
			s.log.Log("skipping price %s: %v", price.ID, err)
			continue
		}
		s.metrics.InsertedPrices.Add(1)
	}

	if errored := s.metrics.ErroredProducts.Load() + s.metrics.ErroredPrices.Load(); errored > 0 {
		s.log.Log("skipped %d records with insert errors", errored)
	}

	productCount, err := productStore.Count()
	if err != nil {
		return 0, 0, fmt.Errorf("counting products: %w", err)
	}
	priceCount, err := priceStore.Count()
	if err != nil {
		return 0, 0, fmt.Errorf("counting prices: %w", err)
	}

	return productCount, priceCount, nil
}

func (s *SyncServer) Metrics() *metrics.SyncMetrics {
	return s.metrics
}
