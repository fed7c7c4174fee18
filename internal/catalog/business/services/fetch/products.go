package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/product"
	"golang.org/x/time/rate"

	"catalogsync_api/internal/catalog/business/models"
	"catalogsync_api/pkg/logger"
)

// ProductFetcher retrieves the first page of active products from the
// provider catalog.
type ProductFetcher struct {
	limiter  *rate.Limiter
	pageSize int64
	log      logger.Logger
}

func NewProductFetcher(limiter *rate.Limiter, pageSize int64, writer io.Writer) *ProductFetcher {
	return &ProductFetcher{
		limiter:  limiter,
		pageSize: pageSize,
		log:      logger.NewLogger(writer, "[ProductFetcher]"),
	}
}

func (f *ProductFetcher) FetchActiveProducts(ctx context.Context) ([]models.Product, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	params := &stripe.ProductListParams{
		ListParams: stripe.ListParams{
			Context: ctx,
			Limit:   stripe.Int64(f.pageSize),
		},
		Active: stripe.Bool(true),
	}

	products := make([]models.Product, 0, f.pageSize)
	iter := product.List(params)
	for iter.Next() {
		products = append(products, models.ProductFromStripe(iter.Product()))
		// first page only; the iterator would otherwise keep paginating
		if int64(len(products)) >= f.pageSize {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing active products: %w", err)
	}

	f.log.Log("fetched %d active products", len(products))
	return products, nil
}
