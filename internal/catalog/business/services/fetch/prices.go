package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/price"
	"golang.org/x/time/rate"

	"catalogsync_api/internal/catalog/business/models"
	"catalogsync_api/pkg/logger"
)

// PriceFetcher retrieves the first page of active prices from the
// provider catalog.
type PriceFetcher struct {
	limiter  *rate.Limiter
	pageSize int64
	log      logger.Logger
}

func NewPriceFetcher(limiter *rate.Limiter, pageSize int64, writer io.Writer) *PriceFetcher {
	return &PriceFetcher{
		limiter:  limiter,
		pageSize: pageSize,
		log:      logger.NewLogger(writer, "[PriceFetcher]"),
	}
}

func (f *PriceFetcher) FetchActivePrices(ctx context.Context) ([]models.Price, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	params := &stripe.PriceListParams{
		ListParams: stripe.ListParams{
			Context: ctx,
			Limit:   stripe.Int64(f.pageSize),
		},
		Active: stripe.Bool(true),
	}

	prices := make([]models.Price, 0, f.pageSize)
	iter := price.List(params)
	for iter.Next() {
		prices = append(prices, models.PriceFromStripe(iter.Price()))
		// first page only; the iterator would otherwise keep paginating
		if int64(len(prices)) >= f.pageSize {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing active prices: %w", err)
	}

	f.log.Log("fetched %d active prices", len(prices))
	return prices, nil
}
