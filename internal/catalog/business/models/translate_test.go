package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"

	"catalogsync_api/internal/catalog/business/models"
)

func TestProductFromStripe(t *testing.T) {
	t.Parallel()

	t.Run("minimal product gets empty defaults", func(t *testing.T) {
		t.Parallel()

		got := models.ProductFromStripe(&stripe.Product{
			ID:      "prod_1",
			Name:    "Pro",
			Created: 1700000000,
		})

		assert.Equal(t, "prod_1", got.ID)
		assert.Equal(t, "Pro", got.Name)
		assert.Equal(t, "", got.Description)
		assert.Equal(t, "", got.Image)
		assert.Empty(t, got.Features)
		assert.Equal(t, time.UnixMilli(1700000000000), got.Created)
	})

	t.Run("keeps only feature names and first image", func(t *testing.T) {
		t.Parallel()

		got := models.ProductFromStripe(&stripe.Product{
			ID: "prod_2",
			MarketingFeatures: []*stripe.ProductMarketingFeature{
				{Name: "unlimited seats"},
				nil,
				{Name: "sso"},
			},
			Images:   []string{"https://img.example/a.png", "https://img.example/b.png"},
			Metadata: map[string]string{"tier": "pro"},
		})

		assert.Equal(t, []string{"unlimited seats", "sso"}, got.Features)
		assert.Equal(t, "https://img.example/a.png", got.Image)
		assert.Equal(t, map[string]string{"tier": "pro"}, got.Metadata)
	})
}

func TestPriceFromStripe(t *testing.T) {
	t.Parallel()

	t.Run("unit amount kept as string, tiers mode never null", func(t *testing.T) {
		t.Parallel()

		got := models.PriceFromStripe(&stripe.Price{
			ID:                "price_1",
			BillingScheme:     stripe.PriceBillingSchemePerUnit,
			Created:           1700000000,
			Currency:          stripe.CurrencyUSD,
			Livemode:          false,
			Product:           &stripe.Product{ID: "prod_1"},
			Type:              stripe.PriceTypeOneTime,
			UnitAmount:        1000,
			UnitAmountDecimal: 1000,
		})

		assert.Equal(t, "price_1", got.ID)
		assert.Equal(t, "per_unit", got.BillingScheme)
		assert.Equal(t, time.UnixMilli(1700000000000), got.Created)
		assert.Equal(t, "USD", got.Currency)
		assert.Equal(t, "prod_1", got.ProductID)
		assert.False(t, got.Livemode)
		assert.True(t, got.UnitAmount.Valid)
		assert.Equal(t, "1000", got.UnitAmount.String)
		assert.Equal(t, "1000", got.UnitAmountDecimal)
		assert.Equal(t, "", got.TiersMode)
		assert.False(t, got.CustomUnitAmount.Valid)
		assert.False(t, got.Recurring.Valid)
	})

	t.Run("absent unit amount stays null", func(t *testing.T) {
		t.Parallel()

		got := models.PriceFromStripe(&stripe.Price{
			ID:            "price_2",
			BillingScheme: stripe.PriceBillingSchemeTiered,
			TiersMode:     stripe.PriceTiersModeGraduated,
		})

		assert.False(t, got.UnitAmount.Valid)
		assert.Equal(t, "", got.UnitAmountDecimal)
		assert.Equal(t, "graduated", got.TiersMode)
	})

	t.Run("zero amount is treated as absent", func(t *testing.T) {
		t.Parallel()

		got := models.PriceFromStripe(&stripe.Price{
			ID:                "price_5",
			UnitAmount:        0,
			UnitAmountDecimal: 0,
		})

		assert.False(t, got.UnitAmount.Valid)
	})

	t.Run("custom unit amount and recurring carried when present", func(t *testing.T) {
		t.Parallel()

		got := models.PriceFromStripe(&stripe.Price{
			ID:               "price_3",
			CustomUnitAmount: &stripe.PriceCustomUnitAmount{Preset: 500},
			Recurring: &stripe.PriceRecurring{
				Interval:      stripe.PriceRecurringIntervalMonth,
				IntervalCount: 1,
			},
		})

		assert.True(t, got.CustomUnitAmount.Valid)
		assert.Equal(t, "500", got.CustomUnitAmount.String)
		assert.True(t, got.Recurring.Valid)
		assert.Contains(t, got.Recurring.String, `"interval":"month"`)
	})

	t.Run("unknown currency passes through untouched", func(t *testing.T) {
		t.Parallel()

		got := models.PriceFromStripe(&stripe.Price{
			ID:       "price_4",
			Currency: "wat",
		})

		assert.Equal(t, "wat", got.Currency)
	})
}
