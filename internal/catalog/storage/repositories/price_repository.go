package repositories

import (
	"database/sql"
	"fmt"

	"catalogsync_api/internal/catalog/business/models"
)

type PriceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

func (r *PriceRepository) DeleteAll() error {
	if _, err := r.db.Exec(`DELETE FROM catalog.prices`); err != nil {
		return fmt.Errorf("failed to clear prices: %w", err)
	}
	return nil
}

func (r *PriceRepository) Insert(price models.Price) error {
	metadata, err := marshalMetadata(price.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal price metadata: %w", err)
	}

	query := `
		INSERT INTO catalog.prices
			(id, billing_scheme, created, currency, custom_unit_amount, livemode,
			 lookup_key, metadata, nickname, product_id, recurring, tiers_mode,
			 type, unit_amount, unit_amount_decimal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = r.db.Exec(query,
		price.ID, price.BillingScheme, price.Created, price.Currency,
		price.CustomUnitAmount, price.Livemode, price.LookupKey, metadata,
		price.Nickname, price.ProductID, price.Recurring, price.TiersMode,
		price.Type, price.UnitAmount, price.UnitAmountDecimal,
	)
	if err != nil {
		return fmt.Errorf("failed to insert price %s: %w", price.ID, err)
	}
	return nil
}

func (r *PriceRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM catalog.prices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count prices: %w", err)
	}
	return count, nil
}
