package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"catalogsync_api/internal/catalog/business/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) DeleteAll() error {
	if _, err := r.db.Exec(`DELETE FROM catalog.products`); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	return nil
}

func (r *ProductRepository) Insert(product models.Product) error {
	metadata, err := marshalMetadata(product.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal product metadata: %w", err)
	}

	query := `
		INSERT INTO catalog.products
			(id, description, features, image, metadata, name, unit_label, created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.db.Exec(query,
		product.ID, product.Description, pq.Array(product.Features), product.Image,
		metadata, product.Name, product.UnitLabel, product.Created,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product %s: %w", product.ID, err)
	}
	return nil
}

// marshalMetadata keeps an absent metadata map as the empty JSON object
// rather than the JSON null a nil map would marshal to.
func marshalMetadata(metadata map[string]string) (string, error) {
	if metadata == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *ProductRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM catalog.products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
