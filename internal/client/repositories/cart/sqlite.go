package cart

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) (models.Cart, error) {
	query := `SELECT product_id, quantity, price, title, image_url, category, vendor_id
		FROM cart_items ORDER BY added_at, product_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}
	defer rows.Close()

	var result models.Cart
	for rows.Next() {
		var item models.CartItem
		err := rows.Scan(&item.ProductID, &item.Quantity, &item.PriceSnapshot,
			&item.Title, &item.ImageURL, &item.Category, &item.VendorID)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, items models.Cart) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
			return fmt.Errorf("failed to clear cart items: %w", err)
		}
		query := `INSERT INTO cart_items (product_id, quantity, price, title, image_url, category, vendor_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		for _, item := range items {
			_, err := tx.ExecContext(ctx, query, item.ProductID, item.Quantity,
				item.PriceSnapshot, item.Title, item.ImageURL, item.Category, item.VendorID)
			if err != nil {
				return fmt.Errorf("failed to insert cart item: %w", err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}
	return nil
}
