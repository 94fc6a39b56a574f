package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ランディングページの静的カタログ。読み取り専用なのでロック不要。
type ProductMemRepository struct {
	products []model.Product
}

func NewProductMemRepository() *ProductMemRepository {
	return &ProductMemRepository{products: seedProducts()}
}

func (r *ProductMemRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductMemRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

// ページの商品カード相当
func seedProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Lavender Dream Candle", Price: 12.50, Category: "candles", Moods: []string{"calm", "cozy"}},
		{ID: "p2", Name: "Chamomile Comfort Tea", Price: 8.00, Category: "teas", Moods: []string{"calm", "tired"}},
		{ID: "p3", Name: "Cloud Soft Blanket", Price: 34.00, Category: "blankets", Moods: []string{"cozy", "tired"}},
		{ID: "p4", Name: "Quiet Moments Journal", Price: 15.25, Category: "books", Moods: []string{"creative", "overwhelmed"}},
		{ID: "p5", Name: "Vanilla Hug Candle", Price: 11.00, Category: "candles", Moods: []string{"cozy"}},
		{ID: "p6", Name: "Peppermint Reset Tea", Price: 9.50, Category: "teas", Moods: []string{"overwhelmed", "tired"}},
		{ID: "p7", Name: "Gentle Poetry Collection", Price: 18.75, Category: "books", Moods: []string{"calm", "creative"}},
		{ID: "p8", Name: "Weighted Calm Blanket", Price: 49.90, Category: "blankets", Moods: []string{"overwhelmed", "calm"}},
	}
}
