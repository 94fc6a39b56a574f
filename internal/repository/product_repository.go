package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	//無ければ ErrNotFound
	FindByID(ctx context.Context, productID string) (model.Product, error)
}
