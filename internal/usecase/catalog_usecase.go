package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CatalogUsecase は /products の業務ロジック。
// 絞り込みは元ページのクライアント側フィルタと同じ意味にする。
type CatalogUsecase struct {
	products repo.ProductRepository
}

// DI
func NewCatalogUsecase(products repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products}
}

type ListProductsInput struct {
	Mood     string
	Category string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
}

// 商品一覧。mood/categoryが空か"all"なら絞り込み無し。
// 未知の値はエラーにしない（何もマッチしないだけ、元ページと同じ）。
func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	mood := strings.TrimSpace(in.Mood)
	category := strings.TrimSpace(in.Category)

	if len(mood) > 50 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid mood")
	}
	if len(category) > 50 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	all, err := u.products.ListAll(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	items := make([]model.Product, 0, len(all))
	for _, p := range all {
		if mood != "" && mood != "all" && !p.HasMood(mood) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		items = append(items, p)
	}

	return ProductListOutput{Items: items, Total: int64(len(items))}, nil
}

func (u *CatalogUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return p, nil
}
