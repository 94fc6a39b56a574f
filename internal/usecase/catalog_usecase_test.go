package usecase_test

import (
	"context"
	"strings"
	"testing"

	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func newCatalogUC() *usecase.CatalogUsecase {
	return usecase.NewCatalogUsecase(infraRepo.NewProductMemRepository())
}

// Test: mood/categoryの絞り込み。空と"all"は全件、未知の値は0件
func TestCatalogUsecase_ListProducts(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUC()

	cases := []struct {
		name string
		in   usecase.ListProductsInput
		ids  []string
	}{
		{"no filter", usecase.ListProductsInput{}, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}},
		{"all all", usecase.ListProductsInput{Mood: "all", Category: "all"}, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}},
		{"mood calm", usecase.ListProductsInput{Mood: "calm"}, []string{"p1", "p2", "p7", "p8"}},
		{"category candles", usecase.ListProductsInput{Category: "candles"}, []string{"p1", "p5"}},
		{"mood and category", usecase.ListProductsInput{Mood: "cozy", Category: "blankets"}, []string{"p3"}},
		{"unknown mood", usecase.ListProductsInput{Mood: "sleepy"}, []string{}},
		{"unknown category", usecase.ListProductsInput{Category: "plants"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.ListProducts(ctx, tc.in)
			assert.NoError(t, err)
			assert.Equal(t, int64(len(tc.ids)), out.Total)

			ids := make([]string, 0, len(out.Items))
			for _, p := range out.Items {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.ids, ids)
		})
	}
}

// Test: 長すぎるフィルタ値は400
func TestCatalogUsecase_ListProducts_FilterTooLong(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUC()

	_, err := uc.ListProducts(ctx, usecase.ListProductsInput{Mood: strings.Repeat("a", 51)})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)

	_, err = uc.ListProducts(ctx, usecase.ListProductsInput{Category: strings.Repeat("a", 51)})
	assert.Error(t, err)
}

// Test: 商品詳細
func TestCatalogUsecase_GetProductDetail(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUC()

	p, err := uc.GetProductDetail(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Lavender Dream Candle", p.Name)
	assert.InDelta(t, 12.50, p.Price, 1e-9)

	_, err = uc.GetProductDetail(ctx, "p99")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)

	_, err = uc.GetProductDetail(ctx, "")
	he, ok = usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}
