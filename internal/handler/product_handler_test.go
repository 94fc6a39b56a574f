package handler_test

import (
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// Test: 商品一覧とクエリによる絞り込み
func TestProductHandler_List(t *testing.T) {
	e := newTestEcho(t)

	rec := doReq(t, e, http.MethodGet, "/products", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeJSON[usecase.ProductListOutput](t, rec)
	assert.Equal(t, int64(8), out.Total)

	rec = doReq(t, e, http.MethodGet, "/products?mood=calm&category=teas", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out = decodeJSON[usecase.ProductListOutput](t, rec)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, "p2", out.Items[0].ID)
}

// Test: 商品詳細と404
func TestProductHandler_Detail(t *testing.T) {
	e := newTestEcho(t)

	rec := doReq(t, e, http.MethodGet, "/products/p3", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	p := decodeJSON[model.Product](t, rec)
	assert.Equal(t, "Cloud Soft Blanket", p.Name)
	assert.Equal(t, "blankets", p.Category)

	rec = doReq(t, e, http.MethodGet, "/products/p99", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeJSON[handler.ErrorResponse](t, rec)
	assert.Equal(t, "not found", body.Error)
}
