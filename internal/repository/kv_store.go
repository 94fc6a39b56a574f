package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Setが容量制限を超えたとき。
var ErrQuotaExceeded = errors.New("quota exceeded")

// ブラウザのorigin単位key-valueストレージに相当する永続ストア。
// 信頼できない前提で扱う：Getの中身は必ず検証し、Setの失敗で処理を止めない。
type KVStore interface {
	//キーが無ければ ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	//容量超過は ErrQuotaExceeded
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
