package usecase

import (
	"context"
	"sync"

	repo "app/internal/repository"

	"github.com/rs/zerolog"
)

// セッションごとのCartStoreを管理する。
// 1セッション＝元ページの1ブラウジングコンテキスト。
type CartSessions struct {
	mu      sync.Mutex
	stores  map[string]*CartStore
	kv      repo.KVStore
	display DisplayPort
	log     zerolog.Logger
}

// DI
func NewCartSessions(kv repo.KVStore, display DisplayPort, log zerolog.Logger) *CartSessions {
	return &CartSessions{
		stores:  map[string]*CartStore{},
		kv:      kv,
		display: display,
		log:     log,
	}
}

// セッションのCartStoreを返す。初回は生成してスナップショットを読み込む。
func (r *CartSessions) Store(ctx context.Context, sessionID string) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores[sessionID]
	if !ok {
		s = NewCartStore(sessionID, r.kv, r.display, r.log)
		s.Initialize(ctx)
		r.stores[sessionID] = s
	}
	return s
}
