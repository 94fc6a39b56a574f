package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/rs/zerolog"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 永続化キーの接頭辞。セッションごとに1スロット（localStorageのorigin単位に相当）。
const cartKeyPrefix = "gentleSoulsCart"

// カートの現在状態を受け取る表示側。描画方法はこちらでは関知しない。
type DisplayPort interface {
	Refresh(sessionID string, items []model.LineItem, totalItems int64, grandTotal float64)
}

// CartStore は1セッション分のカートの正となる状態を持つ。
// メモリ上のitemsが常に正。永続化は耐久性のためのベストエフォートで、
// 失敗しても操作は成功する。
type CartStore struct {
	mu        sync.Mutex
	items     []model.LineItem
	sessionID string
	key       string

	kv      repo.KVStore
	display DisplayPort
	log     zerolog.Logger
}

// DI
func NewCartStore(sessionID string, kv repo.KVStore, display DisplayPort, log zerolog.Logger) *CartStore {
	return &CartStore{
		sessionID: sessionID,
		key:       cartKeyPrefix + ":" + sessionID,
		kv:        kv,
		display:   display,
		log:       log,
	}
}

// markup属性由来の未検証入力。Priceは文字列のまま受けてここで変換する。
type AddItemInput struct {
	ID       string
	Name     string
	Price    string
	Quantity int64
}

type CartOutput struct {
	Items      []model.LineItem `json:"items"`
	TotalItems int64            `json:"total_items"`
	GrandTotal float64          `json:"grand_total"`
	Notice     string           `json:"notice,omitempty"`
}

// 永続化済みスナップショットを読み込む。
// 壊れていた場合はスロットを消して空で始める。部分的な取り込みはしない。
func (s *CartStore) Initialize(ctx context.Context) {
	s.mu.Lock()

	raw, err := s.kv.Get(ctx, s.key)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		//初回。空のまま
	case err != nil:
		//読めないストアは「データ無し」と同じ扱い
		s.log.Error().Err(err).Str("key", s.key).Msg("cart load failed")
	default:
		var items []model.LineItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			//壊れたスロットは消して次回の読込で再発させない
			s.log.Warn().Err(err).Str("key", s.key).Msg("corrupt cart snapshot discarded")
			if err := s.kv.Remove(ctx, s.key); err != nil {
				s.log.Error().Err(err).Str("key", s.key).Msg("corrupt cart remove failed")
			}
		} else {
			//配列として読めたら全置換。明細単位の値検証はしない
			s.items = items
		}
	}

	items, totalItems, grandTotal := s.snapshotLocked()
	s.mu.Unlock()

	s.display.Refresh(s.sessionID, items, totalItems, grandTotal)
}

// カートに追加（同一IDは数量+1、新規は末尾に追加）。
func (s *CartStore) AddItem(ctx context.Context, in AddItemInput) (CartOutput, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	//in.Quantityは受け取るが使わない。追加は常に+1（元ページの挙動を維持）

	s.mu.Lock()

	merged := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, model.LineItem{ID: id, Name: name, Price: price, Quantity: 1})
	}

	//永続化失敗してもメモリ上の変更は残す
	s.persistLocked(ctx)

	items, totalItems, grandTotal := s.snapshotLocked()
	s.mu.Unlock()

	s.display.Refresh(s.sessionID, items, totalItems, grandTotal)

	return CartOutput{
		Items:      items,
		TotalItems: totalItems,
		GrandTotal: grandTotal,
		Notice:     "Added " + name + " to your comfort cart",
	}, nil
}

// カート取得（表示更新はしない）。
func (s *CartStore) GetCart(ctx context.Context) CartOutput {
	s.mu.Lock()
	items, totalItems, grandTotal := s.snapshotLocked()
	s.mu.Unlock()

	return CartOutput{Items: items, TotalItems: totalItems, GrandTotal: grandTotal}
}

// チェックアウトは注文処理をしない。メッセージだけ返す（元ページと同じ）。
func (s *CartStore) Checkout(ctx context.Context) CartOutput {
	out := s.GetCart(ctx)

	if len(out.Items) == 0 {
		out.Notice = "Your cart is empty. Add some comfort items first"
		return out
	}

	out.Notice = "Thank you for your order! We'll process it with care"
	return out
}

// スナップショットを書き込む。失敗はログのみ（リトライ無し）。
func (s *CartStore) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("cart encode failed")
		return
	}

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("cart persist failed")
	}
}

func (s *CartStore) snapshotLocked() ([]model.LineItem, int64, float64) {
	items := make([]model.LineItem, len(s.items))
	copy(items, s.items)

	totalItems, grandTotal := Aggregates(items)
	return items, totalItems, grandTotal
}

// 集計はitemsの純粋関数。合計時に丸めない（丸めは表示境界で行う）。
func Aggregates(items []model.LineItem) (totalItems int64, grandTotal float64) {
	for _, it := range items {
		totalItems += it.Quantity
		grandTotal += it.Price * float64(it.Quantity)
	}
	return totalItems, grandTotal
}
