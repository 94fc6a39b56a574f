package display

import (
	"fmt"

	"app/internal/domain/model"

	"github.com/rs/zerolog"
)

// カートの現在状態をログに流すDisplayPort実装。
// 金額の小数2桁整形はこの表示境界でだけ行う。
type LogDisplay struct {
	log zerolog.Logger
}

// DI
func NewLogDisplay(log zerolog.Logger) *LogDisplay {
	return &LogDisplay{log: log}
}

func (d *LogDisplay) Refresh(sessionID string, items []model.LineItem, totalItems int64, grandTotal float64) {
	d.log.Info().
		Str("session_id", sessionID).
		Int("lines", len(items)).
		Int64("total_items", totalItems).
		Str("grand_total", fmt.Sprintf("%.2f", grandTotal)).
		Msg("cart refreshed")
}
