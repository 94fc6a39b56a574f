package model

// カートの明細（1商品＝1行）。
// JSONタグはそのまま永続化スナップショットの形式になる。
// バージョンフィールドは持たない（形式変更時は既存データを破棄する）。
type LineItem struct {
	//商品ID。カート内で一意（マージキー）。
	ID string `json:"id"`

	//表示名（カタログ由来）。
	Name string `json:"name"`

	//単価。集計時は丸めない（表示境界でのみ小数2桁にする）。
	Price float64 `json:"price"`

	//数量。通常操作では1未満にならない。
	Quantity int64 `json:"quantity"`
}
