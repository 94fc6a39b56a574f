package model

// カタログの商品。元ページの静的カタログなのでDBは使わない。
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`

	//1商品に複数のムードを付けられる
	Moods []string `json:"moods"`
}

// moodが付いているか判定
func (p Product) HasMood(mood string) bool {
	for _, m := range p.Moods {
		if m == mood {
			return true
		}
	}
	return false
}
