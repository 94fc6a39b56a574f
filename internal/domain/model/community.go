package model

import "time"

// 話し合いトピック。
type DiscussionTopic struct {
	Title        string `json:"title"`
	Participants int64  `json:"participants"`
	//ページ表示用の文字列（"2 hours ago" など）
	LastActive string `json:"last_active"`
}

// サポートグループ。
type SupportGroup struct {
	Name    string `json:"name"`
	Members int64  `json:"members"`
	Meeting string `json:"meeting"`
}

// 知恵ライブラリの1件。
type WisdomQuote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// コミュニティ投稿（匿名）。
type CommunityPost struct {
	ID       string    `json:"id"`
	Author   string    `json:"author"`
	Content  string    `json:"content"`
	Likes    int64     `json:"likes"`
	PostedAt time.Time `json:"posted_at"`
}
