package repository

import (
	"context"

	"app/internal/domain/model"
)

type CommunityRepository interface {
	ListTopics(ctx context.Context) ([]model.DiscussionTopic, error)
	//無ければ ErrNotFound
	FindTopicByTitle(ctx context.Context, title string) (model.DiscussionTopic, error)

	ListGroups(ctx context.Context) ([]model.SupportGroup, error)
	//無ければ ErrNotFound
	FindGroupByName(ctx context.Context, name string) (model.SupportGroup, error)

	ListWisdom(ctx context.Context) ([]model.WisdomQuote, error)
	AddWisdom(ctx context.Context, w model.WisdomQuote) error

	//投稿は新しい順。totalは全件数
	ListPosts(ctx context.Context, offset int, limit int) ([]model.CommunityPost, int64, error)
	CreatePost(ctx context.Context, p model.CommunityPost) error

	//同じセッションがもう一度呼ぶと取り消しになる（トグル）
	ToggleLike(ctx context.Context, postID string, sessionID string) (liked bool, likes int64, err error)
}
