package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/rs/zerolog"
)

// usecaseに渡す部品
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// 投稿本文の安全性チェック。実装は internal/validator。
type ContentValidator interface {
	ValidateContent(content string) error
}

var (
	ErrEmptyContent   = errors.New("empty content")
	ErrContentTooLong = errors.New("content too long")
	ErrUnsafeContent  = errors.New("unsafe content")
)

// 匿名投稿者の表示名
const anonymousAuthor = "Anonymous Soul"

// CommunityUsecase は /community の業務ロジック。
type CommunityUsecase struct {
	community repo.CommunityRepository
	validator ContentValidator
	idGen     IDGenerator
	clock     Clock
	log       zerolog.Logger
}

// DI
func NewCommunityUsecase(
	community repo.CommunityRepository,
	validator ContentValidator,
	idGen IDGenerator,
	clock Clock,
	log zerolog.Logger,
) *CommunityUsecase {
	return &CommunityUsecase{
		community: community,
		validator: validator,
		idGen:     idGen,
		clock:     clock,
		log:       log,
	}
}

type NoticeOutput struct {
	Notice string `json:"notice"`
}

type TopicListOutput struct {
	Items []model.DiscussionTopic `json:"items"`
}

func (u *CommunityUsecase) ListTopics(ctx context.Context) (TopicListOutput, error) {
	items, err := u.community.ListTopics(ctx)
	if err != nil {
		return TopicListOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}
	return TopicListOutput{Items: items}, nil
}

func (u *CommunityUsecase) JoinTopic(ctx context.Context, title string) (NoticeOutput, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return NoticeOutput{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}

	t, err := u.community.FindTopicByTitle(ctx, title)
	if errors.Is(err, repo.ErrNotFound) {
		return NoticeOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NoticeOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}

	return NoticeOutput{
		Notice: fmt.Sprintf("Joining %q discussion. Take your time to observe first", t.Title),
	}, nil
}

type GroupListOutput struct {
	Items []model.SupportGroup `json:"items"`
}

func (u *CommunityUsecase) ListGroups(ctx context.Context) (GroupListOutput, error) {
	items, err := u.community.ListGroups(ctx)
	if err != nil {
		return GroupListOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}
	return GroupListOutput{Items: items}, nil
}

func (u *CommunityUsecase) JoinGroup(ctx context.Context, name string) (NoticeOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return NoticeOutput{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	g, err := u.community.FindGroupByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return NoticeOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NoticeOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}

	return NoticeOutput{
		Notice: fmt.Sprintf("Request sent to join %q. We'll contact you gently", g.Name),
	}, nil
}

type WisdomListOutput struct {
	Items []model.WisdomQuote `json:"items"`
}

func (u *CommunityUsecase) ListWisdom(ctx context.Context) (WisdomListOutput, error) {
	items, err := u.community.ListWisdom(ctx)
	if err != nil {
		return WisdomListOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}
	return WisdomListOutput{Items: items}, nil
}

type AddWisdomInput struct {
	Quote  string
	Author string
}

func (u *CommunityUsecase) AddWisdom(ctx context.Context, in AddWisdomInput) (NoticeOutput, error) {
	quote := strings.TrimSpace(in.Quote)

	switch err := u.validator.ValidateContent(quote); {
	case errors.Is(err, ErrEmptyContent):
		return NoticeOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quote")
	case errors.Is(err, ErrContentTooLong):
		return NoticeOutput{}, NewHTTPError(http.StatusBadRequest, "quote too long")
	case errors.Is(err, ErrUnsafeContent):
		u.log.Warn().Msg("unsafe wisdom content rejected")
		return NoticeOutput{}, NewHTTPError(http.StatusBadRequest, "unsafe content")
	case err != nil:
		return NoticeOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = anonymousAuthor
	}
	if len(author) > 100 {
		return NoticeOutput{}, NewHTTPError(http.StatusBadRequest, "invalid author")
	}

	if err := u.community.AddWisdom(ctx, model.WisdomQuote{Quote: quote, Author: author}); err != nil {
		return NoticeOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}

	return NoticeOutput{Notice: "Thank you for sharing your wisdom with the community"}, nil
}

type ListPostsInput struct {
	Page  int
	Limit int
}

type PostListOutput struct {
	Items  []model.CommunityPost `json:"items"`
	Total  int64                 `json:"total"`
	Page   int                   `json:"page"`
	Limit  int                   `json:"limit"`
	Notice string                `json:"notice,omitempty"`
}

func (u *CommunityUsecase) ListPosts(ctx context.Context, in ListPostsInput) (PostListOutput, error) {
	if in.Page < 1 {
		return PostListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 50 {
		return PostListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	offset := (in.Page - 1) * in.Limit
	items, total, err := u.community.ListPosts(ctx, offset, in.Limit)
	if err != nil {
		return PostListOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}

	out := PostListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}

	//2ページ目以降＝「もっと読む」
	if in.Page > 1 && len(items) > 0 {
		out.Notice = "More gentle posts loaded"
	}
	return out, nil
}

type SubmitPostInput struct {
	Content string
}

type SubmitPostOutput struct {
	Accepted bool                 `json:"accepted"`
	Post     *model.CommunityPost `json:"post,omitempty"`
	Notice   string               `json:"notice"`
}

// 匿名投稿。検証NGはエラーではなく「お知らせ」として返す（元ページと同じ）。
func (u *CommunityUsecase) SubmitPost(ctx context.Context, in SubmitPostInput) (SubmitPostOutput, error) {
	content := strings.TrimSpace(in.Content)

	switch err := u.validator.ValidateContent(content); {
	case errors.Is(err, ErrEmptyContent):
		return SubmitPostOutput{Notice: "No pressure to share if you're not ready"}, nil
	case errors.Is(err, ErrContentTooLong):
		return SubmitPostOutput{Notice: "Your message is too long. Please keep it under 1000 characters"}, nil
	case errors.Is(err, ErrUnsafeContent):
		u.log.Warn().Msg("unsafe post content rejected")
		return SubmitPostOutput{Notice: "Please keep your message safe and appropriate"}, nil
	case err != nil:
		return SubmitPostOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}

	post := model.CommunityPost{
		ID:       u.idGen.NewID(),
		Author:   anonymousAuthor,
		Content:  content,
		PostedAt: u.clock.Now(),
	}

	if err := u.community.CreatePost(ctx, post); err != nil {
		return SubmitPostOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}

	return SubmitPostOutput{
		Accepted: true,
		Post:     &post,
		Notice:   "Your anonymous post has been shared with the community",
	}, nil
}

type LikeOutput struct {
	PostID string `json:"post_id"`
	Liked  bool   `json:"liked"`
	Likes  int64  `json:"likes"`
	Notice string `json:"notice"`
}

// いいねのトグル。同じセッションがもう一度押すと取り消し。
func (u *CommunityUsecase) ToggleLike(ctx context.Context, postID string, sessionID string) (LikeOutput, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return LikeOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if sessionID == "" {
		return LikeOutput{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}

	liked, likes, err := u.community.ToggleLike(ctx, postID, sessionID)
	if errors.Is(err, repo.ErrNotFound) {
		return LikeOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return LikeOutput{}, NewHTTPError(http.StatusInternalServerError, "community error")
	}

	notice := "Like removed"
	if liked {
		notice = "Sending gentle support"
	}

	return LikeOutput{PostID: postID, Liked: liked, Likes: likes, Notice: notice}, nil
}
