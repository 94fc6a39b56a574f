package handler_test

import (
	"net/http"
	"testing"

	"app/internal/handler"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test: トピック一覧と参加
func TestCommunityHandler_Topics(t *testing.T) {
	e := newTestEcho(t)

	rec := doReq(t, e, http.MethodGet, "/community/topics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeJSON[usecase.TopicListOutput](t, rec)
	assert.Len(t, out.Items, 5)
	assert.Equal(t, "Setting Boundaries", out.Items[0].Title)

	rec = doReq(t, e, http.MethodPost, "/community/topics/join",
		handler.JoinTopicRequest{Title: "Setting Boundaries"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	notice := decodeJSON[usecase.NoticeOutput](t, rec)
	assert.Contains(t, notice.Notice, "Setting Boundaries")

	rec = doReq(t, e, http.MethodPost, "/community/topics/join",
		handler.JoinTopicRequest{Title: "Nope"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Test: グループ一覧と参加リクエスト
func TestCommunityHandler_Groups(t *testing.T) {
	e := newTestEcho(t)

	rec := doReq(t, e, http.MethodGet, "/community/groups", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeJSON[usecase.GroupListOutput](t, rec)
	assert.Len(t, out.Items, 4)

	rec = doReq(t, e, http.MethodPost, "/community/groups/join",
		handler.JoinGroupRequest{Name: "Energy Management"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	notice := decodeJSON[usecase.NoticeOutput](t, rec)
	assert.Contains(t, notice.Notice, "Energy Management")
}

// Test: 知恵の一覧と投稿
func TestCommunityHandler_Wisdom(t *testing.T) {
	e := newTestEcho(t)

	rec := doReq(t, e, http.MethodGet, "/community/wisdom", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeJSON[usecase.WisdomListOutput](t, rec)
	assert.Len(t, out.Items, 5)

	rec = doReq(t, e, http.MethodPost, "/community/wisdom",
		handler.AddWisdomRequest{Quote: "Slow mornings count as self-care."}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doReq(t, e, http.MethodGet, "/community/wisdom", nil, nil)
	out = decodeJSON[usecase.WisdomListOutput](t, rec)
	assert.Len(t, out.Items, 6)

	rec = doReq(t, e, http.MethodPost, "/community/wisdom",
		handler.AddWisdomRequest{Quote: "<script>x</script>"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Test: 投稿一覧はpage/limit未指定でデフォルト（1ページ10件）
func TestCommunityHandler_ListPosts_Defaults(t *testing.T) {
	e := newTestEcho(t)

	rec := doReq(t, e, http.MethodGet, "/community/posts", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeJSON[usecase.PostListOutput](t, rec)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, int64(2), out.Total)

	rec = doReq(t, e, http.MethodGet, "/community/posts?page=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doReq(t, e, http.MethodGet, "/community/posts?limit=0", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Test: 投稿。検証NGは200のお知らせで返る
func TestCommunityHandler_SubmitPost(t *testing.T) {
	e := newTestEcho(t)

	rec := doReq(t, e, http.MethodPost, "/community/posts",
		handler.SubmitPostRequest{Content: "Tea and a book tonight."}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeJSON[usecase.SubmitPostOutput](t, rec)
	assert.True(t, out.Accepted)
	require.NotNil(t, out.Post)
	assert.Equal(t, "Anonymous Soul", out.Post.Author)

	rec = doReq(t, e, http.MethodPost, "/community/posts",
		handler.SubmitPostRequest{Content: "   "}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out = decodeJSON[usecase.SubmitPostOutput](t, rec)
	assert.False(t, out.Accepted)
	assert.Equal(t, "No pressure to share if you're not ready", out.Notice)
}

// Test: いいねのトグルはセッション単位
func TestCommunityHandler_ToggleLike(t *testing.T) {
	e := newTestEcho(t)

	rec := doReq(t, e, http.MethodPost, "/community/posts/seed-1/like", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := decodeJSON[usecase.LikeOutput](t, rec)
	assert.True(t, out.Liked)
	assert.Equal(t, int64(1), out.Likes)

	//同じセッション（cookie持ち回り）でもう一度→取り消し
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = doReq(t, e, http.MethodPost, "/community/posts/seed-1/like", nil, cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	out = decodeJSON[usecase.LikeOutput](t, rec)
	assert.False(t, out.Liked)
	assert.Equal(t, int64(0), out.Likes)
	assert.Equal(t, "Like removed", out.Notice)

	rec = doReq(t, e, http.MethodPost, "/community/posts/missing/like", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
