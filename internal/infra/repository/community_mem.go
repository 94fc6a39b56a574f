package repository

import (
	"context"
	"sync"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// コミュニティのインメモリ実装。
// トピック・グループはページの静的データ、投稿と知恵は追加できる。
type CommunityMemRepository struct {
	mu      sync.Mutex
	topics  []model.DiscussionTopic
	groups  []model.SupportGroup
	wisdom  []model.WisdomQuote
	posts   []model.CommunityPost
	likedBy map[string]map[string]bool // postID -> sessionID -> liked
}

func NewCommunityMemRepository(now time.Time) *CommunityMemRepository {
	return &CommunityMemRepository{
		topics:  seedTopics(),
		groups:  seedGroups(),
		wisdom:  seedWisdom(),
		posts:   seedPosts(now),
		likedBy: map[string]map[string]bool{},
	}
}

func (r *CommunityMemRepository) ListTopics(ctx context.Context) ([]model.DiscussionTopic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.DiscussionTopic, len(r.topics))
	copy(out, r.topics)
	return out, nil
}

func (r *CommunityMemRepository) FindTopicByTitle(ctx context.Context, title string) (model.DiscussionTopic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.topics {
		if t.Title == title {
			return t, nil
		}
	}
	return model.DiscussionTopic{}, repo.ErrNotFound
}

func (r *CommunityMemRepository) ListGroups(ctx context.Context) ([]model.SupportGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.SupportGroup, len(r.groups))
	copy(out, r.groups)
	return out, nil
}

func (r *CommunityMemRepository) FindGroupByName(ctx context.Context, name string) (model.SupportGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.groups {
		if g.Name == name {
			return g, nil
		}
	}
	return model.SupportGroup{}, repo.ErrNotFound
}

func (r *CommunityMemRepository) ListWisdom(ctx context.Context) ([]model.WisdomQuote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.WisdomQuote, len(r.wisdom))
	copy(out, r.wisdom)
	return out, nil
}

func (r *CommunityMemRepository) AddWisdom(ctx context.Context, w model.WisdomQuote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wisdom = append(r.wisdom, w)
	return nil
}

// 新しい順で返す
func (r *CommunityMemRepository) ListPosts(ctx context.Context, offset int, limit int) ([]model.CommunityPost, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := int64(len(r.posts))

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.posts) {
		return []model.CommunityPost{}, total, nil
	}

	end := offset + limit
	if end > len(r.posts) {
		end = len(r.posts)
	}

	out := make([]model.CommunityPost, end-offset)
	copy(out, r.posts[offset:end])
	return out, total, nil
}

func (r *CommunityMemRepository) CreatePost(ctx context.Context, p model.CommunityPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	//先頭＝最新
	r.posts = append([]model.CommunityPost{p}, r.posts...)
	return nil
}

func (r *CommunityMemRepository) ToggleLike(ctx context.Context, postID string, sessionID string) (bool, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.posts {
		if p.ID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, 0, repo.ErrNotFound
	}

	sessions := r.likedBy[postID]
	if sessions == nil {
		sessions = map[string]bool{}
		r.likedBy[postID] = sessions
	}

	if sessions[sessionID] {
		delete(sessions, sessionID)
		if r.posts[idx].Likes > 0 {
			r.posts[idx].Likes--
		}
		return false, r.posts[idx].Likes, nil
	}

	sessions[sessionID] = true
	r.posts[idx].Likes++
	return true, r.posts[idx].Likes, nil
}

func seedTopics() []model.DiscussionTopic {
	return []model.DiscussionTopic{
		{Title: "Setting Boundaries", Participants: 156, LastActive: "2 hours ago"},
		{Title: "Recharging After Social Events", Participants: 89, LastActive: "1 day ago"},
		{Title: "Finding Quiet Spaces in Public", Participants: 203, LastActive: "3 hours ago"},
		{Title: "Introvert-Friendly Hobbies", Participants: 127, LastActive: "5 hours ago"},
		{Title: "Dealing with Social Expectations", Participants: 178, LastActive: "1 day ago"},
	}
}

func seedGroups() []model.SupportGroup {
	return []model.SupportGroup{
		{Name: "Social Anxiety Support", Members: 45, Meeting: "Weekly, Sundays 2 PM"},
		{Name: "Introvert Writers", Members: 32, Meeting: "Bi-weekly, Tuesdays 7 PM"},
		{Name: "Quiet Book Club", Members: 28, Meeting: "Monthly, First Saturday 3 PM"},
		{Name: "Energy Management", Members: 51, Meeting: "Weekly, Wednesdays 6 PM"},
	}
}

func seedWisdom() []model.WisdomQuote {
	return []model.WisdomQuote{
		{Quote: "Your quiet strength is not a weakness. It's a superpower.", Author: "Anonymous Soul"},
		{Quote: "It's okay to need time alone. It's how you recharge your beautiful mind.", Author: "Gentle Dreamer"},
		{Quote: "You don't have to be loud to be heard. Your presence speaks volumes.", Author: "Quiet Observer"},
		{Quote: "Setting boundaries is an act of self-love, not selfishness.", Author: "Boundary Setter"},
		{Quote: "Your introversion is not something to fix. It's something to embrace.", Author: "Self-Acceptance Advocate"},
	}
}

func seedPosts(now time.Time) []model.CommunityPost {
	return []model.CommunityPost{
		{
			ID:       "seed-1",
			Author:   "Mindful Wanderer",
			Content:  "Just discovered that taking a 10-minute walk in nature does wonders for my social battery. Anyone else find solace in quiet outdoor moments?",
			PostedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:       "seed-2",
			Author:   "Gentle Listener",
			Content:  "Remember: You don't owe anyone your energy. It's perfectly okay to say 'I need some time to think about that' when you're not ready to respond.",
			PostedAt: now.Add(-4 * 24 * time.Hour),
		},
	}
}
