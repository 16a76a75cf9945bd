package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

type fakePostRepo struct {
	mu      sync.Mutex
	posts   []entity.Post
	listErr error
	calls   int32
}

func (f *fakePostRepo) ListReadablePosts(ctx context.Context) ([]entity.Post, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Post
	for _, p := range f.posts {
		if p.Readable() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.Slug == slug {
			cp := p
			return &cp, nil
		}
	}
	return nil, entity.ErrPostNotFound
}

func (f *fakePostRepo) CreatePost(ctx context.Context, post *entity.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.Slug == post.Slug {
			return entity.ErrDuplicateSlug
		}
	}
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) UpdatePost(ctx context.Context, slug string, update entity.PostUpdate) (*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.posts {
		if p.Slug != slug {
			continue
		}
		if update.Title != nil {
			p.Title = *update.Title
		}
		if update.Excerpt != nil {
			p.Excerpt = *update.Excerpt
		}
		if update.Content != nil {
			p.Content = *update.Content
		}
		if update.Draft != nil {
			p.Draft = *update.Draft
		}
		if update.Tags != nil {
			p.Tags = update.Tags
		}
		f.posts[i] = p
		return &p, nil
	}
	return nil, entity.ErrPostNotFound
}

type fakeRanking struct {
	ranked     []entity.RankedPost
	err        error
	delay      time.Duration
	excluded   []string
	calls      int32
	views      map[string]int64
	incrErr    error
	mu         sync.Mutex
	lastCtxErr error
}

func (f *fakeRanking) GetTopThreeBlogPosts(ctx context.Context, excludeSlug string) ([]entity.RankedPost, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.excluded = append(f.excluded, excludeSlug)
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			f.mu.Lock()
			f.lastCtxErr = ctx.Err()
			f.mu.Unlock()
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.ranked, nil
}

func (f *fakeRanking) IncrementViews(ctx context.Context, slug string) (int64, error) {
	if f.incrErr != nil {
		return 0, f.incrErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.views == nil {
		f.views = map[string]int64{}
	}
	f.views[slug]++
	return f.views[slug], nil
}

func (f *fakeRanking) GetViews(ctx context.Context, slug string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.views[slug], nil
}

// scriptedRandom returns the queued values in order, then 0.
type scriptedRandom struct {
	mu     sync.Mutex
	values []int
	bounds []int
}

func (s *scriptedRandom) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

// lastRandom always picks the last index.
type lastRandom struct{}

func (lastRandom) Intn(n int) int { return n - 1 }

type failingCache struct {
	getErr error
	setErr error
	sets   int32
}

func (c *failingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, c.getErr
}

func (c *failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	atomic.AddInt32(&c.sets, 1)
	return c.setErr
}

func (c *failingCache) Expire(ctx context.Context, key string) error { return nil }

var errBoom = errors.New("boom")

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func slugsOf(posts []entity.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

type upperRenderer struct{ err error }

func (r upperRenderer) Render(md string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "<p>" + md + "</p>", nil
}

type fakeReleaseProvider struct {
	release *entity.Release
	err     error
	calls   int32
	owner   string
	repo    string
}

func (f *fakeReleaseProvider) GetLatestRelease(ctx context.Context, owner, repo string) (*entity.Release, error) {
	atomic.AddInt32(&f.calls, 1)
	f.owner, f.repo = owner, repo
	if f.err != nil {
		return nil, f.err
	}
	return f.release, nil
}

type fakeNotion struct {
	pages []entity.NotionPage
	err   error
	id    string
}

func (f *fakeNotion) QueryDatabase(ctx context.Context, databaseID string) ([]entity.NotionPage, error) {
	f.id = databaseID
	return f.pages, f.err
}

type fakeHasher struct{ password string }

func (h fakeHasher) HashPassword(password string) (string, error) { return "hash:" + password, nil }

func (h fakeHasher) ComparePasswordHash(password, hashed string) error {
	if "hash:"+password != hashed {
		return errors.New("password verification failed")
	}
	return nil
}

type fakeJWT struct{ err error }

func (f fakeJWT) GenerateAccessToken(subject string, role entity.Role) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + subject + "-" + string(role), nil
}

func (f fakeJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	return &entity.Claims{Subject: "admin", Role: entity.RoleAdmin}, nil
}

type fixedUUID string

func (f fixedUUID) NewUUID() string { return string(f) }
