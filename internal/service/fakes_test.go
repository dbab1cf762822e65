package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/digicides/blog-service/internal/model"
	"github.com/digicides/blog-service/internal/repository"
	"github.com/digicides/blog-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// fakeStore is an in-memory stand-in for the postgres schema. One instance
// backs all aggregate fakes so that cross-table behavior (the likes counter,
// the comments-to-blogs join) works the way the real store does.
type fakeStore struct {
	blogs    map[uuid.UUID]*model.Blog
	comments map[uuid.UUID]*model.BlogComment
	likes    map[likeKey]bool
	admins   map[uuid.UUID]*model.Admin
	sessions map[string]*model.AdminSession
}

type likeKey struct {
	blogID      uuid.UUID
	fingerprint string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		blogs:    make(map[uuid.UUID]*model.Blog),
		comments: make(map[uuid.UUID]*model.BlogComment),
		likes:    make(map[likeKey]bool),
		admins:   make(map[uuid.UUID]*model.Admin),
		sessions: make(map[string]*model.AdminSession),
	}
}

func newTestRepo(st *fakeStore) *repository.Repository {
	return &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Blog:    &fakeBlogRepo{st},
			Comment: &fakeCommentRepo{st},
			Like:    &fakeLikeRepo{st},
			Admin:   &fakeAdminRepo{st},
			Session: &fakeSessionRepo{st},
		},
	}
}

func (st *fakeStore) addBlog(blog model.Blog) *model.Blog {
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = blog.CreatedAt
	st.blogs[blog.ID] = &blog
	copied := blog
	return &copied
}

func (st *fakeStore) addComment(comment model.BlogComment) *model.BlogComment {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	comment.CreatedAt = time.Now()
	st.comments[comment.ID] = &comment
	copied := comment
	return &copied
}

func (st *fakeStore) addAdmin(admin model.Admin) *model.Admin {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	st.admins[admin.ID] = &admin
	copied := admin
	return &copied
}

func (st *fakeStore) addSession(session model.AdminSession) {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	st.sessions[session.Token] = &session
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

type fakeBlogRepo struct {
	st *fakeStore
}

func (r *fakeBlogRepo) Create(ctx context.Context, blog model.Blog) (*model.Blog, error) {
	for _, b := range r.st.blogs {
		if b.Slug == blog.Slug {
			return nil, uniqueViolation()
		}
	}
	return r.st.addBlog(blog), nil
}

func (r *fakeBlogRepo) FindAll(ctx context.Context, status *model.BlogStatus) ([]*model.Blog, error) {
	var blogs []*model.Blog
	for _, b := range r.st.blogs {
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		blogs = append(blogs, &copied)
	}
	return blogs, nil
}

func (r *fakeBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	b, ok := r.st.blogs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBlogRepo) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	for _, b := range r.st.blogs {
		if b.Slug == slug {
			copied := *b
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeBlogRepo) Update(ctx context.Context, blog model.Blog) error {
	if _, ok := r.st.blogs[blog.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, b := range r.st.blogs {
		if id != blog.ID && b.Slug == blog.Slug {
			return uniqueViolation()
		}
	}
	copied := blog
	r.st.blogs[blog.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.st.blogs, id)
	for cid, c := range r.st.comments {
		if c.BlogID == id {
			delete(r.st.comments, cid)
		}
	}
	return nil
}

type fakeCommentRepo struct {
	st *fakeStore
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment model.BlogComment) (*model.BlogComment, error) {
	return r.st.addComment(comment), nil
}

func (r *fakeCommentRepo) FindByBlog(ctx context.Context, blogID uuid.UUID, status *model.CommentStatus) ([]*model.BlogComment, error) {
	var comments []*model.BlogComment
	for _, c := range r.st.comments {
		if c.BlogID != blogID {
			continue
		}
		if status != nil && c.Status != *status {
			continue
		}
		copied := *c
		comments = append(comments, &copied)
	}
	return comments, nil
}

func (r *fakeCommentRepo) FindAll(ctx context.Context, status *model.CommentStatus) ([]*model.AdminComment, error) {
	var comments []*model.AdminComment
	for _, c := range r.st.comments {
		if status != nil && c.Status != *status {
			continue
		}
		blog, ok := r.st.blogs[c.BlogID]
		if !ok {
			continue
		}
		comments = append(comments, &model.AdminComment{
			BlogComment: *c,
			BlogTitle:   blog.Title,
			BlogSlug:    blog.Slug,
		})
	}
	return comments, nil
}

func (r *fakeCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.BlogComment, error) {
	c, ok := r.st.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCommentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CommentStatus, approvedAt *time.Time, approvedBy *string) (*model.BlogComment, error) {
	c, ok := r.st.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	c.Status = status
	c.ApprovedAt = approvedAt
	c.ApprovedBy = approvedBy
	copied := *c
	return &copied, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.st.comments, id)
	return nil
}

type fakeLikeRepo struct {
	st *fakeStore
}

func (r *fakeLikeRepo) Exists(ctx context.Context, blogID uuid.UUID, fingerprint string) (bool, error) {
	return r.st.likes[likeKey{blogID, fingerprint}], nil
}

// Toggle mirrors the store: conditional delete-then-insert against the unique
// pair, with the blog's likes counter kept in step the way the trigger does.
func (r *fakeLikeRepo) Toggle(ctx context.Context, blogID uuid.UUID, fingerprint string) (bool, error) {
	key := likeKey{blogID, fingerprint}
	if r.st.likes[key] {
		delete(r.st.likes, key)
		if b, ok := r.st.blogs[blogID]; ok {
			b.LikesCount--
		}
		return false, nil
	}
	r.st.likes[key] = true
	if b, ok := r.st.blogs[blogID]; ok {
		b.LikesCount++
	}
	return true, nil
}

type fakeAdminRepo struct {
	st *fakeStore
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	for _, a := range r.st.admins {
		if strings.EqualFold(a.Email, email) {
			copied := *a
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAdminRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	a, ok := r.st.admins[id]
	if !ok {
		return pgx.ErrNoRows
	}
	a.LastLogin = &at
	return nil
}

type fakeSessionRepo struct {
	st *fakeStore
}

func (r *fakeSessionRepo) Create(ctx context.Context, session model.AdminSession) error {
	r.st.addSession(session)
	return nil
}

func (r *fakeSessionRepo) FindByToken(ctx context.Context, token string) (*model.AdminSession, *model.Admin, error) {
	s, ok := r.st.sessions[token]
	if !ok || !s.ExpiresAt.After(time.Now()) {
		return nil, nil, pgx.ErrNoRows
	}
	a, ok := r.st.admins[s.AdminID]
	if !ok {
		return nil, nil, pgx.ErrNoRows
	}
	session := *s
	admin := *a
	return &session, &admin, nil
}

func (r *fakeSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	delete(r.st.sessions, token)
	return nil
}

type stubLimiter struct {
	allow bool
}

func (l stubLimiter) Allow(ctx context.Context, ip string) bool { return l.allow }

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func uuidv4(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}
