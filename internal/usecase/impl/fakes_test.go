package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"

	"chapel/internal/domain/entity"
	"chapel/internal/domain/repository"
	"chapel/internal/domain/service"
)

// Hand-written in-memory fakes. They keep the tests free of a database while
// still exercising the services' error mapping and side effects.

var (
	errHashUnavailable  = errors.New("hasher unavailable")
	errTokenUnavailable = errors.New("token service unavailable")
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- user repository fake ---

type fakeUserRepo struct {
	users  map[uint]*entity.User
	nextID uint
	err    error // when set, every call fails with this error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) add(user *entity.User) *entity.User {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	r.users[user.ID] = user

	return user
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.add(user)

	return nil
}

// --- password hasher fake ---

// fakeHasher prefixes the password instead of hashing it, so tests can assert
// on the stored value.
type fakeHasher struct {
	failHash bool
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.failHash {
		return "", errHashUnavailable
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// --- token service fake ---

type fakeTokenService struct {
	failGenerate bool
}

func (s *fakeTokenService) GenerateToken(userID uint) (string, error) {
	if s.failGenerate {
		return "", errTokenUnavailable
	}

	return "token-" + strconv.FormatUint(uint64(userID), 10), nil
}

func (s *fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	panic("not used in these tests")
}

// --- worship repository fake ---

type fakeWorshipRepo struct {
	worships map[uint]*entity.Worship
	nextID   uint
	err      error

	lastFields map[string]any // captured by UpdateFields
}

func newFakeWorshipRepo() *fakeWorshipRepo {
	return &fakeWorshipRepo{worships: map[uint]*entity.Worship{}, nextID: 1}
}

func (r *fakeWorshipRepo) add(worship *entity.Worship) *entity.Worship {
	if worship.ID == 0 {
		worship.ID = r.nextID
		r.nextID++
	}
	r.worships[worship.ID] = worship

	return worship
}

func (r *fakeWorshipRepo) FindByID(_ context.Context, id uint) (*entity.Worship, error) {
	if r.err != nil {
		return nil, r.err
	}
	worship, ok := r.worships[id]
	if !ok {
		return nil, repository.ErrWorshipNotFound
	}

	return worship, nil
}

func (r *fakeWorshipRepo) FindPage(_ context.Context, skip, limit int) ([]*entity.Worship, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.page(skip, limit, func(*entity.Worship) bool { return true }), nil
}

func (r *fakeWorshipRepo) FindActive(_ context.Context) ([]*entity.Worship, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.page(0, len(r.worships), func(w *entity.Worship) bool { return w.IsActive }), nil
}

func (r *fakeWorshipRepo) FindByType(_ context.Context, worshipType string) ([]*entity.Worship, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.page(0, len(r.worships), func(w *entity.Worship) bool {
		return w.IsActive && w.WorshipType == worshipType
	}), nil
}

func (r *fakeWorshipRepo) page(skip, limit int, keep func(*entity.Worship) bool) []*entity.Worship {
	out := []*entity.Worship{}
	for id := uint(1); id < r.nextID; id++ {
		worship, ok := r.worships[id]
		if !ok || !keep(worship) {
			continue
		}
		if skip > 0 {
			skip--

			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, worship)
	}

	return out
}

func (r *fakeWorshipRepo) Create(_ context.Context, worship *entity.Worship) error {
	if r.err != nil {
		return r.err
	}
	r.add(worship)

	return nil
}

func (r *fakeWorshipRepo) UpdateFields(_ context.Context, id uint, fields map[string]any) (*entity.Worship, error) {
	if r.err != nil {
		return nil, r.err
	}
	worship, ok := r.worships[id]
	if !ok {
		return nil, repository.ErrWorshipNotFound
	}
	r.lastFields = fields
	if title, ok := fields["title"].(string); ok {
		worship.Title = title
	}
	if active, ok := fields["is_active"].(bool); ok {
		worship.IsActive = active
	}

	return worship, nil
}

func (r *fakeWorshipRepo) Delete(_ context.Context, id uint) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.worships[id]; !ok {
		return false, nil
	}
	delete(r.worships, id)

	return true, nil
}

// --- sermon repository fake ---

type fakeSermonRepo struct {
	sermons      map[uint]*entity.Sermon
	nextID       uint
	err          error
	incrementErr error

	increments []uint // ids passed to IncrementViews
	lastFields map[string]any
}

func newFakeSermonRepo() *fakeSermonRepo {
	return &fakeSermonRepo{sermons: map[uint]*entity.Sermon{}, nextID: 1}
}

func (r *fakeSermonRepo) add(sermon *entity.Sermon) *entity.Sermon {
	if sermon.ID == 0 {
		sermon.ID = r.nextID
		r.nextID++
	}
	r.sermons[sermon.ID] = sermon

	return sermon
}

func (r *fakeSermonRepo) FindByID(_ context.Context, id uint) (*entity.Sermon, error) {
	if r.err != nil {
		return nil, r.err
	}
	sermon, ok := r.sermons[id]
	if !ok {
		return nil, repository.ErrSermonNotFound
	}

	return sermon, nil
}

func (r *fakeSermonRepo) FindPage(_ context.Context, skip, limit int) ([]*entity.Sermon, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.page(skip, limit, func(*entity.Sermon) bool { return true }), nil
}

func (r *fakeSermonRepo) FindPublished(_ context.Context, skip, limit int) ([]*entity.Sermon, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.page(skip, limit, func(s *entity.Sermon) bool { return s.IsPublished }), nil
}

func (r *fakeSermonRepo) page(skip, limit int, keep func(*entity.Sermon) bool) []*entity.Sermon {
	out := []*entity.Sermon{}
	for id := uint(1); id < r.nextID; id++ {
		sermon, ok := r.sermons[id]
		if !ok || !keep(sermon) {
			continue
		}
		if skip > 0 {
			skip--

			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, sermon)
	}

	return out
}

func (r *fakeSermonRepo) Create(_ context.Context, sermon *entity.Sermon) error {
	if r.err != nil {
		return r.err
	}
	r.add(sermon)

	return nil
}

func (r *fakeSermonRepo) UpdateFields(_ context.Context, id uint, fields map[string]any) (*entity.Sermon, error) {
	if r.err != nil {
		return nil, r.err
	}
	sermon, ok := r.sermons[id]
	if !ok {
		return nil, repository.ErrSermonNotFound
	}
	r.lastFields = fields
	if title, ok := fields["title"].(string); ok {
		sermon.Title = title
	}

	return sermon, nil
}

func (r *fakeSermonRepo) Delete(_ context.Context, id uint) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.sermons[id]; !ok {
		return false, nil
	}
	delete(r.sermons, id)

	return true, nil
}

func (r *fakeSermonRepo) IncrementViews(_ context.Context, id uint) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.increments = append(r.increments, id)
	if sermon, ok := r.sermons[id]; ok {
		sermon.Views++
	}

	return nil
}

// --- news repository fake ---

type fakeNewsRepo struct {
	articles     map[uint]*entity.News
	nextID       uint
	err          error
	incrementErr error

	increments []uint
	lastFields map[string]any
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{articles: map[uint]*entity.News{}, nextID: 1}
}

func (r *fakeNewsRepo) add(article *entity.News) *entity.News {
	if article.ID == 0 {
		article.ID = r.nextID
		r.nextID++
	}
	r.articles[article.ID] = article

	return article
}

func (r *fakeNewsRepo) FindByID(_ context.Context, id uint) (*entity.News, error) {
	if r.err != nil {
		return nil, r.err
	}
	article, ok := r.articles[id]
	if !ok {
		return nil, repository.ErrNewsNotFound
	}

	return article, nil
}

func (r *fakeNewsRepo) FindPage(_ context.Context, skip, limit int) ([]*entity.News, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.page(skip, limit, func(*entity.News) bool { return true }), nil
}

func (r *fakeNewsRepo) FindPublished(_ context.Context, skip, limit int) ([]*entity.News, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.page(skip, limit, func(n *entity.News) bool { return n.IsPublished }), nil
}

func (r *fakeNewsRepo) FindByCategory(_ context.Context, category string, skip, limit int) ([]*entity.News, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.page(skip, limit, func(n *entity.News) bool {
		return n.IsPublished && n.Category == category
	}), nil
}

func (r *fakeNewsRepo) page(skip, limit int, keep func(*entity.News) bool) []*entity.News {
	out := []*entity.News{}
	for id := uint(1); id < r.nextID; id++ {
		article, ok := r.articles[id]
		if !ok || !keep(article) {
			continue
		}
		if skip > 0 {
			skip--

			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, article)
	}

	return out
}

func (r *fakeNewsRepo) Create(_ context.Context, article *entity.News) error {
	if r.err != nil {
		return r.err
	}
	r.add(article)

	return nil
}

func (r *fakeNewsRepo) UpdateFields(_ context.Context, id uint, fields map[string]any) (*entity.News, error) {
	if r.err != nil {
		return nil, r.err
	}
	article, ok := r.articles[id]
	if !ok {
		return nil, repository.ErrNewsNotFound
	}
	r.lastFields = fields
	if title, ok := fields["title"].(string); ok {
		article.Title = title
	}

	return article, nil
}

func (r *fakeNewsRepo) Delete(_ context.Context, id uint) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.articles[id]; !ok {
		return false, nil
	}
	delete(r.articles, id)

	return true, nil
}

func (r *fakeNewsRepo) IncrementViews(_ context.Context, id uint) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.increments = append(r.increments, id)
	if article, ok := r.articles[id]; ok {
		article.Views++
	}

	return nil
}
