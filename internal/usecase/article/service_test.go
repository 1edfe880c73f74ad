package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
	artUC "gamepulse/internal/usecase/article"
)

// Minimal in-memory ArticleRepository stub.
type stubRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error // set to force a repository failure
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context, _ repository.ListOptions) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetFeatured(_ context.Context) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.data {
		if a.Featured {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Search(_ context.Context, _ string) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) SetFeatured(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	for _, a := range s.data {
		a.Featured = a.ID == id
	}
	return nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

func TestService_Get(t *testing.T) {
	repo := newStub()
	repo.data[1] = &entity.Article{ID: 1, Title: "x"}
	svc := &artUC.Service{Repo: repo}

	got, err := svc.Get(context.Background(), 1)
	if err != nil || got.Title != "x" {
		t.Fatalf("Get = %v, err=%v", got, err)
	}

	if _, err := svc.Get(context.Background(), 0); err != artUC.ErrInvalidArticleID {
		t.Fatalf("Get(0) = %v, want ErrInvalidArticleID", err)
	}
	if _, err := svc.Get(context.Background(), 99); err != artUC.ErrArticleNotFound {
		t.Fatalf("Get(99) = %v, want ErrArticleNotFound", err)
	}
}

func TestService_ListRejectsNegativeLimit(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	_, err := svc.List(context.Background(), repository.ListOptions{Limit: -1})
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("List(limit=-1) = %v, want ValidationError", err)
	}
}

func TestService_GetFeatured(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	if _, err := svc.GetFeatured(context.Background()); err != artUC.ErrNoFeaturedArticle {
		t.Fatalf("GetFeatured on empty catalog = %v, want ErrNoFeaturedArticle", err)
	}

	repo.data[1] = &entity.Article{ID: 1, Title: "f", Featured: true}
	got, err := svc.GetFeatured(context.Background())
	if err != nil || got.ID != 1 {
		t.Fatalf("GetFeatured = %v, err=%v", got, err)
	}
}

func TestService_SetFeatured(t *testing.T) {
	repo := newStub()
	repo.data[1] = &entity.Article{ID: 1, Featured: true}
	repo.data[2] = &entity.Article{ID: 2}
	svc := &artUC.Service{Repo: repo}

	if err := svc.SetFeatured(context.Background(), 2); err != nil {
		t.Fatalf("SetFeatured err=%v", err)
	}
	if repo.data[1].Featured || !repo.data[2].Featured {
		t.Fatal("featured flag did not move")
	}

	if err := svc.SetFeatured(context.Background(), 99); err != artUC.ErrArticleNotFound {
		t.Fatalf("SetFeatured(99) = %v, want ErrArticleNotFound", err)
	}
	if err := svc.SetFeatured(context.Background(), -1); err != artUC.ErrInvalidArticleID {
		t.Fatalf("SetFeatured(-1) = %v, want ErrInvalidArticleID", err)
	}
}

func TestService_SearchRejectsBlankQuery(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Search(context.Background(), q); err != artUC.ErrEmptyQuery {
			t.Fatalf("Search(%q) = %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestService_Create(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	got, err := svc.Create(context.Background(), artUC.CreateInput{
		Title: "t", Content: "<p>c</p>", Category: "pc", PublishedAt: time.Now(),
	})
	if err != nil || got.ID == 0 {
		t.Fatalf("Create = %v, err=%v", got, err)
	}

	_, err = svc.Create(context.Background(), artUC.CreateInput{Content: "c", Category: "pc"})
	var verr *entity.ValidationError
	if !errors.As(err, &verr) || verr.Field != "title" {
		t.Fatalf("Create without title = %v, want ValidationError on title", err)
	}
}

func TestService_RepoErrorIsWrapped(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("boom")
	svc := &artUC.Service{Repo: repo}

	if _, err := svc.List(context.Background(), repository.ListOptions{}); err == nil {
		t.Fatal("List did not surface repository error")
	}
	if _, err := svc.Search(context.Background(), "gta"); err == nil {
		t.Fatal("Search did not surface repository error")
	}
}
