package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"gamepulse/internal/domain/entity"
	pg "gamepulse/internal/infra/adapter/persistence/postgres"
	"gamepulse/internal/repository"
)

func articleRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "content", "summary", "image_url",
		"category", "published_at", "comment_count", "featured",
	}).AddRow(
		a.ID, a.Title, a.Content, a.Summary, a.ImageURL,
		a.Category, a.PublishedAt, a.CommentCount, a.Featured,
	)
}

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: 1, Title: "GTA VI trailer", Content: "<p>body</p>",
		Summary: "sum", ImageURL: "https://img", Category: "pc",
		PublishedAt: now, CommentCount: 3, Featured: true,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(articleRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_GetMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// A missing row comes back as an empty result set, not an error.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "summary", "image_url",
			"category", "published_at", "comment_count", "featured",
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 404)
	if err != nil || got != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestArticleRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM articles").
		WillReturnRows(articleRow(&entity.Article{
			ID: 1, Title: "x", Category: "pc", PublishedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.List(context.Background(), repository.ListOptions{})
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

func TestArticleRepo_ListCategoryAndLimit(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("LOWER(category) = LOWER($1)")).
		WithArgs("Console", 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "summary", "image_url",
			"category", "published_at", "comment_count", "featured",
		}))

	repo := pg.NewArticleRepo(db)
	_, err := repo.List(context.Background(), repository.ListOptions{Category: "Console", Limit: 5})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_GetFeatured(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("WHERE featured").
		WillReturnRows(articleRow(&entity.Article{
			ID: 7, Title: "headline", Category: "industry",
			PublishedAt: now, Featured: true,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.GetFeatured(context.Background())
	if err != nil || got == nil || got.ID != 7 {
		t.Fatalf("GetFeatured = %v, err=%v", got, err)
	}
}

func TestArticleRepo_Search(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").
		WithArgs("%gta%", repository.SearchResultLimit).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "summary", "image_url",
			"category", "published_at", "comment_count", "featured",
		}))

	repo := pg.NewArticleRepo(db)
	if _, err := repo.Search(context.Background(), "gta"); err != nil {
		t.Fatalf("Search err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_SearchEscapesLikeMetacharacters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").
		WithArgs(`%100\% crit\_rate%`, repository.SearchResultLimit).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "summary", "image_url",
			"category", "published_at", "comment_count", "featured",
		}))

	repo := pg.NewArticleRepo(db)
	if _, err := repo.Search(context.Background(), "100% crit_rate"); err != nil {
		t.Fatalf("Search err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs("title", "<p>c</p>", "sum", "https://img", "pc", now, 0, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	repo := pg.NewArticleRepo(db)
	a := &entity.Article{
		Title: "title", Content: "<p>c</p>", Summary: "sum",
		ImageURL: "https://img", Category: "pc", PublishedAt: now,
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID != 42 {
		t.Fatalf("Create left id=%d, want 42", a.ID)
	}
}

func TestArticleRepo_SetFeatured(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET featured = TRUE")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET featured = FALSE")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := pg.NewArticleRepo(db)
	if err := repo.SetFeatured(context.Background(), 2); err != nil {
		t.Fatalf("SetFeatured err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_SetFeaturedUnknownID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET featured = TRUE")).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := pg.NewArticleRepo(db)
	if err := repo.SetFeatured(context.Background(), 999); err != entity.ErrNotFound {
		t.Fatalf("SetFeatured(999) = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))

	repo := pg.NewArticleRepo(db)
	n, err := repo.Count(context.Background())
	if err != nil || n != 6 {
		t.Fatalf("Count = %d, err=%v", n, err)
	}
}
