package college

import (
	"context"
	"testing"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/catalog"
)

type fakeRepo struct {
	lastPred  Predicate
	lastLimit int
	lastSlug  string
}

func (r *fakeRepo) QueryColleges(ctx context.Context, pred Predicate, limit int, exec ...core.DBExecutor) ([]College, error) {
	r.lastPred = pred
	r.lastLimit = limit
	return nil, nil
}

func (r *fakeRepo) GetCollegeBySlug(ctx context.Context, slug string, exec ...core.DBExecutor) (College, error) {
	r.lastSlug = slug
	return College{}, ErrNotFound
}

func (r *fakeRepo) QueryCourses(ctx context.Context, slug string, exec ...core.DBExecutor) ([]Course, error) {
	r.lastSlug = slug
	return nil, nil
}

func (r *fakeRepo) GetCourse(ctx context.Context, slug string, courseID int, exec ...core.DBExecutor) (Course, error) {
	r.lastSlug = slug
	return Course{}, ErrNotFound
}

func (r *fakeRepo) QueryGallery(ctx context.Context, slug string, exec ...core.DBExecutor) ([]GalleryImage, error) {
	r.lastSlug = slug
	return nil, nil
}

func TestService_Query_capsResults(t *testing.T) {
	repo := new(fakeRepo)
	svc := NewService(repo)

	f := catalog.Filter{States: []int{1}}
	if _, err := svc.Query(context.Background(), f); err != nil {
		t.Fatalf("Query() failed: %v", err)
	}

	if repo.lastLimit != ResultCap {
		t.Errorf("limit = %d, want %d", repo.lastLimit, ResultCap)
	}
	if len(repo.lastPred.Clauses) != 1 {
		t.Errorf("Clauses = %+v, want the state clause only", repo.lastPred.Clauses)
	}
}

func TestService_cleansSlugs(t *testing.T) {
	repo := new(fakeRepo)
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.GetBySlug(ctx, "  IIT-Bombay "); err != ErrNotFound {
		t.Fatalf("GetBySlug() error = %v, want ErrNotFound", err)
	}
	if repo.lastSlug != "iit-bombay" {
		t.Errorf("slug = %q, want %q", repo.lastSlug, "iit-bombay")
	}

	if _, err := svc.Courses(ctx, "NIT-Surat"); err != nil {
		t.Fatalf("Courses() failed: %v", err)
	}
	if repo.lastSlug != "nit-surat" {
		t.Errorf("slug = %q, want %q", repo.lastSlug, "nit-surat")
	}
}
