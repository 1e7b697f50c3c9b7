package college

import (
	"context"
	"errors"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/catalog"
)

// ResultCap bounds directory listings. Ordering within the cap is
// implementation-defined (storage default) until a requirement says otherwise.
const ResultCap = 50

var ErrNotFound = errors.New("college not found")

type (
	Repository interface {
		// QueryColleges returns at most limit entities matching the predicate,
		// each with joined state/city summaries and course summaries.
		QueryColleges(ctx context.Context, pred Predicate, limit int, exec ...core.DBExecutor) ([]College, error)
		GetCollegeBySlug(ctx context.Context, slug string, exec ...core.DBExecutor) (College, error)
		QueryCourses(ctx context.Context, slug string, exec ...core.DBExecutor) ([]Course, error)
		GetCourse(ctx context.Context, slug string, courseID int, exec ...core.DBExecutor) (Course, error)
		QueryGallery(ctx context.Context, slug string, exec ...core.DBExecutor) ([]GalleryImage, error)
	}

	ServiceInterface interface {
		Query(ctx context.Context, f catalog.Filter) ([]College, error)
		GetBySlug(ctx context.Context, slug string) (College, error)
		Courses(ctx context.Context, slug string) ([]Course, error)
		GetCourse(ctx context.Context, slug string, courseID int) (Course, error)
		Gallery(ctx context.Context, slug string) ([]GalleryImage, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query returns the directory entities matching the facet selection,
// capped at ResultCap. An all-empty filter returns the unfiltered top slice.
func (svc *Service) Query(ctx context.Context, f catalog.Filter) ([]College, error) {
	return svc.repo.QueryColleges(ctx, BuildPredicate(f), ResultCap)
}

func (svc *Service) GetBySlug(ctx context.Context, slug string) (College, error) {
	return svc.repo.GetCollegeBySlug(ctx, core.CleanString(slug, true /* lower */))
}

func (svc *Service) Courses(ctx context.Context, slug string) ([]Course, error) {
	return svc.repo.QueryCourses(ctx, core.CleanString(slug, true /* lower */))
}

func (svc *Service) GetCourse(ctx context.Context, slug string, courseID int) (Course, error) {
	return svc.repo.GetCourse(ctx, core.CleanString(slug, true /* lower */), courseID)
}

func (svc *Service) Gallery(ctx context.Context, slug string) ([]GalleryImage, error) {
	return svc.repo.QueryGallery(ctx, core.CleanString(slug, true /* lower */))
}
