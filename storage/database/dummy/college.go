package dummydb

import (
	"context"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/college"
)

type collegeRepository struct {
	db *collegeTable
}

var _ college.Repository = (*collegeRepository)(nil) // interface compliance check

func NewCollegeRepository(db *DB) college.Repository {
	return &collegeRepository{db: db.college}
}

func (repo *collegeRepository) QueryColleges(ctx context.Context, pred college.Predicate, limit int, exec ...core.DBExecutor) ([]college.College, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	matched := make([]college.College, 0, limit)
	for _, col := range repo.db.colleges {
		if len(matched) == limit {
			break
		}
		if matchesPredicate(col, pred) {
			matched = append(matched, col)
		}
	}
	return matched, nil
}

func (repo *collegeRepository) GetCollegeBySlug(ctx context.Context, slug string, exec ...core.DBExecutor) (college.College, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, col := range repo.db.colleges {
		if col.Slug == slug {
			return col, nil
		}
	}
	return college.College{}, college.ErrNotFound
}

func (repo *collegeRepository) QueryCourses(ctx context.Context, slug string, exec ...core.DBExecutor) ([]college.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]college.Course(nil), repo.db.courses[slug]...), nil
}

func (repo *collegeRepository) GetCourse(ctx context.Context, slug string, courseID int, exec ...core.DBExecutor) (college.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, crs := range repo.db.courses[slug] {
		if crs.ID == courseID {
			return crs, nil
		}
	}
	return college.Course{}, college.ErrNotFound
}

func (repo *collegeRepository) QueryGallery(ctx context.Context, slug string, exec ...core.DBExecutor) ([]college.GalleryImage, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]college.GalleryImage(nil), repo.db.gallery[slug]...), nil
}

func matchesPredicate(col college.College, pred college.Predicate) bool {
	for _, clause := range pred.Clauses {
		if !matchesClause(col, clause) {
			return false
		}
	}
	return true
}

func matchesClause(col college.College, clause college.Clause) bool {
	switch cl := clause.(type) {
	case college.StringIn:
		return containsStr(cl.Values, entityStr(col, cl.Field))
	case college.IntIn:
		return containsInt(cl.Values, entityInt(col, cl.Field))
	case college.HasCourseLookup:
		for _, crs := range col.Courses {
			if containsInt(cl.IDs, crs.Lookup.ID) {
				return true
			}
		}
		return false
	case college.HasCourseMatching:
		for _, crs := range col.Courses {
			if (len(cl.Types) == 0 || containsStr(cl.Types, crs.Lookup.TypeCode)) &&
				(len(cl.Categories) == 0 || containsStr(cl.Categories, crs.Lookup.CategoryCode)) &&
				(len(cl.Codes) == 0 || containsStr(cl.Codes, crs.Lookup.CourseCode)) {
				return true
			}
		}
		return false
	}
	return false
}

func entityStr(col college.College, field college.EntityField) string {
	switch field {
	case college.FieldGender:
		return col.GenderAccepted
	case college.FieldTypeCode:
		return col.TypeCode
	case college.FieldOwnership:
		return col.OwnershipCode
	}
	return ""
}

func entityInt(col college.College, field college.EntityField) int {
	switch field {
	case college.FieldStateID:
		return col.State.ID
	case college.FieldCityID:
		return col.City.ID
	}
	return 0
}

func containsStr(vals []string, v string) bool {
	for _, val := range vals {
		if val == v {
			return true
		}
	}
	return false
}

func containsInt(vals []int, v int) bool {
	for _, val := range vals {
		if val == v {
			return true
		}
	}
	return false
}
