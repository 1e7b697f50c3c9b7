package college

import "github.com/edlane/campusdir/core/catalog"

// EntityField enumerates the directly-filterable columns of a directory
// entity. Repositories map these to storage columns.
type EntityField string

const (
	FieldGender    EntityField = "genderAccepted"
	FieldStateID   EntityField = "stateId"
	FieldCityID    EntityField = "cityId"
	FieldTypeCode  EntityField = "typeCode"
	FieldOwnership EntityField = "ownershipTypeCode"
)

type (
	// Clause is one condition of a directory predicate. The concrete types
	// below are the only clause kinds; repositories switch over them.
	Clause interface {
		clause()
	}

	// StringIn requires a string field to be one of the given values.
	StringIn struct {
		Field  EntityField
		Values []string
	}

	// IntIn requires an integer field to be one of the given values.
	IntIn struct {
		Field  EntityField
		Values []int
	}

	// HasCourseLookup requires the entity to own at least one course whose
	// lookup id is one of the given ids.
	HasCourseLookup struct {
		IDs []int
	}

	// HasCourseMatching requires the entity to own at least one course whose
	// lookup satisfies every non-empty dimension below.
	HasCourseMatching struct {
		Codes      []string
		Categories []string
		Types      []string
	}

	// Predicate selects directory entities: all clauses must hold (AND).
	// An empty clause list selects everything.
	Predicate struct {
		Clauses []Clause
	}
)

func (StringIn) clause()          {}
func (IntIn) clause()             {}
func (HasCourseLookup) clause()   {}
func (HasCourseMatching) clause() {}

// IsEmpty reports whether the predicate applies no filtering at all.
func (p Predicate) IsEmpty() bool { return len(p.Clauses) == 0 }

// BuildPredicate translates a decoded facet selection into a storage
// predicate. Each non-empty facet contributes one clause; course facets
// collapse into a single course clause, with an explicit lookup selection
// superseding the coarser course dimensions entirely.
func BuildPredicate(f catalog.Filter) Predicate {
	var p Predicate

	if len(f.Genders) > 0 {
		p.Clauses = append(p.Clauses, StringIn{Field: FieldGender, Values: f.Genders})
	}
	if len(f.States) > 0 {
		p.Clauses = append(p.Clauses, IntIn{Field: FieldStateID, Values: f.States})
	}
	if len(f.Cities) > 0 {
		p.Clauses = append(p.Clauses, IntIn{Field: FieldCityID, Values: f.Cities})
	}
	if len(f.EntityTypes) > 0 {
		p.Clauses = append(p.Clauses, StringIn{Field: FieldTypeCode, Values: f.EntityTypes})
	}
	if len(f.OwnershipTypes) > 0 {
		p.Clauses = append(p.Clauses, StringIn{Field: FieldOwnership, Values: f.OwnershipTypes})
	}

	if len(f.CourseLookups) > 0 {
		// the most specific course facet wins; coarser ones are ignored
		p.Clauses = append(p.Clauses, HasCourseLookup{IDs: f.CourseLookups})
	} else if len(f.CourseCodes) > 0 || len(f.CourseCategories) > 0 || len(f.CourseTypes) > 0 {
		p.Clauses = append(p.Clauses, HasCourseMatching{
			Codes:      f.CourseCodes,
			Categories: f.CourseCategories,
			Types:      f.CourseTypes,
		})
	}

	return p
}
