package catalog

import (
	"sort"
	"strings"

	"github.com/edlane/campusdir/core"
)

// Gender facet values are a fixed enum; they are not stored in the database.
const (
	GenderGirls = "GIRLS"
	GenderBoys  = "BOYS"
	GenderCoed  = "COED"
)

var Genders = []Gender{
	{Value: GenderGirls, Label: "Girls"},
	{Value: GenderBoys, Label: "Boys"},
	{Value: GenderCoed, Label: "Co-Ed"},
}

type (
	Gender struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}

	City struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	// State owns its cities; a city belongs to exactly one state.
	State struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Cities []City `json:"cities"`
	}

	// TypeOption is an entity-type or ownership-type facet value.
	TypeOption struct {
		Code  string `json:"code"`
		Label string `json:"label"`
	}

	// CourseOption is a derived course facet value (type, category or code).
	CourseOption struct {
		Code  string `json:"code"`
		Label string `json:"label"`
	}

	// CourseLookup is the finest-grained course facet: one row per
	// (courseCode, categoryCode, typeCode) combination.
	CourseLookup struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		CourseCode   string `json:"courseCode"`
		CategoryCode string `json:"categoryCode"`
		TypeCode     string `json:"typeCode"`
	}

	// Catalog is the read-only facet vocabulary for a session.
	Catalog struct {
		Genders          []Gender       `json:"genders"`
		States           []State        `json:"states"`
		EntityTypes      []TypeOption   `json:"entityTypes"`
		OwnershipTypes   []TypeOption   `json:"ownershipTypes"`
		CourseTypes      []CourseOption `json:"courseTypes"`
		CourseCategories []CourseOption `json:"courseCategories"`
		CourseCodes      []CourseOption `json:"courseCodes"`
		CourseLookups    []CourseLookup `json:"courseLookups"`
	}
)

// CourseDisplayName renders a lookup's display name: the course code,
// a dash, then the raw code with "%" -> "." and "_" -> " ".
func CourseDisplayName(courseCode, rawCode string) string {
	cleaned := strings.ReplaceAll(rawCode, "%", ".")
	cleaned = strings.ReplaceAll(cleaned, "_", " ")
	return courseCode + " - " + cleaned
}

// DeriveCourseFacets computes the distinct course type/category/code options
// appearing across all lookup rows, sorted by code. The coarser facets are
// strictly projections of the lookup set; they are never edited on their own.
func DeriveCourseFacets(lookups []CourseLookup) (types, categories, codes []CourseOption) {
	typeSet := make(map[string]struct{})
	catSet := make(map[string]struct{})
	codeSet := make(map[string]struct{})

	for _, cl := range lookups {
		typeSet[cl.TypeCode] = struct{}{}
		catSet[cl.CategoryCode] = struct{}{}
		codeSet[cl.CourseCode] = struct{}{}
	}

	types = labelledOptions(typeSet, core.TitleLabel)
	categories = labelledOptions(catSet, core.TitleLabel)
	codes = labelledOptions(codeSet, func(code string) string { return code })
	return types, categories, codes
}

func labelledOptions(set map[string]struct{}, label func(string) string) []CourseOption {
	opts := make([]CourseOption, 0, len(set))
	for code := range set {
		opts = append(opts, CourseOption{Code: code, Label: label(code)})
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].Code < opts[j].Code })
	return opts
}

// lookupByID returns the lookup row with the given id, if any.
func (c *Catalog) lookupByID(id int) (CourseLookup, bool) {
	for _, cl := range c.CourseLookups {
		if cl.ID == id {
			return cl, true
		}
	}
	return CourseLookup{}, false
}

// cityState returns the id of the state owning the given city, if any.
func (c *Catalog) cityState(cityID int) (int, bool) {
	for _, st := range c.States {
		for _, ct := range st.Cities {
			if ct.ID == cityID {
				return st.ID, true
			}
		}
	}
	return 0, false
}
