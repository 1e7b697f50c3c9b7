package catalog

import (
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	lookups := []CourseLookup{
		{ID: 1, Name: "BTECH - CSE", CourseCode: "BTECH", CategoryCode: "ENGINEERING", TypeCode: "UG"},
		{ID: 2, Name: "MTECH - CSE", CourseCode: "MTECH", CategoryCode: "ENGINEERING", TypeCode: "PG"},
		{ID: 3, Name: "MBBS - General", CourseCode: "MBBS", CategoryCode: "MEDICAL", TypeCode: "UG"},
	}
	types, categories, codes := DeriveCourseFacets(lookups)
	return &Catalog{
		Genders: Genders,
		States: []State{
			{ID: 1, Name: "Karnataka", Cities: []City{{ID: 11, Name: "Bangalore"}, {ID: 12, Name: "Mysore"}}},
			{ID: 2, Name: "Maharashtra", Cities: []City{{ID: 21, Name: "Mumbai"}}},
		},
		EntityTypes:      []TypeOption{{Code: "UNIVERSITY", Label: "University"}, {Code: "COLLEGE", Label: "College"}},
		OwnershipTypes:   []TypeOption{{Code: "PRIVATE", Label: "Private"}, {Code: "GOVERNMENT", Label: "Government"}},
		CourseTypes:      types,
		CourseCategories: categories,
		CourseCodes:      codes,
		CourseLookups:    lookups,
	}
}

func TestFilter_simpleToggles(t *testing.T) {
	var f Filter

	f = f.ToggleGender(GenderGirls)
	if !reflect.DeepEqual(f.Genders, []string{GenderGirls}) {
		t.Errorf("ToggleGender() = %v, want [GIRLS]", f.Genders)
	}

	f = f.ToggleGender(GenderCoed)
	if !reflect.DeepEqual(f.Genders, []string{GenderGirls, GenderCoed}) {
		t.Errorf("ToggleGender() = %v, want [GIRLS COED]", f.Genders)
	}

	// toggling an active value removes it
	f = f.ToggleGender(GenderGirls)
	if !reflect.DeepEqual(f.Genders, []string{GenderCoed}) {
		t.Errorf("ToggleGender() = %v, want [COED]", f.Genders)
	}

	f = f.ToggleEntityType("UNIVERSITY").ToggleOwnershipType("PRIVATE")
	if f.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}

	if got := f.Reset(); !got.IsEmpty() {
		t.Errorf("Reset() = %+v, want empty", got)
	}
}

func TestFilter_togglesAreImmutable(t *testing.T) {
	cat := testCatalog()

	f := Filter{}.ToggleGender(GenderBoys)
	f = cat.ToggleState(f, 1)

	g := cat.ToggleState(f, 2)
	g = g.ToggleGender(GenderBoys)

	if !reflect.DeepEqual(f.States, []int{1}) {
		t.Errorf("original States = %v, want [1]", f.States)
	}
	if !reflect.DeepEqual(f.Genders, []string{GenderBoys}) {
		t.Errorf("original Genders = %v, want [BOYS]", f.Genders)
	}
}

func TestCatalog_ToggleState(t *testing.T) {
	cat := testCatalog()
	var f Filter

	f = cat.ToggleState(f, 1)
	f = f.ToggleCity(11)
	f = cat.ToggleState(f, 2)
	f = f.ToggleCity(21)

	if !reflect.DeepEqual(f.Cities, []int{11, 21}) {
		t.Fatalf("Cities = %v, want [11 21]", f.Cities)
	}

	// removing a state drops its cities only
	f = cat.ToggleState(f, 2)
	if !reflect.DeepEqual(f.States, []int{1}) {
		t.Errorf("States = %v, want [1]", f.States)
	}
	if !reflect.DeepEqual(f.Cities, []int{11}) {
		t.Errorf("Cities = %v, want [11]", f.Cities)
	}

	// removing the last state drops all cities: a city selection is only
	// meaningful under a state selection
	f = cat.ToggleState(f, 1)
	if len(f.States) != 0 {
		t.Errorf("States = %v, want empty", f.States)
	}
	if len(f.Cities) != 0 {
		t.Errorf("Cities = %v, want empty", f.Cities)
	}
}

func TestCatalog_ToggleCourseType(t *testing.T) {
	cat := testCatalog()
	var f Filter

	// select UG then a UG-only category
	f = cat.ToggleCourseType(f, "UG")
	f = cat.ToggleCourseCategory(f, "MEDICAL")

	// deselecting UG empties the type facet; empty means unconstrained, so
	// the category selection survives
	f = cat.ToggleCourseType(f, "UG")
	if len(f.CourseTypes) != 0 {
		t.Fatalf("CourseTypes = %v, want empty", f.CourseTypes)
	}
	if !reflect.DeepEqual(f.CourseCategories, []string{"MEDICAL"}) {
		t.Errorf("CourseCategories = %v, want [MEDICAL]", f.CourseCategories)
	}

	// selecting PG drops MEDICAL: no lookup pairs them
	f = cat.ToggleCourseType(f, "PG")
	if !reflect.DeepEqual(f.CourseTypes, []string{"PG"}) {
		t.Errorf("CourseTypes = %v, want [PG]", f.CourseTypes)
	}
	if len(f.CourseCategories) != 0 {
		t.Errorf("CourseCategories = %v, want empty", f.CourseCategories)
	}
}

func TestCatalog_ToggleCourseCategory(t *testing.T) {
	cat := testCatalog()
	var f Filter

	f = cat.ToggleCourseCode(f, "BTECH")
	f = f.ToggleCourseLookup(1)

	// selecting a category compatible with the selected code keeps both
	f = cat.ToggleCourseCategory(f, "ENGINEERING")
	if !reflect.DeepEqual(f.CourseCodes, []string{"BTECH"}) {
		t.Errorf("CourseCodes = %v, want [BTECH]", f.CourseCodes)
	}
	if !reflect.DeepEqual(f.CourseLookups, []int{1}) {
		t.Errorf("CourseLookups = %v, want [1]", f.CourseLookups)
	}

	// switching to an incompatible category drops code and lookup
	f = cat.ToggleCourseCategory(f, "ENGINEERING")
	f = cat.ToggleCourseCategory(f, "MEDICAL")
	if len(f.CourseCodes) != 0 {
		t.Errorf("CourseCodes = %v, want empty", f.CourseCodes)
	}
	if len(f.CourseLookups) != 0 {
		t.Errorf("CourseLookups = %v, want empty", f.CourseLookups)
	}
}

func TestCatalog_ToggleCourseCode(t *testing.T) {
	cat := testCatalog()
	var f Filter

	f = f.ToggleCourseLookup(2)
	f = cat.ToggleCourseCode(f, "MTECH")
	if !reflect.DeepEqual(f.CourseLookups, []int{2}) {
		t.Errorf("CourseLookups = %v, want [2]", f.CourseLookups)
	}

	f = cat.ToggleCourseCode(f, "MTECH")
	f = cat.ToggleCourseCode(f, "MBBS")
	if len(f.CourseLookups) != 0 {
		t.Errorf("CourseLookups = %v, want empty", f.CourseLookups)
	}
}

func TestCatalog_doubleToggleRoundTrips(t *testing.T) {
	cat := testCatalog()

	f := Filter{}.ToggleGender(GenderCoed)
	f = cat.ToggleState(f, 1)
	f = cat.ToggleCourseType(f, "UG")

	tests := []struct {
		name   string
		toggle func(Filter) Filter
	}{
		{"gender", func(f Filter) Filter { return f.ToggleGender(GenderBoys) }},
		{"state", func(f Filter) Filter { return cat.ToggleState(f, 2) }},
		{"entityType", func(f Filter) Filter { return f.ToggleEntityType("COLLEGE") }},
		{"ownershipType", func(f Filter) Filter { return f.ToggleOwnershipType("PRIVATE") }},
		{"courseType", func(f Filter) Filter { return cat.ToggleCourseType(f, "PG") }},
		{"courseCategory", func(f Filter) Filter { return cat.ToggleCourseCategory(f, "ENGINEERING") }},
		{"courseCode", func(f Filter) Filter { return cat.ToggleCourseCode(f, "BTECH") }},
		{"courseLookup", func(f Filter) Filter { return f.ToggleCourseLookup(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.toggle(tt.toggle(f)); !reflect.DeepEqual(got, f) {
				t.Errorf("double toggle = %+v, want %+v", got, f)
			}
		})
	}
}

func TestCatalog_AvailableCities(t *testing.T) {
	cat := testCatalog()
	var f Filter

	// no state selected: no city options, not "all cities"
	if got := cat.AvailableCities(f); got != nil {
		t.Errorf("AvailableCities() = %v, want nil", got)
	}

	f = cat.ToggleState(f, 1)
	want := []CityOption{
		{ID: 11, Name: "Bangalore", StateID: 1},
		{ID: 12, Name: "Mysore", StateID: 1},
	}
	if got := cat.AvailableCities(f); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableCities() = %v, want %v", got, want)
	}
}

func TestCatalog_availableCourseOptions(t *testing.T) {
	cat := testCatalog()
	var f Filter

	// nothing selected: every option is offered
	if got := cat.AvailableCourseCategories(f); !reflect.DeepEqual(got, cat.CourseCategories) {
		t.Errorf("AvailableCourseCategories() = %v, want all", got)
	}
	if got := cat.AvailableCourseCodes(f); !reflect.DeepEqual(got, cat.CourseCodes) {
		t.Errorf("AvailableCourseCodes() = %v, want all", got)
	}
	if got := cat.AvailableCourseLookups(f); !reflect.DeepEqual(got, cat.CourseLookups) {
		t.Errorf("AvailableCourseLookups() = %v, want all", got)
	}

	f = cat.ToggleCourseType(f, "PG")

	wantCats := []CourseOption{{Code: "ENGINEERING", Label: "Engineering"}}
	if got := cat.AvailableCourseCategories(f); !reflect.DeepEqual(got, wantCats) {
		t.Errorf("AvailableCourseCategories() = %v, want %v", got, wantCats)
	}

	wantCodes := []CourseOption{{Code: "MTECH", Label: "MTECH"}}
	if got := cat.AvailableCourseCodes(f); !reflect.DeepEqual(got, wantCodes) {
		t.Errorf("AvailableCourseCodes() = %v, want %v", got, wantCodes)
	}

	wantLookups := []CourseLookup{cat.CourseLookups[1]}
	if got := cat.AvailableCourseLookups(f); !reflect.DeepEqual(got, wantLookups) {
		t.Errorf("AvailableCourseLookups() = %v, want %v", got, wantLookups)
	}
}
