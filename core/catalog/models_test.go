package catalog

import (
	"reflect"
	"testing"
)

func TestCourseDisplayName(t *testing.T) {
	tests := []struct {
		name       string
		courseCode string
		rawCode    string
		want       string
	}{
		{name: "plain", courseCode: "MBBS", rawCode: "General", want: "MBBS - General"},
		{name: "percent to dot", courseCode: "BTECH", rawCode: "B%Tech", want: "BTECH - B.Tech"},
		{name: "underscore to space", courseCode: "BTECH", rawCode: "Computer_Science", want: "BTECH - Computer Science"},
		{name: "both", courseCode: "MSC", rawCode: "M%Sc_Physics", want: "MSC - M.Sc Physics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseDisplayName(tt.courseCode, tt.rawCode); got != tt.want {
				t.Errorf("CourseDisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveCourseFacets(t *testing.T) {
	lookups := []CourseLookup{
		{ID: 1, CourseCode: "BTECH", CategoryCode: "ENGINEERING", TypeCode: "UG"},
		{ID: 2, CourseCode: "MTECH", CategoryCode: "ENGINEERING", TypeCode: "PG"},
		{ID: 3, CourseCode: "MBBS", CategoryCode: "MEDICAL", TypeCode: "UG"},
		{ID: 4, CourseCode: "BTECH", CategoryCode: "ENGINEERING", TypeCode: "UG"}, // duplicate projection
	}

	types, categories, codes := DeriveCourseFacets(lookups)

	wantTypes := []CourseOption{{Code: "PG", Label: "Pg"}, {Code: "UG", Label: "Ug"}}
	if !reflect.DeepEqual(types, wantTypes) {
		t.Errorf("types = %v, want %v", types, wantTypes)
	}

	wantCats := []CourseOption{{Code: "ENGINEERING", Label: "Engineering"}, {Code: "MEDICAL", Label: "Medical"}}
	if !reflect.DeepEqual(categories, wantCats) {
		t.Errorf("categories = %v, want %v", categories, wantCats)
	}

	// code labels are the codes themselves
	wantCodes := []CourseOption{{Code: "BTECH", Label: "BTECH"}, {Code: "MBBS", Label: "MBBS"}, {Code: "MTECH", Label: "MTECH"}}
	if !reflect.DeepEqual(codes, wantCodes) {
		t.Errorf("codes = %v, want %v", codes, wantCodes)
	}
}

func TestDeriveCourseFacets_empty(t *testing.T) {
	types, categories, codes := DeriveCourseFacets(nil)
	if len(types) != 0 || len(categories) != 0 || len(codes) != 0 {
		t.Errorf("DeriveCourseFacets(nil) = %v %v %v, want all empty", types, categories, codes)
	}
}
