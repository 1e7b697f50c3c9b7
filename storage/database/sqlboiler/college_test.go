package boiledrepos

import (
	"reflect"
	"strings"
	"testing"

	"github.com/edlane/campusdir/core/college"
)

func Test_renderPredicate(t *testing.T) {
	tests := []struct {
		name      string
		pred      college.Predicate
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name: "Empty predicate",
			pred: college.Predicate{},
		},
		{
			name: "String field",
			pred: college.Predicate{Clauses: []college.Clause{
				college.StringIn{Field: college.FieldGender, Values: []string{"GIRLS", "CO-ED"}},
			}},
			wantWhere: " WHERE e.gender_accepted IN ($1,$2)",
			wantArgs:  []interface{}{"GIRLS", "CO-ED"},
		},
		{
			name: "Int field",
			pred: college.Predicate{Clauses: []college.Clause{
				college.IntIn{Field: college.FieldCityID, Values: []int{11, 12}},
			}},
			wantWhere: " WHERE e.city_id IN ($1,$2)",
			wantArgs:  []interface{}{11, 12},
		},
		{
			name: "Course lookup ids",
			pred: college.Predicate{Clauses: []college.Clause{
				college.HasCourseLookup{IDs: []int{7}},
			}},
			wantWhere: " WHERE EXISTS (SELECT 1 FROM course co WHERE co.entity_id = e.id AND co.course_lookup_id IN ($1))",
			wantArgs:  []interface{}{7},
		},
		{
			name: "Course dimensions in fixed order",
			pred: college.Predicate{Clauses: []college.Clause{
				college.HasCourseMatching{Codes: []string{"BTECH"}, Types: []string{"UG"}},
			}},
			wantWhere: " WHERE EXISTS (SELECT 1 FROM course co JOIN course_lookup cl ON cl.id = co.course_lookup_id" +
				" WHERE co.entity_id = e.id AND cl.type_code IN ($1) AND cl.course_code IN ($2))",
			wantArgs: []interface{}{"UG", "BTECH"},
		},
		{
			name: "Clauses join with AND and keep placeholder numbering",
			pred: college.Predicate{Clauses: []college.Clause{
				college.StringIn{Field: college.FieldOwnership, Values: []string{"GOVERNMENT"}},
				college.IntIn{Field: college.FieldStateID, Values: []int{11, 21}},
			}},
			wantWhere: " WHERE e.ownership_type_code IN ($1) AND e.state_id IN ($2,$3)",
			wantArgs:  []interface{}{"GOVERNMENT", 11, 21},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := renderPredicate(tt.pred, 1)
			if where != tt.wantWhere {
				t.Errorf("renderPredicate() where = %q; want %q", where, tt.wantWhere)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("renderPredicate() args = %v; want %v", args, tt.wantArgs)
			}
		})
	}
}

func Test_collegeListStatement(t *testing.T) {
	pred := college.Predicate{Clauses: []college.Clause{
		college.StringIn{Field: college.FieldGender, Values: []string{"BOYS"}},
	}}
	query, args := collegeListStatement(pred, 50)

	wantSuffix := " WHERE e.gender_accepted IN ($1) ORDER BY e.id LIMIT $2"
	if !strings.HasSuffix(query, wantSuffix) {
		t.Errorf("collegeListStatement() query = %q; want suffix %q", query, wantSuffix)
	}
	if !strings.HasPrefix(query, entitySelect) {
		t.Errorf("collegeListStatement() query does not start with the entity select")
	}
	if want := []interface{}{"BOYS", 50}; !reflect.DeepEqual(args, want) {
		t.Errorf("collegeListStatement() args = %v; want %v", args, want)
	}

	query, args = collegeListStatement(college.Predicate{}, 10)
	if wantSuffix := " ORDER BY e.id LIMIT $1"; !strings.HasSuffix(query, wantSuffix) {
		t.Errorf("collegeListStatement() query = %q; want suffix %q", query, wantSuffix)
	}
	if want := []interface{}{10}; !reflect.DeepEqual(args, want) {
		t.Errorf("collegeListStatement() args = %v; want %v", args, want)
	}
}
