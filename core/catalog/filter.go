package catalog

// Filter holds the current selection for each of the nine facets.
// The zero value is the all-empty (unfiltered) state.
//
// Filters are value objects: every toggle operation returns a fresh,
// internally-consistent Filter and never mutates its receiver. Callers must
// treat a Filter as immutable between operations.
type Filter struct {
	Genders          []string `json:"gender,omitempty"`
	States           []int    `json:"states,omitempty"`
	Cities           []int    `json:"cities,omitempty"`
	EntityTypes      []string `json:"entityTypes,omitempty"`
	OwnershipTypes   []string `json:"ownershipTypes,omitempty"`
	CourseTypes      []string `json:"courseTypes,omitempty"`
	CourseCategories []string `json:"courseCategories,omitempty"`
	CourseCodes      []string `json:"courseCodes,omitempty"`
	CourseLookups    []int    `json:"courseLookups,omitempty"`
}

// IsEmpty reports whether no facet has a selection.
func (f Filter) IsEmpty() bool {
	return len(f.Genders) == 0 &&
		len(f.States) == 0 &&
		len(f.Cities) == 0 &&
		len(f.EntityTypes) == 0 &&
		len(f.OwnershipTypes) == 0 &&
		len(f.CourseTypes) == 0 &&
		len(f.CourseCategories) == 0 &&
		len(f.CourseCodes) == 0 &&
		len(f.CourseLookups) == 0
}

// Reset returns the all-empty Filter.
func (f Filter) Reset() Filter {
	return Filter{}
}

// Facets without children: plain XOR, no cascading.

func (f Filter) ToggleGender(value string) Filter {
	f.Genders = toggleStr(f.Genders, value)
	return f
}

func (f Filter) ToggleEntityType(code string) Filter {
	f.EntityTypes = toggleStr(f.EntityTypes, code)
	return f
}

func (f Filter) ToggleOwnershipType(code string) Filter {
	f.OwnershipTypes = toggleStr(f.OwnershipTypes, code)
	return f
}

func (f Filter) ToggleCity(id int) Filter {
	f.Cities = toggleInt(f.Cities, id)
	return f
}

func (f Filter) ToggleCourseLookup(id int) Filter {
	f.CourseLookups = toggleInt(f.CourseLookups, id)
	return f
}

// Cascading toggles need the catalog to re-validate child facets.

// ToggleState flips the given state and keeps only the previously-selected
// cities whose owning state is still selected. An empty state selection
// therefore drops all cities: a bare city facet would be unbounded, so the
// city facet is only meaningful under a state selection.
func (c *Catalog) ToggleState(f Filter, stateID int) Filter {
	f.States = toggleInt(f.States, stateID)

	f.Cities = filterInts(f.Cities, func(cityID int) bool {
		parent, ok := c.cityState(cityID)
		return ok && containsInt(f.States, parent)
	})
	return f
}

// ToggleCourseType flips the given course type and drops any selected
// category/code/lookup that no longer has a matching lookup row. An empty
// type selection constrains nothing (unconstrained upstream).
func (c *Catalog) ToggleCourseType(f Filter, code string) Filter {
	f.CourseTypes = toggleStr(f.CourseTypes, code)

	f.CourseCategories = filterStrs(f.CourseCategories, func(cat string) bool {
		return c.anyLookup(func(cl CourseLookup) bool {
			return cl.CategoryCode == cat && matches(f.CourseTypes, cl.TypeCode)
		})
	})
	f.CourseCodes = filterStrs(f.CourseCodes, func(cd string) bool {
		return c.anyLookup(func(cl CourseLookup) bool {
			return cl.CourseCode == cd && matches(f.CourseTypes, cl.TypeCode)
		})
	})
	f.CourseLookups = filterInts(f.CourseLookups, func(id int) bool {
		cl, ok := c.lookupByID(id)
		return ok && matches(f.CourseTypes, cl.TypeCode)
	})
	return f
}

// ToggleCourseCategory flips the given category and re-validates the
// selected codes and lookups against the current types + new categories.
func (c *Catalog) ToggleCourseCategory(f Filter, code string) Filter {
	f.CourseCategories = toggleStr(f.CourseCategories, code)

	f.CourseCodes = filterStrs(f.CourseCodes, func(cd string) bool {
		return c.anyLookup(func(cl CourseLookup) bool {
			return cl.CourseCode == cd &&
				matches(f.CourseTypes, cl.TypeCode) &&
				matches(f.CourseCategories, cl.CategoryCode)
		})
	})
	f.CourseLookups = filterInts(f.CourseLookups, func(id int) bool {
		cl, ok := c.lookupByID(id)
		return ok &&
			matches(f.CourseTypes, cl.TypeCode) &&
			matches(f.CourseCategories, cl.CategoryCode)
	})
	return f
}

// ToggleCourseCode flips the given course code and re-validates the selected
// lookups against all three ancestor dimensions.
func (c *Catalog) ToggleCourseCode(f Filter, code string) Filter {
	f.CourseCodes = toggleStr(f.CourseCodes, code)

	f.CourseLookups = filterInts(f.CourseLookups, func(id int) bool {
		cl, ok := c.lookupByID(id)
		return ok &&
			matches(f.CourseTypes, cl.TypeCode) &&
			matches(f.CourseCategories, cl.CategoryCode) &&
			matches(f.CourseCodes, cl.CourseCode)
	})
	return f
}

func (c *Catalog) anyLookup(pred func(CourseLookup) bool) bool {
	for _, cl := range c.CourseLookups {
		if pred(cl) {
			return true
		}
	}
	return false
}

// Available-options derivation (read-only; drives what the UI may offer).

type CityOption struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	StateID int    `json:"stateId"`
}

// AvailableCities returns the cities owned by the currently-selected states.
// No state selected means no city options (not "all cities").
func (c *Catalog) AvailableCities(f Filter) []CityOption {
	var opts []CityOption
	for _, st := range c.States {
		if !containsInt(f.States, st.ID) {
			continue
		}
		for _, ct := range st.Cities {
			opts = append(opts, CityOption{ID: ct.ID, Name: ct.Name, StateID: st.ID})
		}
	}
	return opts
}

// AvailableCourseCategories returns the categories compatible with the
// selected course types; all of them when no type is selected.
func (c *Catalog) AvailableCourseCategories(f Filter) []CourseOption {
	if len(f.CourseTypes) == 0 {
		return c.CourseCategories
	}
	var opts []CourseOption
	for _, cat := range c.CourseCategories {
		cat := cat
		if c.anyLookup(func(cl CourseLookup) bool {
			return cl.CategoryCode == cat.Code && containsStr(f.CourseTypes, cl.TypeCode)
		}) {
			opts = append(opts, cat)
		}
	}
	return opts
}

// AvailableCourseCodes returns the course codes compatible with the selected
// types and categories; all of them when neither ancestor is selected.
func (c *Catalog) AvailableCourseCodes(f Filter) []CourseOption {
	if len(f.CourseTypes) == 0 && len(f.CourseCategories) == 0 {
		return c.CourseCodes
	}
	var opts []CourseOption
	for _, cc := range c.CourseCodes {
		cc := cc
		if c.anyLookup(func(cl CourseLookup) bool {
			return cl.CourseCode == cc.Code &&
				matches(f.CourseTypes, cl.TypeCode) &&
				matches(f.CourseCategories, cl.CategoryCode)
		}) {
			opts = append(opts, cc)
		}
	}
	return opts
}

// AvailableCourseLookups returns the lookup rows compatible with all
// currently-set ancestor dimensions; all of them when none is set.
func (c *Catalog) AvailableCourseLookups(f Filter) []CourseLookup {
	if len(f.CourseTypes) == 0 && len(f.CourseCategories) == 0 && len(f.CourseCodes) == 0 {
		return c.CourseLookups
	}
	var opts []CourseLookup
	for _, cl := range c.CourseLookups {
		if matches(f.CourseTypes, cl.TypeCode) &&
			matches(f.CourseCategories, cl.CategoryCode) &&
			matches(f.CourseCodes, cl.CourseCode) {
			opts = append(opts, cl)
		}
	}
	return opts
}

// helpers

// matches implements the empty-means-unconstrained rule for course facets.
func matches(selection []string, code string) bool {
	return len(selection) == 0 || containsStr(selection, code)
}

func containsStr(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

// toggleStr XORs v into list, returning a fresh slice (nil when emptied).
func toggleStr(list []string, v string) []string {
	out := make([]string, 0, len(list)+1)
	removed := false
	for _, s := range list {
		if s == v {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if !removed {
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func toggleInt(list []int, v int) []int {
	out := make([]int, 0, len(list)+1)
	removed := false
	for _, i := range list {
		if i == v {
			removed = true
			continue
		}
		out = append(out, i)
	}
	if !removed {
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func filterStrs(list []string, keep func(string) bool) []string {
	var out []string
	for _, s := range list {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func filterInts(list []int, keep func(int) bool) []int {
	var out []int
	for _, i := range list {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}
