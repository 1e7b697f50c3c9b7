package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter keys; shared by the URL state and the listing API.
const (
	paramGender           = "gender"
	paramStates           = "states"
	paramCities           = "cities"
	paramEntityTypes      = "entityTypes"
	paramOwnershipTypes   = "ownershipTypes"
	paramCourseTypes      = "courseTypes"
	paramCourseCategories = "courseCategories"
	paramCourseCodes      = "courseCodes"
	paramCourseLookups    = "courseLookups"
)

// DecodeFilter builds a Filter from flat query parameters. Missing keys decode
// to empty facets and unrecognized keys are ignored; numeric tokens that fail
// to parse are dropped silently, never failing the whole request.
func DecodeFilter(params url.Values) Filter {
	return Filter{
		Genders:          splitList(params.Get(paramGender)),
		States:           splitIntList(params.Get(paramStates)),
		Cities:           splitIntList(params.Get(paramCities)),
		EntityTypes:      splitList(params.Get(paramEntityTypes)),
		OwnershipTypes:   splitList(params.Get(paramOwnershipTypes)),
		CourseTypes:      splitList(params.Get(paramCourseTypes)),
		CourseCategories: splitList(params.Get(paramCourseCategories)),
		CourseCodes:      splitList(params.Get(paramCourseCodes)),
		CourseLookups:    splitIntList(params.Get(paramCourseLookups)),
	}
}

// Encode renders the Filter as flat query parameters, one comma-joined value
// per non-empty facet. decode(encode(f)) == f for any filter whose string
// members are comma-free.
func (f Filter) Encode() url.Values {
	params := make(url.Values)
	setList(params, paramGender, f.Genders)
	setIntList(params, paramStates, f.States)
	setIntList(params, paramCities, f.Cities)
	setList(params, paramEntityTypes, f.EntityTypes)
	setList(params, paramOwnershipTypes, f.OwnershipTypes)
	setList(params, paramCourseTypes, f.CourseTypes)
	setList(params, paramCourseCategories, f.CourseCategories)
	setList(params, paramCourseCodes, f.CourseCodes)
	setIntList(params, paramCourseLookups, f.CourseLookups)
	return params
}

// QueryString renders the encoded filter as a URL query string.
func (f Filter) QueryString() string {
	return f.Encode().Encode()
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func splitIntList(raw string) []int {
	if raw == "" {
		return nil
	}
	var out []int
	for _, tok := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue // malformed token: drop, never fatal
		}
		out = append(out, n)
	}
	return out
}

func setList(params url.Values, key string, vals []string) {
	if len(vals) == 0 {
		return
	}
	params.Set(key, strings.Join(vals, ","))
}

func setIntList(params url.Values, key string, vals []int) {
	if len(vals) == 0 {
		return
	}
	toks := make([]string, 0, len(vals))
	for _, v := range vals {
		toks = append(toks, strconv.Itoa(v))
	}
	params.Set(key, strings.Join(toks, ","))
}
