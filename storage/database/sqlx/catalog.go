// Package sqlxrepos implements the catalog vocabulary repository on sqlx.
// The vocabulary queries are plain scans with no dynamic predicates, so they
// use sqlx directly instead of the raw-query binder the directory repos use.
package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/edlane/campusdir/core/catalog"
)

type catalogRepository struct {
	db *sqlx.DB
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *sqlx.DB) *catalogRepository {
	return &catalogRepository{db: db}
}

type stateCityRow struct {
	StateID   int         `db:"state_id"`
	StateName string      `db:"state_name"`
	CityID    null.Int    `db:"city_id"`
	CityName  null.String `db:"city_name"`
}

func (repo catalogRepository) QueryStates(ctx context.Context) ([]catalog.State, error) {
	var rows []stateCityRow
	err := sqlx.SelectContext(ctx, repo.db, &rows,
		`SELECT s.id AS state_id, s.name AS state_name, c.id AS city_id, c.name AS city_name
		 FROM state_lookup s
		 LEFT JOIN city_lookup c ON c.state_id = s.id
		 ORDER BY s.name, c.name`)
	if err != nil {
		return nil, errors.Wrap(err, "querying states")
	}
	return foldStateRows(rows), nil
}

// foldStateRows groups consecutive rows into one State per state_id. States
// without cities come back as a single row with NULL city columns and keep an
// empty Cities list.
func foldStateRows(rows []stateCityRow) []catalog.State {
	var states []catalog.State
	for _, row := range rows {
		if len(states) == 0 || states[len(states)-1].ID != row.StateID {
			states = append(states, catalog.State{ID: row.StateID, Name: row.StateName, Cities: []catalog.City{}})
		}
		if !row.CityID.Valid {
			continue
		}
		last := &states[len(states)-1]
		last.Cities = append(last.Cities, catalog.City{ID: row.CityID.Int, Name: row.CityName.String})
	}
	return states
}

func (repo catalogRepository) QueryEntityTypes(ctx context.Context) ([]string, error) {
	var codes []string
	err := sqlx.SelectContext(ctx, repo.db, &codes, `SELECT code FROM entity_type_lookup ORDER BY code`)
	return codes, errors.Wrap(err, "querying entity types")
}

func (repo catalogRepository) QueryOwnershipTypes(ctx context.Context) ([]string, error) {
	var codes []string
	err := sqlx.SelectContext(ctx, repo.db, &codes, `SELECT code FROM ownership_type_lookup ORDER BY code`)
	return codes, errors.Wrap(err, "querying ownership types")
}

type courseLookupRow struct {
	ID           int    `db:"id"`
	Code         string `db:"code"`
	CourseCode   string `db:"course_code"`
	CategoryCode string `db:"category_code"`
	TypeCode     string `db:"type_code"`
}

func (repo catalogRepository) QueryCourseLookups(ctx context.Context) ([]catalog.CourseLookup, error) {
	var rows []courseLookupRow
	err := sqlx.SelectContext(ctx, repo.db, &rows,
		`SELECT id, code, course_code, category_code, type_code FROM course_lookup ORDER BY code`)
	if err != nil {
		return nil, errors.Wrap(err, "querying course lookups")
	}

	lookups := make([]catalog.CourseLookup, 0, len(rows))
	for _, row := range rows {
		lookups = append(lookups, catalog.CourseLookup{
			ID:           row.ID,
			Name:         row.Code, // raw code; display name derived upstream
			CourseCode:   row.CourseCode,
			CategoryCode: row.CategoryCode,
			TypeCode:     row.TypeCode,
		})
	}
	return lookups, nil
}
