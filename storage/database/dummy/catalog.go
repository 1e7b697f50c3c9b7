package dummydb

import (
	"context"

	"github.com/edlane/campusdir/core/catalog"
)

type catalogRepository struct {
	db *catalogTable
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *DB) catalog.Repository {
	return &catalogRepository{db: db.catalog}
}

func (repo *catalogRepository) QueryStates(ctx context.Context) ([]catalog.State, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]catalog.State(nil), repo.db.states...), nil
}

func (repo *catalogRepository) QueryEntityTypes(ctx context.Context) ([]string, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]string(nil), repo.db.entityTypes...), nil
}

func (repo *catalogRepository) QueryOwnershipTypes(ctx context.Context) ([]string, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]string(nil), repo.db.ownershipTypes...), nil
}

func (repo *catalogRepository) QueryCourseLookups(ctx context.Context) ([]catalog.CourseLookup, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]catalog.CourseLookup(nil), repo.db.lookups...), nil
}
