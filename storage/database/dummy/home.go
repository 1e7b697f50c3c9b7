package dummydb

import (
	"context"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/home"
)

type homeRepository struct {
	db *homeTable
}

var _ home.Repository = (*homeRepository)(nil) // interface compliance check

func NewHomeRepository(db *DB) home.Repository {
	return &homeRepository{db: db.home}
}

func (repo *homeRepository) QueryToggles(ctx context.Context, exec ...core.DBExecutor) ([]home.SectionToggle, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	toggles := make([]home.SectionToggle, 0, len(repo.db.toggles))
	for _, name := range home.AllSections {
		if active, ok := repo.db.toggles[name]; ok {
			toggles = append(toggles, home.SectionToggle{Section: name, IsActive: active})
		}
	}
	return toggles, nil
}

func (repo *homeRepository) SetToggle(ctx context.Context, toggle home.SectionToggle, exec ...core.DBExecutor) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.toggles[toggle.Section] = toggle.IsActive
	return nil
}

func (repo *homeRepository) QueryHeroImages(ctx context.Context, exec ...core.DBExecutor) ([]home.HeroImage, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]home.HeroImage(nil), repo.db.hero...), nil
}

func (repo *homeRepository) QueryStats(ctx context.Context, exec ...core.DBExecutor) ([]home.Stat, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]home.Stat(nil), repo.db.stats...), nil
}

func (repo *homeRepository) QueryCityHighlights(ctx context.Context, exec ...core.DBExecutor) ([]home.CityHighlight, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]home.CityHighlight(nil), repo.db.cities...), nil
}

func (repo *homeRepository) QueryUniversityLogos(ctx context.Context, exec ...core.DBExecutor) ([]home.UniversityLogo, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]home.UniversityLogo(nil), repo.db.logos...), nil
}

func (repo *homeRepository) QueryShorts(ctx context.Context, exec ...core.DBExecutor) ([]home.Short, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]home.Short(nil), repo.db.shorts...), nil
}
