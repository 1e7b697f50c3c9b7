package home

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/edlane/campusdir/core"
)

var ErrUnknownSection = errors.New("unknown home page section")

type (
	Repository interface {
		// QueryToggles returns the stored section toggles. A section with no
		// stored row is off.
		QueryToggles(ctx context.Context, exec ...core.DBExecutor) ([]SectionToggle, error)
		SetToggle(ctx context.Context, toggle SectionToggle, exec ...core.DBExecutor) error
		QueryHeroImages(ctx context.Context, exec ...core.DBExecutor) ([]HeroImage, error)
		QueryStats(ctx context.Context, exec ...core.DBExecutor) ([]Stat, error)
		QueryCityHighlights(ctx context.Context, exec ...core.DBExecutor) ([]CityHighlight, error)
		QueryUniversityLogos(ctx context.Context, exec ...core.DBExecutor) ([]UniversityLogo, error)
		QueryShorts(ctx context.Context, exec ...core.DBExecutor) ([]Short, error)
	}

	ServiceInterface interface {
		GetPage(ctx context.Context) (Page, error)
		ToggleSection(ctx context.Context, name SectionName, active bool) error
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetPage assembles the home page, fetching content only for active sections.
func (svc *Service) GetPage(ctx context.Context) (Page, error) {
	toggles, err := svc.repo.QueryToggles(ctx)
	if err != nil {
		return Page{}, pkgerrors.Wrap(err, "querying section toggles")
	}

	active := make(map[SectionName]bool, len(toggles))
	for _, t := range toggles {
		active[t.Section] = t.IsActive
	}

	page := Page{Sections: make([]SectionName, 0, len(AllSections))}
	for _, name := range AllSections {
		if !active[name] {
			continue
		}
		page.Sections = append(page.Sections, name)

		switch name {
		case SectionHeroBanner:
			if page.HeroImages, err = svc.repo.QueryHeroImages(ctx); err != nil {
				return Page{}, pkgerrors.Wrap(err, "querying hero images")
			}
		case SectionStats:
			stats, err := svc.repo.QueryStats(ctx)
			if err != nil {
				return Page{}, pkgerrors.Wrap(err, "querying stats")
			}
			page.Stats = make(map[string]int, len(stats))
			for _, s := range stats {
				page.Stats[s.Key] = s.Value
			}
		case SectionCities:
			if page.Cities, err = svc.repo.QueryCityHighlights(ctx); err != nil {
				return Page{}, pkgerrors.Wrap(err, "querying city highlights")
			}
		case SectionUniversityMarquee:
			if page.UniversityLogos, err = svc.repo.QueryUniversityLogos(ctx); err != nil {
				return Page{}, pkgerrors.Wrap(err, "querying university logos")
			}
		case SectionYouTubeShorts:
			if page.Shorts, err = svc.repo.QueryShorts(ctx); err != nil {
				return Page{}, pkgerrors.Wrap(err, "querying shorts")
			}
		}
	}
	return page, nil
}

// ToggleSection turns a section on or off.
func (svc *Service) ToggleSection(ctx context.Context, name SectionName, active bool) error {
	if !Known(name) {
		return ErrUnknownSection
	}
	return svc.repo.SetToggle(ctx, SectionToggle{Section: name, IsActive: active})
}
