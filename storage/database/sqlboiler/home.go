package boiledrepos

import (
	"context"

	"github.com/friendsofgo/errors"
	"github.com/volatiletech/sqlboiler/v4/queries"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/home"
)

type homeRepository struct {
	exec core.DBExecutor
}

var _ home.Repository = (*homeRepository)(nil) // interface compliance check

func NewHomeRepository(exec core.DBExecutor) *homeRepository {
	return &homeRepository{exec: exec}
}

func (repo homeRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.exec
}

type sectionToggleRow struct {
	Section  string `boil:"section"`
	IsActive bool   `boil:"is_active"`
}

func (repo homeRepository) QueryToggles(ctx context.Context, exec ...core.DBExecutor) ([]home.SectionToggle, error) {
	var rows []sectionToggleRow
	err := queries.Raw(`SELECT section, is_active FROM home_section_toggle`).Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying section toggles")
	}

	toggles := make([]home.SectionToggle, 0, len(rows))
	for _, row := range rows {
		toggles = append(toggles, home.SectionToggle{Section: home.SectionName(row.Section), IsActive: row.IsActive})
	}
	return toggles, nil
}

func (repo homeRepository) SetToggle(ctx context.Context, toggle home.SectionToggle, exec ...core.DBExecutor) error {
	_, err := repo.getExec(exec).ExecContext(ctx,
		`INSERT INTO home_section_toggle (section, is_active) VALUES ($1, $2)
		 ON CONFLICT (section) DO UPDATE SET is_active = EXCLUDED.is_active`,
		string(toggle.Section), toggle.IsActive,
	)
	return errors.Wrap(err, "setting section toggle")
}

type heroImageRow struct {
	Image    string `boil:"image"`
	Title    string `boil:"title"`
	Subtitle string `boil:"subtitle"`
	CTAText  string `boil:"cta_text"`
}

func (repo homeRepository) QueryHeroImages(ctx context.Context, exec ...core.DBExecutor) ([]home.HeroImage, error) {
	var rows []heroImageRow
	err := queries.Raw(`SELECT image, title, subtitle, cta_text FROM home_hero_image ORDER BY id`).
		Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying hero images")
	}

	images := make([]home.HeroImage, 0, len(rows))
	for _, row := range rows {
		images = append(images, home.HeroImage{Image: row.Image, Title: row.Title, Subtitle: row.Subtitle, CTAText: row.CTAText})
	}
	return images, nil
}

type statRow struct {
	Key   string `boil:"key"`
	Value int    `boil:"value"`
}

func (repo homeRepository) QueryStats(ctx context.Context, exec ...core.DBExecutor) ([]home.Stat, error) {
	var rows []statRow
	err := queries.Raw(`SELECT key, value FROM home_stat ORDER BY key`).Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying stats")
	}

	stats := make([]home.Stat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, home.Stat{Key: row.Key, Value: row.Value})
	}
	return stats, nil
}

type cityHighlightRow struct {
	Name     string `boil:"name"`
	Count    int    `boil:"count"`
	ImageURL string `boil:"image_url"`
}

func (repo homeRepository) QueryCityHighlights(ctx context.Context, exec ...core.DBExecutor) ([]home.CityHighlight, error) {
	var rows []cityHighlightRow
	err := queries.Raw(`SELECT name, count, image_url FROM home_city ORDER BY count DESC, name`).
		Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying city highlights")
	}

	cities := make([]home.CityHighlight, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, home.CityHighlight{Name: row.Name, Count: row.Count, ImageURL: row.ImageURL})
	}
	return cities, nil
}

type universityLogoRow struct {
	Name string `boil:"name"`
	Logo string `boil:"logo"`
}

func (repo homeRepository) QueryUniversityLogos(ctx context.Context, exec ...core.DBExecutor) ([]home.UniversityLogo, error) {
	var rows []universityLogoRow
	err := queries.Raw(`SELECT name, logo FROM home_university_logo ORDER BY id`).
		Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying university logos")
	}

	logos := make([]home.UniversityLogo, 0, len(rows))
	for _, row := range rows {
		logos = append(logos, home.UniversityLogo{Name: row.Name, Logo: row.Logo})
	}
	return logos, nil
}

type shortRow struct {
	ID    int    `boil:"id"`
	URL   string `boil:"video_url"`
	Title string `boil:"title"`
}

func (repo homeRepository) QueryShorts(ctx context.Context, exec ...core.DBExecutor) ([]home.Short, error) {
	var rows []shortRow
	err := queries.Raw(`SELECT id, video_url, title FROM home_short ORDER BY created_at DESC`).
		Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying shorts")
	}

	shorts := make([]home.Short, 0, len(rows))
	for _, row := range rows {
		shorts = append(shorts, home.Short{ID: row.ID, URL: row.URL, Title: row.Title})
	}
	return shorts, nil
}
