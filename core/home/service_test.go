package home

import (
	"context"
	"reflect"
	"testing"

	"github.com/edlane/campusdir/core"
)

type fakeRepo struct {
	toggles []SectionToggle
	set     []SectionToggle

	heroCalls, statCalls int
}

func (r *fakeRepo) QueryToggles(ctx context.Context, exec ...core.DBExecutor) ([]SectionToggle, error) {
	return r.toggles, nil
}

func (r *fakeRepo) SetToggle(ctx context.Context, toggle SectionToggle, exec ...core.DBExecutor) error {
	r.set = append(r.set, toggle)
	return nil
}

func (r *fakeRepo) QueryHeroImages(ctx context.Context, exec ...core.DBExecutor) ([]HeroImage, error) {
	r.heroCalls++
	return []HeroImage{{Image: "hero.jpg", Title: "Find your campus"}}, nil
}

func (r *fakeRepo) QueryStats(ctx context.Context, exec ...core.DBExecutor) ([]Stat, error) {
	r.statCalls++
	return []Stat{{Key: "colleges", Value: 120}, {Key: "courses", Value: 3400}}, nil
}

func (r *fakeRepo) QueryCityHighlights(ctx context.Context, exec ...core.DBExecutor) ([]CityHighlight, error) {
	return []CityHighlight{{Name: "Bangalore", Count: 42, ImageURL: "blr.jpg"}}, nil
}

func (r *fakeRepo) QueryUniversityLogos(ctx context.Context, exec ...core.DBExecutor) ([]UniversityLogo, error) {
	return []UniversityLogo{{Name: "IISc", Logo: "iisc.png"}}, nil
}

func (r *fakeRepo) QueryShorts(ctx context.Context, exec ...core.DBExecutor) ([]Short, error) {
	return []Short{{ID: 1, URL: "https://youtu.be/x", Title: "Campus tour"}}, nil
}

func TestService_GetPage_onlyActiveSections(t *testing.T) {
	repo := &fakeRepo{toggles: []SectionToggle{
		{Section: SectionHeroBanner, IsActive: true},
		{Section: SectionStats, IsActive: false},
		{Section: SectionCities, IsActive: true},
	}}
	svc := NewService(repo)

	page, err := svc.GetPage(context.Background())
	if err != nil {
		t.Fatalf("GetPage() failed: %v", err)
	}

	wantSections := []SectionName{SectionHeroBanner, SectionCities}
	if !reflect.DeepEqual(page.Sections, wantSections) {
		t.Errorf("Sections = %v, want %v", page.Sections, wantSections)
	}

	if len(page.HeroImages) != 1 {
		t.Errorf("HeroImages = %v, want 1 image", page.HeroImages)
	}
	if len(page.Cities) != 1 {
		t.Errorf("Cities = %v, want 1 highlight", page.Cities)
	}

	// content of inactive and un-stored sections is never fetched
	if page.Stats != nil {
		t.Errorf("Stats = %v, want nil", page.Stats)
	}
	if repo.statCalls != 0 {
		t.Errorf("statCalls = %d, want 0", repo.statCalls)
	}
	if page.Shorts != nil || page.UniversityLogos != nil {
		t.Errorf("un-stored sections fetched: %+v", page)
	}
}

func TestService_GetPage_statsMap(t *testing.T) {
	repo := &fakeRepo{toggles: []SectionToggle{{Section: SectionStats, IsActive: true}}}
	svc := NewService(repo)

	page, err := svc.GetPage(context.Background())
	if err != nil {
		t.Fatalf("GetPage() failed: %v", err)
	}

	want := map[string]int{"colleges": 120, "courses": 3400}
	if !reflect.DeepEqual(page.Stats, want) {
		t.Errorf("Stats = %v, want %v", page.Stats, want)
	}
}

func TestService_ToggleSection(t *testing.T) {
	repo := new(fakeRepo)
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.ToggleSection(ctx, SectionYouTubeShorts, true); err != nil {
		t.Fatalf("ToggleSection() failed: %v", err)
	}
	want := []SectionToggle{{Section: SectionYouTubeShorts, IsActive: true}}
	if !reflect.DeepEqual(repo.set, want) {
		t.Errorf("stored = %v, want %v", repo.set, want)
	}

	if err := svc.ToggleSection(ctx, "CAROUSEL", true); err != ErrUnknownSection {
		t.Errorf("ToggleSection(unknown) error = %v, want ErrUnknownSection", err)
	}
}
