package home

// SectionName identifies a togglable home-page section.
type SectionName string

const (
	SectionHeroBanner        SectionName = "HERO_BANNER"
	SectionStats             SectionName = "STATS"
	SectionCities            SectionName = "CITIES"
	SectionUniversityMarquee SectionName = "UNIVERSITY_MARQUEE"
	SectionYouTubeShorts     SectionName = "YOUTUBE_SHORTS"
)

// AllSections lists every known section, in display order.
var AllSections = []SectionName{
	SectionHeroBanner,
	SectionStats,
	SectionCities,
	SectionUniversityMarquee,
	SectionYouTubeShorts,
}

// Known reports whether the given name is a recognized section.
func Known(name SectionName) bool {
	for _, s := range AllSections {
		if s == name {
			return true
		}
	}
	return false
}

type (
	SectionToggle struct {
		Section  SectionName `json:"section"`
		IsActive bool        `json:"isActive"`
	}

	HeroImage struct {
		Image    string `json:"image"`
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		CTAText  string `json:"ctaText"`
	}

	Stat struct {
		Key   string `json:"key"`
		Value int    `json:"value"`
	}

	CityHighlight struct {
		Name     string `json:"name"`
		Count    int    `json:"count"`
		ImageURL string `json:"imageUrl"`
	}

	UniversityLogo struct {
		Name string `json:"name"`
		Logo string `json:"logo"`
	}

	Short struct {
		ID    int    `json:"id"`
		URL   string `json:"url"`
		Title string `json:"title"`
	}

	// Page is the assembled home-page content. A section absent from Sections
	// is toggled off and its data slice is left empty.
	Page struct {
		Sections        []SectionName    `json:"sections"`
		HeroImages      []HeroImage      `json:"heroImages,omitempty"`
		Stats           map[string]int   `json:"stats,omitempty"`
		Cities          []CityHighlight  `json:"cities,omitempty"`
		UniversityLogos []UniversityLogo `json:"universityLogos,omitempty"`
		Shorts          []Short          `json:"youtubeShorts,omitempty"`
	}
)
