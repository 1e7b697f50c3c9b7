package dummydb

import (
	"sync"

	"github.com/edlane/campusdir/core/account"
	"github.com/edlane/campusdir/core/catalog"
	"github.com/edlane/campusdir/core/college"
	"github.com/edlane/campusdir/core/enquiry"
	"github.com/edlane/campusdir/core/home"
)

type (
	DB struct {
		catalog *catalogTable
		college *collegeTable
		home    *homeTable
		account *accountTable
		enquiry *enquiryTable
	}

	catalogTable struct {
		sync.RWMutex
		states         []catalog.State
		entityTypes    []string
		ownershipTypes []string
		lookups        []catalog.CourseLookup
	}

	collegeTable struct {
		sync.RWMutex
		colleges []college.College
		courses  map[string][]college.Course      // by slug
		gallery  map[string][]college.GalleryImage // by slug
	}

	homeTable struct {
		sync.RWMutex
		toggles map[home.SectionName]bool
		hero    []home.HeroImage
		stats   []home.Stat
		cities  []home.CityHighlight
		logos   []home.UniversityLogo
		shorts  []home.Short
	}

	accountTable struct {
		sync.RWMutex
		table map[string]*account.Account
	}

	enquiryTable struct {
		sync.RWMutex
		table []enquiry.Enquiry
	}
)

func Open() (*DB, error) {
	db := &DB{
		catalog: &catalogTable{},
		college: &collegeTable{
			courses: make(map[string][]college.Course),
			gallery: make(map[string][]college.GalleryImage),
		},
		home:    &homeTable{toggles: make(map[home.SectionName]bool)},
		account: &accountTable{table: make(map[string]*account.Account)},
		enquiry: &enquiryTable{},
	}
	return db, nil
}

// SeedCatalog replaces the stored facet vocabulary.
func (db *DB) SeedCatalog(states []catalog.State, entityTypes, ownershipTypes []string, lookups []catalog.CourseLookup) {
	db.catalog.Lock()
	defer db.catalog.Unlock()
	db.catalog.states = states
	db.catalog.entityTypes = entityTypes
	db.catalog.ownershipTypes = ownershipTypes
	db.catalog.lookups = lookups
}

// SeedColleges replaces the stored directory entities.
func (db *DB) SeedColleges(colleges ...college.College) {
	db.college.Lock()
	defer db.college.Unlock()
	db.college.colleges = colleges
}

// SeedCourses replaces the course list of one college.
func (db *DB) SeedCourses(slug string, courses ...college.Course) {
	db.college.Lock()
	defer db.college.Unlock()
	db.college.courses[slug] = courses
}

// SeedGallery replaces the gallery of one college.
func (db *DB) SeedGallery(slug string, images ...college.GalleryImage) {
	db.college.Lock()
	defer db.college.Unlock()
	db.college.gallery[slug] = images
}

// SeedHome replaces the stored home-page content. Sections stay toggled off
// until SetToggle is called.
func (db *DB) SeedHome(hero []home.HeroImage, stats []home.Stat, cities []home.CityHighlight, logos []home.UniversityLogo, shorts []home.Short) {
	db.home.Lock()
	defer db.home.Unlock()
	db.home.hero = hero
	db.home.stats = stats
	db.home.cities = cities
	db.home.logos = logos
	db.home.shorts = shorts
}
