package college

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/edlane/campusdir/core/catalog"
)

type (
	StateSummary struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	CitySummary struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		StateID int    `json:"stateId"`
	}

	// CourseSummary is the per-college course listing embedded in directory
	// results and detail responses.
	CourseSummary struct {
		ID     int                  `json:"id"`
		Info   null.String          `json:"info"`
		Lookup catalog.CourseLookup `json:"courseLookup"`
	}

	// College is a directory entity (college/university/institute).
	College struct {
		ID              int             `json:"id"`
		Name            string          `json:"name"`
		Slug            string          `json:"slug"`
		BannerImage     null.String     `json:"bannerImage"`
		Logo            null.String     `json:"logo"`
		TypeCode        string          `json:"typeCode"`
		OwnershipCode   string          `json:"ownershipTypeCode"`
		EstablishedYear int             `json:"establishedYear"`
		Area            null.Float64    `json:"area"`
		GenderAccepted  string          `json:"genderAccepted"`
		Address         null.String     `json:"address"`
		City            CitySummary     `json:"city"`
		State           StateSummary    `json:"state"`
		Pincode         null.String     `json:"pincode"`
		Country         string          `json:"country"`
		Website         string          `json:"website"`
		Instagram       null.String     `json:"instagram"`
		Facebook        null.String     `json:"facebook"`
		Twitter         null.String     `json:"twitter"`
		Linkedin        null.String     `json:"linkedin"`
		Phone           []string        `json:"phone"`
		Email           []string        `json:"email"`
		Brochure        null.String     `json:"brochure"`
		HostelBrochure  null.String     `json:"hostelBrochure"`
		NaacGrade       null.String     `json:"naacGrade"`
		NirfRank        null.Int        `json:"nirfRank"`
		Info            null.String     `json:"info"`
		Tags            []string        `json:"tags"`
		Courses         []CourseSummary `json:"courses"`
		CreatedAt       time.Time       `json:"createdAt"` // UTC
		UpdatedAt       time.Time       `json:"updatedAt"` // UTC
	}

	CourseFee struct {
		Year   int `json:"year"`
		Amount int `json:"amount"`
	}

	// Course is the full course record served on course detail pages.
	Course struct {
		ID            int         `json:"id"`
		Name          string      `json:"name"`
		Code          string      `json:"code"`
		Category      string      `json:"category"`
		Type          string      `json:"type"`
		DurationYears int         `json:"durationYears"`
		Eligibility   []string    `json:"eligibility"`
		EntranceExams []string    `json:"entranceExams"`
		TotalFee      null.Int    `json:"totalFee"`
		MinFee        null.Int    `json:"minFee"`
		MaxFee        null.Int    `json:"maxFee"`
		Fees          []CourseFee `json:"fees"`
		Info          null.String `json:"info"`
	}

	GalleryImage struct {
		Src     string `json:"src"`
		Caption string `json:"caption"`
	}
)
