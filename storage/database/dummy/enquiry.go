package dummydb

import (
	"context"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/enquiry"
)

var enquiryPKCount int

type enquiryRepository struct {
	db *enquiryTable
}

var _ enquiry.Repository = (*enquiryRepository)(nil) // interface compliance check

func NewEnquiryRepository(db *DB) enquiry.Repository {
	return &enquiryRepository{db: db.enquiry}
}

func (repo *enquiryRepository) CreateEnquiry(ctx context.Context, enq enquiry.Enquiry, exec ...core.DBExecutor) (enquiry.Enquiry, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	enquiryPKCount++
	enq.ID = enquiryPKCount
	repo.db.table = append(repo.db.table, enq)
	return enq, nil
}
