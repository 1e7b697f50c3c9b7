package boiledrepos

import (
	"context"

	"github.com/friendsofgo/errors"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/enquiry"
)

type enquiryRepository struct {
	exec core.DBExecutor
}

var _ enquiry.Repository = (*enquiryRepository)(nil) // interface compliance check

func NewEnquiryRepository(exec core.DBExecutor) *enquiryRepository {
	return &enquiryRepository{exec: exec}
}

func (repo enquiryRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.exec
}

func (repo enquiryRepository) CreateEnquiry(ctx context.Context, enq enquiry.Enquiry, exec ...core.DBExecutor) (enquiry.Enquiry, error) {
	err := repo.getExec(exec).QueryRowContext(ctx,
		`INSERT INTO enquiry (reference, account_id, college_slug, subject, message, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		enq.Reference, enq.AccountID, enq.CollegeSlug, enq.Subject, enq.Message, enq.Phone, enq.CreatedAt,
	).Scan(&enq.ID)
	if err != nil {
		return enquiry.Enquiry{}, errors.Wrap(err, "inserting enquiry")
	}
	return enq, nil
}
