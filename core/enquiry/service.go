package enquiry

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/edlane/campusdir/core"
)

type (
	Repository interface {
		CreateEnquiry(ctx context.Context, enq Enquiry, exec ...core.DBExecutor) (Enquiry, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, accountID string, ne NewEnquiry) (Enquiry, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, conf: conf}
}

// Create stores the enquiry under a fresh reference number and notifies the
// enquiry inbox. Mail delivery is fire-and-forget; a failed notification
// never fails the stored enquiry.
func (svc *Service) Create(ctx context.Context, accountID string, ne NewEnquiry) (Enquiry, error) {
	enq := Enquiry{
		Reference:   uuid.New().String(),
		AccountID:   accountID,
		CollegeSlug: core.CleanString(ne.CollegeSlug, true /* lower */),
		Subject:     core.CleanString(ne.Subject),
		Message:     ne.Message,
		Phone:       core.CleanString(ne.Phone),
		CreatedAt:   time.Now().UTC(),
	}

	enq, err := svc.repo.CreateEnquiry(ctx, enq)
	if err != nil {
		return Enquiry{}, errors.Wrap(err, "creating enquiry")
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{svc.conf.EnquiryInbox},
		Subject:      "New enquiry: " + enq.Subject,
		TemplateName: "enquiry",
		TemplateData: enq,
	})
	return enq, nil
}
