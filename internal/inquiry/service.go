package inquiry

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/common/metrics"
	"github.com/FaizBuildsStuff/matera-media/internal/content"
)

// Store is the content store write surface the service depends on.
type Store interface {
	Create(ctx context.Context, doc map[string]interface{}) error
}

// Archiver copies a submitted lead into the relational archive.
type Archiver interface {
	Archive(ctx context.Context, draft Draft, submittedAt time.Time) error
}

// Notifier alerts the agency inbox about a new lead.
type Notifier interface {
	NotifyLead(ctx context.Context, draft Draft, submittedAt time.Time) error
}

// CRMForwarder pushes a lead into the CRM. Returns the remote lead id.
type CRMForwarder interface {
	PushLead(ctx context.Context, draft Draft) (string, error)
}

// Service runs the inquiry submission pipeline: validate, persist to the
// content store, then fan out to the non-critical side channels. The
// content store write is the only step whose failure fails the
// submission; archive, notification and CRM errors are logged and
// swallowed.
type Service struct {
	store    Store
	archive  Archiver
	notifier Notifier
	crm      CRMForwarder
	logger   logger.Logger
}

func NewService(store Store, log logger.Logger) *Service {
	return &Service{store: store, logger: log}
}

// WithArchive attaches the optional postgres archive.
func (s *Service) WithArchive(a Archiver) *Service {
	s.archive = a
	return s
}

// WithNotifier attaches the optional lead notifier.
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// WithCRM attaches the optional CRM forwarder.
func (s *Service) WithCRM(c CRMForwarder) *Service {
	s.crm = c
	return s
}

// Submit validates the draft, persists the inquiry document and fans out
// the side effects.
func (s *Service) Submit(ctx context.Context, draft Draft) error {
	start := time.Now()

	if !draft.HasRequired() {
		metrics.InquirySubmissions.WithLabelValues("invalid").Inc()
		return apperrors.NewValidationFailedError(missingFields(draft))
	}

	submittedAt := time.Now().UTC()
	doc := BuildDocument(draft, submittedAt)

	if err := s.store.Create(ctx, doc); err != nil {
		metrics.InquirySubmissions.WithLabelValues("error").Inc()
		metrics.InquiryDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		if errors.Is(err, content.ErrNoWriteToken) {
			return apperrors.NewConfigMissingError("content.token")
		}
		var stdErr *apperrors.StandardError
		if errors.As(err, &stdErr) {
			return err
		}
		return apperrors.NewStoreCreateFailedError(err)
	}

	s.logger.Info("inquiry submitted", map[string]interface{}{
		"email":      doc["email"],
		"sourcePage": draft.SourcePage,
	})

	s.fanOut(ctx, draft, submittedAt)

	metrics.InquirySubmissions.WithLabelValues("success").Inc()
	metrics.InquiryDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	return nil
}

// fanOut runs the non-critical side writes. Each failure is logged at
// Warn; none of them can fail a submission the store already accepted.
func (s *Service) fanOut(ctx context.Context, draft Draft, submittedAt time.Time) {
	if s.archive != nil {
		if err := s.archive.Archive(ctx, draft, submittedAt); err != nil {
			s.logger.Warn("lead archive insert failed", map[string]interface{}{
				"email": draft.Email,
				"error": err.Error(),
			})
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyLead(ctx, draft, submittedAt); err != nil {
			s.logger.Warn("lead notification failed", map[string]interface{}{
				"email": draft.Email,
				"error": err.Error(),
			})
		}
	}

	if s.crm != nil {
		leadID, err := s.crm.PushLead(ctx, draft)
		if err != nil {
			s.logger.Warn("CRM lead sync failed", map[string]interface{}{
				"email": draft.Email,
				"error": err.Error(),
			})
			return
		}
		s.logger.Info("lead forwarded to CRM", map[string]interface{}{
			"email":  draft.Email,
			"leadId": leadID,
		})
	}
}

func missingFields(d Draft) string {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, "email")
	}
	return "missing required fields: " + strings.Join(missing, ", ")
}
