package inquiry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
)

// LeadArchive mirrors every accepted inquiry into a postgres table. The
// content store stays the system of record; this table exists for
// reporting queries the store's API is awkward for. Write-only from this
// service.
type LeadArchive struct {
	db     *sql.DB
	logger logger.Logger
}

func NewLeadArchive(db *sql.DB, log logger.Logger) *LeadArchive {
	return &LeadArchive{db: db, logger: log}
}

const insertInquirySQL = `
	INSERT INTO inquiries (
		id, name, email, company, phone, service_interest,
		budget, timeline, message, source_page, submitted_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (a *LeadArchive) Archive(ctx context.Context, draft Draft, submittedAt time.Time) error {
	id := uuid.New().String()

	_, err := a.db.ExecContext(ctx, insertInquirySQL,
		id,
		draft.Name,
		draft.Email,
		nullIfEmpty(draft.Company),
		nullIfEmpty(draft.Phone),
		nullIfEmpty(draft.ServiceInterest),
		nullIfEmpty(draft.Budget),
		nullIfEmpty(draft.Timeline),
		nullIfEmpty(draft.Message),
		nullIfEmpty(draft.SourcePage),
		submittedAt.UTC(),
	)
	if err != nil {
		return apperrors.NewArchiveInsertFailedError(fmt.Errorf("insert inquiry %s: %w", id, err))
	}

	a.logger.Debug("inquiry archived", map[string]interface{}{
		"id":    id,
		"email": draft.Email,
	})
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
