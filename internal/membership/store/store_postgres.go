package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"membership/internal/membership/models"
	id "membership/pkg/domain"
	"membership/pkg/platform/sentinel"
	"membership/pkg/platform/tx"
	"membership/pkg/requestcontext"
)

const applicationColumns = `id, membership_type, status, moderation_required, deleted, cancelled, anonymized,
	applicant_type, salutation, title, first_name, last_name, company_name,
	street_address, postal_code, city, country_code, email, phone, date_of_birth,
	payment_type, payment_interval_months, payment_amount_cents,
	iban, bic, bank_name, bank_code, bank_account,
	donation_receipt, first_payment_date, created_at`

const insertApplication = `INSERT INTO membership_applications (` + applicationColumns + `, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)`

const updateApplication = `UPDATE membership_applications SET
	membership_type = $2, status = $3, moderation_required = $4, deleted = $5, cancelled = $6, anonymized = $7,
	applicant_type = $8, salutation = $9, title = $10, first_name = $11, last_name = $12, company_name = $13,
	street_address = $14, postal_code = $15, city = $16, country_code = $17, email = $18, phone = $19,
	date_of_birth = $20, payment_type = $21, payment_interval_months = $22, payment_amount_cents = $23,
	iban = $24, bic = $25, bank_name = $26, bank_code = $27, bank_account = $28,
	donation_receipt = $29, first_payment_date = $30, updated_at = $31
WHERE id = $1`

const selectApplication = `SELECT ` + applicationColumns + ` FROM membership_applications WHERE id = $1`

const selectApplicationForUpdate = selectApplication + ` FOR UPDATE`

const upsertTracking = `INSERT INTO membership_application_tracking (application_id, campaign, keyword, tracked_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (application_id) DO UPDATE SET campaign = EXCLUDED.campaign, keyword = EXCLUDED.keyword, tracked_at = EXCLUDED.tracked_at`

// PostgresStore persists applications and their campaign tracking in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed application store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Atomic runs fn in one transaction. Reads inside fn lock the selected rows.
func (s *PostgresStore) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	return tx.Run(ctx, s.db, fn)
}

// StoreApplication inserts a new application and assigns its id, or updates an
// already persisted one. Updating an unknown id yields sentinel.ErrNotFound.
func (s *PostgresStore) StoreApplication(ctx context.Context, app *models.Application) error {
	now := requestcontext.Now(ctx)
	if app.IsPersisted() {
		return s.update(ctx, app, now)
	}

	applicationID := id.NewApplicationID()
	row := toRow(app)
	row.ID = uuid.UUID(applicationID)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}

	args := append(rowArgs(row), row.CreatedAt, now)
	if _, err := tx.Conn(ctx, s.db).ExecContext(ctx, insertApplication, args...); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = row.CreatedAt
	}
	return app.AssignID(applicationID)
}

func (s *PostgresStore) update(ctx context.Context, app *models.Application, now time.Time) error {
	args := append(rowArgs(toRow(app)), now)
	res, err := tx.Conn(ctx, s.db).ExecContext(ctx, updateApplication, args...)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update application rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// GetApplicationByID loads an application. Anonymized applications yield
// sentinel.ErrAnonymized.
func (s *PostgresStore) GetApplicationByID(ctx context.Context, applicationID id.ApplicationID) (*models.Application, error) {
	query := selectApplication
	if _, inTx := tx.From(ctx); inTx {
		query = selectApplicationForUpdate
	}
	var r applicationRow
	err := tx.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(applicationID)).Scan(
		&r.ID, &r.MembershipType, &r.Status, &r.ModerationRequired, &r.Deleted, &r.Cancelled, &r.Anonymized,
		&r.ApplicantType, &r.Salutation, &r.Title, &r.FirstName, &r.LastName, &r.CompanyName,
		&r.StreetAddress, &r.PostalCode, &r.City, &r.CountryCode, &r.Email, &r.Phone, &r.DateOfBirth,
		&r.PaymentType, &r.IntervalInMonths, &r.AmountInCents,
		&r.IBAN, &r.BIC, &r.BankName, &r.BankCode, &r.BankAccount,
		&r.DonationReceipt, &r.FirstPaymentDate, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application by id: %w", err)
	}
	if r.Anonymized {
		return nil, sentinel.ErrAnonymized
	}
	return r.toApplication(), nil
}

// TrackApplication records the campaign attribution of a stored application.
func (s *PostgresStore) TrackApplication(ctx context.Context, applicationID id.ApplicationID, info models.TrackingInfo) error {
	_, err := tx.Conn(ctx, s.db).ExecContext(ctx, upsertTracking, uuid.UUID(applicationID), info.Campaign, info.Keyword, requestcontext.Now(ctx))
	if err != nil {
		return fmt.Errorf("track application: %w", err)
	}
	return nil
}

// rowArgs returns the positional arguments $1..$30 shared by insert and update.
func rowArgs(r applicationRow) []any {
	return []any{
		r.ID, r.MembershipType, r.Status, r.ModerationRequired, r.Deleted, r.Cancelled, r.Anonymized,
		r.ApplicantType, r.Salutation, r.Title, r.FirstName, r.LastName, r.CompanyName,
		r.StreetAddress, r.PostalCode, r.City, r.CountryCode, r.Email, r.Phone, r.DateOfBirth,
		r.PaymentType, r.IntervalInMonths, r.AmountInCents,
		r.IBAN, r.BIC, r.BankName, r.BankCode, r.BankAccount,
		r.DonationReceipt, r.FirstPaymentDate,
	}
}
