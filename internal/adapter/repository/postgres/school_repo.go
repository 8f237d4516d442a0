package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuitiontrust/treasury/internal/domain"
	"github.com/tuitiontrust/treasury/internal/infrastructure/metrics"
)

// SchoolRepository implements usecase.SchoolRepository.
type SchoolRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewSchoolRepository creates a new SchoolRepository. m may be nil.
func NewSchoolRepository(pool *pgxpool.Pool, m *metrics.Metrics) *SchoolRepository {
	return &SchoolRepository{
		pool:    pool,
		metrics: m,
	}
}

const schoolColumns = `id, name, wallet_address, contact_email, website_url, country, did, description, is_verified, created_at`

// ListEligible returns verified schools that have a wallet address.
func (r *SchoolRepository) ListEligible(ctx context.Context) ([]*domain.School, error) {
	r.count("list_eligible")

	rows, err := r.pool.Query(ctx,
		`SELECT `+schoolColumns+`
		 FROM schools
		 WHERE is_verified AND wallet_address <> ''
		 ORDER BY name`,
	)
	if err != nil {
		r.countError("list_eligible")
		return nil, fmt.Errorf("list eligible schools: %w", err)
	}
	defer rows.Close()

	return r.collect(rows, "list_eligible")
}

// ListVerifiedByWallets returns verified schools whose wallet is in wallets.
func (r *SchoolRepository) ListVerifiedByWallets(ctx context.Context, wallets []string) ([]*domain.School, error) {
	r.count("list_by_wallets")

	rows, err := r.pool.Query(ctx,
		`SELECT `+schoolColumns+`
		 FROM schools
		 WHERE is_verified AND wallet_address = ANY($1)`,
		wallets,
	)
	if err != nil {
		r.countError("list_by_wallets")
		return nil, fmt.Errorf("list schools by wallets: %w", err)
	}
	defer rows.Close()

	return r.collect(rows, "list_by_wallets")
}

// ExistingWallets reports which of the given wallets already have a registry
// row, verified or not.
func (r *SchoolRepository) ExistingWallets(ctx context.Context, wallets []string) (map[string]bool, error) {
	r.count("existing_wallets")

	rows, err := r.pool.Query(ctx,
		`SELECT wallet_address FROM schools WHERE wallet_address = ANY($1)`,
		wallets,
	)
	if err != nil {
		r.countError("existing_wallets")
		return nil, fmt.Errorf("check existing wallets: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var wallet string
		if err := rows.Scan(&wallet); err != nil {
			r.countError("existing_wallets")
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		existing[wallet] = true
	}

	return existing, rows.Err()
}

// Insert creates a school row.
func (r *SchoolRepository) Insert(ctx context.Context, school *domain.School) error {
	r.count("insert")

	_, err := r.pool.Exec(ctx,
		`INSERT INTO schools
		    (id, name, wallet_address, contact_email, website_url, country, did, description, is_verified)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		school.ID,
		school.Name,
		school.WalletAddress,
		school.ContactEmail,
		school.WebsiteURL,
		school.Country,
		school.DID,
		school.Description,
		school.IsVerified,
	)
	if err != nil {
		r.countError("insert")
		return fmt.Errorf("insert school: %w", err)
	}

	return nil
}

func (r *SchoolRepository) collect(rows pgx.Rows, operation string) ([]*domain.School, error) {
	schools, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.School, error) {
		var s domain.School
		err := row.Scan(
			&s.ID,
			&s.Name,
			&s.WalletAddress,
			&s.ContactEmail,
			&s.WebsiteURL,
			&s.Country,
			&s.DID,
			&s.Description,
			&s.IsVerified,
			&s.CreatedAt,
		)

		return &s, err
	})
	if err != nil {
		r.countError(operation)
		return nil, fmt.Errorf("scan schools: %w", err)
	}

	return schools, nil
}

func (r *SchoolRepository) count(operation string) {
	if r.metrics != nil {
		r.metrics.DBQueries.WithLabelValues(operation, "schools").Inc()
	}
}

func (r *SchoolRepository) countError(operation string) {
	if r.metrics != nil {
		r.metrics.DBErrors.WithLabelValues(operation).Inc()
	}
}
