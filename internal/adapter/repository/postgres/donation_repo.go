package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuitiontrust/treasury/internal/domain"
	"github.com/tuitiontrust/treasury/internal/infrastructure/metrics"
)

// DonationRepository implements usecase.DonationRepository.
type DonationRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewDonationRepository creates a new DonationRepository. m may be nil.
func NewDonationRepository(pool *pgxpool.Pool, m *metrics.Metrics) *DonationRepository {
	return &DonationRepository{
		pool:    pool,
		metrics: m,
	}
}

// ExistsByTxHash reports whether a donation with the given ledger hash is
// already recorded.
func (r *DonationRepository) ExistsByTxHash(ctx context.Context, hash string) (bool, error) {
	r.count("exists", "donations")

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM donations WHERE tx_hash = $1)`,
		hash,
	).Scan(&exists)
	if err != nil {
		r.countError("exists")
		return false, fmt.Errorf("check donation existence: %w", err)
	}

	return exists, nil
}

// Insert records a donation. The unique index on tx_hash makes this safe
// against concurrent sync runs: a second writer gets inserted=false instead
// of an error.
func (r *DonationRepository) Insert(ctx context.Context, donation *domain.Donation) (bool, error) {
	r.count("insert", "donations")

	tag, err := r.pool.Exec(ctx,
		`INSERT INTO donations
		    (id, tx_hash, sender, amount_value, currency, issuer, timestamp, explorer_url, destination_tag, raw)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (tx_hash) DO NOTHING`,
		donation.ID,
		donation.TxHash,
		donation.Sender,
		donation.AmountValue,
		donation.Currency,
		donation.Issuer,
		donation.Timestamp,
		donation.ExplorerURL,
		donation.DestinationTag,
		donation.Raw,
	)
	if err != nil {
		r.countError("insert")
		return false, fmt.Errorf("insert donation: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListRecent returns the newest recorded donations.
func (r *DonationRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Donation, error) {
	r.count("list", "donations")

	rows, err := r.pool.Query(ctx,
		`SELECT id, tx_hash, sender, amount_value, currency, issuer, timestamp, explorer_url, destination_tag, raw, created_at
		 FROM donations
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		r.countError("list")
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	donations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Donation, error) {
		var d domain.Donation
		err := row.Scan(
			&d.ID,
			&d.TxHash,
			&d.Sender,
			&d.AmountValue,
			&d.Currency,
			&d.Issuer,
			&d.Timestamp,
			&d.ExplorerURL,
			&d.DestinationTag,
			&d.Raw,
			&d.CreatedAt,
		)

		return &d, err
	})
	if err != nil {
		r.countError("list")
		return nil, fmt.Errorf("scan donations: %w", err)
	}

	return donations, nil
}

func (r *DonationRepository) count(operation, table string) {
	if r.metrics != nil {
		r.metrics.DBQueries.WithLabelValues(operation, table).Inc()
	}
}

func (r *DonationRepository) countError(operation string) {
	if r.metrics != nil {
		r.metrics.DBErrors.WithLabelValues(operation).Inc()
	}
}
