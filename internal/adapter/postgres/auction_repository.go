package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketplace-ads/internal/core/domain"
	"marketplace-ads/internal/core/port"
)

// AuctionRepository implements port.AuctionRepository using pgxpool for
// PostgreSQL. Campaign rows are always read fresh; spent_today is never
// cached between calls.
type AuctionRepository struct {
	pool *pgxpool.Pool
}

// NewAuctionRepository returns a new repository instance.
func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

// EligibleCampaigns returns the tenant's active campaigns of the given type
// that still have daily budget available.
func (r *AuctionRepository) EligibleCampaigns(ctx context.Context, tenantID string, campaignType domain.CampaignType) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, tenant_id, seller_id, type, status, daily_budget, spent_today, created_at, updated_at
        FROM campaigns
        WHERE tenant_id = $1
          AND type = $2
          AND status = 'active'
          AND spent_today < daily_budget`,
		tenantID, string(campaignType))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(
			&c.ID,
			&c.TenantID,
			&c.SellerID,
			&c.Type,
			&c.Status,
			&c.DailyBudget,
			&c.SpentToday,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		return c, err
	})
}

// CampaignBids returns all bids of a campaign within the tenant scope.
func (r *AuctionRepository) CampaignBids(ctx context.Context, campaignID, tenantID string) ([]domain.Bid, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, tenant_id, target_type, target_value, match_type, max_cpc, product_id, status, created_at, updated_at
        FROM bids
        WHERE campaign_id = $1 AND tenant_id = $2`,
		campaignID, tenantID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Bid, error) {
		var b domain.Bid
		err := row.Scan(
			&b.ID,
			&b.CampaignID,
			&b.TenantID,
			&b.TargetType,
			&b.TargetValue,
			&b.MatchType,
			&b.MaxCPC,
			&b.ProductID,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		return b, err
	})
}

// BidStats returns the aggregate counters for a bid. A bid without history
// yields a zero-valued document.
func (r *AuctionRepository) BidStats(ctx context.Context, tenantID, bidID string) (domain.BidStats, error) {
	s := domain.BidStats{BidID: bidID, TenantID: tenantID}
	err := r.pool.QueryRow(ctx, `
        SELECT impressions, clicks, conversions, spend
        FROM bid_stats
        WHERE bid_id = $1 AND tenant_id = $2`,
		bidID, tenantID).Scan(&s.Impressions, &s.Clicks, &s.Conversions, &s.Spend)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, nil
	}
	if err != nil {
		return domain.BidStats{}, err
	}
	return s, nil
}

// LandingPageSignals returns rating and review volume for a product, or nil
// when no signal row exists.
func (r *AuctionRepository) LandingPageSignals(ctx context.Context, tenantID, productID string) (*domain.ProductSignals, error) {
	sig := domain.ProductSignals{ProductID: productID, TenantID: tenantID}
	err := r.pool.QueryRow(ctx, `
        SELECT rating, total_reviews
        FROM product_signals
        WHERE product_id = $1 AND tenant_id = $2`,
		productID, tenantID).Scan(&sig.Rating, &sig.TotalReviews)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sig, nil
}

// RecordImpression inserts the event and bumps the bid's impression counter
// in one transaction.
func (r *AuctionRepository) RecordImpression(ctx context.Context, ev domain.AdEvent) error {
	return r.recordEvent(ctx, ev, `
        INSERT INTO bid_stats (bid_id, tenant_id, impressions)
        VALUES ($1, $2, 1)
        ON CONFLICT (bid_id) DO UPDATE SET impressions = bid_stats.impressions + 1`)
}

// RecordConversion inserts the event and bumps the bid's conversion counter.
// The campaign is never charged for conversions.
func (r *AuctionRepository) RecordConversion(ctx context.Context, ev domain.AdEvent) error {
	return r.recordEvent(ctx, ev, `
        INSERT INTO bid_stats (bid_id, tenant_id, conversions)
        VALUES ($1, $2, 1)
        ON CONFLICT (bid_id) DO UPDATE SET conversions = bid_stats.conversions + 1`)
}

func (r *AuctionRepository) recordEvent(ctx context.Context, ev domain.AdEvent, statsQuery string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	if _, err = tx.Exec(ctx, statsQuery, ev.BidID, ev.TenantID); err != nil {
		return err
	}
	err = insertEvent(ctx, tx, ev)
	return err
}

// ChargeClick charges the campaign and records the click atomically. The
// spend increment is a single guarded UPDATE: a campaign whose spent_today
// has already reached daily_budget matches no row and the whole transaction
// is rolled back with ErrInsufficientBudget. Concurrent in-flight clicks can
// overshoot the budget by at most one charge each, bounded by concurrency
// depth.
func (r *AuctionRepository) ChargeClick(ctx context.Context, ev domain.AdEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
        UPDATE campaigns
        SET spent_today = spent_today + $1, updated_at = now()
        WHERE id = $2 AND tenant_id = $3 AND spent_today < daily_budget`,
		ev.Amount, ev.CampaignID, ev.TenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = port.ErrInsufficientBudget
		return err
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO bid_stats (bid_id, tenant_id, clicks, spend)
        VALUES ($1, $2, 1, $3)
        ON CONFLICT (bid_id) DO UPDATE
        SET clicks = bid_stats.clicks + 1, spend = bid_stats.spend + $3`,
		ev.BidID, ev.TenantID, ev.Amount)
	if err != nil {
		return err
	}
	err = insertEvent(ctx, tx, ev)
	return err
}

func insertEvent(ctx context.Context, tx pgx.Tx, ev domain.AdEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	_, err := tx.Exec(ctx, `
        INSERT INTO ad_events (id, tenant_id, bid_id, campaign_id, event_type, amount, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ev.ID, ev.TenantID, ev.BidID, ev.CampaignID, string(ev.Type), ev.Amount, ev.CreatedAt)
	return err
}

// Stats returns aggregated event counts and click spend for a period,
// optionally narrowed to one campaign.
func (r *AuctionRepository) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.TenantID, req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $4"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`
        SELECT
            COALESCE(count(*) FILTER (WHERE event_type = 'impression'), 0),
            COALESCE(count(*) FILTER (WHERE event_type = 'click'), 0),
            COALESCE(count(*) FILTER (WHERE event_type = 'conversion'), 0),
            COALESCE(sum(amount) FILTER (WHERE event_type = 'click'), 0)
        FROM ad_events
        WHERE tenant_id = $1 AND created_at >= $2 AND created_at <= $3 %s`, whereCampaign)

	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Impressions, &resp.Clicks, &resp.Conversions, &resp.Spend)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
