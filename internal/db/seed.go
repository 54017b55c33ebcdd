package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data for one tenant: a handful of campaigns across the
// three types, keyword/category/product bids, and product signals so the
// quality scorer has something to chew on. Intended for local runs only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	const tenant = "demo-tenant"

	keywords := []string{"drill", "pipe wrench", "paint roller", "cordless drill", "hammer"}
	matchTypes := []string{"exact", "phrase", "broad"}
	campaignTypes := []string{"search_sponsored", "brand_sponsored", "product_display"}

	for i := 1; i <= 6; i++ {
		campaignID := uuid.NewString()
		sellerID := fmt.Sprintf("seller-%d", (i-1)%3+1)
		campaignType := campaignTypes[(i-1)%len(campaignTypes)]
		dailyBudget := 50.00 + float64(r.Intn(10))*25
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, tenant_id, seller_id, type, status, daily_budget, spent_today, created_at, updated_at)
VALUES ($1,$2,$3,$4,'active',$5,0,now(),now()) ON CONFLICT DO NOTHING`,
			campaignID, tenant, sellerID, campaignType, dailyBudget)
		if err != nil {
			return err
		}

		for j := 1; j <= 4; j++ {
			bidID := uuid.NewString()
			productID := fmt.Sprintf("FSIN-%d%d", i, j)
			maxCPC := 0.25 + float64(r.Intn(12))*0.25

			targetType := "keyword"
			targetValue := keywords[r.Intn(len(keywords))]
			matchType := matchTypes[r.Intn(len(matchTypes))]
			switch campaignType {
			case "product_display":
				targetType = "product"
				targetValue = fmt.Sprintf("FSIN-%d%d", r.Intn(6)+1, r.Intn(4)+1)
				matchType = "broad"
			case "brand_sponsored":
				if j%2 == 0 {
					targetType = "category"
					targetValue = fmt.Sprintf("cat-%d", r.Intn(5)+1)
					matchType = "broad"
				}
			}

			_, err = pool.Exec(ctx, `INSERT INTO bids
    (id, campaign_id, tenant_id, target_type, target_value, match_type, max_cpc, product_id, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'active',now(),now()) ON CONFLICT DO NOTHING`,
				bidID, campaignID, tenant, targetType, targetValue, matchType, maxCPC, productID)
			if err != nil {
				return err
			}

			// give some bids real history so empirical CTR kicks in
			if r.Intn(2) == 0 {
				impressions := int64(500 + r.Intn(5000))
				clicks := int64(float64(impressions) * (0.005 + r.Float64()*0.045))
				_, err = pool.Exec(ctx, `INSERT INTO bid_stats
    (bid_id, tenant_id, impressions, clicks, conversions, spend)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
					bidID, tenant, impressions, clicks, clicks/10, float64(clicks)*maxCPC*0.7)
				if err != nil {
					return err
				}
			}

			rating := 2.5 + r.Float64()*2.5
			_, err = pool.Exec(ctx, `INSERT INTO product_signals
    (product_id, tenant_id, rating, total_reviews)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
				productID, tenant, rating, int64(r.Intn(300)))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
