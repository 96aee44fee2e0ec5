package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
	"github.com/aldisetiana/posdash/backend-go/internal/report"
)

type fakeCache struct {
	entries      map[string]*domain.DailyReport
	sets         int
	invalidated  int
	invalidUUIDs []uuid.UUID
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*domain.DailyReport)}
}

func cacheKey(storeID uuid.UUID, reportDate string) string {
	return storeID.String() + "|" + reportDate
}

func (f *fakeCache) GetReport(ctx context.Context, storeID uuid.UUID, reportDate string) (*domain.DailyReport, bool, error) {
	r, ok := f.entries[cacheKey(storeID, reportDate)]
	return r, ok, nil
}

func (f *fakeCache) SetReport(ctx context.Context, r *domain.DailyReport) error {
	f.entries[cacheKey(r.StoreID, r.ReportDate)] = r
	f.sets++
	return nil
}

func (f *fakeCache) InvalidateStore(ctx context.Context, storeID uuid.UUID) error {
	f.invalidated++
	f.invalidUUIDs = append(f.invalidUUIDs, storeID)
	for key, r := range f.entries {
		if r.StoreID == storeID {
			delete(f.entries, key)
		}
	}
	return nil
}

type fakeTxRepo struct {
	txns []domain.Transaction
}

func (f *fakeTxRepo) ListDayTransactions(ctx context.Context, storeID uuid.UUID, day time.Time) ([]domain.Transaction, error) {
	return f.txns, nil
}

func (f *fakeTxRepo) SumSaleAmount(ctx context.Context, storeID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeInvRepo struct{}

func (fakeInvRepo) ListLowStock(ctx context.Context, storeID uuid.UUID, maxQty int) ([]domain.StockLevel, error) {
	return nil, nil
}

type fakeBaseRepo struct{}

func (fakeBaseRepo) UpsertMany(ctx context.Context, baselines []domain.KPIBaseline) error {
	return nil
}

func (fakeBaseRepo) ListByMetric(ctx context.Context, storeID uuid.UUID, metricName string) ([]domain.KPIBaseline, error) {
	return nil, nil
}

type fakeRepRepo struct {
	rows map[string]*domain.DailyReport
	gets int
}

func newFakeRepRepo() *fakeRepRepo {
	return &fakeRepRepo{rows: make(map[string]*domain.DailyReport)}
}

func (f *fakeRepRepo) Upsert(ctx context.Context, r *domain.DailyReport) error {
	f.rows[cacheKey(r.StoreID, r.ReportDate)] = r
	return nil
}

func (f *fakeRepRepo) Get(ctx context.Context, storeID uuid.UUID, reportDate string) (*domain.DailyReport, error) {
	f.gets++
	return f.rows[cacheKey(storeID, reportDate)], nil
}

func newCachedService(txns *fakeTxRepo, reps *fakeRepRepo, c *fakeCache) *ReportService {
	return NewReportService(txns, fakeInvRepo{}, fakeBaseRepo{}, reps, c, report.DefaultConfig())
}

func TestReportServiceCache(t *testing.T) {
	storeID := uuid.New()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("warm cache short-circuits the repository", func(t *testing.T) {
		c := newFakeCache()
		reps := newFakeRepRepo()
		cached := &domain.DailyReport{StoreID: storeID, ReportDate: "2025-06-15"}
		c.entries[cacheKey(storeID, "2025-06-15")] = cached

		got, err := newCachedService(&fakeTxRepo{}, reps, c).
			GetReport(context.Background(), storeID, "2025-06-15")
		if err != nil {
			t.Fatalf("GetReport returned error: %v", err)
		}
		if got != cached {
			t.Error("expected the cached report to be returned")
		}
		if reps.gets != 0 {
			t.Errorf("repository Get calls = %d, want 0 on a warm cache", reps.gets)
		}
	})

	t.Run("cold cache falls through and re-populates", func(t *testing.T) {
		c := newFakeCache()
		reps := newFakeRepRepo()
		stored := &domain.DailyReport{StoreID: storeID, ReportDate: "2025-06-15"}
		reps.rows[cacheKey(storeID, "2025-06-15")] = stored

		got, err := newCachedService(&fakeTxRepo{}, reps, c).
			GetReport(context.Background(), storeID, "2025-06-15")
		if err != nil {
			t.Fatalf("GetReport returned error: %v", err)
		}
		if got != stored {
			t.Error("expected the stored report to be returned")
		}
		if reps.gets != 1 {
			t.Errorf("repository Get calls = %d, want 1", reps.gets)
		}
		if c.entries[cacheKey(storeID, "2025-06-15")] != stored {
			t.Error("cache was not re-populated after the fallthrough read")
		}
	})

	t.Run("unknown report stays uncached", func(t *testing.T) {
		c := newFakeCache()

		got, err := newCachedService(&fakeTxRepo{}, newFakeRepRepo(), c).
			GetReport(context.Background(), storeID, "2025-06-15")
		if err != nil {
			t.Fatalf("GetReport returned error: %v", err)
		}
		if got != nil {
			t.Errorf("report = %+v, want nil", got)
		}
		if c.sets != 0 {
			t.Errorf("cache sets = %d, want 0 for a missing report", c.sets)
		}
	})

	t.Run("generation refreshes the cached entry", func(t *testing.T) {
		c := newFakeCache()
		stale := &domain.DailyReport{StoreID: storeID, ReportDate: "2025-06-15"}
		c.entries[cacheKey(storeID, "2025-06-15")] = stale

		emp := uuid.New()
		txns := &fakeTxRepo{txns: []domain.Transaction{{
			ID:         uuid.New(),
			StoreID:    storeID,
			EmployeeID: &emp,
			Amount:     decimal.RequireFromString("75"),
			Type:       domain.TransactionTypeSale,
		}}}

		generated, err := newCachedService(txns, newFakeRepRepo(), c).
			GenerateDaily(context.Background(), storeID, day)
		if err != nil {
			t.Fatalf("GenerateDaily returned error: %v", err)
		}

		entry := c.entries[cacheKey(storeID, "2025-06-15")]
		if entry == stale {
			t.Error("cache still holds the stale report after generation")
		}
		if entry != generated {
			t.Error("cache does not hold the freshly generated report")
		}
		if !entry.Scorecard.TotalRevenue.Equal(decimal.RequireFromString("75")) {
			t.Errorf("cached total_revenue = %s, want 75", entry.Scorecard.TotalRevenue)
		}
	})

	t.Run("invalidate drops the store's entries", func(t *testing.T) {
		c := newFakeCache()
		c.entries[cacheKey(storeID, "2025-06-15")] = &domain.DailyReport{StoreID: storeID, ReportDate: "2025-06-15"}

		svc := newCachedService(&fakeTxRepo{}, newFakeRepRepo(), c)
		if err := svc.InvalidateCache(context.Background(), storeID); err != nil {
			t.Fatalf("InvalidateCache returned error: %v", err)
		}
		if c.invalidated != 1 {
			t.Errorf("invalidations = %d, want 1", c.invalidated)
		}
		if len(c.entries) != 0 {
			t.Errorf("cache entries = %d, want 0 after invalidation", len(c.entries))
		}
	})
}
