package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/legacykeeper/internal/client/database"
	"github.com/dmitrijs2005/legacykeeper/internal/client/models"
	"github.com/dmitrijs2005/legacykeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/legacykeeper/internal/common"
	"github.com/dmitrijs2005/legacykeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKV(t *testing.T) *metadata.SQLiteRepository {
	t.Helper()
	db := openDB(t)
	require.NoError(t, database.RunMigrations(context.Background(), db))
	return metadata.NewSQLiteRepository(db)
}

func ms(y int, m time.Month, d, h int) int64 {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC).UnixMilli()
}

type brokenKV struct{ err error }

func (b brokenKV) Get(context.Context, string) (string, bool, error) { return "", false, b.err }
func (b brokenKV) Set(context.Context, string, string) error         { return b.err }

func TestHeartbeat_Defaults(t *testing.T) {
	ctx := context.Background()
	h := NewHeartbeatScheduler(newKV(t), logging.Nop(), WithLocation(time.UTC))

	assert.False(t, h.Enabled(ctx))
	assert.Equal(t, models.FrequencyMonthly, h.Frequency(ctx))
	assert.Equal(t, int64(0), h.LastConfirm(ctx))
	assert.Equal(t, models.DefaultHeartbeatSettings(), h.Settings(ctx))

	_, ok := h.NextCheck(ctx)
	assert.False(t, ok)
}

func TestHeartbeat_RoundTrip(t *testing.T) {
	ctx := context.Background()
	h := NewHeartbeatScheduler(newKV(t), logging.Nop(), WithLocation(time.UTC))

	require.NoError(t, h.SetEnabled(ctx, true))
	require.NoError(t, h.SetFrequency(ctx, models.FrequencyQuarterly))
	require.NoError(t, h.SetLastConfirm(ctx, 1720000000000))

	assert.Equal(t, models.HeartbeatSettings{
		Enabled:       true,
		Frequency:     models.FrequencyQuarterly,
		LastConfirmAt: 1720000000000,
	}, h.Settings(ctx))

	require.NoError(t, h.SetEnabled(ctx, false))
	assert.False(t, h.Enabled(ctx))
}

func TestHeartbeat_SetFrequencyRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	h := NewHeartbeatScheduler(newKV(t), logging.Nop())

	err := h.SetFrequency(ctx, models.Frequency("weekly"))
	require.ErrorIs(t, err, common.ErrInvalidFrequency)
	assert.Equal(t, models.FrequencyMonthly, h.Frequency(ctx))
}

func TestHeartbeat_UnknownStoredFrequencyIsMonthly(t *testing.T) {
	ctx := context.Background()
	kv := newKV(t)
	require.NoError(t, kv.Set(ctx, KeyHeartbeatFrequency, "yearly"))

	h := NewHeartbeatScheduler(kv, logging.Nop())
	assert.Equal(t, models.FrequencyMonthly, h.Frequency(ctx))
}

func TestHeartbeat_MalformedLastConfirm(t *testing.T) {
	ctx := context.Background()
	kv := newKV(t)
	require.NoError(t, kv.Set(ctx, KeyHeartbeatLastConfirm, "yesterday"))

	log, buf := bufferLogger(t)
	h := NewHeartbeatScheduler(kv, log)
	assert.Equal(t, int64(0), h.LastConfirm(ctx))
	assert.Contains(t, buf.String(), "malformed last confirmation")
}

func TestHeartbeat_ReadFailureFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	log, buf := bufferLogger(t)
	h := NewHeartbeatScheduler(brokenKV{err: errors.New("boom")}, log)

	assert.Equal(t, models.DefaultHeartbeatSettings(), h.Settings(ctx))
	assert.Contains(t, buf.String(), "read setting")
}

func TestHeartbeat_WriteFailure(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, database.RunMigrations(ctx, db))
	kv := metadata.NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	h := NewHeartbeatScheduler(kv, logging.Nop())
	require.ErrorIs(t, h.SetEnabled(ctx, true), common.ErrWriteFailure)
	require.ErrorIs(t, h.SetFrequency(ctx, models.FrequencyQuarterly), common.ErrWriteFailure)
	require.ErrorIs(t, h.SetLastConfirm(ctx, 1), common.ErrWriteFailure)

	ts, err := h.ConfirmNow(ctx)
	require.ErrorIs(t, err, common.ErrWriteFailure)
	assert.Equal(t, int64(0), ts)
}

func TestHeartbeat_ConfirmNow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	h := NewHeartbeatScheduler(newKV(t), logging.Nop(),
		WithHeartbeatClock(func() time.Time { return now }),
		WithLocation(time.UTC),
	)

	ts, err := h.ConfirmNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), ts)
	assert.Equal(t, ts, h.LastConfirm(ctx))

	next, ok := h.NextCheck(ctx)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), next)

	require.NoError(t, h.SetFrequency(ctx, models.FrequencyQuarterly))
	next, ok = h.NextCheck(ctx)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestNextCheckDate(t *testing.T) {
	tests := []struct {
		name string
		last int64
		freq models.Frequency
		want time.Time
		ok   bool
	}{
		{"never confirmed", 0, models.FrequencyMonthly, time.Time{}, false},
		{"negative", -5, models.FrequencyQuarterly, time.Time{}, false},
		{"july monthly", ms(2024, time.July, 15, 12), models.FrequencyMonthly, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), true},
		{"july quarterly", ms(2024, time.July, 15, 12), models.FrequencyQuarterly, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), true},
		{"december monthly rolls year", ms(2024, time.December, 31, 23), models.FrequencyMonthly, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"november quarterly rolls year", ms(2024, time.November, 3, 8), models.FrequencyQuarterly, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"first of month still advances", ms(2024, time.March, 1, 0), models.FrequencyMonthly, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), true},
		{"unknown frequency is monthly", ms(2024, time.July, 15, 12), models.Frequency("weekly"), time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextCheckDate(tt.last, tt.freq, time.UTC)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextCheckDate_FollowsLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2024-07-31 20:00 UTC is already August 1 in Tokyo.
	last := ms(2024, time.July, 31, 20)

	got, ok := NextCheckDate(last, models.FrequencyMonthly, tokyo)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, tokyo), got)

	got, ok = NextCheckDate(last, models.FrequencyMonthly, time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDescribe(t *testing.T) {
	last := ms(2024, time.July, 15, 12)

	assert.Equal(t, "2024/08/01", DescribeNextCheck(last, models.FrequencyMonthly, time.UTC))
	assert.Equal(t, "2024/10/01", DescribeNextCheck(last, models.FrequencyQuarterly, time.UTC))
	assert.Equal(t, models.Placeholder, DescribeNextCheck(0, models.FrequencyMonthly, time.UTC))

	assert.Equal(t, "2024/07/15", DescribeLastConfirm(last, time.UTC))
	assert.Equal(t, models.Placeholder, DescribeLastConfirm(0, time.UTC))
}

func TestHeartbeat_InitOnFreshDatabase(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	h := NewHeartbeatScheduler(metadata.NewSQLiteRepository(db), logging.Nop())

	require.NoError(t, h.Init(ctx, db))
	require.NoError(t, h.Init(ctx, db), "init is idempotent")

	require.NoError(t, h.SetEnabled(ctx, true))
	assert.True(t, h.Enabled(ctx))

	// The asset store sees the same schema without conflict.
	s := NewAssetStore(logging.Nop())
	require.NoError(t, s.Init(ctx, db))
	assert.True(t, h.Enabled(ctx))
}

func TestHeartbeat_InitFailure(t *testing.T) {
	ctx := context.Background()
	log, buf := bufferLogger(t)

	db := openDB(t)
	require.NoError(t, db.Close())
	h := NewHeartbeatScheduler(metadata.NewSQLiteRepository(db), log)

	require.ErrorIs(t, h.Init(ctx, db), common.ErrStorageUnavailable)
	require.ErrorIs(t, h.Init(ctx, nil), common.ErrStorageUnavailable)
	assert.Contains(t, buf.String(), "heartbeat initialisation failed")
	assert.Equal(t, models.DefaultHeartbeatSettings(), h.Settings(ctx))
}
