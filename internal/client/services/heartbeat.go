package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/legacykeeper/internal/client/database"
	"github.com/dmitrijs2005/legacykeeper/internal/client/models"
	"github.com/dmitrijs2005/legacykeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/legacykeeper/internal/common"
	"github.com/dmitrijs2005/legacykeeper/internal/logging"
	"github.com/dmitrijs2005/legacykeeper/internal/timex"
)

// Keys of the heartbeat settings in the metadata store.
const (
	KeyHeartbeatEnabled     = "@legacy/heartbeat_enabled"
	KeyHeartbeatFrequency   = "@legacy/heartbeat_frequency"
	KeyHeartbeatLastConfirm = "@legacy/heartbeat_last_confirm"
)

// HeartbeatScheduler persists the check-in settings and derives the next
// check date from them. The three settings are independent keys; there is
// no transaction across them.
type HeartbeatScheduler struct {
	kv  metadata.Repository
	log logging.Logger
	now func() time.Time
	loc *time.Location
}

// HeartbeatOption customises a HeartbeatScheduler.
type HeartbeatOption func(*HeartbeatScheduler)

// WithHeartbeatClock overrides the clock used by ConfirmNow.
func WithHeartbeatClock(now func() time.Time) HeartbeatOption {
	return func(h *HeartbeatScheduler) { h.now = now }
}

// WithLocation sets the time zone whose calendar the schedule follows.
func WithLocation(loc *time.Location) HeartbeatOption {
	return func(h *HeartbeatScheduler) {
		if loc != nil {
			h.loc = loc
		}
	}
}

func NewHeartbeatScheduler(kv metadata.Repository, log logging.Logger, opts ...HeartbeatOption) *HeartbeatScheduler {
	h := &HeartbeatScheduler{
		kv:  kv,
		log: log.With("component", "heartbeat"),
		now: time.Now,
		loc: time.Local,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Init creates the settings schema on db if needed. It is idempotent and
// does not depend on the asset store having been initialised. On failure
// reads keep returning defaults and writes keep failing.
func (h *HeartbeatScheduler) Init(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return h.initFailed(ctx, errors.New("no database handle"))
	}
	if err := database.RunMigrations(ctx, db); err != nil {
		return h.initFailed(ctx, err)
	}
	h.log.Debug(ctx, "heartbeat settings ready")
	return nil
}

func (h *HeartbeatScheduler) initFailed(ctx context.Context, err error) error {
	h.log.Error(ctx, "heartbeat initialisation failed", "err", err)
	return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
}

// Location is the time zone used for date derivation.
func (h *HeartbeatScheduler) Location() *time.Location {
	return h.loc
}

func (h *HeartbeatScheduler) get(ctx context.Context, key string) string {
	v, ok, err := h.kv.Get(ctx, key)
	if err != nil {
		h.log.Error(ctx, "read setting", "key", key, "err", err)
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

func (h *HeartbeatScheduler) set(ctx context.Context, key, value string) error {
	if err := h.kv.Set(ctx, key, value); err != nil {
		h.log.Error(ctx, "write setting", "key", key, "err", err)
		return fmt.Errorf("%w: %w", common.ErrWriteFailure, err)
	}
	h.log.Debug(ctx, "setting written", "key", key, "value", value)
	return nil
}

// Enabled reports whether check-ins are switched on. Default false.
func (h *HeartbeatScheduler) Enabled(ctx context.Context) bool {
	return h.get(ctx, KeyHeartbeatEnabled) == "true"
}

func (h *HeartbeatScheduler) SetEnabled(ctx context.Context, enabled bool) error {
	return h.set(ctx, KeyHeartbeatEnabled, strconv.FormatBool(enabled))
}

// Frequency returns the check-in cadence. Default monthly.
func (h *HeartbeatScheduler) Frequency(ctx context.Context) models.Frequency {
	return models.FrequencyFromStored(h.get(ctx, KeyHeartbeatFrequency))
}

func (h *HeartbeatScheduler) SetFrequency(ctx context.Context, f models.Frequency) error {
	if _, err := models.ParseFrequency(string(f)); err != nil {
		return err
	}
	return h.set(ctx, KeyHeartbeatFrequency, string(f))
}

// LastConfirm returns the epoch-millisecond time of the last confirmation,
// or 0 if the user never confirmed.
func (h *HeartbeatScheduler) LastConfirm(ctx context.Context) int64 {
	v := h.get(ctx, KeyHeartbeatLastConfirm)
	if v == "" {
		return 0
	}
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		h.log.Warn(ctx, "malformed last confirmation", "value", v, "err", err)
		return 0
	}
	return ts
}

func (h *HeartbeatScheduler) SetLastConfirm(ctx context.Context, ts int64) error {
	return h.set(ctx, KeyHeartbeatLastConfirm, strconv.FormatInt(ts, 10))
}

// ConfirmNow records a check-in at the current time and returns its timestamp.
func (h *HeartbeatScheduler) ConfirmNow(ctx context.Context) (int64, error) {
	ts := h.now().UnixMilli()
	if err := h.SetLastConfirm(ctx, ts); err != nil {
		return 0, err
	}
	h.log.Info(ctx, "heartbeat confirmed", "at", ts)
	return ts, nil
}

// Settings reads all three settings.
func (h *HeartbeatScheduler) Settings(ctx context.Context) models.HeartbeatSettings {
	return models.HeartbeatSettings{
		Enabled:       h.Enabled(ctx),
		Frequency:     h.Frequency(ctx),
		LastConfirmAt: h.LastConfirm(ctx),
	}
}

// NextCheck derives the next check date from the stored settings. The
// boolean is false when no confirmation exists yet.
func (h *HeartbeatScheduler) NextCheck(ctx context.Context) (time.Time, bool) {
	s := h.Settings(ctx)
	return NextCheckDate(s.LastConfirmAt, s.Frequency, h.loc)
}

// NextCheckDate returns the first day of the month that follows one full
// period after lastConfirmAt, at midnight in loc. It returns false ("never")
// when lastConfirmAt <= 0. A nil loc means time.Local.
func NextCheckDate(lastConfirmAt int64, f models.Frequency, loc *time.Location) (time.Time, bool) {
	if lastConfirmAt <= 0 {
		return time.Time{}, false
	}
	last := timex.UnixMilli(lastConfirmAt, loc)
	// time.Date normalises month overflow into the next year.
	next := time.Date(last.Year(), last.Month()+time.Month(f.Months()), 1, 0, 0, 0, 0, last.Location())
	return next, true
}

// DescribeNextCheck renders NextCheckDate for display.
func DescribeNextCheck(lastConfirmAt int64, f models.Frequency, loc *time.Location) string {
	next, ok := NextCheckDate(lastConfirmAt, f, loc)
	if !ok {
		return models.Placeholder
	}
	return models.FormatDate(next)
}

// DescribeLastConfirm renders the last confirmation date for display.
func DescribeLastConfirm(lastConfirmAt int64, loc *time.Location) string {
	if lastConfirmAt <= 0 {
		return models.Placeholder
	}
	return models.FormatDate(timex.UnixMilli(lastConfirmAt, loc))
}
