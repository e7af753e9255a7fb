package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/clock"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/events"
)

type fakeFeed struct {
	byRegion map[holiday.Region][]holiday.BankHoliday
	err      error
	calls    int
}

func (f *fakeFeed) FetchBankHolidays(_ context.Context) (map[holiday.Region][]holiday.BankHoliday, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byRegion, nil
}

type fakeHolidayRepo struct {
	upserted []holiday.BankHoliday
}

func (f *fakeHolidayRepo) ListByRegion(_ context.Context, region holiday.Region, _, _ time.Time) ([]holiday.BankHoliday, error) {
	var out []holiday.BankHoliday
	for _, h := range f.upserted {
		if h.Region == region {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) List(_ context.Context, _, _ time.Time) ([]holiday.BankHoliday, error) {
	return f.upserted, nil
}

func (f *fakeHolidayRepo) Upsert(_ context.Context, hs []holiday.BankHoliday) (int, error) {
	f.upserted = append(f.upserted, hs...)
	return len(hs), nil
}

type fakeStateRepo struct {
	last    *time.Time
	readErr error
}

func (f *fakeStateRepo) LastSyncedAt(_ context.Context) (*time.Time, error) {
	return f.last, f.readErr
}

func (f *fakeStateRepo) MarkSynced(_ context.Context, at time.Time) error {
	f.last = &at
	return nil
}

func sampleFeed() map[holiday.Region][]holiday.BankHoliday {
	return map[holiday.Region][]holiday.BankHoliday{
		holiday.RegionEnglandAndWales: {
			{Date: time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC), Region: holiday.RegionEnglandAndWales, Title: "Easter Monday", Source: "gov.uk"},
		},
		holiday.RegionScotland: {
			{Date: time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), Region: holiday.RegionScotland, Title: "2nd January", Source: "gov.uk"},
		},
	}
}

func TestSync_FirstRunWritesRows(t *testing.T) {
	t.Parallel()
	feed := &fakeFeed{byRegion: sampleFeed()}
	repo := &fakeHolidayRepo{}
	state := &fakeStateRepo{}
	svc := NewService(repo, state, feed, events.NewHub(), clock.Fixed(time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)))

	got, err := svc.Sync(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, got.Skipped)
	assert.Equal(t, 2, got.RowsWritten)
	require.NotNil(t, state.last)
	assert.Equal(t, time.April, state.last.Month())
}

func TestSync_SkipsWithinSameCalendarMonth(t *testing.T) {
	t.Parallel()
	last := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)
	feed := &fakeFeed{byRegion: sampleFeed()}
	svc := NewService(&fakeHolidayRepo{}, &fakeStateRepo{last: &last}, feed, events.NewHub(), clock.Fixed(time.Date(2025, time.April, 28, 9, 0, 0, 0, time.UTC)))

	got, err := svc.Sync(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, got.Skipped)
	assert.Equal(t, 0, feed.calls)
	require.NotNil(t, got.LastSyncedAt)
	assert.Equal(t, last, *got.LastSyncedAt)
}

func TestSync_RunsAgainInNewMonth(t *testing.T) {
	t.Parallel()
	last := time.Date(2025, time.April, 28, 8, 0, 0, 0, time.UTC)
	feed := &fakeFeed{byRegion: sampleFeed()}
	state := &fakeStateRepo{last: &last}
	svc := NewService(&fakeHolidayRepo{}, state, feed, events.NewHub(), clock.Fixed(time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)))

	got, err := svc.Sync(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, got.Skipped)
	assert.Equal(t, 1, feed.calls)
	assert.Equal(t, time.May, state.last.Month())
}

func TestSync_ForceBypassesGate(t *testing.T) {
	t.Parallel()
	last := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)
	feed := &fakeFeed{byRegion: sampleFeed()}
	svc := NewService(&fakeHolidayRepo{}, &fakeStateRepo{last: &last}, feed, events.NewHub(), clock.Fixed(time.Date(2025, time.April, 28, 9, 0, 0, 0, time.UTC)))

	got, err := svc.Sync(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, got.Skipped)
	assert.Equal(t, 1, feed.calls)
}

func TestSync_FeedFailureDoesNotMarkSynced(t *testing.T) {
	t.Parallel()
	feed := &fakeFeed{err: holiday.ErrFeedUnavailable}
	state := &fakeStateRepo{}
	svc := NewService(&fakeHolidayRepo{}, state, feed, events.NewHub(), clock.Fixed(time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)))

	_, err := svc.Sync(context.Background(), false)
	assert.ErrorIs(t, err, holiday.ErrFeedUnavailable)
	assert.Nil(t, state.last)
}

func TestSync_StateLookupFailure(t *testing.T) {
	t.Parallel()
	state := &fakeStateRepo{readErr: errors.New("store unreachable")}
	svc := NewService(&fakeHolidayRepo{}, state, &fakeFeed{}, events.NewHub(), clock.Fixed(time.Now()))

	_, err := svc.Sync(context.Background(), false)
	assert.Error(t, err)
}

func TestSync_PublishesEvent(t *testing.T) {
	t.Parallel()
	hub := events.NewHub()
	ch, cleanup := hub.Subscribe(events.TopicHolidaysSynced)
	defer cleanup()

	svc := NewService(&fakeHolidayRepo{}, &fakeStateRepo{}, &fakeFeed{byRegion: sampleFeed()}, hub, clock.Fixed(time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)))
	_, err := svc.Sync(context.Background(), false)
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, events.TopicHolidaysSynced, ev.Topic)
	case <-time.After(time.Second):
		t.Fatal("expected a holidays.synced event")
	}
}

func TestList_InvalidRegion(t *testing.T) {
	t.Parallel()
	svc := NewService(&fakeHolidayRepo{}, &fakeStateRepo{}, &fakeFeed{}, events.NewHub(), clock.System())

	bad := holiday.Region("narnia")
	_, err := svc.List(context.Background(), &bad, time.Now(), time.Now())
	assert.ErrorIs(t, err, holiday.ErrInvalidRegion)
}

func TestList_FiltersByRegion(t *testing.T) {
	t.Parallel()
	repo := &fakeHolidayRepo{}
	svc := NewService(repo, &fakeStateRepo{}, &fakeFeed{byRegion: sampleFeed()}, events.NewHub(), clock.Fixed(time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)))
	_, err := svc.Sync(context.Background(), false)
	require.NoError(t, err)

	region := holiday.RegionScotland
	rows, err := svc.List(context.Background(), &region, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2nd January", rows[0].Title)
	assert.Equal(t, "scotland", rows[0].Region)
}
