package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"vesrates/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) FetchRate(ctx context.Context) (domain.ProviderRate, error) {
	args := m.Called(ctx)
	fetched, _ := args.Get(0).(domain.ProviderRate)
	return fetched, args.Error(1)
}

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func manualEntry(createdAt time.Time) *domain.RateEntry {
	return &domain.RateEntry{
		AsOfDate:  time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, time.UTC),
		Rate:      40.00,
		Source:    domain.SourceManual,
		CreatedAt: createdAt,
	}
}

// --- override precedence ---

func TestRunUpdate_RealtimeSkipsInsideProtectionWindow(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	// Manual entry 30 minutes old, realtime protects for 1 hour.
	mockRates.On("GetLatest", mock.Anything).Return(manualEntry(testNow.Add(-30*time.Minute)), nil).Once()

	result, err := RunUpdate(context.Background(), "exec-1", RealtimeCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.NoError(t, err)
	require.True(t, result.Skipped)
	mockProvider.AssertNotCalled(t, "FetchRate", mock.Anything)
	mockRates.AssertNotCalled(t, "UpsertForDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunUpdate_RealtimeOverwritesAfterProtectionWindow(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	// Manual entry 90 minutes old is fair game for realtime.
	mockRates.On("GetLatest", mock.Anything).Return(manualEntry(testNow.Add(-90*time.Minute)), nil).Once()
	mockProvider.On("FetchRate", mock.Anything).Return(domain.ProviderRate{Rate: 40.01, ProviderID: "currency-api"}, nil).Once()
	mockRates.On("UpsertForDate", mock.Anything, mock.Anything, 40.01, domain.AutoSource("realtime")).Return(nil).Once()

	result, err := RunUpdate(context.Background(), "exec-2", RealtimeCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.NoError(t, err)
	require.False(t, result.Skipped)
	require.InDelta(t, 40.01, result.Rate, 1e-9)
	mockRates.AssertExpectations(t)
	mockProvider.AssertExpectations(t)
}

func TestRunUpdate_HourlyProtectsManualEntryForItsDay(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	// Manual entry from 6 hours ago, same calendar day: hourly must skip.
	mockRates.On("GetLatest", mock.Anything).Return(manualEntry(testNow.Add(-6*time.Hour)), nil).Once()

	result, err := RunUpdate(context.Background(), "exec-3", HourlyCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.NoError(t, err)
	require.True(t, result.Skipped)
	mockProvider.AssertNotCalled(t, "FetchRate", mock.Anything)
}

func TestRunUpdate_DailyOverwritesYesterdaysManualEntry(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	mockRates.On("GetLatest", mock.Anything).Return(manualEntry(testNow.Add(-24*time.Hour)), nil).Once()
	mockProvider.On("FetchRate", mock.Anything).Return(domain.ProviderRate{Rate: 40.10, ProviderID: "currency-api"}, nil).Once()
	mockNotifications.On("Insert", mock.Anything, mock.Anything).Return(nil).Maybe()
	mockRates.On("UpsertForDate", mock.Anything, mock.Anything, 40.10, domain.AutoSource("daily")).Return(nil).Once()

	result, err := RunUpdate(context.Background(), "exec-4", DailyCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.NoError(t, err)
	require.False(t, result.Skipped)
	mockRates.AssertExpectations(t)
}

// --- fetch failures ---

func TestRunUpdate_ProviderUnavailableLeavesStoredRateUntouched(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	previous := &domain.RateEntry{
		AsOfDate:  testNow.Add(-24 * time.Hour),
		Rate:      36.00,
		Source:    domain.AutoSource("daily"),
		CreatedAt: testNow.Add(-24 * time.Hour),
	}
	mockRates.On("GetLatest", mock.Anything).Return(previous, nil).Once()
	mockProvider.On("FetchRate", mock.Anything).Return(domain.ProviderRate{}, domain.ErrProviderUnavailable).Once()

	_, err := RunUpdate(context.Background(), "exec-5", RealtimeCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.ErrorIs(t, err, domain.ErrProviderUnavailable)
	mockRates.AssertNotCalled(t, "UpsertForDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockNotifications.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRunUpdate_RepositoryReadFailureAborts(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	wantErr := errors.New("connection refused")
	mockRates.On("GetLatest", mock.Anything).Return(nil, wantErr).Once()

	_, err := RunUpdate(context.Background(), "exec-6", RealtimeCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.ErrorIs(t, err, wantErr)
	mockProvider.AssertNotCalled(t, "FetchRate", mock.Anything)
}

// --- change detection ---

func TestRunUpdate_SignificantChangeCreatesNotification(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	previous := &domain.RateEntry{
		AsOfDate:  testNow,
		Rate:      36.00,
		Source:    domain.AutoSource("realtime"),
		CreatedAt: testNow.Add(-3 * time.Hour),
	}
	mockRates.On("GetLatest", mock.Anything).Return(previous, nil).Once()
	mockProvider.On("FetchRate", mock.Anything).Return(domain.ProviderRate{Rate: 36.50, ProviderID: "currency-api"}, nil).Once()
	mockNotifications.
		On("Insert", mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			n, ok := args.Get(1).(domain.ChangeNotification)
			require.True(t, ok)
			require.Equal(t, domain.NotificationRateChange, n.Type)
			require.Equal(t, domain.SeverityInfo, n.Severity)
			require.InDelta(t, 36.00, n.Metadata["previousRate"].(float64), 1e-9)
			require.InDelta(t, 36.50, n.Metadata["newRate"].(float64), 1e-9)
			require.InDelta(t, 1.3889, n.Metadata["changePercent"].(float64), 1e-3)
		}).Once()
	mockRates.On("UpsertForDate", mock.Anything, mock.Anything, 36.50, domain.AutoSource("realtime")).Return(nil).Once()

	result, err := RunUpdate(context.Background(), "exec-7", RealtimeCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.NoError(t, err)
	require.NotNil(t, result.PreviousRate)
	require.InDelta(t, 36.00, *result.PreviousRate, 1e-9)
	require.NotNil(t, result.ChangePercent)
	require.InDelta(t, 1.3889, *result.ChangePercent, 1e-3)
	mockNotifications.AssertExpectations(t)
	mockRates.AssertExpectations(t)
}

func TestRunUpdate_ChangeBelowThresholdIsSilent(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	previous := &domain.RateEntry{
		AsOfDate:  testNow,
		Rate:      36.00,
		Source:    domain.AutoSource("realtime"),
		CreatedAt: testNow.Add(-time.Hour),
	}
	mockRates.On("GetLatest", mock.Anything).Return(previous, nil).Once()
	// 0.05% move, under the 0.1% realtime threshold.
	mockProvider.On("FetchRate", mock.Anything).Return(domain.ProviderRate{Rate: 36.018, ProviderID: "currency-api"}, nil).Once()
	mockRates.On("UpsertForDate", mock.Anything, mock.Anything, 36.018, domain.AutoSource("realtime")).Return(nil).Once()

	_, err := RunUpdate(context.Background(), "exec-8", RealtimeCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.NoError(t, err)
	mockNotifications.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	mockRates.AssertExpectations(t)
}

func TestRunUpdate_FirstEverRateHasNoComparison(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	mockRates.On("GetLatest", mock.Anything).Return(nil, nil).Once()
	mockProvider.On("FetchRate", mock.Anything).Return(domain.ProviderRate{Rate: 36.42, ProviderID: "currency-api"}, nil).Once()
	mockRates.On("UpsertForDate", mock.Anything, mock.Anything, 36.42, domain.AutoSource("realtime")).Return(nil).Once()

	result, err := RunUpdate(context.Background(), "exec-9", RealtimeCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.NoError(t, err)
	require.Nil(t, result.PreviousRate)
	require.Nil(t, result.ChangePercent)
	mockNotifications.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRunUpdate_PersistFailureFailsInvocation(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockRates := new(MockRateRepository)
	mockNotifications := new(MockNotificationRepository)

	wantErr := errors.New("write failed")
	mockRates.On("GetLatest", mock.Anything).Return(nil, nil).Once()
	mockProvider.On("FetchRate", mock.Anything).Return(domain.ProviderRate{Rate: 36.42, ProviderID: "currency-api"}, nil).Once()
	mockRates.On("UpsertForDate", mock.Anything, mock.Anything, 36.42, domain.AutoSource("realtime")).Return(wantErr).Once()

	_, err := RunUpdate(context.Background(), "exec-10", RealtimeCadence, mockProvider, mockRates, mockNotifications, testNow)

	require.ErrorIs(t, err, wantErr)
}

// --- manualOverrideActive ---

func TestManualOverrideActive_IgnoresAutomatedEntries(t *testing.T) {
	entry := &domain.RateEntry{Source: domain.AutoSource("daily"), CreatedAt: testNow.Add(-time.Minute)}
	require.False(t, manualOverrideActive(entry, RealtimeCadence, testNow))
	require.False(t, manualOverrideActive(nil, RealtimeCadence, testNow))
}

func TestManualOverrideActive_SlidingWindowBoundary(t *testing.T) {
	require.True(t, manualOverrideActive(manualEntry(testNow.Add(-59*time.Minute)), RealtimeCadence, testNow))
	require.False(t, manualOverrideActive(manualEntry(testNow.Add(-time.Hour)), RealtimeCadence, testNow))
}

func TestManualOverrideActive_SameDayCrossesAtMidnight(t *testing.T) {
	lateYesterday := time.Date(2025, 3, 13, 23, 50, 0, 0, time.UTC)
	require.False(t, manualOverrideActive(manualEntry(lateYesterday), DailyCadence, testNow))

	earlyToday := time.Date(2025, 3, 14, 0, 10, 0, 0, time.UTC)
	require.True(t, manualOverrideActive(manualEntry(earlyToday), DailyCadence, testNow))
}
