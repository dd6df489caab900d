package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/Shamsiaa/ForestEye-App/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAlertService builds a service instance backed by mocks.
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *mocks.MockSMSNotifier) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	smsMock := mocks.NewMockSMSNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output quiet

	service := NewAlertService(repoMock, smsMock, logger)
	return service.(*alertService), repoMock, smsMock
}

func TestListAlerts_AttachesStationsAndSortsNewestFirst(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()

	older := &models.Alert{
		ID:               uuid.New(),
		ForestLocationID: "loc-1",
		CreatedAt:        time.Now().Add(-time.Hour),
	}
	newer := &models.Alert{
		ID:               uuid.New(),
		ForestLocationID: "loc-2",
		CreatedAt:        time.Now(),
	}
	stationsLoc1 := []models.FireStation{{ID: "st-1", Name: "North Station", Phone: "+100"}}
	stationsLoc2 := []models.FireStation{{ID: "st-2", Name: "South Station", Phone: "+200"}}

	repoMock.EXPECT().
		ListActiveAlerts(ctx, "").
		Return([]*models.Alert{older, newer}, nil)
	repoMock.EXPECT().GetStationsFromCache(ctx, "loc-1").Return(nil, nil)
	repoMock.EXPECT().GetFireStations(ctx, "loc-1").Return(stationsLoc1, nil)
	repoMock.EXPECT().SetStationsCache(ctx, "loc-1", stationsLoc1).Return(nil)
	repoMock.EXPECT().GetStationsFromCache(ctx, "loc-2").Return(nil, nil)
	repoMock.EXPECT().GetFireStations(ctx, "loc-2").Return(stationsLoc2, nil)
	repoMock.EXPECT().SetStationsCache(ctx, "loc-2", stationsLoc2).Return(nil)

	alerts, err := service.ListAlerts(ctx, "", "")

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, newer.ID, alerts[0].ID)
	assert.Equal(t, older.ID, alerts[1].ID)
	assert.Equal(t, stationsLoc2, alerts[0].FireStations)
	assert.Equal(t, stationsLoc1, alerts[1].FireStations)
}

func TestListAlerts_StationFilterDropsAlertsWithoutMatch(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()

	matching := &models.Alert{ID: uuid.New(), ForestLocationID: "loc-1", CreatedAt: time.Now()}
	other := &models.Alert{ID: uuid.New(), ForestLocationID: "loc-2", CreatedAt: time.Now()}

	repoMock.EXPECT().
		ListActiveAlerts(ctx, "forest-7").
		Return([]*models.Alert{matching, other}, nil)
	repoMock.EXPECT().
		GetStationsFromCache(ctx, "loc-1").
		Return([]models.FireStation{{ID: "st-1", Name: "North Station"}, {ID: "st-9"}}, nil)
	repoMock.EXPECT().
		GetStationsFromCache(ctx, "loc-2").
		Return([]models.FireStation{{ID: "st-9"}}, nil)

	alerts, err := service.ListAlerts(ctx, "forest-7", "st-1")

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, matching.ID, alerts[0].ID)
	// The station filter narrows the attached list down to the match.
	require.Len(t, alerts[0].FireStations, 1)
	assert.Equal(t, "st-1", alerts[0].FireStations[0].ID)
}

func TestListAlerts_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ListActiveAlerts(ctx, "").
		Return(nil, fmt.Errorf("connection refused"))

	alerts, err := service.ListAlerts(ctx, "", "")

	require.Error(t, err)
	assert.Nil(t, alerts)
}

func TestUpdateStatus_Success(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	repoMock.EXPECT().
		UpdateAlertStatus(ctx, alertID, models.StatusDismissed).
		Return(nil)

	err := service.UpdateStatus(ctx, alertID, models.StatusDismissed)
	require.NoError(t, err)
}

func TestUpdateStatus_InvalidStatus_NoRepositoryCall(t *testing.T) {
	service, _, _ := newTestAlertService(t)
	ctx := context.Background()

	// No EXPECT on the repo: validation must reject before any mutation.
	err := service.UpdateStatus(ctx, uuid.New(), "on_fire")

	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	repoMock.EXPECT().
		UpdateAlertStatus(ctx, alertID, models.StatusActive).
		Return(ErrAlertNotFound)

	err := service.UpdateStatus(ctx, alertID, models.StatusActive)
	require.ErrorIs(t, err, ErrAlertNotFound)
}

func TestDeleteAlert_NotFound(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	repoMock.EXPECT().
		DeleteAlert(ctx, alertID).
		Return(ErrAlertNotFound)

	err := service.DeleteAlert(ctx, alertID)
	require.ErrorIs(t, err, ErrAlertNotFound)
}

func TestGetFireStations_CacheHit(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	cached := []models.FireStation{{ID: "st-1", Name: "East Station", Phone: "+300"}}

	// Cache hit: the database must not be queried.
	repoMock.EXPECT().
		GetStationsFromCache(ctx, "loc-1").
		Return(cached, nil)

	stations := service.GetFireStations(ctx, "loc-1", "")
	assert.Equal(t, cached, stations)
}

func TestGetFireStations_DegradesToEmptyOnError(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetStationsFromCache(ctx, "loc-1").
		Return(nil, nil)
	repoMock.EXPECT().
		GetFireStations(ctx, "loc-1").
		Return(nil, fmt.Errorf("query timeout"))

	stations := service.GetFireStations(ctx, "loc-1", "")

	require.NotNil(t, stations)
	assert.Empty(t, stations)
}

func TestSendAlertSMS_Success(t *testing.T) {
	service, _, smsMock := newTestAlertService(t)
	ctx := context.Background()

	smsMock.EXPECT().
		Send(ctx, "FIRE ALERT! Assistance requested at North Station in Redwood (Alert ID: alert-1)").
		Return("SM123", nil)

	sid, err := service.SendAlertSMS(ctx, "alert-1", "North Station", "Redwood")

	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)
}

func TestSendAlertSMS_ClientNotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewAlertService(repoMock, nil, logger)

	sid, err := service.SendAlertSMS(context.Background(), "alert-1", "North Station", "Redwood")

	require.ErrorIs(t, err, ErrSMSUnavailable)
	assert.Empty(t, sid)
}

func TestSendAlertSMS_ProviderError(t *testing.T) {
	service, _, smsMock := newTestAlertService(t)
	ctx := context.Background()

	smsMock.EXPECT().
		Send(ctx, gomock.Any()).
		Return("", fmt.Errorf("twilio: 401 unauthorized"))

	sid, err := service.SendAlertSMS(ctx, "alert-1", "North Station", "Redwood")

	require.Error(t, err)
	assert.Empty(t, sid)
}
