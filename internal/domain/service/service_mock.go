package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockReminderRepo *mocks.MockReminderRepo
	mockRenderer     *mocks.MockPersonaRenderer
	mockNotifier     *mocks.MockNotifier
	mockSink         *mocks.MockEventSink
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockReminderRepo: reminderRepo,
		mockRenderer:     mocks.NewMockPersonaRenderer(ctrl),
		mockNotifier:     mocks.NewMockNotifier(ctrl),
		mockSink:         mocks.NewMockEventSink(ctrl),
	}

	return
}

// testPolicy keeps test runs fast: short backoff, tight timeouts.
func testPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		RetryBackoff:    50 * time.Millisecond,
		DeliveryTimeout: time.Second,
		PastDueGrace:    30 * time.Second,
		ShutdownGrace:   time.Second,
	}
}

func newTestScheduler(t *testing.T, m allMocks, policy Policy) *scheduler {
	t.Helper()

	s := newScheduler(m.mockDataManager, m.mockRenderer, m.mockNotifier, m.mockSink, policy)
	require.NotNil(t, s)
	return s
}
