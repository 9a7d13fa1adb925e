package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"memberorg/internal/delivery/http/helpers"
	"memberorg/internal/delivery/http/middleware"
	"memberorg/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSettingsService implements domain.SettingsService for handler tests.
type fakeSettingsService struct {
	saveErr         error
	lastSaved       *domain.SettingsPeriod
	lastSaveActor   string
	listErr         error
	listResult      []*domain.SettingsPeriod
	getActiveErr    error
	getActive       *domain.SettingsPeriod
	deleteErr       error
	lastDeletedID   string
	lastDeleteActor string
}

func (f *fakeSettingsService) Save(ctx context.Context, s *domain.SettingsPeriod, actorID string) error {
	f.lastSaved = s
	f.lastSaveActor = actorID
	return f.saveErr
}

func (f *fakeSettingsService) ListByEventType(ctx context.Context, eventType domain.EventType) ([]*domain.SettingsPeriod, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeSettingsService) GetActive(ctx context.Context, eventType domain.EventType) (*domain.SettingsPeriod, error) {
	if f.getActiveErr != nil {
		return nil, f.getActiveErr
	}
	return f.getActive, nil
}

func (f *fakeSettingsService) Delete(ctx context.Context, id, actorID string) error {
	f.lastDeletedID = id
	f.lastDeleteActor = actorID
	return f.deleteErr
}

// fakeRolloverService implements domain.RolloverService for handler tests.
type fakeRolloverService struct {
	rolloverErr     error
	rolloverResult  *domain.RolloverResult
	lastEventType   domain.EventType
	lastNewSettings *domain.SettingsPeriod
	lastActorID     string
}

func (f *fakeRolloverService) Rollover(ctx context.Context, eventType domain.EventType, newSettings *domain.SettingsPeriod, actorID string) (*domain.RolloverResult, error) {
	f.lastEventType = eventType
	f.lastNewSettings = newSettings
	f.lastActorID = actorID
	if f.rolloverErr != nil {
		return nil, f.rolloverErr
	}
	return f.rolloverResult, nil
}

func TestSettingsController_GetActiveSettings(t *testing.T) {
	tests := []struct {
		name       string
		eventType  string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "success", eventType: "conference", wantStatus: http.StatusOK},
		{name: "no active period", eventType: "conference", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "unknown event type", eventType: "gala", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSettingsService{
				getActiveErr: tt.fakeErr,
				getActive:    &domain.SettingsPeriod{ID: "settings-1", Name: "2026 Conference", Fee: 150, IsActive: true},
			}
			ctrl := NewSettingsController(testLogger, fake, &fakeRolloverService{})
			req := httptest.NewRequest(http.MethodGet, "/settings/"+tt.eventType+"/active", nil)
			req.SetPathValue("event_type", tt.eventType)
			rr := httptest.NewRecorder()

			ctrl.GetActiveSettings(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "settings-1", dataMap["id"])
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			}
		})
	}
}

func TestSettingsController_SaveSettings(t *testing.T) {
	body := `{
		"name": "2026 Conference",
		"start_date": "2026-01-01T00:00:00Z",
		"end_date": "2026-12-31T00:00:00Z",
		"registration_deadline": "2026-06-01T00:00:00Z",
		"fee": 150,
		"is_active": true
	}`

	t.Run("success", func(t *testing.T) {
		fake := &fakeSettingsService{}
		ctrl := NewSettingsController(testLogger, fake, &fakeRolloverService{})
		req := httptest.NewRequest(http.MethodPost, "/admin/settings/conference", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("event_type", "conference")
		req = req.WithContext(middleware.SetUserID(req.Context(), "admin-1"))
		rr := httptest.NewRecorder()

		ctrl.SaveSettings(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, fake.lastSaved)
		assert.Equal(t, domain.EventTypeConference, fake.lastSaved.EventType, "event type must come from the route")
		assert.Equal(t, "2026 Conference", fake.lastSaved.Name)
		assert.Equal(t, 150.0, fake.lastSaved.Fee)
		assert.True(t, fake.lastSaved.IsActive)
		assert.Equal(t, "admin-1", fake.lastSaveActor)
	})

	t.Run("unknown event type", func(t *testing.T) {
		fake := &fakeSettingsService{}
		ctrl := NewSettingsController(testLogger, fake, &fakeRolloverService{})
		req := httptest.NewRequest(http.MethodPost, "/admin/settings/gala", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("event_type", "gala")
		rr := httptest.NewRecorder()

		ctrl.SaveSettings(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, fake.lastSaved, "service must not be called")
	})

	t.Run("invalid dates rejected by service", func(t *testing.T) {
		fake := &fakeSettingsService{saveErr: domain.ErrInvalidInput}
		ctrl := NewSettingsController(testLogger, fake, &fakeRolloverService{})
		req := httptest.NewRequest(http.MethodPost, "/admin/settings/conference", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("event_type", "conference")
		rr := httptest.NewRecorder()

		ctrl.SaveSettings(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSettingsController_DeleteSettings(t *testing.T) {
	fake := &fakeSettingsService{}
	ctrl := NewSettingsController(testLogger, fake, &fakeRolloverService{})
	req := httptest.NewRequest(http.MethodDelete, "/admin/settings/settings-9", nil)
	req.SetPathValue("id", "settings-9")
	req = req.WithContext(middleware.SetUserID(req.Context(), "admin-1"))
	rr := httptest.NewRecorder()

	ctrl.DeleteSettings(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "settings-9", fake.lastDeletedID)
	assert.Equal(t, "admin-1", fake.lastDeleteActor)
}

func TestSettingsController_RunRollover(t *testing.T) {
	body := `{
		"new_settings": {
			"name": "2027 Conference",
			"start_date": "2027-01-15T00:00:00Z",
			"end_date": "2027-12-31T00:00:00Z",
			"registration_deadline": "2027-06-01T00:00:00Z",
			"fee": 175
		}
	}`

	tests := []struct {
		name       string
		eventType  string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
		checkCall  func(t *testing.T, fake *fakeRolloverService)
	}{
		{
			name:       "success",
			eventType:  "conference",
			body:       body,
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeRolloverService) {
				assert.Equal(t, domain.EventTypeConference, fake.lastEventType)
				assert.Equal(t, "admin-1", fake.lastActorID)
				require.NotNil(t, fake.lastNewSettings)
				assert.Equal(t, "2027 Conference", fake.lastNewSettings.Name)
				assert.Equal(t, domain.EventTypeConference, fake.lastNewSettings.EventType)
				assert.Equal(t, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC), fake.lastNewSettings.StartDate)
			},
		},
		{
			name:       "unknown event type",
			eventType:  "gala",
			body:       body,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "malformed body",
			eventType:  "conference",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "already rolled over this year",
			eventType:  "conference",
			body:       body,
			fakeErr:    &domain.AlreadyRolledOverError{Year: 2027},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
		{
			name:       "service error",
			eventType:  "conference",
			body:       body,
			fakeErr:    errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRolloverService{
				rolloverErr: tt.fakeErr,
				rolloverResult: &domain.RolloverResult{
					ArchiveID:          "arch-new",
					RegistrationsMoved: 12,
					AttendeesMoved:     30,
				},
			}
			ctrl := NewSettingsController(testLogger, &fakeSettingsService{}, fake)
			req := httptest.NewRequest(http.MethodPost, "/admin/rollover/"+tt.eventType, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("event_type", tt.eventType)
			req = req.WithContext(middleware.SetUserID(req.Context(), "admin-1"))
			rr := httptest.NewRecorder()

			ctrl.RunRollover(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				assert.Equal(t, "arch-new", dataMap["archive_id"])
				assert.Equal(t, float64(12), dataMap["registrations_moved"])
				if tt.checkCall != nil {
					tt.checkCall(t, fake)
				}
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			}
		})
	}
}
