package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"memberorg/internal/delivery/http/helpers"
	"memberorg/internal/delivery/http/middleware"
	"memberorg/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReviewService implements domain.ReviewService for handler tests.
type fakeReviewService struct {
	listRegsErr           error
	listRegsResult        []*domain.RegistrationWithAttendees
	listRegsTotal         int
	lastListRegsEventType domain.EventType
	lastListRegsParams    domain.PaginationParams

	listNomsResult []*domain.Nomination
	listNomsTotal  int
	listAppsResult []*domain.MembershipApplication
	listAppsTotal  int

	updateStatusErr   error
	lastUpdateKind    string
	lastUpdateID      string
	lastUpdateStatus  domain.SubmissionStatus
	lastUpdateActorID string

	listBatchesErr    error
	listBatchesResult []*domain.ArchiveBatch

	snapshotErr    error
	snapshot       *domain.ArchiveSnapshot
	lastSnapshotID string
}

func (f *fakeReviewService) ListRegistrations(ctx context.Context, eventType domain.EventType, p domain.PaginationParams) ([]*domain.RegistrationWithAttendees, int, error) {
	f.lastListRegsEventType = eventType
	f.lastListRegsParams = p
	if f.listRegsErr != nil {
		return nil, 0, f.listRegsErr
	}
	return f.listRegsResult, f.listRegsTotal, nil
}

func (f *fakeReviewService) ListNominations(ctx context.Context, p domain.PaginationParams) ([]*domain.Nomination, int, error) {
	return f.listNomsResult, f.listNomsTotal, nil
}

func (f *fakeReviewService) ListMemberships(ctx context.Context, p domain.PaginationParams) ([]*domain.MembershipApplication, int, error) {
	return f.listAppsResult, f.listAppsTotal, nil
}

func (f *fakeReviewService) UpdateNominationStatus(ctx context.Context, id string, status domain.SubmissionStatus, actorID string) error {
	f.lastUpdateKind = "nomination"
	f.lastUpdateID = id
	f.lastUpdateStatus = status
	f.lastUpdateActorID = actorID
	return f.updateStatusErr
}

func (f *fakeReviewService) UpdateMembershipStatus(ctx context.Context, id string, status domain.SubmissionStatus, actorID string) error {
	f.lastUpdateKind = "membership"
	f.lastUpdateID = id
	f.lastUpdateStatus = status
	f.lastUpdateActorID = actorID
	return f.updateStatusErr
}

func (f *fakeReviewService) ListArchiveBatches(ctx context.Context, eventType domain.EventType) ([]*domain.ArchiveBatch, error) {
	if f.listBatchesErr != nil {
		return nil, f.listBatchesErr
	}
	return f.listBatchesResult, nil
}

func (f *fakeReviewService) GetArchiveSnapshot(ctx context.Context, archiveID string) (*domain.ArchiveSnapshot, error) {
	f.lastSnapshotID = archiveID
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return f.snapshot, nil
}

func TestReviewController_ListRegistrations(t *testing.T) {
	tests := []struct {
		name       string
		eventType  string
		query      string
		fakeErr    error
		total      int
		wantStatus int
		wantCode   string
		checkCall  func(t *testing.T, fake *fakeReviewService)
	}{
		{
			name:       "success with pagination",
			eventType:  "conference",
			query:      "?page=2&page_size=10",
			total:      45,
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeReviewService) {
				assert.Equal(t, domain.EventTypeConference, fake.lastListRegsEventType)
				assert.Equal(t, 2, fake.lastListRegsParams.Page)
				assert.Equal(t, 10, fake.lastListRegsParams.PageSize)
			},
		},
		{
			name:       "defaults applied",
			eventType:  "tech_conference",
			total:      3,
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeReviewService) {
				assert.Equal(t, domain.EventTypeTechConference, fake.lastListRegsEventType)
				assert.Equal(t, helpers.DefaultPage, fake.lastListRegsParams.Page)
				assert.Equal(t, helpers.DefaultPageSize, fake.lastListRegsParams.PageSize)
			},
		},
		{
			name:       "hall of fame has no registrations",
			eventType:  "hall_of_fame",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown event type",
			eventType:  "gala",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "service error",
			eventType:  "conference",
			fakeErr:    errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeReviewService{listRegsErr: tt.fakeErr, listRegsTotal: tt.total}
			ctrl := NewReviewController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/admin/registrations/"+tt.eventType+tt.query, nil)
			req.SetPathValue("event_type", tt.eventType)
			req = req.WithContext(middleware.SetUserID(req.Context(), "admin-1"))
			rr := httptest.NewRecorder()

			ctrl.ListRegistrations(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]interface{})
				require.True(t, ok, "data must be object")
				pagination, ok := dataMap["pagination"].(map[string]interface{})
				require.True(t, ok, "data.pagination must be object")
				assert.Equal(t, float64(tt.total), pagination["total"], "pagination.total")
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

func TestReviewController_ListNominations(t *testing.T) {
	fake := &fakeReviewService{
		listNomsResult: []*domain.Nomination{
			{ID: "nom-1", NomineeName: "Pat Doe", Status: domain.StatusPending},
		},
		listNomsTotal: 1,
	}
	ctrl := NewReviewController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/admin/nominations", nil)
	rr := httptest.NewRecorder()

	ctrl.ListNominations(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataMap, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	items, ok := dataMap["items"].([]interface{})
	require.True(t, ok, "data.items must be array")
	require.Len(t, items, 1)
}

func TestReviewController_UpdateNominationStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
		checkCall  func(t *testing.T, fake *fakeReviewService)
	}{
		{
			name:       "success",
			body:       `{"status":"approved"}`,
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeReviewService) {
				assert.Equal(t, "nomination", fake.lastUpdateKind)
				assert.Equal(t, "nom-1", fake.lastUpdateID)
				assert.Equal(t, domain.StatusApproved, fake.lastUpdateStatus)
				assert.Equal(t, "admin-1", fake.lastUpdateActorID)
			},
		},
		{
			name:       "invalid status",
			body:       `{"status":"archived"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationFailed,
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "not found",
			body:       `{"status":"rejected"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeReviewService{updateStatusErr: tt.fakeErr}
			ctrl := NewReviewController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "/admin/nominations/nom-1/status", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", "nom-1")
			req = req.WithContext(middleware.SetUserID(req.Context(), "admin-1"))
			rr := httptest.NewRecorder()

			ctrl.UpdateNominationStatus(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
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

func TestReviewController_UpdateMembershipStatus(t *testing.T) {
	fake := &fakeReviewService{}
	ctrl := NewReviewController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPatch, "/admin/memberships/app-7/status", bytes.NewBufferString(`{"status":"rejected"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", "app-7")
	req = req.WithContext(middleware.SetUserID(req.Context(), "admin-2"))
	rr := httptest.NewRecorder()

	ctrl.UpdateMembershipStatus(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "membership", fake.lastUpdateKind)
	assert.Equal(t, "app-7", fake.lastUpdateID)
	assert.Equal(t, domain.StatusRejected, fake.lastUpdateStatus)
	assert.Equal(t, "admin-2", fake.lastUpdateActorID)
}

func TestReviewController_ListArchiveBatches(t *testing.T) {
	tests := []struct {
		name       string
		eventType  string
		wantStatus int
	}{
		{name: "success", eventType: "conference", wantStatus: http.StatusOK},
		{name: "hall of fame allowed", eventType: "hall_of_fame", wantStatus: http.StatusOK},
		{name: "unknown event type", eventType: "gala", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeReviewService{
				listBatchesResult: []*domain.ArchiveBatch{{ArchiveID: "arch-1", ItemCount: 12}},
			}
			ctrl := NewReviewController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/admin/archives/"+tt.eventType, nil)
			req.SetPathValue("event_type", tt.eventType)
			rr := httptest.NewRecorder()

			ctrl.ListArchiveBatches(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestReviewController_GetArchiveSnapshot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeReviewService{
			snapshot: &domain.ArchiveSnapshot{
				Registrations: []*domain.ArchivedRegistration{
					{ID: "ar-1", ArchiveID: "arch-1", Agency: "Springfield PD"},
				},
				Attendees: []*domain.ArchivedAttendee{
					{ID: "aa-1", ArchiveID: "arch-1", FirstName: "Jane"},
					{ID: "aa-2", ArchiveID: "arch-1", FirstName: "Tom"},
				},
			},
		}
		ctrl := NewReviewController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/admin/archives/batch/arch-1", nil)
		req.SetPathValue("archive_id", "arch-1")
		rr := httptest.NewRecorder()

		ctrl.GetArchiveSnapshot(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "arch-1", fake.lastSnapshotID)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var snapshot domain.ArchiveSnapshot
		require.NoError(t, json.Unmarshal(dataBytes, &snapshot))
		require.Len(t, snapshot.Registrations, 1)
		require.Len(t, snapshot.Attendees, 2)
		assert.Equal(t, "Springfield PD", snapshot.Registrations[0].Agency)
	})

	t.Run("hall of fame batch carries nominations", func(t *testing.T) {
		fake := &fakeReviewService{
			snapshot: &domain.ArchiveSnapshot{
				Nominations: []*domain.ArchivedNomination{
					{ID: "an-1", ArchiveID: "arch-hof", NomineeName: "Pat Morgan"},
				},
			},
		}
		ctrl := NewReviewController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/admin/archives/batch/arch-hof", nil)
		req.SetPathValue("archive_id", "arch-hof")
		rr := httptest.NewRecorder()

		ctrl.GetArchiveSnapshot(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var snapshot domain.ArchiveSnapshot
		require.NoError(t, json.Unmarshal(dataBytes, &snapshot))
		require.Len(t, snapshot.Nominations, 1)
		assert.Equal(t, "Pat Morgan", snapshot.Nominations[0].NomineeName)
	})

	t.Run("not found", func(t *testing.T) {
		fake := &fakeReviewService{snapshotErr: domain.ErrNotFound}
		ctrl := NewReviewController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/admin/archives/batch/arch-missing", nil)
		req.SetPathValue("archive_id", "arch-missing")
		rr := httptest.NewRecorder()

		ctrl.GetArchiveSnapshot(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
