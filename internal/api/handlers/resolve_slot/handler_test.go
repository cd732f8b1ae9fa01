package resolve_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SurgeryBoard/internal/infra/storage/booking"
	resolveSlot "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/resolve_slot"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(t *testing.T) *mux.Router {
	repo := bookingRepo.NewRepository()
	_, err := repo.Create(context.Background(), &domain.Booking{
		ID: "a", RoomID: domain.RoomQ1, Date: "2024-05-01", StartTime: "08:00",
		DurationMinutes: 90, CleanTimeMinutes: 30,
	})
	require.NoError(t, err)

	facility := &domain.Facility{StartHour: 7, EndHour: 22, SnapMinutes: 15, PixelsPerHour: 120, Rooms: domain.DefaultRooms}
	uc := resolveSlot.NewUseCase(repo, facility, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/slot-at", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	return router
}

func get(router *mux.Router, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestHandle(t *testing.T) {
	router := newRouter(t)

	w := get(router, "/api/v1/rooms/quir_1/slot-at?offset=150&date=2024-05-01")
	require.Equal(t, http.StatusOK, w.Code)

	var got SlotAtResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, SlotAtResponse{RoomID: "quir_1", Date: "2024-05-01", StartTime: "08:15", Blocked: true}, got)

	w = get(router, "/api/v1/rooms/quir_2/slot-at?offset=100.5&date=2024-05-01")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "07:45", got.StartTime)
	assert.False(t, got.Blocked)
}

func TestHandleErrors(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		url        string
		wantStatus int
	}{
		{url: "/api/v1/rooms/quir_1/slot-at?date=2024-05-01", wantStatus: http.StatusBadRequest},
		{url: "/api/v1/rooms/quir_1/slot-at?offset=abc&date=2024-05-01", wantStatus: http.StatusBadRequest},
		{url: "/api/v1/rooms/quir_1/slot-at?offset=1800&date=2024-05-01", wantStatus: http.StatusBadRequest},
		{url: "/api/v1/rooms/quir_1/slot-at?offset=10&date=ayer", wantStatus: http.StatusBadRequest},
		{url: "/api/v1/rooms/quir_9/slot-at?offset=10&date=2024-05-01", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, get(router, tt.url).Code)
		})
	}
}
