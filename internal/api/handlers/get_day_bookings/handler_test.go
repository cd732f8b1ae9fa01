package get_day_bookings

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
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings"
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) IncBookingSaved(string) {}

func newRouter(t *testing.T) *mux.Router {
	repo := bookingRepo.NewRepository()
	for _, b := range []*domain.Booking{
		{ID: "q3", RoomID: domain.RoomQ3, Date: "2024-05-01", StartTime: "10:00", DurationMinutes: 60},
		{ID: "q1", RoomID: domain.RoomQ1, Date: "2024-05-01", StartTime: "08:00", DurationMinutes: 90},
		{ID: "next", RoomID: domain.RoomQ1, Date: "2024-05-02", StartTime: "08:00", DurationMinutes: 90},
	} {
		_, err := repo.Create(context.Background(), b)
		require.NoError(t, err)
	}

	svc := bookings.NewService(repo, &domain.Facility{Rooms: domain.DefaultRooms}, nopMetrics{}, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)
	return router
}

func get(router *mux.Router, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestHandle(t *testing.T) {
	router := newRouter(t)

	w := get(router, "/api/v1/bookings?date=2024-05-01")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.BookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Bookings, 2)
	assert.Equal(t, "q3", got.Bookings[0].ID)
	assert.Equal(t, "q1", got.Bookings[1].ID)

	w = get(router, "/api/v1/bookings?date=2024-05-01&roomId=quir_1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "q1", got.Bookings[0].ID)
}

func TestHandleErrors(t *testing.T) {
	router := newRouter(t)

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/v1/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/v1/bookings?date=1-5-2024").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/bookings?date=2024-05-01&roomId=quir_9").Code)
}
