package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	createBooking "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"roomId": "quir_1",
	"date": "2024-05-01",
	"startTime": "08:00",
	"durationMinutes": 90,
	"cleanTimeMinutes": 30,
	"patient": {"firstName": "Roberto", "lastName": "Gomez", "dni": "30111222", "insurance": "OSDE"},
	"specialty": "Traumatología",
	"procedureType": "Programado",
	"surgeon": "Dr. Martinez",
	"equipment": ["Arco en C"],
	"needsRecovery": true
}`

func TestHandleCreated(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{Booking: &domain.Booking{
		ID:               "b-1",
		RoomID:           domain.RoomQ1,
		Date:             "2024-05-01",
		StartTime:        "08:00",
		DurationMinutes:  90,
		CleanTimeMinutes: 30,
		Patient:          domain.Patient{LastName: "Gomez"},
	}}}

	w := serve(uc, validBody)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, domain.RoomQ1, uc.got.RoomID)
	assert.Equal(t, 90, *uc.got.DurationMinutes)
	assert.Equal(t, "OSDE", uc.got.Patient.Insurance)
	assert.Equal(t, []string{"Arco en C"}, uc.got.Equipment)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "b-1", body["id"])
	assert.Equal(t, "09:30", body["endTime"])
}

func TestHandleOmittedDurationsStayNil(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{Booking: &domain.Booking{ID: "b-1", StartTime: "08:00"}}}

	w := serve(uc, `{"roomId":"quir_1","date":"2024-05-01","startTime":"08:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, uc.got.DurationMinutes)
	assert.Nil(t, uc.got.CleanTimeMinutes)
}

func TestHandleConflict(t *testing.T) {
	existing := &domain.Booking{
		ID:               "a",
		RoomID:           domain.RoomQ1,
		Date:             "2024-05-01",
		StartTime:        "08:00",
		DurationMinutes:  90,
		CleanTimeMinutes: 30,
		Patient:          domain.Patient{LastName: "Gomez"},
	}
	uc := &fakeUseCase{err: &createBooking.ConflictError{Conflicts: []*domain.Booking{existing}}}

	w := serve(uc, validBody)
	require.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Code      int    `json:"code"`
		Message   string `json:"message"`
		Conflicts []struct {
			ID string `json:"id"`
		} `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Contains(t, body.Message, "Gomez from 08:00 to 10:00")
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, "a", body.Conflicts[0].ID)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad json", body: `{"roomId":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"room":"quir_1"}`, wantStatus: http.StatusBadRequest},
		{name: "room not found", body: validBody, err: createBooking.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "outside hours", body: validBody, err: createBooking.ErrOutsideOperatingHours, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: validBody, err: fmt.Errorf("%w: durationMinutes", createBooking.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
