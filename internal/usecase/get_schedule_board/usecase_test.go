package get_schedule_board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SurgeryBoard/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type failingRepo struct{}

func (failingRepo) GetByFilter(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	return nil, errors.New("boom")
}

func referenceFacility() *domain.Facility {
	return &domain.Facility{
		StartHour:     7,
		EndHour:       22,
		StepMinutes:   15,
		SnapMinutes:   15,
		PixelsPerHour: 120,
		Rooms:         domain.DefaultRooms,
	}
}

func add(t *testing.T, repo *bookingRepo.Repository, id string, room domain.RoomID, date, start string, duration, clean int, kind domain.ProcedureType) {
	t.Helper()
	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:               id,
		RoomID:           room,
		Date:             date,
		StartTime:        types.TimeString(start),
		DurationMinutes:  duration,
		CleanTimeMinutes: clean,
		ProcedureType:    kind,
	})
	require.NoError(t, err)
}

func TestGetScheduleBoard(t *testing.T) {
	repo := bookingRepo.NewRepository()
	add(t, repo, "a", domain.RoomQ1, "2024-05-01", "08:00", 90, 30, domain.ProcedureScheduled)
	add(t, repo, "b", domain.RoomQ3, "2024-05-01", "10:00", 60, 15, domain.ProcedureUrgent)
	add(t, repo, "c", domain.RoomQ1, "2024-05-02", "08:00", 60, 0, domain.ProcedureUrgent)

	uc := NewUseCase(repo, referenceFacility(), nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-01"})
	require.NoError(t, err)

	assert.Equal(t, 1800.0, resp.TotalHeight)
	assert.Equal(t, Summary{Total: 2, Urgent: 1}, resp.Summary)

	require.Len(t, resp.TimeAxis, 15)
	assert.Equal(t, HourMark{Label: "07:00", Top: 0}, resp.TimeAxis[0])
	assert.Equal(t, HourMark{Label: "21:00", Top: 1680}, resp.TimeAxis[14])

	require.Len(t, resp.Columns, len(domain.DefaultRooms))
	q1 := resp.Columns[0]
	assert.Equal(t, domain.RoomQ1, q1.Room.ID)
	// 120 / 900 = 13.3%
	assert.Equal(t, 13, q1.OccupancyPercent)
	assert.False(t, q1.HighOccupancy)
	require.Len(t, q1.Blocks, 1)
	assert.Equal(t, "a", q1.Blocks[0].Booking.ID)
	assert.Equal(t, 120.0, q1.Blocks[0].Top)
	assert.Equal(t, 180.0, q1.Blocks[0].Height)
	assert.True(t, q1.Blocks[0].HasCleaning)
	assert.Equal(t, 300.0, q1.Blocks[0].CleanTop)
	assert.Equal(t, 60.0, q1.Blocks[0].CleanHeight)

	q3 := resp.Columns[2]
	require.Len(t, q3.Blocks, 1)
	assert.Equal(t, 360.0, q3.Blocks[0].Top)
	assert.Equal(t, 8, q3.OccupancyPercent)

	assert.Empty(t, resp.Columns[1].Blocks)
	assert.Equal(t, 0, resp.Columns[1].OccupancyPercent)
}

func TestGetScheduleBoardHighOccupancy(t *testing.T) {
	repo := bookingRepo.NewRepository()
	// 12h 30m из 15h = 83%
	add(t, repo, "long", domain.RoomQ4, "2024-05-01", "07:00", 720, 30, domain.ProcedureScheduled)

	uc := NewUseCase(repo, referenceFacility(), nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-01"})
	require.NoError(t, err)

	q4 := resp.Columns[3]
	assert.Equal(t, 83, q4.OccupancyPercent)
	assert.True(t, q4.HighOccupancy)
}

func TestGetScheduleBoardErrors(t *testing.T) {
	uc := NewUseCase(bookingRepo.NewRepository(), referenceFacility(), nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: "05/01/2024"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewUseCase(failingRepo{}, referenceFacility(), nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{Date: "2024-05-01"})
	assert.ErrorIs(t, err, ErrInternal)
}
