package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/ptr"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

const testDate = "2024-05-01"

func booking(id string, room domain.RoomID, date, start string, duration, clean int) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		RoomID:           room,
		Date:             date,
		StartTime:        types.TimeString(start),
		DurationMinutes:  duration,
		CleanTimeMinutes: clean,
		Patient:          domain.Patient{LastName: "Paciente " + id},
	}
}

func TestOccupiedInterval(t *testing.T) {
	interval, err := OccupiedInterval(booking("x", domain.RoomQ1, testDate, "08:00", 60, 15))
	require.NoError(t, err)
	assert.Equal(t, domain.Interval{Start: 480, End: 555}, interval)

	_, err = OccupiedInterval(booking("bad", domain.RoomQ1, testDate, "8h", 60, 15))
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
}

func TestOverlapsIsSymmetric(t *testing.T) {
	bookings := []*domain.Booking{
		booking("a", domain.RoomQ1, testDate, "08:00", 60, 15),
		booking("b", domain.RoomQ1, testDate, "09:15", 30, 0),
		booking("c", domain.RoomQ1, testDate, "09:00", 45, 30),
		booking("d", domain.RoomQ1, testDate, "07:00", 300, 0),
		booking("e", domain.RoomQ1, testDate, "12:00", 15, 5),
	}

	for _, a := range bookings {
		for _, b := range bookings {
			ia, err := OccupiedInterval(a)
			require.NoError(t, err)
			ib, err := OccupiedInterval(b)
			require.NoError(t, err)
			assert.Equal(t, Overlaps(ia, ib), Overlaps(ib, ia), "%s vs %s", a.ID, b.ID)
		}
	}
}

func TestFindConflictsBackToBack(t *testing.T) {
	// 08:00 + 60 + 30 -> [480, 570)
	existing := []*domain.Booking{booking("x", domain.RoomQ1, testDate, "08:00", 60, 30)}

	candidate := booking("", domain.RoomQ1, testDate, "09:30", 60, 0)
	conflicts, err := FindConflicts(candidate, existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	candidate = booking("", domain.RoomQ1, testDate, "09:29", 1, 0)
	conflicts, err = FindConflicts(candidate, existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "x", conflicts[0].ID)
}

func TestFindConflictsScenario(t *testing.T) {
	// 08:00 + 90 + 30 -> [480, 600)
	existing := []*domain.Booking{booking("1", domain.RoomQ1, testDate, "08:00", 90, 30)}

	conflicts, err := FindConflicts(booking("", domain.RoomQ1, testDate, "09:45", 30, 0), existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "1", conflicts[0].ID)

	conflicts, err = FindConflicts(booking("", domain.RoomQ1, testDate, "10:00", 30, 0), existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsExcludesSelf(t *testing.T) {
	own := booking("42", domain.RoomQ2, testDate, "11:00", 120, 30)
	existing := []*domain.Booking{
		booking("41", domain.RoomQ2, testDate, "08:00", 60, 0),
		own,
	}

	candidate := own.Clone()
	conflicts, err := FindConflicts(candidate, existing, domain.RoomQ2, testDate, ptr.Ptr("42"))
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	conflicts, err = FindConflicts(candidate, existing, domain.RoomQ2, testDate, nil)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "42", conflicts[0].ID)
}

func TestFindConflictsScopesByRoomAndDate(t *testing.T) {
	existing := []*domain.Booking{
		booking("other-room", domain.RoomQ2, testDate, "08:00", 120, 0),
		booking("other-day", domain.RoomQ1, "2024-05-02", "08:00", 120, 0),
		booking("other-format", domain.RoomQ1, "2024-5-1", "08:00", 120, 0),
	}

	conflicts, err := FindConflicts(booking("", domain.RoomQ1, testDate, "08:30", 30, 0), existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsReturnsAllInInputOrder(t *testing.T) {
	existing := []*domain.Booking{
		booking("c", domain.RoomQ1, testDate, "12:00", 30, 0),
		booking("a", domain.RoomQ1, testDate, "08:00", 30, 0),
		booking("far", domain.RoomQ1, testDate, "18:00", 30, 0),
		booking("b", domain.RoomQ1, testDate, "10:00", 30, 0),
	}

	conflicts, err := FindConflicts(booking("", domain.RoomQ1, testDate, "07:00", 360, 0), existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)
	require.Len(t, conflicts, 3)
	assert.Equal(t, "c", conflicts[0].ID)
	assert.Equal(t, "a", conflicts[1].ID)
	assert.Equal(t, "b", conflicts[2].ID)
}

func TestFindConflictsCleaningBlocksRoom(t *testing.T) {
	existing := []*domain.Booking{booking("x", domain.RoomQ1, testDate, "08:00", 60, 30)}

	// 09:15 falls inside the cleaning band [540, 570)
	conflicts, err := FindConflicts(booking("", domain.RoomQ1, testDate, "09:15", 15, 0), existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	// Candidate cleaning overlapping the next booking also conflicts
	conflicts, err = FindConflicts(booking("", domain.RoomQ1, testDate, "07:00", 45, 30), existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflictsInvalidInput(t *testing.T) {
	existing := []*domain.Booking{booking("x", domain.RoomQ1, testDate, "08:00", 60, 15)}

	_, err := FindConflicts(booking("", domain.RoomQ1, testDate, "08:00", 0, 0), existing, domain.RoomQ1, testDate, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FindConflicts(booking("", domain.RoomQ1, testDate, "08:00", -10, 0), existing, domain.RoomQ1, testDate, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FindConflicts(booking("", domain.RoomQ1, testDate, "08:00", 30, -1), existing, domain.RoomQ1, testDate, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FindConflicts(nil, existing, domain.RoomQ1, testDate, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FindConflicts(booking("", domain.RoomQ1, testDate, "8.00", 30, 0), existing, domain.RoomQ1, testDate, nil)
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
}

func TestFindConflictsDoesNotMutateInput(t *testing.T) {
	existing := []*domain.Booking{
		booking("a", domain.RoomQ1, testDate, "08:00", 30, 0),
		booking("b", domain.RoomQ1, testDate, "09:00", 30, 0),
	}
	snapshot := []domain.Booking{*existing[0], *existing[1]}

	_, err := FindConflicts(booking("", domain.RoomQ1, testDate, "08:15", 60, 0), existing, domain.RoomQ1, testDate, nil)
	require.NoError(t, err)

	require.Len(t, existing, 2)
	assert.Equal(t, snapshot[0], *existing[0])
	assert.Equal(t, snapshot[1], *existing[1])
}

func TestConflictWindow(t *testing.T) {
	start, end, err := ConflictWindow(booking("1", domain.RoomQ1, testDate, "08:00", 90, 30))
	require.NoError(t, err)
	assert.Equal(t, "08:00", start)
	assert.Equal(t, "10:00", end)

	_, end, err = ConflictWindow(booking("late", domain.RoomQ1, testDate, "23:00", 45, 15))
	require.NoError(t, err)
	assert.Equal(t, "24:00", end)
}
