package domain

// Reference facility configuration
const (
	DefaultStartHour        = 7
	DefaultEndHour          = 22
	DefaultStepMinutes      = 15
	DefaultSnapMinutes      = 15
	DefaultPixelsPerHour    = 120
	DefaultDurationMinutes  = 60
	DefaultCleanTimeMinutes = 30
)

// Reference rooms
const (
	RoomQ1   RoomID = "quir_1"
	RoomQ2   RoomID = "quir_2"
	RoomQ3   RoomID = "quir_3"
	RoomQ4   RoomID = "quir_4"
	RoomEndo RoomID = "endo_1"
)

// DefaultRooms reference set of facility rooms
var DefaultRooms = []Room{
	{ID: RoomQ1, Name: "Quirófano 1"},
	{ID: RoomQ2, Name: "Quirófano 2"},
	{ID: RoomQ3, Name: "Quirófano 3"},
	{ID: RoomQ4, Name: "Quirófano 4"},
	{ID: RoomEndo, Name: "Endoscopias"},
}

// Business display constants
const (
	HighOccupancyPercent  = 80 // Above this value a room column is highlighted
	MaxObservationsLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
