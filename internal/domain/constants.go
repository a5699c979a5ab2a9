package domain

// Bookable day boundaries. The slot catalog is identical for every date;
// only availability varies.
const (
	DayOpenTime     = "09:00"
	DayCloseTime    = "21:00"
	SlotStepMinutes = 30
	SlotsPerDay     = 25
)

// Date search constants
const (
	// NextDateSearchHorizonDays bounds the forward scan for the next date
	// with at least one open slot.
	NextDateSearchHorizonDays = 365
)

// Device heuristic constants for picker adapter selection
const (
	// WheelViewportMaxWidth is the viewport width (px) below which the wheel
	// adapter is chosen even for fine-pointer devices.
	WheelViewportMaxWidth = 768
)

// Contact validation constants
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxPhoneLength   = 30
	MaxCompanyLength = 200
	MaxBriefLength   = 2000
	MaxBudgetLength  = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Display format constants (human-readable output only, never compared)
const (
	ShortDateFormat  = "2/1/2006"      // D/M/YYYY
	DateHeaderFormat = "Monday, 2 Jan" // "Weekday, D Mon"
	Time12hFormat    = "3:04 PM"       // h:mm AM/PM
)
