package wizard

// CreateSessionRequest carries the one-shot device probe.
type CreateSessionRequest struct {
	CoarsePointer bool `json:"coarsePointer"`
	ViewportWidth int  `json:"viewportWidth"`
}

type SelectServiceRequest struct {
	Service string `json:"service"`
}

type SelectPackageRequest struct {
	PackageID string `json:"packageId"`
}

type SetContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Brief   string `json:"brief"`
	Budget  string `json:"budget,omitempty"`
}

// OpenPickerRequest optionally seeds the modal; malformed seeds are ignored
// in favor of computed defaults.
type OpenPickerRequest struct {
	Mode        string `json:"mode"` // "date" or "time"
	InitialDate string `json:"initialDate,omitempty"`
	InitialTime string `json:"initialTime,omitempty"`
}

type PickerDateRequest struct {
	Date string `json:"date"` // "2025-03-10"
}

type PickerMonthRequest struct {
	Direction string `json:"direction"` // "prev" or "next"
}

// PickerInputRequest is one interaction event; Key for the list adapter,
// Scroll/Release for the wheel.
type PickerInputRequest struct {
	Key     string  `json:"key,omitempty"`
	Scroll  float64 `json:"scroll,omitempty"`
	Release bool    `json:"release,omitempty"`
}
