package mailrelay

// InquiryMessage is the flat payload delivered to the mail relay. The relay
// formats it into an email for the studio operator; its delivery mechanism is
// opaque to this service.
type InquiryMessage struct {
	Service string `json:"service"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // 24h HH:MM, empty when not chosen
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Brief   string `json:"brief"`
	Budget  string `json:"budget,omitempty"`
}

// SendResult is the relay's response body.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the relay's error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
