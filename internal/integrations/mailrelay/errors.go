package mailrelay

import "errors"

var (
	// ErrRelayRejected is returned when the relay refuses the payload.
	ErrRelayRejected = errors.New("mailrelay client: relay rejected the payload")

	// ErrRelayFailed is returned when the relay reports a delivery failure.
	ErrRelayFailed = errors.New("mailrelay client: relay failed to deliver")

	// ErrInternal is returned for client-side failures (request build,
	// transport, response decode).
	ErrInternal = errors.New("mailrelay client: internal error")
)
