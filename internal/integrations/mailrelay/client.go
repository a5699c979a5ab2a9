package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging interface required by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client delivers booking inquiries to the mail relay over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a mail relay client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendInquiry posts the inquiry payload to the relay. It is a single attempt;
// retry policy belongs to the caller (in practice, the client re-clicking
// submit).
func (c *Client) SendInquiry(ctx context.Context, msg *InquiryMessage) error {
	url := fmt.Sprintf("%s/internal/mail/inquiries", c.baseURL)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		// Delivery accepted, decode below.
	case resp.StatusCode == http.StatusBadRequest:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrRelayRejected, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrRelayFailed, resp.StatusCode, string(respBody))
	}

	var result SendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// An accepted request with an unreadable body still counts as
		// delivered; the relay owns delivery from here.
		c.log.Warn("SendInquiry: relay returned undecodable body for email=%s: %v", msg.Email, err)
		return nil
	}

	if !result.Success {
		c.log.Warn("SendInquiry: relay reported failure for email=%s: %s", msg.Email, result.Message)
		return fmt.Errorf("%w: %s", ErrRelayFailed, result.Message)
	}

	c.log.Info("SendInquiry: delivered inquiry for email=%s, service=%s", msg.Email, msg.Service)
	return nil
}
