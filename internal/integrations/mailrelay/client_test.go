package mailrelay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testMessage() *InquiryMessage {
	return &InquiryMessage{
		Service: "videography",
		Date:    "2025-03-10",
		Time:    "10:30",
		Name:    "Ada",
		Email:   "ada@example.com",
		Brief:   "Product launch film",
	}
}

func TestSendInquiry_Success(t *testing.T) {
	var received InquiryMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/mail/inquiries", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SendResult{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendInquiry(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "videography", received.Service)
	assert.Equal(t, "2025-03-10", received.Date)
	assert.Equal(t, "10:30", received.Time)
	assert.Equal(t, "Ada", received.Name)
}

func TestSendInquiry_BadRequestMapsToRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":400,"message":"missing email"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendInquiry(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrRelayRejected)
}

func TestSendInquiry_ServerErrorMapsToFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendInquiry(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrRelayFailed)
}

func TestSendInquiry_RelayReportedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SendResult{Success: false, Message: "mailbox over quota"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendInquiry(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrRelayFailed)
	assert.Contains(t, err.Error(), "mailbox over quota")
}

func TestSendInquiry_UndecodableBodyStillDelivered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendInquiry(context.Background(), testMessage())
	assert.NoError(t, err)
}

func TestSendInquiry_ConnectionErrorMapsToInternal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, time.Second, nopLogger{})

	err := client.SendInquiry(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrInternal)
}
