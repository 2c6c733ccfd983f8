package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrevoServiceSend(t *testing.T) {
	var got brevoPayload
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"abc"}`))
	}))
	defer srv.Close()

	svc := NewBrevoService("key-123", "registrar@example.edu", "Registrar")
	svc.Endpoint = srv.URL

	err := svc.Send(context.Background(), "ada@example.edu", "", "Grade posted", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "key-123", apiKey)
	assert.Equal(t, "Grade posted", got.Subject)
	require.Len(t, got.To, 1)
	assert.Equal(t, "ada@example.edu", got.To[0]["email"])
	assert.Equal(t, "ada", got.To[0]["name"])
	assert.Equal(t, "registrar@example.edu", got.Sender["email"])
}

func TestBrevoServiceSendRejectsBadRecipient(t *testing.T) {
	svc := NewBrevoService("key", "registrar@example.edu", "Registrar")
	err := svc.Send(context.Background(), "not-an-email", "", "s", "b")
	assert.Error(t, err)
}

func TestBrevoServiceSendReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer srv.Close()

	svc := NewBrevoService("bad", "registrar@example.edu", "Registrar")
	svc.Endpoint = srv.URL

	err := svc.Send(context.Background(), "ada@example.edu", "Ada", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestInitEmailServiceWithoutConfig(t *testing.T) {
	InitEmailService("", "", "")
	assert.Nil(t, EmailClient)
}

func TestGradeEmail(t *testing.T) {
	subject, body := GradeEmail("Ada <Lovelace>", "CS101", "Intro to CS", 85, "B", true)
	assert.Equal(t, "Your grade for CS101 has been updated", subject)
	assert.Contains(t, body, "Ada &lt;Lovelace&gt;")
	assert.Contains(t, body, "85.00")
	assert.Contains(t, body, "<strong>B</strong>")
}
