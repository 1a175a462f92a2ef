package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/pkg/email"
)

func TestNewResendSender_RequiresKey(t *testing.T) {
	t.Parallel()

	s, err := email.NewResendSender("", nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)
}

func TestResendSender_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer srv.Close()

	sender, err := email.NewResendSender("re_test", srv.Client(), email.WithResendBaseURL(srv.URL))
	require.NoError(t, err)

	msg := validMessage()
	msg.Tag = "contact"
	msg.Attachments = []email.Attachment{{Filename: "cv.pdf", ContentType: "application/pdf", Content: []byte("%PDF")}}

	id, err := sender.Send(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", id)

	assert.Equal(t, msg.From, got["from"])
	assert.Equal(t, []any{msg.To}, got["to"])
	assert.Equal(t, msg.ReplyTo, got["reply_to"])
	assert.Equal(t, msg.Subject, got["subject"])
	assert.Equal(t, msg.HTML, got["html"])
	assert.Equal(t, msg.Text, got["text"])
	assert.Len(t, got["attachments"], 1)
}

func TestResendSender_ProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer srv.Close()

	sender, err := email.NewResendSender("re_test", srv.Client(), email.WithResendBaseURL(srv.URL))
	require.NoError(t, err)

	id, err := sender.Send(context.Background(), validMessage())
	assert.Empty(t, id)
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}

func TestResendSender_InvalidMessageSkipsProvider(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	sender, err := email.NewResendSender("re_test", srv.Client(), email.WithResendBaseURL(srv.URL))
	require.NoError(t, err)

	msg := validMessage()
	msg.Subject = ""
	_, err = sender.Send(context.Background(), msg)
	assert.ErrorIs(t, err, email.ErrInvalidParams)
	assert.False(t, called)
}
