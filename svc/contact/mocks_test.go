package contact_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/pkg/email"
)

// MockSender is a mock implementation of email.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

// sent returns the message passed to the i-th Send call.
func (m *MockSender) sent(t *testing.T, i int) email.Message {
	t.Helper()
	require.Greater(t, len(m.Calls), i)
	return m.Calls[i].Arguments.Get(1).(email.Message)
}

// fileHeader builds a real *multipart.FileHeader by round-tripping a
// multipart body.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["resume"], 1)
	return form.File["resume"][0]
}
