package binder_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/pkg/binder"
)

type applicationRequest struct {
	Name     string                `form:"name"`
	Email    string                `form:"email"`
	Years    int                   `form:"years"`
	Tags     []string              `form:"tags"`
	Internal string                `form:"-"`
	Resume   *multipart.FileHeader `file:"resume"`
}

func multipartRequest(t *testing.T, fields map[string]string, fileField, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/application", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestForm_Multipart(t *testing.T) {
	t.Parallel()

	req := multipartRequest(t, map[string]string{
		"name":     "Sam",
		"email":    "sam@x.com",
		"years":    "7",
		"tags":     "a,b",
		"Internal": "x",
	}, "resume", "../../etc/cv.pdf", []byte("%PDF-1.4"))

	var got applicationRequest
	require.NoError(t, binder.Form()(req, &got))

	assert.Equal(t, "Sam", got.Name)
	assert.Equal(t, "sam@x.com", got.Email)
	assert.Equal(t, 7, got.Years)
	assert.Equal(t, []string{"a,b"}, got.Tags)
	assert.Empty(t, got.Internal)

	require.NotNil(t, got.Resume)
	assert.Equal(t, "cv.pdf", got.Resume.Filename)
	assert.Equal(t, int64(8), got.Resume.Size)

	f, err := got.Resume.Open()
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestForm_MultipartWithoutFile(t *testing.T) {
	t.Parallel()

	req := multipartRequest(t, map[string]string{"name": "Sam"}, "", "", nil)

	var got applicationRequest
	require.NoError(t, binder.Form()(req, &got))
	assert.Equal(t, "Sam", got.Name)
	assert.Nil(t, got.Resume)
}

func TestForm_URLEncoded(t *testing.T) {
	t.Parallel()

	body := url.Values{"name": {"Sam"}, "years": {"3"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var got applicationRequest
	require.NoError(t, binder.Form()(req, &got))
	assert.Equal(t, "Sam", got.Name)
	assert.Equal(t, 3, got.Years)
}

func TestForm_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=x"))

		var got applicationRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrMissingContentType)
	})

	t.Run("json content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got applicationRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("missing boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")

		var got applicationRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})

	t.Run("truncated body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("--abc\r\nContent-Disposition: form-data; name=\"name\"\r\n\r\nSam"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=abc")

		var got applicationRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})

	t.Run("invalid int", func(t *testing.T) {
		t.Parallel()
		req := multipartRequest(t, map[string]string{"years": "many"}, "", "", nil)

		var got applicationRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})

	t.Run("body over limit", func(t *testing.T) {
		t.Parallel()
		req := multipartRequest(t, map[string]string{"name": "Sam"}, "resume", "cv.pdf", bytes.Repeat([]byte("a"), 4096))

		var got applicationRequest
		assert.ErrorIs(t, binder.Form(binder.WithMaxFormSize(1024))(req, &got), binder.ErrInvalidForm)
	})
}

func TestForm_FieldKinds(t *testing.T) {
	t.Parallel()

	type preferences struct {
		Consent  bool     `form:"consent"`
		Rate     float64  `form:"rate"`
		Referrer *string  `form:"referrer"`
		Areas    []string `form:"area"`
		Missing  string   `form:"missing"`
	}

	body := url.Values{
		"consent":  {"on"},
		"rate":     {"12.5"},
		"referrer": {"newsletter"},
		"area":     {"London", "Kent, UK"},
	}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got := preferences{Missing: "kept"}
	require.NoError(t, binder.Form()(req, &got))
	assert.True(t, got.Consent)
	assert.InDelta(t, 12.5, got.Rate, 0.0001)
	require.NotNil(t, got.Referrer)
	assert.Equal(t, "newsletter", *got.Referrer)
	assert.Equal(t, []string{"London", "Kent, UK"}, got.Areas)
	assert.Equal(t, "kept", got.Missing)
}

func TestForm_WindowsFilename(t *testing.T) {
	t.Parallel()

	req := multipartRequest(t, nil, "resume", `C:\Users\sam\cv.docx`, []byte("doc"))

	var got applicationRequest
	require.NoError(t, binder.Form()(req, &got))
	require.NotNil(t, got.Resume)
	assert.Equal(t, "cv.docx", got.Resume.Filename)
}
