package backend_test

import (
	"context"
	"encoding/base64"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boothdesk/config"
	"boothdesk/infras/backend"
	otelMocks "boothdesk/infras/otel/mocks"
	"boothdesk/shared/failure"
)

func newGateway(baseURL string) backend.Gateway {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL

	return backend.New(cfg, otelMocks.NewOtel())
}

func TestGateway_PublicGet(t *testing.T) {
	var captured *http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(`[{"_id":"a1","number":1,"category":"gold","status":"empty"}]`)) // nolint:errcheck
	}))
	defer srv.Close()

	gw := newGateway(srv.URL)

	res, err := gw.PublicGet(context.Background(), "/booths")
	require.NoError(t, err)
	assert.True(t, res.OK())

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/booths", captured.URL.Path)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Empty(t, captured.Header.Get("Authorization"))
	assert.NotEmpty(t, captured.Header.Get("X-Request-ID"))
}

func TestGateway_AdminCalls_BasicHeader(t *testing.T) {
	creds := backend.Credentials{Username: "admin", Password: "s3cret"}
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:s3cret"))

	var captured *http.Request
	var body []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true}`)) // nolint:errcheck
	}))
	defer srv.Close()

	gw := newGateway(srv.URL)
	ctx := context.Background()

	tests := []struct {
		name            string
		call            func() (*backend.Response, error)
		wantMethod      string
		wantContentType string
		wantBody        string
	}{
		{
			name: "admin get",
			call: func() (*backend.Response, error) {
				return gw.AdminGet(ctx, "/admin/booths", creds)
			},
			wantMethod:      http.MethodGet,
			wantContentType: "application/json",
		},
		{
			name: "admin post",
			call: func() (*backend.Response, error) {
				return gw.AdminPost(ctx, "/admin/booths", creds, map[string]int{"number": 4})
			},
			wantMethod:      http.MethodPost,
			wantContentType: "application/json",
			wantBody:        `{"number":4}`,
		},
		{
			name: "admin patch",
			call: func() (*backend.Response, error) {
				return gw.AdminPatch(ctx, "/admin/booths/a1", creds, map[string]string{"status": "occupied"})
			},
			wantMethod:      http.MethodPatch,
			wantContentType: "application/json",
			wantBody:        `{"status":"occupied"}`,
		},
		{
			name: "admin delete carries no content type",
			call: func() (*backend.Response, error) {
				return gw.AdminDelete(ctx, "/admin/booths/a1", creds)
			},
			wantMethod: http.MethodDelete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.call()
			require.NoError(t, err)
			assert.True(t, res.OK())

			assert.Equal(t, tt.wantMethod, captured.Method)
			assert.Equal(t, wantAuth, captured.Header.Get("Authorization"))
			assert.Equal(t, tt.wantContentType, captured.Header.Get("Content-Type"))

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestGateway_UploadLogo(t *testing.T) {
	creds := backend.Credentials{Username: "admin", Password: "s3cret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/upload-logo", r.URL.Path)

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)
		assert.NotEmpty(t, params["boundary"])

		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("logo")
		require.NoError(t, err)
		defer file.Close() // nolint:errcheck

		assert.Equal(t, "logo.png", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-image-bytes"), content)

		w.Write([]byte(`{"success":true,"url":"https://cdn.example/logo.png"}`)) // nolint:errcheck
	}))
	defer srv.Close()

	gw := newGateway(srv.URL)

	res, err := gw.UploadLogo(context.Background(), creds, "logo.png", []byte("fake-image-bytes"))
	require.NoError(t, err)
	assert.True(t, res.OK())
}

func TestGateway_NetworkFailure(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	gw := newGateway(srv.URL)

	res, err := gw.PublicGet(context.Background(), "/booths")
	assert.Nil(t, res)
	assert.True(t, failure.IsKind(err, failure.KindNetwork))
}

func TestResponse_AppError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "error payload with success status",
			body: `{"error":"booth number already taken"}`,
			want: "booth number already taken",
		},
		{
			name: "array body",
			body: `[]`,
			want: "",
		},
		{
			name: "object without error field",
			body: `{"success":true}`,
			want: "",
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &backend.Response{Status: http.StatusOK, Body: []byte(tt.body)}
			assert.Equal(t, tt.want, res.AppError())
		})
	}
}

func TestResponse_Decode(t *testing.T) {
	res := &backend.Response{Status: http.StatusOK, Body: []byte(`{"success":true,"redirectUrl":"/thanks"}`)}

	var out struct {
		Success     bool   `json:"success"`
		RedirectURL string `json:"redirectUrl"`
	}

	require.NoError(t, res.Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "/thanks", out.RedirectURL)

	bad := &backend.Response{Status: http.StatusOK, Body: []byte(`not json`)}
	assert.Error(t, bad.Decode(&out))
}

func TestCredentials_Blank(t *testing.T) {
	assert.True(t, backend.Credentials{}.Blank())
	assert.True(t, backend.Credentials{Username: "admin"}.Blank())
	assert.True(t, backend.Credentials{Password: "pw"}.Blank())
	assert.False(t, backend.Credentials{Username: "admin", Password: "pw"}.Blank())
}

func TestResponse_Unauthorized(t *testing.T) {
	assert.True(t, (&backend.Response{Status: http.StatusUnauthorized}).Unauthorized())
	assert.False(t, (&backend.Response{Status: http.StatusOK}).Unauthorized())
}
