package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"boothdesk/config"
	"boothdesk/infras/otel"
	"boothdesk/shared/failure"
)

const (
	otelScopeName = "backend"

	otelAttrMethod    = "http.method"
	otelAttrPath      = "http.path"
	otelAttrRequestID = "request_id"

	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"

	// Field name the backend expects on the multipart logo upload.
	logoFieldName  = "logo"
	uploadLogoPath = "/admin/upload-logo"

	msgNetwork = "Something went wrong. Please try again."
)

// Credentials is a one-shot read-only borrow of the stored admin pair. It is
// re-sent fresh as a Basic header on every admin call; there is no session
// token and no refresh.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Blank() bool {
	return c.Username == "" || c.Password == ""
}

func (c Credentials) basicHeader() string {
	token := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))

	return "Basic " + token
}

// Response is a normalized backend reply: the HTTP status plus the raw JSON
// body. Interpreting the body, including `{error}` payloads delivered with a
// success status, is the caller's concern.
type Response struct {
	Status int
	Body   json.RawMessage
}

func (r *Response) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

func (r *Response) Unauthorized() bool {
	return r.Status == http.StatusUnauthorized
}

// Decode unmarshals the body into out.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}

	return nil
}

// AppError returns the backend-supplied error message when the body is an
// `{error: string}` payload, and "" otherwise.
func (r *Response) AppError() string {
	if len(r.Body) == 0 {
		return ""
	}

	var envelope struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return ""
	}

	return envelope.Error
}

// Gateway wraps every outbound call to the booking backend. Public calls
// carry no credentials; admin calls attach a Basic header. Calls are made
// once, with no retries.
type Gateway interface {
	PublicGet(ctx context.Context, path string) (*Response, error)
	PublicPost(ctx context.Context, path string, body any) (*Response, error)
	AdminGet(ctx context.Context, path string, creds Credentials) (*Response, error)
	AdminPost(ctx context.Context, path string, creds Credentials, body any) (*Response, error)
	AdminPatch(ctx context.Context, path string, creds Credentials, body any) (*Response, error)
	AdminDelete(ctx context.Context, path string, creds Credentials) (*Response, error)
	UploadLogo(ctx context.Context, creds Credentials, filename string, content []byte) (*Response, error)
}

type gatewayImpl struct {
	client *http.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Gateway {
	client := &http.Client{}

	// Timeout of zero means no deadline, matching the original front-end.
	if cfg.Backend.TimeoutSeconds > 0 {
		client.Timeout = time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	}

	return &gatewayImpl{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (g *gatewayImpl) PublicGet(ctx context.Context, path string) (*Response, error) {
	return g.request(ctx, http.MethodGet, path, nil, contentTypeJSON, nil)
}

func (g *gatewayImpl) PublicPost(ctx context.Context, path string, body any) (*Response, error) {
	reader, err := encodeJSON(body)
	if err != nil {
		return nil, err
	}

	return g.request(ctx, http.MethodPost, path, nil, contentTypeJSON, reader)
}

func (g *gatewayImpl) AdminGet(ctx context.Context, path string, creds Credentials) (*Response, error) {
	return g.request(ctx, http.MethodGet, path, &creds, contentTypeJSON, nil)
}

func (g *gatewayImpl) AdminPost(ctx context.Context, path string, creds Credentials, body any) (*Response, error) {
	reader, err := encodeJSON(body)
	if err != nil {
		return nil, err
	}

	return g.request(ctx, http.MethodPost, path, &creds, contentTypeJSON, reader)
}

func (g *gatewayImpl) AdminPatch(ctx context.Context, path string, creds Credentials, body any) (*Response, error) {
	reader, err := encodeJSON(body)
	if err != nil {
		return nil, err
	}

	return g.request(ctx, http.MethodPatch, path, &creds, contentTypeJSON, reader)
}

// AdminDelete sends no body and no content type.
func (g *gatewayImpl) AdminDelete(ctx context.Context, path string, creds Credentials) (*Response, error) {
	return g.request(ctx, http.MethodDelete, path, &creds, "", nil)
}

// UploadLogo submits a multipart form with a single file field. The content
// type carries the writer's boundary rather than a fixed value.
func (g *gatewayImpl) UploadLogo(ctx context.Context, creds Credentials, filename string, content []byte) (*Response, error) {
	buf := bytes.NewBuffer(nil)
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile(logoFieldName, filename)
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("failed to build multipart form")

		return nil, failure.Network(msgNetwork) // nolint:wrapcheck
	}

	if _, err = part.Write(content); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("failed to write multipart form")

		return nil, failure.Network(msgNetwork) // nolint:wrapcheck
	}

	if err = writer.Close(); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("failed to finish multipart form")

		return nil, failure.Network(msgNetwork) // nolint:wrapcheck
	}

	return g.request(ctx, http.MethodPost, uploadLogoPath, &creds, writer.FormDataContentType(), buf)
}

func (g *gatewayImpl) request(ctx context.Context, method, path string, creds *Credentials, contentType string, body io.Reader) (res *Response, err error) {
	ctx, scope := g.otel.NewScope(ctx, otelScopeName, otelScopeName+".request")
	defer scope.End()
	defer scope.TraceIfError(err)

	requestID := uuid.NewString()

	scope.SetAttributes(map[string]any{
		otelAttrMethod:    method,
		otelAttrPath:      path,
		otelAttrRequestID: requestID,
	})

	req, err := http.NewRequestWithContext(ctx, method, g.cfg.Backend.BaseURL+path, body)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("failed to build backend request")

		return nil, failure.Network(msgNetwork) // nolint:wrapcheck
	}

	if contentType != "" {
		req.Header.Set(headerContentType, contentType)
	}

	if creds != nil {
		req.Header.Set(headerAuthorization, creds.basicHeader())
	}

	req.Header.Set(headerRequestID, requestID)

	resp, err := g.client.Do(req)
	if err != nil {
		// Cause stays in the log; the user only ever sees a generic message.
		log.Error().Err(err).Str("method", method).Str("path", path).Str(otelAttrRequestID, requestID).Msg("backend request failed")

		return nil, failure.Network(msgNetwork) // nolint:wrapcheck
	}

	defer resp.Body.Close() // nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Str(otelAttrRequestID, requestID).Msg("failed to read backend response")

		return nil, failure.Network(msgNetwork) // nolint:wrapcheck
	}

	return &Response{
		Status: resp.StatusCode,
		Body:   raw,
	}, nil
}

func encodeJSON(body any) (io.Reader, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode request body")

		return nil, failure.Network(msgNetwork) // nolint:wrapcheck
	}

	return bytes.NewReader(raw), nil
}
