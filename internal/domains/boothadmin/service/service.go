package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"boothdesk/config"
	"boothdesk/infras/backend"
	"boothdesk/infras/otel"
	"boothdesk/internal/domains/booth/model"
	"boothdesk/internal/domains/booth/model/dto"
	sessionService "boothdesk/internal/domains/session/service"
	"boothdesk/shared/failure"
	"boothdesk/shared/image"
	"boothdesk/shared/ui"
	"boothdesk/shared/validator"
)

const (
	otelScopeName = "boothadmin"

	adminBoothsPath   = "/admin/booths"
	adminRequestsPath = "/admin/booking-requests"

	msgLoadFailed     = "Failed to load booths."
	msgSaveFailed     = "Failed to save booth."
	msgDeleteFailed   = "Failed to delete booth."
	msgUploadFailed   = "Failed to upload logo."
	msgRequestsFailed = "Failed to load booking requests."
)

// State is a render snapshot of the admin booth list. DeletingID carries the
// id of the booth whose delete call is outstanding, or "" when none is.
type State struct {
	Booths     []model.Booth
	Loading    bool
	Saving     bool
	Error      string
	DeletingID string
}

// Manager is the admin booth view-model. Every operation first asks the
// session guard for the stored pair; without one it aborts before any network
// call, with the guard owning the redirect. Mutations follow await-then-reload:
// the list is refreshed only after the mutating call succeeds, and no record is
// ever inserted or patched into the snapshot optimistically.
type Manager interface {
	Refresh(ctx context.Context) error
	Create(ctx context.Context, form dto.BoothForm) error
	Update(ctx context.Context, booth model.Booth, form dto.BoothForm) error
	Delete(ctx context.Context, booth model.Booth) error
	UploadLogo(ctx context.Context, filename string, raw []byte) (string, error)
	Requests(ctx context.Context, boothNumber *int) ([]model.BookingRequest, error)
	Snapshot() State
}

type serviceImpl struct {
	cfg     *config.Config
	gateway backend.Gateway
	guard   sessionService.Guard
	confirm ui.Confirmer
	otel    otel.Otel

	mu       sync.Mutex
	booths   []model.Booth
	loading  bool
	saving   bool
	err      string
	deleting string
}

func New(cfg *config.Config, gateway backend.Gateway, guard sessionService.Guard, confirm ui.Confirmer, ot otel.Otel) Manager {
	return &serviceImpl{
		cfg:     cfg,
		gateway: gateway,
		guard:   guard,
		confirm: confirm,
		otel:    ot,
		loading: true,
	}
}

// Refresh reloads the booth list under credentials, replacing the snapshot
// wholesale. A failed load keeps the previous snapshot behind the error
// banner.
func (s *serviceImpl) Refresh(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	creds, err := s.guard.Require()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()

	booths, err := s.fetch(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		log.Warn().Err(err).Msg("admin booth refresh failed, keeping previous snapshot")
		s.err = s.banner(err, msgLoadFailed)

		return err
	}

	s.booths = booths

	return nil
}

func (s *serviceImpl) fetch(ctx context.Context, creds backend.Credentials) ([]model.Booth, error) {
	res, err := s.gateway.AdminGet(ctx, adminBoothsPath, creds)
	if err != nil {
		return nil, err
	}

	if res.Unauthorized() {
		s.guard.Unauthorized()

		return nil, failure.LoginRequired // nolint:wrapcheck
	}

	if msg := res.AppError(); msg != "" {
		return nil, failure.Application(msg, msgLoadFailed) // nolint:wrapcheck
	}

	var booths []model.Booth
	if err := res.Decode(&booths); err != nil {
		return nil, err
	}

	return booths, nil
}

// Create validates the form client-side, posts the new record, and reloads
// the full list after the backend confirms. The created booth appears only
// through that reload.
func (s *serviceImpl) Create(ctx context.Context, form dto.BoothForm) (err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	creds, err := s.guard.Require()
	if err != nil {
		return err
	}

	if err = validator.ValidateStruct(&form); err != nil {
		s.setError(err.Error())

		return err
	}

	return s.save(ctx, func(ctx context.Context) (*backend.Response, error) {
		return s.gateway.AdminPost(ctx, adminBoothsPath, creds, form.ToPayload())
	})
}

// Update resends the full form as a patch against the record id. The booth
// number is immutable: whatever the form carries, the stored number wins.
func (s *serviceImpl) Update(ctx context.Context, booth model.Booth, form dto.BoothForm) (err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	creds, err := s.guard.Require()
	if err != nil {
		return err
	}

	form.Number = booth.Number

	if err = validator.ValidateStruct(&form); err != nil {
		s.setError(err.Error())

		return err
	}

	return s.save(ctx, func(ctx context.Context) (*backend.Response, error) {
		return s.gateway.AdminPatch(ctx, adminBoothsPath+"/"+booth.ID, creds, form.ToPayload())
	})
}

// save runs one mutating call under the saving flag, then reloads the list
// strictly after the response: await-then-reload.
func (s *serviceImpl) save(ctx context.Context, call func(ctx context.Context) (*backend.Response, error)) error {
	s.mu.Lock()
	s.saving = true
	s.err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	res, err := call(ctx)
	if err != nil {
		s.setError(s.banner(err, msgSaveFailed))

		return err
	}

	if res.Unauthorized() {
		s.guard.Unauthorized()

		return failure.LoginRequired // nolint:wrapcheck
	}

	if msg := res.AppError(); msg != "" {
		err = failure.Application(msg, msgSaveFailed)
		s.setError(err.Error())

		return err // nolint:wrapcheck
	}

	return s.Refresh(ctx)
}

// Delete asks for confirmation before anything touches the network; a
// negative answer leaves the list untouched. At most one delete per booth id
// may be outstanding, and the list reloads only after the backend confirms.
func (s *serviceImpl) Delete(ctx context.Context, booth model.Booth) (err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	creds, err := s.guard.Require()
	if err != nil {
		return err
	}

	if !s.confirm.Confirm(fmt.Sprintf("Delete booth %d?", booth.Number)) {
		log.Debug().Str("id", booth.ID).Msg("booth delete cancelled at confirmation")

		return nil
	}

	s.mu.Lock()
	if s.deleting == booth.ID {
		s.mu.Unlock()
		log.Debug().Str("id", booth.ID).Msg("delete already in flight, dropping")

		return nil
	}
	s.deleting = booth.ID
	s.err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.deleting = ""
		s.mu.Unlock()
	}()

	res, err := s.gateway.AdminDelete(ctx, adminBoothsPath+"/"+booth.ID, creds)
	if err != nil {
		s.setError(s.banner(err, msgDeleteFailed))

		return err
	}

	if res.Unauthorized() {
		s.guard.Unauthorized()

		return failure.LoginRequired // nolint:wrapcheck
	}

	var out dto.DeleteResponse
	if decodeErr := res.Decode(&out); decodeErr == nil && !out.Success {
		err = failure.Application(out.Error, msgDeleteFailed)
		s.setError(err.Error())

		return err // nolint:wrapcheck
	}

	return s.Refresh(ctx)
}

// UploadLogo preprocesses and uploads a logo file, returning the hosted URL
// for the caller to merge into the open edit form. Nothing is persisted on the
// booth record until the surrounding create or update runs; on failure the
// form's prior logo value stays as it was.
func (s *serviceImpl) UploadLogo(ctx context.Context, filename string, raw []byte) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".UploadLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	creds, err := s.guard.Require()
	if err != nil {
		return "", err
	}

	logo, err := image.PrepareLogo(raw, filename, image.Options{
		MaxWidth:     s.cfg.Logo.MaxWidth,
		MaxHeight:    s.cfg.Logo.MaxHeight,
		JPEGQuality:  s.cfg.Logo.JPEGQuality,
		MaxSizeBytes: int64(s.cfg.Logo.MaxSizeMB) << 20,
	})
	if err != nil {
		s.setError(err.Error())

		return "", err
	}

	res, err := s.gateway.UploadLogo(ctx, creds, filename, logo.Content)
	if err != nil {
		s.setError(s.banner(err, msgUploadFailed))

		return "", err
	}

	if res.Unauthorized() {
		s.guard.Unauthorized()

		return "", failure.LoginRequired // nolint:wrapcheck
	}

	var out dto.UploadLogoResponse
	if err = res.Decode(&out); err != nil {
		s.setError(msgUploadFailed)

		return "", err
	}

	if !out.Success || out.URL == "" {
		err = failure.Application(out.Error, msgUploadFailed)
		s.setError(err.Error())

		return "", err // nolint:wrapcheck
	}

	return out.URL, nil
}

// Requests lists booking requests, optionally narrowed to one booth number.
func (s *serviceImpl) Requests(ctx context.Context, boothNumber *int) (requests []model.BookingRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Requests")
	defer scope.End()
	defer scope.TraceIfError(err)

	creds, err := s.guard.Require()
	if err != nil {
		return nil, err
	}

	path := adminRequestsPath
	if boothNumber != nil {
		path += "?boothNumber=" + strconv.Itoa(*boothNumber)
	}

	res, err := s.gateway.AdminGet(ctx, path, creds)
	if err != nil {
		return nil, err
	}

	if res.Unauthorized() {
		s.guard.Unauthorized()

		return nil, failure.LoginRequired // nolint:wrapcheck
	}

	if msg := res.AppError(); msg != "" {
		return nil, failure.Application(msg, msgRequestsFailed) // nolint:wrapcheck
	}

	if err = res.Decode(&requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// Snapshot returns a copy safe for rendering while operations continue.
func (s *serviceImpl) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	booths := make([]model.Booth, len(s.booths))
	copy(booths, s.booths)

	return State{
		Booths:     booths,
		Loading:    s.loading,
		Saving:     s.saving,
		Error:      s.err,
		DeletingID: s.deleting,
	}
}

func (s *serviceImpl) setError(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

// banner picks the user-visible string for an error: network failures and
// application errors already carry their message, anything else falls back to
// the per-operation generic.
func (s *serviceImpl) banner(err error, fallback string) string {
	switch failure.GetKind(err) {
	case failure.KindNetwork, failure.KindApplication, failure.KindValidation:
		return err.Error()
	default:
		return fallback
	}
}
