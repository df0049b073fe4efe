package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"boothdesk/infras/backend"
	"boothdesk/infras/credstore"
	"boothdesk/infras/otel"
	"boothdesk/shared/failure"
	"boothdesk/shared/ui"
	"boothdesk/shared/validator"
)

const (
	otelScopeName = "session"

	// Front-end routes handed to the Navigator.
	LoginRoute       = "/admin/login"
	AdminBoothsRoute = "/admin/booths"

	// Protected listing probed once at login purely to validate the pair.
	probePath = "/admin/booths"
)

// LoginForm carries the credentials entered at login. Both fields are
// checked client-side before any network call.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Guard gates every admin operation on the presence of stored credentials
// and owns the login/logout flow.
type Guard interface {
	Require() (backend.Credentials, error)
	Login(ctx context.Context, username, password string) error
	Logout()
	Unauthorized()
}

type guardImpl struct {
	gateway backend.Gateway
	store   credstore.Store
	nav     ui.Navigator
	otel    otel.Otel
}

func New(gateway backend.Gateway, store credstore.Store, nav ui.Navigator, ot otel.Otel) Guard {
	return &guardImpl{
		gateway: gateway,
		store:   store,
		nav:     nav,
		otel:    ot,
	}
}

// Require returns the stored pair for immediate one-shot use. When either
// field is absent it redirects to the login flow and aborts the caller with
// failure.LoginRequired; no network call may run after that.
func (g *guardImpl) Require() (backend.Credentials, error) {
	creds := g.store.Read()

	if creds.Blank() {
		log.Debug().Msg("no stored admin credentials, redirecting to login")
		g.nav.Navigate(LoginRoute)

		return backend.Credentials{}, failure.LoginRequired // nolint:wrapcheck
	}

	return creds, nil
}

// Login validates the pair against a protected listing and persists it only
// on success. The probe response itself is discarded; the pair is re-sent
// fresh on every later admin call.
func (g *guardImpl) Login(ctx context.Context, username, password string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, otelScopeName, otelScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	form := LoginForm{Username: username, Password: password}
	if err = validator.ValidateStruct(&form); err != nil {
		return err
	}

	res, err := g.gateway.AdminGet(ctx, probePath, backend.Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}

	if res.Unauthorized() {
		return failure.InvalidCredentialsError // nolint:wrapcheck
	}

	if !res.OK() {
		log.Warn().Int("status", res.Status).Msg("credential probe failed")

		return failure.VerificationError // nolint:wrapcheck
	}

	g.store.Save(username, password)
	g.nav.Navigate(AdminBoothsRoute)

	return nil
}

// Logout clears the stored pair unconditionally; it always succeeds.
func (g *guardImpl) Logout() {
	g.store.Clear()
}

// Unauthorized handles a 401-equivalent on an admin call mid-session by
// sending the user back through the login flow.
func (g *guardImpl) Unauthorized() {
	g.nav.Navigate(LoginRoute)
}
