package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"boothdesk/config"
	"boothdesk/infras/backend"
	"boothdesk/infras/otel"
	"boothdesk/internal/domains/booth/model"
	"boothdesk/internal/domains/booth/model/dto"
	"boothdesk/shared/failure"
	"boothdesk/shared/poller"
	"boothdesk/shared/ui"
)

const (
	otelScopeName = "directory"

	boothsPath          = "/booths"
	bookingRequestsPath = "/booking-requests"

	defaultPollInterval = 10 * time.Second

	msgLoadFailed = "Failed to load booths."
	msgBookFailed = "Something went wrong while booking this booth."
)

// State is a render snapshot of the public directory. Error is a banner
// string cleared at the start of the next attempt, not on a timer.
type State struct {
	Booths          []model.Booth
	Loading         bool
	Error           string
	BookingInFlight map[int]bool
}

// Positioned returns the booths carrying floorplan coordinates, for map
// markers.
func (s State) Positioned() []model.Booth {
	out := make([]model.Booth, 0, len(s.Booths))
	for _, b := range s.Booths {
		if b.Position != nil {
			out = append(out, b)
		}
	}

	return out
}

// Unpositioned returns the booths without coordinates; they are only
// bookable from the list.
func (s State) Unpositioned() []model.Booth {
	out := make([]model.Booth, 0, len(s.Booths))
	for _, b := range s.Booths {
		if b.Position == nil {
			out = append(out, b)
		}
	}

	return out
}

// Directory is the public booth view-model: a polled snapshot of the booth
// list plus the booking action. Errors never escape it; they land in the
// snapshot's Error field.
type Directory interface {
	Start(ctx context.Context)
	Stop()
	Refresh(ctx context.Context)
	Book(ctx context.Context, booth model.Booth)
	Snapshot() State
}

type serviceImpl struct {
	gateway backend.Gateway
	nav     ui.Navigator
	otel    otel.Otel
	poll    *poller.Poller

	mu      sync.Mutex
	epoch   int
	booths  []model.Booth
	loading bool
	err     string
	booking map[int]bool
}

func New(cfg *config.Config, gateway backend.Gateway, nav ui.Navigator, ot otel.Otel) Directory {
	interval := time.Duration(cfg.Directory.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = defaultPollInterval
	}

	s := &serviceImpl{
		gateway: gateway,
		nav:     nav,
		otel:    ot,
		loading: true,
		booking: map[int]bool{},
	}

	s.poll = poller.New(interval, s.Refresh)

	return s
}

// Start refreshes immediately and then on the fixed interval until Stop.
func (s *serviceImpl) Start(ctx context.Context) {
	s.poll.Start(ctx)
}

// Stop cancels the polling timer and bumps the epoch so responses still in
// flight resolve without touching state.
func (s *serviceImpl) Stop() {
	s.poll.Stop()

	s.mu.Lock()
	s.epoch++
	s.mu.Unlock()
}

// Refresh replaces the booth snapshot wholesale. A failed attempt keeps the
// previous snapshot and sets the error banner: stale-but-available.
func (s *serviceImpl) Refresh(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Refresh")
	defer scope.End()

	s.mu.Lock()
	epoch := s.epoch
	s.err = ""
	s.mu.Unlock()

	booths, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		log.Debug().Msg("discarding booth refresh for deactivated view")

		return
	}

	s.loading = false

	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("booth refresh failed, keeping previous snapshot")
		s.err = msgLoadFailed

		return
	}

	s.booths = booths
}

func (s *serviceImpl) fetch(ctx context.Context) ([]model.Booth, error) {
	res, err := s.gateway.PublicGet(ctx, boothsPath)
	if err != nil {
		return nil, err
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

// Book sends a booking request for the booth. At most one request per booth
// number may be outstanding; repeat calls for the same number while one is
// in flight are dropped before reaching the network. Calls for different
// booths run independently. On success the redirect target goes to the
// Navigator; the local status field is never mutated, so occupancy becomes
// visible only through the next poll.
func (s *serviceImpl) Book(ctx context.Context, booth model.Booth) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Book")
	defer scope.End()

	s.mu.Lock()

	if s.booking[booth.Number] {
		s.mu.Unlock()
		log.Debug().Int("booth", booth.Number).Msg("booking already in flight, dropping")

		return
	}

	s.booking[booth.Number] = true
	s.err = ""
	epoch := s.epoch
	s.mu.Unlock()

	payload := dto.BookingRequestPayload{
		BoothNumber: booth.Number,
		BoothName:   booth.DisplayName(),
	}

	redirect, err := s.requestBooking(ctx, payload)

	s.mu.Lock()
	delete(s.booking, booth.Number)

	stale := s.epoch != epoch
	if !stale && err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int("booth", booth.Number).Msg("booking failed")
		s.err = err.Error()
	}
	s.mu.Unlock()

	if !stale && err == nil {
		s.nav.Navigate(redirect)
	}
}

func (s *serviceImpl) requestBooking(ctx context.Context, payload dto.BookingRequestPayload) (string, error) {
	res, err := s.gateway.PublicPost(ctx, bookingRequestsPath, payload)
	if err != nil {
		return "", failure.Application("", msgBookFailed) // nolint:wrapcheck
	}

	var out dto.BookResponse
	if err := res.Decode(&out); err != nil {
		return "", failure.Application("", msgBookFailed) // nolint:wrapcheck
	}

	if !out.Success || out.RedirectURL == "" {
		return "", failure.Application(out.Error, msgBookFailed) // nolint:wrapcheck
	}

	return out.RedirectURL, nil
}

// Snapshot returns a copy safe for rendering while refreshes continue.
func (s *serviceImpl) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	booths := make([]model.Booth, len(s.booths))
	copy(booths, s.booths)

	booking := make(map[int]bool, len(s.booking))
	for number := range s.booking {
		booking[number] = true
	}

	return State{
		Booths:          booths,
		Loading:         s.loading,
		Error:           s.err,
		BookingInFlight: booking,
	}
}
