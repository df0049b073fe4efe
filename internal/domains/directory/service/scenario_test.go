package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"boothdesk/config"
	"boothdesk/infras/backend"
	otelMocks "boothdesk/infras/otel/mocks"
	"boothdesk/internal/domains/booth/model"
	"boothdesk/internal/domains/directory/service"
	uiMocks "boothdesk/shared/ui/mocks"
)

// Full pass over the public flow against a scripted backend: load the
// directory, see both occupancy states rendered, book the empty booth, get
// redirected, and observe that only the next poll may flip the status.
func TestDirectory_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := uiMocks.NewMockNavigator(ctrl)

	var bookedPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/booths":
			w.Write([]byte(`[{"_id":"b1","number":1,"category":"other","status":"empty"},{"_id":"b2","number":2,"category":"gold","status":"occupied"}]`)) // nolint:errcheck
		case r.Method == http.MethodPost && r.URL.Path == "/booking-requests":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&bookedPayload))
			w.Write([]byte(`{"success":true,"redirectUrl":"/thanks"}`)) // nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL
	cfg.Directory.PollIntervalSeconds = 10

	gateway := backend.New(cfg, otelMocks.NewOtel())
	dir := service.New(cfg, gateway, nav, otelMocks.NewOtel())

	ctx := context.Background()
	dir.Refresh(ctx)

	state := dir.Snapshot()
	require.Len(t, state.Booths, 2)
	assert.Equal(t, model.StatusEmpty, state.Booths[0].Status)
	assert.Equal(t, model.StatusOccupied, state.Booths[1].Status)

	nav.EXPECT().Navigate("/thanks")

	dir.Book(ctx, state.Booths[0])

	assert.Equal(t, map[string]any{"boothNumber": float64(1), "boothName": "Booth 1"}, bookedPayload)

	// Booking never mutates the local snapshot.
	state = dir.Snapshot()
	assert.Equal(t, model.StatusEmpty, state.Booths[0].Status)
	assert.Empty(t, state.Error)
}
