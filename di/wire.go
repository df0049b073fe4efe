//go:build wireinject
// +build wireinject

package di

import (
	"boothdesk/config"
	"boothdesk/infras/backend"
	"boothdesk/infras/credstore"
	"boothdesk/infras/otel"
	"boothdesk/shared/ui"
	"boothdesk/transport/cli"

	boothadminService "boothdesk/internal/domains/boothadmin/service"
	directoryService "boothdesk/internal/domains/directory/service"
	sessionService "boothdesk/internal/domains/session/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	backend.New,
	credstore.New,
)

var terminal = wire.NewSet(
	cli.NewTerminalNavigator,
	wire.Bind(new(ui.Navigator), new(*cli.Navigator)),
	cli.NewTerminalConfirmer,
	wire.Bind(new(ui.Confirmer), new(*cli.Confirmer)),
)

var domains = wire.NewSet(
	sessionService.New,
	directoryService.New,
	boothadminService.New,
)

func InitializeCLI() *cli.CLI {
	wire.Build(
		configurations,
		infrastructures,
		terminal,
		domains,
		cli.New,
	)

	return &cli.CLI{}
}
