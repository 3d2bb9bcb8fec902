package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tracker/config"
	domainerrors "tracker/internal/domain/errors"
	logs "tracker/internal/infra/log"
	"tracker/internal/infra/persistence/postgres"
	"tracker/internal/usecase"
	"tracker/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - routes:    List every route
// - route:     Show one route
// - save:      Create or update a route from a JSON file
// - metrics:   Compute the GeoJSON metrics of a route
// - positions: List the latest position of every device
// - record:    Record a position report from a JSON file

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := newCtlFlags()
	if err := flags.parse(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error [%s]: %v\n", domainerrors.KindOf(err), err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *ctlFlags) error {
	var routeSvc usecase.RouteUsecase
	var telemetrySvc usecase.TelemetryUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			newStderrLogger,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewRouteService,
			impl.NewTelemetryService,
		),
		fx.Populate(&routeSvc, &telemetrySvc),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to stop application: %v\n", err)
		}
	}()

	cli := &commands{
		routes:    routeSvc,
		telemetry: telemetrySvc,
		out:       os.Stdout,
	}

	return cli.run(ctx, flags)
}

// newStderrLogger keeps stdout free for the JSON result
func newStderrLogger(cfg *config.Config) (*slog.Logger, error) {
	return logs.NewWithWriter(os.Stderr, cfg)
}

type ctlFlags struct {
	command string

	routeCmd     *flag.FlagSet
	routeID      *uint
	saveCmd      *flag.FlagSet
	saveFile     *string
	metricsCmd   *flag.FlagSet
	metricsID    *uint
	metricsOut   *string
	recordCmd    *flag.FlagSet
	recordFile   *string
	routesCmd    *flag.FlagSet
	positionsCmd *flag.FlagSet
}

func newCtlFlags() *ctlFlags {
	f := &ctlFlags{
		routesCmd:    flag.NewFlagSet("routes", flag.ExitOnError),
		routeCmd:     flag.NewFlagSet("route", flag.ExitOnError),
		saveCmd:      flag.NewFlagSet("save", flag.ExitOnError),
		metricsCmd:   flag.NewFlagSet("metrics", flag.ExitOnError),
		positionsCmd: flag.NewFlagSet("positions", flag.ExitOnError),
		recordCmd:    flag.NewFlagSet("record", flag.ExitOnError),
	}

	f.routeID = f.routeCmd.Uint("id", 0, "Route identifier")
	f.saveFile = f.saveCmd.String("file", "-", "Route JSON file, - for stdin")
	f.metricsID = f.metricsCmd.Uint("id", 0, "Route identifier")
	f.metricsOut = f.metricsCmd.String("out", "", "Write the GeoJSON to this file instead of stdout")
	f.recordFile = f.recordCmd.String("file", "-", "Position JSON file, - for stdin")

	return f
}

func (f *ctlFlags) parse(command string, args []string) error {
	f.command = command

	var set *flag.FlagSet
	switch command {
	case "routes":
		set = f.routesCmd
	case "route":
		set = f.routeCmd
	case "save":
		set = f.saveCmd
	case "metrics":
		set = f.metricsCmd
	case "positions":
		set = f.positionsCmd
	case "record":
		set = f.recordCmd
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", command)
	}

	if err := set.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", command)
	}

	if (command == "route" && *f.routeID == 0) || (command == "metrics" && *f.metricsID == 0) {
		return errors.Errorf("--id flag is required for %s command", command)
	}

	return nil
}

func printUsage() {
	fmt.Println("Usage: routectl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  routes       List every route")
	fmt.Println("  route        Show one route (-id)")
	fmt.Println("  save         Create or update a route (-file)")
	fmt.Println("  metrics      Compute route metrics as GeoJSON (-id, -out)")
	fmt.Println("  positions    List the latest position of every device")
	fmt.Println("  record       Record a position report (-file)")
	fmt.Println("")
	fmt.Println("Use 'routectl <command> -h' for more information about a command.")
}
