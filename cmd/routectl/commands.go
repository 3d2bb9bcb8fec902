package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"tracker/internal/usecase"

	"github.com/pkg/errors"
)

// commands executes one parsed subcommand against the use cases
type commands struct {
	routes    usecase.RouteUsecase
	telemetry usecase.TelemetryUsecase
	in        io.Reader // stdin when nil
	out       io.Writer
}

func (c *commands) run(ctx context.Context, flags *ctlFlags) error {
	switch flags.command {
	case "routes":
		return c.listRoutes(ctx)
	case "route":
		return c.showRoute(ctx, *flags.routeID)
	case "save":
		return c.saveRoute(ctx, *flags.saveFile)
	case "metrics":
		return c.routeMetrics(ctx, *flags.metricsID, *flags.metricsOut)
	case "positions":
		return c.latestPositions(ctx)
	case "record":
		return c.recordPosition(ctx, *flags.recordFile)
	default:
		return errors.Errorf("unknown subcommand %q", flags.command)
	}
}

func (c *commands) listRoutes(ctx context.Context) error {
	routes, err := c.routes.FindAllRoutes(ctx)
	if err != nil {
		return err
	}

	return writeJSON(c.out, routes)
}

func (c *commands) showRoute(ctx context.Context, id uint) error {
	route, err := c.routes.FindRouteByID(ctx, id)
	if err != nil {
		return err
	}

	return writeJSON(c.out, route)
}

func (c *commands) saveRoute(ctx context.Context, path string) error {
	var input usecase.RouteInput
	if err := c.readJSON(path, &input); err != nil {
		return err
	}

	route, err := c.routes.SaveRoute(ctx, &input)
	if err != nil {
		return err
	}

	return writeJSON(c.out, route)
}

func (c *commands) routeMetrics(ctx context.Context, id uint, outPath string) error {
	fc, err := c.routes.ComputeRouteMetrics(ctx, id)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writeJSON(c.out, fc)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", outPath)
	}
	defer file.Close()

	return writeJSON(file, fc)
}

func (c *commands) latestPositions(ctx context.Context) error {
	positions, err := c.telemetry.LatestPositions(ctx)
	if err != nil {
		return err
	}

	return writeJSON(c.out, positions)
}

func (c *commands) recordPosition(ctx context.Context, path string) error {
	var input usecase.PositionInput
	if err := c.readJSON(path, &input); err != nil {
		return err
	}

	position, err := c.telemetry.RecordPosition(ctx, &input)
	if err != nil {
		return err
	}

	return writeJSON(c.out, position)
}

func (c *commands) readJSON(path string, v any) error {
	var r io.Reader
	if path == "-" || path == "" {
		r = c.in
		if r == nil {
			r = os.Stdin
		}
	} else {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open %s", path)
		}
		defer file.Close()
		r = file
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return errors.Wrapf(err, "failed to decode %s", path)
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
