package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PositionHandler decodes telemetry messages and records them as device positions
type PositionHandler struct {
	logger       *slog.Logger
	telemetrySvc usecase.TelemetryUsecase
	metrics      service.MetricsRecorder
}

// PositionHandlerParams holds dependencies for the PositionHandler
type PositionHandlerParams struct {
	fx.In

	Logger       *slog.Logger
	TelemetrySvc usecase.TelemetryUsecase
	Metrics      service.MetricsRecorder `optional:"true"`
}

// NewPositionHandler creates a new telemetry position handler
func NewPositionHandler(params PositionHandlerParams) *PositionHandler {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetricsRecorder{}
	}

	return &PositionHandler{
		logger:       params.Logger,
		telemetrySvc: params.TelemetrySvc,
		metrics:      metrics,
	}
}

// HandleMessage records one position report. Malformed payloads are rejected
// with a BAD_REQUEST error and never reach the use case.
func (h *PositionHandler) HandleMessage(ctx context.Context, msg *service.TelemetryMessage) error {
	// Priority: producer header > transport ID > generated
	messageID := deliverycontext.ResolveMessageID(msg.Headers[deliverycontext.HeaderMessageID], msg.ID)

	msgLogger := h.logger.With(
		slog.String("message_id", messageID),
		slog.String("subject", msg.Subject),
	)
	ctx = deliverycontext.WithMessageID(ctx, messageID)
	ctx = deliverycontext.WithLogger(ctx, msgLogger)

	input, err := decodePosition(msg.Data)
	if err != nil {
		h.metrics.ObservePosition(err)
		msgLogger.Warn("[Worker] Dropping malformed position message", slog.Any("error", err))

		return err
	}

	if _, err := h.telemetrySvc.RecordPosition(ctx, input); err != nil {
		msgLogger.Warn("[Worker] Failed to record position",
			slog.String("device", input.Device),
			slog.String("kind", string(domainerrors.KindOf(err))),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

func decodePosition(data []byte) (*usecase.PositionInput, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domainerrors.ErrInvalidPosition.WithDetails("empty payload")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))

	var input usecase.PositionInput
	if err := decoder.Decode(&input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidPosition.WithDetails(err.Error()), "decode position")
	}

	return &input, nil
}
