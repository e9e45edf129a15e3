package bootstrap

import (
	"log/slog"

	"queueline/internal/pkg/config"
	"queueline/internal/realtime"
	"queueline/internal/usecase/commands"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewHub,
		fx.Annotate(
			realtime.NewSnapshotBroadcaster,
			fx.As(new(commands.SnapshotPublisher)),
		),
	),
)

func NewHub(cfg config.Config, logger *slog.Logger) *realtime.Hub {
	return realtime.NewHub(cfg.Realtime, logger)
}
