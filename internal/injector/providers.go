package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/geokit/internal/core/observability/log"
	"github.com/zeusync/geokit/internal/scenario"
)

// Options carries the command line settings into the providers.
type Options struct {
	LogLevel log.Level
	Workers  int
}

var RunnerSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideRunner,
)

func ProvideLogger(options Options) (*log.Logger, func(), error) {
	logger, err := log.New(options.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideRunner(logger log.Log, options Options) *scenario.Runner {
	return scenario.NewRunner(logger, scenario.WithWorkers(options.Workers))
}
