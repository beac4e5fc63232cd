package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/mutker/errchain"
	"codeberg.org/mutker/errchain/internal/config"
	"codeberg.org/mutker/errchain/internal/endpoint"
	"codeberg.org/mutker/errchain/internal/logger"
	"codeberg.org/mutker/errchain/internal/report"
)

var (
	cfg  *config.Config
	sink report.Sink
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, err := cfg.Level()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(level)
	logger.Debug().Msg("Config loaded")
}

func main() {
	ctx := context.Background()

	if cfg.Report {
		var err error
		sink, err = report.NewSink(report.Config{DBPath: cfg.ReportDB})
		if err != nil {
			if invalid, ok := errchain.AsType[report.InvalidPathError](err); ok {
				logger.Warn().Str("path", invalid.Path).Msg("Report sink disabled: unusable database path")
			} else {
				logger.ErrorChain(err).Msg("failed to open report sink")
				os.Exit(1)
			}
		}
	}
	if sink != nil {
		defer sink.Close()
	}

	desc := endpoint.Seed()

	scenarios := []struct {
		name string
		run  func(endpoint.Descriptor) error
	}{
		{"one-off failure", func(d endpoint.Descriptor) error {
			_, err := d.Owner()
			return err
		}},
		{"categorized failure", func(d endpoint.Descriptor) error {
			_, err := d.Field("doesnt-exist")
			return err
		}},
		{"categorized failure with context", func(d endpoint.Descriptor) error {
			_, err := d.Name()
			return err
		}},
		{"foreign parse failure", func(d endpoint.Descriptor) error {
			_, err := d.Port()
			return errchain.Wrap(err, "resolving port of TCR API endpoint")
		}},
	}

	for _, s := range scenarios {
		err := s.run(desc)
		if err == nil {
			logger.Info().Str("scenario", s.name).Msg("No failure")
			continue
		}

		logFailure(s.name, err)
		record(ctx, err)
	}
}

// logFailure branches on the one taxonomy variant the demo knows how
// to handle differently before falling back to generic chain logging.
func logFailure(scenario string, err error) {
	if missing, ok := errchain.AsType[endpoint.FieldMissingError](err); ok {
		logger.ErrorChain(err).
			Str("scenario", scenario).
			Str("missing_field", missing.Field).
			Msg("Descriptor field is absent")
		return
	}

	logger.ErrorChain(err).Str("scenario", scenario).Msg("Scenario failed")
}

func record(ctx context.Context, failure error) {
	if sink == nil {
		return
	}

	if err := sink.Record(ctx, failure); err != nil {
		logger.ErrorChain(err).Msg("failed to record failure")
	}
}
