package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"hlx/internal/cli"
	"hlx/internal/config"
	"hlx/internal/logging"
	"hlx/internal/paths"
	"hlx/internal/publish"
	"hlx/internal/remote"
	"hlx/internal/storage"
)

// errConfig marks a publish that never ran because its configuration was rejected.
var errConfig = errors.New("invalid publish configuration")

var newArchive = func(ctx context.Context, bucket, prefix, region string) (remote.ReceiptStore, error) {
	return storage.New(ctx, bucket, prefix, region)
}

var newExecutor = func(opts remote.Options) publish.Executor {
	return remote.New(opts)
}

// hlx publish
func cmdPublish(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := paths.New("")
	environ, err := config.Environ(builder.EnvFile())
	if err != nil {
		return err
	}
	settings, err := config.SettingsFromEnv(environ)
	if err != nil {
		return err
	}
	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var receipts remote.ReceiptStore
	if settings.ReceiptBucket != "" {
		receipts, err = newArchive(ctx, settings.ReceiptBucket, settings.ReceiptPrefix, settings.Region)
		if err != nil {
			return err
		}
		logger.Debug("receipt archive enabled",
			zap.String("bucket", settings.ReceiptBucket),
			zap.String("prefix", settings.ReceiptPrefix))
	}

	ex := newExecutor(remote.Options{
		Paths:    builder,
		Logger:   logger,
		Receipts: receipts,
	})

	var reason string
	err = cli.New().
		WithCommandExecutor(cli.PublishCommand, ex).
		WithEnviron(environ).
		WithLogger(logger).
		OnFail(func(msg string) {
			reason = msg
		}).
		Run(ctx, args)
	if err != nil {
		return err
	}
	if reason != "" {
		return fmt.Errorf("%w: %s", errConfig, reason)
	}
	return nil
}
