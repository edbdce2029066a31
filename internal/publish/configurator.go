package publish

import (
	"context"

	"go.uber.org/zap"

	"hlx/internal/config"
)

// FailFunc receives configuration errors. It is called at most once per run.
type FailFunc func(msg string)

// Configurator turns raw flag and environment values into a validated
// configuration and hands it to an Executor.
type Configurator struct {
	executor Executor
	onFail   FailFunc
	logger   *zap.Logger
}

func NewConfigurator(executor Executor, onFail FailFunc, logger *zap.Logger) *Configurator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Configurator{executor: executor, onFail: onFail, logger: logger}
}

// Run resolves flags over env over defaults, validates the result and drives
// the executor. Validation failures go to the fail callback and Run returns
// nil without touching the executor. Errors from the executor are returned
// unchanged.
func (c *Configurator) Run(ctx context.Context, flags, env config.Raw) error {
	raw := config.Normalize(config.Resolve(flags, env))
	cfg, err := config.Validate(raw)
	if err != nil {
		c.logger.Debug("publish configuration rejected", zap.Error(err))
		c.fail(err.Error())
		return nil
	}
	c.logger.Debug("publish configuration resolved", logFields(cfg)...)

	apply(c.executor, cfg)
	return c.executor.Run(ctx)
}

func (c *Configurator) fail(msg string) {
	if c.onFail != nil {
		c.onFail(msg)
		return
	}
	c.logger.Error("publish configuration invalid", zap.String("reason", msg))
}

func apply(ex Executor, cfg config.Validated) {
	if v, ok := cfg.WskHost(); ok {
		ex.WithWskHost(v)
	}
	if v, ok := cfg.WskAuth(); ok {
		ex.WithWskAuth(v)
	}
	if v, ok := cfg.WskNamespace(); ok {
		ex.WithWskNamespace(v)
	}
	if v, ok := cfg.FastlyNamespace(); ok {
		ex.WithFastlyNamespace(v)
	}
	if v, ok := cfg.FastlyAuth(); ok {
		ex.WithFastlyAuth(v)
	}
	if v, ok := cfg.DryRun(); ok {
		ex.WithDryRun(v)
	}
	if v, ok := cfg.PublishAPI(); ok {
		ex.WithPublishAPI(v)
	}
	if v, ok := cfg.ConfigPurgeAPI(); ok {
		ex.WithConfigPurgeAPI(v)
	}
	if v, ok := cfg.UpdateBotConfig(); ok {
		ex.WithUpdateBotConfig(v)
	}
	if v, ok := cfg.GithubToken(); ok {
		ex.WithGithubToken(v)
	}
}

var secretFields = map[config.Field]bool{
	config.FieldWskAuth:     true,
	config.FieldFastlyAuth:  true,
	config.FieldGithubToken: true,
}

func logFields(cfg config.Validated) []zap.Field {
	fields := make([]zap.Field, 0, len(config.Fields()))
	for _, f := range config.Fields() {
		v, ok := cfg.Lookup(f)
		if !ok {
			continue
		}
		if secretFields[f] {
			v = "***"
		}
		fields = append(fields, zap.String(string(f), v))
	}
	return fields
}
