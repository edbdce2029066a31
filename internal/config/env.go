package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
)

// EnvPrefix is prepended to every publish option read from the environment.
const EnvPrefix = "HLX_"

// envOptions maps publish options to environment variables (after EnvPrefix).
// update-bot-config and config-purge-api are flag-only.
type envOptions struct {
	WskHost         *string `env:"WSK_HOST"`
	WskAuth         *string `env:"WSK_AUTH"`
	WskNamespace    *string `env:"WSK_NAMESPACE"`
	FastlyNamespace *string `env:"FASTLY_NAMESPACE"`
	FastlyAuth      *string `env:"FASTLY_AUTH"`
	DryRun          *bool   `env:"DRY_RUN"`
	PublishAPI      *string `env:"PUBLISH_API"`
	GithubToken     *string `env:"GITHUB_TOKEN"`
}

// Settings holds ambient settings that are not publish options.
type Settings struct {
	LogLevel      string `env:"HLX_LOG_LEVEL" envDefault:"info"`
	ReceiptBucket string `env:"HLX_RECEIPT_BUCKET"`
	ReceiptPrefix string `env:"HLX_RECEIPT_PREFIX" envDefault:"hlx/receipts"`
	Region        string `env:"AWS_REGION"`
}

// Environ returns an environment snapshot: values from envFile, overridden by
// the non-empty process environment. A missing envFile is ignored.
func Environ(envFile string) (map[string]string, error) {
	out := map[string]string{}
	if envFile != "" {
		vars, err := gotenv.Read(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		for k, v := range vars {
			out[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && v != "" {
			out[k] = v
		}
	}
	return out, nil
}

// FromEnv reads publish options from an environment snapshot.
func FromEnv(environ map[string]string) (Raw, error) {
	var opts envOptions
	if err := env.ParseWithOptions(&opts, env.Options{
		Environment: nonNil(environ),
		Prefix:      EnvPrefix,
	}); err != nil {
		return Raw{}, fmt.Errorf("parse environment: %w", err)
	}
	return Raw{
		WskHost:         opts.WskHost,
		WskAuth:         opts.WskAuth,
		WskNamespace:    opts.WskNamespace,
		FastlyNamespace: opts.FastlyNamespace,
		FastlyAuth:      opts.FastlyAuth,
		DryRun:          opts.DryRun,
		PublishAPI:      opts.PublishAPI,
		GithubToken:     opts.GithubToken,
	}, nil
}

// SettingsFromEnv reads ambient settings from an environment snapshot.
func SettingsFromEnv(environ map[string]string) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: nonNil(environ)}); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, nil
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
