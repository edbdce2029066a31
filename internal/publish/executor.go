package publish

import "context"

//go:generate mockgen -source=executor.go -destination=../mock/executor_mock.go -package=mock

// Executor performs the remote publish once it has been configured.
// The configurator calls the setters in declaration order, skipping absent
// options, and then calls Run exactly once.
type Executor interface {
	WithWskHost(host string)
	WithWskAuth(auth string)
	WithWskNamespace(namespace string)
	WithFastlyNamespace(namespace string)
	WithFastlyAuth(auth string)
	WithDryRun(dryRun bool)
	WithPublishAPI(url string)
	WithConfigPurgeAPI(url string)
	WithUpdateBotConfig(update bool)
	WithGithubToken(token string)
	Run(ctx context.Context) error
}
