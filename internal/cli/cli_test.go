package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hlx/internal/mock"
)

type failures struct {
	msgs []string
}

func (f *failures) record(msg string) { f.msgs = append(f.msgs, msg) }

func minimalArgs(extra ...string) []string {
	args := []string{"publish",
		"--wsk-auth", "secret-key",
		"--wsk-namespace", "hlx",
		"--fastly-auth", "secret-key",
		"--fastly-namespace", "hlx",
	}
	return append(args, extra...)
}

func TestPublishRequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)
	f := &failures{}

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		OnFail(f.record).
		Run(context.Background(), []string{"publish"})

	require.NoError(t, err)
	require.Len(t, f.msgs, 1)
	assert.Contains(t, f.msgs[0], "required")
}

func TestPublishCanUseEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)

	ex.EXPECT().WithWskHost("myruntime.net")
	ex.EXPECT().WithWskAuth("foobar")
	ex.EXPECT().WithWskNamespace("1234")
	ex.EXPECT().WithFastlyNamespace("1234")
	ex.EXPECT().WithFastlyAuth("foobar")
	ex.EXPECT().WithPublishAPI("foobar.api")
	ex.EXPECT().WithDryRun(true)
	ex.EXPECT().Run(gomock.Any()).Return(nil)

	f := &failures{}
	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnvFile(filepath.Join("testdata", "all.env")).
		OnFail(f.record).
		Run(context.Background(), []string{"publish"})

	require.NoError(t, err)
	assert.Empty(t, f.msgs)
}

func TestPublishWorksWithMinimalArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)

	gomock.InOrder(
		ex.EXPECT().WithWskHost("adobeioruntime.net"),
		ex.EXPECT().WithWskAuth("secret-key"),
		ex.EXPECT().WithWskNamespace("hlx"),
		ex.EXPECT().WithFastlyNamespace("hlx"),
		ex.EXPECT().WithFastlyAuth("secret-key"),
		ex.EXPECT().WithDryRun(false),
		ex.EXPECT().Run(gomock.Any()).Return(nil).Times(1),
	)

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		Run(context.Background(), minimalArgs())
	require.NoError(t, err)
}

func TestPublishImplicitBotConfigWithGithubToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)

	ex.EXPECT().WithWskHost(gomock.Any())
	ex.EXPECT().WithWskAuth(gomock.Any())
	ex.EXPECT().WithWskNamespace(gomock.Any())
	ex.EXPECT().WithFastlyNamespace(gomock.Any())
	ex.EXPECT().WithFastlyAuth(gomock.Any())
	ex.EXPECT().WithDryRun(gomock.Any())
	ex.EXPECT().WithUpdateBotConfig(true)
	ex.EXPECT().WithGithubToken("foobar")
	ex.EXPECT().WithConfigPurgeAPI("https://app.project-helix.io/config/purge")
	ex.EXPECT().Run(gomock.Any()).Return(nil).Times(1)

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		Run(context.Background(), minimalArgs("--github-token", "foobar"))
	require.NoError(t, err)
}

func TestPublishRequiresGithubTokenForUpdateConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)
	f := &failures{}

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		OnFail(f.record).
		Run(context.Background(), minimalArgs("--update-bot-config"))

	require.NoError(t, err)
	require.Len(t, f.msgs, 1)
	assert.Contains(t, f.msgs[0], "required")
}

func TestPublishExplicitlyDisabledBotConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)

	ex.EXPECT().WithWskHost(gomock.Any())
	ex.EXPECT().WithWskAuth(gomock.Any())
	ex.EXPECT().WithWskNamespace(gomock.Any())
	ex.EXPECT().WithFastlyNamespace(gomock.Any())
	ex.EXPECT().WithFastlyAuth(gomock.Any())
	ex.EXPECT().WithDryRun(gomock.Any())
	ex.EXPECT().WithUpdateBotConfig(false)
	ex.EXPECT().WithGithubToken("foobar")
	ex.EXPECT().Run(gomock.Any()).Return(nil)

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		Run(context.Background(), minimalArgs("--github-token", "foobar", "--no-update-bot-config"))
	require.NoError(t, err)
}

func TestPublishFlagsWinOverEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)

	ex.EXPECT().WithWskHost("flag.runtime.net")
	ex.EXPECT().WithWskAuth("secret-key")
	ex.EXPECT().WithWskNamespace("hlx")
	ex.EXPECT().WithFastlyNamespace("hlx")
	ex.EXPECT().WithFastlyAuth("secret-key")
	ex.EXPECT().WithDryRun(true)
	ex.EXPECT().WithPublishAPI("env.api")
	ex.EXPECT().Run(gomock.Any()).Return(nil)

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{
			"HLX_WSK_HOST":      "env.runtime.net",
			"HLX_WSK_AUTH":      "env-key",
			"HLX_WSK_NAMESPACE": "env-ns",
			"HLX_PUBLISH_API":   "env.api",
		}).
		Run(context.Background(), minimalArgs("--wsk-host", "flag.runtime.net", "--dry-run"))
	require.NoError(t, err)
}

func TestPublishExecutorErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)
	boom := errors.New("boom")

	ex.EXPECT().WithWskHost(gomock.Any())
	ex.EXPECT().WithWskAuth(gomock.Any())
	ex.EXPECT().WithWskNamespace(gomock.Any())
	ex.EXPECT().WithFastlyNamespace(gomock.Any())
	ex.EXPECT().WithFastlyAuth(gomock.Any())
	ex.EXPECT().WithDryRun(gomock.Any())
	ex.EXPECT().Run(gomock.Any()).Return(boom)

	f := &failures{}
	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		OnFail(f.record).
		Run(context.Background(), minimalArgs())

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.msgs)
}

func TestInvalidEnvIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)
	f := &failures{}

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{"HLX_DRY_RUN": "perhaps"}).
		OnFail(f.record).
		Run(context.Background(), minimalArgs())

	require.NoError(t, err)
	assert.Len(t, f.msgs, 1)
}

func TestUnknownFlagIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)
	f := &failures{}

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		OnFail(f.record).
		Run(context.Background(), minimalArgs("--no-such-flag"))

	require.NoError(t, err)
	assert.Len(t, f.msgs, 1)
}

func TestMissingExecutor(t *testing.T) {
	err := New().
		WithEnviron(map[string]string{}).
		Run(context.Background(), minimalArgs())
	assert.Error(t, err)
}

func TestDefaultFailureOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)
	var out bytes.Buffer

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		WithOutput(&out).
		Run(context.Background(), []string{"publish"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "required")
}

func TestHelpDoesNotRunExecutor(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mock.NewMockExecutor(ctrl)
	var out bytes.Buffer
	f := &failures{}

	err := New().
		WithCommandExecutor(PublishCommand, ex).
		WithEnviron(map[string]string{}).
		WithOutput(&out).
		OnFail(f.record).
		Run(context.Background(), []string{"publish", "--help"})

	require.NoError(t, err)
	assert.Empty(t, f.msgs)
	assert.Contains(t, out.String(), "--wsk-auth")
}
