// Package cli parses the hlx command line and routes commands to their
// configurators. Every configuration problem, whether an unknown flag, a
// malformed environment value or a missing required option, is reported
// through a single failure callback.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"hlx/internal/config"
	"hlx/internal/publish"
)

const (
	appName        = "hlx"
	PublishCommand = "publish"
	defaultEnvFile = ".env"
)

type CLI struct {
	executors map[string]publish.Executor
	onFail    publish.FailFunc
	logger    *zap.Logger
	envFile   string
	environ   map[string]string
	output    io.Writer
}

func New() *CLI {
	return &CLI{
		executors: map[string]publish.Executor{},
		logger:    zap.NewNop(),
		envFile:   defaultEnvFile,
		output:    os.Stderr,
	}
}

// WithCommandExecutor registers the executor driven by the named command.
func (c *CLI) WithCommandExecutor(name string, ex publish.Executor) *CLI {
	c.executors[name] = ex
	return c
}

// OnFail sets the failure callback. Without one, failures are written to the
// output writer.
func (c *CLI) OnFail(fn publish.FailFunc) *CLI {
	c.onFail = fn
	return c
}

func (c *CLI) WithLogger(logger *zap.Logger) *CLI {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithEnvFile sets the env file read when no environment snapshot is given.
func (c *CLI) WithEnvFile(path string) *CLI {
	c.envFile = path
	return c
}

// WithEnviron replaces the process environment and env file with a fixed snapshot.
func (c *CLI) WithEnviron(environ map[string]string) *CLI {
	c.environ = environ
	return c
}

// WithOutput sets where usage and default failure messages are written.
func (c *CLI) WithOutput(w io.Writer) *CLI {
	c.output = w
	return c
}

// Run parses args and runs the selected command. Configuration failures go
// to the failure callback and Run returns nil; executor errors are returned.
func (c *CLI) Run(ctx context.Context, args []string) error {
	app := kingpin.New(appName, "Project Helix command line interface.")
	app.UsageWriter(c.output).ErrorWriter(c.output)
	terminated := false
	app.Terminate(func(int) { terminated = true })

	var pf publishFlags
	publishCmd := app.Command(PublishCommand, "Activate strains in the CDN and publish the site.")
	pf.register(publishCmd)

	cmd, err := app.Parse(args)
	if terminated {
		// help was printed
		return nil
	}
	if err != nil {
		c.fail(err.Error())
		return nil
	}

	switch cmd {
	case publishCmd.FullCommand():
		return c.runPublish(ctx, pf.raw())
	default:
		c.fail(fmt.Sprintf("unknown command %q", cmd))
		return nil
	}
}

func (c *CLI) runPublish(ctx context.Context, flags config.Raw) error {
	ex, ok := c.executors[PublishCommand]
	if !ok {
		return fmt.Errorf("no executor registered for %q", PublishCommand)
	}

	environ := c.environ
	if environ == nil {
		var err error
		environ, err = config.Environ(c.envFile)
		if err != nil {
			c.fail(err.Error())
			return nil
		}
	}
	env, err := config.FromEnv(environ)
	if err != nil {
		c.fail(err.Error())
		return nil
	}

	return publish.NewConfigurator(ex, c.fail, c.logger).Run(ctx, flags, env)
}

func (c *CLI) fail(msg string) {
	if c.onFail != nil {
		c.onFail(msg)
		return
	}
	fmt.Fprintf(c.output, "%s: error: %s\n", appName, msg)
}
