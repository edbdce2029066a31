package cli

import (
	"strconv"

	"github.com/alecthomas/kingpin/v2"

	"hlx/internal/config"
)

// stringFlag records whether the user passed the flag at all.
type stringFlag struct {
	v   string
	set bool
}

func (f *stringFlag) String() string { return f.v }

func (f *stringFlag) Set(s string) error {
	f.v = s
	f.set = true
	return nil
}

func (f *stringFlag) ptr() *string {
	if !f.set {
		return nil
	}
	return config.String(f.v)
}

type boolFlag struct {
	v   bool
	set bool
}

func (f *boolFlag) String() string { return strconv.FormatBool(f.v) }

func (f *boolFlag) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	f.v = b
	f.set = true
	return nil
}

func (f *boolFlag) IsBoolFlag() bool { return true }

func (f *boolFlag) ptr() *bool {
	if !f.set {
		return nil
	}
	return config.Bool(f.v)
}

type publishFlags struct {
	wskHost         stringFlag
	wskAuth         stringFlag
	wskNamespace    stringFlag
	fastlyNamespace stringFlag
	fastlyAuth      stringFlag
	dryRun          boolFlag
	publishAPI      stringFlag
	configPurgeAPI  stringFlag
	updateBotConfig boolFlag
	githubToken     stringFlag
}

func (pf *publishFlags) register(cmd *kingpin.CmdClause) {
	flag := func(f config.Field, help string, v kingpin.Value) {
		cmd.Flag(string(f), help).SetValue(v)
	}
	flag(config.FieldWskHost, "Runtime API host (default "+config.DefaultWskHost+", env HLX_WSK_HOST).", &pf.wskHost)
	flag(config.FieldWskAuth, "Runtime authentication key (env HLX_WSK_AUTH).", &pf.wskAuth)
	flag(config.FieldWskNamespace, "Runtime namespace (env HLX_WSK_NAMESPACE).", &pf.wskNamespace)
	flag(config.FieldFastlyNamespace, "CDN service ID (env HLX_FASTLY_NAMESPACE).", &pf.fastlyNamespace)
	flag(config.FieldFastlyAuth, "CDN API key (env HLX_FASTLY_AUTH).", &pf.fastlyAuth)
	flag(config.FieldDryRun, "Print what would be published without changing anything (env HLX_DRY_RUN).", &pf.dryRun)
	flag(config.FieldPublishAPI, "Publish API endpoint (env HLX_PUBLISH_API).", &pf.publishAPI)
	flag(config.FieldConfigPurgeAPI, "Bot config purge endpoint (default "+config.DefaultConfigPurgeAPI+").", &pf.configPurgeAPI)
	flag(config.FieldUpdateBotConfig, "Update the bot configuration; implied by --github-token.", &pf.updateBotConfig)
	flag(config.FieldGithubToken, "GitHub token used to update the bot configuration (env HLX_GITHUB_TOKEN).", &pf.githubToken)
}

// raw returns only the flags the user passed.
func (pf *publishFlags) raw() config.Raw {
	return config.Raw{
		WskHost:         pf.wskHost.ptr(),
		WskAuth:         pf.wskAuth.ptr(),
		WskNamespace:    pf.wskNamespace.ptr(),
		FastlyNamespace: pf.fastlyNamespace.ptr(),
		FastlyAuth:      pf.fastlyAuth.ptr(),
		DryRun:          pf.dryRun.ptr(),
		PublishAPI:      pf.publishAPI.ptr(),
		ConfigPurgeAPI:  pf.configPurgeAPI.ptr(),
		UpdateBotConfig: pf.updateBotConfig.ptr(),
		GithubToken:     pf.githubToken.ptr(),
	}
}
