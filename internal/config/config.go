package config

import "strconv"

const (
	DefaultWskHost        = "adobeioruntime.net"
	DefaultConfigPurgeAPI = "https://app.project-helix.io/config/purge"
)

// Field names a publish option as it appears on the command line.
type Field string

const (
	FieldWskHost         Field = "wsk-host"
	FieldWskAuth         Field = "wsk-auth"
	FieldWskNamespace    Field = "wsk-namespace"
	FieldFastlyNamespace Field = "fastly-namespace"
	FieldFastlyAuth      Field = "fastly-auth"
	FieldDryRun          Field = "dry-run"
	FieldPublishAPI      Field = "publish-api"
	FieldConfigPurgeAPI  Field = "config-purge-api"
	FieldUpdateBotConfig Field = "update-bot-config"
	FieldGithubToken     Field = "github-token"
)

// Fields lists every recognized option in setter order.
func Fields() []Field {
	return []Field{
		FieldWskHost,
		FieldWskAuth,
		FieldWskNamespace,
		FieldFastlyNamespace,
		FieldFastlyAuth,
		FieldDryRun,
		FieldPublishAPI,
		FieldConfigPurgeAPI,
		FieldUpdateBotConfig,
		FieldGithubToken,
	}
}

// Raw holds publish options from a single source, or the merge of several.
// A nil pointer means the option is absent. Pointers to empty strings are
// treated as absent too.
type Raw struct {
	WskHost         *string
	WskAuth         *string
	WskNamespace    *string
	FastlyNamespace *string
	FastlyAuth      *string
	DryRun          *bool
	PublishAPI      *string
	ConfigPurgeAPI  *string
	UpdateBotConfig *bool
	GithubToken     *string
}

// Default returns the compiled-in fallbacks.
func Default() Raw {
	return Raw{
		WskHost: String(DefaultWskHost),
		DryRun:  Bool(false),
	}
}

// Lookup returns the value of f formatted as a string, and whether it is present.
func (r Raw) Lookup(f Field) (string, bool) {
	switch f {
	case FieldWskHost:
		return lookupString(r.WskHost)
	case FieldWskAuth:
		return lookupString(r.WskAuth)
	case FieldWskNamespace:
		return lookupString(r.WskNamespace)
	case FieldFastlyNamespace:
		return lookupString(r.FastlyNamespace)
	case FieldFastlyAuth:
		return lookupString(r.FastlyAuth)
	case FieldDryRun:
		return lookupBool(r.DryRun)
	case FieldPublishAPI:
		return lookupString(r.PublishAPI)
	case FieldConfigPurgeAPI:
		return lookupString(r.ConfigPurgeAPI)
	case FieldUpdateBotConfig:
		return lookupBool(r.UpdateBotConfig)
	case FieldGithubToken:
		return lookupString(r.GithubToken)
	}
	return "", false
}

// Has reports whether f is present and non-empty.
func (r Raw) Has(f Field) bool {
	_, ok := r.Lookup(f)
	return ok
}

// Resolve merges option sources: flags > env > defaults.
// Neither input is modified; the result shares no pointers with them.
func Resolve(flags, env Raw) Raw {
	out := Raw{}
	apply(&out, Default())
	apply(&out, env)
	apply(&out, flags)
	return out
}

// Normalize applies computed defaults. A github token enables the bot config
// update unless update-bot-config was given explicitly, and an enabled update
// gets the default purge endpoint when none is set.
func Normalize(r Raw) Raw {
	if r.UpdateBotConfig == nil && r.Has(FieldGithubToken) {
		r.UpdateBotConfig = Bool(true)
	}
	if isTrue(r.UpdateBotConfig) && !r.Has(FieldConfigPurgeAPI) {
		r.ConfigPurgeAPI = String(DefaultConfigPurgeAPI)
	}
	return r
}

func apply(dst *Raw, src Raw) {
	setString := func(dst **string, v *string) {
		if s, ok := lookupString(v); ok {
			*dst = String(s)
		}
	}
	setBool := func(dst **bool, v *bool) {
		if v != nil {
			*dst = Bool(*v)
		}
	}
	setString(&dst.WskHost, src.WskHost)
	setString(&dst.WskAuth, src.WskAuth)
	setString(&dst.WskNamespace, src.WskNamespace)
	setString(&dst.FastlyNamespace, src.FastlyNamespace)
	setString(&dst.FastlyAuth, src.FastlyAuth)
	setBool(&dst.DryRun, src.DryRun)
	setString(&dst.PublishAPI, src.PublishAPI)
	setString(&dst.ConfigPurgeAPI, src.ConfigPurgeAPI)
	setBool(&dst.UpdateBotConfig, src.UpdateBotConfig)
	setString(&dst.GithubToken, src.GithubToken)
}

func lookupString(v *string) (string, bool) {
	if v == nil || *v == "" {
		return "", false
	}
	return *v, true
}

func lookupBool(v *bool) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatBool(*v), true
}

func isTrue(v *bool) bool { return v != nil && *v }

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
