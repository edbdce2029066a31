package config

import (
	"errors"
	"fmt"
)

// ErrMissingRequired matches every MissingFieldError.
var ErrMissingRequired = errors.New("missing required argument")

// RequirementRule declares when a field must be present.
type RequirementRule struct {
	Field    Field
	Required func(Raw) bool
	Message  string
}

// MissingFieldError reports a required field that is absent or empty.
type MissingFieldError struct {
	Field   Field
	Message string
}

func (e *MissingFieldError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Missing required argument: %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingRequired }

// ValidationError collects every rule violation of one validation pass.
// Its message is the message of the first violation.
type ValidationError struct {
	Missing []*MissingFieldError
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return "invalid configuration"
	}
	return e.Missing[0].Error()
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Missing))
	for _, m := range e.Missing {
		errs = append(errs, m)
	}
	return errs
}

// Fields returns the names of the missing fields in rule order.
func (e *ValidationError) Fields() []Field {
	out := make([]Field, 0, len(e.Missing))
	for _, m := range e.Missing {
		out = append(out, m.Field)
	}
	return out
}

func always(Raw) bool { return true }

var publishRules = []RequirementRule{
	{Field: FieldWskAuth, Required: always},
	{Field: FieldWskNamespace, Required: always},
	{Field: FieldFastlyAuth, Required: always},
	{Field: FieldFastlyNamespace, Required: always},
	{
		Field:    FieldGithubToken,
		Required: func(r Raw) bool { return isTrue(r.UpdateBotConfig) },
		Message:  "Github token is required in order to update bot config.",
	},
}

// Rules returns the requirement rules of the publish command.
func Rules() []RequirementRule {
	out := make([]RequirementRule, len(publishRules))
	copy(out, publishRules)
	return out
}

// Validated is a publish configuration that passed all requirement rules.
// It can only be obtained from Validate.
type Validated struct {
	raw Raw
}

// Validate checks r against the publish rules. r is expected to be resolved
// and normalized already.
func Validate(r Raw) (Validated, error) {
	return ValidateRules(r, publishRules)
}

// ValidateRules checks r against rules and reports every violation.
func ValidateRules(r Raw, rules []RequirementRule) (Validated, error) {
	var verr ValidationError
	for _, rule := range rules {
		if rule.Required == nil || !rule.Required(r) {
			continue
		}
		if r.Has(rule.Field) {
			continue
		}
		verr.Missing = append(verr.Missing, &MissingFieldError{Field: rule.Field, Message: rule.Message})
	}
	if len(verr.Missing) > 0 {
		return Validated{}, &verr
	}
	return Validated{raw: r}, nil
}

func (v Validated) WskHost() (string, bool)         { return lookupString(v.raw.WskHost) }
func (v Validated) WskAuth() (string, bool)         { return lookupString(v.raw.WskAuth) }
func (v Validated) WskNamespace() (string, bool)    { return lookupString(v.raw.WskNamespace) }
func (v Validated) FastlyNamespace() (string, bool) { return lookupString(v.raw.FastlyNamespace) }
func (v Validated) FastlyAuth() (string, bool)      { return lookupString(v.raw.FastlyAuth) }
func (v Validated) PublishAPI() (string, bool)      { return lookupString(v.raw.PublishAPI) }
func (v Validated) ConfigPurgeAPI() (string, bool)  { return lookupString(v.raw.ConfigPurgeAPI) }
func (v Validated) GithubToken() (string, bool)     { return lookupString(v.raw.GithubToken) }

func (v Validated) DryRun() (bool, bool) {
	if v.raw.DryRun == nil {
		return false, false
	}
	return *v.raw.DryRun, true
}

func (v Validated) UpdateBotConfig() (bool, bool) {
	if v.raw.UpdateBotConfig == nil {
		return false, false
	}
	return *v.raw.UpdateBotConfig, true
}

// Lookup returns the value of f as a string, like Raw.Lookup.
func (v Validated) Lookup(f Field) (string, bool) { return v.raw.Lookup(f) }
