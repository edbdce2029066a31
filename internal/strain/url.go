package strain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNotImplemented is matched by UnsupportedError.
var ErrNotImplemented = errors.New("not implemented")

// UnsupportedError reports an accessor that a URL variant does not provide.
type UnsupportedError struct {
	Op  string
	URL string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s of %q: not implemented", e.Op, e.URL)
}

func (e *UnsupportedError) Is(target error) bool { return target == ErrNotImplemented }

// URL is the location of strain code or content.
type URL interface {
	Raw() string
	RawRoot() string
	APIRoot() string
	Owner() (string, error)
	Repo() (string, error)
	Ref() (string, error)
}

// LocalURL is a URL that does not point into a hosted repository. Its raw,
// raw root and API root are all the wrapped value.
type LocalURL struct {
	url string
}

func NewLocalURL(u string) LocalURL { return LocalURL{url: u} }

func (u LocalURL) Raw() string     { return u.url }
func (u LocalURL) RawRoot() string { return u.url }
func (u LocalURL) APIRoot() string { return u.url }

func (u LocalURL) Owner() (string, error) { return "", &UnsupportedError{Op: "owner", URL: u.url} }
func (u LocalURL) Repo() (string, error)  { return "", &UnsupportedError{Op: "repo", URL: u.url} }
func (u LocalURL) Ref() (string, error)   { return "", &UnsupportedError{Op: "ref", URL: u.url} }

const (
	defaultRef    = "master"
	defaultScheme = "https"
	githubHost    = "github.com"
	githubRawRoot = "https://raw.githubusercontent.com"
	githubAPIRoot = "https://api.github.com"
	enterpriseAPI = "/api/v3"
	enterpriseRaw = "/raw"
	gitRepoSuffix = ".git"
)

// GitURL is a URL of a hosted git repository, e.g.
// https://github.com/adobe/project-helix.io.git#master.
type GitURL struct {
	scheme string
	host   string
	owner  string
	repo   string
	ref    string
}

// ParseGitURL parses a repository URL. The fragment selects the ref and
// defaults to master.
func ParseGitURL(s string) (GitURL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return GitURL{}, fmt.Errorf("parse git url %q: %w", s, err)
	}
	if u.Host == "" {
		return GitURL{}, fmt.Errorf("parse git url %q: missing host", s)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return GitURL{}, fmt.Errorf("parse git url %q: expected /owner/repo path", s)
	}
	g := GitURL{
		scheme: u.Scheme,
		host:   u.Host,
		owner:  parts[0],
		repo:   strings.TrimSuffix(parts[1], gitRepoSuffix),
		ref:    u.Fragment,
	}
	if g.scheme == "" {
		g.scheme = defaultScheme
	}
	if g.ref == "" {
		g.ref = defaultRef
	}
	return g, nil
}

func (g GitURL) isGithub() bool { return g.host == githubHost }

// RawRoot is the root URL serving raw file contents.
func (g GitURL) RawRoot() string {
	if g.isGithub() {
		return githubRawRoot
	}
	return g.scheme + "://" + g.host + enterpriseRaw
}

// APIRoot is the root URL of the hosting API.
func (g GitURL) APIRoot() string {
	if g.isGithub() {
		return githubAPIRoot
	}
	return g.scheme + "://" + g.host + enterpriseAPI
}

// Raw is the raw content URL of the repository at its ref.
func (g GitURL) Raw() string {
	return strings.Join([]string{g.RawRoot(), g.owner, g.repo, g.ref}, "/")
}

func (g GitURL) Owner() (string, error) { return g.owner, nil }
func (g GitURL) Repo() (string, error)  { return g.repo, nil }
func (g GitURL) Ref() (string, error)   { return g.ref, nil }

// String formats the URL in its canonical repository form.
func (g GitURL) String() string {
	return fmt.Sprintf("%s://%s/%s/%s%s#%s", g.scheme, g.host, g.owner, g.repo, gitRepoSuffix, g.ref)
}

// Parse returns a GitURL for http(s) repository URLs and a LocalURL for
// anything else.
func Parse(s string) URL {
	if strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		if g, err := ParseGitURL(s); err == nil {
			return g
		}
	}
	return NewLocalURL(s)
}

// Locations holds the unparsed content and code locations of a strain.
type Locations struct {
	Content string `yaml:"content" json:"content"`
	Code    string `yaml:"code" json:"code"`
}

// URLs wraps the content and code locations of a local strain.
type URLs struct {
	content LocalURL
	code    LocalURL
}

func NewURLs(loc Locations) URLs {
	return URLs{
		content: NewLocalURL(loc.Content),
		code:    NewLocalURL(loc.Code),
	}
}

func (u URLs) Content() URL { return u.content }
func (u URLs) Code() URL    { return u.code }
