package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"hlx/internal/paths"
	"hlx/internal/publish"
	"hlx/internal/strain"
)

const (
	defaultTimeout     = 30 * time.Second
	publishActionPath  = "/api/v1/web/helix/default/publish"
	latestReceiptName  = "publish.json"
	receiptContentType = "application/json"
	receiptCache       = "no-cache"
)

var _ publish.Executor = (*Publisher)(nil)

// ReceiptStore archives publish receipts.
type ReceiptStore interface {
	UploadFile(ctx context.Context, key, localPath, contentType, cacheControl string) error
	CopyToLatest(ctx context.Context, srcKey, filename, contentType, cacheControl string) error
	KeyForDate(t time.Time, filename string) string
	Latest(ctx context.Context, filename string) ([]byte, bool, error)
}

type Options struct {
	Paths    *paths.Builder
	Logger   *zap.Logger
	Receipts ReceiptStore
	Timeout  time.Duration
	Now      func() time.Time
}

// Publisher activates the project strains through the publish API and,
// when asked to, refreshes the bot configuration.
type Publisher struct {
	client   *resty.Client
	paths    *paths.Builder
	logger   *zap.Logger
	receipts ReceiptStore
	now      func() time.Time

	wskHost         string
	wskAuth         string
	wskNamespace    string
	fastlyNamespace string
	fastlyAuth      string
	dryRun          bool
	publishAPI      string
	configPurgeAPI  string
	updateBotConfig bool
	githubToken     string
}

func New(opts Options) *Publisher {
	if opts.Paths == nil {
		opts.Paths = paths.New("")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Publisher{
		client:   resty.New().SetTimeout(opts.Timeout),
		paths:    opts.Paths,
		logger:   opts.Logger,
		receipts: opts.Receipts,
		now:      opts.Now,
	}
}

func (p *Publisher) WithWskHost(host string)           { p.wskHost = host }
func (p *Publisher) WithWskAuth(auth string)           { p.wskAuth = auth }
func (p *Publisher) WithWskNamespace(namespace string) { p.wskNamespace = namespace }
func (p *Publisher) WithFastlyNamespace(ns string)     { p.fastlyNamespace = ns }
func (p *Publisher) WithFastlyAuth(auth string)        { p.fastlyAuth = auth }
func (p *Publisher) WithDryRun(dryRun bool)            { p.dryRun = dryRun }
func (p *Publisher) WithPublishAPI(url string)         { p.publishAPI = url }
func (p *Publisher) WithConfigPurgeAPI(url string)     { p.configPurgeAPI = url }
func (p *Publisher) WithUpdateBotConfig(update bool)   { p.updateBotConfig = update }
func (p *Publisher) WithGithubToken(token string)      { p.githubToken = token }

type publishRequest struct {
	Configuration strain.Config `json:"configuration"`
	Service       string        `json:"service"`
	Token         string        `json:"token"`
	Namespace     string        `json:"namespace"`
}

type purgeRequest struct {
	GithubToken         string   `json:"github_token"`
	ContentRepositories []string `json:"content_repositories"`
}

// Receipt records a completed publish.
type Receipt struct {
	PublishedAt      time.Time `json:"publishedAt"`
	Namespace        string    `json:"namespace"`
	Service          string    `json:"service"`
	PublishAPI       string    `json:"publishApi"`
	Strains          []string  `json:"strains"`
	BotConfigUpdated bool      `json:"botConfigUpdated"`
}

func (p *Publisher) Run(ctx context.Context) error {
	started := p.now()
	cfgPath := p.paths.ConfigFile()
	cfg, err := strain.LoadFile(cfgPath)
	if err != nil {
		return err
	}
	if len(cfg.Strains) == 0 {
		return fmt.Errorf("%w in %s", ErrNoStrains, cfgPath)
	}

	if p.receipts != nil {
		p.logPrevious(ctx)
	}

	api := p.publishURL()
	log := p.logger.With(
		zap.String("publishApi", api),
		zap.String("service", p.fastlyNamespace),
		zap.String("namespace", p.wskNamespace),
		zap.Strings("strains", cfg.Names()),
		zap.Bool("dryRun", p.dryRun),
	)

	if p.dryRun {
		log.Info("dry run: skipping publish")
	} else {
		if err := p.post(ctx, api, publishRequest{
			Configuration: cfg,
			Service:       p.fastlyNamespace,
			Token:         p.fastlyAuth,
			Namespace:     p.wskNamespace,
		}, p.withWskAuth); err != nil {
			return fmt.Errorf("publish: %w", err)
		}
		log.Info("publish completed")
	}

	botUpdated := false
	if p.updateBotConfig {
		botUpdated, err = p.purgeBotConfig(ctx, cfg)
		if err != nil {
			return fmt.Errorf("update bot config: %w", err)
		}
	}

	if p.dryRun {
		return nil
	}
	p.archive(ctx, Receipt{
		PublishedAt:      started.UTC(),
		Namespace:        p.wskNamespace,
		Service:          p.fastlyNamespace,
		PublishAPI:       api,
		Strains:          cfg.Names(),
		BotConfigUpdated: botUpdated,
	})
	return nil
}

func (p *Publisher) publishURL() string {
	if p.publishAPI != "" {
		return p.publishAPI
	}
	return "https://" + p.wskHost + publishActionPath
}

// withWskAuth sets basic auth from an OpenWhisk "uuid:key" credential.
func (p *Publisher) withWskAuth(r *resty.Request) {
	if p.wskAuth == "" {
		return
	}
	user, pass, ok := strings.Cut(p.wskAuth, ":")
	if !ok {
		r.SetAuthToken(p.wskAuth)
		return
	}
	r.SetBasicAuth(user, pass)
}

func (p *Publisher) withGithubToken(r *resty.Request) {
	r.SetHeader("Authorization", "token "+p.githubToken)
}

func (p *Publisher) post(ctx context.Context, url string, body any, auth func(*resty.Request)) error {
	req := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	auth(req)
	resp, err := req.Post(url)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	return mapHTTPError(resp)
}

// purgeBotConfig asks the bot to reload its configuration for every hosted
// content repository. Strains with local content are skipped.
func (p *Publisher) purgeBotConfig(ctx context.Context, cfg strain.Config) (bool, error) {
	repos := contentRepositories(cfg)
	log := p.logger.With(zap.String("configPurgeApi", p.configPurgeAPI), zap.Strings("repositories", repos))
	if len(repos) == 0 {
		log.Warn("no hosted content repositories, skipping bot config update")
		return false, nil
	}
	if p.dryRun {
		log.Info("dry run: skipping bot config update")
		return false, nil
	}
	if err := p.post(ctx, p.configPurgeAPI, purgeRequest{
		GithubToken:         p.githubToken,
		ContentRepositories: repos,
	}, p.withGithubToken); err != nil {
		return false, err
	}
	log.Info("bot config updated")
	return true, nil
}

func contentRepositories(cfg strain.Config) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range cfg.Strains {
		u := strain.Parse(s.Content)
		owner, err := u.Owner()
		if err != nil {
			continue
		}
		repo, err := u.Repo()
		if err != nil {
			continue
		}
		name := owner + "/" + repo
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func (p *Publisher) logPrevious(ctx context.Context) {
	data, ok, err := p.receipts.Latest(ctx, latestReceiptName)
	if err != nil {
		p.logger.Warn("read previous receipt", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	var prev Receipt
	if err := json.Unmarshal(data, &prev); err != nil {
		p.logger.Warn("parse previous receipt", zap.Error(err))
		return
	}
	p.logger.Info("previous publish", zap.Time("publishedAt", prev.PublishedAt), zap.Strings("strains", prev.Strains))
}

// archive writes the receipt locally and, with a receipt store, uploads it.
// Failures are logged; the publish itself already succeeded.
func (p *Publisher) archive(ctx context.Context, r Receipt) {
	if err := p.paths.EnsureReceiptDir(r.PublishedAt); err != nil {
		p.logger.Warn("create receipt dir", zap.Error(err))
		return
	}
	localPath := p.paths.Receipt(r.PublishedAt)
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		p.logger.Warn("encode receipt", zap.Error(err))
		return
	}
	if err := os.WriteFile(localPath, data, 0o644); err != nil {
		p.logger.Warn("write receipt", zap.Error(err))
		return
	}
	if p.receipts == nil {
		return
	}
	key := p.receipts.KeyForDate(r.PublishedAt, paths.ReceiptName(r.PublishedAt))
	if err := p.receipts.UploadFile(ctx, key, localPath, receiptContentType, receiptCache); err != nil {
		p.logger.Warn("upload receipt", zap.String("key", key), zap.Error(err))
		return
	}
	if err := p.receipts.CopyToLatest(ctx, key, latestReceiptName, receiptContentType, receiptCache); err != nil {
		p.logger.Warn("copy receipt to latest", zap.String("key", key), zap.Error(err))
		return
	}
	p.logger.Debug("receipt archived", zap.String("key", key))
}
