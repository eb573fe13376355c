// Package twclass ties configuration loading to a live class model: it
// finds a project's Tailwind configuration, merges its preset chain, builds
// a tw.Model from it and rebuilds that model in the background on reload.
package twclass

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/agiangrant/twclass/tw"
	"github.com/agiangrant/twclass/twconfig"
)

// Project is the class model of one project directory.
type Project struct {
	dir  string
	opts options

	model *tw.Model

	mu    sync.RWMutex
	path  string
	diags []tw.Diagnostic
}

// Option configures Open.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	version   tw.Version
	cacheSize int
}

// WithLogger sets the logger handed to the config loader and the model.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithVersion pins the Tailwind version instead of detecting it.
func WithVersion(v tw.Version) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithCacheSize bounds the resolver caches.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// Open loads the configuration of the project at dir and builds its model.
// A directory without configuration gets the default theme of its
// detected version. Script configurations cannot be evaluated; they are
// reported as a diagnostic and the default theme is used.
func Open(ctx context.Context, dir string, opts ...Option) (*Project, error) {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	p := &Project{dir: dir, opts: o}
	ld, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	p.model = tw.NewModel(ld.theme,
		tw.WithLogger(o.logger),
		tw.WithCacheSize(o.cacheSize),
		tw.WithVersion(o.version),
	)
	p.setLoaded(ld)
	return p, nil
}

type loadResult struct {
	theme *tw.Theme
	path  string
	diags []tw.Diagnostic
}

func (p *Project) load(ctx context.Context) (loadResult, error) {
	var res loadResult
	var tree tw.Tree
	var chain *twconfig.Chain

	c, err := twconfig.LoadDir(ctx, p.dir, twconfig.WithLogger(p.opts.logger))
	switch {
	case err == nil:
		chain, tree, res.path = c, c.Project, c.Path
		res.diags = append(res.diags, c.Diagnostics...)
	case errors.Is(err, twconfig.ErrNotFound):
		p.opts.logger.Info("no tailwind configuration, using defaults", "dir", p.dir)
	case errors.Is(err, twconfig.ErrScriptConfig):
		res.path, _ = twconfig.Locate(p.dir)
		res.diags = append(res.diags, tw.Diagnostic{
			Source:  res.path,
			Message: "script configuration not evaluated, using defaults",
			Err:     err,
		})
	default:
		return res, fmt.Errorf("load tailwind configuration: %w", err)
	}

	v := p.opts.version
	if _, set := tree["version"]; v == tw.VersionUnknown && !set {
		var src twconfig.VersionSource
		v, src = twconfig.DetectVersion(p.dir)
		p.opts.logger.Debug("tailwind version detected", "version", v.String(), "source", string(src))
	}

	mergeOpts := []tw.Option{
		tw.WithLogger(p.opts.logger),
		tw.WithVersion(v),
		tw.WithDiagnostics(func(d tw.Diagnostic) { res.diags = append(res.diags, d) }),
	}
	if chain != nil {
		res.theme = chain.Theme(mergeOpts...)
	} else {
		res.theme = tw.MergeTheme(tree, nil, nil, mergeOpts...)
	}
	return res, nil
}

func (p *Project) setLoaded(ld loadResult) {
	p.mu.Lock()
	p.path, p.diags = ld.path, ld.diags
	p.mu.Unlock()
}

// Reload re-reads the configuration and rebuilds the model in the
// background; it returns once the new model is published. Readers keep
// using the previous model meanwhile. If another reload starts first,
// Reload returns tw.ErrSuperseded and the newer one wins.
func (p *Project) Reload(ctx context.Context) error {
	ld, err := p.load(ctx)
	if err != nil {
		return err
	}
	if err := <-p.model.RebuildAsync(ctx, ld.theme); err != nil {
		return err
	}
	p.setLoaded(ld)
	return nil
}

// Model returns the live class model.
func (p *Project) Model() *tw.Model {
	return p.model
}

// Dir is the project directory.
func (p *Project) Dir() string {
	return p.dir
}

// ConfigPath returns the configuration file in use, or "" when the project
// has none.
func (p *Project) ConfigPath() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.path
}

// Diagnostics returns the recoverable problems found by the last load.
func (p *Project) Diagnostics() []tw.Diagnostic {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]tw.Diagnostic(nil), p.diags...)
}
