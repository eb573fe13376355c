package twconfig

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/twclass/tw"
)

// maxDepth bounds how far presets of presets are followed.
const maxDepth = 8

// Chain is a configuration together with the ancestors it names under
// "presets" and "extends", ready for tw.MergeTheme. Ancestors that could
// not be read are left out of the lists and described in Diagnostics.
type Chain struct {
	Path    string
	Project tw.Tree
	Presets []tw.Tree
	Extends []tw.Tree

	Diagnostics []tw.Diagnostic
}

// Theme merges the chain. Version, logger and diagnostic options are
// passed through to tw.MergeTheme.
func (c *Chain) Theme(opts ...tw.Option) *tw.Theme {
	return tw.MergeTheme(c.Project, c.Extends, c.Presets, opts...)
}

// Option configures loading.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used while loading. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// LoadDir locates the configuration in dir and loads its chain.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*Chain, error) {
	path, err := Locate(dir)
	if err != nil {
		return nil, err
	}
	return Load(ctx, path, opts...)
}

// Load reads the configuration at path and, concurrently, every ancestor
// it references. Relative references resolve against the referencing
// file's directory. An unreadable project file is an error; unreadable
// ancestors are not.
func Load(ctx context.Context, path string, opts ...Option) (*Chain, error) {
	o := newOptions(opts)
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	project, err := readTree(path)
	if err != nil {
		return nil, err
	}
	l := &loader{ctx: ctx, logger: o.logger}
	chain := &Chain{Path: path, Project: project}

	presets, extends, err := l.ancestors(path, project, 0, []string{absPath(path)})
	if err != nil {
		return nil, err
	}
	for _, r := range presets {
		chain.Presets = append(chain.Presets, r.trees...)
		chain.Diagnostics = append(chain.Diagnostics, r.diags...)
	}
	for _, r := range extends {
		chain.Extends = append(chain.Extends, r.trees...)
		chain.Diagnostics = append(chain.Diagnostics, r.diags...)
	}
	for _, d := range chain.Diagnostics {
		o.logger.Warn("configuration ancestor skipped", "source", d.Source, "message", d.Message, "err", d.Err)
	}
	o.logger.Debug("configuration loaded",
		"path", path,
		"presets", len(chain.Presets),
		"extends", len(chain.Extends),
		"elapsed", time.Since(start),
	)
	return chain, nil
}

type loader struct {
	ctx    context.Context
	logger *slog.Logger
}

// loaded is one reference flattened: the referenced tree preceded by its
// own ancestors, so merging the list in order applies them first.
type loaded struct {
	trees []tw.Tree
	diags []tw.Diagnostic
}

// ancestors loads every preset and extends reference of tree in parallel.
// Results keep reference order regardless of completion order.
func (l *loader) ancestors(from string, tree tw.Tree, depth int, stack []string) (presets, extends []loaded, err error) {
	presetRefs := references(tree["presets"])
	extendRefs := references(tree["extends"])
	presets = make([]loaded, len(presetRefs))
	extends = make([]loaded, len(extendRefs))

	g, ctx := errgroup.WithContext(l.ctx)
	sub := &loader{ctx: ctx, logger: l.logger}
	for i, ref := range presetRefs {
		g.Go(func() error {
			r, err := sub.reference(from, ref, depth, stack)
			presets[i] = r
			return err
		})
	}
	for i, ref := range extendRefs {
		g.Go(func() error {
			r, err := sub.reference(from, ref, depth, stack)
			extends[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return presets, extends, nil
}

// reference loads one ancestor. Only cancellation is returned as an
// error; everything else becomes a diagnostic.
func (l *loader) reference(from, ref string, depth int, stack []string) (loaded, error) {
	if err := l.ctx.Err(); err != nil {
		return loaded{}, err
	}
	skip := func(msg string, err error) (loaded, error) {
		return loaded{diags: []tw.Diagnostic{{Source: ref, Message: msg, Err: err}}}, nil
	}

	if !isPathReference(ref) {
		return skip("package references are not resolved", nil)
	}
	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(from), filepath.FromSlash(ref))
	}
	if filepath.Ext(path) == "" {
		if found, ok := withKnownExtension(path); ok {
			path = found
		}
	}
	abs := absPath(path)
	for _, seen := range stack {
		if seen == abs {
			return skip("reference cycle", nil)
		}
	}
	if depth+1 > maxDepth {
		return skip(fmt.Sprintf("nested deeper than %d levels", maxDepth), nil)
	}

	tree, err := readTree(path)
	if err != nil {
		return skip("cannot load", err)
	}
	l.logger.Debug("configuration ancestor loaded", "ref", ref, "path", path)

	presets, extends, err := l.ancestors(path, tree, depth+1, append(stack[:len(stack):len(stack)], abs))
	if err != nil {
		return loaded{}, err
	}
	var out loaded
	for _, r := range append(presets, extends...) {
		out.trees = append(out.trees, r.trees...)
		out.diags = append(out.diags, r.diags...)
	}
	out.trees = append(out.trees, tree)
	return out, nil
}

// references reads a "presets"/"extends" value: a string, a list of
// strings, or objects with a path/name field.
func references(v any) []string {
	var out []string
	add := func(item any) {
		switch t := item.(type) {
		case string:
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		case map[string]any:
			for _, key := range []string{"path", "name", "preset"} {
				if s, ok := t[key].(string); ok && s != "" {
					out = append(out, s)
					return
				}
			}
		}
	}
	if list, ok := v.([]any); ok {
		for _, item := range list {
			add(item)
		}
		return out
	}
	add(v)
	return out
}

func isPathReference(ref string) bool {
	return strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../") ||
		strings.HasPrefix(ref, "/") || filepath.IsAbs(ref)
}

func withKnownExtension(path string) (string, bool) {
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml", ".css", ".js", ".cjs", ".mjs", ".ts"} {
		if isFile(path + ext) {
			return path + ext, true
		}
	}
	return "", false
}

func readTree(path string) (tw.Tree, error) {
	if f, ok := FormatOf(path); ok && f == FormatScript {
		return nil, fmt.Errorf("%w: %s", ErrScriptConfig, filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, data)
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
