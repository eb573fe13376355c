package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/agiangrant/twclass/tw"
	"github.com/agiangrant/twclass/twconfig"
)

func (a *app) preRun(cmd *cobra.Command, args []string) error {
	return a.open(cmd)
}

func (a *app) vocabCmd() *cobra.Command {
	var (
		count     bool
		templates bool
		limit     int
	)
	cmd := &cobra.Command{
		Use:     "vocab [prefix]",
		Short:   "List the class vocabulary",
		Long:    "List every class the project's theme defines, optionally only those starting with prefix.",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			m := a.project.Model()
			voc := m.Vocabulary()
			if templates {
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, t := range voc.Templates() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", t.Template, t.Example, t.Category)
				}
				return w.Flush()
			}
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			classes := voc.Complete(prefix, limit)
			if count {
				fmt.Fprintf(out, "%s classes (%s, %s total)\n",
					humanize.Comma(int64(len(classes))), m.Version(), humanize.Comma(int64(voc.Len())))
				return nil
			}
			for _, c := range classes {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&count, "count", false, "Print only the number of matching classes")
	cmd.Flags().BoolVar(&templates, "templates", false, "List arbitrary-value templates instead of classes")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of classes (0: all)")
	return cmd
}

func (a *app) resolveCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "resolve <class>...",
		Short:   "Explain what classes resolve to",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.project.Model()
			classes := make([]tw.ParsedClass, 0, len(args))
			for _, raw := range args {
				classes = append(classes, m.Resolve(raw))
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(classes)
			}
			for _, pc := range classes {
				writeParsed(cmd.OutOrStdout(), pc)
				if !pc.Resolved() {
					for _, s := range m.Suggest(pc.Raw, 3) {
						fmt.Fprintf(cmd.OutOrStdout(), "  did you mean %s?\n", s.Class)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func writeParsed(out io.Writer, pc tw.ParsedClass) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", pc.Raw)
	if len(pc.Variants) > 0 {
		fmt.Fprintf(w, "  variants\t%s\n", strings.Join(pc.Variants, ", "))
	}
	fmt.Fprintf(w, "  category\t%s\n", pc.Category)
	fmt.Fprintf(w, "  properties\t%s\n", strings.Join(pc.Properties, ", "))
	if pc.Resolved() {
		fmt.Fprintf(w, "  value\t%s\n", pc.Val())
	} else {
		fmt.Fprintf(w, "  value\t(unresolved)\n")
	}
	fmt.Fprintf(w, "  relevance\t%g\n", pc.Relevance)
	fmt.Fprintf(w, "  \t%s\n", pc.Description)
	w.Flush()
}

func (a *app) completeCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "complete <input>",
		Short:   "Rank completions for a partial class",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, pc := range a.project.Model().Complete(args[0], limit) {
				fmt.Fprintf(w, "%s\t%g\t%s\n", pc.Raw, pc.Relevance, pc.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of completions (0: all)")
	return cmd
}

func (a *app) cssCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "css <class>...",
		Short:   "Print the CSS classes generate",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			css := a.project.CSS(strings.Join(args, " "))
			if css == "" {
				return errors.New("no CSS generated")
			}
			_, err := io.WriteString(cmd.OutOrStdout(), css)
			return err
		},
	}
}

func (a *app) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "theme",
		Short:   "Summarise the effective theme",
		Args:    cobra.NoArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.project
			m := p.Model()
			th := m.Theme()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			config := p.ConfigPath()
			if config == "" {
				config = "(none)"
			}
			fmt.Fprintf(w, "config\t%s\n", config)
			fmt.Fprintf(w, "version\t%s\n", m.Version())
			if th.Prefix != "" {
				fmt.Fprintf(w, "prefix\t%s\n", th.Prefix)
			}
			fmt.Fprintf(w, "dark mode\t%s\n", th.DarkMode)
			screens := make([]string, 0)
			for _, s := range th.ActiveScreens(m.Version()) {
				screens = append(screens, s.Name)
			}
			fmt.Fprintf(w, "screens\t%s\n", strings.Join(screens, " "))
			colors := make([]string, 0, len(th.Colors))
			for name := range th.Colors {
				colors = append(colors, name)
			}
			sort.Strings(colors)
			if len(colors) > 0 {
				fmt.Fprintf(w, "theme colors\t%s\n", strings.Join(colors, " "))
			}
			for _, pl := range th.Plugins {
				state := "known"
				if !pl.Known {
					state = "unknown"
				}
				fmt.Fprintf(w, "plugin\t%s (%s)\n", pl.ID, state)
			}
			fmt.Fprintf(w, "vocabulary\t%s classes\n", humanize.Comma(int64(m.Vocabulary().Len())))
			for _, d := range p.Diagnostics() {
				fmt.Fprintf(w, "diagnostic\t%s\n", d)
			}
			return w.Flush()
		},
	}
}

// classAttr matches class and className attributes in markup and JSX.
var classAttr = regexp.MustCompile(`\bclass(?:Name)?\s*=\s*(?:"([^"]*)"|'([^']*)'|\{\s*"([^"]*)"\s*\})`)

func (a *app) usageCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "usage <file>...",
		Short:   "Count class usage in markup files",
		Long:    "Scan files for class attributes, record every class in the usage ledger and print the most used ones.",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.project.Model()
			var total int
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", filepath.Base(path), err)
				}
				for _, match := range classAttr.FindAllSubmatch(data, -1) {
					attr := string(match[1]) + string(match[2]) + string(match[3])
					for _, raw := range strings.Fields(attr) {
						m.RecordUsage(raw)
						total++
					}
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s class uses in %s files\n", humanize.Comma(int64(total)), humanize.Comma(int64(len(args))))
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
			counts := m.Ledger().Snapshot()
			for _, base := range m.MostUsed(limit) {
				fmt.Fprintf(w, "%s\t  %s\t\n", humanize.Comma(int64(counts[base])), base)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of classes to list")
	return cmd
}

func (a *app) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter tailwind.config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.dir
			if dir == "" {
				dir = "."
			}
			path := filepath.Join(dir, "tailwind.config.toml")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := os.WriteFile(path, twconfig.DefaultConfig, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", path, humanize.Bytes(uint64(len(twconfig.DefaultConfig))))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
