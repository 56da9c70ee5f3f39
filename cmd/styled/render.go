package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/styled"
	"github.com/yacobolo/styled/internal/catalog"
	"github.com/yacobolo/styled/internal/h"
	"github.com/yacobolo/styled/internal/logger"
	"github.com/yacobolo/styled/internal/report"
	"github.com/yacobolo/styled/internal/tw"
)

var errNoDefinitions = errors.New("no definitions files found")

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render components and print their markup and CSS",
	Long: `Render every component declared in definitions files.

Without arguments, files matching the include patterns under the root
directory are rendered. Files ignored by .gitignore are skipped.`,
	Example: `  # Render all *.styled.yaml files below the current directory
  styled render

  # Render one file and print rule statistics
  styled render ui/buttons.styled.yaml --stats

  # Render selected components only
  styled render --component Button --component Title`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("root", "", "Directory to search for definitions files (default: .)")
	renderCmd.Flags().StringSlice("include", nil, "Glob patterns of definitions files (default: **/*.styled.yaml, **/*.styled.yml)")
	renderCmd.Flags().StringSlice("component", nil, "Render only the named components")
	renderCmd.Flags().StringSlice("tag", nil, "Register additional tag names")
	renderCmd.Flags().Bool("css", true, "Print the generated CSS rules")
	renderCmd.Flags().Bool("stats", false, "Print statistics about the generated CSS")
	renderCmd.Flags().Int("stats-top", 5, "Number of properties to list in statistics")
	renderCmd.Flags().Bool("hash-tags", false, "Hash names passed to the tag accessor")
	renderCmd.Flags().String("format", "", "Output format: text|json (default: text)")
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	cfg := buildRenderConfig()

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	styled.RegisterTags(cfg.CustomTags...)

	paths, err := definitionPaths(cfg, args, log)
	if err != nil {
		return err
	}

	files, err := catalog.LoadAll(paths)
	if err != nil {
		return err
	}

	sheet := tw.NewVirtualSheet()
	engine := tw.New(tw.Config{Sheet: sheet, HashTags: cfg.HashTags, Logger: log})
	s := styled.With(styled.Binding{
		CreateElement: h.CreateElement,
		ForwardRef:    h.ForwardRef,
		TW:            engine,
	})

	cat, err := catalog.Build(s, files...)
	if err != nil {
		return err
	}
	log.Debug("catalog built", "files", len(files), "components", cat.Len())

	items, err := renderComponents(cat, cfg.Components)
	if err != nil {
		return err
	}
	log.Info("rendered components", "components", len(items), "rules", sheet.Len())

	if cfg.Quiet {
		return nil
	}

	var stats *report.Stats
	if cfg.Stats {
		analyzed, err := report.Analyze(sheet.String())
		if err != nil {
			return fmt.Errorf("analyzing generated CSS: %w", err)
		}
		stats = &analyzed
	}

	out := cmd.OutOrStdout()
	if format == report.FormatJSON {
		var rules []string
		if cfg.CSS {
			rules = sheet.Rules()
		}
		return report.WriteJSON(out, items, rules, sheet.Len(), stats)
	}

	rep := report.New(out, report.ShouldUseColors(cfg.Color, os.Stdout))
	rep.PrintRendered(items)
	if cfg.CSS {
		rep.PrintCSS(sheet.Rules())
	}
	if stats != nil {
		rep.PrintStatistics(*stats, cfg.StatsTop)
	}
	rep.PrintSummary(len(items), sheet.Len())

	return nil
}

// definitionPaths returns args, or the discovered files when args is empty.
func definitionPaths(cfg renderConfig, args []string, log *logger.Logger) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	paths, stats, err := catalog.Discover(cfg.Root, cfg.Include)
	if err != nil {
		return nil, err
	}
	log.Debug("discovered definitions files",
		"root", cfg.Root,
		"matched", stats.Matched,
		"ignored", stats.Ignored,
	)

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoDefinitions, cfg.Root)
	}
	return paths, nil
}

// renderComponents renders names, or every component in declaration order
// when names is empty, with the example properties of each component.
func renderComponents(cat *catalog.Catalog, names []string) ([]report.Rendered, error) {
	if len(names) == 0 {
		names = cat.Names()
	}

	items := make([]report.Rendered, 0, len(names))
	for _, name := range names {
		def, ok := cat.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown component %q", name)
		}
		comp, _ := cat.Component(name)

		markup, err := h.RenderToStaticMarkup(def.Render(styled.Props(comp.Example)))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}

		items = append(items, report.Rendered{
			Name:        name,
			DisplayName: def.DisplayName(),
			ID:          def.ID(),
			Markup:      markup,
		})
	}
	return items, nil
}
