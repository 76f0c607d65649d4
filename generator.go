package cssengine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacobolo/cssengine/internal/cssgen"
	"github.com/yacobolo/cssengine/theme"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// GenerateConfig configures a build over declaration files
type GenerateConfig struct {
	SourceDir string
	Includes  []string // default DefaultIncludes

	// ThemeFile is the base theme; ThemeOverrides are composed over it in
	// order with ThemeMode.
	ThemeFile      string
	ThemeOverrides []string
	ThemeMode      theme.Mode

	OutputFile string // written when set
	Tag        bool   // wrap the CSS in a style element
	Variables  bool   // emit the theme's custom properties first
	VarPrefix  string

	StyleElementID string
	Prefix         string
	Logger         *zap.Logger
}

// ClassEntry records the class one style compiled to
type ClassEntry struct {
	File      string
	Component string
	Style     string
	Class     string
}

// GenerateResult summarizes a build
type GenerateResult struct {
	FilesScanned int
	FilesSkipped int
	Components   int
	Classes      []ClassEntry
	Rules        int
	CSS          string
	Stats        Stats

	Categories  map[PropertyCategory]int
	TokenValues int
	Warnings    []string
}

// PropertyCategory groups related CSS properties in reports
type PropertyCategory = cssgen.PropertyCategory

// Generate compiles every declaration file under config.SourceDir into one
// stylesheet.
func Generate(config GenerateConfig) (*GenerateResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	result := &GenerateResult{Categories: make(map[PropertyCategory]int)}

	// 1. Scan declaration files
	files, stats, err := ScanFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	log.Debug("Scanned declaration files",
		zap.Int("found", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	// 2. Load the theme
	tree, err := LoadTheme(config.ThemeFile, config.ThemeOverrides, config.ThemeMode, log)
	if err != nil {
		return nil, fmt.Errorf("theme failed: %w", err)
	}

	// 3. Parse declarations
	styleFiles, err := LoadStyleFiles(files, tree)
	if err != nil {
		return nil, fmt.Errorf("load failed for %d file(s): %w", len(multierr.Errors(err)), err)
	}

	// 4. Compile into a collecting engine
	engine := New(Config{
		StyleElementID: config.StyleElementID,
		Prefix:         config.Prefix,
		Logger:         log,
		ThemeGetter:    func() *theme.Tree { return tree },
	})
	if config.Variables && tree != nil {
		engine.InjectVariables(tree, config.VarPrefix)
	}

	components := make(map[string]bool)
	for _, f := range styleFiles {
		styles := make([]Style, 0, len(f.Styles))
		for _, sd := range f.Styles {
			styles = append(styles, Static(sd.Name, sd.Decl))
			result.TokenValues += cssgen.CountCategories(sd.Decl, result.Categories)
		}

		classes := engine.CreateStyles(f.Component, styles...)
		components[classes.Component()] = true
		for _, name := range classes.Names() {
			result.Classes = append(result.Classes, ClassEntry{
				File:      f.Path,
				Component: f.Component,
				Style:     name,
				Class:     classes.Get(name),
			})
		}
	}
	result.Components = len(components)

	// 5. Collect output
	result.Rules = len(engine.Rules())
	result.Stats = engine.Stats()
	if config.Tag {
		result.CSS = engine.StyleTag()
	} else {
		result.CSS = engine.Drain()
	}

	if result.Stats.Rejected > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d rule(s) rejected as malformed, run lint for details", result.Stats.Rejected))
	}
	if result.Stats.Neutralized > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d value(s) neutralized to unset", result.Stats.Neutralized))
	}

	// 6. Write the stylesheet
	if config.OutputFile != "" {
		if err := writeOutputFile(config.OutputFile, result.CSS); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		log.Debug("Stylesheet written", zap.String("path", config.OutputFile))
	}

	return result, nil
}

// LoadTheme loads base and composes overrides over it. It returns nil
// without error when base is empty.
func LoadTheme(base string, overrides []string, mode theme.Mode, log *zap.Logger) (*theme.Tree, error) {
	if base == "" {
		if len(overrides) > 0 {
			return nil, fmt.Errorf("%w: overrides given without a base theme", ErrNoTheme)
		}
		return nil, nil
	}

	tree, err := theme.Load(base)
	if err != nil {
		return nil, err
	}

	composer := theme.NewComposer(0, log)
	for _, path := range overrides {
		m, err := theme.LoadMap(path)
		if err != nil {
			return nil, err
		}
		tree = composer.Compose(tree, m, mode)
	}
	return tree, nil
}

func writeOutputFile(path, css string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(css), 0o644)
}
