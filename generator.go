package borderize

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yacobolo/borderize/internal/borderize"
	"github.com/yacobolo/borderize/internal/markup"
)

// settings is the validated form of a Config.
type settings struct {
	parse     markup.Options
	scope     string
	extractor borderize.Extractor
	filter    borderize.LabelFilter
	assigner  borderize.Assigner
	format    OutputFormat
}

// newSettings validates everything that can be checked without I/O.
func newSettings(config Config) (*settings, error) {
	format, err := DetermineOutputFormat(config.Format)
	if err != nil {
		return nil, err
	}
	mode, err := markup.ParseMode(config.Parser)
	if err != nil {
		return nil, err
	}
	if err := markup.ValidateEncoding(config.Encoding); err != nil {
		return nil, err
	}
	if err := markup.ValidateSelector(config.Scope); err != nil {
		return nil, err
	}
	exclusions, err := borderize.NewExclusionSet(config.IgnoreTags...)
	if err != nil {
		return nil, fmt.Errorf("ignore tags: %w", err)
	}
	if config.Palette != nil {
		if _, err := borderize.NewPalette(config.Palette); err != nil {
			return nil, err
		}
	}

	s := &settings{
		parse: markup.Options{Mode: mode, Encoding: config.Encoding},
		scope: config.Scope,
		extractor: borderize.Extractor{
			Exclusions:        exclusions,
			IncludeAttributes: !config.NoAttributes,
		},
		filter: borderize.LabelFilter{
			Only:    config.Only,
			Exclude: config.Exclude,
		},
		assigner: borderize.Assigner{Palette: config.Palette},
		format:   format,
	}
	if config.Seed != 0 {
		s.assigner.Rand = borderize.NewSeededRand(config.Seed)
	}
	return s, nil
}

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	if err := config.defaults(); err != nil {
		return nil, err
	}

	// 1. Validate settings before touching the filesystem
	s, err := newSettings(config)
	if err != nil {
		return nil, err
	}

	// 2. Resolve and check paths
	if err := requireDir(KindSourceDir, config.SourceDir); err != nil {
		return nil, err
	}
	toStdout := config.OutputName == StdoutName
	outputPath := StdoutName
	if !toStdout {
		if err := requireDir(KindDestDir, config.DestDir); err != nil {
			return nil, err
		}
		outputPath = filepath.Join(config.DestDir, config.OutputName)
	}

	files, stats, err := expandInputs(config.SourceDir, config.Input)
	if err != nil {
		return nil, err
	}
	if stats.FilesSkipped > 0 {
		config.verbosef("Skipped %d gitignored files\n", stats.FilesSkipped)
	}

	result := &GenerateResult{
		Files:        files,
		FilesScanned: len(files),
		OutputPath:   outputPath,
	}

	// 3. Extract labels from every input
	labels, warnings, err := s.extractFiles(files, config)
	if err != nil {
		return nil, err
	}
	result.Warnings = warnings

	// 4. Apply --only / --exclude
	labels = s.filter.Apply(labels)
	config.verbosef("Extracted %d labels\n", len(labels))

	// 5. Assign colours
	if config.KeepColors && !toStdout {
		keep, err := readKeptColors(outputPath, s.format)
		if err != nil {
			return nil, err
		}
		config.verbosef("Keeping %d colours from %s\n", len(keep), outputPath)
		s.assigner.Keep = keep
	}
	styles, err := s.assigner.Assign(labels)
	if err != nil {
		return nil, err
	}
	result.Styles = styles
	result.Labels = len(styles)
	result.PaletteColors, result.RandomColors = styles.Counts()
	result.KeptColors = styles.KeptCount()

	// 6. Write the stylesheet
	if toStdout {
		if err := WriteOutput(config.Stdout, styles, s.format); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		return result, nil
	}
	if err := writeFile(outputPath, styles, s.format); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return result, nil
}

// extractFiles merges the labels of every file. With several inputs a file
// that fails to parse becomes a warning; a single input fails the run.
func (s *settings) extractFiles(files []string, config Config) (borderize.LabelSet, []string, error) {
	all := make(borderize.LabelSet)
	var warnings []string

	for _, file := range files {
		config.verbosef("Parsing %s\n", file)

		labels, err := s.extractFile(file)
		if err != nil {
			if len(files) == 1 {
				return nil, nil, err
			}
			warnings = append(warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		all.Merge(labels)
	}

	return all, warnings, nil
}

// extractFile parses one file and extracts labels within the scope
func (s *settings) extractFile(path string) (borderize.LabelSet, error) {
	doc, err := s.parseFile(path)
	if err != nil {
		return nil, err
	}
	nodes, err := doc.Select(s.scope)
	if err != nil {
		return nil, err
	}
	return s.extractor.ExtractNodes(nodes), nil
}

func (s *settings) parseFile(path string) (*markup.Document, error) {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	defer f.Close()

	doc, err := markup.Parse(f, s.parse)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// readKeptColors loads selector colours from a previous output file. A missing
// file yields no colours.
func readKeptColors(path string, format OutputFormat) (map[string]string, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read previous output: %w", err)
	}

	if format != OutputJSON {
		return borderize.ReadColors(string(data)), nil
	}

	var previous JSONOutput
	if err := json.Unmarshal(data, &previous); err != nil {
		return nil, fmt.Errorf("read previous output %s: %w", path, err)
	}
	keep := make(map[string]string, len(previous.Rules))
	for _, r := range previous.Rules {
		if _, err := borderize.NormalizeColor(r.Color); err == nil {
			keep[r.Selector] = r.Color
		}
	}
	return keep, nil
}

// writeFile creates (or truncates) path and writes the stylesheet to it
func writeFile(path string, styles borderize.StyleMap, format OutputFormat) (err error) {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteOutput(f, styles, format)
}
