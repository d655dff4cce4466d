// Package params loads and stores the settings of a vectorization run.
//
// Settings can be kept in TOML or YAML files, or in the plain format of
// name=value lines also accepted by [File.Set]:
//
//	# comment
//	l_max_distance=1.000000
//	b_corner_angle=90.000000
//	svg_control=1
package params

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/spvec"
	"honnef.co/go/spvec/internal/svg"
)

// File is the complete set of settings.
type File struct {
	Config spvec.Config `toml:"config" yaml:"config"`
	Trace  Trace        `toml:"trace" yaml:"trace"`
	SVG    svg.Layers   `toml:"svg" yaml:"svg"`
}

// Trace configures contour extraction.
type Trace struct {
	// MiddlePoints adds the midpoint of every pixel edge to the contours.
	MiddlePoints bool `toml:"middle_points" yaml:"middle_points"`
	// Threshold is the luminance below which pixels belong to a shape.
	Threshold uint8 `toml:"threshold" yaml:"threshold"`
}

// Default returns the default settings.
func Default() *File {
	return &File{
		Config: spvec.DefaultConfig,
		Trace: Trace{
			MiddlePoints: true,
			Threshold:    128,
		},
		SVG: svg.DefaultLayers,
	}
}

// Format is a file format for settings.
type Format int

const (
	// Lines is the plain name=value format.
	Lines Format = iota
	TOML
	YAML
)

func (f Format) String() string {
	switch f {
	case Lines:
		return "lines"
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses the name of a format as returned by [Format.String].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "lines", "par":
		return Lines, nil
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// FileFormat returns the format used for the named file: TOML for .toml,
// YAML for .yaml and .yml, and Lines for anything else.
func FileFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML
	case ".yaml", ".yml":
		return YAML
	default:
		return Lines
	}
}

// Load reads settings from the named file. Settings missing from the file
// keep their defaults.
func Load(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	f := Default()
	if err := f.Decode(bytes.NewReader(data), FileFormat(filename)); err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return f, nil
}

// Decode overlays the settings read from r onto f. Unknown settings are
// errors.
func (f *File) Decode(r io.Reader, format Format) error {
	switch format {
	case TOML:
		return toml.NewDecoder(r).DisallowUnknownFields().Decode(f)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && err != io.EOF {
			return err
		}
		return nil
	case Lines:
		return f.decodeLines(r)
	default:
		return fmt.Errorf("can't decode %s", format)
	}
}

// decodeLines applies every line of r that isn't empty or a comment. It
// reports the lines it couldn't apply, but applies all others.
func (f *File) decodeLines(r io.Reader) error {
	var errs []error
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if err := f.Set(line); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", n, err))
		}
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Save writes f to the named file, in the format chosen by [FileFormat].
func (f *File) Save(filename string) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf, FileFormat(filename)); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0o666)
}

// Encode writes f to w.
func (f *File) Encode(w io.Writer, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(f)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	case Lines:
		bw := bufio.NewWriter(w)
		for _, e := range entries {
			fmt.Fprintf(bw, "%s=%s\n", e.name, e.get(f))
		}
		return bw.Flush()
	default:
		return fmt.Errorf("can't encode %s", format)
	}
}

// Set applies a single name=value setting, using the names of the Lines
// format.
func (f *File) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("%q isn't of the form name=value", s)
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	for _, e := range entries {
		if e.name == name {
			if err := e.set(f, value); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		}
	}
	return fmt.Errorf("unknown setting %q", name)
}

// Names returns the names of all settings of the Lines format.
func Names() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}
