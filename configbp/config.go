// Package configbp parses pqrand configuration files.
package configbp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/pqrand/pqrand.go/internal/limitopen"
	"github.com/pqrand/pqrand.go/log"
)

// ConfigPath points to the default config file, from the PQRAND_CONFIG_PATH
// environment variable.
var ConfigPath = os.Getenv("PQRAND_CONFIG_PATH")

var configLimits = limitopen.Limits{
	Soft: 64 << 10,
	Hard: 1 << 20,
}

type envsubstReader struct {
	buffer bytes.Buffer
	lines  *bufio.Scanner
}

func (r *envsubstReader) Read(buf []byte) (int, error) {
	// Keep flushing pending data if we have it
	if r.buffer.Len() > 0 {
		return r.buffer.Read(buf)
	}

	if !r.lines.Scan() {
		if err := r.lines.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	r.buffer.WriteString(os.ExpandEnv(r.lines.Text()))
	r.buffer.WriteString("\n")
	return r.buffer.Read(buf)
}

// ParseStrictFile parses configuration from the file at the given path on
// the OS filesystem, see ParseStrictFileFs.
func ParseStrictFile(path string, ptr interface{}) error {
	return ParseStrictFileFs(nil, path, ptr)
}

// ParseStrictFileFs parses configuration from the file at the given path on
// fsys. A nil fsys means the OS filesystem.
//
// The format is picked by the extension: .yaml and .yml files are parsed by
// ParseStrictYAML, .toml files by ParseStrictTOML.
func ParseStrictFileFs(fsys afero.Fs, path string, ptr interface{}) error {
	var parse func(io.Reader, interface{}) error
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".yaml", ".yml":
		parse = ParseStrictYAML
	case ".toml":
		parse = ParseStrictTOML
	default:
		return fmt.Errorf("configbp: unsupported config extension %q", ext)
	}

	f, err := limitopen.OpenWithLimits(fsys, path, configLimits)
	if err != nil {
		return err // contains filename
	}
	defer f.Close() // safe to blindly close read-only files

	if err := parse(f, ptr); err != nil {
		return fmt.Errorf("configbp: %s: %w", path, err)
	}
	return nil
}

// substitute returns a reader substituting environment variables (e.g. $FOO
// and ${FOO}) in reader, and a builder holding everything read when debug
// logging is enabled.
func substitute(reader io.Reader) (io.Reader, *strings.Builder) {
	reader = &envsubstReader{
		lines: bufio.NewScanner(reader),
	}
	var debugOutput strings.Builder
	if log.DebugEnabled() {
		reader = io.TeeReader(reader, &debugOutput)
	}
	return reader, &debugOutput
}

// ParseStrictYAML parses YAML read from the given Reader.
//
// Environment variables (e.g. $FOO and ${FOO}) are substituted from the
// environment before parsing. Unknown fields are errors.
func ParseStrictYAML(reader io.Reader, ptr interface{}) error {
	reader, debugOutput := substitute(reader)

	dec := yaml.NewDecoder(reader)
	dec.SetStrict(true)
	if err := dec.Decode(ptr); err != nil {
		// Print out the partial configuration to aid in debugging decode errors now that the file isn't used literally
		if debugOutput.Len() > 0 {
			log.Debugf("Partial configuration for decoding into %T: (error: %s)\n%s", ptr, err, debugOutput.String())
		}
		return fmt.Errorf("parsing YAML into %T: %w", ptr, err)
	}

	if debugOutput.Len() > 0 {
		log.Debugf("Parsed configuration as %T:\n%s", ptr, debugOutput.String())
	}
	return nil
}

// ParseStrictTOML parses TOML read from the given Reader.
//
// Environment variables are substituted like in ParseStrictYAML. Keys that
// don't match any field of ptr are errors.
func ParseStrictTOML(reader io.Reader, ptr interface{}) error {
	reader, debugOutput := substitute(reader)

	md, err := toml.NewDecoder(reader).Decode(ptr)
	if err != nil {
		if debugOutput.Len() > 0 {
			log.Debugf("Partial configuration for decoding into %T: (error: %s)\n%s", ptr, err, debugOutput.String())
		}
		return fmt.Errorf("parsing TOML into %T: %w", ptr, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("parsing TOML into %T: unknown key(s) %s", ptr, strings.Join(keys, ", "))
	}

	if debugOutput.Len() > 0 {
		log.Debugf("Parsed configuration as %T:\n%s", ptr, debugOutput.String())
	}
	return nil
}
