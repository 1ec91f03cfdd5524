package engine

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/pqrand/pqrand.go/internal/limitopen"
	"github.com/pqrand/pqrand.go/log"
)

const stateFileMode = 0644

// State files hold a single line of about 400 bytes.
var stateFileLimits = limitopen.Limits{
	Soft: 4 << 10,
	Hard: 64 << 10,
}

// SeedFromFile seeds the engine from the first line of the file at path.
//
// The file is read from the engine's filesystem (see WithFs).
// It returns an *IOError when the file cannot be read and a *ParseError
// when its first line is not a valid state string. On error the engine is
// left unchanged.
func (e *Engine) SeedFromFile(path string) error {
	line, err := readStateLine(e, path)
	if err == nil {
		err = e.seedFromString(line)
	}
	recordSeed(sourceFile, err)
	if err != nil {
		return err
	}
	log.Debugw("engine: seeded from file", "path", path)
	return nil
}

func readStateLine(e *Engine, path string) (string, error) {
	r, err := limitopen.OpenWithLimits(e.fs, path, stateFileLimits)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	defer r.Close() // safe to blindly close read-only files

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return line, nil
}

// WriteState writes the state string of the engine as a single line to the
// file at path, replacing the file if it exists.
//
// Missing directories are not created. The file is closed, and the close
// error reported, on every path out of WriteState.
// It returns a *StateError for an engine that was never seeded, since
// auditing the default stream is a mistake, and an *IOError when the file
// cannot be written.
func (e *Engine) WriteState(path string) (err error) {
	if !e.seeded {
		return &StateError{Op: "WriteState"}
	}

	f, err := e.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, stateFileMode)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "write", Path: path, Err: closeErr}
		}
	}()

	buf := e.AppendState(make([]byte, 0, 512))
	buf = append(buf, '\n')
	if _, err := f.Write(buf); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	log.Debugw("engine: state written", "path", path)
	return nil
}
