// Package limitopen opens small files, like engine state files and configs,
// with size limits.
package limitopen

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spf13/afero"

	"github.com/pqrand/pqrand.go/internal/prometheusbpint"
	"github.com/pqrand/pqrand.go/log"
)

const (
	promSubsystem = "limitopen"

	pathLabel = "path"
)

var (
	sizeGauge = promauto.With(prometheusbpint.GlobalRegistry).NewGaugeVec(prometheus.GaugeOpts{
		Namespace: prometheusbpint.Namespace,
		Subsystem: promSubsystem,
		Name:      "file_size_bytes",
		Help:      "Size of the last file opened with limits, by file base name",
	}, []string{pathLabel})

	softLimitCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: prometheusbpint.Namespace,
		Subsystem: promSubsystem,
		Name:      "softlimit_violation_total",
		Help:      "Total number of files opened above their soft size limit, by file base name",
	}, []string{pathLabel})
)

// Limits bound the size of a file as reported by its filesystem. A zero limit
// is disabled.
type Limits struct {
	// Soft is logged at error level and counted when exceeded.
	Soft int64

	// Hard fails the open when exceeded.
	Hard int64
}

// File is a file opened for reading by Open.
//
// Reads stop at Size bytes even if the file grows, or is a device reporting
// a size of 0, like /dev/zero.
type File struct {
	r    io.Reader
	f    afero.File
	size int64
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

// Size returns the size of the file reported by the filesystem when it was
// opened.
func (f *File) Size() int64 {
	return f.size
}

// Open opens path on fsys for reading. A nil fsys means the OS filesystem.
//
// Errors wrap the filesystem error and name the path. Directories are
// rejected. When err is nil the caller must close the file.
func Open(fsys afero.Fs, path string) (*File, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("limitopen: open %q: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("limitopen: stat %q: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("limitopen: %q is a directory", path)
	}
	return &File{
		r:    io.LimitReader(f, info.Size()),
		f:    f,
		size: info.Size(),
	}, nil
}

// OpenWithLimits calls Open and checks the size of the file against limits.
//
// The size is always reported as the pqrand_limitopen_file_size_bytes gauge,
// labeled by the base name of path. A soft limit violation also increments
// pqrand_limitopen_softlimit_violation_total.
func OpenWithLimits(fsys afero.Fs, path string, limits Limits) (*File, error) {
	f, err := Open(fsys, path)
	if err != nil {
		return nil, err
	}

	labels := prometheus.Labels{pathLabel: filepath.Base(path)}
	sizeGauge.With(labels).Set(float64(f.size))

	if limits.Soft > 0 && f.size > limits.Soft {
		log.Errorw(
			"limitopen: file larger than its soft limit",
			"path", path,
			"size", f.size,
			"limit", limits.Soft,
		)
		softLimitCounter.With(labels).Inc()
	}
	if limits.Hard > 0 && f.size > limits.Hard {
		f.Close()
		return nil, fmt.Errorf("limitopen: %q has %d bytes, above the hard limit of %d", path, f.size, limits.Hard)
	}
	return f, nil
}
