// Package fsys answers the filesystem questions asked by the VAROS built-ins.
// Paths go through viant/afs, so a bare path is treated as a local file URL
// and relative paths resolve against the process working directory.
package fsys

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Service implements varostypes.Filesystem on top of an afs.Service.
type Service struct {
	fs afs.Service
}

// New creates a filesystem service backed by afs.New().
func New() *Service {
	return &Service{fs: afs.New()}
}

// NewWithService creates a filesystem service backed by the given afs service.
func NewWithService(fs afs.Service) *Service {
	return &Service{fs: fs}
}

// Exists reports whether path names an existing file or directory.
func (s *Service) Exists(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	exists, err := s.fs.Exists(ctx, path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return exists, nil
}

// ListDir returns the immediate entries of the directory at path, each joined
// onto path as given. Order follows the underlying listing.
func (s *Service) ListDir(ctx context.Context, path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("directory path cannot be empty")
	}

	object, err := s.fs.Object(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}
	if !object.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	objects, err := s.fs.List(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects at %s: %w", path, err)
	}

	base := trimSlash(url.Path(url.Normalize(path, file.Scheme)))
	entries := make([]string, 0, len(objects))
	for _, obj := range objects {
		// afs reports the listed location alongside its children
		if trimSlash(url.Path(obj.URL())) == base {
			continue
		}
		entries = append(entries, joinEntry(path, obj.Name()))
	}
	return entries, nil
}

func joinEntry(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

func trimSlash(p string) string {
	if len(p) > 1 {
		return strings.TrimSuffix(p, "/")
	}
	return p
}
