package imagename

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// AssetStore answers whether an image path exists under a root directory.
// If lazy is false, all .png files are indexed at creation time.
// If lazy is true, files are stat'ed on first access and the answer is cached.
type AssetStore struct {
	root  string
	known map[string]bool // slash path → exists
	mu    sync.RWMutex
	lazy  bool
}

// NewAssetStore creates an asset store rooted at dir.
func NewAssetStore(dir string, lazy bool) (*AssetStore, error) {
	s := &AssetStore{
		root:  dir,
		known: make(map[string]bool),
		lazy:  lazy,
	}

	if !lazy {
		if err := s.preload(); err != nil {
			return nil, fmt.Errorf("preloading assets: %w", err)
		}
	}

	return s, nil
}

// Exists reports whether p (slash-separated, relative to the root) is a file.
func (s *AssetStore) Exists(p string) bool {
	if p == "" || strings.Contains(p, "..") || path.IsAbs(p) {
		return false
	}

	s.mu.RLock()
	ok, cached := s.known[p]
	s.mu.RUnlock()
	if cached {
		return ok
	}

	if !s.lazy {
		return false
	}

	info, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(p)))
	exists := err == nil && !info.IsDir()

	s.mu.Lock()
	s.known[p] = exists
	s.mu.Unlock()

	return exists
}

// Resolve returns the first existing candidate, or ErrorImage when none exists.
func (s *AssetStore) Resolve(candidates []string) string {
	if p, ok := FirstExisting(candidates, s.Exists); ok {
		return p
	}
	return ErrorImage
}

// preload walks the root and indexes all .png files.
func (s *AssetStore) preload() error {
	info, err := os.Stat(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("asset directory does not exist, skipping preload", "dir", s.root)
			return nil
		}
		return fmt.Errorf("stat asset dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset dir is not a directory: %s", s.root)
	}

	count := 0
	err = filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".png") {
			return nil
		}

		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return fmt.Errorf("computing relative path for %s: %w", p, err)
		}

		s.known[filepath.ToSlash(rel)] = true
		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking asset dir: %w", err)
	}

	slog.Info("image assets indexed", "count", count, "dir", s.root)
	return nil
}
