// Package images keeps copies of captured asset images in the local images
// directory and hands out file:// references to them.
package images

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/legacykeeper/internal/filex"
	"github.com/dmitrijs2005/legacykeeper/internal/logging"
	"github.com/google/uuid"
)

type Store struct {
	dir string
	log logging.Logger
}

func NewStore(dir string, log logging.Logger) *Store {
	return &Store{dir: dir, log: log.With("component", "images")}
}

// Import copies the image at src into the store under a fresh name and
// returns a file:// reference to the copy. src may be a path or a file:// URI.
func (s *Store) Import(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	srcPath, err := Path(src)
	if err != nil {
		return "", err
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer in.Close()

	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("error creating dir: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(srcPath))
	dst := filepath.Join(dir, name)

	if err := filex.WriteAtomic(dst, in); err != nil {
		s.log.Error(ctx, "import image", "src", srcPath, "err", err)
		return "", fmt.Errorf("copy image: %w", err)
	}

	uri := URI(dst)
	s.log.Debug(ctx, "image imported", "src", srcPath, "uri", uri)
	return uri, nil
}

// URI turns an absolute path into a file:// reference.
func URI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// Path resolves a file:// reference, or a plain path, to a local path.
func Path(ref string) (string, error) {
	if !strings.HasPrefix(ref, "file://") {
		if ref == "" {
			return "", fmt.Errorf("empty image reference")
		}
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse image reference: %w", err)
	}
	if u.Path == "" {
		return "", fmt.Errorf("image reference %q has no path", ref)
	}
	return filepath.FromSlash(u.Path), nil
}
