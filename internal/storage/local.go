package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Local stores pictures on the filesystem under dir and serves them through
// the application's own /uploads route.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &Local{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (l *Local) Store(_ context.Context, filename string, content []byte) (string, error) {
	uniqueName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(filename))

	target := filepath.Join(l.dir, uniqueName)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write picture: %w", err)
	}

	return l.baseURL + "/uploads/" + uniqueName, nil
}

func (l *Local) Delete(_ context.Context, url string) error {
	name := path.Base(url)
	if name == "." || name == "/" {
		return nil
	}

	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete picture: %w", err)
	}

	return nil
}

// Dir exposes the storage directory so the router can mount it statically.
func (l *Local) Dir() string {
	return l.dir
}
