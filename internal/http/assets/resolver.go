// Package assets versions static asset URLs with a content hash so browsers can
// cache them indefinitely.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"
)

const (
	staticPrefix = "/static/"
	hashLength   = 10
)

// AssetResolver maps logical asset names ("css/app.css") to versioned URLs
// ("/static/css/app.css?v=1a2b3c4d5e"). Hashes are computed once per file and
// cached; dev mode recomputes on every lookup so edits show up immediately.
type AssetResolver struct {
	fsys    fs.FS
	devMode bool
	logger  *slog.Logger

	mu     sync.RWMutex
	hashes map[string]string
}

// NewAssetResolver builds a resolver over fsys, whose root holds the static tree.
func NewAssetResolver(fsys fs.FS, devMode bool) (*AssetResolver, error) {
	if fsys == nil {
		return nil, errors.New("assets: filesystem is required")
	}
	return &AssetResolver{
		fsys:    fsys,
		devMode: devMode,
		logger:  slog.Default(),
		hashes:  make(map[string]string),
	}, nil
}

// SetLogger updates the resolver's logger. If logger is nil, slog.Default() is used.
func (ar *AssetResolver) SetLogger(logger *slog.Logger) {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	if logger == nil {
		logger = slog.Default()
	}
	ar.logger = logger
}

// Resolve returns the versioned URL for logicalName. Unknown assets resolve to
// their plain /static/ path.
func (ar *AssetResolver) Resolve(logicalName string) string {
	name := strings.TrimPrefix(path.Clean("/"+logicalName), "/")
	plain := staticPrefix + name

	hash, err := ar.hashFor(name)
	if err != nil {
		ar.loggerOrDefault().Warn("asset not found; serving unversioned path",
			slog.String("asset", name),
			slog.Any("error", err),
		)
		return plain
	}
	return plain + "?v=" + hash
}

func (ar *AssetResolver) hashFor(name string) (string, error) {
	if !ar.devMode {
		ar.mu.RLock()
		h, ok := ar.hashes[name]
		ar.mu.RUnlock()
		if ok {
			return h, nil
		}
	}

	data, err := fs.ReadFile(ar.fsys, name)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	h := hex.EncodeToString(sum[:])[:hashLength]

	if !ar.devMode {
		ar.mu.Lock()
		ar.hashes[name] = h
		ar.mu.Unlock()
	}
	return h, nil
}

func (ar *AssetResolver) loggerOrDefault() *slog.Logger {
	ar.mu.RLock()
	defer ar.mu.RUnlock()
	if ar.logger != nil {
		return ar.logger
	}
	return slog.Default()
}

// ResolveAsset resolves logicalName with resolver, falling back to the plain
// static path when no resolver is configured.
func ResolveAsset(resolver *AssetResolver, logicalName string) string {
	if resolver == nil {
		return staticPrefix + strings.TrimPrefix(logicalName, "/")
	}
	return resolver.Resolve(logicalName)
}
