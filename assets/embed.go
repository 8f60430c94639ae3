package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed sprites/*.png sounds/*.wav
var assetsFS embed.FS

var ErrNotFound = errors.New("assets: not found")

var (
	imageMu sync.Mutex
	images  = map[string]*ebiten.Image{}
)

// Sprite returns the sprite image for a sprite key, loading it on first use.
// Keys are basenames under sprites/ with or without the .png extension.
func Sprite(key string) (*ebiten.Image, error) {
	imageMu.Lock()
	defer imageMu.Unlock()
	if img, ok := images[key]; ok {
		if img == nil {
			return nil, fmt.Errorf("%w: sprite %q", ErrNotFound, key)
		}
		return img, nil
	}
	img, err := LoadImage(SpritePath(key))
	if err != nil {
		// remember the miss so a missing sprite is looked up once
		images[key] = nil
		return nil, err
	}
	images[key] = img
	return img, nil
}

// LoadImage loads an embedded image by assets-relative path.
func LoadImage(p string) (*ebiten.Image, error) {
	b, err := LoadFile(p)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(p string) ([]byte, error) {
	clean := cleanAssetPath(p)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return nil, err
	}
	return b, nil
}

// LoadSound returns the encoded bytes of a sound key under sounds/.
func LoadSound(key string) ([]byte, error) {
	return LoadFile(SoundPath(key))
}

func SpritePath(key string) string {
	return keyPath("sprites", key, ".png")
}

func SoundPath(key string) string {
	return keyPath("sounds", key, ".wav")
}

// Keys lists the keys available in an asset directory ("sprites" or "sounds").
func Keys(dir string) []string {
	entries, err := assetsFS.ReadDir(dir)
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		keys = append(keys, strings.TrimSuffix(name, path.Ext(name)))
	}
	return keys
}

func keyPath(dir, key, ext string) string {
	key = cleanAssetPath(key)
	key = strings.TrimPrefix(key, dir+"/")
	if path.Ext(key) == "" {
		key += ext
	}
	return dir + "/" + key
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(p)
	}
	s := filepath.ToSlash(p)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
