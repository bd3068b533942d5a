package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// LevelsFS exposes the embedded arena maps for LoadArena.
func LevelsFS() fs.FS {
	return levelFS
}

// ImageLoader decodes embedded images once and hands out the cached result.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) LoadImage(p string) (*ebiten.Image, error) {
	if img, ok := l.cache[p]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", p, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", p, err)
	}

	l.cache[p] = img
	return img, nil
}

func (l *ImageLoader) MustLoadImage(p string) *ebiten.Image {
	img, err := l.LoadImage(p)
	if err != nil {
		panic(err)
	}
	return img
}

var imageLoader = NewImageLoader(imageFS)

// LoadSheet returns a fighter sprite sheet from images/spritesheets.
func LoadSheet(name string) (*ebiten.Image, error) {
	return imageLoader.LoadImage(path.Join("images/spritesheets", name))
}

// LoadBackground returns an arena backdrop from images/backgrounds.
func LoadBackground(name string) (*ebiten.Image, error) {
	return imageLoader.LoadImage(path.Join("images/backgrounds", name))
}
