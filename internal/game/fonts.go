package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pranavpatil1/homepage/internal/config"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts holds the title and menu faces. Go Regular covers the labels; an
// optional extra font supplies the decorative glyphs it lacks.
type fonts struct {
	title text.Face
	menu  text.Face
}

func loadFonts(extraPath string) (*fonts, error) {
	sources := make([]*text.GoTextFaceSource, 0, 2)

	base, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("game: load go regular: %w", err)
	}
	sources = append(sources, base)

	if extraPath != "" {
		data, err := os.ReadFile(extraPath)
		if err != nil {
			return nil, fmt.Errorf("game: read font %s: %w", extraPath, err)
		}
		extra, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("game: parse font %s: %w", extraPath, err)
		}
		sources = append(sources, extra)
	}

	title, err := face(sources, config.TitleSize)
	if err != nil {
		return nil, err
	}
	menu, err := face(sources, config.MenuSize)
	if err != nil {
		return nil, err
	}
	return &fonts{title: title, menu: menu}, nil
}

func face(sources []*text.GoTextFaceSource, size float64) (text.Face, error) {
	faces := make([]text.Face, 0, len(sources))
	for _, s := range sources {
		faces = append(faces, &text.GoTextFace{Source: s, Size: size})
	}
	if len(faces) == 1 {
		return faces[0], nil
	}
	mf, err := text.NewMultiFace(faces...)
	if err != nil {
		return nil, fmt.Errorf("game: font fallback: %w", err)
	}
	return mf, nil
}

// trackedMeasurer measures strings drawn with extra spacing after each rune.
type trackedMeasurer struct {
	face     text.Face
	tracking float64
}

func (m trackedMeasurer) Measure(s string) (float64, float64) {
	w := 0.0
	for _, r := range s {
		w += text.Advance(string(r), m.face) + m.tracking
	}
	_, h := text.Measure(s, m.face, 0)
	if s == "" {
		h = 0
	}
	return w, h
}
