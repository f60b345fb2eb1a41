package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Menu      FontName = "menu"
	MenuBold  FontName = "menu-bold"
	MenuTitle FontName = "menu-title"
	MenuSmall FontName = "menu-small"
)

// Get returns the x/image face registered under f.
func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns f wrapped for text/v2 drawing and ebitenui widgets.
func (f FontName) Face() text.Face {
	mu.Lock()
	defer mu.Unlock()
	if tf, ok := textFaces[f]; ok {
		return tf
	}
	face, ok := fonts[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	tf := text.NewGoXFace(face)
	textFaces[f] = tf
	return tf
}

var (
	mu        sync.Mutex
	loadOnce  sync.Once
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// LoadDefaults registers the bundled Go fonts under the menu names.
func LoadDefaults() {
	loadOnce.Do(func() {
		LoadFontWithSize(Menu, goregular.TTF, 14)
		LoadFontWithSize(MenuBold, gobold.TTF, 14)
		LoadFontWithSize(MenuTitle, gobold.TTF, 22)
		LoadFontWithSize(MenuSmall, goregular.TTF, 11)
	})
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(textFaces, name)
	mu.Unlock()
	return nil
}

func getFont(name FontName) font.Face {
	mu.Lock()
	defer mu.Unlock()
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
