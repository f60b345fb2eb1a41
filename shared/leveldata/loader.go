package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// StartPositionLayer is the object group holding player start locations.
const StartPositionLayer = "StartPositions"

// LoadMapInfo parses a TMX file and returns its header and start positions.
// It takes an fs.FS so callers can pass the asset search path or os.DirFS.
func LoadMapInfo(fsys fs.FS, tmxPath string) (*MapInfo, []StartPosition, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stem := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	info := &MapInfo{
		Name:   stem,
		Title:  levelMap.Properties.GetString("title"),
		Path:   tmxPath,
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}
	if info.Title == "" {
		info.Title = stem
	}

	var starts []StartPosition
	for _, og := range levelMap.ObjectGroups {
		if og.Name != StartPositionLayer {
			continue
		}
		for i, o := range og.Objects {
			idx := i
			if o.Properties.GetString("player") != "" {
				idx = o.Properties.GetInt("player")
			}
			starts = append(starts, StartPosition{X: o.X, Y: o.Y, Index: idx})
		}
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Index < starts[j].Index })
	info.Players = len(starts)

	return info, starts, nil
}

// LoadAllMaps discovers all .tmx files in dir within fsys and returns their
// headers sorted by name. Maps that fail to parse are reported through skip
// and left out.
func LoadAllMaps(fsys fs.FS, dir string, skip func(path string, err error)) ([]MapInfo, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make([]MapInfo, 0, len(matches))
	for _, p := range matches {
		info, _, err := LoadMapInfo(fsys, p)
		if err != nil {
			if skip != nil {
				skip(p, err)
			}
			continue
		}
		maps = append(maps, *info)
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}
