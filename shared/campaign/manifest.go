// Package campaign reads the campaign and challenge descriptors shipped in
// the data directory.
package campaign

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Campaign is one entry of the campaign selector.
type Campaign struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Video    string `json:"video"`
	Captions string `json:"captions"`
	Package  string `json:"package"` // zip archive under {writedir}/campaigns
	Loading  string `json:"loading"` // extra level file loaded before start
}

// Challenge is a preset skirmish with fixed rules.
type Challenge struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Map         string `json:"map"`
	Description string `json:"description"`
}

// LoadCampaigns reads every *.json file in dir. Other files are skipped;
// results are in file name order. Descriptors that cannot be read or parsed
// are reported through skip and left out.
func LoadCampaigns(fsys fs.FS, dir string, skip func(path string, err error)) ([]Campaign, error) {
	var out []Campaign
	err := eachJSON(fsys, dir, skip, func(name string, data []byte) error {
		var c Campaign
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("parse campaign %s: %w", name, err)
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// LoadChallenges reads every *.json file in dir, reporting bad descriptors
// through skip like LoadCampaigns.
func LoadChallenges(fsys fs.FS, dir string, skip func(path string, err error)) ([]Challenge, error) {
	var out []Challenge
	err := eachJSON(fsys, dir, skip, func(name string, data []byte) error {
		var c Challenge
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("parse challenge %s: %w", name, err)
		}
		if c.Name == "" {
			c.Name = strings.TrimSuffix(path.Base(name), ".json")
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// eachJSON calls fn for every JSON file in dir. Only a missing or
// unreadable dir is an error; a failing file goes to skip.
func eachJSON(fsys fs.FS, dir string, skip func(path string, err error), fn func(name string, data []byte) error) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, name)
		if err == nil {
			err = fn(name, data)
		} else {
			err = fmt.Errorf("read %s: %w", name, err)
		}
		if err != nil && skip != nil {
			skip(name, err)
		}
	}
	return nil
}
