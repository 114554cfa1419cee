package mobileassets

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/setanarut/mobileassets/utils"
)

// ContentsFileName is the asset catalog descriptor written into every
// .appiconset and .imageset folder.
const ContentsFileName = "Contents.json"

// ManifestImage is one "images" entry of an asset catalog descriptor.
type ManifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size,omitempty"`
}

type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Contents is the Contents.json document Xcode reads for an asset folder.
type Contents struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

func NewContents(images ...ManifestImage) Contents {
	return Contents{
		Images: images,
		Info:   ManifestInfo{Author: "xcode", Version: 1},
	}
}

// Filenames returns the distinct file names referenced by c, in first-seen
// order. An icon may appear under several idioms.
func (c Contents) Filenames() []string {
	seen := make(map[string]bool, len(c.Images))
	out := make([]string, 0, len(c.Images))
	for _, img := range c.Images {
		if seen[img.Filename] {
			continue
		}
		seen[img.Filename] = true
		out = append(out, img.Filename)
	}
	return out
}

// Marshal encodes c with a two-space indent.
func (c Contents) Marshal() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// WriteContents replaces dir/Contents.json with c and returns the written path.
func WriteContents(dir string, c Contents) (string, error) {
	data, err := c.Marshal()
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", ContentsFileName, err)
	}
	path := filepath.Join(dir, ContentsFileName)
	if err := utils.AtomicWrite(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
