// Package res embeds the 9-Patch chat bubble assets.
package res

import (
	"embed"
	"fmt"
	"path"

	"git.sr.ht/~gioverse/ninechat/ninepatch"
)

// Resources holds every embedded asset.
//
//go:embed 9-Patch
var Resources embed.FS

// Bubble asset names, relative to Resources.
const (
	// MainBubble is drawn behind messages of the main character, with its
	// tail on the right.
	MainBubble = "9-Patch/main_character_chat_box.9.png"
	// SubBubble is drawn behind messages of every other character, with its
	// tail on the left.
	SubBubble = "9-Patch/sub_character_chat_box.9.png"
)

// Open decodes the named 9-Patch asset.
func Open(name string) (*ninepatch.NinePatch, error) {
	f, err := Resources.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening 9-Patch image: %w", err)
	}
	defer f.Close()
	np, err := ninepatch.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path.Base(name), err)
	}
	return np, nil
}

// MustOpen is like Open but panics on failure. It is meant for assets known
// to be valid, such as MainBubble and SubBubble.
func MustOpen(name string) *ninepatch.NinePatch {
	np, err := Open(name)
	if err != nil {
		panic(err)
	}
	return np
}
