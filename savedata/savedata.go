// Package savedata stores block worlds created from the title menus.
package savedata

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	cfg "github.com/automoto/blockfront/config"
)

var (
	ErrNotFound    = errors.New("save not found")
	ErrInvalidName = errors.New("invalid save name")
)

// Vec3 is a block position
type Vec3 struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// InventorySlot is one stack of items
type InventorySlot struct {
	Item  int `json:"item"`
	Count int `json:"count"`
}

// ChunkEdit is a block changed by the player
type ChunkEdit struct {
	Chunk Vec3 `json:"chunk"`
	Block Vec3 `json:"block"`
	Type  int  `json:"type"`
}

// SaveFile is the persisted record of one world
type SaveFile struct {
	Name           string          `json:"name"`
	Seed           string          `json:"seed"`
	Spawn          Vec3            `json:"spawn"`
	Inventory      []InventorySlot `json:"inventory"`
	ModifiedChunks []ChunkEdit     `json:"modifiedChunks"`
}

// New returns a blank world with no name or seed
func New() *SaveFile {
	return &SaveFile{
		Inventory:      []InventorySlot{},
		ModifiedChunks: []ChunkEdit{},
	}
}

// ResetProgress sets the spawn point and clears inventory and edits
func (s *SaveFile) ResetProgress(spawn Vec3) {
	s.Spawn = spawn
	s.Inventory = []InventorySlot{}
	s.ModifiedChunks = []ChunkEdit{}
}

// ValidateName checks that name can be stored
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if !utf8.ValidString(name) || utf8.RuneCountInString(name) > cfg.Saves.NameMaxLength {
		return ErrInvalidName
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return ErrInvalidName
		}
	}
	return nil
}
