package bkw

import (
	"strings"

	"github.com/dekarrin/bork/internal/game"
)

type topLevelManifest struct {
	Format string   `toml:"format"`
	Type   string   `toml:"type"`
	Files  []string `toml:"files"`
}

// topLevelWorldData is the top-level structure containing all keys in a
// complete BKW 'DATA' type file.
type topLevelWorldData struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
	Rooms  []room `toml:"room"`
	World  world  `toml:"world"`
}

type world struct {
	Start string `toml:"start"`
	Intro string `toml:"intro"`
}

type room struct {
	Label       string   `toml:"label"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Exits       []exit   `toml:"exit"`
	Objects     []object `toml:"object"`
}

// toGameRoom converts the room and all objects in it. Exits are not linked
// because the rooms they lead to may not have been converted yet.
func (tr room) toGameRoom() *game.Room {
	r := game.NewRoom(strings.ToUpper(tr.Label), tr.Name, tr.Description)

	for i := range tr.Objects {
		r.AddObject(tr.Objects[i].toGameObject())
	}

	return r
}

type exit struct {
	Direction string `toml:"direction"`
	Dest      string `toml:"dest"`
}

type object struct {
	Label       string   `toml:"label"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Examinable  *bool    `toml:"examinable"`
	Openable    bool     `toml:"openable"`
	Takeable    bool     `toml:"takeable"`
	Open        bool     `toml:"open"`
	Contents    []object `toml:"contents"`
}

func (to object) toGameObject() *game.Object {
	obj := &game.Object{
		Label:       strings.ToUpper(to.Label),
		Name:        to.Name,
		Description: to.Description,
		Examinable:  to.Examinable == nil || *to.Examinable,
		Openable:    to.Openable,
		Takeable:    to.Takeable,
	}

	if to.Open {
		obj.State = game.StateOpen
	}

	for i := range to.Contents {
		obj.AddContent(to.Contents[i].toGameObject())
	}

	return obj
}
