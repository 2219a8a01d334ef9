package game

import (
	"strings"
	"testing"

	"github.com/dekarrin/bork/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWorld is a small world used by the tests in this package:
//
//	FIELD --north--> HOUSE --south--> FIELD
//
// FIELD holds a closed box with a coin in it, a rock that cannot be moved, and
// a lamp that can be taken.
type testWorld struct {
	world *World
	field *Room
	house *Room
	box   *Object
	coin  *Object
	rock  *Object
	lamp  *Object
}

func newTestWorld() testWorld {
	tw := testWorld{
		field: NewRoom("FIELD", "open field", "You are in an open field."),
		house: NewRoom("HOUSE", "house", "You are inside the house."),
		box: &Object{
			Label:       "BOX",
			Name:        "box",
			Description: "a small wooden box.",
			Examinable:  true,
			Openable:    true,
		},
		coin: &Object{
			Label:       "COIN",
			Name:        "coin",
			Description: "a shiny gold coin.",
			Examinable:  true,
			Takeable:    true,
		},
		rock: &Object{
			Label:       "ROCK",
			Name:        "rock",
			Description: "a boulder far too heavy to lift.",
			Examinable:  false,
		},
		lamp: &Object{
			Label:       "LAMP",
			Name:        "lamp",
			Description: "an old brass lamp.",
			Examinable:  true,
			Takeable:    true,
		},
	}

	tw.field.AddExit("north", tw.house)
	tw.house.AddExit("south", tw.field)

	tw.box.AddContent(tw.coin)
	tw.field.AddObject(tw.box)
	tw.field.AddObject(tw.rock)
	tw.field.AddObject(tw.lamp)

	w, err := NewWorld(tw.field)
	if err != nil {
		panic(err)
	}
	tw.world = w

	return tw
}

func newTestState(t *testing.T, tw testWorld, opts Options) *State {
	gs, err := New(tw.world, opts)
	require.NoError(t, err)
	return gs
}

func Test_New(t *testing.T) {
	assert := assert.New(t)
	tw := newTestWorld()

	gs, err := New(tw.world, Options{})

	assert.NoError(err)
	assert.Same(tw.field, gs.Player.Location)
	assert.Equal("Player", gs.Player.Name)
	assert.Equal(StatusRunning, gs.Status())
	assert.True(gs.Running())

	_, err = New(nil, Options{})
	assert.Error(err)
}

func Test_State_HandleCommand(t *testing.T) {
	testCases := []struct {
		name   string
		script []string
		expect string
	}{
		{
			name:   "move through an exit",
			script: []string{"move north"},
			expect: "You move north.",
		},
		{
			name:   "move where there is no exit",
			script: []string{"move south"},
			expect: "You can't go south from here.",
		},
		{
			name:   "move with no direction",
			script: []string{"move"},
			expect: "You can't go that way.",
		},
		{
			name:   "examine object in room",
			script: []string{"examine lamp"},
			expect: "The lamp is an old brass lamp.",
		},
		{
			name:   "examine non-examinable object",
			script: []string{"examine rock"},
			expect: "There's nothing significant about the rock",
		},
		{
			name:   "examine object in inventory after leaving room",
			script: []string{"take lamp", "move north", "examine lamp"},
			expect: "The lamp is an old brass lamp.",
		},
		{
			name:   "examine missing object",
			script: []string{"examine unicorn"},
			expect: "You don't see any unicorn here.",
		},
		{
			name:   "examine nothing",
			script: []string{"examine"},
			expect: "What do you want to examine?",
		},
		{
			name:   "open container",
			script: []string{"open box"},
			expect: "You open the box. Inside you find a coin.",
		},
		{
			name:   "open container twice",
			script: []string{"open box", "open box"},
			expect: "The box is already open.",
		},
		{
			name:   "open something not openable",
			script: []string{"open rock"},
			expect: "The rock cannot be opened.",
		},
		{
			name:   "open missing object",
			script: []string{"open door"},
			expect: "You don't see any door here.",
		},
		{
			name:   "close open container",
			script: []string{"open box", "close box"},
			expect: "You close the box.",
		},
		{
			name:   "close closed container",
			script: []string{"close box"},
			expect: "The box is already closed.",
		},
		{
			name:   "reopen emptied container",
			script: []string{"open box", "close box", "open box"},
			expect: "You open the box. It is empty.",
		},
		{
			name:   "take object",
			script: []string{"take lamp"},
			expect: "You take the lamp.",
		},
		{
			name:   "take object twice",
			script: []string{"take lamp", "take lamp"},
			expect: "You already have the lamp.",
		},
		{
			name:   "take revealed object",
			script: []string{"open box", "take coin"},
			expect: "You take the coin.",
		},
		{
			name:   "take object still inside closed container",
			script: []string{"take coin"},
			expect: "You don't see any coin here.",
		},
		{
			name:   "take object that is not takeable",
			script: []string{"take rock"},
			expect: "You can't take the rock.",
		},
		{
			name:   "drop carried object",
			script: []string{"take lamp", "drop lamp"},
			expect: "You drop the lamp.",
		},
		{
			name:   "drop object not carried",
			script: []string{"drop lamp"},
			expect: "You can't drop the lamp; you don't have it.",
		},
		{
			name:   "empty inventory",
			script: []string{"inventory"},
			expect: "You are carrying nothing.",
		},
		{
			name:   "inventory by alias",
			script: []string{"open box", "take coin", "take lamp", "i"},
			expect: "You are carrying a coin and a lamp.",
		},
		{
			name:   "unknown command",
			script: []string{"dance"},
			expect: "I don't understand the command: dance",
		},
		{
			name:   "debug is unknown when not enabled",
			script: []string{"debug room"},
			expect: "I don't understand the command: debug",
		},
		{
			name:   "case does not matter",
			script: []string{"TAKE Lamp"},
			expect: "You take the lamp.",
		},
		{
			name:   "quit",
			script: []string{"quit"},
			expect: "Thanks for playing! Goodbye.",
		},
		{
			name:   "commands after quit do nothing",
			script: []string{"quit", "take lamp"},
			expect: "The game is over.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gs := newTestState(t, newTestWorld(), Options{})

			var actual string
			for _, line := range tc.script {
				actual = gs.HandleCommand(line)
			}

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_State_move(t *testing.T) {
	assert := assert.New(t)
	tw := newTestWorld()
	gs := newTestState(t, tw, Options{})

	gs.HandleCommand("move north")
	assert.Same(tw.house, gs.Player.Location)

	gs.HandleCommand("move north")
	assert.Same(tw.house, gs.Player.Location, "failed move must not change location")

	gs.HandleCommand("move south")
	assert.Same(tw.field, gs.Player.Location)
}

func Test_State_moveWithMixedCaseExit(t *testing.T) {
	assert := assert.New(t)
	start := NewRoom("A", "room a", "You are in room A.")
	dest := NewRoom("B", "room b", "You are in room B.")
	start.AddExit("North", dest)
	dest.AddExit("South", start)
	start.AddObject(&Object{Label: "KEY", Name: "Brass Key", Takeable: true})
	w, err := NewWorld(start)
	if !assert.NoError(err) {
		return
	}
	gs := newTestState(t, testWorld{world: w}, Options{})

	assert.Equal("You take the Brass Key.", gs.HandleCommand("take Brass Key"))
	assert.Equal("You move north.", gs.HandleCommand("move North"))
	assert.Same(dest, gs.Player.Location)

	assert.Equal("You move south.", gs.HandleCommand("move south"))
	assert.Same(start, gs.Player.Location)
}

func Test_State_openTransfersContentsOnce(t *testing.T) {
	assert := assert.New(t)
	tw := newTestWorld()
	gs := newTestState(t, tw, Options{})

	gs.HandleCommand("open box")

	assert.Equal(StateOpen, tw.box.State)
	assert.Empty(tw.box.Contents)
	assert.Equal([]*Object{tw.box, tw.rock, tw.lamp, tw.coin}, tw.field.Objects)
	assert.Equal(InRoom("FIELD"), tw.coin.Location())

	gs.HandleCommand("open box")

	assert.Equal([]*Object{tw.box, tw.rock, tw.lamp, tw.coin}, tw.field.Objects, "second open must not transfer again")
}

func Test_State_takeAndDropRoundTrip(t *testing.T) {
	assert := assert.New(t)
	tw := newTestWorld()
	gs := newTestState(t, tw, Options{})

	gs.HandleCommand("take lamp")

	assert.True(tw.lamp.IsTaken())
	assert.Equal([]*Object{tw.lamp}, gs.Player.Inventory)
	assert.NotContains(tw.field.Objects, tw.lamp)

	gs.HandleCommand("move north")
	gs.HandleCommand("drop lamp")

	assert.False(tw.lamp.IsTaken())
	assert.Empty(gs.Player.Inventory)
	assert.Equal([]*Object{tw.lamp}, tw.house.Objects)
	assert.Equal(InRoom("HOUSE"), tw.lamp.Location())
}

// every object must be in exactly one place no matter what is done to it.
func Test_State_objectsAreAlwaysInExactlyOnePlace(t *testing.T) {
	tw := newTestWorld()
	gs := newTestState(t, tw, Options{})

	script := []string{
		"take lamp", "take lamp", "drop lamp", "drop lamp", "open box",
		"take coin", "move north", "drop coin", "take coin", "drop lamp",
		"take lamp", "move south", "drop lamp", "take rock", "open box",
		"move north", "drop coin", "move south", "take coin", "take lamp",
	}

	for i, line := range script {
		gs.HandleCommand(line)

		for _, obj := range []*Object{tw.box, tw.coin, tw.rock, tw.lamp} {
			places := 0
			for _, r := range tw.world.Rooms {
				for _, o := range r.Objects {
					if o == obj {
						places++
						assert.Equal(t, InRoom(r.Label), obj.Location(), "step %d (%q): %s", i, line, obj.Label)
					}
				}
			}
			for _, o := range gs.Player.Inventory {
				if o == obj {
					places++
					assert.True(t, obj.IsTaken(), "step %d (%q): %s", i, line, obj.Label)
				}
			}
			for _, o := range tw.box.Contents {
				if o == obj {
					places++
				}
			}

			assert.Equal(t, 1, places, "step %d (%q): %s is in %d places", i, line, obj.Label, places)
		}
	}
}

func Test_State_examinePrefersRoom(t *testing.T) {
	assert := assert.New(t)
	tw := newTestWorld()
	gs := newTestState(t, tw, Options{})

	gs.HandleCommand("take lamp")
	otherLamp := &Object{Label: "LAMP_2", Name: "lamp", Description: "a cracked lamp.", Examinable: true}
	tw.field.AddObject(otherLamp)

	actual := gs.HandleCommand("examine lamp")

	assert.Equal("The lamp is a cracked lamp.", actual)
}

func Test_State_look(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t, newTestWorld(), Options{})

	expect := "Open Field\n\n" +
		"You are in an open field.\n\n" +
		"You see a box, a rock, and a lamp.\n\n" +
		"Exits: north."

	assert.Equal(expect, gs.HandleCommand("look"))
	assert.Equal(expect, gs.HandleCommand("L"))
	assert.Equal("The lamp is an old brass lamp.", gs.HandleCommand("look lamp"))
}

func Test_State_help(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t, newTestWorld(), Options{})

	actual := gs.HandleCommand("help")

	assert.Contains(actual, "Here are the commands you can use:")
	assert.Contains(actual, "INVENTORY/I")
	assert.Equal(actual, gs.HandleCommand("?"))
}

func Test_State_debug(t *testing.T) {
	assert := assert.New(t)
	tw := newTestWorld()
	gs := newTestState(t, tw, Options{Debug: true})

	actual := gs.HandleCommand("debug room")
	assert.Contains(actual, "Room<FIELD")

	actual = gs.HandleCommand("debug room house")
	assert.Equal(`Poof! You are now in "HOUSE"`, actual)
	assert.Same(tw.house, gs.Player.Location)

	actual = gs.HandleCommand("debug room attic")
	assert.Equal(`There doesn't seem to be any rooms with label "ATTIC" in this world`, actual)

	actual = gs.HandleCommand("debug objects")
	assert.Contains(actual, `Object("COIN", "coin", [EXAMINABLE TAKEABLE] @ InsideContainer(BOX)`)

	actual = gs.HandleCommand("debug weather")
	assert.Equal("I don't know how to debug weather.", actual)
}

func Test_State_Advance_quitTerminates(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t, newTestWorld(), Options{})

	gs.Advance(command.Command{Action: "quit", Verb: command.VerbQuit})

	assert.False(gs.Running())
	assert.Equal(StatusTerminated, gs.Status())
}

func Test_State_longNarrationIsWrapped(t *testing.T) {
	assert := assert.New(t)
	tw := newTestWorld()
	tw.lamp.Description = "an old brass lamp with a long story behind it that nobody remembers anymore."
	gs := newTestState(t, tw, Options{Width: 30})

	actual := gs.HandleCommand("examine lamp")

	assert.Contains(actual, "\n")
	for _, line := range splitLines(actual) {
		assert.LessOrEqual(len(line), 30)
	}
}

func Test_New_width(t *testing.T) {
	testCases := []struct {
		name   string
		width  int
		expect int
	}{
		{name: "unset", width: 0, expect: DefaultWidth},
		{name: "negative", width: -4, expect: DefaultWidth},
		{name: "below minimum", width: 5, expect: MinWidth},
		{name: "minimum", width: MinWidth, expect: MinWidth},
		{name: "wide", width: 120, expect: 120},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gs := newTestState(t, newTestWorld(), Options{Width: tc.width})

			assert.Equal(t, tc.expect, gs.width)
		})
	}
}

func Test_State_narrowWidthKeepsWordsWhole(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t, newTestWorld(), Options{Width: 5})

	actual := gs.HandleCommand("open box")

	assert.Equal("You open the box. Inside you find a coin.", strings.Join(strings.Fields(actual), " "))
	for _, line := range splitLines(actual) {
		assert.LessOrEqual(len(line), MinWidth)
		assert.NotContains(line, "-")
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range s {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
