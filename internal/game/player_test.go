package game

import (
	"testing"

	"github.com/dekarrin/bork/internal/bkerrors"
	"github.com/stretchr/testify/assert"
)

func Test_Player_Move(t *testing.T) {
	assert := assert.New(t)
	hall := NewRoom("HALL", "hall", "")
	kitchen := NewRoom("KITCHEN", "kitchen", "")
	hall.AddExit("north", kitchen)
	p := NewPlayer("Ann", hall)

	_, err := p.Move("south")
	assert.ErrorIs(err, bkerrors.ErrNoExit)
	assert.Same(hall, p.Location)

	out, err := p.Move("north")
	assert.NoError(err)
	assert.Equal("You move north.", out)
	assert.Same(kitchen, p.Location)
}

func Test_Player_TakeObject(t *testing.T) {
	testCases := []struct {
		name       string
		obj        *Object
		taken      bool
		expect     string
		expectGame string
	}{
		{
			name:   "takeable",
			obj:    &Object{Name: "coin", Takeable: true},
			expect: "You take the coin.",
		},
		{
			name:       "not takeable",
			obj:        &Object{Name: "rock"},
			expectGame: "You can't take the rock.",
		},
		{
			name:       "already carried",
			obj:        &Object{Name: "coin", Takeable: true},
			taken:      true,
			expectGame: "You already have the coin.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			p := NewPlayer("Ann", NewRoom("HALL", "hall", ""))
			if tc.taken {
				_, err := p.TakeObject(tc.obj)
				assert.NoError(err)
			}

			actual, err := p.TakeObject(tc.obj)

			if tc.expectGame != "" {
				assert.ErrorIs(err, bkerrors.ErrInvalidTransition)
				assert.Equal(tc.expectGame, bkerrors.GameMessage(err))
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect, actual)
			assert.True(tc.obj.IsTaken())
			assert.Equal([]*Object{tc.obj}, p.Inventory)
		})
	}
}

func Test_Player_DropObject(t *testing.T) {
	assert := assert.New(t)
	p := NewPlayer("Ann", NewRoom("HALL", "hall", ""))
	coin := &Object{Name: "coin", Takeable: true}
	key := &Object{Name: "key", Takeable: true}
	otherCoin := &Object{Name: "coin", Takeable: true}
	_, _ = p.TakeObject(coin)
	_, _ = p.TakeObject(key)

	_, err := p.DropObject(otherCoin)
	assert.ErrorIs(err, bkerrors.ErrInvalidTransition)
	assert.Len(p.Inventory, 2)

	out, err := p.DropObject(coin)
	assert.NoError(err)
	assert.Equal("You drop the coin.", out)
	assert.Equal([]*Object{key}, p.Inventory)
	assert.False(coin.IsTaken())
}

func Test_Player_DescribeInventory(t *testing.T) {
	testCases := []struct {
		name   string
		items  []string
		expect string
	}{
		{name: "nothing", expect: "You are carrying nothing."},
		{name: "one", items: []string{"coin"}, expect: "You are carrying a coin."},
		{name: "two", items: []string{"coin", "egg"}, expect: "You are carrying a coin and an egg."},
		{name: "three", items: []string{"coin", "egg", "key"}, expect: "You are carrying a coin, an egg, and a key."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			p := NewPlayer("Ann", NewRoom("HALL", "hall", ""))
			for _, name := range tc.items {
				_, err := p.TakeObject(&Object{Name: name, Takeable: true})
				assert.NoError(err)
			}

			assert.Equal(tc.expect, p.DescribeInventory())
		})
	}
}
