package game

import "fmt"

// World is the graph of rooms the game takes place in. It is built once and
// handed to a State; the game never creates or destroys rooms.
type World struct {
	// Start is the room the player begins in. Every other room in the world
	// can be reached from it by following exits.
	Start *Room

	// Rooms is every room reachable from Start, indexed by label.
	Rooms map[string]*Room

	// Intro is shown once when a game begins, before the starting room is
	// described. It may be empty.
	Intro string
}

// NewWorld creates a World that starts in the given room. All rooms reachable
// from start are indexed in Rooms. It returns an error if start is nil or if
// two different reachable rooms share a label.
func NewWorld(start *Room) (*World, error) {
	if start == nil {
		return nil, fmt.Errorf("starting room cannot be nil")
	}

	w := &World{
		Start: start,
		Rooms: make(map[string]*Room),
	}

	queue := []*Room{start}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		if existing, ok := w.Rooms[r.Label]; ok {
			if existing != r {
				return nil, fmt.Errorf("two different rooms have the label %q", r.Label)
			}
			continue
		}
		w.Rooms[r.Label] = r

		for _, dir := range r.exitOrder {
			if dest := r.exits[dir]; dest != nil {
				queue = append(queue, dest)
			}
		}
	}

	return w, nil
}

// Room returns the room with the given label. If there is no such room, nil is
// returned.
func (w *World) Room(label string) *Room {
	return w.Rooms[label]
}
