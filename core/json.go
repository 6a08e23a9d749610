package core

import (
	"encoding/json"

	"github.com/katalvlaran/lvlmaze/matrix"
)

// roomJSON mirrors the serialized room layout.
type roomJSON[T any] struct {
	Walls   Mask `json:"walls"`
	Visited bool `json:"visited"`
	Data    T    `json:"data"`
}

// MarshalJSON encodes the room as {"walls","visited","data"}.
func (r Room[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(roomJSON[T]{Walls: r.walls, Visited: r.Visited, Data: r.Data})
}

// UnmarshalJSON decodes a room encoded by MarshalJSON.
func (r *Room[T]) UnmarshalJSON(raw []byte) error {
	var decoded roomJSON[T]
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}

	r.walls = decoded.Walls
	r.Visited = decoded.Visited
	r.Data = decoded.Data

	return nil
}

// mazeJSON mirrors the serialized maze layout.
type mazeJSON[T any] struct {
	Shape Shape                   `json:"shape"`
	Rooms *matrix.Matrix[Room[T]] `json:"rooms"`
}

// MarshalJSON encodes the maze as {"shape","rooms"}.
func (m *Maze[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(mazeJSON[T]{Shape: m.shape, Rooms: m.rooms})
}

// UnmarshalJSON decodes a maze encoded by MarshalJSON. It rejects payloads
// whose shape is not a supported room shape.
func (m *Maze[T]) UnmarshalJSON(raw []byte) error {
	var decoded mazeJSON[T]
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	if _, err := FromWallCount(int(decoded.Shape)); err != nil {
		return err
	}
	if decoded.Rooms == nil {
		decoded.Rooms = matrix.New[Room[T]](0, 0)
	}

	m.shape = decoded.Shape
	m.rooms = decoded.Rooms

	return nil
}
