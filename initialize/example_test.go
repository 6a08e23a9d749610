package initialize_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/core"
	"github.com/katalvlaran/lvlmaze/initialize"
	"github.com/katalvlaran/lvlmaze/matrix"
)

// ExampleInitialize opens every inner wall of a tiny maze with the Clear
// method.
func ExampleInitialize() {
	maze := core.New[struct{}](core.Quad, 2, 1)
	initialize.Initialize(maze, initialize.Clear, initialize.NewSystem())

	fmt.Println(maze.Connected(matrix.Pos{Col: 0, Row: 0}, matrix.Pos{Col: 1, Row: 0}))
	// Output:
	// true
}

// ExampleParseMethod decodes a spelunker program.
func ExampleParseMethod() {
	method, err := initialize.ParseMethod("spelunker(||>)")

	fmt.Println(method, err)
	// Output:
	// spelunker(||>) <nil>
}
