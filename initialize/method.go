package initialize

import (
	"fmt"
	"strings"
)

// methodKind discriminates the generation algorithms.
type methodKind int

const (
	kindBranching methodKind = iota
	kindWinding
	kindClear
	kindBraid
	kindDividing
	kindSpelunker
)

// Method selects a generation algorithm. Methods are comparable values;
// the spelunker method additionally carries its instruction program.
//
// The zero value is Branching, the default method.
type Method struct {
	kind         methodKind
	instructions Instructions
}

// The parameterless generation methods.
var (
	// Branching generates with the randomized Prim algorithm, yielding
	// mazes with a branching characteristic and no loops.
	Branching = Method{kind: kindBranching}

	// Winding generates with depth-first backtracking, yielding long
	// winding corridors and no loops.
	Winding = Method{kind: kindWinding}

	// Clear opens every inner wall, yielding an open hall rather than a
	// maze.
	Clear = Method{kind: kindClear}

	// Braid starts from an open hall and re-adds walls while no dead end
	// appears, yielding a maze where every region contains loops.
	Braid = Method{kind: kindBraid}

	// Dividing recursively cuts the area with straight walls, yielding a
	// maze of nested rectangular chambers.
	Dividing = Method{kind: kindDividing}
)

// Spelunker returns the method carving the maze by executing instructions
// from successive random origins.
func Spelunker(instructions Instructions) Method {
	return Method{kind: kindSpelunker, instructions: instructions}
}

// ParseMethod converts a lower-case method name to a Method. The spelunker
// method is written "spelunker(<instructions>)".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "branching":
		return Branching, nil
	case "winding":
		return Winding, nil
	case "clear":
		return Clear, nil
	case "braid":
		return Braid, nil
	case "dividing":
		return Dividing, nil
	}
	if inner, ok := strings.CutPrefix(s, "spelunker("); ok {
		if inner, ok = strings.CutSuffix(inner, ")"); ok {
			instructions, err := ParseInstructions(inner)
			if err != nil {
				return Method{}, err
			}

			return Spelunker(instructions), nil
		}
	}

	return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// String returns the method name, the inverse of ParseMethod.
func (m Method) String() string {
	switch m.kind {
	case kindBranching:
		return "branching"
	case kindWinding:
		return "winding"
	case kindClear:
		return "clear"
	case kindBraid:
		return "braid"
	case kindDividing:
		return "dividing"
	case kindSpelunker:
		return fmt.Sprintf("spelunker(%s)", string(m.instructions))
	default:
		return fmt.Sprintf("method(%d)", int(m.kind))
	}
}

// MarshalText encodes the method as its name.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a method from its name.
func (m *Method) UnmarshalText(text []byte) error {
	method, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = method

	return nil
}

// Instruction is a single spelunker step.
type Instruction byte

// The spelunker instructions.
const (
	// Forward opens the current wall and moves through it.
	Forward Instruction = '|'

	// TurnLeft turns to the previous wall of the room.
	TurnLeft Instruction = '<'

	// TurnRight turns to the next wall of the room.
	TurnRight Instruction = '>'

	// ForkLeft remembers the previous wall as an origin for a later run.
	ForkLeft Instruction = '}'

	// ForkRight remembers the next wall as an origin for a later run.
	ForkRight Instruction = '{'
)

// Instructions is a validated spelunker program: a sequence of instruction
// characters executed cyclically.
type Instructions string

// ParseInstructions validates a spelunker program.
func ParseInstructions(s string) (Instructions, error) {
	for i := 0; i < len(s); i++ {
		switch Instruction(s[i]) {
		case Forward, TurnLeft, TurnRight, ForkLeft, ForkRight:
		default:
			return "", fmt.Errorf("%w: %q", ErrUnknownInstruction, s[i])
		}
	}

	return Instructions(s), nil
}
