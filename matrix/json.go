package matrix

import (
	"encoding/json"
	"fmt"
)

// matrixJSON mirrors the serialized layout: dimensions plus the flat
// row-major cell slice.
type matrixJSON[T any] struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Data   []T `json:"data"`
}

// MarshalJSON encodes the matrix as {"width","height","data"} with the
// cells in row-major order.
func (m *Matrix[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON[T]{Width: m.width, Height: m.height, Data: m.data})
}

// UnmarshalJSON decodes a matrix encoded by MarshalJSON. It returns
// ErrSizeMismatch when the cell count does not equal width*height or a
// dimension is negative.
func (m *Matrix[T]) UnmarshalJSON(raw []byte) error {
	var decoded matrixJSON[T]
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	if decoded.Width < 0 || decoded.Height < 0 || len(decoded.Data) != decoded.Width*decoded.Height {
		return fmt.Errorf("%w: %d cells for %dx%d",
			ErrSizeMismatch, len(decoded.Data), decoded.Width, decoded.Height)
	}

	m.width = decoded.Width
	m.height = decoded.Height
	m.data = decoded.Data

	return nil
}
