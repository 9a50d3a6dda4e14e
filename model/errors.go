package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidStatus is returned when a cell is built with a status other than 0 or 1
	ErrInvalidStatus = errors.New("Invalid status, please pass in 0 or 1")
	// ErrInvalidLocation matches every *LocationError
	ErrInvalidLocation = errors.New("invalid location")
	// ErrInvalidDimensions is returned for a grid with a non-positive width or height
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// LocationError reports a location that falls outside the grid
type LocationError struct {
	Location Location
	Width    int
	Height   int
}

func (e *LocationError) Error() string {
	return fmt.Sprintf(
		"Invalid location, note that the board is of size %d * %d, "+
			"please pass in a valid location of the form (x,y) where 0 <= x < %d and 0 <= y < %d",
		e.Width, e.Height, e.Width, e.Height,
	)
}

// Is lets errors.Is(err, ErrInvalidLocation) match any LocationError
func (e *LocationError) Is(target error) bool {
	return target == ErrInvalidLocation
}
