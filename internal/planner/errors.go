package planner

import "fmt"

// InputID names an input in error messages.
type InputID int

const (
	InputVideo1 InputID = iota
	InputVideo2
)

func (id InputID) String() string {
	if id == InputVideo2 {
		return "video_2"
	}
	return "video_1"
}

// GeometryError reports invalid source dimensions from the probe. Fatal.
type GeometryError struct {
	Input  InputID
	Width  int
	Height int
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: invalid source dimensions %dx%d (width and height must be positive)",
		e.Input, e.Width, e.Height)
}

// TimelineError reports a zero or unmeasurable input duration. Fatal.
type TimelineError struct {
	Input    InputID
	Duration float64
}

func (e *TimelineError) Error() string {
	return fmt.Sprintf("%s: invalid duration %.3fs (must be positive)",
		e.Input, e.Duration)
}
