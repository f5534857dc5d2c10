package kml

import "fmt"

// ErrDataNotFound indicates a Placemark has no Data or SimpleData
// element with the requested name attribute.
type ErrDataNotFound struct {
	Name string
}

func (e *ErrDataNotFound) Error() string {
	return fmt.Sprintf("no Data or SimpleData element named %q", e.Name)
}

// ErrInvalidCoordinate indicates a coordinates tuple that does not
// parse as comma-separated floats.
type ErrInvalidCoordinate struct {
	Token string
	Err   error
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate tuple %q: %v", e.Token, e.Err)
}

func (e *ErrInvalidCoordinate) Unwrap() error {
	return e.Err
}
