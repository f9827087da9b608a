package state

import "errors"

var (
	// ErrEmptyResult disables generation while the result text is blank.
	ErrEmptyResult = errors.New("result text is empty")
	// ErrNoSelection disables generation while no contact is selected.
	ErrNoSelection = errors.New("no contact selected")
)
