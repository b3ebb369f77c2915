package events

import "errors"

// ErrBusClosed is returned when publishing to or listening on a closed bus
var ErrBusClosed = errors.New("event bus is closed")
