package server

import "errors"

var errNoAddress = errors.New("no listen address is configured")
