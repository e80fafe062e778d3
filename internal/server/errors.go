package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no transport has a
// listen address.
var errNoServersAreCreated = errors.New("no servers are created: empty HTTP address")
