package models

import "errors"

// ErrInvalidTeamKey is returned by [TeamCredential.Reset] when the settings
// payload contains a field name outside the fixed allow-list.
var ErrInvalidTeamKey = errors.New("invalid team settings key")
