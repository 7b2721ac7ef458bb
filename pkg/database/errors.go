package database

import "errors"

// ErrNotReady indicates the database system has not completed startup.
var ErrNotReady = errors.New("database not ready")
