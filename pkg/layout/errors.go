package layout

import "errors"

// ErrFieldNotFound indicates the referenced field id is not staged in
// this session.
var ErrFieldNotFound = errors.New("field not staged in session")
