// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"fmt"

	"github.com/pdiddy/deeplens/pkg/types"
)

// CategoryError is a workflow failure carrying the outcome category and
// a remediation hint phrased for the user.
type CategoryError struct {
	Category types.Category
	Hint     string
	Err      error
}

func (e *CategoryError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Category, e.Err)
	case e.Hint != "":
		return fmt.Sprintf("%s: %s", e.Category, e.Hint)
	default:
		return string(e.Category)
	}
}

func (e *CategoryError) Unwrap() error { return e.Err }
