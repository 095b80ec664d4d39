// Package greeting turns a visitor name and status into the text the hello endpoints send back.
package greeting

import (
	"fmt"

	"github.com/trentd187/hello-visits/internal/models"
)

// UnknownName is shown in place of an empty ?name= query param.
const UnknownName = "unknown user"

// Greet returns the greeting for name. Returning visitors get "Hi again",
// everyone else (including any unrecognised status) gets "Hello".
// It has no side effects, so the handlers can call it after the database work is done.
func Greet(name string, status models.VisitorStatus) string {
	if name == "" {
		name = UnknownName
	}

	if status == models.VisitorStatusKnown {
		return fmt.Sprintf("Hi again, %s!\n", name)
	}
	return fmt.Sprintf("Hello, %s!\n", name)
}
