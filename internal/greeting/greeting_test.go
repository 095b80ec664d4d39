package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trentd187/hello-visits/internal/models"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name   string
		status models.VisitorStatus
		want   string
	}{
		{"Developer", models.VisitorStatusFirstTime, "Hello, Developer!\n"},
		{"Developer", models.VisitorStatusKnown, "Hi again, Developer!\n"},
		{"", models.VisitorStatusFirstTime, "Hello, unknown user!\n"},
		{"", models.VisitorStatusKnown, "Hi again, unknown user!\n"},
		{"user-from-initial_data.sql", models.VisitorStatusKnown, "Hi again, user-from-initial_data.sql!\n"},
		{"Zoë", models.VisitorStatus(""), "Hello, Zoë!\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Greet(tt.name, tt.status), "Greet(%q, %q)", tt.name, tt.status)
	}
}

func TestGreetIsPure(t *testing.T) {
	first := Greet("userver", models.VisitorStatusKnown)
	second := Greet("userver", models.VisitorStatusKnown)
	assert.Equal(t, first, second)
}
