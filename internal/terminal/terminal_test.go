package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n := NewNotifier(&buf)

	n.Success("Login successful!")
	n.Info("You have been logged out")
	n.Error("Login failed")

	assert.Equal(t, "✔ Login successful!\nℹ You have been logged out\n✖ Login failed\n", buf.String())
}

func TestNavigator(t *testing.T) {
	tests := map[string]struct {
		path     string
		wantHint string
	}{
		"login": {
			path:     "/login",
			wantHint: "→ run `repairctl login` to continue\n",
		},
		"admin dashboard": {
			path:     "/admin-dashboard",
			wantHint: "→ run `repairctl admin dashboard` to continue\n",
		},
		"route without a command": {
			path: "/settings",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			n := NewNavigator(&buf)
			assert.Empty(t, n.Last())

			n.Navigate(tt.path)

			assert.Equal(t, tt.path, n.Last())
			assert.Equal(t, tt.wantHint, buf.String())
		})
	}
}
