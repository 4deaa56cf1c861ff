package opener

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpener_Open(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		runErr   error
		wantName string
		wantErr  bool
	}{
		{
			name:     "linux",
			goos:     "linux",
			wantName: "xdg-open",
		},
		{
			name:     "macOS",
			goos:     "darwin",
			wantName: "open",
		},
		{
			name:     "windows",
			goos:     "windows",
			wantName: "explorer",
		},
		{
			name:     "command fails",
			goos:     "linux",
			runErr:   errors.New("executable file not found"),
			wantName: "xdg-open",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotName string
			var gotArgs []string
			o := NewWithRunner(tt.goos, func(name string, args ...string) error {
				gotName = name
				gotArgs = args
				return tt.runErr
			})

			err := o.Open("/home/user/.config/Rime")
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.runErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantName, gotName)
			assert.Equal(t, []string{"/home/user/.config/Rime"}, gotArgs)
		})
	}
}

func TestNew(t *testing.T) {
	o := New()
	assert.NotNil(t, o.run)
	assert.NotEmpty(t, o.goos)
}
