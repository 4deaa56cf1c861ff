package main

import (
	"testing"

	"github.com/at-ishikawa/flypysync/internal/userdict"
	"github.com/stretchr/testify/assert"
)

func TestStrategy_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Strategy
		wantErr bool
	}{
		{
			name:  "regex",
			value: "regex",
			want:  Strategy(userdict.StrategyRegex),
		},
		{
			name:  "html",
			value: "html",
			want:  Strategy(userdict.StrategyHTML),
		},
		{
			name:    "invalid strategy value",
			value:   "xpath",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var strategy Strategy
			err := strategy.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid strategy")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, strategy)
		})
	}
}

func TestStrategy_String(t *testing.T) {
	strategy := Strategy(userdict.StrategyHTML)
	assert.Equal(t, "html", strategy.String())
}

func TestStrategy_Type(t *testing.T) {
	strategy := Strategy(userdict.StrategyRegex)
	assert.Equal(t, "strategy", strategy.Type())
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand(nil, nil, &fakeOpener{})

	assert.Equal(t, "flypysync [flags] <url>", cmd.Use)
	for _, name := range []string{"config-dir", "strategy", "no-open", "no-color"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.Equal(t, "c", cmd.Flags().Lookup("config-dir").Shorthand)
}
