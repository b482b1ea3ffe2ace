package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-graphcodec/internal/options"
)

type codecConfig struct {
	indent  string
	lenient bool
	depth   int
}

func defaults() codecConfig {
	return codecConfig{indent: "", lenient: false, depth: 1}
}

func TestApplyOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor options.OptionConstructor[codecConfig]
		callbacks   []options.OptionCallback[codecConfig]
		expected    codecConfig
	}{
		{
			name:        "nil constructor and no callbacks",
			constructor: nil,
			callbacks:   nil,
			expected:    codecConfig{indent: "", lenient: false, depth: 0},
		},
		{
			name:        "defaults only",
			constructor: defaults,
			callbacks:   []options.OptionCallback[codecConfig]{},
			expected:    codecConfig{indent: "", lenient: false, depth: 1},
		},
		{
			name:        "callbacks applied in order",
			constructor: defaults,
			callbacks: []options.OptionCallback[codecConfig]{
				func(c *codecConfig) { c.depth += 4 },
				func(c *codecConfig) { c.depth *= 2 },
				func(c *codecConfig) { c.indent = "  " },
			},
			expected: codecConfig{indent: "  ", lenient: false, depth: 10},
		},
		{
			name:        "nil callback is skipped",
			constructor: nil,
			callbacks: []options.OptionCallback[codecConfig]{
				nil,
				func(c *codecConfig) { c.lenient = true },
			},
			expected: codecConfig{indent: "", lenient: true, depth: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, options.ApplyOptions(tt.constructor, tt.callbacks))
		})
	}
}

func TestApplyOptions_Pointer(t *testing.T) {
	t.Parallel()

	type data struct{ x int }

	callbacks := []options.OptionCallback[*data]{
		func(d **data) { *d = &data{x: 42} },
	}

	assert.Equal(t, &data{x: 42}, options.ApplyOptions(nil, callbacks))
}
