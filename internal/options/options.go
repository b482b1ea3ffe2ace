// Package options applies functional options to configuration structs.
package options

// OptionConstructor returns the default configuration.
type OptionConstructor[T any] func() T

// OptionCallback changes one setting of a configuration.
type OptionCallback[T any] func(*T)

// ApplyOptions builds a configuration from its defaults and the callbacks,
// applied in order. A nil constructor starts from the zero value.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}
