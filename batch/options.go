package batch

import "github.com/db47h/tilebatch/gpu"

type config struct {
	capacity int
	usage    gpu.Usage
}

// Option is implemented by option functions passed as arguments to New.
//
type Option interface {
	set(*config)
}

type optionFunc func(*config)

func (f optionFunc) set(cfg *config) {
	f(cfg)
}

// Capacity pre-allocates room for n triangles.
//
func Capacity(n int) Option {
	return optionFunc(func(cfg *config) {
		if n > 0 {
			cfg.capacity = n
		}
	})
}

// Usage sets the usage hint for vertex uploads. The default is
// gpu.StreamDraw since the whole batch is replaced every frame.
//
func Usage(u gpu.Usage) Option {
	return optionFunc(func(cfg *config) {
		cfg.usage = u
	})
}
