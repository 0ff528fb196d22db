package weightstream

// Config holds the stream configuration.
type Config struct {
	// ProgressCallback is called after each tensor read (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring the Stream.
type Option func(*Config)

// WithProgressCallback sets a callback to track tensor reads.
//
// Example:
//
//	stream := weightstream.New(src,
//	    weightstream.WithProgressCallback(func(p weightstream.Progress) {
//	        fmt.Printf("%d tensors, %d bytes\n", p.TensorIndex, p.BytesRead)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for stream operations.
//
// Example:
//
//	stream := weightstream.New(src, weightstream.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
