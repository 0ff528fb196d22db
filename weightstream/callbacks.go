package weightstream

// Progress describes one completed tensor read. Passed to ProgressCallback
// after each ReadTensor.
type Progress struct {
	// TensorIndex counts tensors since the last Reset (1-based)
	TensorIndex int

	// Elements is the element count handed back to the caller
	Elements int

	// Blocks is the block count of the tensor's record
	Blocks int

	// Offset is the cursor position after the read
	Offset int64

	// BytesRead is the cumulative header and block traffic since Reset
	BytesRead int
}

// ProgressCallback is called after each tensor read. Implementations should
// return quickly; the stream calls it synchronously.
//
// Example:
//
//	stream := weightstream.New(src,
//	    weightstream.WithProgressCallback(func(p weightstream.Progress) {
//	        fmt.Printf("tensor %d: %d elements\n", p.TensorIndex, p.Elements)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// stream. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	stream := weightstream.New(src, weightstream.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
