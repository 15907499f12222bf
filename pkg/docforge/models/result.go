package models

// Result is the outcome of a single generation request: either a success
// message naming the output path, or a human-readable error description.
type Result struct {
	// Output is the success message (empty on failure).
	Output string `json:"output,omitempty"`
	// Path is the written file path (empty on failure).
	Path string `json:"path,omitempty"`
	// Error is the failure description (empty on success).
	Error string `json:"error,omitempty"`
}

// Success builds a success Result.
func Success(message, path string) Result {
	return Result{Output: message, Path: path}
}

// Failure builds a failure Result.
func Failure(message string) Result {
	return Result{Error: message}
}

// Failed reports whether the result carries an error.
func (r Result) Failed() bool {
	return r.Error != ""
}
