package builder

import (
	"errors"
	"testing"
)

func TestRenderError(t *testing.T) {
	cause := errors.New("boom")
	err := NewRenderError("pptx", "table", cause)

	if got := err.Error(); got != "render pptx (table): boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("RenderError must unwrap to its cause")
	}
}
