package docforge

import (
	"errors"

	"github.com/hiroo3/docforge-go/pkg/docforge/builder"
	"github.com/hiroo3/docforge-go/pkg/docforge/encode"
	"github.com/hiroo3/docforge-go/pkg/docforge/render"
)

// ErrUnsupportedFormat indicates an unrecognized format token or
// filename extension.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrInvalidContentShape indicates the payload does not parse as valid
// structured data or has the wrong shape for the target format.
var ErrInvalidContentShape = encode.ErrInvalidContentShape

// ErrInvalidChartShape indicates inconsistent chart series shapes.
var ErrInvalidChartShape = render.ErrInvalidChartShape

// RenderError reports an unrecoverable encoding fault in a builder.
type RenderError = builder.RenderError
