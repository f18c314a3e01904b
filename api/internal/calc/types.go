package calc

import (
	"context"
	"errors"
)

// ErrInference marks transport, auth, quota or endpoint-side failures from
// the vision model. Handlers map it to 502.
var ErrInference = errors.New("inference failed")

// VariableMap carries previously assigned variable values, supplied fresh by
// the caller on every request. The pipeline never mutates or stores it.
type VariableMap map[string]any

// Record is one recognized expression from the drawing. It stays an open map
// because the model is free to omit or add keys; the normalizer only
// guarantees that "assign" is present and boolean.
type Record map[string]any

// ResultList preserves the model's ordering of recognized expressions.
type ResultList []Record

// Image is a decoded raster ready for submission to the vision model.
type Image struct {
	Data []byte
	MIME string
}

// Engine is one vision-capable inference backend.
type Engine interface {
	Name() string
	GetModel() string
	// Solve submits the instruction text together with the image and returns
	// the model's raw reply verbatim.
	Solve(ctx context.Context, instructions string, img Image) (string, error)
}
