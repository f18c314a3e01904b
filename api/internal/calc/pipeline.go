package calc

import (
	"context"
	"fmt"

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/util"
)

// Pipeline runs one request end to end: decode the image payload, compose
// the instruction text, call the engine, normalize the reply. Stateless;
// safe for concurrent use.
type Pipeline struct {
	eng Engine
}

func NewPipeline(eng Engine) *Pipeline {
	return &Pipeline{eng: eng}
}

func (p *Pipeline) Engine() Engine { return p.eng }

// Decode converts the data-URL payload into a raster image. Fails with
// util.ErrBadPayload before any external call is made.
func (p *Pipeline) Decode(payload string) (Image, error) {
	data, hint, err := util.DecodeImagePayload(payload)
	if err != nil {
		return Image{}, err
	}
	return Image{Data: data, MIME: util.PickMIME(hint, data)}, nil
}

// Process executes decode → compose → infer → normalize. Decode and
// inference failures abort the request; an unparseable reply resolves to an
// empty ResultList.
func (p *Pipeline) Process(ctx context.Context, payload string, vars VariableMap) (ResultList, error) {
	img, err := p.Decode(payload)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, img, vars)
}

// Run is Process for an already decoded image.
func (p *Pipeline) Run(ctx context.Context, img Image, vars VariableMap) (ResultList, error) {
	instructions := ComposeInstructions(vars)

	raw, err := p.eng.Solve(ctx, instructions, img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInference, p.eng.Name(), err)
	}

	return Normalize(raw), nil
}
