package renderpipeline

// ZOrder names the paint layers a RenderPipeline composites, back to front.
// A backend flattens the pipeline by iterating layers in this exact order.
type ZOrder int

const (
	ZOrderDeferred ZOrder = iota // painted first: backgrounds, full-screen clears
	ZOrderNormal                 // the editor's own content
	ZOrderGlass                  // overlays drawn above content: dialogs, status lines
	ZOrderCaret                  // always painted last so the caret is never occluded
)

// zOrderPaintSequence is the fixed compositing order. Not user-configurable:
// the caret must always be last, deferred ops always first.
var zOrderPaintSequence = []ZOrder{ZOrderDeferred, ZOrderNormal, ZOrderGlass, ZOrderCaret}

// RenderPipeline is a z-layered collection of RenderOps. Components append
// ops to whichever layer matches their visual role; the pipeline itself is
// agnostic to what any individual op does.
type RenderPipeline struct {
	layers map[ZOrder]RenderOps
}

// New returns an empty pipeline.
func New() *RenderPipeline {
	return &RenderPipeline{layers: make(map[ZOrder]RenderOps)}
}

// Push appends op to the named z-order layer.
func (p *RenderPipeline) Push(z ZOrder, op RenderOp) {
	ops := p.layers[z]
	ops.Push(op)
	p.layers[z] = ops
}

// PushAll appends every op in ops to the named z-order layer, preserving
// order.
func (p *RenderPipeline) PushAll(z ZOrder, ops RenderOps) {
	for _, op := range ops {
		p.Push(z, op)
	}
}

// Merge appends every layer of other into p, preserving each layer's
// internal order, so a sub-component's pipeline (e.g. a single rendered
// line) can be spliced into a larger one.
func (p *RenderPipeline) Merge(other *RenderPipeline) {
	if other == nil {
		return
	}
	for _, z := range zOrderPaintSequence {
		p.PushAll(z, other.layers[z])
	}
}

// Flatten returns every op across all layers in paint order: Deferred,
// Normal, Glass, Caret. This is the sequence a backend actually executes.
func (p *RenderPipeline) Flatten() RenderOps {
	var out RenderOps
	for _, z := range zOrderPaintSequence {
		out = append(out, p.layers[z]...)
	}
	return out
}

// IsEmpty reports whether the pipeline has no ops in any layer.
func (p *RenderPipeline) IsEmpty() bool {
	for _, z := range zOrderPaintSequence {
		if len(p.layers[z]) > 0 {
			return false
		}
	}
	return true
}
