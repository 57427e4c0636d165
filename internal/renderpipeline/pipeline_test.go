package renderpipeline

import "testing"

func TestPipelineFlattenOrderIsDeferredNormalGlassCaret(t *testing.T) {
	p := New()
	p.Push(ZOrderCaret, CursorShow())
	p.Push(ZOrderNormal, ClearScreen())
	p.Push(ZOrderGlass, ResetColor())
	p.Push(ZOrderDeferred, EnterRawMode())

	got := p.Flatten()
	want := []RenderOpKind{OpEnterRawMode, OpClearScreen, OpResetColor, OpCursorShow}
	if len(got) != len(want) {
		t.Fatalf("got %d ops, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("op %d: got kind %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestPipelinePreservesInsertionOrderWithinLayer(t *testing.T) {
	p := New()
	p.Push(ZOrderNormal, PrintTextWithAttributes("a", Style{}))
	p.Push(ZOrderNormal, PrintTextWithAttributes("b", Style{}))
	p.Push(ZOrderNormal, PrintTextWithAttributes("c", Style{}))

	got := p.Flatten()
	if len(got) != 3 || got[0].Text != "a" || got[1].Text != "b" || got[2].Text != "c" {
		t.Fatalf("got %+v", got)
	}
}

func TestPipelineMergePreservesLayersAndOrder(t *testing.T) {
	a := New()
	a.Push(ZOrderNormal, PrintTextWithAttributes("line1", Style{}))
	a.Push(ZOrderCaret, RequestShowCaretAtPositionAbs(Position{}))

	b := New()
	b.Push(ZOrderNormal, PrintTextWithAttributes("line2", Style{}))

	a.Merge(b)
	got := a.Flatten()
	if len(got) != 3 {
		t.Fatalf("got %d ops, want 3: %+v", len(got), got)
	}
	if got[0].Text != "line1" || got[1].Text != "line2" {
		t.Errorf("Normal layer ops out of order: %+v", got[:2])
	}
	if got[2].Kind != OpRequestShowCaretAtPositionAbs {
		t.Errorf("expected caret op last, got %+v", got[2])
	}
}

func TestPipelineIsEmpty(t *testing.T) {
	p := New()
	if !p.IsEmpty() {
		t.Error("new pipeline should be empty")
	}
	p.Push(ZOrderGlass, Noop())
	if p.IsEmpty() {
		t.Error("pipeline with a pushed op should not be empty")
	}
}

func TestPushAllAppendsInOrder(t *testing.T) {
	p := New()
	p.PushAll(ZOrderNormal, RenderOps{Noop(), ClearScreen()})
	got := p.Flatten()
	if len(got) != 2 || got[0].Kind != OpNoop || got[1].Kind != OpClearScreen {
		t.Fatalf("got %+v", got)
	}
}
