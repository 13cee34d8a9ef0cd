package renderer

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/pong/engine/math"
)

type recordingBackend struct {
	calls   []string
	mvps    []math.Mat4
	colours []math.Vec4
	clear   math.Vec4
	drawErr error
}

func (b *recordingBackend) Initialize(string, uint32, uint32) error {
	b.calls = append(b.calls, "init")
	return nil
}

func (b *recordingBackend) Shutdown() error {
	b.calls = append(b.calls, "shutdown")
	return nil
}

func (b *recordingBackend) Resized(uint16, uint16) error {
	b.calls = append(b.calls, "resized")
	return nil
}

func (b *recordingBackend) BeginFrame(_ float64, clearColour math.Vec4) error {
	b.calls = append(b.calls, "begin")
	b.clear = clearColour
	return nil
}

func (b *recordingBackend) DrawQuad(mvp math.Mat4, colour math.Vec4) error {
	b.calls = append(b.calls, "draw")
	b.mvps = append(b.mvps, mvp)
	b.colours = append(b.colours, colour)
	return b.drawErr
}

func (b *recordingBackend) EndFrame(float64) error {
	b.calls = append(b.calls, "end")
	return nil
}

func TestDrawFrameAppliesCamera(t *testing.T) {
	backend := &recordingBackend{}
	s := NewSystem(backend)

	paddle := math.NewRect(math.NewVec2(-0.95, 0), math.NewVec2(0.04, 0.65))
	white := math.NewVec4(1, 1, 1, 1)
	packet := &RenderPacket{
		ClearColour: math.NewVec4(0.1, 0.1, 0.1, 1),
		Quads:       []Quad{{Transform: paddle.Transform(), Colour: white}},
	}
	if err := s.DrawFrame(packet); err != nil {
		t.Fatalf("draw frame: %v", err)
	}

	want := []string{"begin", "draw", "end"}
	if len(backend.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, backend.calls)
	}
	for i := range want {
		if backend.calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, backend.calls)
		}
	}
	if backend.clear != packet.ClearColour {
		t.Errorf("expected the clear colour to reach the backend, got %v", backend.clear)
	}

	// The default camera maps the playfield straight to clip space.
	topRight := math.NewVec3(0.5, 0.5, 0).Transform(backend.mvps[0])
	if !topRight.Compare(math.NewVec3(-0.93, 0.325, 0), 1e-5) {
		t.Errorf("unexpected top right corner %v", topRight)
	}
	if backend.colours[0] != white {
		t.Errorf("unexpected colour %v", backend.colours[0])
	}
}

func TestDrawFrameStopsOnDrawError(t *testing.T) {
	backend := &recordingBackend{drawErr: errors.New("boom")}
	s := NewSystem(backend)

	packet := &RenderPacket{Quads: []Quad{{Transform: math.NewMat4Identity()}, {Transform: math.NewMat4Identity()}}}
	if err := s.DrawFrame(packet); err == nil {
		t.Fatal("expected the draw error to be returned")
	}
	if len(backend.mvps) != 1 {
		t.Errorf("expected drawing to stop after the first failure, got %d draws", len(backend.mvps))
	}
}
