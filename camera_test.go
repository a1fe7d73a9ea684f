package sidescroll

import (
	"testing"

	"github.com/tanema/gween/ease"
)

type fixedPos Vec2

func (p *fixedPos) Position() Vec2 { return Vec2(*p) }

func TestCameraFollow(t *testing.T) {
	cam := newCamera(320, 240)
	target := &fixedPos{X: 400, Y: 300}

	cam.Follow(target, 0, 0, 1.0) // lerp=1 snaps immediately
	cam.update(16)
	// Target centered: 400-160, 300-120.
	if !approxEqual(cam.X, 240, epsilon) || !approxEqual(cam.Y, 180, epsilon) {
		t.Errorf("after follow snap: cam = (%f,%f), want (240,180)", cam.X, cam.Y)
	}
}

func TestCameraFollowLerp(t *testing.T) {
	cam := newCamera(320, 240)
	target := &fixedPos{X: 260, Y: 120}

	cam.Follow(target, 0, 0, 0.5)
	cam.update(16)
	// Should move halfway from 0 to 100
	if !approxEqual(cam.X, 50, epsilon) || !approxEqual(cam.Y, 0, epsilon) {
		t.Errorf("after lerp 0.5: cam = (%f,%f), want (50,0)", cam.X, cam.Y)
	}
}

func TestCameraFollowWithOffset(t *testing.T) {
	cam := newCamera(320, 240)
	target := &fixedPos{X: 160, Y: 120}

	cam.Follow(target, 10, -20, 1.0)
	cam.update(16)
	if !approxEqual(cam.X, 10, epsilon) || !approxEqual(cam.Y, -20, epsilon) {
		t.Errorf("follow with offset: cam = (%f,%f), want (10,-20)", cam.X, cam.Y)
	}
}

func TestCameraUnfollow(t *testing.T) {
	cam := newCamera(320, 240)
	target := &fixedPos{X: 260, Y: 220}

	cam.Follow(target, 0, 0, 1.0)
	cam.update(16)
	cam.Unfollow()

	target.X = 900
	cam.update(16)
	if !approxEqual(cam.X, 100, epsilon) {
		t.Errorf("after unfollow: cam.X = %f, want 100", cam.X)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := newCamera(320, 240)
	cam.ScrollTo(100, 200, 1000, ease.Linear)

	cam.update(500)
	if !approxEqual(cam.X, 50, 1.0) || !approxEqual(cam.Y, 100, 1.0) {
		t.Errorf("scroll halfway: cam = (%f,%f), want ~(50,100)", cam.X, cam.Y)
	}
	if !cam.Scrolling() {
		t.Error("Scrolling = false halfway through")
	}

	cam.update(500)
	if !approxEqual(cam.X, 100, 1.0) || !approxEqual(cam.Y, 200, 1.0) {
		t.Errorf("scroll end: cam = (%f,%f), want ~(100,200)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("scroll tween not cleared after completion")
	}
}

func TestCameraScrollToTile(t *testing.T) {
	cam := newCamera(320, 240)
	cam.ScrollToTile(20, 15, 1, ease.Linear)

	// tile center (328, 248) minus half the viewport
	cam.update(100)
	if !approxEqual(cam.X, 168, 1.0) || !approxEqual(cam.Y, 128, 1.0) {
		t.Errorf("ScrollToTile: cam = (%f,%f), want ~(168,128)", cam.X, cam.Y)
	}
}

func TestCameraSetPositionCancelsScroll(t *testing.T) {
	cam := newCamera(320, 240)
	cam.ScrollTo(500, 500, 1000, ease.Linear)
	cam.SetPosition(Vec2{7, 9})
	cam.update(500)
	if cam.X != 7 || cam.Y != 9 {
		t.Errorf("cam = (%f,%f), want (7,9)", cam.X, cam.Y)
	}
}

func TestCameraBounds(t *testing.T) {
	cam := newCamera(100, 100)
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	cam.X, cam.Y = -50, -50
	cam.update(0)
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("bounds clamp min: cam = (%f,%f), want (0,0)", cam.X, cam.Y)
	}

	cam.X, cam.Y = 999, 999
	cam.update(0)
	if cam.X != 900 || cam.Y != 900 {
		t.Errorf("bounds clamp max: cam = (%f,%f), want (900,900)", cam.X, cam.Y)
	}
}

func TestCameraClearBounds(t *testing.T) {
	cam := newCamera(100, 100)
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
	cam.ClearBounds()

	cam.X, cam.Y = -999, -999
	cam.update(0)
	if cam.X != -999 || cam.Y != -999 {
		t.Errorf("after ClearBounds: cam = (%f,%f), want (-999,-999)", cam.X, cam.Y)
	}
}

func TestCameraBoundsSmallWorld(t *testing.T) {
	cam := newCamera(320, 240)
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 160, Height: 1000})
	cam.update(0)
	if !approxEqual(cam.X, -80, epsilon) || cam.Y != 0 {
		t.Errorf("small world center: cam = (%f,%f), want (-80,0)", cam.X, cam.Y)
	}
}

func TestCameraCenterSmallAxes(t *testing.T) {
	tests := []struct {
		name         string
		mapW, mapH   float64
		wantX, wantY float64
	}{
		{"narrow", 160, 480, -80, 5},
		{"short", 640, 32, 5, -104},
		{"both", 32, 32, -144, -104},
		{"exact fit", 320, 240, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newCamera(320, 240)
			cam.X, cam.Y = 5, 5
			cam.centerSmallAxes(tt.mapW, tt.mapH)
			if cam.X != tt.wantX || cam.Y != tt.wantY {
				t.Errorf("cam = (%f,%f), want (%f,%f)", cam.X, cam.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCameraScreenWorldConversion(t *testing.T) {
	cam := newCamera(320, 240)
	cam.X, cam.Y = 100, 40
	wx, wy := cam.ScreenToWorld(10, 10)
	if wx != 110 || wy != 50 {
		t.Errorf("ScreenToWorld = (%f,%f), want (110,50)", wx, wy)
	}
	sx, sy := cam.WorldToScreen(wx, wy)
	if sx != 10 || sy != 10 {
		t.Errorf("WorldToScreen = (%f,%f), want (10,10)", sx, sy)
	}
}
