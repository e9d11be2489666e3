package systems

import (
	"math"
	"testing"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

func newIntro() *gween.Tween {
	return gween.New(2, 1, 1.5, ease.OutCubic)
}

func TestFollowTargetsCentroid(t *testing.T) {
	camera := &components.CameraData{Zoom: 1}
	targets := []dmath.Vec2{dmath.NewVec2(100, 100), dmath.NewVec2(300, 100), dmath.NewVec2(200, 400)}

	FollowTargets(camera, targets, 1280, 720)

	if camera.TargetPosition.X != 200 || camera.TargetPosition.Y != 200 {
		t.Errorf("Expected centroid (200, 200), got %v", camera.TargetPosition)
	}
	if camera.BoundsMin.X != 100-cfg.Viewport.Padding || camera.BoundsMax.Y != 400+cfg.Viewport.Padding {
		t.Errorf("Unexpected bounds %v..%v", camera.BoundsMin, camera.BoundsMax)
	}
}

func TestFollowTargetsZoomFitsBounds(t *testing.T) {
	camera := &components.CameraData{Zoom: 1}
	// 1080 wide with padding, so the width decides
	targets := []dmath.Vec2{dmath.NewVec2(0, 0), dmath.NewVec2(1080-2*cfg.Viewport.Padding, 0)}

	FollowTargets(camera, targets, 1080, 720)

	if math.Abs(camera.TargetZoom-1) > 1e-9 {
		t.Errorf("Expected zoom 1, got %v", camera.TargetZoom)
	}
}

func TestFollowTargetsZoomClamped(t *testing.T) {
	camera := &components.CameraData{Zoom: 1}

	FollowTargets(camera, []dmath.Vec2{dmath.NewVec2(50, 50)}, 1280, 720)
	if camera.TargetZoom != cfg.Viewport.MaxZoom {
		t.Errorf("Expected a single target to hit max zoom, got %v", camera.TargetZoom)
	}

	FollowTargets(camera, []dmath.Vec2{dmath.NewVec2(0, 0), dmath.NewVec2(100000, 0)}, 1280, 720)
	if camera.TargetZoom != cfg.Viewport.MinZoom {
		t.Errorf("Expected far apart targets to hit min zoom, got %v", camera.TargetZoom)
	}
}

func TestFollowTargetsNone(t *testing.T) {
	camera := &components.CameraData{TargetPosition: dmath.NewVec2(5, 5), TargetZoom: 1.5}
	FollowTargets(camera, nil, 1280, 720)
	if camera.TargetPosition.X != 5 || camera.TargetZoom != 1.5 {
		t.Error("Expected no targets to leave the camera alone")
	}
}

func TestStepCameraEases(t *testing.T) {
	camera := &components.CameraData{Zoom: 1, TargetZoom: 2, TargetPosition: dmath.NewVec2(100, 0)}

	StepCamera(camera, tickSeconds)

	if camera.Position.X <= 0 || camera.Position.X >= 100 {
		t.Errorf("Expected position to move part way, got %v", camera.Position.X)
	}
	if camera.Zoom <= 1 || camera.Zoom >= 2 {
		t.Errorf("Expected zoom to move part way, got %v", camera.Zoom)
	}
}

func TestStepCameraIntroOwnsZoom(t *testing.T) {
	camera := &components.CameraData{Zoom: 2, TargetZoom: 0.5}
	camera.Intro = newIntro()

	for i := 0; i < 1000 && camera.Intro != nil; i++ {
		StepCamera(camera, tickSeconds)
		if camera.Zoom < 1-1e-6 {
			t.Fatalf("Expected the intro to hold zoom at or above 1, got %v", camera.Zoom)
		}
	}
	if camera.Intro != nil {
		t.Fatal("Expected the intro to finish")
	}
	if math.Abs(camera.Zoom-1) > 1e-6 {
		t.Errorf("Expected the intro to end at zoom 1, got %v", camera.Zoom)
	}

	StepCamera(camera, tickSeconds)
	if camera.Zoom >= 1 {
		t.Errorf("Expected following to take over after the intro, got %v", camera.Zoom)
	}
}

func TestSetZoomClamps(t *testing.T) {
	camera := &components.CameraData{Intro: newIntro()}

	SetZoom(camera, 10)
	if camera.Zoom != cfg.Viewport.MaxZoom || camera.Intro != nil {
		t.Errorf("Expected zoom clamped to max and the intro cancelled, got %v", camera.Zoom)
	}
	SetZoom(camera, 0.01)
	if camera.Zoom != cfg.Viewport.MinZoom {
		t.Errorf("Expected zoom clamped to min, got %v", camera.Zoom)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	camera := &components.CameraData{Zoom: 1.5}
	MoveTo(camera, 400, 300)

	sx, sy := WorldToScreen(camera, 400, 300, 1280, 720)
	if sx != 640 || sy != 360 {
		t.Errorf("Expected the camera position at screen centre, got (%v, %v)", sx, sy)
	}

	wx, wy := ScreenToWorld(camera, 100, 50, 1280, 720)
	bx, by := WorldToScreen(camera, wx, wy, 1280, 720)
	if math.Abs(bx-100) > 1e-9 || math.Abs(by-50) > 1e-9 {
		t.Errorf("Expected round trip to (100, 50), got (%v, %v)", bx, by)
	}
}
