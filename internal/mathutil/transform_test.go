package mathutil

import (
	"math"
	"testing"
)

func TestViewportMapsNDCCorners(t *testing.T) {
	m := Viewport(640, 480)
	tests := []struct {
		name string
		ndc  Vec4
		want Vec4
	}{
		{"center", Vec4{0, 0, 0, 1}, Vec4{320, 240, 0, 1}},
		{"top-left NDC (-1,1) maps to screen row 0", Vec4{-1, 1, 0, 1}, Vec4{0, 0, 0, 1}},
		{"bottom-right NDC (1,-1) maps to screen row h", Vec4{1, -1, 0, 1}, Vec4{640, 480, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Vec4
			got.MulM4(&m, &tt.ndc)
			if !approxEq(got[0], tt.want[0], 1e-4) || !approxEq(got[1], tt.want[1], 1e-4) {
				t.Errorf("Viewport . %v = %v, want %v", tt.ndc, got, tt.want)
			}
		})
	}
}

func TestRotateAboutY(t *testing.T) {
	m := Rotate(Vec3{0, 1, 0}, float32(math.Pi/2))
	v := Vec4{1, 0, 0, 1}
	var got Vec4
	got.MulM4(&m, &v)
	want := Vec3{0, 0, -1}
	gotXYZ := got.XYZ()
	if !vec3ApproxEq(gotXYZ, want, 1e-4) {
		t.Errorf("Rotate(y,90deg) . (1,0,0) = %v, want %v", gotXYZ, want)
	}
}

func TestLookAtPlacesEyeAtOrigin(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	eye := Vec4{0, 0, 5, 1}
	var got Vec4
	got.MulM4(&m, &eye)
	want := Vec3{0, 0, 0}
	if !vec3ApproxEq(got.XYZ(), want, 1e-4) {
		t.Errorf("LookAt maps eye to %v, want origin", got.XYZ())
	}
}

func TestPerspectiveMapsNearFarToClipRange(t *testing.T) {
	m := Perspective(float32(math.Pi)/2, 1, 1, 100)
	near := Vec4{0, 0, -1, 1}
	far := Vec4{0, 0, -100, 1}
	var gotNear, gotFar Vec4
	gotNear.MulM4(&m, &near)
	gotFar.MulM4(&m, &far)
	ndcNear := gotNear[2] / gotNear[3]
	ndcFar := gotFar[2] / gotFar[3]
	if !approxEq(ndcNear, -1, 1e-3) {
		t.Errorf("near plane NDC z = %v, want -1", ndcNear)
	}
	if !approxEq(ndcFar, 1, 1e-3) {
		t.Errorf("far plane NDC z = %v, want 1", ndcFar)
	}
}

func TestOrthographicMapsBoundsToNDCCube(t *testing.T) {
	m := Orthographic(-1, 1, -1, 1, -1, 1)
	corner := Vec4{1, 1, 1, 1}
	var got Vec4
	got.MulM4(&m, &corner)
	want := Vec3{1, 1, -1}
	if !vec3ApproxEq(got.XYZ(), want, 1e-4) {
		t.Errorf("Orthographic . (1,1,1) = %v, want %v", got.XYZ(), want)
	}
}
