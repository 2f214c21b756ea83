package main

import (
	"testing"
	"time"

	"github.com/Gxrco/planetarium/pkg/render"
)

func TestHUDFlashExpires(t *testing.T) {
	h := NewHUD()

	if h.flash != "" {
		t.Fatalf("new HUD carries a flash message: %q", h.flash)
	}

	h.Flash("saved shot.png")
	if h.flash != "saved shot.png" {
		t.Errorf("flash message = %q, want %q", h.flash, "saved shot.png")
	}
	if !time.Now().Before(h.flashUntil) {
		t.Error("flash deadline is not in the future")
	}

	h.flashUntil = time.Now().Add(-time.Second)
	if time.Now().Before(h.flashUntil) {
		t.Error("expired flash still reads as active")
	}
}

func TestBlendClampsFactor(t *testing.T) {
	under := render.RGB(10, 20, 30)
	over := render.RGB(200, 100, 50)

	if got := blend(under, over, -0.5); got != under {
		t.Errorf("blend at t<0 = %v, want under color %v", got, under)
	}
	full := blend(under, over, 2)
	if full.R != over.R || full.G != over.G || full.B != over.B {
		t.Errorf("blend at t>1 = %v, want over color %v", full, over)
	}
	if full.A != 255 {
		t.Errorf("blend alpha = %d, want 255", full.A)
	}

	mid := blend(under, over, 0.5)
	if mid.R != 105 || mid.G != 60 || mid.B != 40 {
		t.Errorf("blend midpoint = %v, want (105, 60, 40)", mid)
	}
}
