package main

import (
	"strings"
	"testing"

	"github.com/gogpu/sketch"
)

func TestApplyOverrides(t *testing.T) {
	base := sketch.Params{Width: 800, Height: 600, Iterations: 50, Seed: 1}

	tests := []struct {
		name    string
		seed    int64
		iters   int
		size    string
		want    sketch.Params
		wantErr string
	}{
		{
			name: "no overrides",
			want: base,
		},
		{
			name: "seed and iterations",
			seed: 99, iters: 7,
			want: sketch.Params{Width: 800, Height: 600, Iterations: 7, Seed: 99},
		},
		{
			name: "size",
			size: "300x200",
			want: sketch.Params{Width: 300, Height: 200, Iterations: 50, Seed: 1},
		},
		{
			name:  "negative iterations rejected",
			iters: -5,
			wantErr: "must not be negative",
		},
		{
			name:    "bad size rejected",
			size:    "300",
			wantErr: "invalid -size",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyOverrides(base, tt.seed, tt.iters, tt.size)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("applyOverrides error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyOverrides: %v", err)
			}
			if got.Width != tt.want.Width || got.Height != tt.want.Height ||
				got.Iterations != tt.want.Iterations || got.Seed != tt.want.Seed {
				t.Errorf("applyOverrides = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{in: "900x900", w: 900, h: 900},
		{in: "640x480", w: 640, h: 480},
		{in: "640", wantErr: true},
		{in: "ax480", wantErr: true},
		{in: "640xb", wantErr: true},
		{in: "0x480", wantErr: true},
		{in: "-1x480", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSize(%q) = %dx%d, want error", tt.in, w, h)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSize(%q): %v", tt.in, err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}
