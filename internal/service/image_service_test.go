package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sawtify/api/internal/model"
)

func TestImageSetSuccess(t *testing.T) {
	fake := &fakeGemini{imageRef: "data:image/png;base64,aGVsbG8="}
	svc := NewImageService(fake)

	resp, err := svc.GenerateSet(context.Background(), &model.ImageSetRequest{Prompt: "a desert at dawn"})
	if err != nil {
		t.Fatalf("GenerateSet() err = %v; want nil", err)
	}
	if len(resp.Images) != model.ImageSetSize {
		t.Fatalf("len(Images) = %d; want %d", len(resp.Images), model.ImageSetSize)
	}
	for i, ref := range resp.Images {
		if ref != fake.imageRef {
			t.Errorf("Images[%d] = %q; want %q", i, ref, fake.imageRef)
		}
	}
	if fake.imageCalls != model.ImageSetSize {
		t.Errorf("imageCalls = %d; want %d", fake.imageCalls, model.ImageSetSize)
	}
}

func TestImageSetFailFast(t *testing.T) {
	fake := &fakeGemini{
		imageRef:      "data:image/png;base64,aGVsbG8=",
		failImageCall: 3,
	}
	svc := NewImageService(fake)

	resp, err := svc.GenerateSet(context.Background(), &model.ImageSetRequest{Prompt: "a desert at dawn"})
	if !errors.Is(err, ErrImageSetFailed) {
		t.Fatalf("err = %v; want ErrImageSetFailed", err)
	}
	if resp != nil {
		t.Errorf("resp = %+v; want nil (no partial gallery)", resp)
	}
	// Sibling calls are not canceled: all five must have run
	if fake.imageCalls != model.ImageSetSize {
		t.Errorf("imageCalls = %d; want %d", fake.imageCalls, model.ImageSetSize)
	}
}

func TestImageSetMockWhenUnconfigured(t *testing.T) {
	svc := NewImageService(nil)

	resp, err := svc.GenerateSet(context.Background(), &model.ImageSetRequest{Prompt: "a desert at dawn"})
	if err != nil {
		t.Fatalf("GenerateSet() err = %v; want nil", err)
	}
	if len(resp.Images) != model.ImageSetSize {
		t.Fatalf("len(Images) = %d; want %d", len(resp.Images), model.ImageSetSize)
	}
	for i, ref := range resp.Images {
		if !strings.HasPrefix(ref, "data:image/png;base64,") {
			t.Errorf("Images[%d] = %q; want png data URI", i, ref)
		}
	}
}

func TestBuildImagePrompt(t *testing.T) {
	tests := []struct {
		name   string
		style  string
		wanted string
	}{
		{"explicit style", "cartoon", "cartoon"},
		{"default style", "", "realistic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildImagePrompt("a cat on a roof", tt.style)
			if !strings.Contains(got, "a cat on a roof") {
				t.Errorf("prompt lost the description: %q", got)
			}
			if !strings.Contains(got, tt.wanted) {
				t.Errorf("prompt missing style %q: %q", tt.wanted, got)
			}
		})
	}
}
