package client

import (
	"errors"
	"testing"
)

func TestExtractVideoID_SupportedShapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/watch?v=jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://m.youtube.com/watch?v=jNQXAC9IVRw&pp=ygU=", want: "jNQXAC9IVRw"},
		{in: "https://youtu.be/jNQXAC9IVRw?t=1", want: "jNQXAC9IVRw"},
		{in: "youtube.com/watch?v=jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/embed/jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/v/jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/shorts/jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/live/jNQXAC9IVRw", want: "jNQXAC9IVRw"},
	}
	for _, tt := range tests {
		got, err := ExtractVideoID(tt.in)
		if err != nil {
			t.Fatalf("ExtractVideoID(%q) error=%v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ExtractVideoID(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractVideoID_InvalidDetailReason(t *testing.T) {
	tests := []struct {
		in     string
		reason string
	}{
		{in: "https://example.com/watch?v=jNQXAC9IVRw", reason: "unsupported_host"},
		{in: "  ", reason: "empty"},
		{in: "short", reason: "malformed_id"},
		{in: "https://www.youtube.com/feed/trending", reason: "missing_video_id"},
	}
	for _, tt := range tests {
		_, err := ExtractVideoID(tt.in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ExtractVideoID(%q): expected ErrInvalidInput, got %v", tt.in, err)
		}
		var detail *InvalidInputDetailError
		if !errors.As(err, &detail) {
			t.Fatalf("ExtractVideoID(%q): expected InvalidInputDetailError, got %T", tt.in, err)
		}
		if detail.Reason != tt.reason {
			t.Fatalf("ExtractVideoID(%q): reason=%q, want %q", tt.in, detail.Reason, tt.reason)
		}
	}
}

func TestExtractPlaylistID_SupportedShapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "PLabc123", want: "PLabc123"},
		{in: "https://www.youtube.com/playlist?list=PLabc123", want: "PLabc123"},
		{in: "https://www.youtube.com/watch?v=jNQXAC9IVRw&list=PLabc123", want: "PLabc123"},
		{in: "music.youtube.com/playlist?list=OLAK5uy_x", want: "OLAK5uy_x"},
	}
	for _, tt := range tests {
		got, err := ExtractPlaylistID(tt.in)
		if err != nil {
			t.Fatalf("ExtractPlaylistID(%q) error=%v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ExtractPlaylistID(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ExtractPlaylistID("https://www.youtube.com/watch?v=jNQXAC9IVRw"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for url without list, got %v", err)
	}
}

func TestExtractChannelID(t *testing.T) {
	const id = "UCabcdefghijklmnopqrstuv"
	for _, in := range []string{id, "https://www.youtube.com/channel/" + id, "youtube.com/channel/" + id + "/videos"} {
		got, err := ExtractChannelID(in)
		if err != nil {
			t.Fatalf("ExtractChannelID(%q) error=%v", in, err)
		}
		if got != id {
			t.Fatalf("ExtractChannelID(%q)=%q, want %q", in, got, id)
		}
	}

	for _, in := range []string{"", "@handle", "https://www.youtube.com/@handle"} {
		if _, err := ExtractChannelID(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ExtractChannelID(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}
