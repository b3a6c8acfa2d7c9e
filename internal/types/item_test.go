package types

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
)

func assertJSON(t *testing.T, got []byte, want string) {
	t.Helper()
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("unmarshal got: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("unmarshal want: %v", err)
	}
	if !reflect.DeepEqual(g, w) {
		t.Fatalf("json = %s, want %s", got, want)
	}
}

func TestItemMarshalJSON_VideoDefaults(t *testing.T) {
	item := Item{ID: "abc123", Type: ItemTypeVideo, Title: "Test Video", Thumbnail: map[string]any{}}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	assertJSON(t, data, `{"id":"abc123","type":"video","thumbnail":{},"title":"Test Video","channelTitle":"","shortBylineText":"","length":"","isLive":false}`)
}

func TestItemMarshalJSON_ChannelOmitsVideoFields(t *testing.T) {
	item := Item{ID: "UC1", Type: ItemTypeChannel, Title: "Chan", IsLive: true, Length: "3:00"}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	assertJSON(t, data, `{"id":"UC1","type":"channel","thumbnail":null,"title":"Chan"}`)
}

func TestItemMarshalJSON_PlaylistNeverLive(t *testing.T) {
	item := Item{ID: "PL1", Type: ItemTypePlaylist, Title: "List", Length: 12, VideoCount: 12, IsLive: true}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["isLive"] != false {
		t.Fatalf("isLive = %v, want false", decoded["isLive"])
	}
	if decoded["videoCount"] != float64(12) || decoded["length"] != float64(12) {
		t.Fatalf("videoCount = %v length = %v, want 12 and 12", decoded["videoCount"], decoded["length"])
	}
}

func TestContinuationStateJSON(t *testing.T) {
	state := ContinuationState{Token: "key", Context: map[string]any{"client": map[string]any{"hl": "en"}}}

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	assertJSON(t, data, `{"token":"key","context":{"client":{"hl":"en"}},"continuation":null}`)
	if !state.Done() {
		t.Fatalf("Done() = false for a state without continuation")
	}

	var decoded ContinuationState
	if err := json.Unmarshal([]byte(`{"token":"key","context":null,"continuation":"cursor"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Token != "key" || decoded.Continuation != "cursor" || decoded.Context != nil {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Done() {
		t.Fatalf("Done() = true for a state with continuation")
	}
}

func TestContinuationStateWithContinuationCopies(t *testing.T) {
	state := ContinuationState{Token: "key", Continuation: "a"}
	next := state.WithContinuation("b")

	if state.Continuation != "a" {
		t.Fatalf("original Continuation = %v, want a", state.Continuation)
	}
	if next.Continuation != "b" || next.Token != "key" {
		t.Fatalf("next = %+v", next)
	}
}

func TestOperationFromContext(t *testing.T) {
	if op, ok := OperationFromContext(context.Background()); ok || op != "" {
		t.Fatalf("OperationFromContext(background) = %q, %v", op, ok)
	}
	ctx := WithOperation(context.Background(), "playlist")
	if op, ok := OperationFromContext(ctx); !ok || op != "playlist" {
		t.Fatalf("OperationFromContext() = %q, %v, want playlist", op, ok)
	}
	if _, ok := OperationFromContext(WithOperation(context.Background(), "")); ok {
		t.Fatalf("an empty operation name must not be reported")
	}
}
