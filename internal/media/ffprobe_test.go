package media

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDurationParsesFFProbeOutput(t *testing.T) {
	prober := NewFFProbeProber("ffprobe", time.Second)

	var gotBinary string
	var gotArgs []string
	prober.Run = func(_ context.Context, binary string, args ...string) ([]byte, error) {
		gotBinary = binary
		gotArgs = args
		return []byte(`{"format":{"duration":"372.481000"}}`), nil
	}

	duration, err := prober.Duration(context.Background(), "/tmp/clip.mp4")
	if err != nil {
		t.Fatalf("Duration returned error: %v", err)
	}
	if duration != 372.481 {
		t.Fatalf("unexpected duration %v", duration)
	}
	if gotBinary != "ffprobe" {
		t.Fatalf("unexpected binary %q", gotBinary)
	}
	if len(gotArgs) == 0 || gotArgs[len(gotArgs)-1] != "/tmp/clip.mp4" {
		t.Fatalf("expected path as final argument, got %v", gotArgs)
	}
}

func TestDurationRejectsMissingDuration(t *testing.T) {
	prober := NewFFProbeProber("", 0)
	prober.Run = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte(`{"format":{}}`), nil
	}

	if _, err := prober.Duration(context.Background(), "/tmp/clip.mp4"); err == nil {
		t.Fatal("expected error for missing duration")
	}
}

func TestDurationWrapsCommandFailure(t *testing.T) {
	prober := NewFFProbeProber("ffprobe", time.Second)
	prober.Run = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}

	if _, err := prober.Duration(context.Background(), "/tmp/clip.mp4"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDurationRejectsMalformedJSON(t *testing.T) {
	prober := NewFFProbeProber("ffprobe", time.Second)
	prober.Run = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte("not json"), nil
	}

	if _, err := prober.Duration(context.Background(), "/tmp/clip.mp4"); err == nil {
		t.Fatal("expected error")
	}
}
