package renderer

import "testing"

func newTestSession(t *testing.T) *RenderSession {
	t.Helper()
	rt := NewRaytracer(emptyScene(), &silentLogger{})
	if err := rt.SetSettings(fastSettings()); err != nil {
		t.Fatal(err)
	}
	return NewRenderSession(rt)
}

func TestSessionIdleRendersOnceThenWaits(t *testing.T) {
	session := newTestSession(t)

	// The initial trigger renders the first frame
	_, rendered, err := session.Frame(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !rendered {
		t.Fatal("first frame should render")
	}

	// Subsequent idle frames do nothing
	for i := 0; i < 3; i++ {
		_, rendered, err = session.Frame(8, 8)
		if err != nil {
			t.Fatal(err)
		}
		if rendered {
			t.Fatal("idle frame rendered without a trigger")
		}
	}
}

func TestSessionTriggerRendersSingleFrame(t *testing.T) {
	session := newTestSession(t)
	session.Frame(8, 8) // consume the initial trigger

	session.Trigger()

	_, rendered, err := session.Frame(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !rendered {
		t.Fatal("triggered frame should render")
	}

	_, rendered, _ = session.Frame(8, 8)
	if rendered {
		t.Fatal("trigger should apply to one frame only")
	}
}

func TestSessionPlayingRendersEveryFrame(t *testing.T) {
	session := newTestSession(t)
	session.SetPlaying(true)

	if !session.Playing() {
		t.Fatal("Playing() = false after SetPlaying(true)")
	}

	for i := 0; i < 3; i++ {
		stats, rendered, err := session.Frame(8, 8)
		if err != nil {
			t.Fatal(err)
		}
		if !rendered {
			t.Fatalf("playing frame %d did not render", i)
		}
		if stats.TotalPixels != 64 {
			t.Errorf("frame %d rendered %d pixels, want 64", i, stats.TotalPixels)
		}
	}

	session.SetPlaying(false)
	_, rendered, _ := session.Frame(8, 8)
	if rendered {
		t.Fatal("frame rendered after pausing")
	}
}
