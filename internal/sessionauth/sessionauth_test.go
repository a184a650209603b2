package sessionauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOfflineUUID_IsDeterministicAndVersioned(t *testing.T) {
	a := OfflineUUID("Notch")
	b := OfflineUUID("Notch")
	if a != b {
		t.Fatalf("OfflineUUID is not deterministic: %s != %s", a, b)
	}

	if (a[6] & 0xF0) != 0x30 {
		t.Fatalf("expected version nibble 3, got %x", a[6]&0xF0)
	}
	if (a[8] & 0xC0) != 0x80 {
		t.Fatalf("expected RFC 4122 variant bits, got %x", a[8]&0xC0)
	}

	if OfflineUUID("Notch") == OfflineUUID("jeb_") {
		t.Fatal("different usernames produced the same offline UUID")
	}
}

func withFakeSessionServer(t *testing.T, handler http.HandlerFunc) *http.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prev := sessionProfileURL
	sessionProfileURL = srv.URL + "/session/minecraft/profile/%s"
	t.Cleanup(func() { sessionProfileURL = prev })

	return srv.Client()
}

func TestFetchProfile_DecodesBody(t *testing.T) {
	want := Profile{
		ID:   "069a79f444e94726a5befca90e38aaf5",
		Name: "Notch",
		Properties: []Property{
			{Name: "textures", Value: "eyJ0ZXh0dXJlcyI6e319", Signature: "sig"},
		},
	}
	client := withFakeSessionServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(want)
	})

	got, err := FetchProfile(context.Background(), client, OfflineUUID("Notch"))
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if got == nil || got.Name != "Notch" {
		t.Fatalf("expected decoded profile named Notch, got %+v", got)
	}
	tex, ok := got.Textures()
	if !ok || tex.Signature != "sig" {
		t.Fatalf("expected textures property with signature, got %+v ok=%v", tex, ok)
	}
}

func TestFetchProfile_NotFoundReturnsNilNil(t *testing.T) {
	client := withFakeSessionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	got, err := FetchProfile(context.Background(), client, OfflineUUID("ghost"))
	if err != nil {
		t.Fatalf("expected no error for 204, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile for 204, got %+v", got)
	}
}

func TestFetchProfile_ServerErrorIsReported(t *testing.T) {
	client := withFakeSessionServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := FetchProfile(context.Background(), client, OfflineUUID("Notch"))
	if err == nil {
		t.Fatal("expected an error for a non-2xx/204/404 response")
	}
}

func TestProfile_Textures(t *testing.T) {
	p := &Profile{Properties: []Property{{Name: "textures", Value: "abc"}}}
	tex, ok := p.Textures()
	if !ok || tex.Value != "abc" {
		t.Fatalf("expected textures property abc, got %+v ok=%v", tex, ok)
	}

	empty := &Profile{}
	if _, ok := empty.Textures(); ok {
		t.Fatal("expected no textures property on empty profile")
	}
}
