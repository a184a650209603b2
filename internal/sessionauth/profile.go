package sessionauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-mclib/limbo/internal/netio"
)

// sessionProfileURL is Mojang's public (unauthenticated) session-server
// profile endpoint; %s is the player's UUID. Overridable in tests.
var sessionProfileURL = "https://sessionserver.mojang.com/session/minecraft/profile/%s"

// Property is one entry of a profile's property list - for a real
// account, the "textures" property carries the base64 skin/cape payload.
type Property struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

// Profile is a fetched Mojang game profile: id, current name, and
// properties (almost always just "textures").
type Profile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

// Textures returns the raw "textures" property, if the profile has one.
func (p *Profile) Textures() (Property, bool) {
	for _, prop := range p.Properties {
		if prop.Name == "textures" {
			return prop, true
		}
	}
	return Property{}, false
}

// FetchProfile requests a player's profile from Mojang's session server.
// A 204/404 response (unknown uuid, likely an offline-mode player) isn't
// an error: it returns (nil, nil), matching how spec §6 describes
// fetch_player_profile as something that may simply have nothing to
// return, not something that fails.
func FetchProfile(ctx context.Context, httpClient *http.Client, id netio.UUID) (*Profile, error) {
	url := fmt.Sprintf(sessionProfileURL, id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("sessionauth: build profile request: %w", err)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sessionauth: profile request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNoContent || res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		data, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("sessionauth: profile request failed: %s: %s", res.Status, string(data))
	}

	var out Profile
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("sessionauth: decode profile: %w", err)
	}
	return &out, nil
}
