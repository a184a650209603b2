package text

import "encoding/json"

// MarshalJSON emits the canonical object form. A bare text-only component
// still serialises as an object (matching to_json's exact field output)
// rather than collapsing to a plain JSON string.
func (tc TextComponent) MarshalJSON() ([]byte, error) {
	type plain TextComponent
	return json.Marshal(plain(tc))
}

// UnmarshalJSON accepts both a plain JSON string ("hello") and a full
// object ({"text":"hello","color":"red"}), since both forms appear in
// vanilla chat payloads and command feedback.
func (tc *TextComponent) UnmarshalJSON(data []byte) error {
	var s string
	if json.Unmarshal(data, &s) == nil {
		*tc = TextComponent{Text: s}
		return nil
	}
	type plain TextComponent
	return json.Unmarshal(data, (*plain)(tc))
}

// ToJSON renders the component tree as JSON text.
func (tc TextComponent) ToJSON() ([]byte, error) {
	return json.Marshal(tc)
}

// FromJSON parses a component tree out of JSON text.
func FromJSON(data []byte) (TextComponent, error) {
	var tc TextComponent
	err := json.Unmarshal(data, &tc)
	return tc, err
}
