package packetid

import "github.com/go-mclib/limbo/internal/version"

// StaticRegistry returns the built-in packet table. Every Registration
// uses version.Any for both bounds: the only numeric ids available to
// build this table against are for a single protocol version, so the
// table can't yet express renumbering across versions the way a real
// reports/packets.json-driven build would. A version-range-accurate table
// requires retrieving that per-version id data; until then every id here
// is treated as stable across all supported versions, which is wrong for
// any version old enough to have numbered these packets differently, but
// is the best available default.
func StaticRegistry() *Registry {
	r := NewBuilder()
	any := version.Any

	reg := func(state State, bound Bound, name Name, id int32) {
		r.Register(Registration{State: state, Bound: bound, Name: name, ID: id, Lo: any, Hi: any})
	}

	// Handshake
	reg(StateHandshake, C2S, "minecraft:intention", 0x00)

	// Status
	reg(StateStatus, C2S, "minecraft:status_request", 0x00)
	reg(StateStatus, C2S, "minecraft:ping_request", 0x01)
	reg(StateStatus, S2C, "minecraft:status_response", 0x00)
	reg(StateStatus, S2C, "minecraft:pong_response", 0x01)

	// Login
	reg(StateLogin, C2S, "minecraft:hello", 0x00)
	reg(StateLogin, C2S, "minecraft:key", 0x01)
	reg(StateLogin, C2S, "minecraft:custom_query_answer", 0x02)
	reg(StateLogin, C2S, "minecraft:login_acknowledged", 0x03)
	reg(StateLogin, C2S, "minecraft:cookie_response_login", 0x04)
	reg(StateLogin, S2C, "minecraft:login_disconnect", 0x00)
	reg(StateLogin, S2C, "minecraft:hello", 0x01) // EncryptionRequest
	reg(StateLogin, S2C, "minecraft:login_finished", 0x02)
	reg(StateLogin, S2C, "minecraft:login_compression", 0x03)
	reg(StateLogin, S2C, "minecraft:custom_query", 0x04)

	// Configuration
	reg(StateConfiguration, C2S, "minecraft:client_information", 0x00)
	reg(StateConfiguration, C2S, "minecraft:cookie_response_configuration", 0x01)
	reg(StateConfiguration, C2S, "minecraft:custom_payload", 0x02)
	reg(StateConfiguration, C2S, "minecraft:finish_configuration", 0x03)
	reg(StateConfiguration, C2S, "minecraft:keep_alive", 0x04)
	reg(StateConfiguration, C2S, "minecraft:pong", 0x05)
	reg(StateConfiguration, C2S, "minecraft:resource_pack", 0x06)
	reg(StateConfiguration, C2S, "minecraft:select_known_packs", 0x07)
	reg(StateConfiguration, C2S, "minecraft:custom_click_action", 0x08)
	// Teacher only defines finish/keep_alive/ping for clientbound
	// Configuration; the rest (custom_payload, select_known_packs,
	// registry_data, update_tags, disconnect) are absent from every
	// retrieved source, so their ids below are the well-known public
	// 1.20.5+ numbering rather than anything grounded in the pack.
	reg(StateConfiguration, S2C, "minecraft:custom_payload", 0x01)
	reg(StateConfiguration, S2C, "minecraft:disconnect", 0x02)
	reg(StateConfiguration, S2C, "minecraft:finish_configuration", 0x03)
	reg(StateConfiguration, S2C, "minecraft:keep_alive", 0x04)
	reg(StateConfiguration, S2C, "minecraft:ping", 0x05)
	reg(StateConfiguration, S2C, "minecraft:registry_data", 0x07)
	reg(StateConfiguration, S2C, "minecraft:update_tags", 0x0D)
	reg(StateConfiguration, S2C, "minecraft:select_known_packs", 0x0E)

	// Play - none of these ids are grounded in the teacher (it defines no
	// Play-state packets at all); they're the well-known public 1.21.5
	// numbering, used here as the best available default. See
	// DESIGN.md for the scope-cut rationale shared with blockmapping and
	// registry's "Static*" fallbacks.
	reg(StatePlay, S2C, "minecraft:login", 0x2B)
	reg(StatePlay, S2C, "minecraft:set_default_spawn_position", 0x5A)
	reg(StatePlay, S2C, "minecraft:player_position", 0x42)
	reg(StatePlay, S2C, "minecraft:commands", 0x11)
	reg(StatePlay, S2C, "minecraft:custom_payload", 0x18)
	reg(StatePlay, S2C, "minecraft:system_chat", 0x72)
	reg(StatePlay, S2C, "minecraft:legacy_chat_message", 0x73)
	reg(StatePlay, S2C, "minecraft:set_time", 0x6B)
	reg(StatePlay, S2C, "minecraft:set_action_bar_text", 0x43)
	reg(StatePlay, S2C, "minecraft:player_info_update", 0x3F)
	reg(StatePlay, S2C, "minecraft:boss_event", 0x0C)
	reg(StatePlay, S2C, "minecraft:game_event", 0x22)
	reg(StatePlay, S2C, "minecraft:level_chunk_with_light", 0x27)
	reg(StatePlay, S2C, "minecraft:set_chunk_cache_center", 0x54)
	reg(StatePlay, S2C, "minecraft:keep_alive", 0x26)
	reg(StatePlay, S2C, "minecraft:disconnect", 0x1D)
	reg(StatePlay, S2C, "minecraft:transfer", 0x74)
	reg(StatePlay, S2C, "minecraft:player_abilities", 0x3A)
	reg(StatePlay, S2C, "minecraft:pick_item_from_block", 0x3E)
	reg(StatePlay, S2C, "minecraft:tab_list", 0x68)
	reg(StatePlay, S2C, "minecraft:set_entity_data", 0x58)

	reg(StatePlay, C2S, "minecraft:move_player_pos", 0x1D)
	reg(StatePlay, C2S, "minecraft:move_player_pos_rot", 0x1E)
	reg(StatePlay, C2S, "minecraft:chat_command", 0x05)
	reg(StatePlay, C2S, "minecraft:chat", 0x08)
	reg(StatePlay, C2S, "minecraft:keep_alive", 0x1A)
	reg(StatePlay, C2S, "minecraft:player_abilities", 0x1F)
	reg(StatePlay, C2S, "minecraft:pick_item_from_block", 0x23)

	return r
}
