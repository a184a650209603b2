package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetcodec"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/version"
)

// legacyDimensionIsInt32 matches the i8-pre-1.9.1/i32-thereafter split a
// pre-1.16 Login's numeric dimension field uses.
var legacyDimensionIsInt32 = packetcodec.From(version.V1_9_1)

// dimensionTypeIsIndex marks the >=1.20.5 split where dimension_type
// becomes a VarInt registry index instead of an Identifier string.
var dimensionTypeIsIndex = packetcodec.From(version.V1_20_5)

// hasSeaLevel is the >=1.21.2 field the post-1.20.2 Login shape adds.
var hasSeaLevel = packetcodec.From(version.V1_21_2)

// hasSecureChatEnforcement is the >=1.20.5 field the post-1.20.2 Login
// shape adds.
var hasSecureChatEnforcement = packetcodec.From(version.V1_20_5)

// Legacy numeric dimension ids, used only by pre-1.16 clients whose Login
// and chunk packets still identify dimensions by a signed byte/int rather
// than an Identifier.
const (
	LegacyDimensionOverworld int8 = 0
	LegacyDimensionNether    int8 = -1
	LegacyDimensionEnd       int8 = 1
)

// Login (clientbound) is the first Play-state packet: it hands the client
// its entity id and world parameters. The wire shape changed three times
// across the versions this server supports (pre-1.16, 1.16-1.20.1,
// >=1.20.2), so Write picks one of three encoders by version; fields not
// applicable to the negotiated shape are simply never read.
type Login struct {
	base
	EntityID            int32
	GameMode            byte
	IsHardcore          bool
	Dimension           string // e.g. "minecraft:overworld": dimension_name/world_name, and (pre-1.20.5) the dimension_type identifier
	LegacyDimensionID   int8   // numeric id for pre-1.16 clients: see LegacyDimension* consts
	DimensionTypeIndex  int32  // dimension_type registry index, >=1.20.5 only
	MaxPlayers          int32
	ViewDistance        int32
	SimulationDistance  int32
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
	DoLimitedCrafting   bool
	IsDebug             bool
	IsFlat              bool
	HashedSeed          int64
	PortalCooldown      int32
	SeaLevel            int32
	// RegistryCodecBytes and DimensionCodecBytes are pre-encoded NBT blobs
	// the caller must supply for clients old enough to receive their
	// registries inline in Login rather than during a separate
	// Configuration state (<1.20.2, i.e. every version Write branches to
	// writePostV1_16 or writePreV1_16's successor). RegistryCodecBytes
	// holds the 1.16/1.16.1 bare dimension list or the 1.16.2-1.20.1
	// whole-codec blob; DimensionCodecBytes additionally holds the
	// 1.16.2-1.18.2 single-dimension codec blob layered on top of it.
	RegistryCodecBytes  []byte
	DimensionCodecBytes []byte
}

func NewLogin() *Login {
	return &Login{base: base{name: "minecraft:login", state: packetid.StatePlay, bound: packetid.S2C}}
}

// Write picks the Login shape the connecting version actually expects,
// grounded on the three historical variants (PreV1_16Data, PostV1_16Data,
// PostV1_20_2Data).
func (p *Login) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if err := pb.WriteInt32(netio.Int32(p.EntityID)); err != nil {
		return err
	}
	switch {
	case v.IsAfterInclusive(version.V1_20_2):
		return p.writePostV1_20_2(pb, v)
	case v.IsAfterInclusive(version.V1_16):
		return p.writePostV1_16(pb, v)
	default:
		return p.writePreV1_16(pb, v)
	}
}

// writePreV1_16 covers every version up to 1.15.2: no registries, no
// Configuration state, a legacy numeric dimension id, and a hardcoded
// "default" level type (this server never advertises alternate level
// generator types).
func (p *Login) writePreV1_16(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	gameMode := p.GameMode
	if p.IsHardcore {
		gameMode |= 0x8
	}
	if err := pb.WriteUint8(netio.Uint8(gameMode)); err != nil {
		return err
	}
	if legacyDimensionIsInt32.Present(v) {
		if err := pb.WriteInt32(netio.Int32(int32(p.LegacyDimensionID))); err != nil {
			return err
		}
	} else if err := pb.WriteInt8(netio.Int8(p.LegacyDimensionID)); err != nil {
		return err
	}
	if v.IsAfterInclusive(version.V1_15) {
		if err := pb.WriteInt64(netio.Int64(p.HashedSeed)); err != nil {
			return err
		}
	}
	if !v.IsAfterInclusive(version.V1_14) { // i.e. v < 1.14
		if err := pb.WriteUint8(0); err != nil { // difficulty: peaceful
			return err
		}
	}
	if err := pb.WriteUint8(netio.Uint8(byte(p.MaxPlayers))); err != nil {
		return err
	}
	if err := pb.WriteString("default"); err != nil { // level_type
		return err
	}
	if v.IsAfterInclusive(version.V1_14) {
		if err := pb.WriteVarInt(netio.VarInt(p.ViewDistance)); err != nil {
			return err
		}
	}
	if v.IsAfterInclusive(version.V1_8) {
		if err := pb.WriteBool(netio.Boolean(p.ReducedDebugInfo)); err != nil {
			return err
		}
	}
	if v.IsAfterInclusive(version.V1_15) {
		return pb.WriteBool(netio.Boolean(p.EnableRespawnScreen))
	}
	return nil
}

// writePostV1_16 covers 1.16 up to 1.20.1: a shared whole-codec or
// bare-dimension-list registry blob shipped inline in Login, an
// Identifier-typed dimension, and the 1.16/1.16.1-only hardcore bit baked
// into game_mode.
func (p *Login) writePostV1_16(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if v.IsAfterInclusive(version.V1_16_2) {
		if err := pb.WriteBool(netio.Boolean(p.IsHardcore)); err != nil {
			return err
		}
	}
	gameMode := p.GameMode
	if p.IsHardcore && !v.IsAfterInclusive(version.V1_16_2) {
		gameMode |= 0x8
	}
	if err := pb.WriteUint8(netio.Uint8(gameMode)); err != nil {
		return err
	}
	if err := pb.WriteInt8(netio.Int8(-1)); err != nil { // previous_game_mode, unused
		return err
	}
	if err := pb.WriteVarInt(1); err != nil { // dimension_names count
		return err
	}
	if err := pb.WriteString(netio.String(p.Dimension)); err != nil {
		return err
	}
	if _, err := pb.Write(p.RegistryCodecBytes); err != nil {
		return err
	}
	if v.InRange(version.V1_16_2, version.V1_19) {
		if _, err := pb.Write(p.DimensionCodecBytes); err != nil {
			return err
		}
	}
	if v.IsAfterInclusive(version.V1_19) {
		if err := pb.WriteString(netio.String(p.Dimension)); err != nil { // v1_19_dimension_type
			return err
		}
	}
	if !v.IsAfterInclusive(version.V1_16_2) { // 1.16/1.16.1 only
		if err := pb.WriteString(netio.String(p.Dimension)); err != nil { // dimension_name
			return err
		}
	}
	if err := pb.WriteString(netio.String(p.Dimension)); err != nil { // world_name
		return err
	}
	if err := pb.WriteInt64(netio.Int64(p.HashedSeed)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(p.MaxPlayers)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(p.ViewDistance)); err != nil {
		return err
	}
	if v.IsAfterInclusive(version.V1_18) {
		if err := pb.WriteVarInt(netio.VarInt(p.SimulationDistance)); err != nil {
			return err
		}
	}
	if err := pb.WriteBool(netio.Boolean(p.ReducedDebugInfo)); err != nil {
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.EnableRespawnScreen)); err != nil {
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.IsDebug)); err != nil {
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.IsFlat)); err != nil {
		return err
	}
	if v.IsAfterInclusive(version.V1_19) {
		if err := pb.WriteBool(false); err != nil { // has_death_location
			return err
		}
	}
	if v.IsAfterInclusive(version.V1_20) {
		return pb.WriteVarInt(netio.VarInt(p.PortalCooldown))
	}
	return nil
}

// writePostV1_20_2 covers >=1.20.2: registries moved to their own
// Configuration-state packets, so Login carries only a dimension_type
// reference - an Identifier below 1.20.5, a registry index from 1.20.5
// onward.
func (p *Login) writePostV1_20_2(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if err := pb.WriteBool(netio.Boolean(p.IsHardcore)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(1); err != nil { // dimension_names count
		return err
	}
	if err := pb.WriteString(netio.String(p.Dimension)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(p.MaxPlayers)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(p.ViewDistance)); err != nil {
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(p.SimulationDistance)); err != nil {
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.ReducedDebugInfo)); err != nil {
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.EnableRespawnScreen)); err != nil {
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.DoLimitedCrafting)); err != nil {
		return err
	}
	if dimensionTypeIsIndex.Present(v) {
		if err := pb.WriteVarInt(netio.VarInt(p.DimensionTypeIndex)); err != nil {
			return err
		}
	} else if err := pb.WriteString(netio.String(p.Dimension)); err != nil {
		return err
	}
	if err := pb.WriteString(netio.String(p.Dimension)); err != nil { // dimension_name
		return err
	}
	if err := pb.WriteInt64(netio.Int64(p.HashedSeed)); err != nil {
		return err
	}
	if err := pb.WriteUint8(netio.Uint8(p.GameMode)); err != nil {
		return err
	}
	if err := pb.WriteInt8(netio.Int8(-1)); err != nil { // previous_game_mode, unused
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.IsDebug)); err != nil {
		return err
	}
	if err := pb.WriteBool(netio.Boolean(p.IsFlat)); err != nil {
		return err
	}
	if err := pb.WriteBool(false); err != nil { // has_death_location
		return err
	}
	if err := pb.WriteVarInt(netio.VarInt(p.PortalCooldown)); err != nil {
		return err
	}
	if hasSeaLevel.Present(v) {
		if err := pb.WriteVarInt(netio.VarInt(p.SeaLevel)); err != nil {
			return err
		}
	}
	if hasSecureChatEnforcement.Present(v) {
		return pb.WriteBool(true) // enforces_secure_chat
	}
	return nil
}

func (p *Login) Read(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	return fmt.Errorf("login: decode not supported, clientbound-only")
}

// SetDefaultSpawnPosition (>=1.19) tells the client the world's spawn.
type SetDefaultSpawnPosition struct {
	base
	Position netio.Position
	Angle    float32
}

func NewSetDefaultSpawnPosition(pos netio.Position) *SetDefaultSpawnPosition {
	return &SetDefaultSpawnPosition{base: base{name: "minecraft:set_default_spawn_position", state: packetid.StatePlay, bound: packetid.S2C}, Position: pos}
}

func (p *SetDefaultSpawnPosition) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	pos, err := pb.ReadPosition()
	if err != nil {
		return err
	}
	angle, err := pb.ReadFloat32()
	p.Position = pos
	p.Angle = float32(angle)
	return err
}

func (p *SetDefaultSpawnPosition) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WritePosition(p.Position); err != nil {
		return err
	}
	return pb.WriteFloat32(netio.Float32(p.Angle))
}

// hasTeleportID is the >=1.9 field this packet's teleport confirmation
// handshake depends on; 1.8.9 and earlier end the packet at the flags byte.
var hasTeleportID = packetcodec.From(version.V1_9)

// SynchronizePlayerPosition teleports the client to its starting position.
// The wire shape changed twice: no teleport_id before 1.9, and a full
// restructure from 1.21.2 onward that moves teleport_id first and adds a
// velocity vector.
type SynchronizePlayerPosition struct {
	base
	X, Y, Z    float64
	VX, VY, VZ float64 // velocity, >=1.21.2 only
	Yaw, Pitch float32
	Flags      byte
	TeleportID int32
}

func NewSynchronizePlayerPosition(x, y, z float64, yaw, pitch float32) *SynchronizePlayerPosition {
	return &SynchronizePlayerPosition{
		base: base{name: "minecraft:player_position", state: packetid.StatePlay, bound: packetid.S2C},
		X: x, Y: y, Z: z, Yaw: yaw, Pitch: pitch,
	}
}

func (p *SynchronizePlayerPosition) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("player_position: decode not supported, clientbound-only")
}

func (p *SynchronizePlayerPosition) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if v.IsAfterInclusive(version.V1_21_2) {
		return p.writePostV1_21_2(pb)
	}

	if err := pb.WriteFloat64(netio.Float64(p.X)); err != nil {
		return err
	}
	if err := pb.WriteFloat64(netio.Float64(p.Y)); err != nil {
		return err
	}
	if err := pb.WriteFloat64(netio.Float64(p.Z)); err != nil {
		return err
	}
	if err := pb.WriteFloat32(netio.Float32(p.Yaw)); err != nil {
		return err
	}
	if err := pb.WriteFloat32(netio.Float32(p.Pitch)); err != nil {
		return err
	}
	if err := pb.WriteUint8(netio.Uint8(p.Flags)); err != nil {
		return err
	}
	if hasTeleportID.Present(v) {
		return pb.WriteVarInt(netio.VarInt(p.TeleportID))
	}
	return nil
}

// writePostV1_21_2 encodes the restructured >=1.21.2 shape: teleport_id
// first, then position, a new velocity vector, yaw/pitch, and flags widened
// from a byte to an i32 bitfield.
func (p *SynchronizePlayerPosition) writePostV1_21_2(pb *netio.PacketBuffer) error {
	if err := pb.WriteVarInt(netio.VarInt(p.TeleportID)); err != nil {
		return err
	}
	if err := pb.WriteFloat64(netio.Float64(p.X)); err != nil {
		return err
	}
	if err := pb.WriteFloat64(netio.Float64(p.Y)); err != nil {
		return err
	}
	if err := pb.WriteFloat64(netio.Float64(p.Z)); err != nil {
		return err
	}
	if err := pb.WriteFloat64(netio.Float64(p.VX)); err != nil {
		return err
	}
	if err := pb.WriteFloat64(netio.Float64(p.VY)); err != nil {
		return err
	}
	if err := pb.WriteFloat64(netio.Float64(p.VZ)); err != nil {
		return err
	}
	if err := pb.WriteFloat32(netio.Float32(p.Yaw)); err != nil {
		return err
	}
	if err := pb.WriteFloat32(netio.Float32(p.Pitch)); err != nil {
		return err
	}
	return pb.WriteInt32(netio.Int32(int32(p.Flags)))
}

// Commands sends an empty command graph (a single root node with no
// children) - enough for the client to stop expecting one, without this
// server implementing brigadier-style command parsing.
type Commands struct{ base }

func NewCommands() *Commands {
	return &Commands{base{name: "minecraft:commands", state: packetid.StatePlay, bound: packetid.S2C}}
}

func (p *Commands) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("commands: decode not supported, clientbound-only")
}

func (p *Commands) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteVarInt(1); err != nil { // node count
		return err
	}
	if err := pb.WriteUint8(0x00); err != nil { // root node flags: no type bits set = root
		return err
	}
	if err := pb.WriteVarInt(0); err != nil { // no children
		return err
	}
	return pb.WriteVarInt(0) // root index
}

// GameEvent fires a world-state transition such as StartWaitingForChunks.
type GameEvent struct {
	base
	Event byte
	Value float32
}

const GameEventStartWaitingForChunks byte = 13

func NewGameEvent(event byte, value float32) *GameEvent {
	return &GameEvent{base: base{name: "minecraft:game_event", state: packetid.StatePlay, bound: packetid.S2C}, Event: event, Value: value}
}

func (p *GameEvent) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	ev, err := pb.ReadUint8()
	if err != nil {
		return err
	}
	val, err := pb.ReadFloat32()
	p.Event = byte(ev)
	p.Value = float32(val)
	return err
}

func (p *GameEvent) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteUint8(netio.Uint8(p.Event)); err != nil {
		return err
	}
	return pb.WriteFloat32(netio.Float32(p.Value))
}

// UpdateTime (spec calls it UpdateTime; vanilla's internal name is
// set_time) advances the client's day/night cycle clock.
type UpdateTime struct {
	base
	WorldAge      int64
	TimeOfDay     int64
	DaylightCycle bool
}

func NewUpdateTime(worldAge, timeOfDay int64, daylightCycle bool) *UpdateTime {
	tod := timeOfDay
	if !daylightCycle {
		// Vanilla stops the client-side clock by negating time_of_day.
		tod = -timeOfDay
		if tod == 0 {
			tod = -1
		}
	}
	return &UpdateTime{
		base:          base{name: "minecraft:set_time", state: packetid.StatePlay, bound: packetid.S2C},
		WorldAge:      worldAge,
		TimeOfDay:     tod,
		DaylightCycle: daylightCycle,
	}
}

func (p *UpdateTime) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return fmt.Errorf("set_time: decode not supported, clientbound-only")
}

func (p *UpdateTime) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	if err := pb.WriteInt64(netio.Int64(p.WorldAge)); err != nil {
		return err
	}
	return pb.WriteInt64(netio.Int64(p.TimeOfDay))
}
