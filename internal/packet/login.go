package packet

import (
	"fmt"

	"github.com/go-mclib/limbo/internal/netio"
	"github.com/go-mclib/limbo/internal/packetcodec"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/text"
	"github.com/go-mclib/limbo/internal/version"
)

// suppliesUUID is the version range where LoginStart itself carries the
// player's UUID (>=1.19.1); earlier versions derive it via EncryptionRequest
// or the offline-UUID rule instead.
var suppliesUUID = packetcodec.From(version.V1_19_1)

// uuidIsBinary marks the >=1.16 split where LoginSuccess's uuid field
// becomes 16 raw bytes instead of a dashed string.
var uuidIsBinary = packetcodec.From(version.V1_16)

// hasProfileProperties is the >=1.19 field adding LoginSuccess's skin/cape
// property list; earlier versions never carry profile properties here.
var hasProfileProperties = packetcodec.From(version.V1_19)

// LoginStart is the serverbound packet opening the Login state.
type LoginStart struct {
	base
	Username string
	UUID     netio.UUID
	HasUUID  bool
}

func NewLoginStart() *LoginStart {
	return &LoginStart{base: base{name: "minecraft:hello", state: packetid.StateLogin, bound: packetid.C2S}}
}

func (p *LoginStart) Read(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	name, err := pb.ReadString(16)
	if err != nil {
		return fmt.Errorf("login_start: username: %w", err)
	}
	p.Username = string(name)
	if suppliesUUID.Present(v) {
		id, err := pb.ReadUUID()
		if err != nil {
			return fmt.Errorf("login_start: uuid: %w", err)
		}
		p.UUID = id
		p.HasUUID = true
	}
	return nil
}

func (p *LoginStart) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if err := pb.WriteString(netio.String(p.Username)); err != nil {
		return err
	}
	if suppliesUUID.Present(v) {
		return pb.WriteUUID(p.UUID)
	}
	return nil
}

// SetCompression switches the stream's compression on, above threshold.
type SetCompression struct {
	base
	Threshold int32
}

func NewSetCompression(threshold int32) *SetCompression {
	return &SetCompression{base: base{name: "minecraft:login_compression", state: packetid.StateLogin, bound: packetid.S2C}, Threshold: threshold}
}

func (p *SetCompression) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	v, err := pb.ReadVarInt()
	p.Threshold = int32(v)
	return err
}

func (p *SetCompression) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return pb.WriteVarInt(netio.VarInt(p.Threshold))
}

// LoginSuccessProperty is one entry of a LoginSuccess's property list
// (skin textures, etc).
type LoginSuccessProperty struct {
	Name      string
	Value     string
	Signature string
	HasSig    bool
}

// LoginSuccess completes Login: the server's chosen uuid/name for the
// session plus any profile properties.
type LoginSuccess struct {
	base
	UUID       netio.UUID
	Username   string
	Properties []LoginSuccessProperty
}

func NewLoginSuccess(id netio.UUID, username string, props []LoginSuccessProperty) *LoginSuccess {
	return &LoginSuccess{
		base:       base{name: "minecraft:login_finished", state: packetid.StateLogin, bound: packetid.S2C},
		UUID:       id,
		Username:   username,
		Properties: props,
	}
}

func (p *LoginSuccess) Read(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	var id netio.UUID
	if uuidIsBinary.Present(v) {
		decoded, err := pb.ReadUUID()
		if err != nil {
			return fmt.Errorf("login_success: uuid: %w", err)
		}
		id = decoded
	} else {
		s, err := pb.ReadString(36)
		if err != nil {
			return fmt.Errorf("login_success: uuid: %w", err)
		}
		decoded, err := netio.ParseUUID(string(s))
		if err != nil {
			return fmt.Errorf("login_success: uuid: %w", err)
		}
		id = decoded
	}

	name, err := pb.ReadString(16)
	if err != nil {
		return fmt.Errorf("login_success: username: %w", err)
	}

	var props []LoginSuccessProperty
	if hasProfileProperties.Present(v) {
		count, err := pb.ReadVarInt()
		if err != nil {
			return fmt.Errorf("login_success: property count: %w", err)
		}
		props = make([]LoginSuccessProperty, count)
		for i := range props {
			n, err := pb.ReadString(0)
			if err != nil {
				return fmt.Errorf("login_success: property %d name: %w", i, err)
			}
			val, err := pb.ReadString(0)
			if err != nil {
				return fmt.Errorf("login_success: property %d value: %w", i, err)
			}
			hasSig, err := pb.ReadBool()
			if err != nil {
				return fmt.Errorf("login_success: property %d has-signature: %w", i, err)
			}
			prop := LoginSuccessProperty{Name: string(n), Value: string(val), HasSig: bool(hasSig)}
			if prop.HasSig {
				sig, err := pb.ReadString(0)
				if err != nil {
					return fmt.Errorf("login_success: property %d signature: %w", i, err)
				}
				prop.Signature = string(sig)
			}
			props[i] = prop
		}
	}

	p.UUID = id
	p.Username = string(name)
	p.Properties = props
	return nil
}

func (p *LoginSuccess) Write(pb *netio.PacketBuffer, v version.ProtocolVersion) error {
	if uuidIsBinary.Present(v) {
		if err := pb.WriteUUID(p.UUID); err != nil {
			return err
		}
	} else if err := pb.WriteString(netio.String(p.UUID.String())); err != nil {
		return err
	}

	if err := pb.WriteString(netio.String(p.Username)); err != nil {
		return err
	}

	if !hasProfileProperties.Present(v) {
		return nil
	}

	if err := pb.WriteVarInt(netio.VarInt(len(p.Properties))); err != nil {
		return err
	}
	for _, prop := range p.Properties {
		if err := pb.WriteString(netio.String(prop.Name)); err != nil {
			return err
		}
		if err := pb.WriteString(netio.String(prop.Value)); err != nil {
			return err
		}
		if err := pb.WriteBool(netio.Boolean(prop.HasSig)); err != nil {
			return err
		}
		if prop.HasSig {
			if err := pb.WriteString(netio.String(prop.Signature)); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoginAcknowledged is the serverbound acknowledgement that moves the
// connection from Login into Configuration.
type LoginAcknowledged struct{ base }

func NewLoginAcknowledged() *LoginAcknowledged {
	return &LoginAcknowledged{base{name: "minecraft:login_acknowledged", state: packetid.StateLogin, bound: packetid.C2S}}
}

func (p *LoginAcknowledged) Read(_ *netio.PacketBuffer, _ version.ProtocolVersion) error  { return nil }
func (p *LoginAcknowledged) Write(_ *netio.PacketBuffer, _ version.ProtocolVersion) error { return nil }

// LoginDisconnect ends the connection during Login with a reason.
type LoginDisconnect struct {
	base
	Reason text.TextComponent
}

func NewLoginDisconnect(reason text.TextComponent) *LoginDisconnect {
	return &LoginDisconnect{base: base{name: "minecraft:login_disconnect", state: packetid.StateLogin, bound: packetid.S2C}, Reason: reason}
}

func (p *LoginDisconnect) Read(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	// LoginDisconnect's reason is always JSON text, independent of version
	// (unlike Play's Disconnect, which switches to NBT text on >=1.20.3).
	tc, err := text.Decode(pb, false)
	p.Reason = tc
	return err
}

func (p *LoginDisconnect) Write(pb *netio.PacketBuffer, _ version.ProtocolVersion) error {
	return text.Encode(pb, p.Reason, false)
}
