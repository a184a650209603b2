package text

import (
	"github.com/go-mclib/limbo/internal/nbt"
	"github.com/go-mclib/limbo/internal/netio"
)

// maxWireLen bounds the JSON encoding of a text component on older clients,
// matching the protocol's general string length cap.
const maxWireLen = 262144

// Encode writes the component to the buffer. Clients at or after 1.20.3
// read text components as network-format NBT; earlier clients read a
// length-prefixed JSON string. asNBT selects which.
func Encode(pb *netio.PacketBuffer, tc TextComponent, asNBT bool) error {
	if asNBT {
		data, err := nbt.EncodeNetwork(tc.ToNBT())
		if err != nil {
			return err
		}
		_, err = pb.Write(data)
		return err
	}

	data, err := tc.ToJSON()
	if err != nil {
		return err
	}
	return pb.WriteString(netio.String(data))
}

// Decode reads a component back out of the buffer using the same
// NBT-or-JSON switch as Encode.
func Decode(pb *netio.PacketBuffer, asNBT bool) (TextComponent, error) {
	if asNBT {
		reader := nbt.NewReaderFrom(pb.Reader(), nbt.WithReaderNamelessRoot(true))
		tag, _, err := reader.ReadTag()
		if err != nil {
			return TextComponent{}, err
		}
		return FromNBT(tag), nil
	}

	s, err := pb.ReadString(maxWireLen)
	if err != nil {
		return TextComponent{}, err
	}
	return FromJSON([]byte(s))
}
