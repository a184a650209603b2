// Package version implements the closed table of supported Minecraft Java
// Edition protocol versions: their wire numbers, humanised names, registry
// "data directory" keys, ordering, and the feature predicates the rest of
// the server branches on.
//
// https://minecraft.wiki/w/Java_Edition_protocol_version
package version

import "fmt"

// ProtocolVersion is a Minecraft Java Edition network protocol number.
// Two sentinel values, Any and Latest, exist outside the real version
// range for use in version-conditional field ranges (internal/packetcodec):
// Any means "no constraint, present on every version"; Latest resolves to
// the highest version this table enumerates.
type ProtocolVersion int32

const (
	// Any matches every version. Used as an open bound in a field's
	// version range to mean "no lower/upper limit".
	Any ProtocolVersion = -1
	// Latest resolves dynamically to the newest version this table
	// enumerates, so new versions don't require updating every call site
	// that means "the current latest".
	Latest ProtocolVersion = -2
)

// The enumerated, supported protocol versions, oldest first. Values are the
// real vanilla wire protocol numbers.
const (
	V1_7_2   ProtocolVersion = 4
	V1_8     ProtocolVersion = 47
	V1_9     ProtocolVersion = 107
	V1_9_1   ProtocolVersion = 108
	V1_9_2   ProtocolVersion = 109
	V1_9_4   ProtocolVersion = 110
	V1_10    ProtocolVersion = 210
	V1_11    ProtocolVersion = 315
	V1_11_1  ProtocolVersion = 316
	V1_12    ProtocolVersion = 335
	V1_12_1  ProtocolVersion = 338
	V1_12_2  ProtocolVersion = 340
	V1_13    ProtocolVersion = 393
	V1_13_1  ProtocolVersion = 401
	V1_13_2  ProtocolVersion = 404
	V1_14    ProtocolVersion = 477
	V1_14_1  ProtocolVersion = 480
	V1_14_2  ProtocolVersion = 485
	V1_14_3  ProtocolVersion = 490
	V1_14_4  ProtocolVersion = 498
	V1_15    ProtocolVersion = 573
	V1_15_1  ProtocolVersion = 575
	V1_15_2  ProtocolVersion = 578
	V1_16    ProtocolVersion = 735
	V1_16_1  ProtocolVersion = 736
	V1_16_2  ProtocolVersion = 751
	V1_16_3  ProtocolVersion = 753
	V1_16_4  ProtocolVersion = 754
	V1_17    ProtocolVersion = 755
	V1_17_1  ProtocolVersion = 756
	V1_18    ProtocolVersion = 757
	V1_18_2  ProtocolVersion = 758
	V1_19    ProtocolVersion = 759
	V1_19_1  ProtocolVersion = 760
	V1_19_3  ProtocolVersion = 761
	V1_19_4  ProtocolVersion = 762
	V1_20    ProtocolVersion = 763
	V1_20_2  ProtocolVersion = 764
	V1_20_3  ProtocolVersion = 765
	V1_20_5  ProtocolVersion = 766
	V1_21    ProtocolVersion = 767
	V1_21_2  ProtocolVersion = 768
	V1_21_4  ProtocolVersion = 769
	V1_21_5  ProtocolVersion = 770
)

// meta carries the static, per-version metadata that doesn't fit in the
// numeric constant itself.
type meta struct {
	name string // humanised label, e.g. "1.20.4"
	data string // data-directory key used to find that version's reports
}

// table is ordered oldest-to-newest; index() below relies on that order
// for the total-order comparisons.
var table = []struct {
	version ProtocolVersion
	meta    meta
}{
	{V1_7_2, meta{"1.7.2", "1.7.2"}},
	{V1_8, meta{"1.8.9", "1.8"}},
	{V1_9, meta{"1.9", "1.9"}},
	{V1_9_1, meta{"1.9.1", "1.9.1"}},
	{V1_9_2, meta{"1.9.2", "1.9.2"}},
	{V1_9_4, meta{"1.9.4", "1.9.4"}},
	{V1_10, meta{"1.10.2", "1.10"}},
	{V1_11, meta{"1.11", "1.11"}},
	{V1_11_1, meta{"1.11.2", "1.11.1"}},
	{V1_12, meta{"1.12", "1.12"}},
	{V1_12_1, meta{"1.12.1", "1.12.1"}},
	{V1_12_2, meta{"1.12.2", "1.12.2"}},
	{V1_13, meta{"1.13", "1.13"}},
	{V1_13_1, meta{"1.13.1", "1.13.1"}},
	{V1_13_2, meta{"1.13.2", "1.13.2"}},
	{V1_14, meta{"1.14", "1.14"}},
	{V1_14_1, meta{"1.14.1", "1.14.1"}},
	{V1_14_2, meta{"1.14.2", "1.14.2"}},
	{V1_14_3, meta{"1.14.3", "1.14.3"}},
	{V1_14_4, meta{"1.14.4", "1.14.4"}},
	{V1_15, meta{"1.15", "1.15"}},
	{V1_15_1, meta{"1.15.1", "1.15.1"}},
	{V1_15_2, meta{"1.15.2", "1.15.2"}},
	{V1_16, meta{"1.16", "1.16"}},
	{V1_16_1, meta{"1.16.1", "1.16.1"}},
	{V1_16_2, meta{"1.16.2", "1.16.2"}},
	{V1_16_3, meta{"1.16.3", "1.16.3"}},
	{V1_16_4, meta{"1.16.5", "1.16.4"}},
	{V1_17, meta{"1.17", "1.17"}},
	{V1_17_1, meta{"1.17.1", "1.17.1"}},
	{V1_18, meta{"1.18.1", "1.18"}},
	{V1_18_2, meta{"1.18.2", "1.18.2"}},
	{V1_19, meta{"1.19", "1.19"}},
	{V1_19_1, meta{"1.19.2", "1.19.1"}},
	{V1_19_3, meta{"1.19.3", "1.19.3"}},
	{V1_19_4, meta{"1.19.4", "1.19.4"}},
	{V1_20, meta{"1.20.1", "1.20"}},
	{V1_20_2, meta{"1.20.2", "1.20.2"}},
	{V1_20_3, meta{"1.20.4", "1.20.3"}},
	{V1_20_5, meta{"1.20.6", "1.20.5"}},
	{V1_21, meta{"1.21.1", "1.21"}},
	{V1_21_2, meta{"1.21.3", "1.21.2"}},
	{V1_21_4, meta{"1.21.4", "1.21.4"}},
	{V1_21_5, meta{"1.21.5", "1.21.5"}},
}

var indexOf = func() map[ProtocolVersion]int {
	m := make(map[ProtocolVersion]int, len(table))
	for i, e := range table {
		m[e.version] = i
	}
	return m
}()

// All returns every supported version, oldest first. Does not include the
// Any/Latest sentinels.
func All() []ProtocolVersion {
	out := make([]ProtocolVersion, len(table))
	for i, e := range table {
		out[i] = e.version
	}
	return out
}

// Supported reports whether v names one of the enumerated versions (Any and
// Latest are not "supported" in this sense — they're codec-path sentinels).
func (v ProtocolVersion) Supported() bool {
	_, ok := indexOf[v]
	return ok
}

// resolve turns the Latest sentinel into the newest real entry; Any and
// ordinary versions pass through unchanged.
func (v ProtocolVersion) resolve() ProtocolVersion {
	if v == Latest {
		return table[len(table)-1].version
	}
	return v
}

// Name returns the humanised version label, e.g. "1.20.4". Unknown or
// sentinel versions render as their raw wire number.
func (v ProtocolVersion) Name() string {
	if i, ok := indexOf[v.resolve()]; ok {
		return table[i].meta.name
	}
	return fmt.Sprintf("protocol %d", int32(v))
}

// DataDirectory returns the key used to locate this version's generated
// `reports/`/`data/` directory at build time.
func (v ProtocolVersion) DataDirectory() string {
	if i, ok := indexOf[v.resolve()]; ok {
		return table[i].meta.data
	}
	return ""
}

func (v ProtocolVersion) String() string {
	switch v {
	case Any:
		return "Any"
	case Latest:
		return "Latest"
	default:
		return v.Name()
	}
}

// index returns this version's position in the ordered table, resolving
// Latest first. ok is false for Any and for any number not in the table,
// and IsAfterInclusive/IsBeforeInclusive then report false.
func (v ProtocolVersion) index() (int, bool) {
	i, ok := indexOf[v.resolve()]
	return i, ok
}

// IsAfterInclusive reports whether v is the same as, or newer than, other.
// Any has no place in the ordered table, so any comparison involving it,
// including Any against Any, reports false; callers that need "no
// constraint" semantics special-case Any before calling.
func (v ProtocolVersion) IsAfterInclusive(other ProtocolVersion) bool {
	vi, vok := v.index()
	oi, ook := other.index()
	if !vok || !ook {
		return false
	}
	return vi >= oi
}

// IsBeforeInclusive reports whether v is the same as, or older than, other.
func (v ProtocolVersion) IsBeforeInclusive(other ProtocolVersion) bool {
	vi, vok := v.index()
	oi, ook := other.index()
	if !vok || !ook {
		return false
	}
	return vi <= oi
}

// InRange reports whether v falls in [lo, hi), treating Any as an open
// bound on either side. This is the predicate internal/packetcodec uses to
// decide whether a version-conditional field is present.
func (v ProtocolVersion) InRange(lo, hi ProtocolVersion) bool {
	if lo != Any && !v.IsAfterInclusive(lo) {
		return false
	}
	if hi != Any {
		// hi is exclusive (half-open [lo, hi)); IsBeforeInclusive would
		// wrongly admit v == hi, so compare indices directly instead.
		vi, _ := v.index()
		hiIdx, ok := hi.index()
		if ok && vi >= hiIdx {
			return false
		}
	}
	return true
}

// Parse looks up a ProtocolVersion by its raw wire number.
func Parse(n int32) (ProtocolVersion, bool) {
	v := ProtocolVersion(n)
	_, ok := indexOf[v]
	return v, ok
}

// SupportsConfigurationState reports whether this version has the
// Configuration connection state between Login and Play (>=1.20.2).
func (v ProtocolVersion) SupportsConfigurationState() bool {
	return v.IsAfterInclusive(V1_20_2)
}

// HasRegistries reports whether this version expects registry/dimension
// codec data during login (>=1.16, when the per-dimension codec was
// introduced).
func (v ProtocolVersion) HasRegistries() bool {
	return v.IsAfterInclusive(V1_16)
}

// SupportsKnownPacks reports whether this version uses the
// ClientBoundKnownPacks negotiation and per-registry RegistryData packets
// (>=1.20.5), rather than a single whole-codec RegistryData.
func (v ProtocolVersion) SupportsKnownPacks() bool {
	return v.IsAfterInclusive(V1_20_5)
}

// SupportsTransfer reports whether this version understands the Transfer
// packet (>=1.20.5).
func (v ProtocolVersion) SupportsTransfer() bool {
	return v.IsAfterInclusive(V1_20_5)
}

// SupportsTaggedRegistries reports whether this version expects tagged
// registry tables alongside registry data. Closest enumerated threshold to
// the feature's introduction.
func (v ProtocolVersion) SupportsTaggedRegistries() bool {
	return v.IsAfterInclusive(V1_21_2)
}

// SupportsProvidedUUID reports whether LoginStart may carry a
// client-supplied UUID that the server should honour (>=1.19.1).
func (v ProtocolVersion) SupportsProvidedUUID() bool {
	return v.IsAfterInclusive(V1_19_1)
}

// SupportsTextComponentNBT reports whether text components serialise as
// NBT on the wire (>=1.20.3); earlier versions use JSON.
func (v ProtocolVersion) SupportsTextComponentNBT() bool {
	return v.IsAfterInclusive(V1_20_3)
}
