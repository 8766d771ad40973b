package agent

import "strings"

// Direction tags a virtual node as the receiving or sending end of a
// boundary exchange (spec.md §4.7).
type Direction string

const (
	DirIn  Direction = "v-in"
	DirOut Direction = "v-out"
)

// VirtualName builds the deterministic name of a virtual node:
// "v-in:<peerType>" or "v-in:<peerType>_<peerNode>", same for v-out.
// Callers must not construct virtual-node names any other way (spec.md §4.7).
func VirtualName(dir Direction, peerType, peerNode string) string {
	if peerNode == "" {
		return string(dir) + ":" + peerType
	}
	return string(dir) + ":" + peerType + "_" + peerNode
}

// ParseVirtualName splits a virtual node name into its direction, peer type,
// and optional peer node. Fails with ErrMalformedVirtualName if name does not
// match v-<dir>:<type>[_<node>], or ErrUnknownVirtualDirection if the
// direction token is neither v-in nor v-out.
func ParseVirtualName(name string) (dir Direction, peerType, peerNode string, err error) {
	colon := strings.IndexByte(name, ':')
	if colon < 0 {
		return "", "", "", ErrMalformedVirtualName(name)
	}
	head, rest := name[:colon], name[colon+1:]
	switch Direction(head) {
	case DirIn, DirOut:
		dir = Direction(head)
	default:
		return "", "", "", ErrUnknownVirtualDirection(head)
	}
	if rest == "" {
		return "", "", "", ErrMalformedVirtualName(name)
	}
	if idx := strings.IndexByte(rest, '_'); idx >= 0 {
		peerType = rest[:idx]
		peerNode = rest[idx+1:]
	} else {
		peerType = rest
	}
	if peerType == "" {
		return "", "", "", ErrMalformedVirtualName(name)
	}
	return dir, peerType, peerNode, nil
}

// IsVirtual reports whether name was built by VirtualName (i.e. it parses
// without error).
func IsVirtual(name string) bool {
	_, _, _, err := ParseVirtualName(name)
	return err == nil
}
