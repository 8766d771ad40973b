package exchange

import "github.com/cpmech/gosl/chk"

// ErrUnknownType reports a contact edge naming a type absent from the plan.
func ErrUnknownType(typ string) error {
	return chk.Err("exchange: contact edge names unknown type %q", typ)
}

// ErrLocalAgentMissing reports that this worker was asked to read from or
// write to an agent type it does not locally own.
func ErrLocalAgentMissing(typ string) error {
	return chk.Err("exchange: worker does not locally own agent type %q", typ)
}
