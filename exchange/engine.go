package exchange

import (
	"github.com/dpedroso/pertsim/agent"
	"github.com/dpedroso/pertsim/partition"
	"github.com/dpedroso/pertsim/transport"
)

// item is one contact edge resolved against the partition plan: which rank
// it originates and lands on, and the names the two endpoint agents already
// carry on their augmented graphs for it.
type item struct {
	srcType, dstType string
	srcNode, dstNode string
	contactTimes     []float64
	srcRank, dstRank int
}

// Engine drives the boundary exchange protocol for one worker: post_recv
// for every rank that sends to it, pack and send its own outgoing values,
// then wait and gate-test every incoming value before writing it into the
// destination agent's virtual input.
type Engine struct {
	granularity agent.Granularity
	mode        Mode
	transport   transport.Transport
	rank        int
	byRankPair  map[partition.RankPair][]item
}

// NewEngine resolves edges against plan once, grouping them by the rank
// pair that will carry them. sameTypeCommunication mirrors
// partition.Plan.BuildExchangeMaps: same-type contact edges are dropped
// unless explicitly enabled.
func NewEngine(plan *partition.Plan, edges []partition.ContactEdge, granularity agent.Granularity, mode Mode, sameTypeCommunication bool, tr transport.Transport) (*Engine, error) {
	e := &Engine{
		granularity: granularity,
		mode:        mode,
		transport:   tr,
		rank:        tr.Rank(),
		byRankPair:  make(map[partition.RankPair][]item),
	}
	for _, edge := range edges {
		if edge.SrcType == edge.DstType && !sameTypeCommunication {
			continue
		}
		srcRank, ok := plan.RankOf(edge.SrcType)
		if !ok {
			return nil, ErrUnknownType(edge.SrcType)
		}
		dstRank, ok := plan.RankOf(edge.DstType)
		if !ok {
			return nil, ErrUnknownType(edge.DstType)
		}
		pair := partition.RankPair{Source: srcRank, Dest: dstRank}
		e.byRankPair[pair] = append(e.byRankPair[pair], item{
			srcType:      edge.SrcType,
			dstType:      edge.DstType,
			srcNode:      edge.SrcNode,
			dstNode:      edge.DstNode,
			contactTimes: edge.ContactTimes,
			srcRank:      srcRank,
			dstRank:      dstRank,
		})
	}
	return e, nil
}

// nodeArg resolves the peer-node argument expected by the agent package's
// virtual accessors: empty at type granularity (nodes carry no suffix),
// the specific node at typeAndNode granularity.
func (e *Engine) nodeArg(node string) string {
	if e.granularity == agent.GranularityTypeAndNode {
		return node
	}
	return ""
}

func (e *Engine) gather(items []item, locals map[string]*agent.Computation) ([]float64, error) {
	vals := make([]float64, len(items))
	for i, it := range items {
		c, ok := locals[it.srcType]
		if !ok {
			return nil, ErrLocalAgentMissing(it.srcType)
		}
		v, err := c.GetVirtualOutputForType(it.dstType, e.nodeArg(it.dstNode))
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (e *Engine) deliver(items []item, outer int, dt float64, locals map[string]*agent.Computation, vals []float64) error {
	lo := float64(outer) * dt
	hi := float64(outer+1) * dt
	for i, it := range items {
		count := countInInterval(it.contactTimes, lo, hi)
		if count == 0 {
			continue
		}
		value := vals[i]
		if e.mode == ModeMultiple {
			value *= float64(count)
		}
		c, ok := locals[it.dstType]
		if !ok {
			return ErrLocalAgentMissing(it.dstType)
		}
		if err := c.SetInputVinForType(it.srcType, value, e.nodeArg(it.srcNode)); err != nil {
			return err
		}
	}
	return nil
}

// Run executes one outer tick's exchange: post every receive this worker
// expects, send every outgoing message, then wait for and gate-deliver
// every incoming one. Same-rank edges are delivered directly with no
// transport hop. If resetVirtualOutputs is set, every local agent's
// virtual-output entries are zeroed after the round completes.
func (e *Engine) Run(outer int, dt float64, locals map[string]*agent.Computation, resetVirtualOutputs bool) error {
	type pending struct {
		srcRank int
		handle  transport.Handle
	}
	var waiting []pending

	for pair, items := range e.byRankPair {
		if pair.Dest == e.rank && pair.Source != e.rank && len(items) > 0 {
			h, err := e.transport.PostRecv(pair.Source, len(items))
			if err != nil {
				return err
			}
			waiting = append(waiting, pending{srcRank: pair.Source, handle: h})
		}
	}

	for pair, items := range e.byRankPair {
		if pair.Source == e.rank && pair.Dest != e.rank && len(items) > 0 {
			vals, err := e.gather(items, locals)
			if err != nil {
				return err
			}
			if err := e.transport.Send(pair.Dest, vals); err != nil {
				return err
			}
		}
	}

	if items, ok := e.byRankPair[partition.RankPair{Source: e.rank, Dest: e.rank}]; ok && len(items) > 0 {
		vals, err := e.gather(items, locals)
		if err != nil {
			return err
		}
		if err := e.deliver(items, outer, dt, locals, vals); err != nil {
			return err
		}
	}

	for _, p := range waiting {
		vals, err := e.transport.Wait(p.handle)
		if err != nil {
			return err
		}
		items := e.byRankPair[partition.RankPair{Source: p.srcRank, Dest: e.rank}]
		if err := e.deliver(items, outer, dt, locals, vals); err != nil {
			return err
		}
	}

	if resetVirtualOutputs {
		for _, c := range locals {
			c.ResetVirtualOutputs()
		}
	}
	return nil
}
