package partition

import "github.com/dpedroso/pertsim/agent"

// BuildExchangeMaps populates byTypePair and byRankPair from the contact
// edge list (spec.md §4.8). Same-type edges are suppressed unless
// sameTypeCommunication is set. Edges whose type is not part of this plan
// fail with ErrUnknownType.
//
// granularity controls whether virtual node names carry the specific peer
// node (typeAndNode) or only the peer type (type), matching how the agents
// on either side of the exchange were themselves augmented (spec.md §4.6).
//
// For each surviving edge, the source agent's virtual-output node is named
// by the destination side (the peer it sends to), and the destination
// agent's virtual-input node is named by the source side (the peer it
// receives from) — both built with agent.VirtualName, the sole naming
// authority (spec.md §4.7).
func (p *Plan) BuildExchangeMaps(edges []ContactEdge, granularity agent.Granularity, sameTypeCommunication bool) error {
	for _, e := range edges {
		if e.SrcType == e.DstType && !sameTypeCommunication {
			continue
		}
		srcRank, ok := p.workerOf[e.SrcType]
		if !ok {
			return ErrUnknownType(e.SrcType)
		}
		dstRank, ok := p.workerOf[e.DstType]
		if !ok {
			return ErrUnknownType(e.DstType)
		}

		dstNode, srcNode := "", ""
		if granularity == agent.GranularityTypeAndNode {
			dstNode, srcNode = e.DstNode, e.SrcNode
		}
		vout := agent.VirtualName(agent.DirOut, e.DstType, dstNode)
		vin := agent.VirtualName(agent.DirIn, e.SrcType, srcNode)
		pair := VirtualPair{VOutName: vout, VInName: vin}

		typePair := TypePair{Source: e.SrcType, Dest: e.DstType}
		p.byTypePair[typePair] = append(p.byTypePair[typePair], pair)

		rankPair := RankPair{Source: srcRank, Dest: dstRank}
		p.byRankPair[rankPair] = append(p.byRankPair[rankPair], pair)
	}
	return nil
}
