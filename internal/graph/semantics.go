// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"fmt"

	"github.com/rkovacs/argmap/pkg/types"
)

// checkSemantics enforces kind compatibility between an edge and its
// endpoints:
//
//	supports, contradicts: Evidence -> Claim
//	depends-on:            Claim -> Assumption
//	implies:               Claim -> Claim
//
// These rules reject some graphs the extraction service would otherwise
// be allowed to produce, so they run only when Options.Semantic is set.
// Callers must have run the integrity checks first; every endpoint id is
// assumed to resolve.
func checkSemantics(g *types.ReasoningGraph) error {
	kinds := make(map[string]types.NodeKind, len(g.Nodes))
	for _, n := range g.Nodes {
		kinds[n.ID] = n.Kind
	}

	for _, e := range g.Edges {
		s, t := kinds[e.Source], kinds[e.Target]
		switch e.Kind {
		case types.EdgeSupports, types.EdgeContradicts:
			if s != types.KindEvidence || t != types.KindClaim {
				return semanticErr(e, "Evidence -> Claim", s, t)
			}
		case types.EdgeDependsOn:
			if s != types.KindClaim || t != types.KindAssumption {
				return semanticErr(e, "Claim -> Assumption", s, t)
			}
		case types.EdgeImplies:
			if s != types.KindClaim || t != types.KindClaim {
				return semanticErr(e, "Claim -> Claim", s, t)
			}
		}
	}
	return nil
}

func semanticErr(e types.Edge, want string, s, t types.NodeKind) error {
	return fmt.Errorf("%w: %s should run %s, got %s -> %s", ErrSemanticViolation, e.Kind, want, s, t)
}
