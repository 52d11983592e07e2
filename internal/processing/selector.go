package processing

import (
	"fmt"

	"onboard/pkg/domain"
)

// Selector maps a product code to its pre-wired strategy. Strategies are
// resolved once at composition time; collaborators are injected explicitly
// rather than pulled from any process-wide registry.
type Selector struct {
	strategies map[domain.ProductCode]Strategy
}

func NewSelector(productOne, productTwo Strategy) *Selector {
	return &Selector{
		strategies: map[domain.ProductCode]Strategy{
			domain.ProductOne: productOne,
			domain.ProductTwo: productTwo,
		},
	}
}

// Strategy returns the strategy for the given product code. An unknown code
// means the composition root forgot to wire a product; that is a
// configuration defect, not a business outcome, so it panics rather than
// degrading silently.
func (s *Selector) Strategy(code domain.ProductCode) Strategy {
	strategy, ok := s.strategies[code]
	if !ok {
		panic(fmt.Sprintf("processing: no strategy wired for product code %q", code))
	}
	return strategy
}
