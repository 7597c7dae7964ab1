package losses

import (
	"fmt"

	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Reduction selects how an element-wise loss collapses to its final value.
type Reduction string

// Supported reductions.
const (
	ReductionNone Reduction = "none" // keep the element-wise loss tensor
	ReductionMean Reduction = "mean" // average over all elements
	ReductionSum  Reduction = "sum"  // sum over all elements
)

// L2 computes the squared-error loss between pred and target.
//
// The element-wise loss is (pred - target)²; reduction selects the final
// form. ReductionNone preserves the input shape, ReductionMean and
// ReductionSum yield a scalar tensor of shape {1}.
func L2[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	if !pred.Shape().Equal(target.Shape()) {
		return nil, fmt.Errorf("losses: pred shape %v does not match target shape %v", pred.Shape(), target.Shape())
	}

	diff := pred.Sub(target)
	loss := diff.Mul(diff)

	switch reduction {
	case ReductionNone:
		return loss, nil
	case ReductionSum:
		return loss.Sum(), nil
	case ReductionMean:
		return loss.Mean(), nil
	default:
		return nil, fmt.Errorf("losses: unsupported reduction %q", reduction)
	}
}
