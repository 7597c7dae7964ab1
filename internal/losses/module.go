package losses

import (
	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// The struct forms below wrap the plain loss functions for callers that hold
// a criterion and feed it batches, mirroring how training loops consume loss
// modules. Each Forward returns a scalar tensor of shape {1}.

// L2Loss computes squared-error loss with a fixed reduction.
//
// Example:
//
//	criterion := losses.NewL2Loss[float64](backend, losses.ReductionMean)
//	loss, err := criterion.Forward(predictions, targets)
type L2Loss[T tensor.Float, B tensor.Backend] struct {
	backend   B
	reduction Reduction
}

// NewL2Loss creates a new L2 loss module. An empty reduction defaults to mean.
func NewL2Loss[T tensor.Float, B tensor.Backend](backend B, reduction Reduction) *L2Loss[T, B] {
	if reduction == "" {
		reduction = ReductionMean
	}
	return &L2Loss[T, B]{
		backend:   backend,
		reduction: reduction,
	}
}

// Forward computes the loss between pred and target.
func (l *L2Loss[T, B]) Forward(pred, target *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return L2(pred, target, l.reduction)
}

// LutherLoss scores sensor sensitivities against a CMF basis by subspace
// distance. Normalization is on by default, making the loss scale-free.
type LutherLoss[T tensor.Float, B tensor.Backend] struct {
	backend   B
	normalize bool
}

// NewLutherLoss creates a new Luther loss module with normalization enabled.
func NewLutherLoss[T tensor.Float, B tensor.Backend](backend B) *LutherLoss[T, B] {
	return &LutherLoss[T, B]{
		backend:   backend,
		normalize: true,
	}
}

// NewRawLutherLoss creates a Luther loss module without normalization.
func NewRawLutherLoss[T tensor.Float, B tensor.Backend](backend B) *LutherLoss[T, B] {
	return &LutherLoss[T, B]{backend: backend}
}

// Forward computes the Luther loss for sensors against cmfs.
func (l *LutherLoss[T, B]) Forward(sensors, cmfs *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	v, err := Luther(sensors, cmfs, l.normalize)
	if err != nil {
		return nil, err
	}
	return scalarTensor[T](v, l.backend)
}

// VoraLoss scores sensor sensitivities against a CMF basis by subspace
// similarity: 1 − Vora-Value, in [0, 1].
type VoraLoss[T tensor.Float, B tensor.Backend] struct {
	backend B
}

// NewVoraLoss creates a new Vora loss module.
func NewVoraLoss[T tensor.Float, B tensor.Backend](backend B) *VoraLoss[T, B] {
	return &VoraLoss[T, B]{backend: backend}
}

// Forward computes the Vora loss for sensors against cmfs.
func (v *VoraLoss[T, B]) Forward(sensors, cmfs *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	val, err := Vora(sensors, cmfs)
	if err != nil {
		return nil, err
	}
	return scalarTensor[T](val, v.backend)
}

// scalarTensor wraps a float64 into a shape {1} tensor.
func scalarTensor[T tensor.Float, B tensor.Backend](v float64, b B) (*tensor.Tensor[T, B], error) {
	return tensor.FromSlice([]T{T(v)}, tensor.Shape{1}, b)
}
