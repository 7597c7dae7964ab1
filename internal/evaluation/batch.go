package evaluation

import (
	"fmt"

	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// labRows converts an (n, 3) tensor of Lab rows into Lab values.
func labRows[T tensor.Float, B tensor.Backend](t *tensor.Tensor[T, B]) ([]Lab, error) {
	shape := t.Shape()
	if len(shape) != 2 || shape[1] != 3 {
		return nil, fmt.Errorf("evaluation: expected an (n, 3) Lab tensor, got %v", shape)
	}

	labs := make([]Lab, shape[0])
	for i := range labs {
		labs[i] = Lab{
			L: float64(t.At(i, 0)),
			A: float64(t.At(i, 1)),
			B: float64(t.At(i, 2)),
		}
	}
	return labs, nil
}

// deltaEBatch applies a pairwise color-difference function over two (n, 3)
// Lab tensors.
func deltaEBatch[T tensor.Float, B tensor.Backend](ref, sample *tensor.Tensor[T, B], f func(a, b Lab) float64) ([]float64, error) {
	refs, err := labRows(ref)
	if err != nil {
		return nil, err
	}
	samples, err := labRows(sample)
	if err != nil {
		return nil, err
	}
	if len(refs) != len(samples) {
		return nil, fmt.Errorf("evaluation: %d reference rows vs %d sample rows", len(refs), len(samples))
	}

	out := make([]float64, len(refs))
	for i := range out {
		out[i] = f(refs[i], samples[i])
	}
	return out, nil
}

// DeltaE76Batch computes CIE76 differences row-by-row over (n, 3) Lab tensors.
func DeltaE76Batch[T tensor.Float, B tensor.Backend](ref, sample *tensor.Tensor[T, B]) ([]float64, error) {
	return deltaEBatch(ref, sample, DeltaE76)
}

// DeltaE94Batch computes CIE94 differences row-by-row over (n, 3) Lab tensors.
func DeltaE94Batch[T tensor.Float, B tensor.Backend](ref, sample *tensor.Tensor[T, B]) ([]float64, error) {
	return deltaEBatch(ref, sample, DeltaE94)
}

// DeltaE2000Batch computes CIEDE2000 differences row-by-row over (n, 3) Lab
// tensors.
func DeltaE2000Batch[T tensor.Float, B tensor.Backend](ref, sample *tensor.Tensor[T, B]) ([]float64, error) {
	return deltaEBatch(ref, sample, DeltaE2000)
}
