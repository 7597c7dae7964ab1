package losses_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camdesign-ml/camdesign/backend/cpu"
	"github.com/camdesign-ml/camdesign/losses"
	"github.com/camdesign-ml/camdesign/spectral"
	"github.com/camdesign-ml/camdesign/tensor"
)

func TestPublicAPI(t *testing.T) {
	backend := cpu.New()
	cmfs := spectral.CMF[float64](backend)

	vv, err := losses.VoraValue(cmfs, cmfs)
	require.NoError(t, err)
	assert.InDelta(t, 1, vv, 1e-10)

	ll, err := losses.Luther(cmfs, cmfs, true)
	require.NoError(t, err)
	assert.InDelta(t, 0, ll, 1e-10)

	pred := tensor.Ones[float64](tensor.Shape{4}, backend)
	target := tensor.Zeros[float64](tensor.Shape{4}, backend)
	l2, err := losses.L2(pred, target, losses.ReductionSum)
	require.NoError(t, err)
	assert.InDelta(t, 4, l2.Item(), 1e-12)

	criterion := losses.NewVoraLoss[float64](backend)
	loss, err := criterion.Forward(cmfs, cmfs)
	require.NoError(t, err)
	assert.InDelta(t, 0, loss.Item(), 1e-10)
}
