package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/camdesign-ml/camdesign/design"
	"github.com/camdesign-ml/camdesign/losses"
	"github.com/camdesign-ml/camdesign/spectral"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Optimize camera sensitivities against a colorimetric loss",
	Long: `Optimize camera spectral sensitivities.

Starts from an initial sensitivity set (--init CSV, or random non-negative
curves with --channels) and minimizes the chosen loss against the reference
CMFs with gradient descent. Sensitivities are kept non-negative and each
channel is rescaled to unit peak after every step.

Gradients are estimated with central finite differences, so the per-iteration
cost grows with the number of wavelength samples times channels.`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().String("init", "", "initial sensitivities CSV (default: random)")
	designCmd.Flags().Int("channels", 3, "number of channels for random initialization")
	designCmd.Flags().Int64("seed", 0, "random seed for initialization")
	designCmd.Flags().String("cmfs", "", "color matching functions CSV (default: built-in CIE 1931)")
	designCmd.Flags().String("loss", "vora", "loss to minimize: vora or luther")
	designCmd.Flags().String("optimizer", "adam", "optimizer: adam or sgd")
	designCmd.Flags().Float64("lr", 0, "learning rate (default: optimizer default)")
	designCmd.Flags().Int("iters", 200, "maximum iterations")
	designCmd.Flags().Float64("tol", 1e-9, "stop when the loss delta falls below this")
	designCmd.Flags().StringP("output", "o", "", "write optimized sensitivities to this CSV file (default: stdout)")

	// Config-file defaults: an explicit flag still wins over camdesign.yaml.
	_ = viper.BindPFlag("design.channels", designCmd.Flags().Lookup("channels"))
	_ = viper.BindPFlag("design.seed", designCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("design.cmfs", designCmd.Flags().Lookup("cmfs"))
	_ = viper.BindPFlag("design.loss", designCmd.Flags().Lookup("loss"))
	_ = viper.BindPFlag("design.optimizer", designCmd.Flags().Lookup("optimizer"))
	_ = viper.BindPFlag("design.lr", designCmd.Flags().Lookup("lr"))
	_ = viper.BindPFlag("design.iters", designCmd.Flags().Lookup("iters"))
	_ = viper.BindPFlag("design.tol", designCmd.Flags().Lookup("tol"))
}

func runDesign(cmd *cobra.Command, args []string) error {
	initPath, _ := cmd.Flags().GetString("init")
	outPath, _ := cmd.Flags().GetString("output")
	channels := viper.GetInt("design.channels")
	seed := viper.GetInt64("design.seed")
	cmfsPath := viper.GetString("design.cmfs")
	lossName := viper.GetString("design.loss")
	optName := viper.GetString("design.optimizer")
	lr := viper.GetFloat64("design.lr")
	iters := viper.GetInt("design.iters")
	tol := viper.GetFloat64("design.tol")

	wavelengths, cmfs, err := loadReference(cmfsPath)
	if err != nil {
		return err
	}

	initial, err := loadInitial(initPath, wavelengths, channels, seed)
	if err != nil {
		return err
	}

	var obj design.Objective
	switch lossName {
	case "vora":
		obj = func(x *mat.Dense) (float64, error) {
			return losses.VoraDense(x, cmfs)
		}
	case "luther":
		obj = func(x *mat.Dense) (float64, error) {
			return losses.LutherDense(x, cmfs, true)
		}
	default:
		return fmt.Errorf("unknown loss %q (want vora or luther)", lossName)
	}

	var opt design.Optimizer
	switch optName {
	case "adam":
		opt = design.NewAdam(design.AdamConfig{LR: lr})
	case "sgd":
		opt = design.NewSGD(design.SGDConfig{LR: lr, Momentum: 0.9})
	default:
		return fmt.Errorf("unknown optimizer %q (want adam or sgd)", optName)
	}

	result, err := design.Optimize(obj, initial, opt, design.Config{
		MaxIter:          iters,
		Tol:              tol,
		NonNegative:      true,
		NormalizeColumns: true,
		Callback: func(iter int, loss float64) {
			if iter%25 == 0 {
				logger.Debug().Int("iter", iter).Float64("loss", loss).Msg("optimizing")
			}
		},
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("loss", lossName).
		Str("optimizer", opt.Name()).
		Int("iterations", result.Iterations).
		Bool("converged", result.Converged).
		Float64("final_loss", result.Loss).
		Msg("optimization finished")

	out := denseToData(wavelengths, result.Params)
	if outPath != "" {
		return spectral.SaveCSV(outPath, out)
	}
	return spectral.WriteCSV(os.Stdout, out)
}

// loadReference returns the wavelength grid and the CMFs as a dense matrix,
// from a CSV file or the built-in CIE 1931 table.
func loadReference(path string) ([]float64, *mat.Dense, error) {
	if path == "" {
		return spectral.Wavelengths(), dataToDense(spectral.CMFData()), nil
	}

	data, err := spectral.LoadCSV(path)
	if err != nil {
		return nil, nil, err
	}
	if data.Channels() != 3 {
		return nil, nil, fmt.Errorf("CMFs must have 3 channels, got %d", data.Channels())
	}
	return data.Wavelengths, dataToDense(data), nil
}

// loadInitial loads the starting sensitivities, or generates random
// non-negative curves on the reference grid.
func loadInitial(path string, wavelengths []float64, channels int, seed int64) (*mat.Dense, error) {
	if path == "" {
		if channels < 1 {
			return nil, fmt.Errorf("need at least one channel, got %d", channels)
		}
		rng := rand.New(rand.NewSource(seed))
		init := mat.NewDense(len(wavelengths), channels, nil)
		for i := 0; i < len(wavelengths); i++ {
			for j := 0; j < channels; j++ {
				init.Set(i, j, rng.Float64())
			}
		}
		return init, nil
	}

	data, err := spectral.LoadCSV(path)
	if err != nil {
		return nil, err
	}
	if len(data.Wavelengths) != len(wavelengths) {
		return nil, fmt.Errorf("initial sensitivities have %d wavelength samples, reference has %d", len(data.Wavelengths), len(wavelengths))
	}
	for i, w := range data.Wavelengths {
		if w != wavelengths[i] {
			return nil, fmt.Errorf("initial sensitivities are on a different wavelength grid (index %d: %g vs %g)", i, w, wavelengths[i])
		}
	}
	return dataToDense(data), nil
}

func dataToDense(d *spectral.Data) *mat.Dense {
	m := mat.NewDense(len(d.Wavelengths), d.Channels(), nil)
	for i, row := range d.Values {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

func denseToData(wavelengths []float64, m *mat.Dense) *spectral.Data {
	rows, cols := m.Dims()
	d := &spectral.Data{
		Wavelengths: wavelengths,
		Values:      make([][]float64, rows),
	}
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = m.At(i, j)
		}
		d.Values[i] = row
	}
	return d
}
