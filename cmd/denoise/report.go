package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-denoise/internal/config"
	"github.com/cwbudde/algo-denoise/internal/pipeline"
	"github.com/cwbudde/algo-denoise/stats/frequency"
	timestats "github.com/cwbudde/algo-denoise/stats/time"
)

func printReport(w io.Writer, cfg *config.Config, rep *pipeline.Report) error {
	noise, err := timestats.Compare(rep.Clean, rep.Noisy)
	if err != nil {
		return err
	}
	noiseSNR, err := timestats.SNR(rep.Clean, rep.Noisy)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "func=%s domain=[%g, %g) samples=%d noise=%g seed=%d method=%s\n",
		cfg.Func, rep.Domain.Start, rep.Domain.End, len(rep.Noisy), cfg.Noise, cfg.Seed, cfg.Filter.Method); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "noisy input: rmse=%.4f corr=%.4f snr=%.2f dB\n\n", noise.RMSE, noise.Correlation, noiseSNR); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Order\tRMSE\tMAE\tMax\tCorr\tSNR [dB]\tNR [dB]\tResidual RMS\tFlatness\tPeak [c/s]\tBounds\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t---\t---\t----\t--------\t-------\t------------\t--------\t----------\t------\n"); err != nil {
		return err
	}
	for _, o := range rep.Orders {
		peak := frequency.Peak(o.Residual)
		if _, err := fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.2f\t%.2f\t%.4f\t%.3f\t%.3f\t(%.3g, %.3g)..(%.3g, %.3g)\n",
			o.Order,
			o.Fidelity.RMSE,
			o.Fidelity.MAE,
			o.Fidelity.MaxAbs,
			o.Fidelity.Correlation,
			o.SNR,
			o.NoiseReduction,
			o.Filter.ResidualRMS,
			o.Flatness,
			peak.X,
			o.Bounds.Min.X, o.Bounds.Min.Y, o.Bounds.Max.X, o.Bounds.Max.Y,
		); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, o := range rep.Orders {
		if len(o.Filter.Weights) > 0 {
			if _, err := fmt.Fprintf(w, "order %d: λ=%.1f distance=%.4f weights=%.3f\n",
				o.Order, o.Filter.Lambda, o.Filter.Distance, o.Filter.Weights); err != nil {
				return err
			}
		}
	}
	for _, path := range rep.Charts {
		if _, err := fmt.Fprintf(w, "wrote %s\n", path); err != nil {
			return err
		}
	}
	return nil
}
