package raycast3d

import "context"

// RunOptions override the scene file; zero values keep what the file says.
type RunOptions struct {
	Out     string
	Workers int
	Shading string
	Metrics *Metrics
}

// Run loads the scene at cfgPath, renders it and writes the PNG.
func Run(ctx context.Context, cfgPath string, ro RunOptions) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if ro.Out != "" {
		cfg.Out = ro.Out
	}
	if ro.Workers != 0 {
		cfg.Workers = ro.Workers
	}
	if ro.Shading != "" {
		cfg.Shading = ro.Shading
	}
	mode, err := cfg.ShadingMode()
	if err != nil {
		return err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}

	frame, err := RenderFrame(ctx, scene, RenderOptions{
		Workers: cfg.Workers,
		Shading: mode,
		Metrics: ro.Metrics,
		Progress: func(done, total int) {
			if done%max(1, total/10) == 0 {
				DebugLog("[render] %.0f%%", 100*Real(done)/Real(total))
			}
		},
	})
	if err != nil {
		return err
	}
	if err := SavePNG(cfg.Out, frame.Image); err != nil {
		return err
	}
	st := frame.Stats()
	Log.Info().
		Uint32("width", scene.Width).
		Uint32("height", scene.Height).
		Int("primitives", len(scene.Primitives)).
		Dur("elapsed", frame.Elapsed).
		Float64("coverage", st.Coverage).
		Float64("mean_luma", st.MeanLuma).
		Float64("stddev_luma", st.StdDevLuma).
		Str("out", cfg.Out).
		Msg("rendered")
	return nil
}
