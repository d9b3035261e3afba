package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lukaszgryglicki/raycast3d/internal/raycast3d"
)

const (
	appName = "raycast3d"
	version = "v0.3.0"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:     appName,
	Short:   "Ray cast spheres, planes and triangle meshes into a PNG",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		raycast3d.SetupLogging(os.Stderr, v.GetBool("debug"))
		return nil
	},
	SilenceUsage: true,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a scene file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if prof := v.GetString("cpuprofile"); prof != "" {
			f, err := os.Create(prof)
			if err != nil {
				return err
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				return err
			}
			defer func() {
				pprof.StopCPUProfile()
				_ = f.Close()
			}()
		}
		return raycast3d.Run(cmd.Context(), v.GetString("config"), raycast3d.RunOptions{
			Out:     v.GetString("out"),
			Workers: v.GetInt("workers"),
			Shading: v.GetString("shading"),
		})
	},
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example scene file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "scenes/example.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !v.GetBool("force") {
			return fmt.Errorf("%s exists, use --force to overwrite", path)
		}
		if err := raycast3d.SaveConfig(path, raycast3d.ExampleConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "verbose debug output")

	renderCmd.Flags().StringP("config", "c", "scenes/example.yaml", "scene file (json, yaml or toml)")
	renderCmd.Flags().StringP("out", "o", "", "output PNG (overrides the scene file)")
	renderCmd.Flags().IntP("workers", "w", 0, "render goroutines, 0 = all CPUs")
	renderCmd.Flags().String("shading", "", "facing or flat (overrides the scene file)")
	renderCmd.Flags().String("cpuprofile", "", "write a CPU profile to this file")

	initCmd.Flags().Bool("force", false, "overwrite an existing file")

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().IntP("workers", "w", 0, "render goroutines per request, 0 = all CPUs")

	for _, c := range []*cobra.Command{rootCmd, renderCmd, initCmd} {
		_ = v.BindPFlags(c.Flags())
		_ = v.BindPFlags(c.PersistentFlags())
	}
	// serve shares flag names with render, so its keys live under serve.*
	_ = v.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("serve.workers", serveCmd.Flags().Lookup("workers"))
	v.SetEnvPrefix("RAYCAST3D")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(renderCmd, initCmd, serveCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		raycast3d.Log.Error().Err(err).Msg(appName)
		os.Exit(1)
	}
}
