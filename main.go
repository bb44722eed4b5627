package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"wave-playground/config"
	"wave-playground/debug"
	"wave-playground/midi"
	"wave-playground/synth"
	"wave-playground/theme"
	"wave-playground/tui"
)

var version = "0.1.0"

var (
	configPath string
	harmonics  int
	fps        int
	palette    string
	debugLog   bool
	noMIDI     bool

	snapPreset string
	snapTicks  int
	snapWidth  int
	snapHeight int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wave-playground",
	Short: "Build waveforms from harmonics in the terminal",
	Long: `wave-playground sums a bank of sine harmonics and draws the result
as a live oscilloscope. Drag the sliders, use the keyboard or turn the
knobs of a MIDI controller to set each harmonic's amplitude.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runTUI,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the summed waveform without starting the TUI",
	Long: `Apply a preset, run the engine for a number of frames and print the
summed scope to stdout.

Examples:
  wave-playground snapshot --preset square
  wave-playground snapshot --preset triangle --ticks 120 --width 100 --height 24`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/wave-playground/config.json)")
	rootCmd.PersistentFlags().IntVarP(&harmonics, "harmonics", "n", 0, "Number of harmonics (default from config, 12)")
	rootCmd.PersistentFlags().StringVarP(&palette, "palette", "p", "", "Builtin palette name or .gpl file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Write ~/.config/wave-playground/debug.log")

	rootCmd.Flags().IntVar(&fps, "fps", 0, "Frames per second (default from config, 60)")
	rootCmd.Flags().BoolVar(&noMIDI, "no-midi", false, "Do not look for MIDI controllers")

	snapshotCmd.Flags().StringVar(&snapPreset, "preset", "square", "Preset to apply ("+presetNames()+")")
	snapshotCmd.Flags().IntVar(&snapTicks, "ticks", 60, "Frames to run before printing")
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 80, "Scope width in characters")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 20, "Scope height in characters")

	rootCmd.AddCommand(snapshotCmd)
}

func presetNames() string {
	var names []string
	for _, p := range synth.Presets() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("harmonics") {
		cfg.Harmonics = harmonics
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("palette") {
		cfg.Palette = palette
	}
	if flags.Changed("debug") {
		cfg.Debug = debugLog
	}
	if flags.Changed("no-midi") {
		cfg.MIDI.Enabled = !noMIDI
	}
	cfg.Normalize()

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer debug.Disable()

	th, err := theme.Load(cfg.Palette)
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	engine := synth.NewEngine(cfg.Harmonics, nil)
	debug.Log("main", "starting with %d harmonics at %d fps", cfg.Harmonics, cfg.FPS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var deviceMgr *midi.DeviceManager
	if cfg.MIDI.Enabled {
		deviceMgr = midi.NewDeviceManager(cfg.MIDI.Mapping(cfg.Harmonics), cfg.MIDI.PortFilter)
		go deviceMgr.Run(ctx)
	}

	m := tui.NewModel(engine, deviceMgr, th, tui.Options{FPS: cfg.FPS, LineWidth: cfg.LineWidth})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer debug.Disable()

	preset, ok := synth.ParsePreset(snapPreset)
	if !ok {
		return fmt.Errorf("unknown preset %q (want one of %s)", snapPreset, presetNames())
	}
	th, err := theme.Load(cfg.Palette)
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	engine := synth.NewEngine(cfg.Harmonics, nil)
	engine.ApplyPreset(preset)
	fmt.Println(tui.Snapshot(engine, th, snapWidth, snapHeight, snapTicks, cfg.LineWidth))
	return nil
}
