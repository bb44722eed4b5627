package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"wave-playground/config"
	"wave-playground/midi"
)

const portTimeout = 3 * time.Second

var (
	filter    string
	channel   int
	baseCC    int
	baseNote  int
	harmonics int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "midimon",
	Short: "Inspect MIDI controllers for wave-playground",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List MIDI input ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := inPorts()
		if err != nil {
			return err
		}
		dm := midi.NewDeviceManager(mapping(), filter)
		for i, p := range ins {
			mark := " "
			if dm.Matches(p.String()) {
				mark = "*"
			}
			fmt.Printf("%s %d: %s\n", mark, i, p.String())
		}
		fmt.Println("\n* = would be opened by wave-playground")
		return nil
	},
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print knob events as harmonics",
	Long: `Open every matching input port and print each mapped event.

Examples:
  midimon monitor
  midimon monitor --filter nanoKONTROL --channel 1 --base-cc 0`,
	RunE: runMonitor,
}

func init() {
	def := config.DefaultConfig()
	rootCmd.PersistentFlags().StringVarP(&filter, "filter", "f", def.MIDI.PortFilter, "Only use ports whose name contains this")
	rootCmd.PersistentFlags().IntVar(&channel, "channel", def.MIDI.Channel, "MIDI channel 1-16, 0 for any")
	rootCmd.PersistentFlags().IntVar(&baseCC, "base-cc", def.MIDI.BaseCC, "CC number of the first harmonic")
	rootCmd.PersistentFlags().IntVar(&baseNote, "base-note", def.MIDI.BaseNote, "Touch note of the first harmonic")
	rootCmd.PersistentFlags().IntVarP(&harmonics, "harmonics", "n", def.Harmonics, "Number of harmonics")

	rootCmd.AddCommand(listCmd, monitorCmd)
}

func mapping() midi.Mapping {
	cfg := config.MIDIConfig{Channel: channel, BaseCC: baseCC, BaseNote: baseNote}
	return cfg.Mapping(harmonics)
}

// inPorts enumerates ports with a timeout; some MIDI services hang
func inPorts() ([]drivers.In, error) {
	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- gomidi.GetInPorts()
	}()

	select {
	case ins := <-ch:
		return ins, nil
	case <-time.After(portTimeout):
		return nil, fmt.Errorf("timed out listing MIDI ports after %s", portTimeout)
	}
}

func runMonitor(cmd *cobra.Command, args []string) error {
	m := mapping()
	dm := midi.NewDeviceManager(m, filter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go dm.Run(ctx)

	fmt.Printf("CC %d-%d turn, notes %d-%d touch. Ctrl+C to exit.\n",
		m.BaseCC, int(m.BaseCC)+m.Count-1, m.BaseNote, int(m.BaseNote)+m.Count-1)

	for {
		select {
		case ev, ok := <-dm.Events():
			if !ok {
				return nil
			}
			state := "connected"
			if ev.Type == midi.DeviceDisconnected {
				state = "disconnected"
			}
			fmt.Printf("[%s] %s %s\n", time.Now().Format("15:04:05"), state, ev.ID)
		case ev := <-dm.Controls():
			fmt.Println(describe(ev))
		case <-ctx.Done():
			return nil
		}
	}
}

func describe(ev midi.Event) string {
	ts := time.Now().Format("15:04:05.000")
	src := ev.Source
	switch ev.Kind {
	case midi.KnobTurn:
		return fmt.Sprintf("[%s] %s  wave %-2d target %+.2f", ts, src, ev.Harmonic+1, ev.Value)
	case midi.KnobTouch:
		return fmt.Sprintf("[%s] %s  wave %-2d touch", ts, src, ev.Harmonic+1)
	default:
		return fmt.Sprintf("[%s] %s  wave %-2d release", ts, src, ev.Harmonic+1)
	}
}
