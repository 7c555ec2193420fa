package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/tertian/midi"
	"github.com/jsphweid/tertian/util"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Spells notes from a MIDI input",
	Long:  `Listens to the first MIDI in port and spells whatever is held down.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI in port")
		return
	}

	pressed := make(map[uint8]bool)

	// a chord grab lands as several events in quick succession; only
	// print once it settles
	debounced := debounce.New(50 * time.Millisecond)
	printPressed := func() {
		keys := util.GetKeys(pressed)
		if len(keys) == 0 {
			return
		}
		sort.Slice(keys, func(i, j int) bool {
			return keys[i] < keys[j]
		})
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, midi.NoteName(k))
		}
		fmt.Println(strings.Join(names, " "))
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			pressed[key] = true
			debounced(printPressed)
		case msg.GetNoteEnd(&ch, &key):
			delete(pressed, key)
			debounced(printPressed)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	stop()
}
