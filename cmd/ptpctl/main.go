// Command ptpctl is a small interactive demo of the ptp package: it
// opens a device, prints its DeviceInfo and storage list, and walks the
// object tree of each storage.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/theckman/yacspin"

	"github.com/nasa-jpl/go-ptp/ptp"
	"github.com/nasa-jpl/go-ptp/ptp/usbtransport"
)

func root() {
	str := `ptpctl is a demonstration client for PTP/USB still-image devices.

Usage:
	ptpctl <vid-hex> <pid-hex>

Example:
	ptpctl 054c 0150`
	fmt.Println(str)
}

func withSpinner(suffix string, fn func() error) error {
	cfg := yacspin.Config{
		Frequency:       100 * time.Millisecond,
		CharSet:         yacspin.CharSets[9],
		Suffix:          " " + suffix,
		SuffixAutoColon: true,
		StopCharacter:   "✓",
		StopColors:      []string{"fgGreen"},
	}
	spinner, err := yacspin.New(cfg)
	if err != nil {
		return err
	}
	if err := spinner.Start(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		spinner.StopFailMessage(err.Error())
		spinner.StopFail()
		return err
	}
	return spinner.Stop()
}

func parseHex16(s string) uint16 {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		log.Fatalf("invalid hex id %q: %v", s, err)
	}
	return uint16(v)
}

type cliLogger struct{}

func (cliLogger) Debugf(format string, args ...interface{}) {}
func (cliLogger) Errorf(format string, args ...interface{}) {
	color.Red("error: "+format+"\n", args...)
}

func main() {
	args := os.Args
	if len(args) != 3 {
		root()
		return
	}
	vid, pid := parseHex16(args[1]), parseHex16(args[2])

	var dev *usbtransport.Device
	if err := withSpinner("opening device", func() error {
		var err error
		dev, err = usbtransport.Open(vid, pid)
		return err
	}); err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	session := ptp.NewSession(dev, dev.InterfaceNumber(), dev.Endpoints(), cliLogger{})

	if err := withSpinner("opening session", session.OpenSession); err != nil {
		log.Fatal(err)
	}
	defer session.Disconnect()

	var info ptp.DeviceInfo
	if err := withSpinner("reading device info", func() error {
		var err error
		info, err = session.GetDeviceInfo()
		return err
	}); err != nil {
		log.Fatal(err)
	}
	color.Cyan("%s %s (%s)\n", info.Manufacturer, info.Model, info.DeviceVersion)
	fmt.Println(strings.Repeat("-", 40))

	var ids []uint32
	if err := withSpinner("reading storage ids", func() error {
		var err error
		ids, err = session.GetStorageIDs()
		return err
	}); err != nil {
		log.Fatal(err)
	}
	for _, id := range ids {
		storage, err := session.GetStorageInfo(id)
		if err != nil {
			color.Red("storage 0x%08x: %v\n", id, err)
			continue
		}
		fmt.Printf("storage 0x%08x: %s (%d / %d bytes free)\n", id, storage.StorageDescription, storage.FreeSpaceInBytes, storage.MaxCapacity)

		var tree *ptp.ObjectTree
		if err := withSpinner(fmt.Sprintf("walking storage 0x%08x", id), func() error {
			var err error
			tree, err = ptp.BuildObjectTree(session, id, 0xFFFFFFFF)
			return err
		}); err != nil {
			color.Red("  %v\n", err)
			continue
		}
		tree.Walk(func(path string, n *ptp.ObjectNode) error {
			fmt.Printf("  handle 0x%08x: %s\n", n.Handle, path)
			return nil
		})
	}
}
