// Package usbtransport provides a gousb-backed ptp.Transport: it opens a
// still-image-class (USB class code 6) USB device, claims its interface,
// and exposes its bulk endpoints for the transaction engine.
package usbtransport

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/google/gousb"
	"github.com/pkg/errors"

	"github.com/nasa-jpl/go-ptp/ptp"
)

func deadline(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// stillImageClass is the USB-IF assigned interface class code for still
// image capture devices (USB Still Image Capture Device Definition,
// used by PTP/USB).
const stillImageClass = gousb.ClassCode(6)

// Device is a ptp.Transport backed by a real USB device via gousb. It
// satisfies ptp.Transport and the optional ReleaseInterface hook
// ptp.Session.Disconnect probes for.
type Device struct {
	ctx    *gousb.Context
	dev    *gousb.Device
	cfg    *gousb.Config
	iface  *gousb.Interface
	in     *gousb.InEndpoint
	out    *gousb.OutEndpoint
	inIntr *gousb.InEndpoint
}

// Open opens the first device matching vid/pid, retrying with an
// exponential backoff since a camera that was just plugged in can take
// a moment to enumerate. It claims the first interface whose class code
// is 6 (Still Image) and resolves its bulk-IN, bulk-OUT, and
// interrupt-IN endpoints.
//
// Devices do not like being connection-thrashed, so backoff rather
// than busy-loop.
func Open(vid, pid uint16) (*Device, error) {
	ctx := gousb.NewContext()
	var dev *gousb.Device
	op := func() error {
		d, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
		if err != nil {
			return errors.Wrap(err, "open device")
		}
		if d == nil {
			return fmt.Errorf("no device matching vid=0x%04x pid=0x%04x", vid, pid)
		}
		dev = d
		return nil
	}
	bo := &backoff.ExponentialBackOff{
		InitialInterval:     25 * time.Millisecond,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         1 * time.Second,
		MaxElapsedTime:      3 * time.Second,
		Clock:               backoff.SystemClock,
	}
	if err := backoff.Retry(op, bo); err != nil {
		ctx.Close()
		return nil, errors.Wrap(err, "opening PTP device")
	}

	if err := dev.SetAutoDetach(true); err != nil {
		ctx.Close()
		return nil, errors.Wrap(err, "set auto detach")
	}

	d, err := claimStillImageInterface(dev)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, err
	}
	d.ctx = ctx
	d.dev = dev
	return d, nil
}

// claimStillImageInterface walks the device's configuration descriptor
// looking for an interface alt setting that carries class code 6 (still
// image), claims the first one found, and resolves its endpoints.
func claimStillImageInterface(dev *gousb.Device) (*Device, error) {
	for cfgNum, cfgDesc := range dev.Desc.Configs {
		for _, ifDesc := range cfgDesc.Interfaces {
			for _, alt := range ifDesc.AltSettings {
				if alt.Class != stillImageClass {
					continue
				}
				cfg, err := dev.Config(cfgNum)
				if err != nil {
					return nil, errors.Wrap(err, "select configuration")
				}
				iface, err := cfg.Interface(ifDesc.Number, alt.Alternate)
				if err != nil {
					cfg.Close()
					return nil, errors.Wrap(err, "claim interface")
				}
				d, err := resolveEndpoints(iface, alt)
				if err != nil {
					iface.Close()
					cfg.Close()
					return nil, err
				}
				d.cfg = cfg
				d.iface = iface
				return d, nil
			}
		}
	}
	return nil, fmt.Errorf("no still-image-class (0x06) interface found on device")
}

func resolveEndpoints(iface *gousb.Interface, alt gousb.InterfaceSetting) (*Device, error) {
	d := &Device{}
	for addr, ep := range alt.Endpoints {
		switch ep.TransferType {
		case gousb.TransferTypeBulk:
			if ep.Direction == gousb.EndpointDirectionIn {
				in, err := iface.InEndpoint(addr.Number())
				if err != nil {
					return nil, errors.Wrap(err, "resolve bulk-IN endpoint")
				}
				d.in = in
			} else {
				out, err := iface.OutEndpoint(addr.Number())
				if err != nil {
					return nil, errors.Wrap(err, "resolve bulk-OUT endpoint")
				}
				d.out = out
			}
		case gousb.TransferTypeInterrupt:
			if ep.Direction == gousb.EndpointDirectionIn {
				intr, err := iface.InEndpoint(addr.Number())
				if err != nil {
					return nil, errors.Wrap(err, "resolve interrupt-IN endpoint")
				}
				d.inIntr = intr
			}
		}
	}
	if d.in == nil || d.out == nil {
		return nil, fmt.Errorf("still-image interface is missing a bulk IN or OUT endpoint")
	}
	return d, nil
}

// Endpoints returns the resolved endpoint numbers for ptp.NewSession.
func (d *Device) Endpoints() ptp.Endpoints {
	ep := ptp.Endpoints{BulkIn: d.in.Desc.Number, BulkOut: d.out.Desc.Number}
	if d.inIntr != nil {
		ep.InterruptIn = d.inIntr.Desc.Number
	}
	return ep
}

// InterfaceNumber returns the claimed interface's number, for
// ptp.NewSession's iface argument.
func (d *Device) InterfaceNumber() int {
	return d.iface.Setting.Number
}

// WriteBulk implements ptp.Transport.
func (d *Device) WriteBulk(ep int, b []byte, timeout time.Duration) (int, error) {
	ctx, cancel := deadline(timeout)
	defer cancel()
	return d.out.WriteContext(ctx, b)
}

// ReadBulk implements ptp.Transport.
func (d *Device) ReadBulk(ep int, b []byte, timeout time.Duration) (int, error) {
	ctx, cancel := deadline(timeout)
	defer cancel()
	return d.in.ReadContext(ctx, b)
}

// ReleaseInterface implements the optional hook ptp.Session.Disconnect
// probes for: it releases the claimed interface and configuration. The
// gousb.Context itself is released by Close, not here, since a Session
// does not own the Context.
func (d *Device) ReleaseInterface(iface int) error {
	d.iface.Close()
	return d.cfg.Close()
}

// Close releases the device handle and the USB context. Call after
// ptp.Session.Disconnect.
func (d *Device) Close() error {
	err := d.dev.Close()
	d.ctx.Close()
	return err
}
