// SPDX-License-Identifier: EPL-2.0

// Command audwah runs an audio file through the wah filter and writes a WAV.
//
// Usage:
//
//	audwah [flags] <input> <output.wav>
//
// An output of "-" streams 16-bit PCM to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/audwah"
	"github.com/ik5/audwah/formats"
	"github.com/ik5/audwah/formats/wav"
	"github.com/ik5/audwah/preset"
	"github.com/ik5/audwah/wah"
)

var errUsage = errors.New("usage: audwah [flags] <input> <output.wav>")

type options struct {
	preset      string
	bits        int
	strict      bool
	sampleClock bool
	buffer      int

	depth, rate, base, maxFreq, q float64
	pan, speed                    float64

	// set holds the names of flags given on the command line.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	def := wah.DefaultParams()
	o := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("audwah", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.preset, "preset", "", "JSON preset applied before the flags")
	fs.Float64Var(&o.depth, "depth", def.Depth, "Sweep depth (0-1)")
	fs.Float64Var(&o.rate, "rate", def.Rate, "LFO rate in Hz")
	fs.Float64Var(&o.base, "base", def.BaseFreq, "Lowest centre frequency in Hz")
	fs.Float64Var(&o.maxFreq, "max", def.MaxFreq, "Highest centre frequency in Hz")
	fs.Float64Var(&o.q, "q", def.Q, "Filter Q; 0 bypasses the wah")
	fs.Float64Var(&o.pan, "pan", 0, "Stereo position from -1 (left) to 1 (right); mono when unset")
	fs.Float64Var(&o.speed, "speed", 1, "Playback speed factor")
	fs.IntVar(&o.bits, "bits", 16, "Output bit depth (16 or 24)")
	fs.BoolVar(&o.strict, "strict", false, "Validate parameters and reject non-finite samples")
	fs.BoolVar(&o.sampleClock, "sample-clock", false, "Evaluate the LFO at i/sr instead of the linspace grid")
	fs.IntVar(&o.buffer, "buffer", 0, "Read size in samples (0 uses the decoder default)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if fs.NArg() != 2 {
		return nil, nil, errUsage
	}

	if o.bits != 16 && o.bits != 24 {
		return nil, nil, fmt.Errorf("-bits must be 16 or 24: %d", o.bits)
	}

	return o, fs.Args(), nil
}

// settings starts from the preset (or the defaults) and lets explicitly set
// flags override it.
func (o *options) settings() (audwah.Settings, error) {
	s := audwah.DefaultSettings()

	if o.preset != "" {
		p, err := preset.LoadJSON(o.preset)
		if err != nil {
			return s, err
		}

		s = *p
	}

	for _, f := range []struct {
		name string
		dst  *float64
		v    float64
	}{
		{"depth", &s.Wah.Depth, o.depth},
		{"rate", &s.Wah.Rate, o.rate},
		{"base", &s.Wah.BaseFreq, o.base},
		{"max", &s.Wah.MaxFreq, o.maxFreq},
		{"q", &s.Wah.Q, o.q},
		{"speed", &s.Speed, o.speed},
	} {
		if o.set[f.name] {
			*f.dst = f.v
		}
	}

	if o.set["q"] {
		s.WahEnabled = o.q > 0
	}

	if o.set["pan"] {
		pan := o.pan
		s.Pan = &pan
	}

	if o.set["strict"] {
		s.Strict = o.strict
	}

	if o.set["sample-clock"] {
		s.TimeBase = wah.TimeBaseLinspace
		if o.sampleClock {
			s.TimeBase = wah.TimeBaseSampleClock
		}
	}

	return s, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "audwah: ", 0)

	o, paths, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	s, err := o.settings()
	if err != nil {
		return err
	}

	in, out := paths[0], paths[1]

	src, err := formats.Open(formats.NewRegistry(), in)
	if err != nil {
		return err
	}
	defer src.Close()

	logger.Printf("rendering %s: %d Hz, %d ch, wah=%v speed=%g", in, src.SampleRate(), src.Channels(),
		s.WahEnabled, s.Speed)

	res, err := audwah.Render(src, s, o.buffer)
	if err != nil {
		return err
	}

	if out == "-" {
		if o.bits != 16 {
			return fmt.Errorf("stdout output supports 16-bit only, got -bits %d", o.bits)
		}

		return wav.WriteWAV16(stdout, res.SampleRate, res.Channels, res.PCM16())
	}

	if err := writeFile(out, res, o.bits); err != nil {
		return err
	}

	logger.Printf("wrote %s: %d frames (%v), %d ch, %d-bit", out, res.Frames(), res.Duration(), res.Channels, o.bits)

	return nil
}

func writeFile(path string, res *audwah.Result, bits int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wav.Encode(f, res.SampleRate, res.Channels, bits, res.Samples); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}

		log.SetFlags(0)
		log.SetPrefix("audwah: ")
		log.Println(err)
		os.Exit(1)
	}
}
