// This file is part of Romshift.
//
// Romshift is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romshift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romshift.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/romshift/imageloader"
	"github.com/jetsetilly/romshift/logger"
	"github.com/jetsetilly/romshift/modalflag"
	"github.com/jetsetilly/romshift/patch"
	"github.com/jetsetilly/romshift/patchset"
	"github.com/jetsetilly/romshift/paths"
	"github.com/jetsetilly/romshift/statsview"
	"github.com/jetsetilly/romshift/traps"
	"github.com/jetsetilly/romshift/version"
)

// the names file used by the TRAPS mode when the -names flag is not given
const defaultNamesFile = "trap_names.txt"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc. an interrupted run never writes a partial output file because
	// output files are only renamed into place once complete. the temporary
	// file of an unfinished write is removed before exiting
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			imageloader.Abandon()
			fmt.Println("\r")
			exitVal = 30
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("TRAPS", "PATCH", "FIND", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "TRAPS":
		err = decodeTraps(md, os.Stdout)
	case "PATCH":
		err = applySets(md, os.Stdout)
	case "FIND":
		err = findResource(md, os.Stdout)
	case "DUMP":
		err = dumpSets(md, os.Stdout)
	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the log is echoed to stderr so that it does not mix with output that is
// meant to be redirected to a file
func setEcho(echo bool) {
	if echo {
		logger.SetEcho(logger.EchoWriter(os.Stderr), true)
	} else {
		logger.SetEcho(nil, false)
	}
}

// oneArg checks that there is exactly one argument remaining after parsing.
func oneArg(md *modalflag.Modes, what string) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("%s required for %s mode", what, md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func decodeTraps(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.Usage("ROM")
	md.AdditionalHelp("Writes a disassembler script that labels every entry in the trap table.")

	names := md.AddString("names", "", fmt.Sprintf("trap names file (default %s in the resource directory)", defaultNamesFile))
	base := md.AddHex("base", traps.DefaultConfig.Base, "address of the ROM in memory")
	unimpl := md.AddHex("unimpl", traps.DefaultConfig.Unimplemented, "address of the unimplemented trap handler")
	start := md.AddHex("start", 0, "offset of the trap table (default is read from the ROM header)")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	rom, err := oneArg(md, "ROM")
	if err != nil {
		return err
	}

	var startSet bool
	md.Visit(func(flag string) {
		if flag == "start" {
			startSet = true
		}
	})

	var n traps.Names
	if *names != "" {
		n, err = traps.ReadNamesFile(*names)
		if err != nil {
			return err
		}
	} else {
		pth, err := paths.ResourcePath("", defaultNamesFile)
		if err != nil {
			return err
		}
		n, err = traps.ReadNamesFile(pth)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			logger.Logf(logger.Allow, "traps", "no names file at %s. all traps will be unnamed", pth)
		}
	}
	logger.Logf(logger.Allow, "traps", "%d trap names", len(n))

	ld := imageloader.NewLoader(rom, "")
	if err := ld.Load(); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "traps", "decoding trap table in %s", ld.ShortName())

	cfg := traps.Config{
		Base:          *base,
		Unimplemented: *unimpl,
	}

	var dec *traps.Decoder
	if startSet {
		dec = traps.NewDecoderAt(ld.Data, int(*start), cfg)
	} else {
		dec, err = traps.NewDecoder(ld.Data, cfg)
		if err != nil {
			return err
		}
	}

	c, err := traps.WriteLabels(output, dec, n, cfg)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "traps", "%d entries decoded, %d labels written", dec.Count(), c)
	logger.Logf(logger.Allow, "traps", "table ends at 0x%04x with pointer at 0x%06x", dec.Cursor(), dec.Pointer())

	return nil
}

func applySets(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.Usage("datafile [set ...]")
	md.AdditionalHelp("Applies the named sets in the data file. All sets are applied if none are named.")

	log := md.AddBool("log", false, "echo log to stderr, including every patched site")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("data file required for %s mode", md)
	}

	sets, err := patchset.LoadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	sel, err := patchset.Select(sets, md.RemainingArgs()[1:]...)
	if err != nil {
		return err
	}

	results, err := patchset.RunAll(sel, logger.Verbosity(*log))

	for _, r := range results {
		fmt.Fprintf(output, "%s: %d sites patched. written to %s (sha1 %s)\n", r.Name, len(r.Sites), r.Output, r.OutputHash)
	}

	if err != nil {
		return err
	}

	if skipped := len(sel) - len(results); skipped > 0 {
		fmt.Fprintf(output, "%d of %d sets skipped\n", skipped, len(sel))
	}

	return nil
}

func findResource(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.Usage("image")

	prefix := md.AddString("prefix", "", "the four bytes before the type tag, in hex")
	tag := md.AddString("type", "", "resource type. for example, CODE")
	id := md.AddInt("id", 0, "resource ID")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, err := oneArg(md, "image")
	if err != nil {
		return err
	}

	pfx, err := hex.DecodeString(strings.Join(strings.Fields(*prefix), ""))
	if err != nil {
		return fmt.Errorf("prefix: %w", err)
	}

	if *id < 0 || *id > 0xffff {
		return fmt.Errorf("resource ID out of range (%d)", *id)
	}

	sig, err := patch.NewSignature(pfx, *tag, uint16(*id))
	if err != nil {
		return err
	}

	ld := imageloader.NewLoader(image, "")
	if err := ld.Load(); err != nil {
		return err
	}

	offset, err := patch.FindResource(ld.Data, sig)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s at 0x%04x\n", sig, offset)

	return nil
}

func dumpSets(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.Usage("datafile [output.dot]")
	md.AdditionalHelp("Writes a graphviz file showing the sets in the data file.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var datafile, dotfile string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("data file required for %s mode", md)
	case 1:
		datafile = md.GetArg(0)
		name := strings.TrimSuffix(filepath.Base(datafile), filepath.Ext(datafile))
		dotfile = fmt.Sprintf("%s.dot", paths.UniqueFilename("dump", name))
	case 2:
		datafile = md.GetArg(0)
		dotfile = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sets, err := patchset.LoadFile(datafile)
	if err != nil {
		return err
	}

	f, err := os.Create(dotfile)
	if err != nil {
		return err
	}
	defer f.Close()

	patchset.Dump(f, sets)

	fmt.Fprintf(output, "%d sets written to %s\n", len(sets), dotfile)

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
