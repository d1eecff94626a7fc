// This file is part of pyz3r.
//
// pyz3r is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pyz3r is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pyz3r.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/tcprescott/pyz3r/digest"
	"github.com/tcprescott/pyz3r/features"
	"github.com/tcprescott/pyz3r/logger"
	"github.com/tcprescott/pyz3r/modalflag"
	"github.com/tcprescott/pyz3r/patch/bps"
	"github.com/tcprescott/pyz3r/paths"
	"github.com/tcprescott/pyz3r/prefs"
	"github.com/tcprescott/pyz3r/romloader"
	"github.com/tcprescott/pyz3r/seed"
	"github.com/tcprescott/pyz3r/session"
	"github.com/tcprescott/pyz3r/sprite"
	"github.com/tcprescott/pyz3r/statsview"
	"github.com/tcprescott/pyz3r/version"
)

// exit values.
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md))
}

// launch selects the mode and returns the value to use with os.Exit().
func launch(md *modalflag.Modes) int {
	md.NewMode()
	md.AddSubModes("PATCH", "VERIFY", "INFO", "SPRITE", "CHECKSUM", "DIFF", "CODE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "PATCH":
		err = patchMode(md)

	case "VERIFY":
		err = verify(md)

	case "INFO":
		err = info(md)

	case "SPRITE":
		err = spriteInfo(md)

	case "CHECKSUM":
		err = checksum(md)

	case "DIFF":
		err = diff(md)

	case "CODE":
		err = code(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md.Path(), err)
		return exitModeError
	}

	return 0
}

// parse the flags for the current mode. the bool return value is false if
// the mode should not continue. this happens for a help request as well as
// for an error so the error should also be checked.
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, err
	}
	return true, nil
}

func echoLog(enabled bool) {
	if !enabled {
		logger.SetEcho(nil)
		return
	}
	if logger.IsTerminal(os.Stderr) {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	} else {
		logger.SetEcho(os.Stderr)
	}
}

func patchMode(md *modalflag.Modes) error {
	md.NewMode()

	pref, err := features.NewPreferences()
	if err != nil {
		return err
	}
	def := pref.Options()

	meta := md.AddString("meta", "", "seed metadata (file or URL)")
	bpsFile := md.AddString("bps", "", "base patch in BPS format (file or URL)")
	output := md.AddString("o", "", "output filename")
	heartSpeed := md.AddString("heartspeed", string(def.HeartSpeed), "low health beep: off, double, normal, half, quarter")
	heartColor := md.AddString("heartcolor", string(def.HeartColor), "heart color: red, blue, green, yellow")
	menuSpeed := md.AddString("menuspeed", string(def.MenuSpeed), "menu speed: instant, fast, normal, slow")
	music := md.AddBool("music", def.Music, "enable in-game music")
	quickswap := md.AddBool("quickswap", def.Quickswap, "enable item quickswap")
	reduceFlashing := md.AddBool("reduceflashing", def.ReduceFlashing, "reduce screen flashing")
	msu1Resume := md.AddBool("msu1resume", def.MSU1Resume, "resume MSU-1 tracks")
	spriteFile := md.AddString("sprite", pref.Sprite.String(), "player sprite in ZSPR or SPR format (file or URL)")
	skipBadSprite := md.AddBool("skipbadsprite", false, "continue if the sprite cannot be applied")
	noverify := md.AddBool("noverify", false, "do not verify the base ROM hash")
	showDigest := md.AddBool("digest", false, "print the digest of every stage")
	log := md.AddBool("log", false, "echo log to stderr")
	cmdPrefs := md.AddString("prefs", "", "preferences for this run only (eg. \"patch.music::false\")")
	save := md.AddBool("save", false, "save the options as the new defaults")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	}

	md.AdditionalHelp("option flags default to the values in " + paths.ResourcePath("", "preferences"))

	if ok, err := parse(md); !ok {
		return err
	}

	echoLog(*log)

	if stats != nil && *stats {
		statsview.Launch(md.Output, statsview.DefaultAddress)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("base ROM required")
	}

	// prefs given on the command line are applied over the file and then
	// any option flags are applied over that
	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer prefs.PopCommandLineStack()
		if err := pref.Load(); err != nil {
			return err
		}
	}

	opts := pref.Options()
	spr := pref.Sprite.String()

	md.Visit(func(name string, _ string) {
		switch name {
		case "heartspeed":
			opts.HeartSpeed = features.HeartSpeedSetting(*heartSpeed)
		case "heartcolor":
			opts.HeartColor = features.HeartColorSetting(*heartColor)
		case "menuspeed":
			opts.MenuSpeed = features.MenuSpeedSetting(*menuSpeed)
		case "music":
			opts.Music = *music
		case "quickswap":
			opts.Quickswap = *quickswap
		case "reduceflashing":
			opts.ReduceFlashing = *reduceFlashing
		case "msu1resume":
			opts.MSU1Resume = *msu1Resume
		case "sprite":
			spr = *spriteFile
		}
	})

	if err := opts.Validate(); err != nil {
		return err
	}

	if *save {
		if err := pref.SetOptions(opts); err != nil {
			return err
		}
		if err := pref.Sprite.Set(spr); err != nil {
			return err
		}
		if err := pref.Save(); err != nil {
			return err
		}
	}

	loader := romloader.NewLoader(md.GetArg(0))
	if *noverify {
		loader.Hash = ""
	}
	base, err := loader.Image()
	if err != nil {
		return err
	}

	var sd *seed.Metadata
	if *meta != "" {
		data, err := romloader.Fetch(*meta)
		if err != nil {
			return err
		}
		sd, err = seed.Decode(bytes.NewReader(data))
		if err != nil {
			return err
		}
	}

	s := session.NewSession(base, sd)
	s.Options = opts
	s.SkipSpriteErrors = *skipBadSprite

	if *bpsFile != "" {
		s.BPS, err = romloader.Fetch(*bpsFile)
		if err != nil {
			return err
		}
	}

	if spr != "" {
		s.Sprite, err = romloader.Fetch(spr)
		if err != nil {
			if !*skipBadSprite {
				return err
			}
			logger.Logf(logger.Allow, session.StageSprite, "skipped: %v", err)
		}
	}

	img, err := s.Run()
	if err != nil {
		return err
	}

	if *output == "" {
		hash := "local"
		if sd != nil && sd.Hash != "" {
			hash = sd.Hash
		}
		*output = paths.UniqueFilename(version.ApplicationName, hash) + ".sfc"
	}

	if err := os.WriteFile(*output, img.Bytes(), 0644); err != nil {
		return err
	}

	if *showDigest {
		s.Digest.Write(md.Output)
	}
	fmt.Fprintf(md.Output, "%s written (%s)\n", *output, opts)

	return nil
}

func verify(md *modalflag.Modes) error {
	md.NewMode()
	hash := md.AddString("hash", romloader.ExpectedSHA256, "expected sha256 of the base ROM")

	if ok, err := parse(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("ROM required")
	}

	loader := romloader.NewLoader(md.GetArg(0))
	loader.Hash = *hash
	if err := loader.Load(); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s: ok (sha256 %s", loader.ShortName(), loader.Hash)
	if loader.Headered {
		fmt.Fprint(md.Output, ", copier header removed")
	}
	fmt.Fprintln(md.Output, ")")

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	if ok, err := parse(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("ROM required")
	}

	loader := romloader.NewLoader(md.GetArg(0))
	loader.Hash = ""
	img, err := loader.Image()
	if err != nil {
		return err
	}

	hdr, err := img.Header()
	if err != nil {
		return err
	}

	w := md.Output
	fmt.Fprintln(w, hdr.String())
	fmt.Fprintf(w, "size: %d bytes\n", img.Len())
	fmt.Fprintf(w, "revision: %s\n", img.Revision())
	fmt.Fprintf(w, "checksum valid: %v\n", img.ChecksumValid())
	fmt.Fprintf(w, "copier header: %v\n", loader.Headered)
	fmt.Fprintf(w, "sha256: %s\n", loader.Hash)
	fmt.Fprintf(w, "sha1: %s\n", digest.Image(img))

	return nil
}

func spriteInfo(md *modalflag.Modes) error {
	md.NewMode()
	dot := md.AddString("memviz", "", "write graph of the parsed sprite to file (graphviz dot format)")

	if ok, err := parse(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("sprite file required")
	}

	data, err := romloader.Fetch(md.GetArg(0))
	if err != nil {
		return err
	}
	c, err := sprite.Parse(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, c.String())

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()

		// the graph does not need the pixel data
		summary := *c
		summary.GFX = nil
		summary.Palette = nil
		memviz.Map(f, &summary)
	}

	return nil
}

func checksum(md *modalflag.Modes) error {
	md.NewMode()
	output := md.AddString("o", "", "output filename (default is to overwrite the ROM)")

	if ok, err := parse(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("ROM required")
	}

	loader := romloader.NewLoader(md.GetArg(0))
	loader.Hash = ""
	img, err := loader.Image()
	if err != nil {
		return err
	}

	if err := img.Finalise(); err != nil {
		return err
	}

	if *output == "" {
		*output = md.GetArg(0)
	}
	if err := os.WriteFile(*output, img.Bytes(), 0644); err != nil {
		return err
	}

	hdr, _ := img.Header()
	fmt.Fprintf(md.Output, "%s: checksum %#04x, complement %#04x\n", *output, hdr.Checksum, hdr.Complement)

	return nil
}

func diff(md *modalflag.Modes) error {
	md.NewMode()
	output := md.AddString("o", "", "output filename")
	meta := md.AddString("meta", "", "metadata text to embed in the patch")

	if ok, err := parse(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("source and target required")
	}
	if *output == "" {
		return fmt.Errorf("output filename required")
	}

	source, err := romloader.Fetch(md.GetArg(0))
	if err != nil {
		return err
	}
	target, err := romloader.Fetch(md.GetArg(1))
	if err != nil {
		return err
	}

	patch := bps.Encode(source, target, *meta)

	// a patch that cannot recreate the target is useless
	if _, err := bps.Apply(source, patch); err != nil {
		return err
	}

	if err := os.WriteFile(*output, patch, 0644); err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "%s: %d bytes\n", *output, len(patch))

	return nil
}

func code(md *modalflag.Modes) error {
	md.NewMode()

	if ok, err := parse(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("seed metadata required")
	}

	data, err := romloader.Fetch(md.GetArg(0))
	if err != nil {
		return err
	}
	sd, err := seed.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	c, ok := sd.Code()
	s := strings.Join(c, ", ")
	if !ok {
		s = fmt.Sprintf("%s (default)", s)
	}
	fmt.Fprintln(md.Output, s)

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	if ok, err := parse(md); !ok {
		return err
	}

	fmt.Fprintln(md.Output, version.String())
	return nil
}
