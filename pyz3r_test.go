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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tcprescott/pyz3r/modalflag"
	"github.com/tcprescott/pyz3r/patch/bps"
	"github.com/tcprescott/pyz3r/rom"
	"github.com/tcprescott/pyz3r/test"
)

func run(args ...string) (int, string) {
	tw := &test.Writer{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs(args)
	return launch(md), tw.String()
}

// chdir to a temporary directory containing the resource directory so that
// preferences are not written to the user's config directory.
func workspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".pyz3r"), 0755))

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	test.DemandSuccess(t, os.WriteFile(name, data, 0644))
	return name
}

func TestVersionMode(t *testing.T) {
	rc, out := run("version")
	test.ExpectEquality(t, rc, 0)
	test.ExpectEquality(t, strings.HasPrefix(out, "pyz3r "), true)
}

func TestHelp(t *testing.T) {
	rc, out := run("-help")
	test.ExpectEquality(t, rc, 0)
	test.ExpectEquality(t, strings.Contains(out, "available sub-modes: PATCH, VERIFY"), true)
}

func TestCodeMode(t *testing.T) {
	dir := t.TempDir()
	meta := writeFile(t, filepath.Join(dir, "seed.json"),
		[]byte(`{"patch":[{"1573397":[31,30,29,28,27]}],"size":2,"hash":"abc"}`))

	rc, out := run("code", meta)
	test.ExpectEquality(t, rc, 0)
	test.ExpectEquality(t, out, "Big Key, Compass, Map, Heart, Tunic\n")

	meta = writeFile(t, filepath.Join(dir, "nocode.json"), []byte(`{"patch":[],"size":2}`))
	rc, out = run("code", meta)
	test.ExpectEquality(t, rc, 0)
	test.ExpectEquality(t, out, "Bow, Boomerang, Hookshot, Bombs, Mushroom (default)\n")

	rc, _ = run("code")
	test.ExpectEquality(t, rc, exitModeError)
}

func TestDiffMode(t *testing.T) {
	dir := t.TempDir()
	source := make([]byte, 1024)
	target := make([]byte, 1024)
	copy(target[100:], "pyz3r")

	src := writeFile(t, filepath.Join(dir, "source.sfc"), source)
	tgt := writeFile(t, filepath.Join(dir, "target.sfc"), target)
	out := filepath.Join(dir, "out.bps")

	rc, _ := run("diff", "-o", out, "-meta", "test", src, tgt)
	test.DemandEquality(t, rc, 0)

	diff, err := os.ReadFile(out)
	test.DemandSuccess(t, err)

	result, err := bps.Apply(source, diff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(result), string(target))

	meta, err := bps.Metadata(diff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, meta, "test")

	// missing output filename
	rc, _ = run("diff", src, tgt)
	test.ExpectEquality(t, rc, exitModeError)
}

func TestChecksumMode(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 64*1024)
	data[0] = 3
	in := writeFile(t, filepath.Join(dir, "in.sfc"), data)
	out := filepath.Join(dir, "out.sfc")

	rc, _ := run("checksum", "-o", out, in)
	test.DemandEquality(t, rc, 0)

	result, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	img := rom.Load(result)
	test.ExpectEquality(t, img.ChecksumValid(), true)

	// input file is unchanged
	orig, err := os.ReadFile(in)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(orig), string(data))
}

func TestVerifyMode(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "bad.sfc"), make([]byte, 1024))

	rc, out := run("verify", in)
	test.ExpectEquality(t, rc, exitModeError)
	test.ExpectEquality(t, strings.Contains(out, "sha256 is"), true)

	rc, _ = run("verify", "-hash", "", in)
	test.ExpectEquality(t, rc, 0)
}

func TestInfoMode(t *testing.T) {
	dir := t.TempDir()
	img := rom.NewImage(1024 * 1024)
	test.DemandSuccess(t, img.Finalise())
	in := writeFile(t, filepath.Join(dir, "info.sfc"), img.Bytes())

	rc, out := run("info", in)
	test.ExpectEquality(t, rc, 0)
	test.ExpectEquality(t, strings.Contains(out, "checksum valid: true"), true)
}

func TestPatchMode(t *testing.T) {
	dir := workspace(t)

	base := writeFile(t, filepath.Join(dir, "base.sfc"), rom.NewImage(2*rom.MB).Bytes())
	meta := writeFile(t, filepath.Join(dir, "seed.json"),
		[]byte(`{"patch":[{"100":[1,2,3]}],"size":4,"hash":"abc"}`))
	out := filepath.Join(dir, "out.sfc")

	rc, msg := run("-meta", meta, "-o", out, "-heartspeed", "quarter", "-noverify", base)
	test.DemandEquality(t, rc, 0, msg)

	data, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	img := rom.Load(data)
	test.ExpectEquality(t, img.Len(), 4*rom.MB)
	test.ExpectEquality(t, img.ChecksumValid(), true)

	b, err := img.ReadBytesAt(100, 3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "\x01\x02\x03")

	v, err := img.ReadByteAt(0x180033)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(128))

	// base ROM is verified by default
	rc, _ = run("patch", "-meta", meta, "-o", out, base)
	test.ExpectEquality(t, rc, exitModeError)

	// invalid option
	rc, _ = run("patch", "-heartspeed", "fastest", "-noverify", base)
	test.ExpectEquality(t, rc, exitModeError)
}

func TestPatchModeSave(t *testing.T) {
	dir := workspace(t)

	base := writeFile(t, filepath.Join(dir, "base.sfc"), rom.NewImage(2*rom.MB).Bytes())
	out := filepath.Join(dir, "out.sfc")

	rc, msg := run("patch", "-heartspeed", "off", "-save", "-noverify", "-o", out, base)
	test.DemandEquality(t, rc, 0, msg)

	prefs, err := os.ReadFile(filepath.Join(".pyz3r", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(prefs), "patch.heartspeed :: off"), true)

	// the saved value is now the default
	rc, msg = run("patch", "-noverify", "-o", out, base)
	test.DemandEquality(t, rc, 0, msg)

	data, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	v, err := rom.Load(data).ReadByteAt(0x180033)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(0))

	// command line preferences apply to this run only
	rc, msg = run("patch", "-noverify", "-prefs", "patch.heartspeed::double", "-o", out, base)
	test.DemandEquality(t, rc, 0, msg)

	data, err = os.ReadFile(out)
	test.DemandSuccess(t, err)
	v, err = rom.Load(data).ReadByteAt(0x180033)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(16))

	prefs, err = os.ReadFile(filepath.Join(".pyz3r", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(prefs), "patch.heartspeed :: off"), true)
}
