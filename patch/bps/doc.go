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

// Package bps decodes and creates patches in the BPS binary diff format.
//
// A BPS patch is the four byte magic "BPS1", the variable length encoded
// sizes of the source and the target, a metadata string and then a stream
// of actions that build the target from the source and from data carried in
// the patch itself. The patch ends with the CRC-32 of the source, the target
// and the patch.
//
// The Apply() function checks the patch and source CRCs before decoding and
// the target CRC after. A checksum failure is reported with the PatchCorrupt
// pattern. A patch that cannot be decoded for any other reason is reported
// with the Malformed pattern.
package bps
