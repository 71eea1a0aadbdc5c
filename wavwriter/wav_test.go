// This file is part of RetroArch-gekko.
//
// RetroArch-gekko is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RetroArch-gekko is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RetroArch-gekko.  If not, see <https://www.gnu.org/licenses/>.

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/test"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 32000)
	test.DemandSuccess(t, err)

	aw.AudioSample(100, -100)
	n := aw.AudioSampleBatch([]int16{1, 2, 3, 4, 5, 6}, 3)
	test.ExpectEquality(t, n, uint(3))

	// more frames requested than there is data for
	n = aw.AudioSampleBatch([]int16{7, 8, 9}, 4)
	test.ExpectEquality(t, n, uint(1))
	test.ExpectEquality(t, aw.Frames(), 5)

	test.DemandSuccess(t, aw.Close())

	// samples after close are ignored
	aw.AudioSample(1, 1)
	test.ExpectEquality(t, aw.Frames(), 5)
	test.ExpectSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.SampleRate), 32000)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 10)
	test.ExpectEquality(t, buf.Data[0], 100)
	test.ExpectEquality(t, buf.Data[1], -100)
	test.ExpectEquality(t, buf.Data[9], 8)
}

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.New("", 0)
	test.ExpectFailure(t, err)
}
