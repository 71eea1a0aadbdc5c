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

// Package wavwriter allows writing of audio data to disk as a WAV file. It is
// used as the native audio driver when running without a sound device, the
// audio produced by the core (or passed through by the netplay layer) being
// recorded rather than played.
//
// Audio data is buffered in memory in its entirity and written to disk when
// Close() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
)

// DefaultSampleRate is the sample rate used if none is specified.
const DefaultSampleRate = 44100

const (
	numChannels = 2
	bitDepth    = 16

	// audio format value for uncompressed PCM data in the WAV header
	formatPCM = 1
)

// WavWriter records interleaved stereo samples. It implements the audio
// driver interface expected by the netplay package.
type WavWriter struct {
	crit       sync.Mutex
	filename   string
	sampleRate int
	buffer     []int
	closed     bool
}

// New is the preferred method of initialisation for the WavWriter type. A
// sample rate of zero or less selects DefaultSampleRate.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate*numChannels),
	}, nil
}

// AudioSample records a single stereo frame.
func (aw *WavWriter) AudioSample(left int16, right int16) {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	if aw.closed {
		return
	}
	aw.buffer = append(aw.buffer, int(left), int(right))
}

// AudioSampleBatch records a batch of interleaved stereo frames. Returns the
// number of frames consumed.
func (aw *WavWriter) AudioSampleBatch(data []int16, frames uint) uint {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	if aw.closed {
		return 0
	}

	n := min(int(frames)*numChannels, len(data))
	n -= n % numChannels
	for _, s := range data[:n] {
		aw.buffer = append(aw.buffer, int(s))
	}
	return uint(n / numChannels)
}

// Frames returns the number of stereo frames recorded so far.
func (aw *WavWriter) Frames() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer) / numChannels
}

// Close writes the recorded audio to disk. Further samples are ignored.
func (aw *WavWriter) Close() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	if aw.closed {
		return nil
	}
	aw.closed = true

	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
