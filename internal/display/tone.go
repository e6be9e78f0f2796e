package display

import (
	"bytes"
	"encoding/binary"
)

// toneSampleRate is the sample rate of the embedded buzzer tone.
const toneSampleRate = 8000

// toneSamples is one period of an 8-bit unsigned PCM square wave,
// repeated by beep.Loop in Window.Beep. Replaces the teacher's
// assets/beep.mp3 (an external file the binary had to ship alongside
// itself) with a tone baked into the binary — see SPEC_FULL.md §4.6.
var toneSamples = buildSquareWave(40, 200, 50)

// embeddedToneWAV is a minimal PCM WAV file wrapping toneSamples, built
// once at init so Window.initAudio can decode it exactly like it would
// decode a file loaded from disk.
var embeddedToneWAV = buildWAV(toneSamples, toneSampleRate)

func buildSquareWave(halfPeriod int, high, low byte) []byte {
	samples := make([]byte, halfPeriod*2)
	for i := 0; i < halfPeriod; i++ {
		samples[i] = high
	}
	for i := halfPeriod; i < halfPeriod*2; i++ {
		samples[i] = low
	}
	return samples
}

// buildWAV wraps 8-bit mono PCM samples in a canonical 44-byte RIFF/WAVE
// header.
func buildWAV(samples []byte, sampleRate uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // subchunk1 size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // mono
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, sampleRate) // byte rate (1 byte/sample * 1 channel)
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // block align
	binary.Write(&buf, binary.LittleEndian, uint16(8))  // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)

	return buf.Bytes()
}
