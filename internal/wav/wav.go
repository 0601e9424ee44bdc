// Package wav packages raw PCM samples into a playable WAV container.
package wav

import (
	"encoding/base64"
	"encoding/binary"
)

// Default format of the audio returned by the generation provider:
// headerless little-endian 16-bit PCM, mono, 24 kHz.
const (
	DefaultChannels   = 1
	DefaultSampleRate = 24000
	DefaultBitDepth   = 16
)

const headerSize = 44

// Encode wraps pcm in a canonical 44-byte RIFF/WAVE header. All multi-byte
// header fields are little-endian and the declared data size always equals
// the PCM byte count, so the output is byte-for-byte reproducible.
// A trailing partial sample block is dropped rather than declared.
func Encode(pcm []byte, channels, sampleRate, bitDepth int) []byte {
	blockAlign := channels * bitDepth / 8
	if blockAlign > 0 {
		pcm = pcm[:len(pcm)-len(pcm)%blockAlign]
	}
	byteRate := sampleRate * blockAlign
	dataSize := len(pcm)

	out := make([]byte, headerSize+dataSize)
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], uint16(bitDepth))

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))
	copy(out[headerSize:], pcm)

	return out
}

// EncodeDefault encodes pcm using the provider's fixed output format.
func EncodeDefault(pcm []byte) []byte {
	return Encode(pcm, DefaultChannels, DefaultSampleRate, DefaultBitDepth)
}

// DataURI wraps an encoded WAV byte stream in a data:audio/wav;base64 URI.
func DataURI(wavData []byte) string {
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wavData)
}
