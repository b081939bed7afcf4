package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	headerSize = 12
	pcmFormat  = 1
)

// Features holds the acoustic measurements computed from a decoded clip.
// Amplitude values are on the raw 16-bit PCM scale (0..32767); Intensity
// is the RMS normalized to 0..1.
type Features struct {
	RMS              float64 `json:"rms"`
	Peak             float64 `json:"peak"`
	ZCR              float64 `json:"zcr"`
	SpectralCentroid float64 `json:"spectralCentroid"`
	Duration         float64 `json:"duration"`
	Intensity        float64 `json:"intensity"`
	SampleRate       int     `json:"sampleRate"`
	Channels         int     `json:"channels"`
}

// Audio is a decoded mono view of a PCM wav file
type Audio struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// ValidateHeader checks the 12-byte RIFF/WAVE container header.
// This is the minimal acceptance check applied to every upload.
func ValidateHeader(header []byte) error {
	if len(header) < headerSize {
		return ErrInvalidHeader
	}
	if !bytes.Equal(header[0:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return ErrInvalidHeader
	}
	return nil
}

// ValidateFile reads just enough of the file to run the header check
func ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return ErrInvalidHeader
	}
	return ValidateHeader(header)
}

// Decode parses a 16-bit PCM wav stream and mixes it down to mono
func Decode(r io.Reader) (*Audio, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, ErrInvalidHeader
	}
	if err := ValidateHeader(header); err != nil {
		return nil, err
	}

	var (
		audioFormat   uint16
		channels      uint16
		sampleRate    uint32
		bitsPerSample uint16
		data          []byte
		haveFmt       bool
	)

	for {
		chunkHeader := make([]byte, 8)
		if _, err := io.ReadFull(r, chunkHeader); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, fmt.Errorf("reading chunk header: %w", err)
		}

		chunkID := string(chunkHeader[0:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch chunkID {
		case "fmt ":
			body := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, ErrTruncatedFile
			}
			if chunkSize < 16 {
				return nil, ErrInvalidHeader
			}
			audioFormat = binary.LittleEndian.Uint16(body[0:2])
			channels = binary.LittleEndian.Uint16(body[2:4])
			sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(body[14:16])
			haveFmt = true
		case "data":
			body := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, ErrTruncatedFile
			}
			data = body
		default:
			// Skip unknown chunks, honoring the RIFF pad byte
			skip := int64(chunkSize)
			if chunkSize%2 == 1 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				break
			}
		}

		// Chunks are padded to even byte counts
		if (chunkID == "fmt " || chunkID == "data") && chunkSize%2 == 1 {
			_, _ = io.CopyN(io.Discard, r, 1)
		}

		if haveFmt && data != nil {
			break
		}
	}

	if !haveFmt {
		return nil, ErrInvalidHeader
	}
	if audioFormat != pcmFormat || bitsPerSample != 16 {
		return nil, ErrUnsupportedFormat
	}
	if channels == 0 || sampleRate == 0 {
		return nil, ErrInvalidHeader
	}
	if len(data) == 0 {
		return nil, ErrNoAudioData
	}

	frameSize := int(channels) * 2
	frames := len(data) / frameSize
	if frames == 0 {
		return nil, ErrNoAudioData
	}

	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < int(channels); ch++ {
			offset := i*frameSize + ch*2
			sample := int16(binary.LittleEndian.Uint16(data[offset : offset+2]))
			sum += float64(sample)
		}
		samples[i] = sum / float64(channels)
	}

	return &Audio{
		Samples:    samples,
		SampleRate: int(sampleRate),
		Channels:   int(channels),
	}, nil
}

// DecodeFile decodes a wav file from disk
func DecodeFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// ComputeFeatures derives the acoustic measurements from decoded audio
func ComputeFeatures(audio *Audio) Features {
	n := len(audio.Samples)
	if n == 0 || audio.SampleRate == 0 {
		return Features{SampleRate: audio.SampleRate, Channels: audio.Channels}
	}

	var sumSquares, peak float64
	crossings := 0
	for i, s := range audio.Samples {
		sumSquares += s * s
		if abs := math.Abs(s); abs > peak {
			peak = abs
		}
		if i > 0 && signChanged(audio.Samples[i-1], s) {
			crossings++
		}
	}

	rms := math.Sqrt(sumSquares / float64(n))

	zcr := 0.0
	if n > 1 {
		zcr = float64(crossings) / float64(n-1)
	}

	// A sinusoid at frequency f crosses zero 2f times per second, so the
	// crossing rate gives a cheap dominant-frequency estimate.
	centroid := zcr * float64(audio.SampleRate) / 2.0

	intensity := rms / 32768.0
	if intensity > 1.0 {
		intensity = 1.0
	}

	return Features{
		RMS:              rms,
		Peak:             peak,
		ZCR:              zcr,
		SpectralCentroid: centroid,
		Duration:         float64(n) / float64(audio.SampleRate),
		Intensity:        intensity,
		SampleRate:       audio.SampleRate,
		Channels:         audio.Channels,
	}
}

// AnalyzeFile validates, decodes, and measures a wav file in one pass
func AnalyzeFile(path string) (Features, error) {
	audio, err := DecodeFile(path)
	if err != nil {
		return Features{}, err
	}
	return ComputeFeatures(audio), nil
}

func signChanged(prev, cur float64) bool {
	return (prev < 0 && cur >= 0) || (prev >= 0 && cur < 0)
}
