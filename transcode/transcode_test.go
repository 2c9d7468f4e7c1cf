package transcode

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeWAV encodes interleaved 16-bit samples to a temp file
func writeWAV(t *testing.T, sampleRate, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "answer.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())

	return path
}

func TestDecodeFileStereoWAV(t *testing.T) {
	// left at half scale, right silent
	frames := 1600
	data := make([]int, frames*2)
	for i := range frames {
		data[i*2] = 16384
	}
	path := writeWAV(t, 16000, 2, data)

	decoded, err := DecodeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 16000, decoded.SampleRate)
	assert.Equal(t, 1, decoded.Channels)
	assert.Equal(t, path, decoded.Source)
	assert.Equal(t, "pcm_s16le", decoded.Codec)
	require.Len(t, decoded.PCM, frames)
	assert.InDelta(t, 0.25, decoded.PCM[0], 1e-9)
	assert.InDelta(t, 0.1, decoded.Duration.Seconds(), 1e-9)
}

func TestDecodeFileResamplesWAV(t *testing.T) {
	data := make([]int, 48000)
	for i := range data {
		data[i] = int(8000 * math.Sin(2*math.Pi*300*float64(i)/48000))
	}
	path := writeWAV(t, 48000, 1, data)

	decoded, err := DecodeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 16000, decoded.SampleRate)
	assert.Greater(t, len(decoded.PCM), 12000)
	assert.LessOrEqual(t, len(decoded.PCM), 16100)
}

func TestDecodeMaxDuration(t *testing.T) {
	path := writeWAV(t, 16000, 1, make([]int, 32000))

	cfg := DefaultDecoderConfig()
	cfg.MaxDuration = 500 * time.Millisecond
	decoded, err := NewDecoder(cfg).DecodeFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, decoded.PCM, 8000)
}

func TestDecodeBytesUnsupported(t *testing.T) {
	cfg := DefaultDecoderConfig()
	cfg.FFmpegPath = "poise-test-missing-ffmpeg"
	d := NewDecoder(cfg)

	_, err := d.DecodeBytes(context.Background(), []byte("definitely not audio"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = d.DecodeBytes(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = d.DecodeFile(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

func TestIsWAV(t *testing.T) {
	assert.True(t, isWAV([]byte("RIFF\x00\x00\x00\x00WAVEfmt ")))
	assert.False(t, isWAV([]byte("OggS\x00\x02")))
	assert.False(t, isWAV(nil))
}

func TestDownmixToMono(t *testing.T) {
	assert.Equal(t, []float64{0.5, 0, 0.25}, DownmixToMono([]float64{1, 0, 0.5, -0.5, 0.25, 0.25}, 2))
	assert.Equal(t, []float64{0.5}, DownmixToMono([]float64{0.5, 0.5, 0.9}, 2))

	mono := []float64{0.1, 0.2}
	assert.Equal(t, mono, DownmixToMono(mono, 1))
}

func TestResample(t *testing.T) {
	pcm := []float64{0.1, 0.2, 0.3}
	out, err := Resample(pcm, 16000, 16000)
	require.NoError(t, err)
	assert.Equal(t, pcm, out)

	_, err = Resample(pcm, 0, 16000)
	assert.Error(t, err)
}

func TestBytesToFloat64(t *testing.T) {
	raw := make([]byte, 8*2+3)
	binary.LittleEndian.PutUint64(raw[0:], math.Float64bits(0.5))
	binary.LittleEndian.PutUint64(raw[8:], math.Float64bits(-1))

	assert.Equal(t, []float64{0.5, -1}, bytesToFloat64(raw))
	assert.Empty(t, bytesToFloat64([]byte{1, 2, 3}))
}

func TestBuildFFmpegArgs(t *testing.T) {
	cfg := DefaultDecoderConfig()
	cfg.EnableNormalization = true
	args := NewDecoder(cfg).buildFFmpegArgs()

	assert.Contains(t, args, "16000")
	assert.Contains(t, args, "aresample=resampler=soxr:precision=28,dynaudnorm=p=0.95:m=10:s=12")
	assert.Equal(t, "pipe:1", args[len(args)-1])
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, NewDecoder(nil).ValidateConfig())

	cfg := DefaultDecoderConfig()
	cfg.ResampleQuality = "ultra"
	assert.Error(t, NewDecoder(cfg).ValidateConfig())

	cfg = DefaultDecoderConfig()
	cfg.TargetSampleRate = 0
	assert.Error(t, NewDecoder(cfg).ValidateConfig())
}

func TestDecodeRemovesDC(t *testing.T) {
	// constant quarter-scale offset
	data := make([]int, 16000)
	for i := range data {
		data[i] = 8192
	}
	path := writeWAV(t, 16000, 1, data)

	cfg := DefaultDecoderConfig()
	cfg.RemoveDC = true
	require.NoError(t, NewDecoder(cfg).ValidateConfig())

	decoded, err := NewDecoder(cfg).DecodeFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, decoded.PCM, 16000)
	for _, v := range decoded.PCM {
		require.InDelta(t, 0.0, v, 1e-9)
	}

	cfg.DCCutoff = 9000
	assert.Error(t, NewDecoder(cfg).ValidateConfig())
}
