package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// decoders turn an encoded file into PCM at the context's sample rate,
// keyed by lower-case file extension.
var decoders = map[string]func(sampleRate int, r io.Reader) (io.Reader, error){
	".ogg": func(sampleRate int, r io.Reader) (io.Reader, error) {
		return vorbis.DecodeWithSampleRate(sampleRate, r)
	},
	".wav": func(sampleRate int, r io.Reader) (io.Reader, error) {
		return wav.DecodeWithSampleRate(sampleRate, r)
	},
}

// AudioLoader decodes embedded sound effects once and hands out a fresh
// player per play, so overlapping swings do not cut each other off.
type AudioLoader struct {
	pcm     map[string][]byte
	context *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		pcm:     make(map[string][]byte),
		context: ctx,
	}
}

// PreloadSFX decodes p into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(p string) error {
	_, err := l.decode(p)
	return err
}

// LoadSFX returns a new player for the sound effect at p.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	pcm, err := l.decode(p)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

func (l *AudioLoader) decode(p string) ([]byte, error) {
	if pcm, ok := l.pcm[p]; ok {
		return pcm, nil
	}

	decodeFn, err := decoderFor(p)
	if err != nil {
		return nil, err
	}

	data, err := audioFS.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	stream, err := decodeFn(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}

	l.pcm[p] = pcm
	return pcm, nil
}

func decoderFor(p string) (func(int, io.Reader) (io.Reader, error), error) {
	ext := strings.ToLower(path.Ext(p))
	decodeFn, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported audio format: %q", ext)
	}
	return decodeFn, nil
}

// HasSound reports whether p names an embedded sound effect.
func HasSound(p string) bool {
	_, err := audioFS.Open(p)
	return err == nil
}
