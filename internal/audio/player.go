// Package audio plays a user-chosen track and exposes its loudness so the
// network can pulse with it.
package audio

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/orbit-network/internal/config"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned for files that are not wav, mp3 or flac.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Player owns the speaker and the currently playing track.
type Player struct {
	mu       sync.Mutex
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *Tap
	paused   bool
	initDone bool
}

func NewPlayer() *Player {
	return &Player{}
}

// OpenDialog asks the user for a file and plays it. Cancelling the dialog is
// not an error.
func (p *Player) OpenDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return errors.Wrap(err, "select file")
	}
	return p.Play(filename)
}

// Decode opens path and picks a decoder by extension.
func Decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, nil, format, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, format, errors.Wrap(err, "open audio")
	}
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, format, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return f, streamer, format, nil
}

// Play stops any current track and starts path.
func (p *Player) Play(path string) error {
	f, streamer, format, err := Decode(path)
	if err != nil {
		return err
	}

	// Prepare audio chain: streamer -> tap -> ctrl
	t := NewTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}

	p.mu.Lock()
	defer p.mu.Unlock()

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return errors.Wrap(err, "init speaker")
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return errors.Wrap(err, "reinit speaker")
		}
	default:
		speaker.Clear()
	}
	p.closeLocked()

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.paused = false

	log.Printf("audio: playing %s", filepath.Base(path))
	// The callback runs with the speaker locked; finish on another goroutine
	// so p.mu is never taken under the speaker lock.
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		go p.finished(streamer)
	})))
	return nil
}

func (p *Player) finished(streamer beep.StreamSeekCloser) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == streamer {
		p.closeLocked()
	}
}

// TogglePause pauses or resumes the current track.
func (p *Player) TogglePause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Samples returns the most recent n samples of the current track, or nil
// when nothing is playing.
func (p *Player) Samples(n int) [][2]float64 {
	p.mu.Lock()
	t, paused := p.tap, p.paused
	p.mu.Unlock()
	if t == nil || paused {
		return nil
	}
	return t.Snapshot(n)
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl != nil && !p.paused
}

func (p *Player) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl != nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initDone {
		speaker.Clear()
	}
	p.closeLocked()
}

func (p *Player) closeLocked() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
}
