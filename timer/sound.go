package timer

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pterm/pterm"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

// prepSoundStream returns an audio stream for the specified sound.
// Names without an extension are resolved as OGG files in the sounds
// directory.
func prepSoundStream(sound string) (beep.StreamSeekCloser, error) {
	var (
		f      fs.File
		err    error
		stream beep.StreamSeekCloser
		format beep.Format
	)

	ext := filepath.Ext(sound)
	if ext == "" {
		sound = filepath.Join(config.SoundPath(), sound+".ogg")
	}

	f, err = os.Open(sound)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	ext = filepath.Ext(sound)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return nil, err
	}

	err = stream.Seek(0)
	if err != nil {
		return nil, err
	}

	return stream, nil
}

// setAmbientSound prepares an infinite stream of the configured ambient
// sound.
func (t *Timer) setAmbientSound() error {
	var infiniteStream beep.Streamer

	if t.Opts.Settings.AmbientSound != "" {
		stream, err := prepSoundStream(t.Opts.Settings.AmbientSound)
		if err != nil {
			return err
		}

		infiniteStream, err = beep.Loop2(stream)
		if err != nil {
			return err
		}
	}

	t.SoundStream = infiniteStream

	return nil
}

// playSessionSound starts ambient playback and the start chime for a
// new session.
func (t *Timer) playSessionSound(kind session.Kind) {
	speaker.Clear()

	if t.SoundStream != nil &&
		(kind == session.Focus || t.Opts.Settings.SoundOnBreak) {
		speaker.Play(t.SoundStream)
	}

	sound := t.Opts.Focus.Sound
	if kind == session.Rest {
		sound = t.Opts.Rest.Sound
	}

	playOnce(sound)
}

// playPromptSound plays the attention check chime.
func (t *Timer) playPromptSound() {
	playOnce(t.Opts.Monitor.Sound)
}

// playOnce plays a sound a single time without blocking the caller.
func playOnce(sound string) {
	if sound == "" || sound == config.SoundOff {
		return
	}

	stream, err := prepSoundStream(sound)
	if err != nil {
		pterm.Error.Printfln("unable to play sound: %v", err)
		return
	}

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		stream.Close()
	})))
}
