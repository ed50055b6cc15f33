package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

var errInvalidSoundFormat = errors.New(
	"sound file must be in mp3, ogg, flac, or wav format",
)

var (
	speakerOnce sync.Once
	speakerErr  error
	// speakerRate is the sample rate the speaker was initialised with.
	// Streams at other rates are resampled.
	speakerRate beep.SampleRate = 44100
)

// decodeSound opens and decodes the sound file at path.
func decodeSound(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()

		return nil, beep.Format{}, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()

		return nil, beep.Format{}, err
	}

	return stream, format, nil
}

// playSound plays the sound file at path once and waits for it to finish.
func playSound(path string) error {
	stream, format, err := decodeSound(path)
	if err != nil {
		return err
	}

	defer stream.Close()

	speakerOnce.Do(func() {
		bufferSize := 10

		speakerErr = speaker.Init(
			speakerRate,
			speakerRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if speakerErr != nil {
		return speakerErr
	}

	var s beep.Streamer = stream
	if format.SampleRate != speakerRate {
		s = beep.Resample(4, format.SampleRate, speakerRate, stream)
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
