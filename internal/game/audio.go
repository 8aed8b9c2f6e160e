package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the game's sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundPowerUp
	SoundLevelUp
	SoundHurt
	SoundGameOver
	SoundMenuSelect
)

// AudioSystem plays procedurally synthesized sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.55

// InitAudio initializes the audio system. Callers that get an error can keep
// running without sound.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func SetSfxVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

// PlaySound plays a synthesized effect. No-op until the audio context is
// ready or when audio never initialized.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// AttachAudio subscribes the sound effects to engine events.
func AttachAudio(e *Engine) {
	e.On(EventFoodEaten, func(Event) { PlaySound(SoundEat) })
	e.On(EventPowerUpCollected, func(Event) { PlaySound(SoundPowerUp) })
	e.On(EventLevelUp, func(Event) { PlaySound(SoundLevelUp) })
	e.On(EventLifeLost, func(Event) { PlaySound(SoundHurt) })
	e.On(EventGameOver, func(Event) { PlaySound(SoundGameOver) })
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation to avoid harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1]. Attack/decay/
// release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		return genEat()
	case SoundPowerUp:
		return genPowerUp()
	case SoundLevelUp:
		return genLevelUp()
	case SoundHurt:
		return genHurt()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genEat: short ascending FM pop.
func genEat() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 520 + 640*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPowerUp: two quick rising chirps.
func genPowerUp() []byte {
	n := int(0.18 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.3, 0.3)
		seg := math.Mod(p*2, 1)
		freq := 660 + 520*seg
		s := fm(t, freq, 1.5, 2.5*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLevelUp: ascending arpeggio, notes overlapping into a chord tail.
func genLevelUp() []byte {
	notes := []float64{440, 554.37, 659.25, 880}
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.20*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.6, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 3.0, 4.0*env) * env * 0.28
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHurt: low descending thud.
func genHurt() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.2, 0.4)
		freq := 220 * (1 - p*0.5)
		s := fm(t, freq, 0.5, 2.0*env) * env * 0.55
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor arpeggio.
func genGameOver() []byte {
	dur := 0.7
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.15}, // C4
		{220.00, 0.30}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.03)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.32
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuSelect: crisp short blip.
func genMenuSelect() []byte {
	n := int(0.06 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.0, 0.2)
		s := math.Sin(2*math.Pi*980*t) * env * 0.4
		putStereoF32(buf, i, s)
	}
	return buf
}
