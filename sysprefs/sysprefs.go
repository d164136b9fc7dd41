// This file is part of Hode.
//
// Hode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hode.  If not, see <https://www.gnu.org/licenses/>.

// Package sysprefs binds the platform preferences to a prefs.Disk and applies
// them to a system.System.
//
// Values are decided in the following order, later sources taking precedence:
// built in defaults, the preferences file, the command line and finally the
// environment (HODE_GAMMA etc.).
package sysprefs

import (
	"fmt"
	"strings"

	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/prefs"
	"github.com/hode-port/hode/system"

	"github.com/caarlos0/env/v11"
)

// Filename is the name of the preferences file in the config directory.
const Filename = "hode.ini"

// Default values.
const (
	DefaultGamma          = 1.0
	DefaultScaleFactor    = 3
	DefaultScaleAlgorithm = "nearest"
	DefaultAudioDriver    = "oto"

	// milliseconds per frame
	DefaultFrameDuration = 50
)

// AudioDrivers lists the valid values for the audio.driver preference.
var AudioDrivers = []string{"oto", "sdl", "null"}

// Prefs are the preference values used by the platform layer.
type Prefs struct {
	dsk *prefs.Disk

	Gamma          prefs.Float
	ScaleFactor    prefs.Int
	ScaleAlgorithm prefs.String
	Fullscreen     prefs.Bool
	Widescreen     prefs.Bool
	AudioDriver    prefs.String
	FrameDuration  prefs.Int
}

func (p *Prefs) String() string {
	return p.dsk.String()
}

// environment is the set of environment variables that override preference
// values. a nil field means the variable is not set.
type environment struct {
	Gamma          *float64 `env:"GAMMA"`
	ScaleFactor    *int     `env:"SCALE_FACTOR"`
	ScaleAlgorithm *string  `env:"SCALE_ALGORITHM"`
	Fullscreen     *bool    `env:"FULLSCREEN"`
	Widescreen     *bool    `env:"WIDESCREEN"`
	AudioDriver    *string  `env:"AUDIO_DRIVER"`
	FrameDuration  *int     `env:"FRAME_DURATION"`
}

// EnvPrefix is the prefix of all environment variables read by Load().
const EnvPrefix = "HODE_"

// NewPrefs is the preferred method of initialisation for the Prefs type. The
// preferences are set to their default values. Call Load() to read the
// preferences file.
func NewPrefs(path string) (*Prefs, error) {
	p := &Prefs{}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("sysprefs: %w", err)
	}

	p.Gamma.SetHookPre(func(v prefs.Value) error {
		if g := v.(float64); g <= 0 {
			return fmt.Errorf("sysprefs: gamma must be positive (%v)", g)
		}
		return nil
	})
	p.ScaleFactor.SetHookPre(func(v prefs.Value) error {
		if f := v.(int); f < 1 {
			return fmt.Errorf("sysprefs: scale factor must be one or more (%d)", f)
		}
		return nil
	})
	p.AudioDriver.SetHookPre(func(v prefs.Value) error {
		d := strings.ToLower(v.(string))
		for _, a := range AudioDrivers {
			if d == a {
				return nil
			}
		}
		return fmt.Errorf("sysprefs: unknown audio driver (%s)", d)
	})
	p.FrameDuration.SetHookPre(func(v prefs.Value) error {
		if d := v.(int); d < 1 {
			return fmt.Errorf("sysprefs: frame duration must be one or more (%d)", d)
		}
		return nil
	})

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefsValue{
		"display.gamma":           &p.Gamma,
		"display.scale_factor":    &p.ScaleFactor,
		"display.scale_algorithm": &p.ScaleAlgorithm,
		"display.fullscreen":      &p.Fullscreen,
		"display.widescreen":      &p.Widescreen,
		"audio.driver":            &p.AudioDriver,
		"engine.frame_duration":   &p.FrameDuration,
	} {
		err = p.dsk.Add(k, v)
		if err != nil {
			return nil, fmt.Errorf("sysprefs: %w", err)
		}
	}

	return p, nil
}

// prefsValue is the interface accepted by prefs.Disk.Add()
type prefsValue interface {
	fmt.Stringer
	Set(value prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults sets all preferences to their default values.
func (p *Prefs) SetDefaults() error {
	for _, err := range []error{
		p.Gamma.Set(DefaultGamma),
		p.ScaleFactor.Set(DefaultScaleFactor),
		p.ScaleAlgorithm.Set(DefaultScaleAlgorithm),
		p.Fullscreen.Set(false),
		p.Widescreen.Set(false),
		p.AudioDriver.Set(DefaultAudioDriver),
		p.FrameDuration.Set(DefaultFrameDuration),
	} {
		if err != nil {
			return fmt.Errorf("sysprefs: %w", err)
		}
	}
	return nil
}

// SetCommandLine attaches command line overrides. See prefs.CommandLine.
func (p *Prefs) SetCommandLine(cl *prefs.CommandLine) {
	p.dsk.SetCommandLine(cl)
}

// Load the preferences file, creating it if it does not exist. Environment
// overrides are applied afterwards.
func (p *Prefs) Load() error {
	err := p.dsk.Load(true)
	if err != nil {
		return fmt.Errorf("sysprefs: %w", err)
	}
	return p.LoadEnvironment(nil)
}

// LoadEnvironment applies environment variable overrides. If environ is nil
// then the process environment is used. Environment overrides are not saved
// to the preferences file unless Save() is called.
func (p *Prefs) LoadEnvironment(environ map[string]string) error {
	var e environment
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}
	err := env.ParseWithOptions(&e, opts)
	if err != nil {
		return fmt.Errorf("sysprefs: %w", err)
	}

	set := func(name string, pref interface{ Set(prefs.Value) error }, v prefs.Value) error {
		logger.Logf(logger.Allow, "sysprefs", "%s%s=%v", EnvPrefix, name, v)
		if err := pref.Set(v); err != nil {
			return fmt.Errorf("sysprefs: %s%s: %w", EnvPrefix, name, err)
		}
		return nil
	}

	if e.Gamma != nil {
		if err := set("GAMMA", &p.Gamma, *e.Gamma); err != nil {
			return err
		}
	}
	if e.ScaleFactor != nil {
		if err := set("SCALE_FACTOR", &p.ScaleFactor, *e.ScaleFactor); err != nil {
			return err
		}
	}
	if e.ScaleAlgorithm != nil {
		if err := set("SCALE_ALGORITHM", &p.ScaleAlgorithm, *e.ScaleAlgorithm); err != nil {
			return err
		}
	}
	if e.Fullscreen != nil {
		if err := set("FULLSCREEN", &p.Fullscreen, *e.Fullscreen); err != nil {
			return err
		}
	}
	if e.Widescreen != nil {
		if err := set("WIDESCREEN", &p.Widescreen, *e.Widescreen); err != nil {
			return err
		}
	}
	if e.AudioDriver != nil {
		if err := set("AUDIO_DRIVER", &p.AudioDriver, *e.AudioDriver); err != nil {
			return err
		}
	}
	if e.FrameDuration != nil {
		if err := set("FRAME_DURATION", &p.FrameDuration, *e.FrameDuration); err != nil {
			return err
		}
	}

	return nil
}

// Save the preferences file.
func (p *Prefs) Save() error {
	return p.dsk.Save()
}

// Attach the preferences to a system. The current display values are applied
// immediately and any later change to the gamma or scaler preferences is
// applied as it happens. Fullscreen and widescreen are only read when the
// system is initialised and so are not applied by Attach().
func (p *Prefs) Attach(sys system.System) {
	p.Gamma.SetHookPost(func(v prefs.Value) error {
		sys.SetGamma(v.(float64))
		return nil
	})
	p.ScaleFactor.SetHookPost(func(v prefs.Value) error {
		sys.SetScaler("", v.(int))
		return nil
	})
	p.ScaleAlgorithm.SetHookPost(func(v prefs.Value) error {
		sys.SetScaler(v.(string), 0)
		return nil
	})

	sys.SetGamma(p.Gamma.Get().(float64))
	sys.SetScaler(p.ScaleAlgorithm.String(), p.ScaleFactor.Get().(int))
}
