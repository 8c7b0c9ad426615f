package scene

import (
	"errors"
	"flag"

	"github.com/phanxgames/hoverpick/config"
)

// Options are the command-line options shared by the exercises.
type Options struct {
	Config string
	Watch  bool
	Script string
	Debug  bool
}

// RegisterFlags binds Options to fs.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.Config, "config", "", "settings file; defaults to the embedded one")
	fs.BoolVar(&o.Watch, "watch", false, "reload the -config file when it changes")
	fs.StringVar(&o.Script, "script", "", "YAML pointer script to drive the exercise")
	fs.BoolVar(&o.Debug, "debug", false, "log tracker transitions and show the overlay")
}

// Load reads the settings named by the options, falling back to the
// embedded file name.
func (o *Options) Load(name string) (config.Scene, error) {
	var (
		cfg config.Scene
		err error
	)
	if o.Config != "" {
		cfg, err = config.LoadSceneFile(o.Config)
	} else {
		cfg, err = config.LoadScene(name)
	}
	if err != nil {
		return cfg, err
	}
	if o.Script != "" {
		cfg.Script = o.Script
	}
	if o.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// Setup parses the command line, loads the settings of the exercise name
// (e.g. "clicks.yaml") and builds its context.
func Setup(name string) (*Context, error) {
	var opts Options
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()
	return opts.Setup(name)
}

// Setup loads settings and builds a context, watching the settings file when
// asked to.
func (o *Options) Setup(name string) (*Context, error) {
	if o.Watch && o.Config == "" {
		return nil, errors.New("scene: -watch needs -config")
	}
	cfg, err := o.Load(name)
	if err != nil {
		return nil, err
	}
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if o.Watch {
		if err := c.WatchConfig(o.Config); err != nil {
			return nil, err
		}
	}
	return c, nil
}
