// Package inject writes a freshly generated signing key into jwt.key of a
// YAML configuration document.
package inject

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/suryansh-23/jwtkey/internal/config"
	"github.com/suryansh-23/jwtkey/internal/debug"
	"github.com/suryansh-23/jwtkey/internal/jwtcheck"
	"github.com/suryansh-23/jwtkey/internal/secret"
)

var ErrCancelled = errors.New("key replacement cancelled")

// Store loads and persists configuration documents.
type Store interface {
	Load(path string) (*config.Document, error)
	Save(path string, doc *config.Document) error
}

// Options configures an Injector. Zero values select the filesystem store,
// crypto/rand and a disabled logger.
type Options struct {
	Store  Store
	Rand   io.Reader
	Logger *debug.Logger
	// Confirm is asked before an existing non-empty jwt.key is overwritten.
	Confirm  func(path string) (bool, error)
	SelfTest bool
	Now      func() time.Time
}

// Injector runs the generate, load, set and save pipeline.
type Injector struct {
	store    Store
	rand     io.Reader
	logger   *debug.Logger
	confirm  func(path string) (bool, error)
	selfTest bool
	now      func() time.Time
}

// Result describes a completed run.
type Result struct {
	Path     string
	Secret   secret.Secret
	Replaced bool
}

func New(opts Options) *Injector {
	inj := &Injector{
		store:    opts.Store,
		rand:     opts.Rand,
		logger:   opts.Logger,
		confirm:  opts.Confirm,
		selfTest: opts.SelfTest,
		now:      opts.Now,
	}
	if inj.store == nil {
		inj.store = config.FileStore{}
	}
	if inj.logger == nil {
		inj.logger = debug.New(false)
	}
	if inj.now == nil {
		inj.now = time.Now
	}
	return inj
}

func (i *Injector) GenerateSecret() (secret.Secret, error) {
	return secret.Generate(i.rand)
}

func (i *Injector) LoadConfig(path string) (*config.Document, error) {
	return i.store.Load(path)
}

// SetJWTKey overwrites jwt.key and reports whether a previous value was replaced.
func (i *Injector) SetJWTKey(doc *config.Document, s secret.Secret) (bool, error) {
	return doc.SetString(s.String(), config.JWTSection, config.JWTKey)
}

func (i *Injector) SaveConfig(path string, doc *config.Document) error {
	return i.store.Save(path, doc)
}

// Run loads the document before generating so that an unreadable path or a
// missing jwt section fails without producing a key.
func (i *Injector) Run(path string) (Result, error) {
	doc, err := i.LoadConfig(path)
	if err != nil {
		return Result{}, err
	}
	i.logger.Infof("loaded config %s", path)

	if err := doc.RequireSection(config.JWTSection); err != nil {
		return Result{}, err
	}
	if i.confirm != nil && doc.HasValue(config.JWTSection, config.JWTKey) {
		proceed, err := i.confirm(path)
		if err != nil {
			return Result{}, err
		}
		if !proceed {
			return Result{}, ErrCancelled
		}
	}

	s, err := i.GenerateSecret()
	if err != nil {
		return Result{}, err
	}
	i.logger.Event().Str("fingerprint", s.Fingerprint()).Msg("generated jwt key")

	replaced, err := i.SetJWTKey(doc, s)
	if err != nil {
		return Result{}, err
	}
	if i.selfTest {
		if err := jwtcheck.SignAndVerify(s.String(), i.now()); err != nil {
			return Result{}, err
		}
		i.logger.Infof("self-test passed")
	}
	if err := i.SaveConfig(path, doc); err != nil {
		return Result{}, fmt.Errorf("save %s: %w", path, err)
	}
	i.logger.Event().Str("path", path).Bool("replaced", replaced).Msg("wrote jwt key")
	return Result{Path: path, Secret: s, Replaced: replaced}, nil
}
