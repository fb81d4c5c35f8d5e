package texture

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Slot names used by the scene.
const (
	Metal  = "metal"
	Head   = "head"
	Floor  = "floor"
	Skybox = "skybox"
)

// Slots lists every slot a Library serves.
var Slots = []string{Metal, Head, Floor, Skybox}

// Resolver resolves a texture name to a decoded image.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

type slot struct {
	img         atomic.Pointer[image.NRGBA]
	repeat      atomic.Bool
	forceRepeat bool
}

// Library holds one texture per slot. A slot shows the placeholder until its
// image has loaded, and keeps showing it if the load fails.
type Library struct {
	slots       map[string]*slot
	placeholder *image.NRGBA
	index       *Index
	logger      *zap.Logger
	wg          sync.WaitGroup
}

// NewLibrary creates a library whose slots all show the placeholder.
// index may be nil; it resolves slots loaded without an explicit path.
func NewLibrary(index *Index, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Library{
		slots:       make(map[string]*slot, len(Slots)),
		placeholder: Solid(Placeholder),
		index:       index,
		logger:      logger,
	}
	for _, name := range Slots {
		l.slots[name] = &slot{forceRepeat: name == Floor}
	}
	return l
}

// Resolve returns the current image for a slot. Unknown names get the placeholder.
func (l *Library) Resolve(name string) *image.NRGBA {
	if s, ok := l.slots[name]; ok {
		if img := s.img.Load(); img != nil {
			return img
		}
	}
	return l.placeholder
}

// Repeats reports whether a slot tiles its texture. Non power-of-two images
// clamp to the edge, except the floor which always tiles.
func (l *Library) Repeats(name string) bool {
	s, ok := l.slots[name]
	if !ok {
		return true
	}
	if s.forceRepeat {
		return true
	}
	if s.img.Load() == nil {
		return true
	}
	return s.repeat.Load()
}

// LoadAll starts loading every slot. A missing or empty path installs the
// slot's fallback, unless the index knows a file named after the slot.
func (l *Library) LoadAll(paths map[string]string) {
	for _, name := range Slots {
		l.Load(name, paths[name])
	}
}

// Load starts an asynchronous load of path into the named slot.
func (l *Library) Load(name, path string) {
	s, ok := l.slots[name]
	if !ok {
		l.logger.Warn("unknown texture slot", zap.String("slot", name))
		return
	}

	if path == "" && l.index != nil {
		path, _ = l.index.ResolvePath(name)
	}
	if path == "" {
		l.set(s, Fallback(name), false)
		return
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := LoadImage(path)
		if err != nil {
			l.logger.Warn("texture load failed", zap.String("slot", name), zap.Error(err))
			return
		}
		l.set(s, img, IsPowerOfTwo(img))
		l.logger.Debug("texture loaded", zap.String("slot", name), zap.String("path", path),
			zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	}()
}

func (l *Library) set(s *slot, img *image.NRGBA, repeat bool) {
	s.repeat.Store(repeat)
	s.img.Store(img)
}

// Wait blocks until all started loads have finished or ctx is done.
func (l *Library) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("texture: wait: %w", ctx.Err())
	}
}

// IsPowerOfTwo reports whether both image dimensions are powers of two.
func IsPowerOfTwo(img image.Image) bool {
	b := img.Bounds()
	return isPow2(b.Dx()) && isPow2(b.Dy())
}

func isPow2(v int) bool {
	return v > 0 && v&(v-1) == 0
}
