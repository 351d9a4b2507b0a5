package cellgrid

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Loader produces the decoded image for a locator. Load is called on its own
// goroutine and must not touch grid state.
type Loader interface {
	Load(locator string) (image.Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(locator string) (image.Image, error)

// Load calls f(locator).
func (f LoaderFunc) Load(locator string) (image.Image, error) { return f(locator) }

// FileLoader decodes PNG, JPEG and GIF files from disk.
type FileLoader struct{}

// Load opens and decodes the file at path.
func (FileLoader) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

type imageEntry struct {
	locator string
	gen     uint64
	img     *ebiten.Image
	ready   bool
	failed  bool
}

type loadResult struct {
	name string
	gen  uint64
	img  image.Image
	err  error
}

// Registry maps logical icon names to images and tracks whether each has
// finished loading. Decoding happens off the update loop; completions are
// queued and applied by Poll, so entries are only ever mutated on the loop.
type Registry struct {
	entries map[string]*imageEntry
	results chan loadResult
	loader  Loader
	nextGen uint64
	pending int
	log     *debugLogger
}

const loadQueueCap = 16

// NewRegistry creates an empty registry. A nil loader uses FileLoader.
func NewRegistry(loader Loader) *Registry {
	if loader == nil {
		loader = FileLoader{}
	}
	return &Registry{
		entries: make(map[string]*imageEntry),
		results: make(chan loadResult, loadQueueCap),
		loader:  loader,
	}
}

// Register creates a not-ready entry for name and starts loading locator.
// Registering a name again replaces the entry; a load still running for the
// old entry is discarded when it completes.
func (r *Registry) Register(name, locator string) {
	e := r.newEntry(name, locator)
	loader := r.loader
	results := r.results
	go func() {
		img, err := loader.Load(locator)
		results <- loadResult{name: name, gen: e.gen, img: img, err: err}
	}()
}

// RegisterImage creates an entry for an already-decoded image. It becomes
// ready on the next Poll, through the same path as a file load.
func (r *Registry) RegisterImage(name string, img image.Image) {
	e := r.newEntry(name, "")
	res := loadResult{name: name, gen: e.gen, img: img}
	select {
	case r.results <- res:
	default:
		go func() { r.results <- res }()
	}
}

func (r *Registry) newEntry(name, locator string) *imageEntry {
	r.nextGen++
	e := &imageEntry{locator: locator, gen: r.nextGen}
	r.entries[name] = e
	r.pending++
	return e
}

// Poll applies every completed load without blocking and returns how many
// entries became ready.
func (r *Registry) Poll() int {
	n := 0
	for {
		select {
		case res := <-r.results:
			r.pending--
			if r.complete(res) {
				n++
			}
		default:
			return n
		}
	}
}

func (r *Registry) complete(res loadResult) bool {
	e, ok := r.entries[res.name]
	if !ok || e.gen != res.gen || e.ready {
		return false
	}
	if res.err != nil || res.img == nil {
		e.failed = true
		r.log.warnf("image %q failed to load: %v", res.name, res.err)
		return false
	}
	if eimg, ok := res.img.(*ebiten.Image); ok {
		e.img = eimg
	} else {
		e.img = ebiten.NewImageFromImage(res.img)
	}
	e.ready = true
	r.log.infof("loaded image: %s", res.name)
	return true
}

// Pending returns the number of loads that have not been applied by Poll.
func (r *Registry) Pending() int { return r.pending }

// IsLoaded reports whether the named image is ready to draw.
func (r *Registry) IsLoaded(name string) (bool, error) {
	e, ok := r.entries[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownImage, name)
	}
	return e.ready, nil
}

// Image returns the named image. The image is nil until the entry is ready.
func (r *Registry) Image(name string) (*ebiten.Image, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImage, name)
	}
	return e.img, nil
}

// Names returns the registered image names in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}
