package cubeview

import (
	"io/fs"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wavelengthCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cubeview_wavelength_cache_hits_total",
		Help: "The total number of hits on the wavelength cache",
	})
	wavelengthCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cubeview_wavelength_cache_misses_total",
		Help: "The total number of misses on the wavelength cache",
	})
	wavelengthCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cubeview_wavelength_cache_evictions_total",
		Help: "The total number of evictions from the wavelength cache",
	})
	wavelengthReadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cubeview_wavelength_read_errors_total",
		Help: "The total number of wavelength files that failed to read",
	})
)

// A WavelengthCache reads wavelength files and keeps the parsed arrays, so a
// viewer returning to a cube it has already opened does not reparse the
// cube's sidecar file. Read failures are not cached: a file the user fixes
// is reread on the next call.
type WavelengthCache struct {
	mutex     sync.Mutex
	fsys      fs.FS
	cacheSize int
	cache     *lru.Cache[string, []float64]
}

// A WavelengthCacheOption sets an option on a WavelengthCache.
type WavelengthCacheOption func(*WavelengthCache)

// NewWavelengthCache returns a new WavelengthCache with the given options.
func NewWavelengthCache(options ...WavelengthCacheOption) (*WavelengthCache, error) {
	c := &WavelengthCache{
		cacheSize: 32,
	}
	for _, option := range options {
		option(c)
	}

	var err error
	c.cache, err = lru.New[string, []float64](c.cacheSize)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// WithCacheSize sets the maximum number of parsed wavelength arrays held.
func WithCacheSize(cacheSize int) WavelengthCacheOption {
	return func(c *WavelengthCache) {
		c.cacheSize = cacheSize
	}
}

// WithFS sets the filesystem wavelength files are read from. The default is
// the host filesystem.
func WithFS(fsys fs.FS) WavelengthCacheOption {
	return func(c *WavelengthCache) {
		c.fsys = fsys
	}
}

// Wavelengths returns the wavelengths from the file at path, using the cache
// if possible. The returned slice is a fresh copy on every call, so callers
// may reorder or modify it.
func (c *WavelengthCache) Wavelengths(path string) ([]float64, error) {
	if wavelengths, ok := c.cache.Get(path); ok {
		wavelengthCacheHits.Inc()
		return slices.Clone(wavelengths), nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if wavelengths, ok := c.cache.Get(path); ok {
		wavelengthCacheHits.Inc()
		return slices.Clone(wavelengths), nil
	}

	wavelengthCacheMisses.Inc()

	wavelengths, err := c.read(path)
	if err != nil {
		wavelengthReadErrors.Inc()
		return nil, err
	}

	if eviction := c.cache.Add(path, wavelengths); eviction {
		wavelengthCacheEvictions.Inc()
	}

	return slices.Clone(wavelengths), nil
}

// read reads the wavelength file at path, bypassing the cache.
func (c *WavelengthCache) read(path string) ([]float64, error) {
	if c.fsys != nil {
		return ReadWavelengthsFS(c.fsys, path)
	}
	return ReadWavelengths(path)
}
