package scene

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/vovakirdan/tui-animate/internal/registry"
)

//go:embed stock/*.yaml
var stockFS embed.FS

func init() {
	files, err := fs.Glob(stockFS, "stock/*.yaml")
	if err != nil {
		panic(err)
	}
	for _, name := range files {
		data, err := stockFS.ReadFile(name)
		if err != nil {
			panic(err)
		}
		s, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("scene: built-in %s: %v", path.Base(name), err))
		}
		registry.Register(s.ID(), factoryFor(data, ""))
	}
}

// factoryFor returns a registry factory that parses data afresh, so every
// created scene has its own counters and behavior state.
func factoryFor(data []byte, source string) registry.Factory {
	return func() registry.Scene {
		s, err := Parse(data)
		if err != nil {
			// data was validated before registration
			panic(err)
		}
		s.source = source
		return s
	}
}

// Register adds a loaded scene to the registry.
func Register(s *Scene) error {
	return registry.TryRegister(s.ID(), factoryFor(s.data, s.source))
}

// RegisterDir loads every scene below dir and registers it. Scenes that
// fail to load or clash with a registered ID are reported in the joined
// error; the others are still registered.
func RegisterDir(dir string) (int, error) {
	scenes, loadErr := LoadDir(dir)
	errs := []error{loadErr}
	n := 0
	for _, s := range scenes {
		if err := Register(s); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

var _ registry.Scene = (*Scene)(nil)
