package report

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nao1215/logreport/internal/model"
)

// HandlersReport is the name of the per-endpoint report.
const HandlersReport = "handlers"

var (
	// ErrUnknownReportType is returned by Lookup for unregistered report names.
	ErrUnknownReportType = errors.New("unknown report type")

	// ErrDuplicateReportType is returned by Register when the name is taken.
	ErrDuplicateReportType = errors.New("report type already registered")
)

// Generator renders a report from per-file analysis results.
// The returned text has no trailing newline.
type Generator func(results []model.AnalysisResult) string

var (
	registryMu sync.RWMutex

	// registry maps report names to their generators.
	registry = map[string]Generator{
		HandlersReport: GenerateHandlersReport,
	}
)

// Register adds a generator under name.
func Register(name string, gen Generator) error {
	if name == "" || gen == nil {
		return errors.New("report name and generator are required")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateReportType, name)
	}
	registry[name] = gen
	return nil
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	registryMu.RLock()
	gen, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownReportType, name, Types())
	}
	return gen, nil
}

// Types returns the registered report names in sorted order.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
