package logcraft

import (
	"sync"

	"github.com/changyy/logcraft-go/pkg/internal/types"
)

var (
	defaultFacade     types.Logger
	defaultFacadeOnce sync.Once
)

// Default returns the lazily constructed process-wide facade. It exists as a
// convenience for code that cannot be handed a facade instance; everything else
// should construct and pass its own via NewFacade.
func Default() types.Logger {
	defaultFacadeOnce.Do(func() {
		defaultFacade = NewFacade()
	})
	return defaultFacade
}
