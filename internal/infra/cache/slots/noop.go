package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

// Noop кэш, когда Redis выключен
type Noop struct{}

func (Noop) Get(context.Context, time.Time) ([]domain.Slot, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, time.Time, []domain.Slot) error         { return nil }
func (Noop) Invalidate(context.Context, time.Time) error                 { return nil }
func (Noop) InvalidateAll(context.Context) error                         { return nil }
