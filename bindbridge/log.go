package bindbridge

import "github.com/gfxkit/gfxkit/internal/ringlog"

func logf(format string, args ...any) {
	ringlog.Errorf(format, args...)
}
