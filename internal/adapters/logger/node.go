package logger

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/changed/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// EnvLog configures the logger before flags are parsed, so that component
// construction can already log. It holds a comma separated list of "json" and "debug".
const EnvLog = "CHANGED_LOG"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			l := NewWithOutput(os.Stderr)
			ApplyEnv(l, os.Getenv(EnvLog))
			return l, nil
		},
	})
}

// ApplyEnv switches l to the modes named in value. Unknown modes are ignored.
func ApplyEnv(l *Logger, value string) {
	for _, mode := range strings.Split(value, ",") {
		switch strings.ToLower(strings.TrimSpace(mode)) {
		case "json":
			l.SetJSON(true)
		case "debug":
			l.SetVerbose(true)
		}
	}
}
