package field

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var unitRef = Affine{OriginX: 0, OriginY: 0, DX: 1, DY: 1}

// quiet returns an option that discards log output.
func quiet() Option {
	l, _ := test.NewNullLogger()
	return WithLogger(l)
}

// captured returns an option logging at debug level into the returned hook.
func captured() (Option, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return WithLogger(l), hook
}
