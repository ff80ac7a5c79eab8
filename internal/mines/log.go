package mines

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log receives debug records about games and moves. It is silent until the
// program points it somewhere.
var Log = logrus.New()

func init() {
	Log.SetOutput(io.Discard)
}
