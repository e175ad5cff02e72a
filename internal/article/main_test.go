package article

import (
	"testing"

	"go.uber.org/goleak"
)

// leakOptions covers goroutines owned by libraries for the life of the
// process: idle HTTP keep-alive connections and the regexp2 timeout clock
// that chroma's lexers start on first use.
var leakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
	goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	goleak.IgnoreAnyFunction("github.com/dlclark/regexp2.runClock"),
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, leakOptions...)
}
