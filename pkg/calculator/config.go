package calculator

import (
	"fmt"
	"time"

	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/gridcalc/pkg/types"
)

// Configured sets up the Calculator based on flags. When --calc-remote-url is
// set the calculations are sent to that server, otherwise they run locally.
func Configured() Calculator {
	remoteURL := lflag.String("calc-remote-url", "", "URL of a gridcalc server to run calculations on (e.g. http://localhost:8080)")
	remoteTimeout := lflag.Duration("calc-remote-timeout", 10*time.Second, "Timeout for requests to the remote gridcalc server")
	constants := types.DefaultReliabilityConstants()
	lflag.JSON(&constants, "reliability-constants", constants, "JSON object overriding the built-in reliability constants")

	var c struct{ Calculator }

	lflag.Do(func() {
		if *remoteURL != "" {
			r, err := NewRemote(*remoteURL, *remoteTimeout)
			if err != nil {
				panic(fmt.Sprintf("remote calculator init failed: %v", err))
			}
			c.Calculator = r
			return
		}
		l, err := NewLocal(constants)
		if err != nil {
			panic(fmt.Sprintf("invalid reliability-constants: %v", err))
		}
		c.Calculator = l
	})

	return &c
}
