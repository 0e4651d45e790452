package goAzcamVatt

import (
	"sync"
	"testing"

	"github.com/RMcDOttawa/goMockableDelay"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// The following are INTEGRATION tests - rather than using mocks, they call the real AzcamService
// and AzcamDriver against a running azcam server. They are not used in the normal build process.
// To run these tests, azcam must be running on the same machine in command server mode on the
// vatt4k port, configured with a simulated controller and a simulated focus mechanism (so
// integration and readout return promptly).

//	The following constant turns the tests off to prevent them from running during continuous integration
//	or when test ./... is used, except when we want to run them.

const runIntegrationTests = false

const integrationServer = "localhost"
const integrationPort = 2402

// Since these tests are interacting with the real server, we need to use a mutex to ensure they are serialized
var testFuncMutex sync.Mutex

func TestServerIntegration(t *testing.T) {
	if !runIntegrationTests {
		t.Skip("azcam integration tests are disabled")
	}

	t.Run("Integration test image parameters round trip", func(t *testing.T) {
		testFuncMutex.Lock()
		defer testFuncMutex.Unlock()

		service := NewAzcamService(false, 1, zerolog.Nop())
		require.Nil(t, service.Connect(integrationServer, integrationPort), "Unable to connect to service")

		saved, err := service.GetPar("imagetitle")
		require.Nil(t, err, "Unable to read imagetitle")
		require.Nil(t, service.SetPar("imagetitle", "integration test"))
		title, err := service.GetPar("imagetitle")
		require.Nil(t, err)
		require.Equal(t, "integration test", title)
		require.Nil(t, service.SetPar("imagetitle", saved), "Unable to restore imagetitle")
		require.Nil(t, service.Close(), "Unable to close server")
	})

	t.Run("Integration test focus move and return", func(t *testing.T) {
		testFuncMutex.Lock()
		defer testFuncMutex.Unlock()

		realDelayService := goMockableDelay.NewDelayService(false, 1)
		service := NewAzcamService(false, 1, zerolog.Nop())
		require.Nil(t, service.Connect(integrationServer, integrationPort), "Unable to connect to service")

		start, err := service.GetFocus(FocusComponentTelescope)
		require.Nil(t, err, "Unable to read focus")
		require.Nil(t, service.SetFocus(start+25, FocusComponentTelescope, FocusTypeAbsolute))
		_, _ = realDelayService.DelayDuration(defaultMoveDelaySeconds)
		moved, err := service.GetFocus(FocusComponentTelescope)
		require.Nil(t, err)
		require.InDelta(t, start+25, moved, 0.5, "Simulated focus did not reach target")
		require.Nil(t, service.SetFocus(start, FocusComponentTelescope, FocusTypeAbsolute))
		require.Nil(t, service.Close(), "Unable to close server")
	})

	t.Run("Integration test short focus sweep", func(t *testing.T) {
		testFuncMutex.Lock()
		defer testFuncMutex.Unlock()

		service := NewAzcamService(false, 1, zerolog.Nop())
		require.Nil(t, service.Connect(integrationServer, integrationPort), "Unable to connect to service")
		sequencer := NewFocusSequencer(service, goMockableDelay.NewDelayService(false, 1), zerolog.Nop())
		require.Nil(t, sequencer.Configure(0.1, 3, 10, 5))
		sequencer.Run(RunParameters{})
		require.Equal(t, RunCompleted, sequencer.LastOutcome())
		require.Nil(t, service.Close(), "Unable to close server")
	})
}
