// Package registry tracks every supervised process that is currently
// running so they can be signaled together, typically on application
// shutdown.
//
// The registry only stores identifiers (a Handle), never the process object
// itself. Supervisors register a handle right after a successful spawn and
// deregister it once the process reaches a terminal state.
//
// # Default Registry
//
// Default returns a process-wide registry that is created when the package
// is initialized and lives until the program exits:
//
//	sigs := make(chan os.Signal, 1)
//	signal.Notify(sigs, os.Interrupt)
//	go func() {
//		sig := <-sigs
//		registry.Default().KillAll(sig)
//	}()
//
// Tests and embedders that need isolation can create their own with New and
// hand it to the supervisor.
//
// # Thread Safety
//
// All methods are safe for concurrent use. A single mutex guards the table;
// KillAll signals a snapshot taken under that mutex.
package registry
