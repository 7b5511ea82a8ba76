package server

// Server is the lifecycle of the API process: RunServer blocks until the
// process is asked to stop, Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
