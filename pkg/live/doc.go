// Package live serves dom documents over HTTP and streams their mutations
// to browsers over WebSocket.
//
// A page function builds an element tree for each session and registers
// event handlers on it. The server renders the initial HTML (with node
// identities), then observes the session's document: every mutation made by
// a handler is encoded as a JSON patch and pushed to the client, which
// applies it by node identity. Inbound frames carry DOM events back to the
// registered Go handlers.
//
// The wire model is one frame per handler invocation: mutations are
// buffered while the handler runs and flushed together when it returns.
package live
