// Package protocol defines the wire vocabulary of the relay server.
//
// Every frame is a JSON object with a "type" discriminator. Clients send
// join, move, combat, and chat messages; the server answers with joined,
// playerJoined, playerMove, combatEvent, chat, playerLeft, and error
// messages.
//
// The package owns decoding, field validation, and sanitization of
// client-supplied text. It deliberately performs no gameplay validation:
// the relay trusts clients for game logic and only defends message shape.
package protocol
