// Package locker models smart lockers and the two-phase protocol used to move
// a garment through one of their units.
//
// Phase one asks the remote to open a unit and receives the Layout of the
// whole locker. Phase two confirms the door was closed again. The order only
// moves forward once a Handoff reaches ClosedConfirmed; an abandoned handoff
// leaves it where it was.
package locker
