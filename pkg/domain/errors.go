package domain

import "errors"

// ErrRolling is returned when a mutating command arrives while a roll is in
// flight.
var ErrRolling = errors.New("roll in progress")

// ErrAllLocked is returned by roll when every die is locked.
var ErrAllLocked = errors.New("all dice locked")

// ErrMaxDice is returned when adding a die beyond MaxDice.
var ErrMaxDice = errors.New("maximum dice reached")

// ErrMinDice is returned when removing the last die.
var ErrMinDice = errors.New("minimum dice reached")

// ErrCountOutOfRange is returned when a requested dice count falls outside
// [MinDice, MaxDice].
var ErrCountOutOfRange = errors.New("dice count out of range")
