package types

import "errors"

var (
	ErrNoConsumptionInput = errors.New("no consumption file given. Use --consumption or set consumption_file in the config file")
	ErrNoGenerationInput  = errors.New("no generation file given. Use --generation or set generation_file in the config file")
	ErrNoRecords          = errors.New("consumption file contains no records")
	ErrUnknownMode        = errors.New("unknown allocation mode, expected greedy or manual")
	ErrUnknownOrder       = errors.New("unknown record order, expected input or priority")
	ErrInvalidRecord      = errors.New("invalid input record")
	ErrProfileNotFound    = errors.New("AWS profile not found in local AWS configuration")
)
