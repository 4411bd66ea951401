package storage

import "errors"

var (
	// ErrReadOnly is returned when a mutation is attempted through a
	// read-only StorageContext.
	ErrReadOnly = errors.New("storage: context is read-only")
	// ErrKeyTooLong is returned when |key| > MaxKeySize.
	ErrKeyTooLong = errors.New("storage: key exceeds MaxKeySize")
	// ErrWrongTrigger is returned when a mutation is attempted outside an
	// Application-family trigger.
	ErrWrongTrigger = errors.New("storage: mutation requires an Application trigger")
	// ErrNoStorage is returned when the target contract does not exist or
	// was deployed without a storage partition.
	ErrNoStorage = errors.New("storage: contract does not exist or has no storage")
	// ErrConstant is returned when writing to or deleting a constant
	// entry.
	ErrConstant = errors.New("storage: entry is constant")
	// ErrNotCreator is returned by GetStorageContext when the executing
	// script did not create the target contract.
	ErrNotCreator = errors.New("storage: executing script is not the creator of the target contract")
)
