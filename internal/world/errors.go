package world

import "fmt"

// NotFoundError is returned when a name lookup finds no entity.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entity named %q", e.Name)
}

// NotSpawnedError is returned when an operation targets an entity that was
// never spawned or has been despawned.
type NotSpawnedError struct {
	Entity Entity
}

func (e *NotSpawnedError) Error() string {
	return fmt.Sprintf("entity %d is not spawned", e.Entity)
}

// NameTakenError is returned when a name is already held by another entity.
type NameTakenError struct {
	Name   string
	Holder Entity
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("name %q is already taken by entity %d", e.Name, e.Holder)
}
