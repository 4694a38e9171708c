package hive

import "fmt"

// NoSuchObjectError reports that a catalog, database, table or other
// metadata object does not exist. Service bindings translate the service's
// NoSuchObjectException into this type so callers can match it with
// errors.As.
type NoSuchObjectError struct {
	Message string
}

func (e *NoSuchObjectError) Error() string {
	if e.Message == "" {
		return "hive: no such object"
	}
	return fmt.Sprintf("hive: no such object: %s", e.Message)
}

// AlreadyExistsError reports that an object being created already exists.
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string {
	if e.Message == "" {
		return "hive: object already exists"
	}
	return fmt.Sprintf("hive: object already exists: %s", e.Message)
}
