package schema

import "fmt"

// IntrospectionError reports that the columns of Table could not be read.
// It is returned as-is to the caller; nothing in the generator retries it.
type IntrospectionError struct {
	Table string
	Err   error
}

func (e *IntrospectionError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("introspection failed: %v", e.Err)
	}
	return fmt.Sprintf("introspection of table %s failed: %v", e.Table, e.Err)
}

func (e *IntrospectionError) Unwrap() error {
	return e.Err
}
