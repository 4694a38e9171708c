package thrift

import (
	"context"
	"errors"
	"sort"
	"testing"

	athrift "github.com/apache/thrift/lib/go/thrift"
)

func noopMethod(_ context.Context, _ athrift.TClient, _ []any) (any, error) {
	return nil, nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("get_table", noopMethod); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if _, ok := r.Lookup("get_table"); !ok {
		t.Error("Lookup() did not find the registered method")
	}
	if _, ok := r.Lookup("get_database"); ok {
		t.Error("Lookup() found an unregistered method")
	}
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("get_table", noopMethod); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := r.Register("get_table", noopMethod); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("second Register() error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("", noopMethod); err == nil {
		t.Error("Register() accepted an empty method name")
	}
	if err := r.Register("get_table", nil); err == nil {
		t.Error("Register() accepted a nil handler")
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("get_table", noopMethod)

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() did not panic on a duplicate")
		}
	}()
	r.MustRegister("get_table", noopMethod)
}

func TestRegistryMethods(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("get_table", noopMethod)
	r.MustRegister("get_database", noopMethod)

	names := r.Methods()
	sort.Strings(names)
	want := []string{"get_database", "get_table"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("Methods() = %v, want %v", names, want)
	}
}
