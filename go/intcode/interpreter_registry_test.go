// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package intcode

import "testing"

func TestInterpreterRegistry_NameCollisionsAreDetected(t *testing.T) {
	const name = "something-just-for-this-test"
	factory := func(any) (Interpreter, error) {
		return nil, nil
	}
	if err := RegisterInterpreterFactory(name, factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RegisterInterpreterFactory(name, factory); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestInterpreterRegistry_NilFactoriesAreRejected(t *testing.T) {
	const name = "something"
	if err := RegisterInterpreterFactory(name, nil); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestInterpreterRegistry_LookupIsCaseInsensitive(t *testing.T) {
	const name = "Mixed-Case-Name-For-This-Test"
	var created any
	factory := func(config any) (Interpreter, error) {
		created = config
		return nil, nil
	}
	if err := RegisterInterpreterFactory(name, factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if GetInterpreterFactory("mixed-case-name-for-this-test") == nil {
		t.Fatalf("factory not found with lower-case name")
	}
	if _, err := NewInterpreter("MIXED-CASE-NAME-FOR-THIS-TEST", 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 12 {
		t.Errorf("configuration not forwarded, got %v", created)
	}
	if _, found := GetAllRegisteredInterpreters()["mixed-case-name-for-this-test"]; !found {
		t.Errorf("factory missing in list of all registered interpreters")
	}
}

func TestInterpreterRegistry_UnknownNamesAndExcessConfigsAreRejected(t *testing.T) {
	if _, err := NewInterpreter("does-not-exist"); err == nil {
		t.Errorf("expected error for unknown interpreter")
	}
	if _, err := NewInterpreter("does-not-exist", 1, 2); err == nil {
		t.Errorf("expected error for too many configurations")
	}
}

func TestInterpreterRegistry_ListIsACopy(t *testing.T) {
	all := GetAllRegisteredInterpreters()
	all["injected-into-copy"] = func(any) (Interpreter, error) { return nil, nil }
	if GetInterpreterFactory("injected-into-copy") != nil {
		t.Errorf("modification of the listing leaked into the registry")
	}
}
