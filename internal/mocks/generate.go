// Package mocks provides mock implementations for testing the activities frontend.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	t.Cleanup(ctrl.Finish)
//	backend := mocks.NewMockBackend(ctrl)
//	backend.EXPECT().ListActivities(gomock.Any()).Return(list, nil)
package mocks

// Generate mock for the Backend interface from internal/ports.
// This creates MockBackend with methods for all Backend interface methods:
// ListActivities, Login, Probe, Signup, Unregister
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=backend_mock.go github.com/mergington/activities-ui/internal/ports Backend

// Generate mock for the TokenStore interface from internal/ports.
// This creates MockTokenStore with methods for all TokenStore interface methods:
// Save, Get, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=token_store_mock.go github.com/mergington/activities-ui/internal/ports TokenStore
