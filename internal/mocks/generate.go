// Package mocks provides mock implementations for testing the chorebank task system.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
// This creates MockJobRepository with methods for all JobRepository interface methods:
// Create, GetByID, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/chorebank/chorebank/internal/core JobRepository

// Generate mock for UserJobRepository interface from internal/core package.
// This creates MockUserJobRepository with methods for all UserJobRepository interface methods:
// Insert, GetByID, ListByUser, ListSolved, ListApproved, MarkSolved, MarkUnsolved, Approve, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_job_repository_mock.go github.com/chorebank/chorebank/internal/core UserJobRepository

// Generate mock for ProfileRepository interface from internal/core package.
// This creates MockProfileRepository with methods for all ProfileRepository interface methods:
// Create, GetByID, GetByEmail, List, SetRole, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=profile_repository_mock.go github.com/chorebank/chorebank/internal/core ProfileRepository

// Generate mock for PunishmentRepository interface from internal/core package.
// This creates MockPunishmentRepository with methods for all PunishmentRepository interface methods:
// CreateAndDebit, List, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=punishment_repository_mock.go github.com/chorebank/chorebank/internal/core PunishmentRepository

// Generate mock for ChangeWaiter interface from internal/core package.
// This creates MockChangeWaiter with methods for all ChangeWaiter interface methods:
// WaitForChange
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=change_waiter_mock.go github.com/chorebank/chorebank/internal/core ChangeWaiter

// Generate mock for ObjectStore interface from internal/ports package.
// This creates MockObjectStore with methods for all ObjectStore interface methods:
// Upload, Download, PublicURL
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=object_store_mock.go github.com/chorebank/chorebank/internal/ports ObjectStore
