package testutil

import (
	"appctl/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) LoadTemplates() (*domain.Templates, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Templates), args.Error(1)
}
