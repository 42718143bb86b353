package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type smsSenderMock struct {
	mock.Mock
}

func (m *smsSenderMock) SendAndRecord(ctx context.Context, content string, recipients []string) error {
	args := m.Called(ctx, content, recipients)
	return args.Error(0)
}

type otpGeneratorMock struct {
	mock.Mock
}

func (m *otpGeneratorMock) RandomCode() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *otpGeneratorMock) RandomSecret(length int) string {
	args := m.Called(length)
	return args.String(0)
}
