package mocks

import "github.com/stretchr/testify/mock"

type OutputExporter struct {
	mock.Mock
}

func (_m *OutputExporter) ExportOutput(key, value string) error {
	args := _m.Called(key, value)
	return args.Error(0)
}
