package mocks

import (
	"context"
	"io"

	"doctrack/internal/locale"
	"doctrack/internal/search"
	"doctrack/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockReportService struct {
	mock.Mock
}

var _ service.ReportService = (*MockReportService)(nil)

func (m *MockReportService) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *MockReportService) Report(ctx context.Context, c search.Criteria) (*service.Report, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Report), args.Error(1)
}

// Export writes the first return value, when it is a []byte, to w.
func (m *MockReportService) Export(ctx context.Context, c search.Criteria, l locale.Locale, w io.Writer) error {
	args := m.Called(ctx, c, l, w)
	if b, ok := args.Get(0).([]byte); ok {
		if _, err := w.Write(b); err != nil {
			return err
		}
		return args.Error(1)
	}
	return args.Error(0)
}
