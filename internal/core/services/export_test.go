// internal/core/services/export_test.go
package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/pkg/spreadsheet"
	"github.com/ammerola/phone-inventory/test/helpers"
	"github.com/ammerola/phone-inventory/test/mocks"
)

func TestExportService_Workbook(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockPhoneRepository, *mocks.MockReportRepository)
		wantRows   int
		wantKind   domain.Kind
	}{
		{
			name: "renders_active_phones",
			setupMocks: func(phones *mocks.MockPhoneRepository, reports *mocks.MockReportRepository) {
				phones.EXPECT().
					Find(gomock.Any(), domain.PhoneQuery{
						Filter:    domain.PhoneFilter{Visibility: domain.ActiveOnly},
						SortBy:    domain.SortByCreatedAt,
						SortOrder: domain.SortDesc,
					}).
					Return([]domain.Phone{*helpers.CreateTestPhone(), *helpers.CreateTestPhone()}, nil)
				reports.EXPECT().Summary(gomock.Any()).Return(&domain.InventorySummary{TotalProducts: 2}, nil)
			},
			wantRows: 2,
		},
		{
			name: "find_failure_is_internal",
			setupMocks: func(phones *mocks.MockPhoneRepository, _ *mocks.MockReportRepository) {
				phones.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantKind: domain.KindInternal,
		},
		{
			name: "summary_failure_is_internal",
			setupMocks: func(phones *mocks.MockPhoneRepository, reports *mocks.MockReportRepository) {
				phones.EXPECT().Find(gomock.Any(), gomock.Any()).Return([]domain.Phone{}, nil)
				reports.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantKind: domain.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			phones := mocks.NewMockPhoneRepository(ctrl)
			reports := mocks.NewMockReportRepository(ctrl)
			tt.setupMocks(phones, reports)

			svc := services.NewExportService(phones, reports, helpers.TestLogger())
			export, err := svc.Workbook(context.Background())

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, export.Rows)
			assert.True(t, strings.HasPrefix(export.Filename, "inventory_export_"))

			file, err := xlsx.OpenBinary(export.Data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows+1, file.Sheet[spreadsheet.InventorySheet].MaxRow)
		})
	}
}
