package condoapi

import (
	"context"
	"net/url"

	"github.com/smart-condominium/condo-console/gateway"
)

type ReportsService struct {
	gw *gateway.Gateway
}

// Financial fetches the financial report for a date range as a PDF payload.
func (s *ReportsService) Financial(ctx context.Context, startDate, endDate string) ([]byte, string, error) {
	query := url.Values{
		"start_date": {startDate},
		"end_date":   {endDate},
	}
	return s.gw.GetBinary(ctx, "/reports/financial/", query)
}
