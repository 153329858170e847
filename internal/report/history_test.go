package report

import (
	"testing"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParsePaymentHistory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []model.PaymentRecord
	}{
		{
			name: "two well formed entries",
			raw:  "01-2020,XXX/01|02-2020,091/02",
			want: []model.PaymentRecord{
				{Date: "01-2020", Status: "XXX/01"},
				{Date: "02-2020", Status: "091/02"},
			},
		},
		{
			name: "empty string",
			raw:  "",
			want: []model.PaymentRecord{},
		},
		{
			name: "malformed entry dropped",
			raw:  "bad-entry|01-2020,XXX/01",
			want: []model.PaymentRecord{{Date: "01-2020", Status: "XXX/01"}},
		},
		{
			name: "blank segments skipped",
			raw:  "  |01-2020,XXX/01||",
			want: []model.PaymentRecord{{Date: "01-2020", Status: "XXX/01"}},
		},
		{
			name: "too many commas dropped",
			raw:  "01-2020,XXX/01,extra|02-2020,STD/01",
			want: []model.PaymentRecord{{Date: "02-2020", Status: "STD/01"}},
		},
		{
			name: "order preserved not sorted",
			raw:  "03-2020,STD/01|01-2020,XXX/01",
			want: []model.PaymentRecord{
				{Date: "03-2020", Status: "STD/01"},
				{Date: "01-2020", Status: "XXX/01"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePaymentHistory(tt.raw))
		})
	}
}
