package report

import (
	"strings"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
)

// ParsePaymentHistory splits the bureau's combined payment history string
// ("date,status|date,status|...") into ordered monthly records. Blank
// segments are skipped and segments without exactly one comma are dropped;
// the bureau emits occasional truncated tails and a partial month must not
// fail the loan. Order is preserved as encoded, never re-sorted.
func ParsePaymentHistory(raw string) []model.PaymentRecord {
	parsed := []model.PaymentRecord{}
	if raw == "" {
		return parsed
	}

	for _, entry := range strings.Split(raw, "|") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		fields := strings.Split(entry, ",")
		if len(fields) != 2 {
			continue
		}
		parsed = append(parsed, model.PaymentRecord{
			Date:   fields[0],
			Status: fields[1],
		})
	}

	return parsed
}
