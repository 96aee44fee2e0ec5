package report

import (
	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

// BuildInventoryAlerts maps low-stock snapshot rows to alerts. Items at
// exactly zero on hand are critical, everything else at or below the
// threshold is a warning. Input order (ascending by quantity) is preserved.
func BuildInventoryAlerts(levels []domain.StockLevel) []domain.InventoryAlert {
	alerts := make([]domain.InventoryAlert, 0, len(levels))

	for _, l := range levels {
		level := domain.AlertLevelWarning
		if l.QuantityOnHand == 0 {
			level = domain.AlertLevelCritical
		}

		alerts = append(alerts, domain.InventoryAlert{
			SKU:            l.SKU,
			Name:           l.Name,
			Category:       l.Category,
			QuantityOnHand: l.QuantityOnHand,
			AlertLevel:     level,
		})
	}

	return alerts
}
