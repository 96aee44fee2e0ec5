package report

import (
	"testing"

	"github.com/aldisetiana/posdash/backend-go/internal/domain"
)

func TestBuildInventoryAlerts(t *testing.T) {
	levels := []domain.StockLevel{
		{SKU: "A", Name: "Widget", Category: "tools", QuantityOnHand: 0},
		{SKU: "B", Name: "Gadget", Category: "tools", QuantityOnHand: 3},
	}

	alerts := BuildInventoryAlerts(levels)

	if len(alerts) != 2 {
		t.Fatalf("len(alerts) = %d, want 2", len(alerts))
	}
	if alerts[0].SKU != "A" || alerts[0].AlertLevel != domain.AlertLevelCritical {
		t.Errorf("alerts[0] = %s/%s, want A/critical", alerts[0].SKU, alerts[0].AlertLevel)
	}
	if alerts[1].SKU != "B" || alerts[1].AlertLevel != domain.AlertLevelWarning {
		t.Errorf("alerts[1] = %s/%s, want B/warning", alerts[1].SKU, alerts[1].AlertLevel)
	}
	if alerts[1].Name != "Gadget" || alerts[1].Category != "tools" {
		t.Errorf("alerts[1] metadata = %s/%s, want Gadget/tools", alerts[1].Name, alerts[1].Category)
	}

	t.Run("no low stock means no alerts", func(t *testing.T) {
		alerts := BuildInventoryAlerts(nil)
		if alerts == nil || len(alerts) != 0 {
			t.Fatalf("alerts = %v, want empty non-nil slice", alerts)
		}
	})
}
