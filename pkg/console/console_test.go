package console

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
)

func TestFormatPounds(t *testing.T) {
	assert.Equal(t, "£10.50", FormatPounds(10.5))
	assert.Equal(t, "-£182.50", FormatPounds(-182.5))
	assert.Equal(t, "£0.00", FormatPounds(0))
}

func TestTableRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	table := NewConsole().CreateTable()
	table.AddColumn("MPAN")
	table.AddColumn("Match %")
	table.AddRow("1200000000001", 100.0)

	out := table.Render()
	assert.Contains(t, out, "MPAN")
	assert.Contains(t, out, "1200000000001")
	assert.Contains(t, out, "100")
}

func TestRenderRevenueBars(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out := RenderRevenueBars("Revenue", []types.RevenueBar{
		{Label: "Private", Amount: 100},
		{Label: "Market", Amount: 50},
		{Label: "Standing charge", Amount: -25},
	})
	assert.Contains(t, out, "Private")
	assert.Contains(t, out, "£100.00")
	assert.Contains(t, out, "-£25.00")
	assert.Contains(t, out, "50.0%")

	empty := RenderRevenueBars("Revenue", []types.RevenueBar{{Label: "Private"}})
	assert.Contains(t, empty, "All amounts are £0.00")
}
