package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"AltRadar/internal/model"
	"AltRadar/internal/render"
)

// maxListed caps the rows listed in a single message.
const maxListed = 20

// FormatCandidates formats the buy candidates of the saved panel.
func FormatCandidates(rows []model.SavedMarketRow) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🚀 <b>AltRadar buy candidates</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	if len(rows) == 0 {
		b.WriteString("No coin currently meets the criteria.")
		return b.String()
	}

	for i, r := range rows {
		if i == maxListed {
			b.WriteString(fmt.Sprintf("… and %d more\n", len(rows)-maxListed))
			break
		}
		b.WriteString(fmt.Sprintf("<b>%s</b> score %s | price %s | vol %s | risk %s\n",
			html.EscapeString(r.Symbol),
			render.FormatFixed(r.PumpScore, 0),
			render.FormatNumber(r.CurrentPrice),
			render.FormatNumber(r.Volume24h),
			html.EscapeString(render.OrPlaceholder(string(r.RiskLevel))),
		))
	}
	b.WriteString(fmt.Sprintf("\nTotal: %d", len(rows)))
	return b.String()
}

// FormatLiveSummary formats the live market analysis.
func FormatLiveSummary(rows []model.MarketRow) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Market analysis</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	if len(rows) == 0 {
		b.WriteString("No market data loaded yet.")
		return b.String()
	}

	spikes := 0
	for i, r := range rows {
		if r.VolumeSpike {
			spikes++
		}
		if i >= maxListed {
			continue
		}
		flag := ""
		if r.VolumeSpike {
			flag = " 🔥"
		}
		b.WriteString(fmt.Sprintf("<b>%s</b> %s | RSI %s | pump %s%s\n",
			html.EscapeString(r.Symbol),
			render.FormatFloat(r.Price),
			render.FormatFixed(r.RSI, 2),
			render.FormatFixed(r.PumpScore, 0),
			flag,
		))
	}
	if len(rows) > maxListed {
		b.WriteString(fmt.Sprintf("… and %d more\n", len(rows)-maxListed))
	}
	b.WriteString(fmt.Sprintf("\nVolume spikes: %d/%d", spikes, len(rows)))
	return b.String()
}

// FormatHelp lists the supported commands.
func FormatHelp() string {
	return "Available commands:\n• /candidates buy candidates of the saved panel\n• /live current market analysis\n• /refresh reload both panels"
}
