package domain

import "fmt"

// TickerSnapshot is the market-data result for one ticker. Numeric fields
// inherit the backend's "zero means unavailable" convention: the extraction
// model fills 0 when a metric could not be grounded, and the renderers below
// print NOT_AVAILABLE for those fields rather than a misleading $0.00.
type TickerSnapshot struct {
	Ticker             string  `json:"ticker"`
	CompanyName        string  `json:"company_name"`
	CurrentPrice       float64 `json:"current_price"`
	DailyPriceChange   float64 `json:"daily_price_change"`
	WeeklyPriceChange  float64 `json:"weekly_price_change"`
	MonthlyPriceChange float64 `json:"monthly_price_change"`
	YTDPriceChange     float64 `json:"ytd_price_change"`
	MA50               float64 `json:"MA50"`
	MA100              float64 `json:"MA100"`
	High52Week         float64 `json:"high_52_week"`
	Low52Week          float64 `json:"low_52_week"`
	Volume             int64   `json:"volume"`
	LatestMarketNews   string  `json:"summary_of_latest_market_news"`
}

func (t TickerSnapshot) String() string {
	return fmt.Sprintf(
		"The current price of %s (%s) is %s. Daily price change is %s. Weekly price change is %s. "+
			"Monthly price change is %s. Year-to-date price change is %s. "+
			"The 50-day moving average is %s. The 100-day moving average is %s. "+
			"The highest price in the last 52 weeks was %s. The lowest price in the last 52 weeks was %s. "+
			"Today's trading volume is %d. Latest market news: %s",
		t.Ticker, t.CompanyName,
		dollarsOrNA(t.CurrentPrice), percentOrNA(t.DailyPriceChange), percentOrNA(t.WeeklyPriceChange),
		percentOrNA(t.MonthlyPriceChange), percentOrNA(t.YTDPriceChange),
		dollarsOrNA(t.MA50), dollarsOrNA(t.MA100),
		dollarsOrNA(t.High52Week), dollarsOrNA(t.Low52Week),
		t.Volume, t.LatestMarketNews,
	)
}

// TickerHolding is the per-ticker entry of an asset-family summary: the
// grouped position across accounts merged with the resolved snapshot.
type TickerHolding struct {
	TotalQuantity      float64 `json:"total_quantity"`
	AverageCostBasis   float64 `json:"average_cost_basis"`
	CompanyName        string  `json:"company_name"`
	CurrentPrice       float64 `json:"current_price"`
	DailyPriceChange   float64 `json:"daily_price_change"`
	WeeklyPriceChange  float64 `json:"weekly_price_change"`
	MonthlyPriceChange float64 `json:"monthly_price_change"`
	YTDPriceChange     float64 `json:"ytd_price_change"`
	MA50               float64 `json:"MA50"`
	MA100              float64 `json:"MA100"`
	High52Week         float64 `json:"high_52_week"`
	Low52Week          float64 `json:"low_52_week"`
	Volume             int64   `json:"volume"`
	LatestMarketNews   string  `json:"summary_of_latest_market_news"`
	TotalValueChange   float64 `json:"total_value_change"`
}

func (h TickerHolding) String() string {
	return fmt.Sprintf(
		"The person has a total of %g shares owned for the company %s, with an average cost basis of $%.2f per share. "+
			"The current market price is %s, with a daily price change of %s. "+
			"Over the last week, the price changed by %s, and over the last month, it changed by %s. "+
			"The year-to-date price change is %s. The 50-day moving average is %s, and the 100-day moving average is %s. "+
			"The highest price in the last 52 weeks was %s, while the lowest was %s. "+
			"Today's trading volume is %d shares. The total value change of the asset is $%.2f. "+
			"Here is a summary of the latest market news regarding this security: %s",
		h.TotalQuantity, h.CompanyName, h.AverageCostBasis,
		dollarsOrNA(h.CurrentPrice), percentOrNA(h.DailyPriceChange),
		percentOrNA(h.WeeklyPriceChange), percentOrNA(h.MonthlyPriceChange),
		percentOrNA(h.YTDPriceChange), dollarsOrNA(h.MA50), dollarsOrNA(h.MA100),
		dollarsOrNA(h.High52Week), dollarsOrNA(h.Low52Week),
		h.Volume, h.TotalValueChange, h.LatestMarketNews,
	)
}

func dollarsOrNA(v float64) string {
	if v == 0 {
		return "NOT_AVAILABLE"
	}
	return fmt.Sprintf("$%.2f", v)
}

func percentOrNA(v float64) string {
	if v == 0 {
		return "NOT_AVAILABLE"
	}
	return fmt.Sprintf("%.2f%%", v)
}
