// Package aggregate folds the per-request account snapshot into the summary
// records served as tool results. Aggregations are pure over the snapshot;
// only the asset summaries reach out for market data, through the
// TickerResolver the caller supplies.
package aggregate

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/domain"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/store"
)

// TickerResolver looks up current market data for a sorted list of tickers.
type TickerResolver interface {
	ResolveTickers(ctx context.Context, tickers []string) ([]domain.TickerSnapshot, error)
}

// SummarizeAssets groups positions across the given accounts by upper-cased
// ticker, computes the quantity-weighted average cost basis per ticker, then
// merges in resolved market data and the unrealized value change.
func SummarizeAssets(ctx context.Context, resolver TickerResolver, accounts []domain.HoldingAccount) (map[string]domain.TickerHolding, error) {
	type position struct {
		totalQuantity float64
		weightedBasis float64
	}
	positions := make(map[string]*position)

	for _, account := range accounts {
		for _, asset := range account.AssetDistribution {
			ticker := strings.ToUpper(asset.Ticker)
			p := positions[ticker]
			if p == nil {
				p = &position{}
				positions[ticker] = p
			}
			p.totalQuantity += asset.Quantity
			p.weightedBasis += asset.AverageCostBasis * asset.Quantity
		}
	}

	summary := make(map[string]domain.TickerHolding, len(positions))
	tickers := make([]string, 0, len(positions))
	for ticker, p := range positions {
		tickers = append(tickers, ticker)
		holding := domain.TickerHolding{TotalQuantity: p.totalQuantity}
		if p.totalQuantity > 0 {
			holding.AverageCostBasis = round2(p.weightedBasis / p.totalQuantity)
		}
		summary[ticker] = holding
	}
	sort.Strings(tickers)

	if len(tickers) > 0 {
		snapshots, err := resolver.ResolveTickers(ctx, tickers)
		if err != nil {
			return nil, err
		}
		for _, snap := range snapshots {
			ticker := strings.ToUpper(snap.Ticker)
			holding, ok := summary[ticker]
			if !ok {
				continue
			}
			holding.CompanyName = snap.CompanyName
			holding.CurrentPrice = snap.CurrentPrice
			holding.DailyPriceChange = snap.DailyPriceChange
			holding.WeeklyPriceChange = snap.WeeklyPriceChange
			holding.MonthlyPriceChange = snap.MonthlyPriceChange
			holding.YTDPriceChange = snap.YTDPriceChange
			holding.MA50 = snap.MA50
			holding.MA100 = snap.MA100
			holding.High52Week = snap.High52Week
			holding.Low52Week = snap.Low52Week
			holding.Volume = snap.Volume
			holding.LatestMarketNews = snap.LatestMarketNews
			summary[ticker] = holding
		}
	}

	for ticker, holding := range summary {
		holding.TotalValueChange = round2(holding.TotalQuantity * (holding.CurrentPrice - holding.AverageCostBasis))
		summary[ticker] = holding
	}
	return summary, nil
}

// SummarizeInvestmentAccounts totals uninvested cash and summarizes holdings
// across the plain brokerage accounts.
func SummarizeInvestmentAccounts(ctx context.Context, resolver TickerResolver, snap *store.Snapshot) (domain.SummaryOfInvestmentAccounts, error) {
	holdings, err := SummarizeAssets(ctx, resolver, snap.Investment)
	if err != nil {
		return domain.SummaryOfInvestmentAccounts{}, err
	}
	return domain.SummaryOfInvestmentAccounts{AssetSummary: domain.AssetSummary{
		TotalUninvestedAmount:  sumUninvested(snap.Investment),
		InvestedSecuritiesInfo: holdings,
	}}, nil
}

// SummarizeRetirementAccounts covers the Traditional IRA, Roth IRA and HSA
// families, which add total contributions to the asset fold.
func SummarizeRetirementAccounts(ctx context.Context, resolver TickerResolver, accounts []domain.HoldingAccount) (domain.SummaryOfRetirementAccounts, error) {
	holdings, err := SummarizeAssets(ctx, resolver, accounts)
	if err != nil {
		return domain.SummaryOfRetirementAccounts{}, err
	}
	return domain.SummaryOfRetirementAccounts{AssetSummary: domain.AssetSummary{
		TotalUninvestedAmount:           sumUninvested(accounts),
		TotalAverageMonthlyContribution: sumContributions(accounts),
		InvestedSecuritiesInfo:          holdings,
	}}, nil
}

// Summarize401kAccounts covers both 401(k) families, joining the per-account
// employer match descriptions.
func Summarize401kAccounts(ctx context.Context, resolver TickerResolver, accounts []domain.HoldingAccount) (domain.SummaryOf401kAccounts, error) {
	holdings, err := SummarizeAssets(ctx, resolver, accounts)
	if err != nil {
		return domain.SummaryOf401kAccounts{}, err
	}
	matches := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		matches = append(matches, acc.EmployerMatch)
	}
	return domain.SummaryOf401kAccounts{AssetSummary: domain.AssetSummary{
		TotalUninvestedAmount:           sumUninvested(accounts),
		TotalAverageMonthlyContribution: sumContributions(accounts),
		EmployerMatchesSummary:          strings.Join(matches, ", \n"),
		InvestedSecuritiesInfo:          holdings,
	}}, nil
}

func sumUninvested(accounts []domain.HoldingAccount) float64 {
	var total float64
	for _, acc := range accounts {
		total += acc.UninvestedAmount
	}
	return total
}

func sumContributions(accounts []domain.HoldingAccount) float64 {
	var total float64
	for _, acc := range accounts {
		total += acc.AverageMonthlyContribution
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
