package synthetic

import (
	"stockdeck-api/pkg/market"
)

var indexProfiles = map[string]market.CompanyInfo{
	"^GSPC": {
		Symbol:      "^GSPC",
		Name:        "S&P 500",
		Description: "The Standard and Poor's 500, or simply the S&P 500, is a stock market index tracking the stock performance of 500 large companies listed on exchanges in the United States. It is widely regarded as the best gauge of large-cap U.S. equities.",
		Industry:    "Financial Services", Sector: "Index", CEO: "N/A",
		Founded: "1957-03-04", Headquarters: "New York, NY, USA", Website: "https://www.spglobal.com",
		PERatio: 23.45, EPS: 195.64, DividendYield: 1.38,
		WeekRange52: market.WeekRange52{Low: 4200.54, High: 4850.32},
		AvgVolume:   3_800_000_000,
	},
	"^IXIC": {
		Symbol:      "^IXIC",
		Name:        "NASDAQ Composite",
		Description: "The Nasdaq Composite is a stock market index that includes almost all stocks listed on the Nasdaq stock exchange. It is heavily weighted towards technology and growth companies, particularly those in the information technology sector.",
		Industry:    "Financial Services", Sector: "Index", CEO: "N/A",
		Founded: "1971-02-05", Headquarters: "New York, NY, USA", Website: "https://www.nasdaq.com",
		PERatio: 31.72, EPS: 452.27, DividendYield: 0.82,
		WeekRange52: market.WeekRange52{Low: 12600.32, High: 14790.41},
		AvgVolume:   5_200_000_000,
	},
	"^DJI": {
		Symbol:      "^DJI",
		Name:        "Dow Jones Industrial Average",
		Description: "The Dow Jones Industrial Average (DJIA), or simply the Dow, is a stock market index of 30 prominent companies listed on stock exchanges in the United States. It is one of the oldest and most-watched indices in the world.",
		Industry:    "Financial Services", Sector: "Index", CEO: "N/A",
		Founded: "1896-05-26", Headquarters: "New York, NY, USA", Website: "https://www.dowjones.com",
		PERatio: 22.18, EPS: 1628.69, DividendYield: 2.01,
		WeekRange52: market.WeekRange52{Low: 32800.45, High: 37200.34},
		AvgVolume:   320_000_000,
	},
	"^FTSE": {
		Symbol:      "^FTSE",
		Name:        "FTSE 100 Index",
		Description: "The FTSE 100 Index, also known as the Financial Times Stock Exchange 100 Index, is a share index of the 100 companies listed on the London Stock Exchange with the highest market capitalization.",
		Industry:    "Financial Services", Sector: "Index", CEO: "N/A",
		Founded: "1984-01-03", Headquarters: "London, UK", Website: "https://www.ftse.com",
		PERatio: 14.35, EPS: 520.66, DividendYield: 3.45,
		WeekRange52: market.WeekRange52{Low: 7100.65, High: 7900.32},
		AvgVolume:   890_000_000,
	},
	"^N225": {
		Symbol:      "^N225",
		Name:        "Nikkei 225",
		Description: "The Nikkei 225, more commonly called the Nikkei, is a stock market index for the Tokyo Stock Exchange. It is the most widely quoted average of Japanese equities, representing a broad cross-section of Japanese industry.",
		Industry:    "Financial Services", Sector: "Index", CEO: "N/A",
		Founded: "1950-09-07", Headquarters: "Tokyo, Japan", Website: "https://www.nikkei.com",
		PERatio: 17.62, EPS: 1664.71, DividendYield: 1.76,
		WeekRange52: market.WeekRange52{Low: 27500.34, High: 31200.56},
		AvgVolume:   720_000_000,
	},
	"^GDAXI": {
		Symbol:      "^GDAXI",
		Name:        "DAX Performance Index",
		Description: "The DAX (Deutscher Aktienindex) is a blue chip stock market index consisting of the 30 major German companies trading on the Frankfurt Stock Exchange. It is the equivalent of the FT 30 and the Dow Jones Industrial Average.",
		Industry:    "Financial Services", Sector: "Index", CEO: "N/A",
		Founded: "1988-07-01", Headquarters: "Frankfurt, Germany", Website: "https://www.deutsche-boerse.com",
		PERatio: 16.25, EPS: 968.47, DividendYield: 2.83,
		WeekRange52: market.WeekRange52{Low: 14800.43, High: 16400.67},
		AvgVolume:   680_000_000,
	},
}

var appleProfile = market.CompanyInfo{
	Symbol:      "AAPL",
	Name:        "Apple Inc.",
	Description: "Apple Inc. designs, manufactures, and markets smartphones, personal computers, tablets, wearables, and accessories worldwide. The company offers iPhone, iPad, Mac, and wearables including AirPods, Apple TV, Apple Watch, and accessories.",
	Industry:    "Consumer Electronics", Sector: "Technology", CEO: "Tim Cook",
	Employees: 154_000, Founded: "1980-12-12", Headquarters: "Cupertino, California, USA",
	Website: "https://www.apple.com",
	PERatio: 29.47, EPS: 6.06, DividendYield: 0.53,
	WeekRange52: market.WeekRange52{Low: 124.17, High: 198.23},
	AvgVolume:   58_670_000,
}

// Company returns a fallback profile: one of the index profiles, the Apple
// profile for AAPL, a generic index blurb for unknown index symbols, or an
// empty profile carrying only the symbol.
func (g *Generator) Company(symbol string) *market.CompanyInfo {
	if profile, ok := indexProfiles[symbol]; ok {
		return &profile
	}
	if market.IsIndexSymbol(symbol) {
		return &market.CompanyInfo{
			Symbol:      symbol,
			Name:        "Market Index",
			Description: "A stock market index is a measurement of a section of the stock market, calculated from the prices of selected stocks.",
			Industry:    "Financial Services", Sector: "Index", CEO: "N/A",
			Founded: "N/A", Headquarters: "N/A", Website: "N/A",
		}
	}
	if symbol == "AAPL" {
		profile := appleProfile
		return &profile
	}
	return &market.CompanyInfo{Symbol: symbol}
}
