package collect

import (
	"time"

	"github.com/sig-0/policyrates/ingest"
	"github.com/sig-0/policyrates/keys"
	"github.com/sig-0/policyrates/provider/banks"
	"github.com/sig-0/policyrates/provider/countries"
	"github.com/sig-0/policyrates/storage/types"
)

// defaultStrategies returns the default live acquisition strategies,
// keyed by country
func defaultStrategies(
	credentials map[string]string,
	timeout time.Duration,
) map[types.Country]ingest.Strategy {
	var (
		// Official FRED observations API
		fredProvider = banks.NewFREDProvider(
			"https://api.stlouisfed.org/fred/series/observations",
			credentials[keys.FREDAPIKey],
			timeout,
		)

		// Official Bank of Korea statistics API
		ecosProvider = banks.NewECOSProvider(
			"https://ecos.bok.or.kr/api",
			credentials[keys.ECOSAPIKey],
			timeout,
		)

		// Official Bank of Japan statistics CSV
		bojProvider = banks.NewBOJProvider(
			"https://www.stat-search.boj.or.jp/ssi/mtshtml/csv/m_ir.csv",
			timeout,
		)

		// Official ECB statistical data warehouse
		ecbProvider = banks.NewECBProvider(
			"https://sdw-wsrest.ecb.europa.eu/service/data/IRS",
			timeout,
		)

		// Official Bank of England rate page
		boeProvider = banks.NewPageProvider(
			"Bank of England",
			"https://www.bankofengland.co.uk/boeapps/database/Bank-Rate.asp",
			timeout,
		)
	)

	return map[types.Country]ingest.Strategy{
		countries.US:         fredProvider,
		countries.SouthKorea: ecosProvider,
		countries.Japan:      bojProvider,
		countries.Eurozone:   ecbProvider,
		countries.UK:         boeProvider,
	}
}
