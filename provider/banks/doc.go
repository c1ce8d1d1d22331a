// Package banks provides policy rate acquisition strategies for the
// world's central banks.
//
// # Strategies
//
// ## FRED (US Federal Reserve)
//
// Source: "FRED API"
// API: https://api.stlouisfed.org/fred/series/observations
// Credential: FRED_API_KEY
//
// Fetches the Federal Funds Effective Rate (series DFF) from the
// St. Louis Fed FRED API. Returns the most recent daily observation,
// queried with limit=1 and descending sort order.
//
// ## ECOS (Bank of Korea)
//
// Source: none (parsing not implemented)
// API: https://ecos.bok.or.kr/api
// Credential: BOK_API_KEY
//
// Queries the StatisticSearch endpoint for the base rate statistic
// (code 010Y002), key embedded in the request path. The response
// schema mapping is not implemented, so the strategy always degrades
// to fallback data.
//
// ## BOJ (Bank of Japan)
//
// Source: "BOJ CSV"
// URL: https://www.stat-search.boj.or.jp/ssi/mtshtml/csv/m_ir.csv
//
// Downloads the monthly interest rate statistics CSV and extracts the
// latest observation from the last line: date in the first column,
// rate in the second.
//
// ## ECB (European Central Bank)
//
// Source: none (parsing not implemented)
// API: https://sdw-wsrest.ecb.europa.eu/service/data/IRS
//
// Queries the statistical data warehouse for the interest rate
// statistics dataset. The SDMX message mapping is not implemented, so
// the strategy always degrades to fallback data.
//
// ## Page scrape
//
// Source: none (extraction not implemented)
//
// Fetches an arbitrary central bank page with a browser-like
// User-Agent and parses the HTML body. Per-site rate extraction is
// not implemented, so the strategy always degrades to fallback data.
//
// Every strategy treats network errors, bad statuses and malformed
// payloads as "no result". The resolver falls back to the static
// table on any of them, so a collection run never fails on an
// unreachable source.
package banks
