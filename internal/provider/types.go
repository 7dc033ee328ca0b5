package provider

import "fmt"

// FetchError is the uniform upstream failure: any transport error or
// non-2xx status ends up here, carrying the endpoint it came from.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching data from CoinMarketCap (%s): %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MissingFieldError reports a required field absent from an otherwise
// well-formed provider response.
type MissingFieldError struct {
	Endpoint string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s response missing field %s", e.Endpoint, e.Field)
}

type usdQuote struct {
	Price            float64 `json:"price"`
	PercentChange1h  float64 `json:"percent_change_1h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	PercentChange7d  float64 `json:"percent_change_7d"`
	MarketCap        float64 `json:"market_cap"`
	Volume24h        float64 `json:"volume_24h"`
}

type quotesResponse struct {
	Data map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
		Quote  struct {
			USD *usdQuote `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}

type globalMetricsResponse struct {
	Data *struct {
		BTCDominance           float64 `json:"btc_dominance"`
		ETHDominance           float64 `json:"eth_dominance"`
		ActiveCryptocurrencies int     `json:"active_cryptocurrencies"`
		LastUpdated            string  `json:"last_updated"`
		Quote                  struct {
			USD *struct {
				TotalMarketCap float64 `json:"total_market_cap"`
				TotalVolume24h float64 `json:"total_volume_24h"`
			} `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}

type newsResponse struct {
	Data []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		PublishedAt string `json:"published_at"`
		Source      string `json:"source"`
		Coins       []struct {
			Symbol string `json:"symbol"`
			Name   string `json:"name"`
		} `json:"coins"`
	} `json:"data"`
}
