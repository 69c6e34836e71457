package rates

// Response represents the raw JSON response from the exchange rate API's
// last-quote endpoint. Numeric values arrive as strings and are parsed by
// the client before being handed to callers.
//
// The structure includes:
//   - USDBRL.Bid: Current buy price for one US dollar in Brazilian reais
//   - USDBRL.Ask: Current sell price
//   - USDBRL.Timestamp: Unix timestamp of the quote, as a string
type Response struct {
	USDBRL struct {
		Code      string `json:"code"`
		Codein    string `json:"codein"`
		Name      string `json:"name"`
		Bid       string `json:"bid"`
		Ask       string `json:"ask"`
		High      string `json:"high"`
		Low       string `json:"low"`
		Timestamp string `json:"timestamp"`
	} `json:"USDBRL"`
}
