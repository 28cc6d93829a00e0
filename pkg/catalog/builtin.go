package catalog

// Builtin returns the curated reference table compiled into the binary.
// It covers the large caps dashboard users reach for most, so catalog-only
// search stays useful when no CSV is configured and the network is down.
// Aliases carry brand and product names that users type instead of the
// registered company name.
func Builtin() []CompanyRecord {
	return []CompanyRecord{
		{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology", Aliases: []string{"apple", "iphone", "macbook"}},
		{Ticker: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", Aliases: []string{"microsoft", "windows", "azure", "xbox"}},
		{Ticker: "GOOGL", Name: "Alphabet Inc.", Sector: "Technology", Aliases: []string{"google", "youtube", "android"}},
		{Ticker: "AMZN", Name: "Amazon.com Inc.", Sector: "Consumer Cyclical", Aliases: []string{"amazon", "aws", "prime"}},
		{Ticker: "META", Name: "Meta Platforms Inc.", Sector: "Technology", Aliases: []string{"facebook", "instagram", "whatsapp"}},
		{Ticker: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology", Aliases: []string{"nvidia", "geforce", "cuda"}},
		{Ticker: "TSLA", Name: "Tesla Inc.", Sector: "Consumer Cyclical", Aliases: []string{"tesla", "model 3", "cybertruck"}},
		{Ticker: "BRK.B", Name: "Berkshire Hathaway Inc.", Sector: "Financial Services", Aliases: []string{"berkshire", "buffett"}},
		{Ticker: "JPM", Name: "JPMorgan Chase & Co.", Sector: "Financial Services", Aliases: []string{"jpmorgan", "chase"}},
		{Ticker: "V", Name: "Visa Inc.", Sector: "Financial Services", Aliases: []string{"visa"}},
		{Ticker: "MA", Name: "Mastercard Incorporated", Sector: "Financial Services", Aliases: []string{"mastercard"}},
		{Ticker: "JNJ", Name: "Johnson & Johnson", Sector: "Healthcare", Aliases: []string{"johnson", "band-aid", "tylenol"}},
		{Ticker: "UNH", Name: "UnitedHealth Group Incorporated", Sector: "Healthcare", Aliases: []string{"unitedhealth", "optum"}},
		{Ticker: "PFE", Name: "Pfizer Inc.", Sector: "Healthcare", Aliases: []string{"pfizer"}},
		{Ticker: "XOM", Name: "Exxon Mobil Corporation", Sector: "Energy", Aliases: []string{"exxon", "esso"}},
		{Ticker: "CVX", Name: "Chevron Corporation", Sector: "Energy", Aliases: []string{"chevron", "texaco"}},
		{Ticker: "WMT", Name: "Walmart Inc.", Sector: "Consumer Defensive", Aliases: []string{"walmart", "sams club"}},
		{Ticker: "PG", Name: "Procter & Gamble Company", Sector: "Consumer Defensive", Aliases: []string{"procter", "gillette", "pampers"}},
		{Ticker: "KO", Name: "Coca-Cola Company", Sector: "Consumer Defensive", Aliases: []string{"coca cola", "coke", "sprite"}},
		{Ticker: "PEP", Name: "PepsiCo Inc.", Sector: "Consumer Defensive", Aliases: []string{"pepsi", "lays", "gatorade"}},
		{Ticker: "DIS", Name: "Walt Disney Company", Sector: "Communication Services", Aliases: []string{"disney", "pixar", "marvel"}},
		{Ticker: "NFLX", Name: "Netflix Inc.", Sector: "Communication Services", Aliases: []string{"netflix"}},
		{Ticker: "INTC", Name: "Intel Corporation", Sector: "Technology", Aliases: []string{"intel", "pentium"}},
		{Ticker: "AMD", Name: "Advanced Micro Devices Inc.", Sector: "Technology", Aliases: []string{"amd", "ryzen", "radeon"}},
		{Ticker: "CRM", Name: "Salesforce Inc.", Sector: "Technology", Aliases: []string{"salesforce", "slack"}},
		{Ticker: "ORCL", Name: "Oracle Corporation", Sector: "Technology", Aliases: []string{"oracle", "java"}},
		{Ticker: "IBM", Name: "International Business Machines Corporation", Sector: "Technology", Aliases: []string{"ibm", "watson"}},
		{Ticker: "BA", Name: "Boeing Company", Sector: "Industrials", Aliases: []string{"boeing", "747", "dreamliner"}},
		{Ticker: "CAT", Name: "Caterpillar Inc.", Sector: "Industrials", Aliases: []string{"caterpillar"}},
		{Ticker: "GE", Name: "GE Aerospace", Sector: "Industrials", Aliases: []string{"general electric"}},
		{Ticker: "F", Name: "Ford Motor Company", Sector: "Consumer Cyclical", Aliases: []string{"ford", "mustang", "f-150"}},
		{Ticker: "GM", Name: "General Motors Company", Sector: "Consumer Cyclical", Aliases: []string{"general motors", "chevrolet", "cadillac"}},
		{Ticker: "NKE", Name: "Nike Inc.", Sector: "Consumer Cyclical", Aliases: []string{"nike", "jordan"}},
		{Ticker: "SBUX", Name: "Starbucks Corporation", Sector: "Consumer Cyclical", Aliases: []string{"starbucks"}},
		{Ticker: "MCD", Name: "McDonald's Corporation", Sector: "Consumer Cyclical", Aliases: []string{"mcdonalds"}},
		{Ticker: "T", Name: "AT&T Inc.", Sector: "Communication Services", Aliases: []string{"att"}},
		{Ticker: "VZ", Name: "Verizon Communications Inc.", Sector: "Communication Services", Aliases: []string{"verizon"}},
		{Ticker: "PYPL", Name: "PayPal Holdings Inc.", Sector: "Financial Services", Aliases: []string{"paypal", "venmo"}},
		{Ticker: "UBER", Name: "Uber Technologies Inc.", Sector: "Technology", Aliases: []string{"uber"}},
		{Ticker: "ABNB", Name: "Airbnb Inc.", Sector: "Consumer Cyclical", Aliases: []string{"airbnb"}},
	}
}
