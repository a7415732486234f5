package domain

// InputRecord is one row of the user-supplied input file: a pharmacy
// trading name to be enriched. Names are kept verbatim; normalisation
// happens only when building match keys.
type InputRecord struct {
	// Name is the free-text pharmacy trading name, trimmed but
	// otherwise as written. May be blank when the input row was; blank
	// names degrade to NOT_FOUND during enrichment.
	Name string
}

// RegisterEntry is a single search result scraped from the public
// pharmacy register. All fields except TradingName may be absent,
// depending on what the register page listed for that pharmacy.
type RegisterEntry struct {
	// TradingName is the pharmacy name as shown on the register.
	TradingName string

	// RegistrationNumber is the register's identifier for the pharmacy.
	RegistrationNumber string

	// Phone is the raw phone number text, exactly as scraped.
	// Canonicalisation is the phone normaliser's job, not the scraper's.
	Phone string

	// Address is the premises address, when listed.
	Address string

	// Website is the pharmacy website URL, when listed.
	Website string

	// Superintendent is the superintendent pharmacist's name.
	Superintendent string

	// Supervising is the supervising pharmacist's name.
	Supervising string
}

// EnrichedRecord is a pharmacy after an enrichment pass: the input name
// joined with whatever the register yielded, plus the match outcome.
type EnrichedRecord struct {
	// Name is the trading name carried over from the input row.
	Name string

	// RegistrationNumber is populated on a successful match.
	RegistrationNumber string

	// Phone is the canonical phone number ("+353 ..."), or empty when
	// the pharmacy was not matched or its number did not normalise.
	Phone string

	// Address is the premises address from the matched entry.
	Address string

	// Website is the website URL from the matched entry.
	Website string

	// Superintendent is the superintendent pharmacist from the matched entry.
	Superintendent string

	// Supervising is the supervising pharmacist from the matched entry.
	Supervising string

	// Status records the match outcome for this record.
	Status MatchStatus
}
