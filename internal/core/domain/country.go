package domain

// CountriesByCurrency maps a currency display name to the countries using it.
type CountriesByCurrency map[string][]string
