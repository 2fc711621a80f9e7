package model

// States holds the two-letter codes accepted for a venue or artist
// location.
var States = []string{
    "AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
    "GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
    "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
    "OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
    "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
    "WY",
}

var stateSet = func() map[string]bool {
    m := make(map[string]bool, len(States))
    for _, s := range States {
        m[s] = true
    }
    return m
}()

// IsState reports whether code is a known state code.
func IsState(code string) bool { return stateSet[code] }
