package entity

const (
	// DefaultBalancesPageSize matches the $first default of the balances query.
	DefaultBalancesPageSize = 10
	// MaxBalancesPageSize caps $first.
	MaxBalancesPageSize = 100
)

// PageRequest parameterizes one page build. An empty Owner means the balances query is skipped.
type PageRequest struct {
	Contract string
	TokenID  string
	Owner    string
	First    int
	Skip     int
}

// WantsBalances reports whether the balances query has to be issued.
func (r PageRequest) WantsBalances() bool {
	return r.Owner != ""
}
