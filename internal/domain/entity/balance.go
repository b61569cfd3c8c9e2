package entity

// BalanceView is one balance entry ready for display.
type BalanceView struct {
	Owner          string       `json:"owner"`
	ContractType   string       `json:"contractType"`
	Contract       ContractView `json:"contract"`
	TokenID        string       `json:"tokenId,omitempty"`
	Image          *ImageView   `json:"image,omitempty"`
	Value          string       `json:"value"`
	FormattedValue string       `json:"formattedValue"`
}

// BalancesPageInfo carries the pagination metadata of the balances query.
type BalancesPageInfo struct {
	Count     int    `json:"count"`
	Remaining int    `json:"remaining"`
	Cursor    string `json:"cursor,omitempty"`
}

// PageView is the whole view model handed to the renderer.
type PageView struct {
	Token        TokenView         `json:"token"`
	Owner        string            `json:"owner,omitempty"`
	Balances     []BalanceView     `json:"balances"`
	BalancesPage *BalancesPageInfo `json:"balancesPage,omitempty"`
}
