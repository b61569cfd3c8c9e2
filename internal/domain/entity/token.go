package entity

// ContractView is the contract block as displayed.
type ContractView struct {
	Address  string `json:"address"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals *int   `json:"decimals,omitempty"`
	// Label is "Name (SYMBOL)", or just the name when the symbol is empty.
	Label string `json:"label"`
}

// ThumbnailView is a thumbnail with its URL already normalized.
type ThumbnailView struct {
	Preset      string `json:"preset"`
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ContentType string `json:"contentType"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// ImageView is only built for images with status OK and a non-empty url.
type ImageView struct {
	URL         string          `json:"url"`
	Alt         string          `json:"alt"`
	ContentType string          `json:"contentType"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	Thumbnails  []ThumbnailView `json:"thumbnails,omitempty"`
}

// TokenView holds the token identity and everything the page shows about it.
type TokenView struct {
	Title          string       `json:"title"`
	TokenID        string       `json:"tokenId"`
	Contract       ContractView `json:"contract"`
	TokenURI       string       `json:"tokenUri,omitempty"`
	TokenURIStatus string       `json:"tokenUriStatus,omitempty"`
	CreatedAt      string       `json:"createdAt"`
	CreatedAtRaw   string       `json:"createdAtRaw"`
	CreatedBlock   int64        `json:"createdBlock"`
	// Image is nil when the image block must not be displayed.
	Image *ImageView `json:"image,omitempty"`
	// ImageStatus is kept so the renderer can explain a missing image.
	ImageStatus string `json:"imageStatus,omitempty"`
}

// ShowImage reports whether the image block is displayable.
func (t TokenView) ShowImage() bool {
	return t.Image != nil
}

// ShowTokenURI reports whether the metadata link has to be rendered.
func (t TokenView) ShowTokenURI() bool {
	return t.TokenURI != ""
}
