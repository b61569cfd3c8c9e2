package service

import (
	"fmt"
	"time"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/app/port"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/domain/entity"
	wire "github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/entity"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/pkg/utils"
)

// ViewModelBuilder turns decoded responses into a PageView. It holds only display settings.
type ViewModelBuilder struct {
	ipfsGateway string
	dateLayout  string
	location    *time.Location
}

// NewViewModelBuilder creates a builder. A nil location means time.Local.
func NewViewModelBuilder(ipfsGateway, dateLayout string, location *time.Location) *ViewModelBuilder {
	if ipfsGateway == "" {
		ipfsGateway = utils.DefaultIPFSGateway
	}
	if dateLayout == "" {
		dateLayout = utils.DefaultDateLayout
	}
	return &ViewModelBuilder{
		ipfsGateway: ipfsGateway,
		dateLayout:  dateLayout,
		location:    location,
	}
}

// Build maps a successful fetch onto the view model. It never returns an error: input
// reaching it has been validated, so a nil token or contract panics as a programming error.
func (b *ViewModelBuilder) Build(res *port.FetchResult, owner string) *entity.PageView {
	if res == nil || res.Token == nil {
		panic("view model builder: fetch result without token")
	}

	view := &entity.PageView{
		Token:    b.buildToken(res.Token),
		Balances: []entity.BalanceView{},
	}

	if res.Balances != nil {
		view.Owner = owner
		view.BalancesPage = &entity.BalancesPageInfo{
			Count:     res.Balances.Count,
			Remaining: res.Balances.Remaining,
			Cursor:    res.Balances.Cursor,
		}
		view.Balances = make([]entity.BalanceView, 0, len(res.Balances.Entries))
		for i := range res.Balances.Entries {
			view.Balances = append(view.Balances, b.buildBalance(&res.Balances.Entries[i]))
		}
	}

	return view
}

func (b *ViewModelBuilder) buildToken(t *wire.Token) entity.TokenView {
	contract := buildContract(t.Contract, "token")
	title := fmt.Sprintf("%s #%s", contract.Name, t.TokenID)

	view := entity.TokenView{
		Title:          title,
		TokenID:        t.TokenID,
		Contract:       contract,
		TokenURI:       t.TokenURI,
		TokenURIStatus: t.TokenURIStatus,
		CreatedAt:      utils.FormatDisplayDate(t.CreatedAt, b.dateLayout, b.location),
		CreatedAtRaw:   t.CreatedAt,
		CreatedBlock:   t.CreatedBlock,
		Image:          b.buildImage(t.Image, title),
	}
	if t.Image != nil {
		view.ImageStatus = t.Image.Status
	}
	return view
}

func (b *ViewModelBuilder) buildBalance(e *wire.BalanceEntry) entity.BalanceView {
	contract := buildContract(e.Contract, "balance entry")

	view := entity.BalanceView{
		Owner:        e.Owner,
		ContractType: e.ContractType,
		Contract:     contract,
		Value:        e.Value,
	}

	// value уже проверен в BalancesResponse.Validate
	formatted, err := utils.FormatTokenAmount(e.Value, e.Contract.Decimals)
	if err != nil {
		formatted = e.Value
	}
	view.FormattedValue = formatted

	if e.Token != nil {
		view.TokenID = e.Token.TokenID
		alt := contract.Name
		if e.Token.TokenID != "" {
			alt = fmt.Sprintf("%s #%s", contract.Name, e.Token.TokenID)
		}
		view.Image = b.buildImage(e.Token.Image, alt)
	}
	return view
}

// buildImage returns nil unless the image is displayable: status OK and a non-empty url.
func (b *ViewModelBuilder) buildImage(img *wire.ImageAsset, alt string) *entity.ImageView {
	if !img.IsOK() {
		return nil
	}
	url := utils.ResolveImageURLWithGateway(img.URL, b.ipfsGateway)
	if url == "" {
		return nil
	}

	view := &entity.ImageView{
		URL:         url,
		Alt:         alt,
		ContentType: img.ContentType,
		Width:       img.Width,
		Height:      img.Height,
		CreatedAt:   utils.FormatDisplayDate(img.CreatedAt, b.dateLayout, b.location),
	}
	for _, th := range img.Thumbnails {
		if th.Status != wire.ImageStatusOK || th.URL == "" {
			continue
		}
		view.Thumbnails = append(view.Thumbnails, entity.ThumbnailView{
			Preset:      th.Preset,
			URL:         utils.ResolveImageURLWithGateway(th.URL, b.ipfsGateway),
			Width:       th.Width,
			Height:      th.Height,
			ContentType: th.ContentType,
			CreatedAt:   utils.FormatDisplayDate(th.CreatedAt, b.dateLayout, b.location),
		})
	}
	return view
}

func buildContract(c *wire.ContractInfo, holder string) entity.ContractView {
	if c == nil {
		panic("view model builder: " + holder + " without contract")
	}
	label := c.Name
	if c.Symbol != "" {
		label = fmt.Sprintf("%s (%s)", c.Name, c.Symbol)
	}
	return entity.ContractView{
		Address:  c.ID,
		Type:     c.Type,
		Name:     c.Name,
		Symbol:   c.Symbol,
		Decimals: c.Decimals,
		Label:    label,
	}
}
