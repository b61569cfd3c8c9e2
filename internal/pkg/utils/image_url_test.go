package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "https unchanged", raw: "https://example.com/x.png", want: "https://example.com/x.png"},
		{name: "http unchanged", raw: "http://example.com/x.png", want: "http://example.com/x.png"},
		{name: "bare ipfs hash", raw: "QmXyz123", want: "https://ipfs.io/ipfs/QmXyz123"},
		{name: "arweave scheme passes through", raw: "ar://abc", want: "ar://abc"},
		{name: "ipfs scheme passes through", raw: "ipfs://QmXyz123", want: "ipfs://QmXyz123"},
		{name: "relative path passes through", raw: "/images/1.png", want: "/images/1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveImageURL(tt.raw))
		})
	}
}

func TestResolveImageURLWithGateway(t *testing.T) {
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmAbc",
		ResolveImageURLWithGateway("QmAbc", "gateway.pinata.cloud/"))
	assert.Equal(t, "https://ipfs.io/ipfs/QmAbc", ResolveImageURLWithGateway("QmAbc", ""))
	assert.Equal(t, "https://example.com/QmAbc.png",
		ResolveImageURLWithGateway("https://example.com/QmAbc.png", "gateway.pinata.cloud"))
}

func TestIsAllowedImageHost(t *testing.T) {
	assert.True(t, IsAllowedImageHost("https://ipfs.io/ipfs/QmXyz123", DefaultImageHosts))
	assert.True(t, IsAllowedImageHost("https://API.onesource.io/img/1.png", DefaultImageHosts))
	assert.False(t, IsAllowedImageHost("https://evil.example.com/x.png", DefaultImageHosts))
	assert.False(t, IsAllowedImageHost("ar://abc", DefaultImageHosts))
	assert.False(t, IsAllowedImageHost("", DefaultImageHosts))
	assert.False(t, IsAllowedImageHost("https://ipfs.io/x.png", nil))
}
