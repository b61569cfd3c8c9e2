package utils

import (
	"net/url"
	"strings"
)

// DefaultIPFSGateway is the host bare IPFS hashes are rewritten to.
const DefaultIPFSGateway = "ipfs.io"

// ipfsHashPrefix is the prefix of CIDv0 content hashes.
const ipfsHashPrefix = "Qm"

// DefaultImageHosts are the image hosts the page is allowed to embed.
var DefaultImageHosts = []string{
	"api.onesource.io",
	"arweave.net",
	"ipfs.io",
	"gateway.pinata.cloud",
}

// ResolveImageURL normalizes a raw image URL using the default gateway.
// Example: "QmXyz123" => "https://ipfs.io/ipfs/QmXyz123"
func ResolveImageURL(raw string) string {
	return ResolveImageURLWithGateway(raw, DefaultIPFSGateway)
}

// ResolveImageURLWithGateway keeps http(s) URLs as-is, rewrites bare "Qm..." hashes to
// https://<gateway>/ipfs/<hash> and passes everything else through untouched.
func ResolveImageURLWithGateway(raw, gateway string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if strings.HasPrefix(raw, ipfsHashPrefix) {
		if gateway == "" {
			gateway = DefaultIPFSGateway
		}
		return "https://" + strings.TrimRight(gateway, "/") + "/ipfs/" + raw
	}
	// ar://, ipfs://, относительные пути и мусор отдаем как есть
	return raw
}

// IsAllowedImageHost reports whether the URL's host is in the allow-list.
// An empty allow-list allows nothing.
func IsAllowedImageHost(rawURL string, hosts []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range hosts {
		if strings.EqualFold(host, h) {
			return true
		}
	}
	return false
}
