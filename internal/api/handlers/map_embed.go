package handlers

import (
	"net/http"
	"net/url"
)

const DefaultMapsEmbedURL = "https://www.google.com/maps/embed/v1/directions"

// MapEmbedHandler redirects to a walking-directions map embed.
type MapEmbedHandler struct {
	APIKey  string
	BaseURL string
}

// Redirect handles GET /map-embed?origin=lat,lng&destination=lat,lng.
func (h *MapEmbedHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	if h.APIKey == "" {
		writeError(w, r, http.StatusBadRequest, "map embed is not configured")
		return
	}

	q := r.URL.Query()
	origin, err := parseLatLng(q.Get("origin"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid origin")
		return
	}
	dest, err := parseLatLng(q.Get("destination"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid destination")
		return
	}

	base := h.BaseURL
	if base == "" {
		base = DefaultMapsEmbedURL
	}

	v := url.Values{}
	v.Set("key", h.APIKey)
	v.Set("origin", origin.LatLng())
	v.Set("destination", dest.LatLng())
	v.Set("mode", "walking")

	http.Redirect(w, r, base+"?"+v.Encode(), http.StatusFound)
}
