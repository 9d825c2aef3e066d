package main

import (
	"log"
	"net/http"

	"promptbuilder/internal/adapters/httpsource"
	"promptbuilder/internal/ports"
)

// newMux serves the category data at /api/data and the sync hub at /ws
func newMux(source ports.TaxonomySource, hub http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", dataHandler(source))
	mux.Handle("/ws", hub)
	return mux
}

func dataHandler(source ports.TaxonomySource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := source.Fetch(r.Context())
		if err != nil {
			log.Printf("promptbuilder-server: fetch data: %v", err)
			resp = &ports.FetchResponse{Error: err.Error()}
		}

		body, err := httpsource.EncodeEnvelope(resp)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}
