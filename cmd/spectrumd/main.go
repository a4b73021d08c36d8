// Command spectrumd exposes the transforms over a small HTTP API, mainly
// for poking at spectra from a browser or curl:
//
//	curl -s localhost:8080/spectrum -d '[0,1,0,-1,0,1,0,-1]'
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/dspmath"
	"github.com/cwbudde/algo-dft/spectrum"
)

type spectrumResponse struct {
	N         int       `json:"n"`
	Magnitude []float64 `json:"magnitude"`
	Phase     []float64 `json:"phase"`
	Centroid  float64   `json:"centroid"`
	Flatness  float64   `json:"flatness"`
}

func apiErr(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(err.Error()))
	fmt.Fprintln(os.Stderr, err)
}

func handleSpectrumPost(w http.ResponseWriter, r *http.Request) {
	var samples []float64
	if err := json.NewDecoder(r.Body).Decode(&samples); err != nil {
		apiErr(w, err)
		return
	}

	if len(samples) == 0 {
		apiErr(w, fmt.Errorf("empty sample array"))
		return
	}

	// Zero-pad to the next power of two so the transform preconditions hold
	// for any posted length.
	n := dspmath.NextPowerOf2(len(samples))

	input := make([]algodft.Complex, n)
	for i, s := range samples {
		input[i] = algodft.FromReal(s)
	}

	output := make([]algodft.Complex, n)
	algodft.FDFT(input, output)

	// Real input: report the positive-frequency half only.
	bins := output[:n/2+1]
	mag := spectrum.Magnitude(bins)

	resp := spectrumResponse{
		N:         n,
		Magnitude: mag,
		Phase:     spectrum.Phase(bins),
		Centroid:  spectrum.Centroid(mag),
		Flatness:  spectrum.Flatness(spectrum.Power(bins)),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func newHandler() http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.HandleFunc("/spectrum", handleSpectrumPost).Methods(http.MethodPost)
	r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)

	return r
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("spectrumd listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, newHandler()))
}
